package pool

import (
	"io"
	"sync"
)

// Default sizes for the two pools: scratch buffers hold one compressed
// payload, dataset buffers hold a whole synthetic uncompressed log buffer.
const (
	ScratchBufferDefaultSize  = 1024 * 16       // 16KiB
	ScratchBufferMaxThreshold = 1024 * 128      // 128KiB
	DatasetBufferDefaultSize  = 1024 * 1024     // 1MiB
	DatasetBufferMaxThreshold = 1024 * 1024 * 8 // 8MiB
)

// ByteBuffer is a reusable byte slice wrapper handed out by the pools.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default size.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// Grow grows the buffer to ensure it can hold requiredBytes more bytes
// without reallocating. If the buffer already has sufficient capacity, Grow
// does nothing.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := ScratchBufferDefaultSize
	if cap(bb.B) > 4*ScratchBufferDefaultSize {
		// For larger buffers, grow by 25% to balance memory and reallocation cost.
		growBy = cap(bb.B) / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Resize sets the buffer length to n, growing the allocation if needed.
// The contents of any newly exposed bytes are unspecified.
func (bb *ByteBuffer) Resize(n int) {
	if n <= cap(bb.B) {
		bb.B = bb.B[:n]
		return
	}

	bb.Grow(n - len(bb.B))
	bb.B = bb.B[:n]
}

// Write appends the contents of data to the buffer, growing it as needed.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteTo writes the contents of the buffer to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ByteBufferPool is a pool of ByteBuffers to minimize allocations.
//
// It uses sync.Pool internally. A maximum size threshold avoids retaining
// overly large buffers that would lead to memory bloat.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the specified default size.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		// Discard overly large buffers to prevent memory bloat.
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var (
	scratchPool = NewByteBufferPool(ScratchBufferDefaultSize, ScratchBufferMaxThreshold)
	datasetPool = NewByteBufferPool(DatasetBufferDefaultSize, DatasetBufferMaxThreshold)
)

// GetScratchBuffer retrieves a ByteBuffer from the scratch pool.
func GetScratchBuffer() *ByteBuffer {
	return scratchPool.Get()
}

// PutScratchBuffer returns a ByteBuffer to the scratch pool.
func PutScratchBuffer(bb *ByteBuffer) {
	scratchPool.Put(bb)
}

// GetDatasetBuffer retrieves a ByteBuffer from the dataset pool.
func GetDatasetBuffer() *ByteBuffer {
	return datasetPool.Get()
}

// PutDatasetBuffer returns a ByteBuffer to the dataset pool.
func PutDatasetBuffer(bb *ByteBuffer) {
	datasetPool.Put(bb)
}
