package gen

import (
	"math"
	"math/rand/v2"
)

// ArgumentGenerator keeps the state required to produce a stream of
// random or incremented numeric log arguments.
//
// "Small" random values are masked to a randomly chosen power-of-two range
// up to 2^16, which mirrors realistic log arguments (counts, sizes, error
// codes) and gives the width packer something to exploit. "Big" values span
// the full native range and are effectively incompressible.
//
// All output is deterministic for a given seed, so datasets are reproducible
// across benchmark trials.
type ArgumentGenerator struct {
	rng     *rand.Rand
	counter uint64
}

// NewArgumentGenerator creates a generator seeded with seed.
func NewArgumentGenerator(seed uint64) *ArgumentGenerator {
	g := &ArgumentGenerator{}
	g.Reset(seed)

	return g
}

// Reset restores the generator to its initial state for the given seed.
func (g *ArgumentGenerator) Reset(seed uint64) {
	g.rng = rand.New(rand.NewPCG(seed, seed))
	g.counter = seed
}

// randMasked returns a random value masked to a random power-of-two range
// with at most maxBits significant bits.
func (g *ArgumentGenerator) randMasked(maxBits int) uint64 {
	bits := 1 + g.rng.IntN(maxBits)
	mask := uint64(1)<<bits - 1

	return g.rng.Uint64() & mask
}

// RandSmallInt returns a random int32 with at most 16 significant bits.
func (g *ArgumentGenerator) RandSmallInt() int32 {
	return int32(g.randMasked(16))
}

// RandBigInt returns a random int32 spanning the full 32-bit range.
func (g *ArgumentGenerator) RandBigInt() int32 {
	return int32(uint32(g.rng.Uint64()))
}

// RandSmallLong returns a random int64 with at most 16 significant bits.
func (g *ArgumentGenerator) RandSmallLong() int64 {
	return int64(g.randMasked(16))
}

// RandBigLong returns a random int64 spanning the full 64-bit range.
func (g *ArgumentGenerator) RandBigLong() int64 {
	return int64(g.rng.Uint64())
}

// RandSmallDouble returns a float64 occupying at most roughly half the
// exponent and fraction ranges.
func (g *ArgumentGenerator) RandSmallDouble() float64 {
	pow := float64(g.rng.IntN(65) - 32) // [-32, 32]
	frac := g.rng.Float64()*(1<<26) - (1 << 25)

	return frac + math.Pow(2, pow)
}

// RandBigDouble returns a float64 spanning nearly the whole representable
// range.
func (g *ArgumentGenerator) RandBigDouble() float64 {
	pow := float64(g.rng.IntN(2047) - 1023) // [-1023, 1023]
	frac := g.rng.Float64()*(1<<53) - (1 << 52)

	return frac + math.Pow(2, pow)
}

// IncSmallInt returns the counter masked to 16 bits, then advances it.
func (g *ArgumentGenerator) IncSmallInt() int32 {
	v := int32(g.counter & 0xffff)
	g.counter++

	return v
}

// IncInt returns the counter, then advances it.
func (g *ArgumentGenerator) IncInt() int32 {
	v := int32(uint32(g.counter))
	g.counter++

	return v
}

// IncBigInt returns the counter offset past the lower half of the int32
// range, then advances it.
func (g *ArgumentGenerator) IncBigInt() int32 {
	v := int32(uint32(g.counter) + 1<<16)
	g.counter++

	return v
}

// IncSmallLong returns the counter masked to 16 bits, then advances it.
func (g *ArgumentGenerator) IncSmallLong() int64 {
	v := int64(g.counter & 0xffff)
	g.counter++

	return v
}

// IncLong returns the counter, then advances it.
func (g *ArgumentGenerator) IncLong() int64 {
	v := int64(g.counter)
	g.counter++

	return v
}

// IncBigLong returns the counter offset past the lower half of the int64
// range, then advances it.
func (g *ArgumentGenerator) IncBigLong() int64 {
	v := int64(g.counter + 1<<32)
	g.counter++

	return v
}

// IncSmallDouble returns the counter masked to 16 bits as a float64, then
// advances it.
func (g *ArgumentGenerator) IncSmallDouble() float64 {
	v := float64(g.counter & 0xffff)
	g.counter++

	return v
}

// IncBigDouble returns the counter offset by 2^32 as a float64, then
// advances it.
func (g *ArgumentGenerator) IncBigDouble() float64 {
	v := float64(g.counter + 1<<32)
	g.counter++

	return v
}
