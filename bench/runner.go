package bench

import (
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"

	"github.com/logpack/logpack/compress"
	"github.com/logpack/logpack/errs"
	"github.com/logpack/logpack/format"
	"github.com/logpack/logpack/internal/pool"
	"github.com/logpack/logpack/logbuf"
)

// StructuralName is the algorithm label for the logbuf codec itself.
const StructuralName = "structural"

// Config controls a benchmark run.
type Config struct {
	// BufferSize is the uncompressed log buffer size each dataset fills.
	BufferSize int
	// Trials is how many timed compression passes to run per algorithm.
	Trials int
	// Seed drives every generator; identical seeds reproduce identical runs.
	Seed uint64
	// Structural toggles the logbuf codec itself.
	Structural bool
	// Codecs lists the generic algorithms to compare against.
	Codecs []format.CompressionType
	// DoublePass lists generic algorithms to additionally run over the
	// structural codec's output.
	DoublePass []format.CompressionType
	// Logger receives progress diagnostics; nil means silent.
	Logger *zap.Logger
}

func (c *Config) setDefaults() {
	if c.BufferSize <= 0 {
		c.BufferSize = 1024 * 1024
	}
	if c.Trials <= 0 {
		c.Trials = 3
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
}

// Runner fills a raw log buffer per dataset and times every configured
// algorithm over it. Buffers come from the shared pools and are reused
// across datasets; a Runner is single-threaded.
type Runner struct {
	cfg    Config
	logger *zap.Logger

	raw     *pool.ByteBuffer
	scratch *pool.ByteBuffer
}

// NewRunner creates a Runner for the given configuration.
func NewRunner(cfg Config) *Runner {
	cfg.setDefaults()

	return &Runner{
		cfg:     cfg,
		logger:  cfg.Logger,
		raw:     pool.GetDatasetBuffer(),
		scratch: pool.GetDatasetBuffer(),
	}
}

// Close returns the Runner's buffers to their pools. The Runner must not be
// used afterwards.
func (r *Runner) Close() {
	pool.PutDatasetBuffer(r.raw)
	pool.PutDatasetBuffer(r.scratch)
	r.raw, r.scratch = nil, nil
}

// Run executes every dataset against every configured algorithm and returns
// one Result per pair, in dataset order.
func (r *Runner) Run(datasets []Dataset) ([]Result, error) {
	var results []Result

	for _, ds := range datasets {
		dsResults, err := r.runDataset(ds)
		if err != nil {
			return nil, fmt.Errorf("dataset %q: %w", ds.Name, err)
		}
		results = append(results, dsResults...)
	}

	return results, nil
}

func (r *Runner) runDataset(ds Dataset) ([]Result, error) {
	r.raw.Resize(r.cfg.BufferSize)

	clock := syntheticClock(r.cfg.Seed)
	enc := logbuf.NewEncoder(r.raw.Bytes(), logbuf.WithClock(clock))
	records := ds.Fill(enc, r.cfg.Seed)
	input := enc.Bytes()

	r.logger.Debug("dataset filled",
		zap.String("dataset", ds.Name),
		zap.Int("records", records),
		zap.Int("bytes", len(input)),
	)

	var results []Result

	var structuralOut []byte
	if r.cfg.Structural {
		res, out, err := r.runStructural(ds.Name, records, input)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
		structuralOut = out
	}

	for _, typ := range r.cfg.Codecs {
		res, err := r.runCodec(typ.String(), ds.Name, records, input)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}

	for _, typ := range r.cfg.DoublePass {
		if structuralOut == nil {
			return nil, fmt.Errorf("double pass %s requires the structural codec", typ)
		}
		res, err := r.runCodec(StructuralName+"+"+typ.String(), ds.Name, records, structuralOut)
		if err != nil {
			return nil, err
		}
		// Report the ratio against the original input, not the intermediate.
		res.InputBytes = int64(len(input))
		results = append(results, res)
	}

	return results, nil
}

// runStructural times the logbuf codec and verifies its output decodes back
// to the exact input bytes.
func (r *Runner) runStructural(dataset string, records int, input []byte) (Result, []byte, error) {
	r.scratch.Resize(logbuf.CompressBound(len(input)))
	dst := r.scratch.Bytes()

	var n int
	trialSeconds := make([]float64, r.cfg.Trials)
	for trial := range trialSeconds {
		start := time.Now()

		var err error
		n, err = logbuf.Compress(dst, input)
		if err != nil {
			return Result{}, nil, fmt.Errorf("structural compress: %w", err)
		}

		trialSeconds[trial] = time.Since(start).Seconds()
	}

	out := dst[:n]
	if err := verifyStructural(input, out); err != nil {
		return Result{}, nil, err
	}

	res := newResult(StructuralName, dataset, records, int64(len(input)), int64(n), trialSeconds)

	return res, out, nil
}

// runCodec times one generic codec over input and verifies the round trip.
func (r *Runner) runCodec(name, dataset string, records int, input []byte) (Result, error) {
	typ, err := codecTypeFor(name)
	if err != nil {
		return Result{}, err
	}

	codec, err := compress.NewCodec(typ)
	if err != nil {
		return Result{}, err
	}

	var out []byte
	trialSeconds := make([]float64, r.cfg.Trials)
	for trial := range trialSeconds {
		start := time.Now()

		out, err = codec.Compress(input)
		if err != nil {
			return Result{}, fmt.Errorf("%s compress: %w", name, err)
		}

		trialSeconds[trial] = time.Since(start).Seconds()
	}

	restored, err := codec.Decompress(out)
	if err != nil {
		return Result{}, fmt.Errorf("%s decompress: %w", name, err)
	}
	if xxhash.Sum64(restored) != xxhash.Sum64(input) {
		return Result{}, fmt.Errorf("%w: %s round trip altered the payload", errs.ErrMalformedData, name)
	}

	return newResult(name, dataset, records, int64(len(input)), int64(len(out)), trialSeconds), nil
}

// verifyStructural decompresses out, re-encodes the records with a clock
// replaying the decoded timestamps, and compares fingerprints with the
// original input. A match proves the round trip is bit-for-bit exact.
func verifyStructural(input, out []byte) error {
	records, err := logbuf.Decompress(out)
	if err != nil {
		return fmt.Errorf("structural verify: %w", err)
	}

	buf := pool.GetDatasetBuffer()
	defer pool.PutDatasetBuffer(buf)
	buf.Resize(len(input))

	i := 0
	replay := func() uint64 {
		ts := records[i].Timestamp
		i++

		return ts
	}

	enc := logbuf.NewEncoder(buf.Bytes(), logbuf.WithClock(replay))
	for idx := range records {
		rec := &records[idx]

		var ok bool
		switch rec.Kind {
		case format.KindText:
			ok = enc.AppendTexts(rec.Texts)
		case format.KindInt:
			ok = enc.AppendInts(rec.Ints)
		case format.KindLong:
			ok = enc.AppendLongs(rec.Longs)
		case format.KindDouble:
			ok = enc.AppendDoubles(rec.Doubles)
		}
		if !ok {
			return fmt.Errorf("structural verify: record %d does not fit on re-encode", idx)
		}
	}

	if xxhash.Sum64(enc.Bytes()) != xxhash.Sum64(input) {
		return fmt.Errorf("%w: structural round trip altered the stream", errs.ErrMalformedData)
	}

	return nil
}

// syntheticClock yields monotonically increasing timestamps with small
// deterministic jitter, standing in for a cycle counter so runs with the
// same seed produce identical buffers.
func syntheticClock(seed uint64) func() uint64 {
	ts := seed
	return func() uint64 {
		ts += 1 + (ts*2654435761)%97

		return ts
	}
}

// codecTypeFor maps a result label back to its compression type, accepting
// both plain labels ("Zstd") and double-pass labels ("structural+Zstd").
func codecTypeFor(name string) (format.CompressionType, error) {
	for _, typ := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionGzip,
		format.CompressionS2,
		format.CompressionLZ4,
		format.CompressionZstd,
	} {
		if name == typ.String() || name == StructuralName+"+"+typ.String() {
			return typ, nil
		}
	}

	return 0, fmt.Errorf("unknown algorithm label %q", name)
}
