package bench

import (
	"gonum.org/v1/gonum/stat"
)

// Result holds the metrics recorded for one algorithm/dataset pair,
// aggregated over the configured number of trials.
type Result struct {
	// Algorithm names the compression algorithm, e.g. "structural" or "Zstd".
	Algorithm string
	// Dataset names the synthetic workload.
	Dataset string
	// Records is the number of log records in the uncompressed input.
	Records int
	// InputBytes is the uncompressed input length.
	InputBytes int64
	// OutputBytes is the compressed output length.
	OutputBytes int64
	// MeanSeconds and StdDevSeconds summarize per-trial compression time.
	MeanSeconds   float64
	StdDevSeconds float64
}

// newResult aggregates per-trial timings into a Result.
func newResult(algorithm, dataset string, records int, inputBytes, outputBytes int64, trialSeconds []float64) Result {
	r := Result{
		Algorithm:   algorithm,
		Dataset:     dataset,
		Records:     records,
		InputBytes:  inputBytes,
		OutputBytes: outputBytes,
		MeanSeconds: stat.Mean(trialSeconds, nil),
	}
	if len(trialSeconds) > 1 {
		r.StdDevSeconds = stat.StdDev(trialSeconds, nil)
	}

	return r
}

// Ratio returns output bytes over input bytes; below 1.0 means compression.
func (r Result) Ratio() float64 {
	if r.InputBytes == 0 {
		return 0
	}

	return float64(r.OutputBytes) / float64(r.InputBytes)
}

// Throughput returns the processing rate in MB/s.
func (r Result) Throughput() float64 {
	if r.MeanSeconds == 0 {
		return 0
	}

	return float64(r.InputBytes) / (1024 * 1024 * r.MeanSeconds)
}

// BytesPerRecord returns the compressed cost of one log record.
func (r Result) BytesPerRecord() float64 {
	if r.Records == 0 {
		return 0
	}

	return float64(r.OutputBytes) / float64(r.Records)
}
