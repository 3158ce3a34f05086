package bench

import (
	"fmt"
	"io"
)

// Report writes an aligned text table of benchmark results, one row per
// algorithm/dataset pair.
func Report(w io.Writer, results []Result) {
	fmt.Fprintf(w, "#%-15s %-22s %9s %12s %12s %8s %12s %12s %10s %8s\n",
		"Algorithm",
		"Dataset",
		"Records",
		"Input B",
		"Output B",
		"Ratio",
		"Mean (s)",
		"StdDev (s)",
		"MB/s",
		"B/rec",
	)

	for _, r := range results {
		fmt.Fprintf(w, "%-16s %-22s %9d %12d %12d %8.4f %12.6f %12.6f %10.2f %8.2f\n",
			r.Algorithm,
			r.Dataset,
			r.Records,
			r.InputBytes,
			r.OutputBytes,
			r.Ratio(),
			r.MeanSeconds,
			r.StdDevSeconds,
			r.Throughput(),
			r.BytesPerRecord(),
		)
	}
}
