package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/logpack/logpack/bench"
	"github.com/logpack/logpack/format"
)

var (
	benchBufferSize int
	benchTrials     int
	benchSeed       uint64
	benchCodecs     []string
	benchDouble     []string
	benchDatasets   string
	benchStructural bool
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark the structural codec against generic compressors",
	Long: `Fills an uncompressed log buffer with synthetic records per dataset,
then times the structural codec and each selected generic algorithm over
the identical bytes, verifying every round trip. Results are printed as an
aligned table on stdout.`,
	RunE: runBench,
}

func init() {
	benchCmd.Flags().IntVar(&benchBufferSize, "buffer-size", 1024*1024, "uncompressed log buffer size in bytes")
	benchCmd.Flags().IntVar(&benchTrials, "trials", 3, "timed passes per algorithm")
	benchCmd.Flags().Uint64Var(&benchSeed, "seed", 0, "seed for all workload generators")
	benchCmd.Flags().StringSliceVar(&benchCodecs, "codecs", []string{"none", "gzip", "s2"}, "generic codecs to compare (none, gzip, s2, lz4, zstd)")
	benchCmd.Flags().StringSliceVar(&benchDouble, "double", nil, "codecs to additionally run over the structural output")
	benchCmd.Flags().StringVar(&benchDatasets, "datasets", "", "substring filter on dataset names")
	benchCmd.Flags().BoolVar(&benchStructural, "structural", true, "run the structural codec")

	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	defer logger.Sync() //nolint:errcheck

	codecs, err := parseCodecNames(benchCodecs)
	if err != nil {
		return err
	}
	double, err := parseCodecNames(benchDouble)
	if err != nil {
		return err
	}

	datasets := bench.DefaultDatasets()
	if benchDatasets != "" {
		filtered := datasets[:0]
		for _, ds := range datasets {
			if strings.Contains(ds.Name, benchDatasets) {
				filtered = append(filtered, ds)
			}
		}
		datasets = filtered
	}
	if len(datasets) == 0 {
		return fmt.Errorf("no dataset matches filter %q", benchDatasets)
	}

	runner := bench.NewRunner(bench.Config{
		BufferSize: benchBufferSize,
		Trials:     benchTrials,
		Seed:       benchSeed,
		Structural: benchStructural,
		Codecs:     codecs,
		DoublePass: double,
		Logger:     logger,
	})
	defer runner.Close()

	logger.Info("starting benchmark",
		zap.Int("buffer_size", benchBufferSize),
		zap.Int("trials", benchTrials),
		zap.Int("datasets", len(datasets)),
	)

	results, err := runner.Run(datasets)
	if err != nil {
		return err
	}

	bench.Report(os.Stdout, results)

	return nil
}

func parseCodecNames(names []string) ([]format.CompressionType, error) {
	var types []format.CompressionType
	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "none", "memcpy":
			types = append(types, format.CompressionNone)
		case "gzip":
			types = append(types, format.CompressionGzip)
		case "s2", "snappy":
			types = append(types, format.CompressionS2)
		case "lz4":
			types = append(types, format.CompressionLZ4)
		case "zstd":
			types = append(types, format.CompressionZstd)
		default:
			return nil, fmt.Errorf("unknown codec %q", name)
		}
	}

	return types, nil
}
