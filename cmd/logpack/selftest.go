package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/logpack/logpack/internal/pool"
	"github.com/logpack/logpack/logbuf"
)

var selftestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "Encode, compress, and dump a known record sequence",
	Long: `Exercises the encoder, compressor, and decompressor over a fixed
mix of integer, long, and string records. The decompressed records are
dumped to stdout for inspection along with the size totals.`,
	RunE: runSelftest,
}

func init() {
	rootCmd.AddCommand(selftestCmd)
}

func runSelftest(cmd *cobra.Command, args []string) error {
	buf := make([]byte, 1024*1024)
	enc := logbuf.NewEncoder(buf)

	// Integer records at arities 0 through 9 with an incrementing counter.
	counter := int32(0)
	for arity := 0; arity < 10; arity++ {
		nums := make([]int32, arity)
		for i := range nums {
			counter++
			nums[i] = counter
		}
		if !enc.AppendInts(nums) {
			return fmt.Errorf("selftest: int record with %d args did not fit", arity)
		}
	}

	// Long records at the same arities, offset so widths vary.
	longCounter := int64(0)
	for arity := 0; arity < 10; arity++ {
		nums := make([]int64, arity)
		for i := range nums {
			longCounter++
			nums[i] = longCounter + 1000
		}
		if !enc.AppendLongs(nums) {
			return fmt.Errorf("selftest: long record with %d args did not fit", arity)
		}
	}

	strs := []string{
		"First string",
		"Second string",
		"Third one",
		"Fourth",
		"And so on",
	}
	if !enc.AppendTexts(nil) || !enc.AppendTexts(strs[:4]) || !enc.AppendTexts(strs[4:]) {
		return fmt.Errorf("selftest: string records did not fit")
	}

	out := pool.GetScratchBuffer()
	defer pool.PutScratchBuffer(out)
	out.Resize(logbuf.CompressBound(enc.Len()))

	n, err := logbuf.Compress(out.Bytes(), enc.Bytes())
	if err != nil {
		return fmt.Errorf("selftest: compress: %w", err)
	}

	if err := logbuf.Dump(os.Stdout, out.Bytes()[:n]); err != nil {
		return fmt.Errorf("selftest: dump: %w", err)
	}

	fmt.Printf("\nUncompressed size was %d\n", enc.Len())
	fmt.Printf("Compressed size was %d\n", n)

	return nil
}
