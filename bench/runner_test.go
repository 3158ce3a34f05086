package bench

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/logpack/logpack/format"
)

func testConfig() Config {
	return Config{
		BufferSize: 64 * 1024,
		Trials:     2,
		Seed:       1,
		Structural: true,
		Codecs:     []format.CompressionType{format.CompressionNone, format.CompressionS2},
	}
}

func TestRunner_SmallRun(t *testing.T) {
	r := NewRunner(testConfig())
	defer r.Close()

	datasets := []Dataset{DefaultDatasets()[0]}
	results, err := r.Run(datasets)
	require.NoError(t, err)
	require.Len(t, results, 3) // structural + None + S2

	for _, res := range results {
		require.Positive(t, res.Records)
		require.Positive(t, res.InputBytes)
		require.Positive(t, res.OutputBytes)
		require.GreaterOrEqual(t, res.MeanSeconds, 0.0)
	}

	// Same input for every algorithm on the dataset.
	require.Equal(t, results[0].InputBytes, results[1].InputBytes)
	require.Equal(t, results[0].Records, results[2].Records)
}

func TestRunner_StructuralShrinksSmallInts(t *testing.T) {
	r := NewRunner(testConfig())
	defer r.Close()

	// randSmallInt: arguments of at most 16 significant bits.
	results, err := r.Run([]Dataset{DefaultDatasets()[0]})
	require.NoError(t, err)

	require.Equal(t, StructuralName, results[0].Algorithm)
	require.Less(t, results[0].Ratio(), 1.0)
}

func TestRunner_DoublePass(t *testing.T) {
	cfg := testConfig()
	cfg.Codecs = nil
	cfg.DoublePass = []format.CompressionType{format.CompressionS2}

	r := NewRunner(cfg)
	defer r.Close()

	results, err := r.Run([]Dataset{DefaultDatasets()[0]})
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.Equal(t, "structural+S2", results[1].Algorithm)
	require.Equal(t, results[0].InputBytes, results[1].InputBytes)
}

func TestRunner_DoublePassRequiresStructural(t *testing.T) {
	cfg := testConfig()
	cfg.Structural = false
	cfg.Codecs = nil
	cfg.DoublePass = []format.CompressionType{format.CompressionS2}

	r := NewRunner(cfg)
	defer r.Close()

	_, err := r.Run([]Dataset{DefaultDatasets()[0]})
	require.Error(t, err)
}

func TestRunner_Reproducible(t *testing.T) {
	run := func() []Result {
		r := NewRunner(testConfig())
		defer r.Close()

		results, err := r.Run([]Dataset{DefaultDatasets()[2]})
		require.NoError(t, err)

		return results
	}

	first := run()
	second := run()
	require.Equal(t, len(first), len(second))
	for i := range first {
		require.Equal(t, first[i].Records, second[i].Records)
		require.Equal(t, first[i].OutputBytes, second[i].OutputBytes)
	}
}

func TestDefaultDatasets_AllFillAndVerify(t *testing.T) {
	cfg := testConfig()
	cfg.Codecs = nil

	r := NewRunner(cfg)
	defer r.Close()

	results, err := r.Run(DefaultDatasets())
	require.NoError(t, err)
	require.Len(t, results, len(DefaultDatasets()))
}

func TestReport_Table(t *testing.T) {
	results := []Result{
		{
			Algorithm:   StructuralName,
			Dataset:     "randSmallInt x4",
			Records:     100,
			InputBytes:  3200,
			OutputBytes: 800,
			MeanSeconds: 0.001,
		},
	}

	var out bytes.Buffer
	Report(&out, results)

	text := out.String()
	require.True(t, strings.HasPrefix(text, "#Algorithm"))
	require.Contains(t, text, "randSmallInt x4")
	require.Contains(t, text, "0.2500") // ratio
}
