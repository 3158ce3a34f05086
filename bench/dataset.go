package bench

import (
	"fmt"
	"math/rand/v2"

	"github.com/logpack/logpack/gen"
	"github.com/logpack/logpack/logbuf"
)

// Dataset names one synthetic workload and knows how to fill an encoder
// buffer with it. Fill appends records until the encoder refuses and returns
// the record count; generators arrive freshly seeded so every trial sees the
// same data.
type Dataset struct {
	Name string
	Fill func(enc *logbuf.Encoder, seed uint64) int
}

// numericDataset builds a dataset of records carrying arity identical
// numeric arguments drawn from one ArgumentGenerator method.
func numericDataset[T int32 | int64 | float64](name string, arity int, next func(*gen.ArgumentGenerator) T) Dataset {
	return Dataset{
		Name: fmt.Sprintf("%s x%d", name, arity),
		Fill: func(enc *logbuf.Encoder, seed uint64) int {
			g := gen.NewArgumentGenerator(seed)
			args := make([]T, arity)

			count := 0
			for {
				for i := range args {
					args[i] = next(g)
				}
				if !appendArgs(enc, args) {
					return count
				}
				count++
			}
		},
	}
}

// appendArgs dispatches a typed argument slice to the matching encoder call.
func appendArgs[T int32 | int64 | float64](enc *logbuf.Encoder, args []T) bool {
	switch a := any(args).(type) {
	case []int32:
		return enc.AppendInts(a)
	case []int64:
		return enc.AppendLongs(a)
	case []float64:
		return enc.AppendDoubles(a)
	default:
		return false
	}
}

// randCharsDataset logs one uniformly random printable string per record.
func randCharsDataset(length int) Dataset {
	return Dataset{
		Name: fmt.Sprintf("rand %d chars", length),
		Fill: func(enc *logbuf.Encoder, seed uint64) int {
			rng := rand.New(rand.NewPCG(seed, seed))

			count := 0
			buf := make([]byte, length)
			for {
				fillPrintable(rng, buf)
				if !enc.AppendTexts([]string{string(buf)}) {
					return count
				}
				count++
			}
		},
	}
}

// topWordsDataset logs sentences assembled from the most common English
// words, weighted by their real-world frequency.
func topWordsDataset(length, wordLimit int) Dataset {
	return Dataset{
		Name: fmt.Sprintf("top%d %d chars", wordLimit, length),
		Fill: func(enc *logbuf.Encoder, seed uint64) int {
			words := gen.NewWordGenerator(seed)
			words.SetWordLimit(wordLimit)

			count := 0
			for {
				if !enc.AppendTexts([]string{words.Sentence(length)}) {
					return count
				}
				count++
			}
		},
	}
}

// zipfStringsDataset draws a zipfian-distributed index per record and uses
// it to seed a deterministic character generator, yielding a pool of
// numUnique distinct strings whose popularity follows the zipfian curve.
func zipfStringsDataset(length int, numUnique uint64) Dataset {
	return Dataset{
		Name: fmt.Sprintf("zipf%dk %d chars", numUnique/1000, length),
		Fill: func(enc *logbuf.Encoder, seed uint64) int {
			zf := gen.NewZipfian(numUnique, gen.DefaultZipfTheta)
			zf.Reset(seed)

			count := 0
			buf := make([]byte, length)
			for {
				strSeed := zf.Next()
				rng := rand.New(rand.NewPCG(strSeed, strSeed))
				fillPrintable(rng, buf)

				if !enc.AppendTexts([]string{string(buf)}) {
					return count
				}
				count++
			}
		},
	}
}

func fillPrintable(rng *rand.Rand, buf []byte) {
	for i := range buf {
		buf[i] = byte(' ' + rng.IntN('~'-' '+1))
	}
}

// DefaultDatasets returns the standard workload matrix: numeric records at a
// few arities in compressible and incompressible flavors, plus the three
// string distributions.
func DefaultDatasets() []Dataset {
	return []Dataset{
		numericDataset("randSmallInt", 4, (*gen.ArgumentGenerator).RandSmallInt),
		numericDataset("randBigInt", 4, (*gen.ArgumentGenerator).RandBigInt),
		numericDataset("incInt", 4, (*gen.ArgumentGenerator).IncInt),
		numericDataset("randSmallLong", 4, (*gen.ArgumentGenerator).RandSmallLong),
		numericDataset("randBigLong", 4, (*gen.ArgumentGenerator).RandBigLong),
		numericDataset("incSmallLong", 4, (*gen.ArgumentGenerator).IncSmallLong),
		numericDataset("randSmallDouble", 2, (*gen.ArgumentGenerator).RandSmallDouble),
		numericDataset("incBigDouble", 2, (*gen.ArgumentGenerator).IncBigDouble),
		randCharsDataset(64),
		topWordsDataset(64, 100),
		zipfStringsDataset(64, 100000),
	}
}
