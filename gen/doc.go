// Package gen produces the synthetic workloads the benchmark harness feeds
// through the codecs: random and incremented numeric arguments, zipfian
// index sampling, and frequency-weighted English text.
//
// Every generator is deterministic for a given seed so datasets are
// reproducible run to run.
package gen
