package logbuf

import "github.com/logpack/logpack/format"

// Record is one reconstructed log entry produced by the decompressor.
// Exactly one of the argument slices is populated, selected by Kind.
type Record struct {
	// Timestamp is the monotonic counter value sampled when the record was
	// appended.
	Timestamp uint64
	// Kind selects which argument slice carries this record's payload.
	Kind format.ArgKind

	Texts   []string
	Ints    []int32
	Longs   []int64
	Doubles []float64
}

// Arity returns the record's argument count.
func (r *Record) Arity() int {
	switch r.Kind {
	case format.KindText:
		return len(r.Texts)
	case format.KindInt:
		return len(r.Ints)
	case format.KindLong:
		return len(r.Longs)
	case format.KindDouble:
		return len(r.Doubles)
	default:
		return 0
	}
}

// FormatID returns the banded wire identifier for the record.
func (r *Record) FormatID() format.FormatID {
	return format.NewFormatID(r.Kind, r.Arity())
}
