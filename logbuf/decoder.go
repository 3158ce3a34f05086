package logbuf

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/logpack/logpack/encoding"
	"github.com/logpack/logpack/endian"
	"github.com/logpack/logpack/errs"
	"github.com/logpack/logpack/format"
)

// Decompress reconstructs the records of a compressed stream produced by
// Compress. Decoding is strictly sequential: the stream carries no record
// count, so the pass consumes records until it has processed exactly
// len(src) bytes.
//
// This direction exists for diagnostics and verification; it exactly inverts
// Compress for any stream Compress produced, and it refuses malformed input
// rather than reading past the declared length.
//
// Errors:
//   - errs.ErrMalformedData: a decoded format identifier falls outside all
//     four bands.
//   - errs.ErrTruncatedData: the input ends inside a record.
func Decompress(src []byte) ([]Record, error) {
	var records []Record

	pos := 0
	lastTimestamp := uint64(0)
	for pos < len(src) {
		rec, n, err := decodeRecord(src[pos:], lastTimestamp)
		if err != nil {
			return nil, fmt.Errorf("record %d at offset %d: %w", len(records), pos, err)
		}

		lastTimestamp = rec.Timestamp
		pos += n
		records = append(records, rec)
	}

	return records, nil
}

// decodeRecord decodes one compressed record from the front of src and
// returns it along with the bytes consumed.
func decodeRecord(src []byte, prevTS uint64) (Record, int, error) {
	id, ts, pos, err := encoding.DecodeHeader(src, prevTS)
	if err != nil {
		return Record{}, 0, err
	}
	if !id.Valid() {
		return Record{}, 0, fmt.Errorf("%w: format id %d", errs.ErrMalformedData, id)
	}

	rec := Record{
		Timestamp: ts,
		Kind:      id.Kind(),
	}
	arity := id.Arity()

	switch rec.Kind {
	case format.KindText:
		rec.Texts = make([]string, 0, arity)
		for i := 0; i < arity; i++ {
			end := bytes.IndexByte(src[pos:], 0)
			if end < 0 {
				return Record{}, 0, fmt.Errorf("%w: unterminated string argument %d", errs.ErrTruncatedData, i)
			}
			rec.Texts = append(rec.Texts, string(src[pos:pos+end]))
			pos += end + 1
		}

	case format.KindInt:
		values, n, err := unpackPairs(src[pos:], arity, 4)
		if err != nil {
			return Record{}, 0, err
		}
		rec.Ints = make([]int32, arity)
		for i, v := range values {
			rec.Ints[i] = int32(uint32(v))
		}
		pos += n

	case format.KindLong:
		values, n, err := unpackPairs(src[pos:], arity, 8)
		if err != nil {
			return Record{}, 0, err
		}
		rec.Longs = make([]int64, arity)
		for i, v := range values {
			rec.Longs[i] = int64(v)
		}
		pos += n

	case format.KindDouble:
		if len(src)-pos < 8*arity {
			return Record{}, 0, fmt.Errorf("%w: double payload", errs.ErrTruncatedData)
		}
		engine := endian.GetLittleEndianEngine()
		rec.Doubles = make([]float64, arity)
		for i := range rec.Doubles {
			rec.Doubles[i] = math.Float64frombits(engine.Uint64(src[pos:]))
			pos += 8
		}
	}

	return rec, pos, nil
}

// unpackPairs consumes arity width-packed values laid out in two-nibble
// pairs, mirroring compressPairs, and returns them zero-extended along with
// the bytes consumed.
func unpackPairs(src []byte, arity, nativeWidth int) ([]uint64, int, error) {
	values := make([]uint64, 0, arity)

	pos := 0
	for i := 0; i < arity; i += 2 {
		if pos >= len(src) {
			return nil, 0, fmt.Errorf("%w: argument control byte", errs.ErrTruncatedData)
		}
		w1, w2 := encoding.SplitNibbles(src[pos])
		pos++

		if w1 > nativeWidth || w2 > nativeWidth {
			return nil, 0, fmt.Errorf("%w: width nibble exceeds native width %d", errs.ErrMalformedData, nativeWidth)
		}

		need := w1
		if i+1 < arity {
			need += w2
		}
		if len(src)-pos < need {
			return nil, 0, fmt.Errorf("%w: packed argument bytes", errs.ErrTruncatedData)
		}

		values = append(values, encoding.Unpack(src[pos:], w1))
		pos += w1

		if i+1 < arity {
			values = append(values, encoding.Unpack(src[pos:], w2))
			pos += w2
		}
	}

	return values, pos, nil
}

// Dump decodes a compressed stream and writes one human-readable block per
// record: index, timestamp, delta from the previous record, and each
// argument value. This is the diagnostic rendering of the decompressor; a
// decode failure is reported in the output as well as returned.
func Dump(w io.Writer, src []byte) error {
	pos := 0
	index := 0
	lastTimestamp := uint64(0)

	for pos < len(src) {
		rec, n, err := decodeRecord(src[pos:], lastTimestamp)
		if err != nil {
			fmt.Fprintf(w, "malformed data at offset %d: %v\n", pos, err)
			return err
		}

		delta := rec.Timestamp - lastTimestamp
		lastTimestamp = rec.Timestamp
		pos += n

		fmt.Fprintf(w, "[%d] at %d (+%d): %d %s args\n",
			index, rec.Timestamp, delta, rec.Arity(), rec.Kind)

		switch rec.Kind {
		case format.KindText:
			for i, s := range rec.Texts {
				fmt.Fprintf(w, "\t%d: %s\n", i, s)
			}
		case format.KindInt:
			for i, v := range rec.Ints {
				fmt.Fprintf(w, "\t%d: %d\n", i, v)
			}
		case format.KindLong:
			for i, v := range rec.Longs {
				fmt.Fprintf(w, "\t%d: %d\n", i, v)
			}
		case format.KindDouble:
			for i, v := range rec.Doubles {
				fmt.Fprintf(w, "\t%d: %f\n", i, v)
			}
		}

		index++
	}

	return nil
}
