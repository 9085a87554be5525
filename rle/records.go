package rle

import "github.com/pkg/errors"

// Records decodes every record in encoded without expanding them.
func (f Format) Records(encoded []byte) ([]Record, error) {
	if len(encoded)%RecordSize != 0 {
		return nil, errors.Wrapf(ErrMalformedStream, "length %d is not a multiple of %d", len(encoded), RecordSize)
	}

	records := make([]Record, 0, len(encoded)/RecordSize)
	for off := 0; off < len(encoded); off += RecordSize {
		rec, err := f.Record(encoded[off:])
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// IsCanonical reports whether no two adjacent records share a symbol.
func IsCanonical(records []Record) bool {
	for i := 1; i < len(records); i++ {
		if records[i].Symbol == records[i-1].Symbol {
			return false
		}
	}
	return true
}

// DecodedLen returns the number of bytes records expand to, and false if
// the total does not fit in a uint64.
func DecodedLen(records []Record) (uint64, bool) {
	var total uint64
	for _, rec := range records {
		if total+rec.Count < total {
			return 0, false
		}
		total += rec.Count
	}
	return total, true
}
