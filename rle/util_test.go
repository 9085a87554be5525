package rle

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

var bigEndian binary.ByteOrder = binary.BigEndian

func encodeRecords(t *testing.T, f Format, records ...Record) []byte {
	out := make([]byte, len(records)*RecordSize)
	for i, rec := range records {
		f.PutRecord(out[i*RecordSize:], rec)
	}
	return out
}

func decodeRecords(t *testing.T, f Format, encoded []byte) []Record {
	records, err := f.Records(encoded)
	require.NoError(t, err)
	return records
}

func rec(count uint64, symbol byte) Record {
	return Record{Count: count, Symbol: symbol}
}
