package rle

import (
	"encoding/binary"
	"fmt"

	"github.com/pkg/errors"
)

const (
	// CountSize is the width of a record's run length in bytes.
	CountSize = 8
	// RecordSize is the serialized size of a single run record: the count
	// followed by one symbol byte.
	RecordSize = CountSize + 1
)

// Record is a single run: Count consecutive copies of Symbol. A valid record
// always has Count >= 1.
type Record struct {
	Count  uint64
	Symbol byte
}

func (r Record) String() string {
	return fmt.Sprintf("(%d, %#02x)", r.Count, r.Symbol)
}

// Format pins the on-disk layout of a record's count. The count is always
// 64 bits wide; only its byte order varies.
type Format struct {
	Order binary.ByteOrder
}

// DefaultFormat is little endian, which matches the layout written by the
// native tool on amd64 and arm64 hosts.
var DefaultFormat = Format{Order: binary.LittleEndian}

// NewFormat returns the format for the named byte order, either "little" or
// "big".
func NewFormat(order string) (Format, error) {
	bo, err := ParseByteOrder(order)
	if err != nil {
		return Format{}, err
	}
	return Format{Order: bo}, nil
}

func ParseByteOrder(name string) (binary.ByteOrder, error) {
	switch name {
	case "little", "":
		return binary.LittleEndian, nil
	case "big":
		return binary.BigEndian, nil
	default:
		return nil, errors.Wrapf(ErrInvalidByteOrder, "%q", name)
	}
}

func (f Format) order() binary.ByteOrder {
	if f.Order == nil {
		return binary.LittleEndian
	}
	return f.Order
}

// PutRecord writes rec into the first RecordSize bytes of dst and returns
// RecordSize. It panics if dst is too small, like binary.PutUint64.
func (f Format) PutRecord(dst []byte, rec Record) int {
	_ = dst[RecordSize-1]
	f.order().PutUint64(dst, rec.Count)
	dst[CountSize] = rec.Symbol
	return RecordSize
}

// Record decodes the record stored in the first RecordSize bytes of src.
func (f Format) Record(src []byte) (Record, error) {
	if len(src) < RecordSize {
		return Record{}, errors.Wrapf(ErrShortRecord, "have %d bytes, need %d", len(src), RecordSize)
	}
	return Record{
		Count:  f.order().Uint64(src),
		Symbol: src[CountSize],
	}, nil
}

func (f Format) count(src []byte) uint64 {
	return f.order().Uint64(src)
}

func (f Format) putCount(dst []byte, count uint64) {
	f.order().PutUint64(dst, count)
}
