package rle

import (
	"bufio"
	"bytes"
	"io"

	"github.com/pkg/errors"
)

// DefaultBufferSize is the size of the buffer between the decoder and its
// sink.
const DefaultBufferSize = 64 * 1024

// Decoder expands encoded record streams. The zero value is not usable; use
// NewDecoder.
type Decoder struct {
	format     Format
	bufferSize int
}

func NewDecoder(format Format, bufferSize int) *Decoder {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	return &Decoder{
		format:     format,
		bufferSize: bufferSize,
	}
}

// Decode writes the expansion of input to sink with the default format and
// returns the number of records decoded.
func Decode(input []byte, sink io.Writer) (uint64, error) {
	return NewDecoder(DefaultFormat, DefaultBufferSize).Decode(input, sink)
}

// Decode writes the expansion of input to sink and returns the number of
// records decoded. Nothing is written if the length of input is not a
// multiple of RecordSize.
func (d *Decoder) Decode(input []byte, sink io.Writer) (uint64, error) {
	if len(input)%RecordSize != 0 {
		return 0, errors.Wrapf(ErrMalformedStream, "length %d is not a multiple of %d", len(input), RecordSize)
	}
	return d.DecodeStream(bytes.NewReader(input), sink)
}

// DecodeStream reads records from r until EOF and writes their expansion to
// sink. Decoding stops at the first truncated or zero-length record; runs
// decoded before it have already been flushed to sink.
func (d *Decoder) DecodeStream(r io.Reader, sink io.Writer) (uint64, error) {
	w := bufio.NewWriterSize(sink, d.bufferSize)
	scratch := make([]byte, d.bufferSize)
	var buf [RecordSize]byte
	var n uint64

	fail := func(err error) (uint64, error) {
		if ferr := w.Flush(); ferr != nil {
			return n, errors.Wrap(ferr, "error flushing sink")
		}
		return n, err
	}

	for {
		_, err := io.ReadFull(r, buf[:])
		if err == io.EOF {
			break
		}
		if err == io.ErrUnexpectedEOF {
			return fail(errors.Wrapf(ErrMalformedStream, "truncated record at index %d", n))
		}
		if err != nil {
			return fail(errors.Wrap(err, "error reading record"))
		}

		rec, err := d.format.Record(buf[:])
		if err != nil {
			return fail(err)
		}
		if rec.Count == 0 {
			return fail(errors.Wrapf(ErrMalformedStream, "record %d has a zero count", n))
		}
		if err := writeRun(w, scratch, rec); err != nil {
			return n, errors.Wrap(err, "error writing run")
		}
		n++
	}

	if err := w.Flush(); err != nil {
		return n, errors.Wrap(err, "error flushing sink")
	}
	return n, nil
}

// writeRun writes rec.Count copies of rec.Symbol in blocks no larger than
// scratch.
func writeRun(w *bufio.Writer, scratch []byte, rec Record) error {
	if rec.Count == 1 {
		return w.WriteByte(rec.Symbol)
	}

	block := scratch
	if rec.Count < uint64(len(block)) {
		block = block[:rec.Count]
	}
	for i := range block {
		block[i] = rec.Symbol
	}

	remaining := rec.Count
	for remaining > 0 {
		k := block
		if remaining < uint64(len(k)) {
			k = k[:remaining]
		}
		if _, err := w.Write(k); err != nil {
			return err
		}
		remaining -= uint64(len(k))
	}
	return nil
}
