package rle

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Encoder run-length encodes buffers by splitting them across a fixed number
// of workers. An Encoder is immutable and safe for concurrent use.
type Encoder struct {
	workers int
	format  Format

	// swapped out in tests to exercise worker failure
	encodeChunk func(dst []byte, src []byte) int
}

func NewEncoder(workers int, format Format) (*Encoder, error) {
	if workers < 1 {
		return nil, errors.Wrapf(ErrInvalidWorkerCount, "got %d", workers)
	}
	return &Encoder{
		workers:     workers,
		format:      format,
		encodeChunk: format.encodeChunk,
	}, nil
}

// Encode run-length encodes input with workers goroutines using the default
// format.
func Encode(input []byte, workers int) ([]byte, error) {
	enc, err := NewEncoder(workers, DefaultFormat)
	if err != nil {
		return nil, err
	}
	return enc.Encode(input)
}

func (e *Encoder) Workers() int {
	return e.workers
}

func (e *Encoder) Format() Format {
	return e.format
}

// MaxEncodedLen returns the size of the encoding of n bytes with no
// repeated symbols, which bounds the encoding of any n-byte input.
func MaxEncodedLen(n int) (int, error) {
	if n < 0 || n > math.MaxInt/RecordSize {
		return 0, errors.Wrapf(ErrAllocation, "input of %d bytes is too large", n)
	}
	return n * RecordSize, nil
}

// Encode returns the canonical encoding of input. Every worker writes into
// its own region of a single output buffer sized for the no-compression
// case; once all of them have finished the regions are stitched together
// and runs split across chunk seams are merged.
//
// Encoding the same input with a different worker count produces the same
// decoded bytes.
func (e *Encoder) Encode(input []byte) ([]byte, error) {
	if len(input) == 0 {
		return []byte{}, nil
	}

	size, err := MaxEncodedLen(len(input))
	if err != nil {
		return nil, err
	}
	chunks, err := Partition(len(input), e.workers)
	if err != nil {
		return nil, err
	}
	out, err := allocate(size)
	if err != nil {
		return nil, err
	}

	results := make([]chunkResult, len(chunks))
	var g errgroup.Group
	for i, c := range chunks {
		i, c := i, c
		g.Go(func() (err error) {
			defer func() {
				if p := recover(); p != nil {
					err = errors.Wrapf(ErrWorkerFailure, "chunk %d: %v", c.Index, p)
				}
			}()

			outStart := c.Start * RecordSize
			region := out[outStart : outStart+c.Len*RecordSize]
			results[i] = chunkResult{
				Chunk:    c,
				OutStart: outStart,
				OutLen:   e.encodeChunk(region, input[c.Start:c.End()]),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	n := e.format.reconcile(out, results)
	encoded := make([]byte, n)
	copy(encoded, out[:n])
	return encoded, nil
}

func allocate(size int) (buf []byte, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = errors.Wrap(ErrAllocation, fmt.Sprint(p))
		}
	}()
	return make([]byte, size), nil
}
