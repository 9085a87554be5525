package rle

import "github.com/pkg/errors"

// Chunk is the half-open input range [Start, Start+Len) assigned to worker
// Index.
type Chunk struct {
	Index int
	Start int
	Len   int
}

func (c Chunk) End() int {
	return c.Start + c.Len
}

// Partition splits length bytes into workers contiguous chunks. Every chunk
// but the last has length/workers bytes; the last absorbs the remainder.
// When length < workers all chunks but the last are empty.
func Partition(length int, workers int) ([]Chunk, error) {
	if workers < 1 {
		return nil, errors.Wrapf(ErrInvalidWorkerCount, "got %d", workers)
	}
	if length < 0 {
		return nil, errors.Errorf("negative input length %d", length)
	}

	base := length / workers
	chunks := make([]Chunk, workers)
	for i := 0; i < workers-1; i++ {
		chunks[i] = Chunk{
			Index: i,
			Start: i * base,
			Len:   base,
		}
	}
	last := workers - 1
	chunks[last] = Chunk{
		Index: last,
		Start: last * base,
		Len:   length - last*base,
	}
	return chunks, nil
}
