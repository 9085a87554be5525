package rle

import "github.com/pkg/errors"

var (
	// ErrInvalidWorkerCount is returned when an encoder is configured with
	// fewer than one worker.
	ErrInvalidWorkerCount = errors.New("worker count must be a positive integer")

	// ErrAllocation is returned when the output buffer for an encode call
	// cannot be sized or acquired.
	ErrAllocation = errors.New("could not allocate output buffer")

	// ErrWorkerFailure is returned when a chunk worker terminates abnormally.
	// No partial output survives it.
	ErrWorkerFailure = errors.New("chunk worker failed")

	// ErrMalformedStream is returned by the decoder when the encoded input is
	// truncated or contains an invalid record.
	ErrMalformedStream = errors.New("malformed record stream")

	// ErrShortRecord is returned when fewer than RecordSize bytes are
	// available to decode a record.
	ErrShortRecord = errors.New("record too short")

	// ErrInvalidByteOrder is returned when a byte order name is not
	// recognized.
	ErrInvalidByteOrder = errors.New("invalid byte order")
)
