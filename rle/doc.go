/*
Package rle implements a run-length codec whose encoder runs in parallel.

An encoded stream is a flat concatenation of fixed-size records with no
header:

	+----------------------+--------+
	| count (8 bytes)      | symbol |
	+----------------------+--------+

The count is a 64-bit unsigned integer in the byte order chosen by Format
(little endian by default) and is always at least 1. A canonical stream
never holds two adjacent records with the same symbol.

Encoding splits the input into one contiguous chunk per worker, encodes the
chunks concurrently into disjoint regions of one output buffer, then walks
the chunk seams in order, folding any run that was cut by a seam back into
a single record:

	enc, err := rle.NewEncoder(4, rle.DefaultFormat)
	if err != nil {
		return err
	}
	encoded, err := enc.Encode(data)

Decoding is sequential and streams into any io.Writer:

	n, err := rle.NewDecoder(rle.DefaultFormat, 0).DecodeStream(r, w)
*/
package rle
