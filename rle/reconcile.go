package rle

import "math"

// reconcile compacts the per-chunk sequences in out into a single sequence
// starting at offset 0 and returns its length. Results must be in chunk
// order. A run split across a seam is folded into the record preceding the
// seam; empty chunks contribute nothing and do not break a run.
//
// The write cursor never passes the start of the next unread sequence, so
// moving bytes left with copy is safe.
func (f Format) reconcile(out []byte, results []chunkResult) int {
	var cursor int
	for _, res := range results {
		if res.OutLen == 0 {
			continue
		}
		seq := out[res.OutStart : res.OutStart+res.OutLen]

		if cursor > 0 {
			last := out[cursor-RecordSize : cursor]
			if last[CountSize] == seq[CountSize] {
				prev := f.count(last)
				next := f.count(seq)
				// a merged count that would overflow stays split
				if prev <= math.MaxUint64-next {
					f.putCount(last, prev+next)
					seq = seq[RecordSize:]
				}
			}
		}

		cursor += copy(out[cursor:], seq)
	}
	return cursor
}
