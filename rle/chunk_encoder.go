package rle

// chunkResult is the chunk-local output of one worker: Len bytes of records
// starting at OutStart in the shared output buffer.
type chunkResult struct {
	Chunk
	OutStart int
	OutLen   int
}

// encodeChunk writes the runs of src into dst and returns the number of
// bytes written. dst must hold RecordSize*len(src) bytes. The output is only
// canonical within the chunk; its first and last runs may continue in the
// neighbouring chunks.
func (f Format) encodeChunk(dst []byte, src []byte) int {
	if len(src) == 0 {
		return 0
	}

	var n int
	cur := src[0]
	count := uint64(1)
	for _, b := range src[1:] {
		if b == cur {
			count++
			continue
		}
		n += f.PutRecord(dst[n:], Record{Count: count, Symbol: cur})
		cur = b
		count = 1
	}
	n += f.PutRecord(dst[n:], Record{Count: count, Symbol: cur})
	return n
}
