package cli

import (
	"bufio"
	"io"
	"os"
	"time"

	"rlz/log"
	"rlz/rle"

	"github.com/pkg/errors"
)

var decompressLogger = log.WithModule("decompress")

type DecompressStats struct {
	InputBytes  int64
	OutputBytes uint64
	Records     uint64
	Elapsed     time.Duration
}

// Decompress streams the records in r through dec into w.
func Decompress(r io.Reader, w io.Writer, dec *rle.Decoder) (*DecompressStats, error) {
	start := time.Now()
	cw := NewCountingWriter(w)
	records, err := dec.DecodeStream(r, cw)
	if err != nil {
		return nil, errors.Wrap(err, "error decoding input")
	}
	return &DecompressStats{
		InputBytes:  int64(records) * rle.RecordSize,
		OutputBytes: cw.Count(),
		Records:     records,
		Elapsed:     time.Since(start),
	}, nil
}

// DecompressFile decompresses inPath into outPath. Input whose size is not
// a whole number of records is rejected before outPath is created, and a
// stream that turns out to be corrupt part way leaves no output behind.
func DecompressFile(inPath string, outPath string, dec *rle.Decoder) (*DecompressStats, error) {
	f, err := openEncoded(inPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var stats *DecompressStats
	err = WithAtomicFile(outPath, 0644, func(w io.Writer) error {
		var err error
		stats, err = Decompress(bufio.NewReader(f), w, dec)
		return err
	})
	if err != nil {
		return nil, err
	}
	decompressLogger.Debug("wrote decompressed file", "path", outPath, "bytes", stats.OutputBytes)
	return stats, nil
}

// DecompressTo decompresses inPath into w.
func DecompressTo(w io.Writer, inPath string, dec *rle.Decoder) (*DecompressStats, error) {
	f, err := openEncoded(inPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	bw := bufio.NewWriter(w)
	stats, err := Decompress(bufio.NewReader(f), bw, dec)
	if err != nil {
		return nil, err
	}
	if err := bw.Flush(); err != nil {
		return nil, errors.Wrap(err, "error flushing output")
	}
	return stats, nil
}

func openEncoded(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "error opening input file")
	}
	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, errors.Wrap(err, "error reading input file size")
	}
	if stat.IsDir() {
		f.Close()
		return nil, errors.Wrapf(ErrInvalidInputFile, "%s is a directory", path)
	}
	if stat.Size()%rle.RecordSize != 0 {
		f.Close()
		return nil, errors.Wrapf(rle.ErrMalformedStream, "size %d is not a multiple of %d", stat.Size(), rle.RecordSize)
	}
	return f, nil
}
