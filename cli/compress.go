package cli

import (
	"io"
	"io/ioutil"
	"os"
	"time"

	"rlz/crypto"
	"rlz/log"
	"rlz/rle"

	"github.com/pkg/errors"
)

var (
	ErrVerifyFailed = errors.New("decoded output does not match input")

	compressLogger = log.WithModule("compress")
)

type CompressOpts struct {
	Encoder *rle.Encoder
	Verify  bool
}

type CompressStats struct {
	InputBytes  int
	OutputBytes int
	Records     int
	Workers     int
	Elapsed     time.Duration
	Digest      crypto.Hash
}

// Ratio returns the output size as a fraction of the input size.
func (s *CompressStats) Ratio() float64 {
	if s.InputBytes == 0 {
		return 0
	}
	return float64(s.OutputBytes) / float64(s.InputBytes)
}

// Compress encodes input and, if requested, checks that the encoding
// decodes back to input before returning it.
func Compress(input []byte, opts *CompressOpts) ([]byte, *CompressStats, error) {
	start := time.Now()
	encoded, err := opts.Encoder.Encode(input)
	if err != nil {
		return nil, nil, errors.Wrap(err, "error encoding input")
	}

	stats := &CompressStats{
		InputBytes:  len(input),
		OutputBytes: len(encoded),
		Records:     len(encoded) / rle.RecordSize,
		Workers:     opts.Encoder.Workers(),
	}
	if opts.Verify {
		digest, err := verify(input, encoded, opts.Encoder.Format())
		if err != nil {
			return nil, nil, err
		}
		stats.Digest = digest
	}
	stats.Elapsed = time.Since(start)
	return encoded, stats, nil
}

func verify(input []byte, encoded []byte, format rle.Format) (crypto.Hash, error) {
	want := crypto.Blake2B256(input)
	hw := crypto.NewHashWriter()
	if _, err := rle.NewDecoder(format, 0).Decode(encoded, hw); err != nil {
		return crypto.ZeroHash, errors.Wrap(err, "error decoding output for verification")
	}
	got := hw.Sum()
	if got != want || hw.Count() != uint64(len(input)) {
		return crypto.ZeroHash, errors.Wrapf(ErrVerifyFailed, "want %s, got %s", want, got)
	}
	compressLogger.Debug("verified output", "digest", got)
	return got, nil
}

// CompressFile compresses inPath into outPath. outPath is only created once
// the whole encoding has succeeded.
func CompressFile(inPath string, outPath string, opts *CompressOpts) (*CompressStats, error) {
	input, err := ReadInputFile(inPath)
	if err != nil {
		return nil, err
	}
	encoded, stats, err := Compress(input, opts)
	if err != nil {
		return nil, err
	}
	if err := WriteFileAtomic(outPath, encoded, 0644); err != nil {
		return nil, err
	}
	compressLogger.Debug("wrote compressed file", "path", outPath, "bytes", len(encoded))
	return stats, nil
}

// CompressTo compresses inPath and writes the encoding to w.
func CompressTo(w io.Writer, inPath string, opts *CompressOpts) (*CompressStats, error) {
	input, err := ReadInputFile(inPath)
	if err != nil {
		return nil, err
	}
	encoded, stats, err := Compress(input, opts)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(encoded); err != nil {
		return nil, errors.Wrap(err, "error writing compressed output")
	}
	return stats, nil
}

// ReadInputFile reads the whole of path into memory. Encoding needs random
// access to every chunk at once, so the input is never streamed.
func ReadInputFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "error opening input file")
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, errors.Wrap(err, "error reading input file size")
	}
	if stat.IsDir() {
		return nil, errors.Wrapf(ErrInvalidInputFile, "%s is a directory", path)
	}
	compressLogger.Trace("reading input file", "path", path, "size", stat.Size())

	data, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, errors.Wrap(err, "error reading input file")
	}
	return data, nil
}
