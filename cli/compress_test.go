package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"rlz/crypto"
	"rlz/rle"
	"rlz/testutil/testfs"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func newOpts(t *testing.T, workers int, verify bool) *CompressOpts {
	enc, err := rle.NewEncoder(workers, rle.DefaultFormat)
	require.NoError(t, err)
	return &CompressOpts{
		Encoder: enc,
		Verify:  verify,
	}
}

func TestCompressFile_RoundTrip(t *testing.T) {
	dir, done := testfs.NewTempDir(t)
	defer done()

	data := append(bytes.Repeat([]byte("a"), 1000), bytes.Repeat([]byte("b"), 10)...)
	in := testfs.WriteFile(t, dir, "data", data)
	out := CompressedName(in)

	stats, err := CompressFile(in, out, newOpts(t, 3, true))
	require.NoError(t, err)
	require.Equal(t, len(data), stats.InputBytes)
	require.Equal(t, 2*rle.RecordSize, stats.OutputBytes)
	require.Equal(t, 2, stats.Records)
	require.Equal(t, 3, stats.Workers)
	require.Equal(t, crypto.Blake2B256(data), stats.Digest)
	require.InDelta(t, float64(18)/1010, stats.Ratio(), 0.0001)

	// decompress beside the original
	require.NoError(t, os.Remove(in))
	target, err := DecompressedName(out)
	require.NoError(t, err)
	require.Equal(t, in, target)

	dstats, err := DecompressFile(out, target, rle.NewDecoder(rle.DefaultFormat, 0))
	require.NoError(t, err)
	require.EqualValues(t, 2, dstats.Records)
	require.EqualValues(t, len(data), dstats.OutputBytes)
	require.EqualValues(t, 18, dstats.InputBytes)
	require.Equal(t, data, testfs.ReadFile(t, target))
}

func TestCompressFile_Empty(t *testing.T) {
	dir, done := testfs.NewTempDir(t)
	defer done()

	in := testfs.WriteFile(t, dir, "empty", nil)
	stats, err := CompressFile(in, CompressedName(in), newOpts(t, 4, true))
	require.NoError(t, err)
	require.Equal(t, 0, stats.OutputBytes)
	require.Equal(t, float64(0), stats.Ratio())
	require.Empty(t, testfs.ReadFile(t, CompressedName(in)))

	require.NoError(t, os.Remove(in))
	_, err = DecompressFile(CompressedName(in), in, rle.NewDecoder(rle.DefaultFormat, 0))
	require.NoError(t, err)
	require.Empty(t, testfs.ReadFile(t, in))
}

func TestCompressFile_Missing(t *testing.T) {
	dir, done := testfs.NewTempDir(t)
	defer done()

	in := filepath.Join(dir, "missing")
	_, err := CompressFile(in, CompressedName(in), newOpts(t, 1, false))
	require.Error(t, err)
	_, err = os.Stat(CompressedName(in))
	require.True(t, os.IsNotExist(err))

	_, err = CompressFile(dir, CompressedName(dir), newOpts(t, 1, false))
	require.True(t, errors.Is(err, ErrInvalidInputFile))
}

func TestCompressTo(t *testing.T) {
	dir, done := testfs.NewTempDir(t)
	defer done()
	in := testfs.WriteFile(t, dir, "data", []byte("aaabbbccc"))

	var out bytes.Buffer
	_, err := CompressTo(&out, in, newOpts(t, 2, false))
	require.NoError(t, err)
	encoded, err := rle.Encode([]byte("aaabbbccc"), 1)
	require.NoError(t, err)
	require.Equal(t, encoded, out.Bytes())

	enc := testfs.WriteFile(t, dir, "data.rlz", out.Bytes())
	var decoded bytes.Buffer
	_, err = DecompressTo(&decoded, enc, rle.NewDecoder(rle.DefaultFormat, 0))
	require.NoError(t, err)
	require.Equal(t, "aaabbbccc", decoded.String())
}

func TestDecompressFile_Malformed(t *testing.T) {
	dir, done := testfs.NewTempDir(t)
	defer done()

	in := testfs.WriteFile(t, dir, "bad.rlz", make([]byte, rle.RecordSize+1))
	_, err := DecompressFile(in, filepath.Join(dir, "bad"), rle.NewDecoder(rle.DefaultFormat, 0))
	require.True(t, errors.Is(err, rle.ErrMalformedStream))
	_, err = os.Stat(filepath.Join(dir, "bad"))
	require.True(t, os.IsNotExist(err))
}

func TestDecompressFile_CorruptRecord(t *testing.T) {
	dir, done := testfs.NewTempDir(t)
	defer done()

	encoded := make([]byte, 2*rle.RecordSize)
	rle.DefaultFormat.PutRecord(encoded, rle.Record{Count: 5, Symbol: 'a'})
	rle.DefaultFormat.PutRecord(encoded[rle.RecordSize:], rle.Record{Count: 0, Symbol: 'b'})
	in := testfs.WriteFile(t, dir, "corrupt.rlz", encoded)

	out := filepath.Join(dir, "corrupt")
	_, err := DecompressFile(in, out, rle.NewDecoder(rle.DefaultFormat, 0))
	require.True(t, errors.Is(err, rle.ErrMalformedStream))
	// the atomic writer discards the runs decoded before the bad record
	_, err = os.Stat(out)
	require.True(t, os.IsNotExist(err))
}
