package rle

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestEncode_Scenario(t *testing.T) {
	encoded, err := Encode([]byte("aaabbbccc"), 2)
	require.NoError(t, err)
	require.Equal(t, []Record{rec(3, 'a'), rec(3, 'b'), rec(3, 'c')}, decodeRecords(t, DefaultFormat, encoded))

	var out bytes.Buffer
	n, err := Decode(encoded, &out)
	require.NoError(t, err)
	require.EqualValues(t, 3, n)
	require.Equal(t, "aaabbbccc", out.String())
}

func TestEncode_Empty(t *testing.T) {
	for _, workers := range []int{1, 2, 8} {
		encoded, err := Encode(nil, workers)
		require.NoError(t, err)
		require.Empty(t, encoded)
	}
}

func TestEncode_InvalidWorkers(t *testing.T) {
	_, err := Encode([]byte("abc"), 0)
	require.True(t, errors.Is(err, ErrInvalidWorkerCount))
	_, err = NewEncoder(-3, DefaultFormat)
	require.True(t, errors.Is(err, ErrInvalidWorkerCount))
}

func TestEncode_SingleRun(t *testing.T) {
	input := bytes.Repeat([]byte{0x7f}, 1000)
	for _, workers := range []int{1, 2, 3, 7, 64, 999, 1000, 1001, 4096} {
		encoded, err := Encode(input, workers)
		require.NoError(t, err)
		require.Equal(t, []Record{rec(1000, 0x7f)}, decodeRecords(t, DefaultFormat, encoded), "workers=%d", workers)
	}
}

func TestEncode_MoreWorkersThanBytes(t *testing.T) {
	inputs := []string{"a", "ab", "aab", "abba", "zzzzy"}
	for _, in := range inputs {
		for workers := len(in) + 1; workers < len(in)+10; workers++ {
			encoded, err := Encode([]byte(in), workers)
			require.NoError(t, err)
			var out bytes.Buffer
			_, err = Decode(encoded, &out)
			require.NoError(t, err)
			require.Equal(t, in, out.String())
		}
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	inputs := [][]byte{
		[]byte("a"),
		[]byte("abcdefghijklmnopqrstuvwxyz"),
		bytes.Repeat([]byte("ab"), 500),
		append(bytes.Repeat([]byte{0}, 4096), bytes.Repeat([]byte{1}, 4097)...),
		randomRuns(r, 10000, 1),
		randomRuns(r, 10000, 20),
		randomRuns(r, 100000, 300),
	}
	for _, workers := range []int{1, 2, 3, 4, 5, 8, 13, 64} {
		for i, input := range inputs {
			for _, f := range []Format{DefaultFormat, {Order: bigEndian}} {
				enc, err := NewEncoder(workers, f)
				require.NoError(t, err)
				encoded, err := enc.Encode(input)
				require.NoError(t, err)
				records := decodeRecords(t, f, encoded)
				require.True(t, IsCanonical(records), "input %d, workers %d", i, workers)

				var out bytes.Buffer
				n, err := NewDecoder(f, 0).Decode(encoded, &out)
				require.NoError(t, err)
				require.EqualValues(t, len(records), n)
				require.Equal(t, input, out.Bytes(), "input %d, workers %d", i, workers)
			}
		}
	}
}

// Different worker counts cut runs in different places. Once the seams are
// reconciled the decoded content must agree; the encodings may only differ
// byte for byte if a merged count would overflow, which no test input can
// reach.
func TestEncode_WorkerCountIndependence(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	input := randomRuns(r, 50000, 50)

	reference, err := Encode(input, 1)
	require.NoError(t, err)
	for _, workers := range []int{2, 3, 6, 17, 128} {
		encoded, err := Encode(input, workers)
		require.NoError(t, err)

		var out bytes.Buffer
		_, err = Decode(encoded, &out)
		require.NoError(t, err)
		require.Equal(t, input, out.Bytes())
		require.Equal(t, reference, encoded)
	}
}

func TestEncode_WorkerFailure(t *testing.T) {
	enc, err := NewEncoder(4, DefaultFormat)
	require.NoError(t, err)
	enc.encodeChunk = func(dst []byte, src []byte) int {
		if len(src) > 0 && src[0] == 'c' {
			panic("boom")
		}
		return DefaultFormat.encodeChunk(dst, src)
	}

	encoded, err := enc.Encode([]byte("aaaabbbbccccdddd"))
	require.Nil(t, encoded)
	require.True(t, errors.Is(err, ErrWorkerFailure))
	require.Contains(t, err.Error(), "chunk 2")
}

func TestMaxEncodedLen(t *testing.T) {
	n, err := MaxEncodedLen(10)
	require.NoError(t, err)
	require.Equal(t, 90, n)

	_, err = MaxEncodedLen(-1)
	require.True(t, errors.Is(err, ErrAllocation))
}

func TestEncoder_Accessors(t *testing.T) {
	enc, err := NewEncoder(3, Format{Order: bigEndian})
	require.NoError(t, err)
	require.Equal(t, 3, enc.Workers())
	require.Equal(t, bigEndian, enc.Format().Order)
}

func randomRuns(r *rand.Rand, size int, maxRun int) []byte {
	out := make([]byte, 0, size)
	for len(out) < size {
		sym := byte(r.Intn(4))
		n := 1 + r.Intn(maxRun)
		for i := 0; i < n && len(out) < size; i++ {
			out = append(out, sym)
		}
	}
	return out
}
