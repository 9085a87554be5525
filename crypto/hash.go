package crypto

import (
	"encoding/hex"
	"hash"

	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"
)

type Hash [32]byte

var ZeroHash Hash

func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

func (h Hash) Bytes() []byte {
	return h[:]
}

func Blake2B256(data ...[]byte) Hash {
	w := NewHashWriter()
	for _, chunk := range data {
		w.Write(chunk)
	}
	return w.Sum()
}

// HashWriter computes a BLAKE2b-256 digest of everything written to it.
// Decoded streams are hashed through it so they never need to be held in
// memory to be compared.
type HashWriter struct {
	h     hash.Hash
	count uint64
}

func NewHashWriter() *HashWriter {
	// never returns an error if key is nil
	h, _ := blake2b.New256(nil)
	return &HashWriter{
		h: h,
	}
}

func (w *HashWriter) Write(p []byte) (int, error) {
	n, err := w.h.Write(p)
	w.count += uint64(n)
	return n, err
}

// Count returns the number of bytes hashed so far.
func (w *HashWriter) Count() uint64 {
	return w.count
}

func (w *HashWriter) Sum() Hash {
	var out Hash
	copy(out[:], w.h.Sum(nil))
	return out
}

func NewHashFromBytes(b []byte) (Hash, error) {
	if len(b) != 32 {
		return ZeroHash, errors.New("hash must be 32 bytes")
	}
	var h Hash
	copy(h[:], b)
	return h, nil
}

func NewHashFromHex(in string) (Hash, error) {
	b, err := hex.DecodeString(in)
	if err != nil {
		return ZeroHash, errors.Wrap(err, "invalid hex")
	}
	return NewHashFromBytes(b)
}
