package cli

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

const Suffix = ".rlz"

var ErrInvalidInputFile = errors.New("invalid input file")

func CompressedName(in string) string {
	return in + Suffix
}

// DecompressedName strips the .rlz suffix from in. The base name must have
// something left once the suffix is removed.
func DecompressedName(in string) (string, error) {
	base := filepath.Base(in)
	if !strings.HasSuffix(base, Suffix) || len(base) == len(Suffix) {
		return "", errors.Wrapf(ErrInvalidInputFile, "%s does not end in %s", in, Suffix)
	}
	return strings.TrimSuffix(in, Suffix), nil
}
