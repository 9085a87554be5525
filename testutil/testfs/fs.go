package testfs

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func NewTempDir(t *testing.T) (string, func()) {
	dir, err := ioutil.TempDir("", "rlztest_")
	require.NoError(t, err)
	return dir, func() {
		require.NoError(t, os.RemoveAll(dir))
	}
}

// WriteFile creates name inside dir with the given contents and returns its
// path.
func WriteFile(t *testing.T, dir string, name string, data []byte) string {
	p := filepath.Join(dir, name)
	require.NoError(t, ioutil.WriteFile(p, data, 0644))
	return p
}

func ReadFile(t *testing.T, path string) []byte {
	data, err := ioutil.ReadFile(path)
	require.NoError(t, err)
	return data
}
