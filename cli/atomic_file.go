package cli

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"
)

type WriteCb func(w io.Writer) error

// WithAtomicFile writes to a temporary file beside path and renames it into
// place once cb returns successfully. If cb fails the temporary file is
// removed, so path is either fully written or left untouched.
func WithAtomicFile(path string, perm os.FileMode, cb WriteCb) (err error) {
	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return errors.Wrap(err, "error opening output file")
	}

	defer func() {
		if p := recover(); p != nil {
			f.Close()
			os.Remove(tmp)
			panic(p)
		} else if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	bw := bufio.NewWriter(f)
	if err = cb(bw); err != nil {
		return err
	}
	if err = bw.Flush(); err != nil {
		return errors.Wrap(err, "error flushing output file")
	}
	if err = f.Sync(); err != nil {
		return errors.Wrap(err, "error syncing output file")
	}
	if err = f.Close(); err != nil {
		return errors.Wrap(err, "error closing output file")
	}
	if err = os.Rename(tmp, path); err != nil {
		return errors.Wrap(err, "error renaming output file")
	}
	return nil
}

func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	return WithAtomicFile(path, perm, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}
