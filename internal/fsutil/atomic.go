// Package fsutil provides file system utility functions.
package fsutil

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteFileAtomic streams content produced by write into path. The data is
// staged in a temporary file next to path and renamed over it only after
// write, flush, sync and close all succeed. On any failure the temporary file
// is removed and path is left untouched.
func WriteFileAtomic(path string, perm os.FileMode, write func(w io.Writer) error) (err error) {
	if write == nil {
		panic("write func must not be nil")
	}

	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	buf := bufio.NewWriter(tmp)
	if err = write(buf); err != nil {
		return err
	}
	if err = buf.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("sync: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close: %w", err)
	}
	if err = os.Chmod(tmpName, targetMode(path, perm)); err != nil {
		return err
	}
	if err = os.Rename(tmpName, path); err != nil {
		return err
	}
	return nil
}

// targetMode keeps the mode of a regular file already at path. New files get
// perm exactly, without the process umask applied.
func targetMode(path string, perm os.FileMode) os.FileMode {
	if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
		return info.Mode().Perm()
	}
	return perm
}

// IsNotExist reports whether err says a file or directory is missing.
func IsNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}
