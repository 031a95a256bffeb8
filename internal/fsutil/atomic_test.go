package fsutil

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	t.Run("writes content", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "out.csv")

		err := WriteFileAtomic(path, 0o644, func(w io.Writer) error {
			_, err := io.WriteString(w, "a,b\n1,2\n")
			return err
		})
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "a,b\n1,2\n", string(data))
		assertNoTempFiles(t, dir)
	})

	t.Run("failure leaves nothing behind", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "out.csv")
		boom := errors.New("boom")

		err := WriteFileAtomic(path, 0o644, func(w io.Writer) error {
			_, _ = io.WriteString(w, "partial")
			return boom
		})
		require.ErrorIs(t, err, boom)

		_, statErr := os.Stat(path)
		assert.True(t, IsNotExist(statErr))
		assertNoTempFiles(t, dir)
	})

	t.Run("failure keeps existing file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "out.csv")
		require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

		err := WriteFileAtomic(path, 0o644, func(w io.Writer) error {
			return errors.New("boom")
		})
		require.Error(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "old", string(data))
	})

	t.Run("overwrite keeps existing mode", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("unix permission bits")
		}
		dir := t.TempDir()
		path := filepath.Join(dir, "out.csv")
		require.NoError(t, os.WriteFile(path, []byte("old"), 0o600))
		require.NoError(t, os.Chmod(path, 0o600))

		err := WriteFileAtomic(path, 0o644, func(w io.Writer) error {
			_, err := io.WriteString(w, "new")
			return err
		})
		require.NoError(t, err)

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new", string(data))
	})

	t.Run("new file gets requested mode", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("unix permission bits")
		}
		path := filepath.Join(t.TempDir(), "out.csv")

		require.NoError(t, WriteFileAtomic(path, 0o640, func(w io.Writer) error { return nil }))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())
	})

	t.Run("missing directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nope", "out.csv")

		err := WriteFileAtomic(path, 0o644, func(w io.Writer) error { return nil })
		require.Error(t, err)
		assert.True(t, IsNotExist(err))
	})
}

func assertNoTempFiles(t *testing.T, dir string) {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, ".*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}
