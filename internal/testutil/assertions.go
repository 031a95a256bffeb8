package testutil

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/csvexplore/internal/model"
)

// AssertErrorKind checks that the run failed with an error of the given kind.
func AssertErrorKind(t *testing.T, result *HarnessResult, kind model.ErrorKind) {
	t.Helper()

	require.Error(t, result.Err, "expected the run to fail with %s", kind)
	got, ok := model.KindOf(result.Err)
	require.True(t, ok, "error %q carries no kind", result.Err)
	require.Equal(t, kind, got, "unexpected error kind for %q", result.Err)
}

// AssertFileContent checks the exact content of a file written by the run.
func AssertFileContent(t *testing.T, result *HarnessResult, name, want string) {
	t.Helper()

	data, err := os.ReadFile(result.Path(name))
	require.NoError(t, err, "expected output file %s to exist", name)
	require.Equal(t, want, string(data))
}

// AssertNoFile checks that the run left no file behind at name.
func AssertNoFile(t *testing.T, result *HarnessResult, name string) {
	t.Helper()

	_, err := os.Stat(result.Path(name))
	require.True(t, os.IsNotExist(err), "expected %s not to exist, stat error: %v", name, err)
}
