package integration_tests

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/csvexplore/internal/model"
	"github.com/specialistvlad/csvexplore/internal/testutil"
)

const vitalsCSV = `patient,heart_rate,status
alice,80,ok
bob,130,alert
`

// TestErrorHandling_OperationErrors validates that every failure kind is
// surfaced unchanged and that a failed filter leaves no output file.
func TestErrorHandling_OperationErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		files map[string]string
		args  []string
		kind  model.ErrorKind
	}{
		{
			name: "missing input",
			args: []string{"--file", "$DIR/nope.csv", "--summary"},
			kind: model.KindFileNotFound,
		},
		{
			name:  "ragged rows",
			files: map[string]string{"vitals.csv": "a,b\n1,2\n3\n"},
			args:  []string{"--file", "$DIR/vitals.csv", "--summary"},
			kind:  model.KindParseError,
		},
		{
			name:  "empty input",
			files: map[string]string{"vitals.csv": ""},
			args:  []string{"--file", "$DIR/vitals.csv", "--summary"},
			kind:  model.KindParseError,
		},
		{
			name:  "unknown describe column",
			files: map[string]string{"vitals.csv": vitalsCSV},
			args:  []string{"--file", "$DIR/vitals.csv", "--column", "nonexistent_col"},
			kind:  model.KindColumnNotFound,
		},
		{
			name:  "filter without operator",
			files: map[string]string{"vitals.csv": vitalsCSV},
			args:  []string{"--file", "$DIR/vitals.csv", "--filter", "bad_expression", "--out", "$DIR/out.csv"},
			kind:  model.KindInvalidFilterSyntax,
		},
		{
			name:  "unknown filter column",
			files: map[string]string{"vitals.csv": vitalsCSV},
			args:  []string{"--file", "$DIR/vitals.csv", "--filter", "pulse>1", "--out", "$DIR/out.csv"},
			kind:  model.KindColumnNotFound,
		},
		{
			name:  "ordering on text",
			files: map[string]string{"vitals.csv": vitalsCSV},
			args:  []string{"--file", "$DIR/vitals.csv", "--filter", "status>ok", "--out", "$DIR/out.csv"},
			kind:  model.KindTypeMismatch,
		},
		{
			name:  "numeric column against text",
			files: map[string]string{"vitals.csv": vitalsCSV},
			args:  []string{"--file", "$DIR/vitals.csv", "--filter", "heart_rate<high", "--out", "$DIR/out.csv"},
			kind:  model.KindTypeMismatch,
		},
		{
			name:  "unwritable destination",
			files: map[string]string{"vitals.csv": vitalsCSV},
			args:  []string{"--file", "$DIR/vitals.csv", "--filter", "status==ok", "--out", "$DIR/no-such-dir/out.csv"},
			kind:  model.KindWriteError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Act ---
			result := testutil.RunIntegrationTest(t, tc.files, tc.args...)

			// --- Assert ---
			testutil.AssertErrorKind(t, result, tc.kind)
			testutil.AssertNoFile(t, result, "out.csv")
			require.NotContains(t, result.Stdout, "Filtered data saved")
		})
	}
}
