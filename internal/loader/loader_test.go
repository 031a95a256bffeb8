package loader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/csvexplore/internal/model"
)

const vitals = `patient,heart_rate,status
alice,80,ok
bob,130,alert
carol,150,alert
dave,90,ok
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "vitals.csv", vitals)

	table, err := Load(context.Background(), path, Options{})
	require.NoError(t, err)

	assert.Equal(t, 4, table.Len())
	assert.Equal(t, []string{"patient", "heart_rate", "status"}, table.Names())

	hr, ok := table.Column("heart_rate")
	require.True(t, ok)
	assert.Equal(t, model.Number, hr.Kind)
	if diff := cmp.Diff([]float64{80, 130, 150, 90}, hr.Numbers()); diff != "" {
		t.Errorf("heart_rate mismatch (-want +got):\n%s", diff)
	}

	status, ok := table.Column("status")
	require.True(t, ok)
	assert.Equal(t, model.Text, status.Kind)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(t *testing.T) string
		wantKind model.ErrorKind
		contains string
	}{
		{
			name: "missing file",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "nope.csv")
			},
			wantKind: model.KindFileNotFound,
			contains: "nope.csv",
		},
		{
			name: "inconsistent field count",
			setup: func(t *testing.T) string {
				return writeFile(t, "bad.csv", "a,b\n1,2\n3\n")
			},
			wantKind: model.KindParseError,
			contains: "wrong number of fields",
		},
		{
			name: "bare quote",
			setup: func(t *testing.T) string {
				return writeFile(t, "quote.csv", "a,b\n1,x\"y\n")
			},
			wantKind: model.KindParseError,
			contains: "bare \"",
		},
		{
			name: "empty file",
			setup: func(t *testing.T) string {
				return writeFile(t, "empty.csv", "")
			},
			wantKind: model.KindParseError,
			contains: "no header row",
		},
		{
			name: "directory",
			setup: func(t *testing.T) string {
				return t.TempDir()
			},
			wantKind: model.KindParseError,
			contains: "is a directory",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(context.Background(), tc.setup(t), Options{})
			require.Error(t, err)

			kind, ok := model.KindOf(err)
			require.True(t, ok, "expected a classified error, got %T", err)
			assert.Equal(t, tc.wantKind, kind)
			assert.Contains(t, err.Error(), tc.contains)
		})
	}
}

func TestRead_ParseErrorKeepsParserMessage(t *testing.T) {
	_, err := Read(context.Background(), strings.NewReader("a,b\n1,2,3\n"), "inline", Options{})
	require.Error(t, err)
	require.True(t, errors.Is(err, model.ErrParse))

	var e *model.Error
	require.True(t, errors.As(err, &e))
	require.NotNil(t, e.Err)
	assert.Contains(t, err.Error(), e.Err.Error())
}

func TestRead_HeaderOnly(t *testing.T) {
	table, err := Read(context.Background(), strings.NewReader("a,b\n"), "inline", Options{})
	require.NoError(t, err)
	assert.Equal(t, 0, table.Len())
	assert.Equal(t, []string{"a", "b"}, table.Names())
}

func TestRead_MissingValues(t *testing.T) {
	input := "x,y\n1,-\nNA,2\n,3\n4,-\n"

	table, err := Read(context.Background(), strings.NewReader(input), "inline", Options{MissingValues: []string{"-"}})
	require.NoError(t, err)

	x, _ := table.Column("x")
	assert.Equal(t, model.Number, x.Kind)
	assert.Equal(t, 2, x.NonMissing())

	y, _ := table.Column("y")
	assert.Equal(t, model.Number, y.Kind)
	assert.Equal(t, []float64{2, 3}, y.Numbers())
	assert.Equal(t, "-", y.Values[0].Raw)
}

func TestRead_ByteOrderMark(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "plain header", input: "\ufeffheart_rate,status\n80,ok\n130,bad\n"},
		{name: "quoted header", input: "\ufeff\"heart_rate\",status\n80,ok\n130,bad\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			table, err := Read(context.Background(), strings.NewReader(tc.input), "inline", Options{})
			require.NoError(t, err)
			assert.Equal(t, []string{"heart_rate", "status"}, table.Names())

			hr, ok := table.Column("heart_rate")
			require.True(t, ok)
			assert.Equal(t, model.Number, hr.Kind)
			assert.Equal(t, []float64{80, 130}, hr.Numbers())
		})
	}

	t.Run("only a mark", func(t *testing.T) {
		_, err := Read(context.Background(), strings.NewReader("\ufeff"), "inline", Options{})
		require.ErrorIs(t, err, model.ErrParse)
		assert.Contains(t, err.Error(), "no header row found")
	})
}

func TestNormalizeHeader(t *testing.T) {
	tests := []struct {
		in   []string
		want []string
	}{
		{in: []string{"a", "b"}, want: []string{"a", "b"}},
		{in: []string{"a", "a", "a"}, want: []string{"a", "a.1", "a.2"}},
		{in: []string{"a", "a.1", "a"}, want: []string{"a", "a.1", "a.2"}},
		{in: []string{"", "b", ""}, want: []string{"Unnamed: 0", "b", "Unnamed: 2"}},
	}
	for _, tc := range tests {
		t.Run(strings.Join(tc.in, "|"), func(t *testing.T) {
			assert.Equal(t, tc.want, normalizeHeader(tc.in))
		})
	}
}
