package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func fakeEnv(vars map[string]string) lookupEnvFunc {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestLoader_Load(t *testing.T) {
	// --- Arrange ---
	dir := t.TempDir()
	path := writeSettings(t, dir, "explore.hcl", `
log_level      = "debug"
log_format     = "json"
preview_rows   = 25
precision      = 3
missing_values = ["-", "?"]

seq {
  url            = env("SEQ_URL", "http://localhost:5341")
  batch_size     = 10
  flush_interval = "2s"
}
`)
	loader := &Loader{lookupEnv: fakeEnv(map[string]string{"SEQ_URL": "http://seq.internal:5341"})}

	// --- Act ---
	s, err := loader.Load(context.Background(), path)

	// --- Assert ---
	require.NoError(t, err)
	require.NotNil(t, s.LogLevel)
	assert.Equal(t, "debug", *s.LogLevel)
	assert.Equal(t, "json", *s.LogFormat)
	assert.Equal(t, 25, *s.PreviewRows)
	assert.Equal(t, 3, *s.Precision)
	assert.Equal(t, []string{"-", "?"}, s.MissingValues)
	require.NotNil(t, s.Seq)
	assert.Equal(t, "http://seq.internal:5341", s.Seq.URL)
	assert.Equal(t, 10, s.Seq.BatchSize)
	assert.Equal(t, 2*time.Second, s.Seq.FlushInterval)
}

func TestLoader_EnvDefault(t *testing.T) {
	dir := t.TempDir()
	path := writeSettings(t, dir, "explore.hcl", `
log_level = env("EXPLORE_LOG_LEVEL", "warn")
seq {
  url = env("SEQ_URL")
}
`)
	loader := &Loader{lookupEnv: fakeEnv(nil)}

	s, err := loader.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "warn", *s.LogLevel)
	require.NotNil(t, s.Seq)
	assert.Equal(t, "", s.Seq.URL)
	assert.Equal(t, 1, s.Seq.BatchSize)
	assert.Equal(t, 500*time.Millisecond, s.Seq.FlushInterval)
}

func TestLoader_UnsetFieldsStayNil(t *testing.T) {
	dir := t.TempDir()
	path := writeSettings(t, dir, "explore.hcl", `precision = 2`)

	s, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	assert.Nil(t, s.LogLevel)
	assert.Nil(t, s.LogFormat)
	assert.Nil(t, s.PreviewRows)
	assert.Nil(t, s.Seq)
	assert.Equal(t, 2, *s.Precision)
}

func TestLoader_DirectoryMergesInOrder(t *testing.T) {
	dir := t.TempDir()
	writeSettings(t, dir, "10-base.hcl", `
log_level    = "info"
preview_rows = 5
`)
	writeSettings(t, dir, "20-override.hcl", `log_level = "error"`)
	writeSettings(t, dir, "README.md", `not hcl`)

	s, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "error", *s.LogLevel)
	assert.Equal(t, 5, *s.PreviewRows)
}

func TestLoader_Errors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		contains string
	}{
		{name: "syntax", content: `log_level = `, contains: "failed to parse settings file"},
		{name: "unknown attribute", content: `color = "red"`, contains: "failed to decode settings file"},
		{name: "wrong type", content: `preview_rows = "many"`, contains: "failed to decode settings file"},
		{name: "bad duration", content: "seq {\n url = \"x\"\n flush_interval = \"soon\"\n}", contains: "seq.flush_interval"},
		{name: "bad batch size", content: "seq {\n url = \"x\"\n batch_size = 0\n}", contains: "seq.batch_size"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeSettings(t, t.TempDir(), "explore.hcl", tc.content)

			_, err := NewLoader().Load(context.Background(), path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.contains)
		})
	}

	t.Run("missing path", func(t *testing.T) {
		_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "nope.hcl"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to find settings files")
	})
}
