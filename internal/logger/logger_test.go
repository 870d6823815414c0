package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, raw []byte) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(string(raw)), "\n") {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
		out = append(out, entry)
	}
	return out
}

func TestNewLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "lockr-server")

	l.Info().Str("entry_id", "e-1").Msg("entry sealed")

	entries := decodeLines(t, buf.Bytes())
	require.Len(t, entries, 1)
	assert.Equal(t, "lockr-server", entries[0]["role"])
	assert.Equal(t, "e-1", entries[0]["entry_id"])
	assert.Contains(t, entries[0], "time")
	assert.Contains(t, entries[0]["func"], "TestNewLogger_Fields", "caller is the function name")
}

func TestNewLogger_GlobalSettings(t *testing.T) {
	NewLogger("lockr-server")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

func TestOpenLogFile_CreatesOwnerOnlyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ClientLogFile)

	w := openLogFile(path)
	f, ok := w.(*os.File)
	require.True(t, ok)
	require.NotSame(t, os.Stderr, f)
	t.Cleanup(func() { _ = f.Close() })

	newLogger(w, "lockr-client").Warn().Msg("vault decryption failed")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	entries := decodeLines(t, raw)
	require.Len(t, entries, 1)
	assert.Equal(t, "lockr-client", entries[0]["role"])
	assert.Equal(t, "vault decryption failed", entries[0]["message"])
}

func TestOpenLogFile_Appends(t *testing.T) {
	path := filepath.Join(t.TempDir(), ClientLogFile)

	for _, msg := range []string{"first run", "second run"} {
		f := openLogFile(path).(*os.File)
		newLogger(f, "lockr-client").Info().Msg(msg)
		require.NoError(t, f.Close())
	}

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	entries := decodeLines(t, raw)
	require.Len(t, entries, 2)
	assert.Equal(t, "first run", entries[0]["message"])
	assert.Equal(t, "second run", entries[1]["message"])
}

func TestOpenLogFile_FallsBackToStderr(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", ClientLogFile)

	assert.Same(t, os.Stderr, openLogFile(path))
}

func TestNewClientLogger_WritesNextToExecutable(t *testing.T) {
	execPath, err := os.Executable()
	require.NoError(t, err)
	path := filepath.Join(filepath.Dir(execPath), ClientLogFile)
	t.Cleanup(func() { _ = os.Remove(path) })

	l := NewClientLogger("lockr-client")
	require.NotNil(t, l)
	l.Info().Msg("client started")

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Skip("executable directory is not writable, stderr fallback in use")
	}
	assert.Contains(t, string(raw), "client started")
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger_InheritsRole(t *testing.T) {
	var buf bytes.Buffer
	parent := newLogger(&buf, "lockr-client")

	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)
	child.Info().Msg("child message")

	entries := decodeLines(t, buf.Bytes())
	require.Len(t, entries, 1)
	assert.Equal(t, "lockr-client", entries[0]["role"])
}

func TestFromContext(t *testing.T) {
	t.Run("attached logger", func(t *testing.T) {
		var buf bytes.Buffer
		zl := zerolog.New(&buf).With().Str("trace_id", "t-1").Logger()

		FromContext(zl.WithContext(context.Background())).Info().Msg("from context")

		entries := decodeLines(t, buf.Bytes())
		require.Len(t, entries, 1)
		assert.Equal(t, "t-1", entries[0]["trace_id"])
	})

	t.Run("empty context", func(t *testing.T) {
		require.NotNil(t, FromContext(context.Background()))
	})
}

func TestFromRequest(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("trace_id", "t-2").Logger()

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req = req.WithContext(zl.WithContext(req.Context()))

	FromRequest(req).Info().Msg("from request")

	entries := decodeLines(t, buf.Bytes())
	require.Len(t, entries, 1)
	assert.Equal(t, "t-2", entries[0]["trace_id"])
}
