package merge

import (
	"bufio"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRun(cfg Config) (*run, *bytes.Buffer) {
	var buf bytes.Buffer
	return &run{
		cfg:      cfg,
		logger:   zap.NewNop(),
		out:      bufio.NewWriter(&buf),
		minifier: NewMinifier(),
	}, &buf
}

func (r *run) flushTo(t *testing.T) {
	t.Helper()
	require.NoError(t, r.out.Flush())
}

func TestWriteFileRecordFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tool.py")
	require.NoError(t, os.WriteFile(path, []byte("print(1)\n"), 0o644))

	r, buf := newTestRun(Config{})
	r.writeFileRecord(path, "tool.py")
	r.flushTo(t)

	assert.Equal(t, "## tool.py\n\n```python\nprint(1)\n\n```\n\n", buf.String())
	assert.Equal(t, 1, r.written)
}

func TestWriteFileRecordSkipsUnreadable(t *testing.T) {
	r, buf := newTestRun(Config{})
	r.writeFileRecord(filepath.Join(t.TempDir(), "missing.py"), "missing.py")
	r.flushTo(t)

	assert.Empty(t, buf.String())
	assert.Zero(t, r.written)
}

func TestWriteFileRecordSkipsBinary(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blob.py")
	require.NoError(t, os.WriteFile(path, []byte{0x7f, 0x45, 0x4c, 0x46, 0x00, 0x01}, 0o644))

	r, buf := newTestRun(Config{})
	r.writeFileRecord(path, "blob.py")
	r.flushTo(t)

	assert.Empty(t, buf.String())
	assert.Zero(t, r.written)
}

func TestWriteFileRecordMinifyErrorFallsBackToRaw(t *testing.T) {
	dir := t.TempDir()
	raw := "var x = 1; // broken on purpose\n"
	path := filepath.Join(dir, "app.js")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	r, buf := newTestRun(Config{Minify: true})
	r.minifier = &Minifier{funcs: map[FileType]MinifyFunc{
		TypeScript: func(string) (string, error) { return "", errors.New("parse error") },
	}}
	r.writeFileRecord(path, "app.js")
	r.flushTo(t)

	assert.Contains(t, buf.String(), raw)
	assert.Equal(t, 1, r.written)
}

func TestWriteFileRecordMinifiesWhenEnabled(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.css")
	require.NoError(t, os.WriteFile(path, []byte("/* c */ body { margin: 0; }\n"), 0o644))

	r, buf := newTestRun(Config{Minify: true})
	r.writeFileRecord(path, "main.css")
	r.flushTo(t)

	assert.NotContains(t, buf.String(), "/* c */")
	assert.Contains(t, buf.String(), "margin:")
}

func TestIsBinaryContent(t *testing.T) {
	assert.True(t, isBinaryContent([]byte{'a', 0x00, 'b'}))
	assert.False(t, isBinaryContent([]byte("plain text\nwith lines\n")))
	assert.False(t, isBinaryContent([]byte("héllo wörld — utf-8 is text\n")))
	assert.False(t, isBinaryContent(nil)) // empty files are text
}
