package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns its output.
// HOME is redirected so config lookups never touch the real one.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "docsift version dev")
}

func TestDetectCommand_MetaTag(t *testing.T) {
	path := writeFile(t, "page.html",
		`<html><head><meta http-equiv="Content-Type" content="text/html; charset=ISO-8859-1"></head><body>hello</body></html>`)

	out, err := execute(t, "detect", path)
	require.NoError(t, err)
	assert.Contains(t, out, "encoding: ISO-8859-1")
}

func TestDetectCommand_MissingFile(t *testing.T) {
	_, err := execute(t, "detect", filepath.Join(t.TempDir(), "nope.html"))
	require.Error(t, err)
}

func TestIngestCommand_Text(t *testing.T) {
	path := writeFile(t, "page.html",
		"<html><body><h1>Title</h1><script>x()</script><p>Hello world.</p></body></html>")

	out, err := execute(t, "ingest", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "Hello world.")
	assert.NotContains(t, out, "x()")
}

func TestIngestCommand_XHTML(t *testing.T) {
	path := writeFile(t, "page.html",
		"<html><body><div><h1>Title</h1></div></body></html>")

	defer func() { ingestXHTML = false }()
	out, err := execute(t, "ingest", "--xhtml", path)
	require.NoError(t, err)

	assert.Contains(t, out, "<h1>Title</h1>")
	assert.NotContains(t, out, "<div>")
}

func TestIngestCommand_PlainTextFallback(t *testing.T) {
	path := writeFile(t, "notes.txt", "just some notes")

	out, err := execute(t, "ingest", path)
	require.NoError(t, err)
	assert.Contains(t, out, "just some notes")
}

func TestIngestCommand_MissingFile(t *testing.T) {
	_, err := execute(t, "ingest", filepath.Join(t.TempDir(), "nope.html"))
	require.Error(t, err)
}
