package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ericlevine/barcodegen/internal/eventlog"
)

// run executes the command tree with args from an empty directory and
// returns standard output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", dir)

	var stdout, stderr bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), err
}

func TestRootCommand(t *testing.T) {
	root := NewRootCommand()
	assert.Equal(t, "barcodegen", root.Use)
	assert.NotEmpty(t, root.Short)

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"dimensions", "trace", "codewords", "symbologies"})
}

func TestRootCommandHelp(t *testing.T) {
	out, err := run(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "Available Commands:")
	assert.Contains(t, out, "--symbology")
}

func TestSymbologies(t *testing.T) {
	out, err := run(t, "-o", "text", "symbologies")
	require.NoError(t, err)
	assert.Contains(t, out, "ean-13")
	assert.Regexp(t, `pdf417\s+2d`, out)
	assert.Regexp(t, `code128\s+linear`, out)

	out, err = run(t, "symbologies")
	require.NoError(t, err)
	var reports []symbologyReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &reports))
	assert.Len(t, reports, 8)
}

func TestDimensions(t *testing.T) {
	// Output to a buffer defaults to YAML.
	out, err := run(t, "dimensions", "-s", "ean-13", "590123412345")
	require.NoError(t, err)

	var reports []dimensionReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 1)
	assert.Equal(t, "ean-13", reports[0].Symbology)
	assert.InDelta(t, 95*0.33, reports[0].Width, 1e-9)
	assert.InDelta(t, 15, reports[0].Height, 1e-9)
	assert.InDelta(t, 3.3, reports[0].XOffset, 1e-9)

	out, err = run(t, "dimensions", "-o", "text", "--module-width", "0.3mm", "123", "4567")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "123\tDim: "), lines[0])
}

func TestTrace(t *testing.T) {
	out, err := run(t, "trace", "-o", "text", "-s", "code128", "123")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<BC>"), out)
	assert.Contains(t, out, "<SBG:start-char:")
	assert.Contains(t, out, "</BC>")

	out, err = run(t, "trace", "-s", "pdf417", "Hello")
	require.NoError(t, err)
	var events []eventlog.Event
	require.NoError(t, yaml.Unmarshal([]byte(out), &events))
	n := 0
	for _, e := range events {
		if e.Kind == eventlog.KindCodeword {
			n++
		}
	}
	assert.Equal(t, 12, n)
}

func TestCodewords(t *testing.T) {
	out, err := run(t, "codewords", "-o", "text", "-s", "pdf417", "Hello")
	require.NoError(t, err)
	assert.Equal(t, "4 237 131 344 312 132\n", out)

	out, err = run(t, "codewords", "-o", "text", "-s", "datamatrix", "123456")
	require.NoError(t, err)
	assert.Equal(t, "142 164 186 114 25 5 88 102\n", out)

	_, err = run(t, "codewords", "-s", "ean-13", "590123412345")
	assert.ErrorContains(t, err, "has no codewords")
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("symbology: pdf417\npdf417:\n  columns: 3\n"), 0o644))

	out, err := run(t, "--config", path, "dimensions", "-o", "text", "Hello")
	require.NoError(t, err)
	// 17 * 3 + 69 modules of 1pt.
	assert.Contains(t, out, "Dim: 42.333")
}

func TestErrors(t *testing.T) {
	_, err := run(t, "dimensions", "-s", "qr", "x")
	assert.Error(t, err)

	_, err = run(t, "dimensions", "-s", "ean-13", "12345678901234567")
	assert.Error(t, err)

	_, err = run(t, "--log-level", "loud", "symbologies")
	assert.Error(t, err)

	_, err = run(t, "--config", "/no/such/file.yaml", "symbologies")
	assert.Error(t, err)

	_, err = run(t, "dimensions")
	assert.Error(t, err)
}
