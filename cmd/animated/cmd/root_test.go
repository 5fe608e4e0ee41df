package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/animated/pkg/config"
	drifterrors "github.com/go-drift/animated/pkg/errors"
)

const testDoc = `
version: v1
interpolations:
  - name: opacity
    inputRange: [0, 1]
    outputRange: [0, 100]
    extrapolate: clamp
  - name: tint
    inputRange: [0, 1]
    outputRange: ["#FF000000", "#FFFFFFFF"]
    extrapolate: clamp
    outputType: color
`

func writeDoc(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte(body), 0o644))
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	old := drifterrors.DefaultHandler
	t.Cleanup(func() { drifterrors.SetHandler(old) })

	root := NewRootCommand()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestValidate(t *testing.T) {
	dir := writeDoc(t, testDoc)
	out, err := run(t, "validate", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "opacity")
	assert.Contains(t, out, "color output")
}

func TestValidate_Invalid(t *testing.T) {
	dir := writeDoc(t, `
interpolations:
  - name: broken
    inputRange: [0, 1]
    outputRange: [0, 1]
    extrapolate: wobble
`)
	_, err := run(t, "validate", "--dir", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1 interpolations are invalid")
	assert.Contains(t, err.Error(), "wobble")
}

func TestEval(t *testing.T) {
	dir := writeDoc(t, testDoc)

	out, err := run(t, "eval", "--dir", dir, "--name", "opacity", "--", "-5", "0.5", "5")
	require.NoError(t, err)
	assert.Equal(t, "-5\t0\n0.5\t50\n5\t100\n", out)

	out, err = run(t, "eval", "--file", filepath.Join(dir, config.FileName), "-n", "tint", "0")
	require.NoError(t, err)
	assert.Equal(t, "0\t#FF000000\n", out)
}

func TestEval_Errors(t *testing.T) {
	dir := writeDoc(t, testDoc)

	_, err := run(t, "eval", "--dir", dir, "--name", "missing", "1")
	assert.ErrorContains(t, err, `no interpolation named "missing"`)

	_, err = run(t, "eval", "--dir", dir, "--name", "opacity", "abc")
	assert.ErrorContains(t, err, "invalid input")
}

func TestPreview(t *testing.T) {
	dir := writeDoc(t, testDoc)

	out, err := run(t, "preview", "--dir", dir, "--frames", "3", "--metrics")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.Equal(t, "frame\tinput\topacity\ttint", lines[0])
	assert.Equal(t, "0\t0\t0\t#FF000000", lines[1])
	assert.Equal(t, "1\t0.5\t50\t#FF7F7F7F", lines[2])
	assert.Equal(t, "2\t1\t100\t#FFFFFFFF", lines[3])
	assert.Contains(t, out, "animated_node_evaluations_total{node=opacity} 3")
}

func TestPreview_Errors(t *testing.T) {
	dir := writeDoc(t, testDoc)

	_, err := run(t, "preview", "--dir", dir, "--ease", "wobble")
	assert.ErrorContains(t, err, "unknown easing")

	_, err = run(t, "preview", "--dir", dir, "--name", "missing")
	assert.ErrorContains(t, err, "no interpolation named")

	_, err = run(t, "preview", "--dir", t.TempDir())
	assert.ErrorContains(t, err, "no interpolations")

	_, err = run(t, "preview", "--dir", dir, "--frames", "0")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, Version)
}
