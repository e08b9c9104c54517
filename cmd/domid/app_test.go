package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/reoring/domid/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := rootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func writeCatalog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ids.yaml")
	content := "templates:\n  tab: [tab, ~]\n  projectRow: [project, row, ~]\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCheck(t *testing.T) {
	out, _, err := run(t, "check", "tab-43")
	require.NoError(t, err)
	assert.Equal(t, "tab-43: ok\n", out)

	out, _, err = run(t, "check", "tab-43", "a--b")
	require.Error(t, err)
	assert.Contains(t, out, "a--b: component 1 is empty")
	assert.Contains(t, err.Error(), "1 of 2")
}

func TestCheck_JSON(t *testing.T) {
	out, _, err := run(t, "check", "-o", "json", "1a")
	require.Error(t, err)

	var results []checkResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.False(t, results[0].Valid)
	require.Len(t, results[0].Issues, 1)
	assert.Equal(t, "invalid_character", results[0].Issues[0].Code)
}

func TestCheck_Japanese(t *testing.T) {
	defer i18n.SetLanguage("en")
	out, _, err := run(t, "check", "--lang", "ja", "a--b")
	require.Error(t, err)
	assert.Contains(t, out, "コンポーネント 1 が空です")
}

func TestBuild(t *testing.T) {
	out, _, err := run(t, "build", "a", "b", "3", "c", "1343")
	require.NoError(t, err)
	assert.Equal(t, "a-b-3-c-1343\n", out)

	_, _, err = run(t, "build", "43", "a")
	assert.Error(t, err)

	out, _, err = run(t, "build", "--literal", "a", "007")
	require.NoError(t, err)
	assert.Equal(t, "a-007\n", out)
}

func TestParse_YAML(t *testing.T) {
	out, _, err := run(t, "parse", "-o", "yaml", "tab-43")
	require.NoError(t, err)

	var views []componentView
	require.NoError(t, yaml.Unmarshal([]byte(out), &views))
	assert.Equal(t, []componentView{{Value: "tab"}, {Value: "43", Numeric: true}}, views)
}

func TestTemplateCommands(t *testing.T) {
	cat := writeCatalog(t)

	out, _, err := run(t, "template", "list", "--catalog", cat)
	require.NoError(t, err)
	assert.Equal(t, "projectRow\tproject-row-*\ntab\ttab-*\n", out)

	out, _, err = run(t, "template", "build", "-c", cat, "projectRow", "32")
	require.NoError(t, err)
	assert.Equal(t, "project-row-32\n", out)

	out, _, err = run(t, "template", "extract", "-c", cat, "projectRow", "project-row-32")
	require.NoError(t, err)
	assert.Equal(t, "projectRow\t32\n", out)

	out, _, err = run(t, "template", "resolve", "-c", cat, "tab-43")
	require.NoError(t, err)
	assert.Equal(t, "tab\t43\n", out)

	out, _, err = run(t, "template", "match", "-c", cat, "tab", "tab-43")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)

	_, _, err = run(t, "template", "match", "-c", cat, "tab", "pane-1")
	assert.Error(t, err)

	_, _, err = run(t, "template", "resolve", "-c", cat, "pane-1")
	assert.Error(t, err)
}

func TestTemplate_DebugLogging(t *testing.T) {
	cat := writeCatalog(t)
	_, errOut, err := run(t, "template", "list", "-c", cat, "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, errOut, "Catalog loaded.")
}

func TestFlagErrors(t *testing.T) {
	_, _, err := run(t, "template", "list")
	assert.ErrorContains(t, err, "no catalog")

	_, _, err = run(t, "build", "-o", "xml", "a")
	assert.ErrorContains(t, err, "unknown output format")

	_, _, err = run(t, "build", "--log-level", "loud", "a")
	assert.ErrorContains(t, err, "unknown log level")
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, Version)
}
