package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/whiteelephant/internal/model"
)

const testRoster = "Alice\nBob # note\n\n# comment only\nCarol\n"
const testCSS = "body { background: #fdf6ec; }\n"

type fakeOpener struct {
	paths []string
	err   error
}

func (f *fakeOpener) Open(_ context.Context, path string) error {
	f.paths = append(f.paths, path)
	return f.err
}

// setupWorkspace creates a temp dir holding a roster and theme under their
// default names and makes it the working directory.
func setupWorkspace(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))

	require.NoError(t, os.WriteFile("white_elephant.txt", []byte(testRoster), 0644))
	require.NoError(t, os.WriteFile("white_elephant.css", []byte(testCSS), 0644))
	return dir
}

func execute(t *testing.T, opts *rootOptions, args ...string) (string, error) {
	t.Helper()

	if opts == nil {
		opts = &rootOptions{}
	}
	cmd := newRootCommand(opts)

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

func listItems(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var items []string
	for _, line := range strings.Split(string(data), "\n") {
		if strings.HasPrefix(line, "<li>") {
			items = append(items, strings.TrimSuffix(strings.TrimPrefix(line, "<li>"), "</li>"))
		}
	}
	return items
}

func TestDraw_WritesPage(t *testing.T) {
	setupWorkspace(t)

	_, err := execute(t, nil, "--no-open")
	require.NoError(t, err)

	items := listItems(t, "white_elephant.html")
	assert.ElementsMatch(t, []string{"Alice", "Bob", "Carol"}, items)

	data, err := os.ReadFile("white_elephant.html")
	require.NoError(t, err)
	assert.Contains(t, string(data), testCSS)
	assert.Contains(t, string(data), "Names drawn on ")
	assert.NotContains(t, string(data), "<link")
}

func TestDraw_Count(t *testing.T) {
	setupWorkspace(t)

	_, err := execute(t, nil, "--no-open", "-c", "2", "-o", "two.html")
	require.NoError(t, err)

	items := listItems(t, "two.html")
	require.Len(t, items, 2)
	assert.NotEqual(t, items[0], items[1])
	assert.Subset(t, []string{"Alice", "Bob", "Carol"}, items)
}

func TestDraw_CountClamped(t *testing.T) {
	setupWorkspace(t)

	_, err := execute(t, nil, "--no-open", "--count", "10")
	require.NoError(t, err)
	assert.Len(t, listItems(t, "white_elephant.html"), 3)
}

func TestDraw_EmptyRoster(t *testing.T) {
	setupWorkspace(t)
	require.NoError(t, os.WriteFile("empty.txt", []byte("# nobody yet\n"), 0644))

	_, err := execute(t, nil, "--no-open", "-i", "empty.txt")
	require.NoError(t, err)

	data, err := os.ReadFile("white_elephant.html")
	require.NoError(t, err)
	assert.Contains(t, string(data), "<ol>\n</ol>")
}

func TestDraw_MissingRoster(t *testing.T) {
	setupWorkspace(t)

	_, err := execute(t, nil, "--no-open", "-i", "nope.txt")
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	_, statErr := os.Stat("white_elephant.html")
	assert.True(t, errors.Is(statErr, fs.ErrNotExist), "no page should be written")
}

func TestDraw_MissingTheme(t *testing.T) {
	setupWorkspace(t)

	_, err := execute(t, nil, "--no-open", "-t", "missing.css")
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestDraw_UnwritableOutput(t *testing.T) {
	setupWorkspace(t)

	_, err := execute(t, nil, "--no-open", "-o", filepath.Join("no-such-dir", "out.html"))
	require.Error(t, err)
}

func TestDraw_BundledTheme(t *testing.T) {
	setupWorkspace(t)

	_, err := execute(t, nil, "--no-open", "-t", "festive")
	require.NoError(t, err)

	data, err := os.ReadFile("white_elephant.html")
	require.NoError(t, err)
	assert.Contains(t, string(data), "#f2c14e")
	assert.Contains(t, string(data), "/* imported: _base.css */")
}

func TestDraw_PrintJSON(t *testing.T) {
	setupWorkspace(t)

	stdout, err := execute(t, nil, "--no-open", "--print", "json")
	require.NoError(t, err)

	var d model.Draw
	require.NoError(t, json.Unmarshal([]byte(stdout), &d))
	assert.ElementsMatch(t, []string{"Alice", "Bob", "Carol"}, d.Names)
	assert.Equal(t, 3, d.Total)
	assert.NotEmpty(t, d.ID)

	// The printed order is the rendered order.
	assert.Equal(t, d.Names, listItems(t, "white_elephant.html"))
}

func TestDraw_NoPrintByDefault(t *testing.T) {
	setupWorkspace(t)

	stdout, err := execute(t, nil, "--no-open")
	require.NoError(t, err)
	assert.Empty(t, stdout)
}

func TestDraw_InvalidFlags(t *testing.T) {
	setupWorkspace(t)

	_, err := execute(t, nil, "--no-open", "-c", "-1")
	assert.ErrorContains(t, err, "invalid count")

	_, err = execute(t, nil, "--no-open", "--print", "xml")
	assert.ErrorContains(t, err, "invalid print format")
}

func TestDraw_OpensPage(t *testing.T) {
	setupWorkspace(t)

	opener := &fakeOpener{}
	_, err := execute(t, &rootOptions{opener: opener})
	require.NoError(t, err)
	assert.Equal(t, []string{"white_elephant.html"}, opener.paths)
}

func TestDraw_NoOpen(t *testing.T) {
	setupWorkspace(t)

	opener := &fakeOpener{}
	_, err := execute(t, &rootOptions{opener: opener}, "--no-open")
	require.NoError(t, err)
	assert.Empty(t, opener.paths)
}

func TestDraw_OpenFailureIsNotFatal(t *testing.T) {
	setupWorkspace(t)

	opener := &fakeOpener{err: errors.New("no display")}
	_, err := execute(t, &rootOptions{opener: opener})
	require.NoError(t, err)
	assert.Len(t, opener.paths, 1)
}

func TestDraw_ConfigFile(t *testing.T) {
	dir := setupWorkspace(t)
	require.NoError(t, os.WriteFile("friends.txt", []byte("Dan\nErin\nFrank\nGrace\n"), 0644))

	configPath := filepath.Join(dir, "config.toml")
	content := `
[draw]
input = "friends.txt"
output = "friends.html"
theme = "minimal"
count = 1

[viewer]
open = false

[output]
format = "plain"
template = "{{.Index}}:{{.Name}}"
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	opener := &fakeOpener{}
	stdout, err := execute(t, &rootOptions{opener: opener}, "--config", configPath)
	require.NoError(t, err)

	items := listItems(t, "friends.html")
	require.Len(t, items, 1)
	assert.Equal(t, "1:"+items[0]+"\n", stdout)
	assert.Empty(t, opener.paths, "viewer.open = false disables the hook")

	// Flags win over the config file.
	_, err = execute(t, &rootOptions{opener: opener}, "--config", configPath, "-c", "3")
	require.NoError(t, err)
	assert.Len(t, listItems(t, "friends.html"), 3)
}

func TestThemes_List(t *testing.T) {
	setupWorkspace(t)

	stdout, err := execute(t, nil, "themes")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	assert.ElementsMatch(t, []string{"classic (default)", "festive", "minimal"}, lines)
}

func TestThemes_Export(t *testing.T) {
	setupWorkspace(t)

	stdout, err := execute(t, nil, "themes", "export", "minimal", "mine.css")
	require.NoError(t, err)
	assert.Contains(t, stdout, "mine.css")

	data, err := os.ReadFile("mine.css")
	require.NoError(t, err)
	assert.Contains(t, string(data), "Georgia")

	// The default destination already exists.
	_, err = execute(t, nil, "themes", "export", "minimal")
	assert.True(t, errors.Is(err, fs.ErrExist))
}

func TestInit(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))

	stdout, err := execute(t, nil, "init", "--save-config")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Wrote white_elephant.txt")
	assert.Contains(t, stdout, "Wrote white_elephant.css (classic theme)")

	_, err = os.Stat(filepath.Join(dir, "xdg", "whiteelephant", "config.toml"))
	require.NoError(t, err)

	// The starter files make a working draw.
	_, err = execute(t, nil, "--no-open")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Alice", "Bob", "Carol"}, listItems(t, "white_elephant.html"))

	// Running again keeps the user's edits.
	require.NoError(t, os.WriteFile("white_elephant.txt", []byte("Zed\n"), 0644))
	stdout, err = execute(t, nil, "init")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Kept existing white_elephant.txt")

	data, err := os.ReadFile("white_elephant.txt")
	require.NoError(t, err)
	assert.Equal(t, "Zed\n", string(data))
}

func TestWatch_RejectsStdin(t *testing.T) {
	setupWorkspace(t)

	_, err := execute(t, nil, "watch", "--no-open", "-i", "-")
	assert.ErrorContains(t, err, "stdin")
}
