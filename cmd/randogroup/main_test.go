package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/jask/randogroup/internal/grouping"
	"github.com/jask/randogroup/internal/store"
)

// setup points config and data at temp dirs and returns the data dir.
func setup(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("HOME", home)
	t.Setenv("RANDOGROUP_CONFIG", "")
	for _, k := range []string{"RANDOGROUP_STORE_BACKEND", "RANDOGROUP_STORE_DIR", "RANDOGROUP_RANDOM_SEED", "RANDOGROUP_LOG_LEVEL", "RANDOGROUP_LOG_FILE"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	return t.TempDir()
}

func runArgs(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := run(context.Background(), args, strings.NewReader(stdin), &out)
	return out.String(), err
}

func writeRoster(t *testing.T, dir string, names ...string) string {
	t.Helper()
	path := filepath.Join(dir, "roster.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(names, "\n")+"\n"), 0o644))
	return path
}

func TestGroupsFromFile(t *testing.T) {
	dir := setup(t)
	path := writeRoster(t, t.TempDir(), "Ann", "Ben", "Cat", "Dan", "Eve")

	out, err := runArgs(t, "", "--data-dir", dir, "--seed", "3", "--groups", "2", "--file", path)
	require.NoError(t, err)
	require.Contains(t, out, "Group 1")
	require.Contains(t, out, "Group 2")
	require.NotContains(t, out, "Group 3")
	for _, name := range []string{"Ann", "Ben", "Cat", "Dan", "Eve"} {
		require.Contains(t, out, name)
	}
	require.FileExists(t, filepath.Join(dir, store.JSONFileName))
	require.FileExists(t, filepath.Join(dir, "randogroup.log"))
}

func TestSeedMakesOutputRepeatable(t *testing.T) {
	dir := setup(t)
	path := writeRoster(t, t.TempDir(), "Ann", "Ben", "Cat", "Dan", "Eve", "Fay", "Gus")

	first, err := runArgs(t, "", "--data-dir", dir, "--seed", "42", "-g", "3", "-f", path)
	require.NoError(t, err)
	second, err := runArgs(t, "", "--data-dir", dir, "--seed", "42", "-g", "3", "-f", path)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestDrawFromStdin(t *testing.T) {
	dir := setup(t)

	out, err := runArgs(t, "Ann\r\nBen\r\n\r\nCat\r\n", "--data-dir", dir, "--draw", "5", "--file", "-")
	require.NoError(t, err)
	for _, name := range []string{"Ann", "Ben", "Cat"} {
		require.Contains(t, out, name)
	}
}

func TestSavedListAndSuggestion(t *testing.T) {
	dir := setup(t)
	lists := store.NewLists()
	lists.Set("Period 3", []string{"Ann", "Ben", "Cat"})
	require.NoError(t, store.NewJSONFile(filepath.Join(dir, store.JSONFileName), nil).SaveAll(context.Background(), lists))

	out, err := runArgs(t, "", "--data-dir", dir, "--draw", "1", "--list", "Period 3")
	require.NoError(t, err)
	require.Contains(t, out, "NAME")

	_, err = runArgs(t, "", "--data-dir", dir, "--draw", "1", "--list", "period 4")
	require.ErrorIs(t, err, store.ErrUnknownList)
	require.Contains(t, err.Error(), `did you mean "Period 3"?`)

	out, err = runArgs(t, "", "--data-dir", dir, "--lists")
	require.NoError(t, err)
	require.Contains(t, out, "Period 3")
	require.Contains(t, out, "Ann, Ben, Cat")
}

func TestBatchErrors(t *testing.T) {
	dir := setup(t)
	path := writeRoster(t, t.TempDir(), "Ann")

	_, err := runArgs(t, "", "--data-dir", dir, "--groups", "0", "--file", path)
	require.ErrorIs(t, err, grouping.ErrInvalidArgument)

	_, err = runArgs(t, "", "--data-dir", dir, "--draw=-1", "--file", path)
	require.ErrorIs(t, err, grouping.ErrInvalidArgument)

	_, err = runArgs(t, "", "--data-dir", dir, "--groups", "2", "--draw", "1", "--file", path)
	require.EqualError(t, err, "use only one of --groups and --draw")

	_, err = runArgs(t, "", "--data-dir", dir, "--groups", "2")
	require.Error(t, err)

	_, err = runArgs(t, "", "--data-dir", dir, "--groups", "2", "--list", "x", "--file", path)
	require.EqualError(t, err, "use only one of --list and --file")

	_, err = runArgs(t, "", "--data-dir", dir, "--groups", "2", "--file", filepath.Join(dir, "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestBadConfigFails(t *testing.T) {
	dir := setup(t)
	_, err := runArgs(t, "", "--data-dir", dir, "--store", "mongo", "--lists")
	require.ErrorContains(t, err, "config")
}

func TestHelp(t *testing.T) {
	setup(t)
	out, err := runArgs(t, "", "--help")
	require.True(t, errors.Is(err, pflag.ErrHelp))
	require.Contains(t, out, "--groups")
}

func TestSQLiteBackendBatch(t *testing.T) {
	dir := setup(t)
	path := writeRoster(t, t.TempDir(), "Ann", "Ben")

	out, err := runArgs(t, "", "--data-dir", dir, "--store", "sqlite", "--groups", "1", "--file", path)
	require.NoError(t, err)
	require.Contains(t, out, "Ann")
	require.Contains(t, out, "Ben")
	require.FileExists(t, filepath.Join(dir, store.SQLiteFileName))
}
