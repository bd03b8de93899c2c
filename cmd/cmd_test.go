package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCheckTablesBeforeAndAfterMigrate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cli.db")

	out, err := run(t, "--db", path, "check-tables")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing tables: recipes, tags, recipe_tags")
	assert.Contains(t, out, "recipes      missing")

	out, err = run(t, "--db", path, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "Database ready at "+path)

	out, err = run(t, "--db", path, "check-tables")
	require.NoError(t, err)
	assert.Contains(t, out, "recipe_tags  ok")
}

func TestSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cli.db")

	_, err := run(t, "--db", path, "seed", "--email", "")
	require.Error(t, err)

	out, err := run(t, "--db", path, "seed", "--email", "demo@example.com")
	require.NoError(t, err)
	assert.Contains(t, out, "Inserted 6 sample recipes for demo@example.com")

	out, err = run(t, "--db", path, "seed", "--email", "demo@example.com")
	require.NoError(t, err)
	assert.Contains(t, out, "Inserted 0 sample recipes")
}
