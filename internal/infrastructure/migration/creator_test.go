package migration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"add clients index", "add_clients_index"},
		{"Add-Clients-Index", "add_clients_index"},
		{"ADD__CLIENTS__INDEX", "add_clients_index"},
		{"   spaces   ", "spaces"},
		{"special!@#$chars", "specialchars"},
		{"réservation statut", "rservation_statut"},
		{"_leading trailing_", "leading_trailing"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizeName(tt.input))
		})
	}
}

func TestCreateMigration_AllDialects(t *testing.T) {
	base := t.TempDir()

	files, err := CreateMigration(base, "add clients index", "Speeds up phone lookups")
	require.NoError(t, err)
	require.Len(t, files, len(Dialects))

	for i, dialect := range Dialects {
		mf := files[i]
		assert.Equal(t, "000001", mf.Version)
		assert.Equal(t, filepath.Join(base, dialect, "000001_add_clients_index.up.sql"), mf.UpPath)
		assert.FileExists(t, mf.DownPath)

		up, err := os.ReadFile(mf.UpPath)
		require.NoError(t, err)
		assert.Contains(t, string(up), "-- Migration: add clients index")
		assert.Contains(t, string(up), "-- Description: Speeds up phone lookups")
	}
}

func TestCreateMigration_NextSequence(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(base, "postgres"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(base, "postgres", "000007_init_schema.up.sql"), nil, 0o644))

	files, err := CreateMigration(base, "next", "")
	require.NoError(t, err)
	for _, mf := range files {
		assert.Equal(t, "000008", mf.Version)
	}
}

func TestCreateMigration_RejectsEmptyName(t *testing.T) {
	_, err := CreateMigration(t.TempDir(), "!!!", "")
	assert.Error(t, err)
}

func TestListMigrations(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"000002_b.up.sql", "000002_b.down.sql",
		"000001_a.up.sql", "000001_a.down.sql",
		"README.md",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "000003_dir.up.sql"), 0o755))

	names, err := ListMigrations(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"000001_a", "000002_b"}, names)
}

func TestListMigrations_MissingDirectory(t *testing.T) {
	names, err := ListMigrations(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestListMigrations_ShippedSchema(t *testing.T) {
	for _, dialect := range Dialects {
		names, err := ListMigrations(filepath.Join("..", "..", "..", "migrations", dialect))
		require.NoError(t, err)
		assert.Contains(t, names, "000001_init_schema", dialect)
	}
}
