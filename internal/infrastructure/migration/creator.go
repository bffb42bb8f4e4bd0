package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"text/template"
	"time"

	"github.com/mkboutique/backend/internal/infrastructure/config"
)

// Dialects lists the drivers that ship SQL migrations
var Dialects = []string{config.DriverPostgres, config.DriverMySQL}

const upTemplate = `-- Migration: {{.Name}}
-- Created: {{.Timestamp}}
-- Description: {{.Description}}

`

const downTemplate = `-- Migration: {{.Name}} (Rollback)
-- Created: {{.Timestamp}}

`

var (
	upTmpl   = template.Must(template.New("up").Parse(upTemplate))
	downTmpl = template.Must(template.New("down").Parse(downTemplate))
)

// MigrationFile describes one created up/down pair
type MigrationFile struct {
	Version     string
	Name        string
	Description string
	Timestamp   string
	UpPath      string
	DownPath    string
}

// CreateMigration writes an empty up/down pair for every dialect under
// baseDir. All dialects share the next sequence number so that they stay
// in step.
func CreateMigration(baseDir, name, description string) ([]MigrationFile, error) {
	slug := sanitizeName(name)
	if slug == "" {
		return nil, fmt.Errorf("migration name %q has no usable characters", name)
	}

	next, err := nextVersion(baseDir)
	if err != nil {
		return nil, err
	}
	version := fmt.Sprintf("%06d", next)
	timestamp := time.Now().UTC().Format(time.RFC3339)

	created := make([]MigrationFile, 0, len(Dialects))
	for _, dialect := range Dialects {
		dir := filepath.Join(baseDir, dialect)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create migrations directory: %w", err)
		}
		base := filepath.Join(dir, version+"_"+slug)
		mf := MigrationFile{
			Version:     version,
			Name:        name,
			Description: description,
			Timestamp:   timestamp,
			UpPath:      base + ".up.sql",
			DownPath:    base + ".down.sql",
		}
		if err := writeTemplate(mf.UpPath, upTmpl, mf); err != nil {
			return nil, err
		}
		if err := writeTemplate(mf.DownPath, downTmpl, mf); err != nil {
			_ = os.Remove(mf.UpPath)
			return nil, err
		}
		created = append(created, mf)
	}
	return created, nil
}

// nextVersion returns one past the highest version found in any dialect
func nextVersion(baseDir string) (int, error) {
	highest := 0
	for _, dialect := range Dialects {
		names, err := ListMigrations(filepath.Join(baseDir, dialect))
		if err != nil {
			return 0, err
		}
		for _, n := range names {
			prefix, _, _ := strings.Cut(n, "_")
			if v, err := strconv.Atoi(prefix); err == nil && v > highest {
				highest = v
			}
		}
	}
	return highest + 1, nil
}

func writeTemplate(path string, tmpl *template.Template, data MigrationFile) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()
	if err := tmpl.Execute(f, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// sanitizeName lowercases name and joins its ASCII words with underscores
func sanitizeName(name string) string {
	words := strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return r == ' ' || r == '-' || r == '_'
	})
	kept := words[:0]
	for _, w := range words {
		var b strings.Builder
		for _, r := range w {
			if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
				b.WriteRune(r)
			}
		}
		if b.Len() > 0 {
			kept = append(kept, b.String())
		}
	}
	return strings.Join(kept, "_")
}

// ListMigrations returns the sorted base names (without .up.sql) found in
// dir. A missing directory yields an empty list.
func ListMigrations(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read migrations directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if base, ok := strings.CutSuffix(entry.Name(), ".up.sql"); ok {
			names = append(names, base)
		}
	}
	sort.Strings(names)
	return names, nil
}
