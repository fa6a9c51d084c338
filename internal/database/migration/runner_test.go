package migration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeMigrationFile(t *testing.T, dir, name, sql string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(sql), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestLoadMigrations_OrdersByVersion(t *testing.T) {
	dir := t.TempDir()
	writeMigrationFile(t, dir, "V10__later.sql", "SELECT 10;")
	writeMigrationFile(t, dir, "V2__second.sql", "SELECT 2;")
	writeMigrationFile(t, dir, "V1__first.sql", "SELECT 1;")

	migs, err := loadMigrations(dir)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(migs) != 3 {
		t.Fatalf("expected 3 migrations, got %d", len(migs))
	}
	want := []int64{1, 2, 10}
	for i, m := range migs {
		if m.Version != want[i] {
			t.Fatalf("wrong order at %d: got version %d, want %d", i, m.Version, want[i])
		}
	}
	if migs[2].Name != "later" {
		t.Fatalf("expected name from filename, got %q", migs[2].Name)
	}
}

func TestLoadMigrations_SkipsNonMatchingFiles(t *testing.T) {
	dir := t.TempDir()
	writeMigrationFile(t, dir, "V1__schema.sql", "CREATE TABLE t (id BIGINT);")
	writeMigrationFile(t, dir, "README.md", "notes")
	writeMigrationFile(t, dir, "V2_missing_separator.sql", "SELECT 1;")
	if err := os.Mkdir(filepath.Join(dir, "V3__dir.sql"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	migs, err := loadMigrations(dir)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(migs) != 1 {
		t.Fatalf("expected 1 migration, got %d", len(migs))
	}
	if migs[0].Filename != "V1__schema.sql" {
		t.Fatalf("unexpected file: %s", migs[0].Filename)
	}
}

func TestLoadMigrations_DuplicateVersion(t *testing.T) {
	dir := t.TempDir()
	writeMigrationFile(t, dir, "V1__a.sql", "SELECT 1;")
	writeMigrationFile(t, dir, "V1__b.sql", "SELECT 2;")

	_, err := loadMigrations(dir)
	if err == nil {
		t.Fatalf("expected duplicate-version error")
	}
	if !strings.Contains(err.Error(), "duplicate migration version") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadMigrations_EmptyFileRejected(t *testing.T) {
	dir := t.TempDir()
	writeMigrationFile(t, dir, "V1__empty.sql", "   \n\t")

	_, err := loadMigrations(dir)
	if err == nil {
		t.Fatalf("expected error for empty migration file")
	}
}

func TestLoadMigrations_MissingDir(t *testing.T) {
	migs, err := loadMigrations(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Fatalf("missing dir must not fail: %v", err)
	}
	if len(migs) != 0 {
		t.Fatalf("expected no migrations, got %d", len(migs))
	}
}

func TestLoadMigrations_ChecksumStableAcrossWhitespace(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()
	writeMigrationFile(t, dirA, "V1__x.sql", "SELECT 1;")
	writeMigrationFile(t, dirB, "V1__x.sql", "\n  SELECT 1;  \n")

	a, err := loadMigrations(dirA)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	b, err := loadMigrations(dirB)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if a[0].Checksum != b[0].Checksum {
		t.Fatalf("checksum must ignore surrounding whitespace")
	}
}
