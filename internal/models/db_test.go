package models

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenDialectorRejectsUnknownDriver(t *testing.T) {
	if _, err := OpenDialector("mysql", "dsn"); err == nil {
		t.Fatalf("expected unsupported driver error")
	}
}

func TestInitDBCreatesSQLiteDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "db")
	dsn := filepath.Join(dir, "inkwell.db")

	db, err := InitDB("sqlite", dsn, DBOptions{Pool: DBPoolConfig{MaxOpenConns: 1, MaxIdleConns: 1}})
	if err != nil {
		t.Fatalf("init db failed: %v", err)
	}
	t.Cleanup(func() {
		_ = CloseDB(db)
	})
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("sqlite dir should exist: %v", err)
	}
	if !db.Migrator().HasTable(&Author{}) || !db.Migrator().HasTable(&Post{}) {
		t.Fatalf("expected authors and posts tables")
	}
	if !db.Migrator().HasIndex(&Author{}, "Name") {
		t.Fatalf("expected unique index on authors.name")
	}
}

func TestEnsureSQLiteDirSkipsMemory(t *testing.T) {
	for _, dsn := range []string{"", ":memory:", "file::memory:?cache=shared", "local.db"} {
		if err := ensureSQLiteDir(dsn); err != nil {
			t.Fatalf("ensureSQLiteDir(%q) failed: %v", dsn, err)
		}
	}
}
