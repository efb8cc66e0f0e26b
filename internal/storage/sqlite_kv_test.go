package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
)

func setupKV(t *testing.T) *SQLiteKV {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "daygrid-test.db")
	kv, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("open sqlite kv: %v", err)
	}
	t.Cleanup(func() { _ = kv.Close() })
	return kv
}

func TestSQLiteKVGetMissingKey(t *testing.T) {
	kv := setupKV(t)
	value, ok, err := kv.Get(context.Background(), "absent")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok || value != "" {
		t.Fatalf("expected absent key, got %q (present=%v)", value, ok)
	}
}

func TestSQLiteKVSetGetOverwrite(t *testing.T) {
	kv := setupKV(t)
	ctx := context.Background()

	if err := kv.Set(ctx, StateKey, `{"tasks":[]}`); err != nil {
		t.Fatalf("set: %v", err)
	}
	value, ok, err := kv.Get(ctx, StateKey)
	if err != nil || !ok {
		t.Fatalf("get after set: value=%q ok=%v err=%v", value, ok, err)
	}
	if value != `{"tasks":[]}` {
		t.Fatalf("unexpected value: %q", value)
	}

	if err := kv.Set(ctx, StateKey, "second"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	value, _, err = kv.Get(ctx, StateKey)
	if err != nil {
		t.Fatalf("get after overwrite: %v", err)
	}
	if value != "second" {
		t.Fatalf("expected overwritten value, got %q", value)
	}
}

func TestMigrateDownRemovesTable(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "daygrid-test.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := MigrateUp(db); err != nil {
		t.Fatalf("migrate up: %v", err)
	}
	if err := MigrateDown(db); err != nil {
		t.Fatalf("migrate down: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO kv (key, value) VALUES ('k', 'v')`); err == nil {
		t.Fatal("expected insert to fail after migrate down")
	}
}
