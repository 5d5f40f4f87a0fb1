package store

import (
	"context"
	"path/filepath"
	"testing"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := Migrate(db.Pool); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestMigrateIdempotent(t *testing.T) {
	db := testDB(t)
	// running migrations again must be a no-op
	if err := Migrate(db.Pool); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
}

func TestGetMissingKey(t *testing.T) {
	db := testDB(t)
	v, ok, err := Get(context.Background(), db.Pool, "nope")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok || v != "" {
		t.Errorf("missing key returned %q ok=%v", v, ok)
	}
}

func TestPutGetOverwrite(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)

	if err := Put(ctx, db.Pool, KeyTheme, "dark"); err != nil {
		t.Fatal(err)
	}
	if v, ok, _ := Get(ctx, db.Pool, KeyTheme); !ok || v != "dark" {
		t.Fatalf("got %q ok=%v, want dark", v, ok)
	}

	// upsert replaces in place
	if err := Put(ctx, db.Pool, KeyTheme, "light"); err != nil {
		t.Fatal(err)
	}
	if v, _, _ := Get(ctx, db.Pool, KeyTheme); v != "light" {
		t.Fatalf("got %q after overwrite, want light", v)
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)

	if err := Put(ctx, db.Pool, KeyCandidate, `{"candidateId":"c1"}`); err != nil {
		t.Fatal(err)
	}
	if err := Delete(ctx, db.Pool, KeyCandidate); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := Get(ctx, db.Pool, KeyCandidate); ok {
		t.Error("key still present after delete")
	}

	// deleting a missing key is fine
	if err := Delete(ctx, db.Pool, "nope"); err != nil {
		t.Errorf("delete missing key: %v", err)
	}
}
