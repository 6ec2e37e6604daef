package db

import (
	"database/sql"
	"errors"
	"testing"

	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`CREATE TABLE kv (name TEXT PRIMARY KEY, value REAL NOT NULL)`)
	if err != nil {
		db.Close()
		t.Fatalf("failed to create table: %v", err)
	}

	return db
}

func count(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM kv`).Scan(&n); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	return n
}

func TestWithTx_Success(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	err := WithTx(db, func(tx *sql.Tx) error {
		for _, name := range []string{"master", "bass"} {
			if _, err := tx.Exec(`INSERT INTO kv (name, value) VALUES (?, ?)`, name, 1.5); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WithTx failed: %v", err)
	}

	if n := count(t, db); n != 2 {
		t.Errorf("expected 2 rows, got %d", n)
	}
}

func TestWithTx_Rollback(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	errBoom := errors.New("boom")
	err := WithTx(db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO kv (name, value) VALUES ('master', 1)`); err != nil {
			return err
		}
		return errBoom
	})
	if !errors.Is(err, errBoom) {
		t.Fatalf("expected errBoom, got %v", err)
	}

	if n := count(t, db); n != 0 {
		t.Errorf("expected rollback to leave 0 rows, got %d", n)
	}
}

func TestWithTx_ConstraintRollsBackEarlierWrites(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	err := WithTx(db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO kv (name, value) VALUES ('master', 1)`); err != nil {
			return err
		}
		_, err := tx.Exec(`INSERT INTO kv (name, value) VALUES ('master', 2)`)
		return err
	})
	if err == nil {
		t.Fatal("expected a unique constraint error")
	}

	if n := count(t, db); n != 0 {
		t.Errorf("expected 0 rows, got %d", n)
	}
}

func TestNullString(t *testing.T) {
	tests := []struct {
		in   string
		want sql.NullString
	}{
		{"", sql.NullString{}},
		{"bass", sql.NullString{String: "bass", Valid: true}},
	}
	for _, tt := range tests {
		got := NullString(tt.in)
		if got != tt.want {
			t.Errorf("NullString(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
		if back := NullStringValue(got); back != tt.in {
			t.Errorf("NullStringValue(NullString(%q)) = %q", tt.in, back)
		}
	}
}
