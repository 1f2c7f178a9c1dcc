package data

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInitDBDuckDB(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := InitDB(DriverDuckDB, dbPath)
	if err != nil {
		t.Fatalf("Failed to initialize DB: %v", err)
	}
	defer db.Close()

	var tableCount int
	err = db.QueryRow(`SELECT COUNT(*) FROM information_schema.tables WHERE table_name = 'kv'`).Scan(&tableCount)
	if err != nil {
		t.Fatalf("Failed to query tables: %v", err)
	}

	if tableCount != 1 {
		t.Errorf("Expected kv table, got %d tables", tableCount)
	}
}

func TestInitDBCreatesDirectory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	db, err := InitDB(DriverDuckDB, dbPath)
	if err != nil {
		t.Fatalf("Failed to initialize DB with nested path: %v", err)
	}
	defer db.Close()

	if _, err := os.Stat(filepath.Dir(dbPath)); os.IsNotExist(err) {
		t.Error("DB directory was not created")
	}
}

func TestInitDBSQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.sqlite")

	db, err := InitDB(DriverSQLite, dbPath)
	if err != nil {
		t.Fatalf("Failed to initialize sqlite DB: %v", err)
	}
	defer db.Close()

	var name string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'kv'`).Scan(&name)
	if err != nil {
		t.Fatalf("Expected kv table: %v", err)
	}
}

func TestInitDBUnknownDriver(t *testing.T) {
	_, err := InitDB("postgres", filepath.Join(t.TempDir(), "x.db"))
	if err == nil {
		t.Error("Expected error for unsupported driver")
	}
}
