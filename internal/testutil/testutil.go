// Package testutil provides shared test helpers for setting up stores and content directories.
package testutil

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/starford/sitekit/internal/storage"
	"github.com/starford/sitekit/internal/store"
)

// TestDB opens a SQLite store in a temp dir that is closed on cleanup.
func TestDB(t *testing.T) *store.DB {
	t.Helper()
	db, err := store.Open(filepath.Join(t.TempDir(), "sitekit-test.db"))
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// TestContent creates a temporary content directory with a storage.Provider.
func TestContent(t *testing.T) (string, storage.Provider) {
	t.Helper()
	dir := t.TempDir()
	fs, err := storage.NewFS(dir)
	if err != nil {
		t.Fatal(err)
	}
	return dir, fs
}

// Eventually polls fn every tick until it returns true or timeout passes.
func Eventually(t *testing.T, timeout, tick time.Duration, fn func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if fn() {
			return
		}
		time.Sleep(tick)
	}
	t.Fatalf("condition not met within %s: %s", timeout, msg)
}
