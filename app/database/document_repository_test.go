package database

import (
	"path/filepath"
	"testing"
	"time"
)

func testRepository(t *testing.T) *DocumentRepository {
	t.Helper()

	db, err := NewConnection(filepath.Join(t.TempDir(), "documents.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, _, err := RunMigrations(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return NewDocumentRepository(db)
}

func TestDocumentPutAndGetFresh(t *testing.T) {
	repo := testRepository(t)

	url := "https://example.org/schedule.xml"
	body := []byte("<schedule/>")

	if err := repo.Put(url, body); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	got, ok, err := repo.GetFresh(url, time.Hour)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !ok {
		t.Fatal("Expected a cache hit")
	}
	if string(got) != string(body) {
		t.Errorf("Expected cached body %q, got %q", body, got)
	}
}

func TestDocumentGetFreshMiss(t *testing.T) {
	repo := testRepository(t)

	_, ok, err := repo.GetFresh("https://example.org/unknown.xml", time.Hour)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if ok {
		t.Error("Unknown URL should miss")
	}
}

func TestDocumentGetFreshStale(t *testing.T) {
	repo := testRepository(t)

	url := "https://example.org/schedule.xml"
	if err := repo.Put(url, []byte("data")); err != nil {
		t.Fatal(err)
	}

	// Zero max age makes everything stale
	_, ok, err := repo.GetFresh(url, 0)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if ok {
		t.Error("Stale entry should miss")
	}
}

func TestDocumentPutReplaces(t *testing.T) {
	repo := testRepository(t)

	url := "https://example.org/schedule.xml"
	if err := repo.Put(url, []byte("old")); err != nil {
		t.Fatal(err)
	}
	if err := repo.Put(url, []byte("new")); err != nil {
		t.Fatal(err)
	}

	got, ok, _ := repo.GetFresh(url, time.Hour)
	if !ok || string(got) != "new" {
		t.Errorf("Expected replaced body, got %q (hit=%v)", got, ok)
	}

	count, err := repo.Count()
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("Expected 1 document after replace, got %d", count)
	}
}

func TestDocumentPurge(t *testing.T) {
	repo := testRepository(t)

	if err := repo.Put("https://example.org/a.xml", []byte("a")); err != nil {
		t.Fatal(err)
	}
	if err := repo.Put("https://example.org/b.xml", []byte("b")); err != nil {
		t.Fatal(err)
	}

	purged, err := repo.Purge()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if purged != 2 {
		t.Errorf("Expected 2 purged documents, got %d", purged)
	}

	count, _ := repo.Count()
	if count != 0 {
		t.Errorf("Expected empty cache after purge, got %d", count)
	}
}
