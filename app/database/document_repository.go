package database

import (
	"database/sql"
	"fmt"
	"time"
)

// DocumentRepository handles database operations for cached source documents
type DocumentRepository struct {
	db *DB
}

func NewDocumentRepository(db *DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// GetFresh returns the cached body for a URL if it was fetched within
// maxAge. The second return is false on a miss or a stale entry.
func (r *DocumentRepository) GetFresh(url string, maxAge time.Duration) ([]byte, bool, error) {
	var body []byte
	var fetchedAt int64

	err := r.db.QueryRow(`
		SELECT body, fetched_at FROM documents WHERE url = ?
	`, url).Scan(&body, &fetchedAt)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to query document: %w", err)
	}

	if time.Since(time.Unix(fetchedAt, 0)) > maxAge {
		return nil, false, nil
	}

	return body, true, nil
}

// Put stores or replaces the cached body for a URL.
func (r *DocumentRepository) Put(url string, body []byte) error {
	_, err := r.db.Exec(`
		INSERT OR REPLACE INTO documents (url, body, fetched_at)
		VALUES (?, ?, ?)
	`, url, body, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to store document: %w", err)
	}

	return nil
}

// Purge removes every cached document and returns how many were dropped.
func (r *DocumentRepository) Purge() (int64, error) {
	result, err := r.db.Exec(`DELETE FROM documents`)
	if err != nil {
		return 0, fmt.Errorf("failed to purge documents: %w", err)
	}

	count, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count purged documents: %w", err)
	}

	return count, nil
}

// Count returns the number of cached documents.
func (r *DocumentRepository) Count() (int64, error) {
	var count int64
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM documents`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count documents: %w", err)
	}

	return count, nil
}
