package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/renameio/v2"
	"gopkg.in/yaml.v3"
)

const maxFileSize = 10 * 1024 * 1024

// Load reads and unmarshals one event's media file.
func Load(path string) (*Data, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat media file: %w", err)
	}

	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("media file too large: %d bytes (max %d)", info.Size(), maxFileSize)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read media file: %w", err)
	}

	var data Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse media file %s: %w", path, err)
	}

	return &data, nil
}

// Save marshals and atomically replaces one event's media file. An
// advisory lock serializes concurrent writers of the same file.
func Save(path string, data *Data) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create media directory: %w", err)
	}

	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to lock media file: %w", err)
	}
	defer lock.Unlock()

	raw, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal media data: %w", err)
	}

	if err := renameio.WriteFile(path, raw, 0644); err != nil {
		return fmt.Errorf("failed to write media file: %w", err)
	}

	return nil
}
