package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	apperrors "bizdash/internal/errors"
)

// WriteJSON writes records to path as a JSON array with two-space indent.
// A nil slice is written as an empty array.
func WriteJSON[T any](path string, records []T) error {
	if records == nil {
		records = []T{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return apperrors.NewStorageError("failed to encode snapshot", err).WithContext("path", path)
	}

	return writeAtomic(path, buf.Bytes())
}

// LoadJSON reads a JSON array written by WriteJSON.
func LoadJSON[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("snapshot %s", filepath.Base(path))).WithContext("path", path)
		}
		return nil, apperrors.NewStorageError("failed to read snapshot", err).WithContext("path", path)
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, apperrors.NewParsingError("failed to decode snapshot", err).WithContext("path", path)
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// writeAtomic writes data to a temp file next to path and renames it.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return apperrors.NewStorageError("failed to create directory", err).WithContext("path", dir)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return apperrors.NewStorageError("failed to create temp file", err).WithContext("path", path)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return apperrors.NewStorageError("failed to write snapshot", err).WithContext("path", path)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return apperrors.NewStorageError("failed to close snapshot", err).WithContext("path", path)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return apperrors.NewStorageError("failed to set snapshot permissions", err).WithContext("path", path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return apperrors.NewStorageError("failed to replace snapshot", err).WithContext("path", path)
	}
	return nil
}
