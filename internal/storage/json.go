package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"kcisum/internal/domain"
)

// JSONStore reads records from a JSON file, or from every JSON file under a directory
type JSONStore struct {
	path    string
	scanner *Scanner
}

// NewJSONStore returns a store reading the records at path
func NewJSONStore(path string, pathsToIgnore []string) *JSONStore {
	return &JSONStore{
		path:    path,
		scanner: NewScanner(pathsToIgnore),
	}
}

// GetStatus returns the records with the given status, in file order
func (s *JSONStore) GetStatus(status string) ([]domain.Record, error) {
	all, err := s.Load()
	if err != nil {
		return nil, err
	}

	var matched []domain.Record
	for _, r := range all {
		if r.Status == status {
			matched = append(matched, r)
		}
	}
	return matched, nil
}

// Load reads every record regardless of status
func (s *JSONStore) Load() ([]domain.Record, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		return nil, domain.NewStoreError("open records", err)
	}

	if !info.IsDir() {
		return readRecordsFile(s.path)
	}

	files, err := s.scanner.Scan(s.path)
	if err != nil {
		return nil, domain.NewStoreError("scan records directory", err)
	}

	var all []domain.Record
	for _, file := range files {
		records, err := readRecordsFile(file)
		if err != nil {
			return nil, err
		}
		all = append(all, records...)
	}
	return all, nil
}

// readRecordsFile accepts either a JSON array of records or a single record object
func readRecordsFile(path string) ([]domain.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.NewStoreError("read records file", err)
	}

	var records []domain.Record
	if err := json.Unmarshal(data, &records); err == nil {
		return records, nil
	}

	var single domain.Record
	if err := json.Unmarshal(data, &single); err != nil {
		return nil, domain.NewStoreError(fmt.Sprintf("parse records file %s", path), err)
	}
	return []domain.Record{single}, nil
}
