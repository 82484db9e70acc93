// Package fs provides file-based storage for record sets and saved pages.
package fs

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fwojciec/ramendex"
)

// Ensure RecordStore implements ramendex.RecordStore at compile time.
var _ ramendex.RecordStore = (*RecordStore)(nil)

// RecordStore reads and writes record sets as JSON arrays. Writes go to a
// temporary file next to the target and are renamed into place, so readers
// never observe a partially written file.
type RecordStore struct{}

// NewRecordStore creates a new RecordStore.
func NewRecordStore() *RecordStore {
	return &RecordStore{}
}

// ReadRawRecords loads scraper output. Numbers are kept as json.Number so
// prices survive unchanged.
func (s *RecordStore) ReadRawRecords(path string) ([]ramendex.RawRecord, error) {
	var records []ramendex.RawRecord
	if err := readJSON(path, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *RecordStore) WriteRawRecords(path string, records []ramendex.RawRecord) error {
	if records == nil {
		records = []ramendex.RawRecord{}
	}
	return writeJSON(path, records)
}

func (s *RecordStore) ReadRecords(path string) ([]*ramendex.Record, error) {
	var records []*ramendex.Record
	if err := readJSON(path, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *RecordStore) WriteRecords(path string, records []*ramendex.Record) error {
	if records == nil {
		records = []*ramendex.Record{}
	}
	return writeJSON(path, records)
}

func (s *RecordStore) WriteEmbeddings(path string, vectors map[string][]float32) error {
	if vectors == nil {
		vectors = map[string][]float32{}
	}
	return writeJSON(path, vectors)
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return ramendex.Errorf(ramendex.ENOTFOUND, "record file %q not found", path)
	} else if err != nil {
		return err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return ramendex.Errorf(ramendex.EINVALID, "record file %q is not a JSON array of records: %v", path, err)
	}
	return nil
}

func writeJSON(path string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
