package mock

import "github.com/fwojciec/ramendex"

var _ ramendex.RecordStore = (*RecordStore)(nil)

// RecordStore is a mock implementation of ramendex.RecordStore.
type RecordStore struct {
	ReadRawRecordsFn  func(path string) ([]ramendex.RawRecord, error)
	WriteRawRecordsFn func(path string, records []ramendex.RawRecord) error
	ReadRecordsFn     func(path string) ([]*ramendex.Record, error)
	WriteRecordsFn    func(path string, records []*ramendex.Record) error
	WriteEmbeddingsFn func(path string, vectors map[string][]float32) error
}

func (s *RecordStore) ReadRawRecords(path string) ([]ramendex.RawRecord, error) {
	return s.ReadRawRecordsFn(path)
}

func (s *RecordStore) WriteRawRecords(path string, records []ramendex.RawRecord) error {
	return s.WriteRawRecordsFn(path, records)
}

func (s *RecordStore) ReadRecords(path string) ([]*ramendex.Record, error) {
	return s.ReadRecordsFn(path)
}

func (s *RecordStore) WriteRecords(path string, records []*ramendex.Record) error {
	return s.WriteRecordsFn(path, records)
}

func (s *RecordStore) WriteEmbeddings(path string, vectors map[string][]float32) error {
	return s.WriteEmbeddingsFn(path, vectors)
}
