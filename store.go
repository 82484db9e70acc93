package ramendex

// RecordStore persists record sets as JSON arrays.
type RecordStore interface {
	// ReadRawRecords loads scraper output. Returns ENOTFOUND if the file
	// does not exist and EINVALID if it is not a JSON array of objects.
	ReadRawRecords(path string) ([]RawRecord, error)

	// WriteRawRecords atomically replaces path with records.
	WriteRawRecords(path string, records []RawRecord) error

	// ReadRecords loads canonical records.
	ReadRecords(path string) ([]*Record, error)

	// WriteRecords atomically replaces path with records.
	WriteRecords(path string, records []*Record) error

	// WriteEmbeddings atomically replaces path with a JSON object mapping
	// index document ids to vectors.
	WriteEmbeddings(path string, vectors map[string][]float32) error
}
