package ramendex

// Stats summarizes one cleaning pass.
//
// Total counts raw input records. Produced counts the canonical records
// they yielded before filtering, so a split page adds several; Kept,
// Invalid and Duplicates partition Produced.
type Stats struct {
	Total      int `json:"total"`
	Produced   int `json:"produced"`
	Kept       int `json:"kept"`
	Invalid    int `json:"invalid"`
	Duplicates int `json:"duplicates"`

	// Issues fixed, by kind.
	TitleCleaned     int `json:"titleCleaned"`
	ContentCleaned   int `json:"contentCleaned"`
	EncodingRepaired int `json:"encodingRepaired"`

	SplitMenuItems       int `json:"splitMenuItems"`
	SegmentedStores      int `json:"segmentedStores"`
	StructuralMismatches int `json:"structuralMismatches"`
	NonFoodOverrides     int `json:"nonFoodOverrides"`
	Downgraded           int `json:"downgraded"`
}

// Removed returns the number of produced records that did not survive.
func (s Stats) Removed() int {
	return s.Invalid + s.Duplicates
}

// Add accumulates o into s.
func (s *Stats) Add(o Stats) {
	s.Total += o.Total
	s.Produced += o.Produced
	s.Kept += o.Kept
	s.Invalid += o.Invalid
	s.Duplicates += o.Duplicates
	s.TitleCleaned += o.TitleCleaned
	s.ContentCleaned += o.ContentCleaned
	s.EncodingRepaired += o.EncodingRepaired
	s.SplitMenuItems += o.SplitMenuItems
	s.SegmentedStores += o.SegmentedStores
	s.StructuralMismatches += o.StructuralMismatches
	s.NonFoodOverrides += o.NonFoodOverrides
	s.Downgraded += o.Downgraded
}
