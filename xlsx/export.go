// Package xlsx exports canonical records to a spreadsheet for manual review.
package xlsx

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fwojciec/ramendex"
	"github.com/xuri/excelize/v2"
)

// RecordsSheet and SummarySheet name the sheets written by WriteRecords.
const (
	RecordsSheet = "Records"
	SummarySheet = "Summary"
)

var headers = []string{
	"section", "title", "menu_item", "menu_category", "price", "price_range",
	"store_name", "url", "date", "author", "tags", "content",
}

// WriteRecords writes records to a workbook at path: one row per record on
// the Records sheet and record counts per section and category on the
// Summary sheet.
func WriteRecords(path string, records []*ramendex.Record) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), RecordsSheet); err != nil {
		return err
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(RecordsSheet, cell, h)
	}

	for i, rec := range records {
		r := i + 2
		set := func(col int, value string) error {
			cell, _ := excelize.CoordinatesToCellName(col, r)
			return f.SetCellValue(RecordsSheet, cell, truncate(value))
		}

		values := []string{
			string(rec.Section), rec.Title, rec.MenuItem, string(rec.MenuCategory), rec.Price,
			string(rec.PriceRange), rec.StoreName, rec.URL, rec.Date, rec.Author,
			strings.Join(rec.Tags, ", "), rec.Content,
		}
		for col, v := range values {
			if err := set(col+1, v); err != nil {
				return fmt.Errorf("write row %d: %w", r, err)
			}
		}
	}
	_ = f.SetPanes(RecordsSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})

	if err := writeSummary(f, records); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return f.SaveAs(path)
}

func writeSummary(f *excelize.File, records []*ramendex.Record) error {
	if _, err := f.NewSheet(SummarySheet); err != nil {
		return err
	}

	type key struct{ section, category string }
	counts := make(map[key]int)
	for _, rec := range records {
		counts[key{string(rec.Section), string(rec.MenuCategory)}]++
	}
	keys := make([]key, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].section != keys[j].section {
			return keys[i].section < keys[j].section
		}
		return keys[i].category < keys[j].category
	})

	_ = f.SetSheetRow(SummarySheet, "A1", &[]any{"section", "menu_category", "records"})
	for i, k := range keys {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(SummarySheet, cell, &[]any{k.section, k.category, counts[k]}); err != nil {
			return err
		}
	}
	cell, _ := excelize.CoordinatesToCellName(1, len(keys)+2)
	return f.SetSheetRow(SummarySheet, cell, &[]any{"total", "", len(records)})
}

// truncate cuts s to the number of characters a spreadsheet cell can hold.
func truncate(s string) string {
	r := []rune(s)
	if len(r) <= excelize.TotalCellChars {
		return s
	}
	return string(r[:excelize.TotalCellChars])
}
