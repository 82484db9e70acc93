package xlsx_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/ramendex"
	"github.com/fwojciec/ramendex/xlsx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func openRows(t *testing.T, path, sheet string) [][]string {
	t.Helper()
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	return rows
}

func TestWriteRecords(t *testing.T) {
	t.Parallel()

	records := []*ramendex.Record{
		{
			URL:          "https://afuri.com/menu",
			Title:        "Yuzu Shio Ramen",
			Content:      "Chicken broth with yuzu.",
			Section:      ramendex.SectionMenu,
			MenuItem:     "Yuzu Shio Ramen",
			MenuCategory: ramendex.CategoryRamen,
			Price:        "¥1,390",
			PriceRange:   ramendex.Price1000To2000,
			Tags:         []string{"shio", "yuzu"},
		},
		{
			URL:          "https://afuri.com/menu",
			Title:        "Yuzu Tsuyu Tsukemen",
			Section:      ramendex.SectionMenu,
			MenuItem:     "Yuzu Tsuyu Tsukemen",
			MenuCategory: ramendex.CategoryTsukemen,
		},
		{
			URL:       "https://afuri.com/stores",
			Title:     "AFURI Ebisu",
			Content:   "1-1-7 Ebisu, Shibuya-ku",
			Section:   ramendex.SectionStore,
			StoreName: "AFURI Ebisu",
		},
	}

	t.Run("writes one row per record after the header", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out", "review.xlsx")

		require.NoError(t, xlsx.WriteRecords(path, records))

		rows := openRows(t, path, xlsx.RecordsSheet)
		require.Len(t, rows, 4)
		assert.Equal(t, "section", rows[0][0])
		assert.Equal(t, []string{"Menu", "Yuzu Shio Ramen", "Yuzu Shio Ramen", "Ramen", "¥1,390", "¥1,000 - ¥2,000"}, rows[1][:6])
		assert.Equal(t, "shio, yuzu", rows[1][10])
		assert.Equal(t, "AFURI Ebisu", rows[3][6])
	})

	t.Run("summarizes records per section and category", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "review.xlsx")

		require.NoError(t, xlsx.WriteRecords(path, records))

		rows := openRows(t, path, xlsx.SummarySheet)
		assert.Equal(t, [][]string{
			{"section", "menu_category", "records"},
			{"Menu", "Ramen", "1"},
			{"Menu", "Tsukemen", "1"},
			{"Store Information", "", "1"},
			{"total", "", "3"},
		}, rows)
	})

	t.Run("truncates content longer than a cell holds", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "review.xlsx")
		long := &ramendex.Record{
			URL:     "https://afuri.com/about",
			Title:   "About",
			Content: strings.Repeat("a", excelize.TotalCellChars+100),
			Section: ramendex.SectionBrand,
		}

		require.NoError(t, xlsx.WriteRecords(path, []*ramendex.Record{long}))

		rows := openRows(t, path, xlsx.RecordsSheet)
		require.Len(t, rows, 2)
		assert.Len(t, rows[1][11], excelize.TotalCellChars)
	})
}
