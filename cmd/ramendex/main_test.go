package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/ramendex"
	main "github.com/fwojciec/ramendex/cmd/ramendex"
	"github.com/fwojciec/ramendex/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const menuPage = `<html><head><title>AFURI Menu</title></head><body>
<main>
  <section><h2>Ramen</h2>
    <div class="menu-item">
      <h3 class="menu-item__name">Yuzu Shio Ramen</h3>
      <p class="menu-item__description">Chicken broth with yuzu citrus.</p>
      <span class="menu-item__price">¥1,390</span>
    </div>
  </section>
</main>
</body></html>`

// TestMain_Run_Pipeline runs extract, clean, index and search against
// temporary files and a temporary database.
func TestMain_Run_Pipeline(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	pages := filepath.Join(dir, "site")
	require.NoError(t, os.MkdirAll(pages, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(pages, "menu.html"), []byte(menuPage), 0644))

	raw := filepath.Join(dir, "raw.json")
	cleaned := filepath.Join(dir, "cleaned.json")
	review := filepath.Join(dir, "review.xlsx")
	dbPath := filepath.Join(dir, "ramendex.db")

	run := func(args ...string) string {
		t.Helper()
		m := main.NewMain()
		m.DBPath = dbPath
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		err := m.Run(context.Background(), args, stdout, stderr)
		require.NoError(t, err, stderr.String())
		return stdout.String()
	}

	out := run("extract", pages, "--base-url", "https://afuri.com", "-o", raw)
	assert.Contains(t, out, "Extracted 1 records from 1 pages")

	out = run("clean", raw, "-o", cleaned, "--xlsx", review)
	assert.Contains(t, out, "1 kept")
	assert.FileExists(t, review)

	records, err := fs.NewRecordStore().ReadRecords(cleaned)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Yuzu Shio Ramen", records[0].MenuItem)
	assert.Equal(t, ramendex.CategoryRamen, records[0].MenuCategory)
	assert.Equal(t, "https://afuri.com/menu", records[0].URL)

	out = run("index", cleaned)
	assert.Contains(t, out, "Indexed 1 records (replaced, 1 batches)")

	out = run("search", "yuzu", "--section", "menu")
	assert.Contains(t, out, "## Yuzu Shio Ramen (Menu, Ramen")

	out = run("-v", "search", "tonkotsu")
	assert.Contains(t, out, "No records found.")
}
