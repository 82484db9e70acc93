// Package ingest turns saved source pages into raw records: it decodes each
// page's charset, routes it to the parser for its layout and repairs
// double-encoded text in the parsed fields.
package ingest

import (
	"context"
	"io"
	"log/slog"
	"runtime"

	"github.com/fwojciec/ramendex"
	"github.com/fwojciec/ramendex/clean"
	"golang.org/x/sync/errgroup"
)

// repairedFields are the free-text fields parsers fill from page text.
var repairedFields = []string{"title", "content", "menu_item", "menu_category", "store_name", "introduction", "author"}

// Ingester parses saved pages into raw records.
type Ingester struct {
	Parsers ramendex.PageParserRegistry

	// Repairer reverses double-encoding in parsed fields. Nil skips repair.
	Repairer *clean.Repairer

	// Concurrency is the number of pages parsed in parallel.
	// Zero means GOMAXPROCS.
	Concurrency int

	// Logger receives one line per failed page. Nil discards them.
	Logger *slog.Logger
}

// Result holds the outcome of an ingest run.
type Result struct {
	Pages    int
	Failed   int
	Records  int
	Repaired int
}

// pageResult holds the outcome of parsing a single page.
type pageResult struct {
	records  []ramendex.RawRecord
	repaired int
	err      error
}

// Ingest parses pages in parallel and returns their records in page order.
// A page that fails to parse is logged and counted, not fatal. The only
// error returned is the context's.
func (in *Ingester) Ingest(ctx context.Context, pages []*ramendex.Page) ([]ramendex.RawRecord, Result, error) {
	results := make([]pageResult, len(pages))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(in.concurrency())
	for i, page := range pages {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = in.processPage(page)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, Result{}, err
	}

	res := Result{Pages: len(pages)}
	var records []ramendex.RawRecord
	for i, r := range results {
		if r.err != nil {
			res.Failed++
			in.logger().Warn("parse page failed", "url", pages[i].URL, "err", r.err)
			continue
		}
		res.Repaired += r.repaired
		records = append(records, r.records...)
	}
	res.Records = len(records)
	return records, res, nil
}

// processPage decodes, parses and repairs a single page.
func (in *Ingester) processPage(page *ramendex.Page) pageResult {
	html, _ := Decode([]byte(page.HTML))

	parser := in.Parsers.GetForPage(html, page.URL)
	if parser == nil {
		return pageResult{err: ramendex.Errorf(ramendex.ENOTFOUND, "no parser for page %q", page.URL)}
	}
	records, err := parser.Parse(html, page.URL)
	if err != nil {
		return pageResult{err: err}
	}

	var repaired int
	if in.Repairer != nil {
		for _, rec := range records {
			for _, field := range repairedFields {
				s, ok := rec[field].(string)
				if !ok {
					continue
				}
				if fixed, ok := in.Repairer.Repair(s); ok {
					rec[field] = fixed
					repaired++
				}
			}
		}
	}
	return pageResult{records: records, repaired: repaired}
}

func (in *Ingester) concurrency() int {
	if in.Concurrency > 0 {
		return in.Concurrency
	}
	return runtime.GOMAXPROCS(0)
}

func (in *Ingester) logger() *slog.Logger {
	if in.Logger != nil {
		return in.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
