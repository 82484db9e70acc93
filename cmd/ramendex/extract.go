package main

import (
	"fmt"

	"github.com/fwojciec/ramendex"
	"github.com/fwojciec/ramendex/clean"
	"github.com/fwojciec/ramendex/fs"
	"github.com/fwojciec/ramendex/ingest"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	pages, err := fs.ReadPages(c.Dir, c.BaseURL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ramendex.ErrorMessage(err))
		return err
	}
	if len(pages) == 0 {
		fmt.Fprintf(deps.Stderr, "error: no HTML pages found in %s\n", c.Dir)
		return ramendex.Errorf(ramendex.ENOTFOUND, "no HTML pages found in %s", c.Dir)
	}

	ingester := &ingest.Ingester{
		Parsers:     deps.Parsers,
		Repairer:    clean.NewRepairer(clean.DefaultVocabulary()),
		Concurrency: c.Concurrency,
		Logger:      deps.Logger,
	}
	records, result, err := ingester.Ingest(deps.Ctx, pages)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ramendex.ErrorMessage(err))
		return err
	}

	if err := deps.Store.WriteRawRecords(c.Output, records); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ramendex.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Extracted %d records from %d pages to %s\n", result.Records, result.Pages, c.Output)
	if result.Failed > 0 {
		fmt.Fprintf(deps.Stdout, "  %d pages failed to parse\n", result.Failed)
	}
	if result.Repaired > 0 {
		fmt.Fprintf(deps.Stdout, "  %d fields repaired\n", result.Repaired)
	}
	return nil
}
