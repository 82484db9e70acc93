package main

import (
	"fmt"

	"github.com/fwojciec/ramendex"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	filter := ramendex.RecordFilter{Query: c.Query, Limit: c.Limit}
	if c.Section != "" {
		section, ok := ramendex.ParseSection(c.Section)
		if !ok {
			fmt.Fprintf(deps.Stderr, "error: unknown section %q\n", c.Section)
			return ramendex.Errorf(ramendex.EINVALID, "unknown section %q", c.Section)
		}
		filter.Section = &section
	}
	if c.Category != "" {
		category, ok := ramendex.ParseCategory(c.Category)
		if !ok {
			fmt.Fprintf(deps.Stderr, "error: unknown category %q\n", c.Category)
			return ramendex.Errorf(ramendex.EINVALID, "unknown category %q", c.Category)
		}
		filter.MenuCategory = &category
	}

	records, err := deps.Searcher.FindRecords(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ramendex.ErrorMessage(err))
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No records found. Use 'ramendex index' to index cleaned records.")
		return nil
	}

	fmt.Fprintln(deps.Stdout, ramendex.FormatRecords(records))
	return nil
}
