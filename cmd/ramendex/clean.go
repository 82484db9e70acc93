package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/ramendex"
	"github.com/fwojciec/ramendex/clean"
	"github.com/fwojciec/ramendex/xlsx"
	"github.com/fwojciec/ramendex/yaml"
)

// Run executes the clean command.
func (c *CleanCmd) Run(deps *Dependencies) error {
	vocab := clean.DefaultVocabulary()
	if c.Vocab != "" {
		v, err := yaml.LoadVocabulary(c.Vocab)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", ramendex.ErrorMessage(err))
			return err
		}
		vocab = v
	}

	cleaner, err := clean.NewCleaner(vocab)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ramendex.ErrorMessage(err))
		return err
	}
	cleaner.Concurrency = c.Concurrency
	cleaner.Logger = deps.Logger

	raws, err := deps.Store.ReadRawRecords(c.Input)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ramendex.ErrorMessage(err))
		return err
	}

	records, stats, err := cleaner.Clean(deps.Ctx, raws)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ramendex.ErrorMessage(err))
		return err
	}

	if err := deps.Store.WriteRecords(c.Output, records); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ramendex.ErrorMessage(err))
		return err
	}
	if c.XLSX != "" {
		if err := xlsx.WriteRecords(c.XLSX, records); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", ramendex.ErrorMessage(err))
			return err
		}
	}

	printStats(deps.Stdout, stats)
	fmt.Fprintf(deps.Stdout, "Wrote %d records to %s\n", len(records), c.Output)
	return nil
}

func printStats(w io.Writer, s ramendex.Stats) {
	fmt.Fprintf(w, "Input: %d raw records\n", s.Total)
	fmt.Fprintf(w, "Records: %d produced, %d kept, %d removed (%d invalid, %d duplicates)\n",
		s.Produced, s.Kept, s.Removed(), s.Invalid, s.Duplicates)
	fmt.Fprintf(w, "Fixed: %d titles, %d contents, %d encodings\n",
		s.TitleCleaned, s.ContentCleaned, s.EncodingRepaired)
	fmt.Fprintf(w, "Split: %d menu items, %d stores (%d structural mismatches)\n",
		s.SplitMenuItems, s.SegmentedStores, s.StructuralMismatches)
	if s.NonFoodOverrides > 0 || s.Downgraded > 0 {
		fmt.Fprintf(w, "Reclassified: %d non-food, %d downgraded\n", s.NonFoodOverrides, s.Downgraded)
	}
}
