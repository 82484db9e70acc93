package main

import (
	"fmt"

	"github.com/fwojciec/ramendex"
)

// Run executes the embed command.
func (c *EmbedCmd) Run(deps *Dependencies) error {
	records, err := deps.Store.ReadRecords(c.Input)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ramendex.ErrorMessage(err))
		return err
	}

	vectors := make(map[string][]float32, len(records))
	var skipped int
	for _, r := range records {
		text := ramendex.EmbeddingText(r)
		if text == "" {
			skipped++
			continue
		}
		vec, err := deps.Embedder.Embed(deps.Ctx, text)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: embed %s: %s\n", r.URL, ramendex.ErrorMessage(err))
			return err
		}
		if vec == nil {
			skipped++
			continue
		}
		vectors[documentID(r)] = vec
	}

	if err := deps.Store.WriteEmbeddings(c.Output, vectors); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ramendex.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Embedded %d records to %s\n", len(vectors), c.Output)
	if skipped > 0 {
		fmt.Fprintf(deps.Stdout, "  %d records skipped\n", skipped)
	}
	return nil
}
