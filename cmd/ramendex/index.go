package main

import (
	"fmt"

	"github.com/fwojciec/ramendex"
	"github.com/google/uuid"
)

// Run executes the index command.
func (c *IndexCmd) Run(deps *Dependencies) error {
	records, err := deps.Store.ReadRecords(c.Input)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ramendex.ErrorMessage(err))
		return err
	}

	docs := indexDocuments(records)
	if c.Incremental {
		err = deps.Indexer.Add(deps.Ctx, docs)
	} else {
		err = deps.Indexer.Replace(deps.Ctx, docs)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ramendex.ErrorMessage(err))
		return err
	}

	mode := "replaced"
	if c.Incremental {
		mode = "added"
	}
	fmt.Fprintf(deps.Stdout, "Indexed %d records (%s, %d batches)\n",
		len(docs), mode, len(ramendex.Batches(docs, ramendex.IndexBatchSize)))
	return nil
}

// documentID derives a stable id from the record's identity key, so
// re-indexing a record overwrites its previous document. Menu records read
// back without a menu_item add their title, since several items cleaned
// from one page share its URL.
func documentID(r *ramendex.Record) string {
	key := r.IdentityKey()
	if r.Section == ramendex.SectionMenu && r.MenuItem == "" {
		key += "\x1f" + r.Title
	}
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(key)).String()
}

func indexDocuments(records []*ramendex.Record) []*ramendex.IndexDocument {
	docs := make([]*ramendex.IndexDocument, 0, len(records))
	for _, r := range records {
		docs = append(docs, &ramendex.IndexDocument{ID: documentID(r), Record: *r})
	}
	return docs
}
