package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/ramendex"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Store    ramendex.RecordStore
	Parsers  ramendex.PageParserRegistry
	Indexer  ramendex.Indexer
	Searcher ramendex.RecordSearcher
	Embedder ramendex.Embedder
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log debug output"`

	Extract ExtractCmd `cmd:"" help:"Parse saved pages into raw records"`
	Clean   CleanCmd   `cmd:"" help:"Clean, classify and deduplicate raw records"`
	Index   IndexCmd   `cmd:"" help:"Index cleaned records"`
	Search  SearchCmd  `cmd:"" help:"Search indexed records"`
	Embed   EmbedCmd   `cmd:"" help:"Embed cleaned records"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Dir         string `arg:"" help:"Directory of saved HTML pages"`
	BaseURL     string `name:"base-url" required:"" help:"URL the directory was saved from"`
	Output      string `short:"o" default:"raw.json" help:"Raw record output file"`
	Concurrency int    `short:"c" default:"10" help:"Concurrent page limit"`
}

// CleanCmd is the "clean" subcommand.
type CleanCmd struct {
	Input       string `arg:"" help:"Raw record file"`
	Output      string `short:"o" default:"cleaned.json" help:"Cleaned record output file"`
	Vocab       string `help:"YAML vocabulary overriding the built-in tables"`
	XLSX        string `name:"xlsx" help:"Also write a review spreadsheet"`
	Concurrency int    `short:"c" default:"0" help:"Concurrent record limit (0 = number of CPUs)"`
}

// IndexCmd is the "index" subcommand.
type IndexCmd struct {
	Input       string `arg:"" help:"Cleaned record file"`
	Meili       bool   `help:"Index into Meilisearch instead of the local database"`
	Incremental bool   `help:"Add to the index instead of replacing it"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query    string `arg:"" optional:"" help:"Full-text query"`
	Section  string `help:"Only records of this section"`
	Category string `help:"Only menu records of this category"`
	Limit    int    `short:"n" default:"10" help:"Maximum number of results"`
	Meili    bool   `help:"Search Meilisearch instead of the local database"`
}

// EmbedCmd is the "embed" subcommand.
type EmbedCmd struct {
	Input  string `arg:"" help:"Cleaned record file"`
	Output string `short:"o" default:"embeddings.json" help:"Embedding output file"`
	Model  string `help:"Embedding model" default:"gemini-embedding-001"`
}
