package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/ramendex"
	"github.com/fwojciec/ramendex/fs"
	"github.com/fwojciec/ramendex/gemini"
	"github.com/fwojciec/ramendex/goquery"
	"github.com/fwojciec/ramendex/htmltomarkdown"
	"github.com/fwojciec/ramendex/ingest"
	"github.com/fwojciec/ramendex/meilisearch"
	"github.com/fwojciec/ramendex/readability"
	rslog "github.com/fwojciec/ramendex/slog"
	"github.com/fwojciec/ramendex/sqlite"
	"github.com/fwojciec/ramendex/trafilatura"
	"github.com/joho/godotenv"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// Meilisearch connection, used when a command selects --meili.
	MeiliURL    string
	MeiliAPIKey string

	// GeminiAPIKey authenticates the embed command.
	GeminiAPIKey string

	// SQLite database used by the local index.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults read from the
// environment.
func NewMain() *Main {
	return &Main{
		DBPath:       defaultDBPath(),
		MeiliURL:     envOr("MEILI_URL", defaultMeiliURL),
		MeiliAPIKey:  os.Getenv("MEILI_API_KEY"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Store:  fs.NewRecordStore(),
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("ramendex"),
		kong.Description("Turn scraped restaurant pages into clean, searchable records"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'ramendex --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Wire command-specific dependencies based on command
	switch cmd := strings.Fields(kongCtx.Command())[0]; cmd {
	case "extract":
		deps.Parsers = newParserRegistry(deps.Logger)

	case "index", "search":
		meili := cli.Index.Meili
		if cmd == "search" {
			meili = cli.Search.Meili
		}
		if err := m.wireIndex(deps, meili); err != nil {
			return err
		}
		defer m.Close()

	case "embed":
		if m.GeminiAPIKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  m.GeminiAPIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		deps.Embedder = rslog.NewLoggingEmbedder(gemini.NewEmbedder(client, cli.Embed.Model), deps.Logger)
	}

	return kongCtx.Run(deps)
}

// wireIndex connects the index and searcher to Meilisearch or the local
// SQLite database.
func (m *Main) wireIndex(deps *Dependencies, meili bool) error {
	if meili {
		index := meilisearch.NewIndex(m.MeiliURL, m.MeiliAPIKey, meilisearch.DefaultIndexUID)
		deps.Indexer = rslog.NewLoggingIndexer(index, deps.Logger)
		deps.Searcher = index
		return nil
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(deps.Stderr, "Hint: Set RAMENDEX_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	index := sqlite.NewRecordIndex(m.DB)
	deps.Indexer = rslog.NewLoggingIndexer(index, deps.Logger)
	deps.Searcher = index
	return nil
}

// newParserRegistry builds the page parsers. Brand pages go through
// trafilatura, then readability, then html-to-markdown.
func newParserRegistry(logger *slog.Logger) ramendex.PageParserRegistry {
	extractor := ingest.ExtractorChain{trafilatura.NewExtractor(), readability.NewExtractor()}
	article := goquery.NewArticleParser(extractor, htmltomarkdown.NewConverter())
	return rslog.NewLoggingRegistry(goquery.NewDefaultRegistry(article), goquery.NewDetector(), logger)
}

const defaultMeiliURL = "http://localhost:7700"

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func defaultDBPath() string {
	if path := os.Getenv("RAMENDEX_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "ramendex.db"
	}
	dir := filepath.Join(home, ".ramendex")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "ramendex.db")
}
