// Package slog provides logging decorators for ramendex collaborators.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/ramendex"
)

// Ensure LoggingRegistry implements ramendex.PageParserRegistry.
var _ ramendex.PageParserRegistry = (*LoggingRegistry)(nil)

// LoggingRegistry wraps a PageParserRegistry with logging for page detection.
// Parsers it returns are wrapped in a LoggingParser.
type LoggingRegistry struct {
	next     ramendex.PageParserRegistry
	detector ramendex.PageDetector
	logger   *slog.Logger
}

// NewLoggingRegistry creates a new LoggingRegistry.
func NewLoggingRegistry(next ramendex.PageParserRegistry, detector ramendex.PageDetector, logger *slog.Logger) *LoggingRegistry {
	return &LoggingRegistry{next: next, detector: detector, logger: logger}
}

// Get delegates to the wrapped registry.
func (r *LoggingRegistry) Get(kind ramendex.PageKind) ramendex.PageParser {
	return r.wrap(r.next.Get(kind))
}

// GetForPage detects the page kind, logs it, and returns the appropriate parser.
func (r *LoggingRegistry) GetForPage(html string, pageURL string) ramendex.PageParser {
	begin := time.Now()
	kind := r.detector.Detect(html, pageURL)
	kindName := string(kind)
	if kind == ramendex.PageUnknown {
		kindName = "(unknown)"
	}
	r.logger.Debug("page detection",
		"url", pageURL,
		"kind", kindName,
		"duration", time.Since(begin),
	)
	return r.wrap(r.next.GetForPage(html, pageURL))
}

// Register delegates to the wrapped registry.
func (r *LoggingRegistry) Register(kind ramendex.PageKind, parser ramendex.PageParser) {
	r.next.Register(kind, parser)
}

// List delegates to the wrapped registry.
func (r *LoggingRegistry) List() []ramendex.PageKind {
	return r.next.List()
}

func (r *LoggingRegistry) wrap(p ramendex.PageParser) ramendex.PageParser {
	if p == nil {
		return nil
	}
	return NewLoggingParser(p, r.logger)
}
