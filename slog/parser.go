package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/ramendex"
)

// Ensure LoggingParser implements ramendex.PageParser.
var _ ramendex.PageParser = (*LoggingParser)(nil)

// LoggingParser wraps a PageParser with debug logging.
type LoggingParser struct {
	next   ramendex.PageParser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next ramendex.PageParser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser and logs the operation.
func (p *LoggingParser) Parse(html string, pageURL string) (records []ramendex.RawRecord, err error) {
	defer func(begin time.Time) {
		p.logger.Debug("parse page",
			"url", pageURL,
			"parser", p.next.Name(),
			"bytes", len(html),
			"records", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Parse(html, pageURL)
}

// Name delegates to the wrapped parser.
func (p *LoggingParser) Name() string {
	return p.next.Name()
}
