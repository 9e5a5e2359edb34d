// Package qif reads transactions from QIF (Quicken Interchange Format)
// exports, the tagged line-oriented format produced by many banks.
//
// A QIF file opens with a header block declaring the account type
// (for example "!Type:Bank") followed by a sequence of records. Each record
// is a run of tagged lines, one field per line, closed by a line holding
// only "^". The leading character of a data line identifies the field:
// D is the date, T the amount, P the payee and so on.
//
// Dates in QIF files are ambiguous: nothing in the format says whether
// 03/04/2023 is the 3rd of April or the 4th of March. By default a Reader
// samples the file's own date lines to infer the layout before parsing;
// callers that know the layout can force it with WithDateFormat.
package qif

import "github.com/charmbracelet/log"

type readerConfig struct {
	format *DateFormat
	logger *log.Logger
}

// Option configures a Reader.
type Option func(*readerConfig)

// WithDateFormat forces the date layout instead of inferring it from the
// file's own date lines.
func WithDateFormat(format DateFormat) Option {
	return func(cfg *readerConfig) {
		f := format
		cfg.format = &f
	}
}

// WithLogger sets the logger used for scan diagnostics. By default all
// output is discarded.
func WithLogger(logger *log.Logger) Option {
	return func(cfg *readerConfig) {
		cfg.logger = logger
	}
}
