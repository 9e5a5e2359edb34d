package commands

import (
	"github.com/lox/qif"
)

// CommonConfig contains configuration common to all commands
type CommonConfig struct {
	// LogLevel is the logging level to use
	LogLevel string `help:"Log level (debug, info, warn, error)" default:"warn" enum:"debug,info,warn,error"`
}

// DateConfig selects how QIF dates are read
type DateConfig struct {
	// DateFormat forces the date layout; empty means infer from the file
	DateFormat string `help:"QIF date layout, inferred from the file when empty" default:"" enum:",dd/mm/yyyy,mm/dd/yyyy,dd/mm/yy,mm/dd/yy"`
}

// ReaderOptions converts the date flag into qif.Reader options, appended to
// any options passed through.
func (c DateConfig) ReaderOptions(opts ...qif.Option) ([]qif.Option, error) {
	if c.DateFormat == "" {
		return opts, nil
	}
	format, err := qif.ParseDateFormat(c.DateFormat)
	if err != nil {
		return nil, err
	}
	return append(opts, qif.WithDateFormat(format)), nil
}
