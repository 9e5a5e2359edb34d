package qif

import (
	"io"

	"github.com/charmbracelet/log"
)

// Reader parses a QIF export lazily: records are scanned from the source
// one at a time as iteration advances, and every scanned record is cached
// by index so a second pass never touches the source again.
//
// A Reader owns its source for its lifetime and is not safe for concurrent
// use: the iteration cursor and the cache are shared state, and two
// interleaved callers would race on the source position. Serialize access
// if a Reader must be shared.
type Reader struct {
	src    *lineSource
	format DateFormat
	header accountHeader
	logger *log.Logger

	cache  []*Transaction
	cursor int
	done   bool
	err    error
}

// NewReader constructs a Reader over r. Unless a date format is forced with
// WithDateFormat, the file's date lines are sampled to infer one, falling
// back to DefaultDateFormat when the sample is inconclusive. The header is
// read eagerly: an unsupported account type fails construction with a
// *UnknownAccountTypeError.
//
// If r is an io.Closer it is closed once the source is exhausted.
func NewReader(r io.Reader, opts ...Option) (*Reader, error) {
	cfg := readerConfig{logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(&cfg)
	}

	src := newLineSource(r)
	format := DefaultDateFormat
	if cfg.format != nil {
		format = *cfg.format
	} else if guessed, ok := guessDateFormat(src); ok {
		format = guessed
	}

	header, err := parseHeader(src)
	if err != nil {
		return nil, err
	}

	cfg.logger.Debug("qif reader ready", "type", header.name, "format", format.String())
	return &Reader{
		src:    src,
		format: format,
		header: header,
		logger: cfg.logger,
		cursor: -1,
	}, nil
}

// Type returns the declared account type, e.g. "Bank" or "CCard".
func (r *Reader) Type() string {
	return r.header.name
}

// Options returns the header option lines that followed the account type
// declaration, in file order.
func (r *Reader) Options() []string {
	return r.header.options
}

// DateFormat returns the format in effect, whether forced or inferred.
func (r *Reader) DateFormat() DateFormat {
	return r.format
}

// Reset moves the cursor back before the first transaction. Cached entries
// are kept; a fresh pass replays them without re-reading the source.
func (r *Reader) Reset() {
	r.cursor = -1
}

// Err reports the fault that stopped scanning early, if any. A cleanly
// exhausted source leaves Err nil.
func (r *Reader) Err() error {
	return r.err
}

// next advances the shared cursor one position. ok reports whether the
// position exists; tx is nil for records that did not decode into a
// transaction. Once a position is cached the scanner is never invoked for
// it again.
func (r *Reader) next() (tx *Transaction, ok bool) {
	r.cursor++
	if r.cursor < len(r.cache) {
		return r.cache[r.cursor], true
	}
	if r.done {
		return nil, false
	}
	record, err := readRecord(r.src, r.format)
	if err != nil {
		r.err = err
		r.done = true
		r.logger.Warn("qif scan stopped early", "error", err)
		return nil, false
	}
	if record == nil {
		r.done = true
		return nil, false
	}
	tx = transactionFromRecord(record)
	// nil still takes a slot so cache indexes stay aligned with the source.
	r.cache = append(r.cache, tx)
	return tx, true
}

// Each resets the cursor and calls visit for every transaction in source
// order. Records that produced no transaction are skipped without losing
// their cache position.
func (r *Reader) Each(visit func(*Transaction)) {
	r.Reset()
	for {
		tx, ok := r.next()
		if !ok {
			return
		}
		if tx != nil {
			visit(tx)
		}
	}
}

// All materializes every record and returns the transactions in source
// order. Calling it again returns an equal sequence without re-reading the
// source.
func (r *Reader) All() []*Transaction {
	r.materialize()
	out := make([]*Transaction, 0, len(r.cache))
	for _, tx := range r.cache {
		if tx != nil {
			out = append(out, tx)
		}
	}
	return out
}

// Count materializes every record and returns the number scanned, including
// records that produced no transaction.
func (r *Reader) Count() int {
	r.materialize()
	return len(r.cache)
}

func (r *Reader) materialize() {
	for !r.done {
		if _, ok := r.next(); !ok {
			return
		}
	}
}
