package qif

import (
	"io"
	"strings"
	"time"
)

// FieldRecord holds the tagged fields of one QIF record, keyed by the tag
// character. A tag that appears on several lines accumulates its values
// joined by newlines, which is how QIF carries multi-line memo and address
// fields.
type FieldRecord struct {
	fields map[byte]string
	date   time.Time
}

func newFieldRecord() *FieldRecord {
	return &FieldRecord{fields: make(map[byte]string)}
}

// Field returns the accumulated value for tag, or "" if the record has no
// such field.
func (r *FieldRecord) Field(tag byte) string {
	return r.fields[tag]
}

// Date returns the parsed value of the D field, zero if the record has
// none.
func (r *FieldRecord) Date() time.Time {
	return r.date
}

// Len returns the number of distinct tags in the record.
func (r *FieldRecord) Len() int {
	return len(r.fields)
}

func (r *FieldRecord) add(tag byte, value string) {
	if existing, ok := r.fields[tag]; ok {
		r.fields[tag] = existing + "\n" + value
		return
	}
	r.fields[tag] = value
}

// amountTags carry numeric amounts (transaction amount, its high precision
// variant, split amount) and get the first thousands separator stripped.
var amountTags = map[byte]bool{'T': true, 'U': true, '$': true}

// readRecord scans one terminator-delimited record from src. A nil record
// with a nil error means the source is cleanly exhausted; a partial record
// cut off by end of input is discarded. Any other fault, including a date
// the format cannot parse, aborts the scan with a *TruncatedReadError.
func readRecord(src *lineSource, format DateFormat) (*FieldRecord, error) {
	record := newFieldRecord()
	for {
		line, err := src.ReadLine()
		if err == io.EOF {
			return nil, nil
		}
		if err != nil {
			return nil, &TruncatedReadError{Line: src.Pos(), Err: err}
		}
		if strings.HasPrefix(line, "^") {
			return record, nil
		}
		if line == "" {
			continue
		}
		tag, value := line[0], line[1:]
		if amountTags[tag] {
			value = strings.Replace(value, ",", "", 1)
		}
		record.add(tag, value)
		if tag == 'D' {
			date, err := format.Parse(record.fields['D'])
			if err != nil {
				return nil, &TruncatedReadError{Line: src.Pos(), Err: err}
			}
			record.date = date
		}
	}
}
