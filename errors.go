package qif

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// UnknownAccountTypeError is returned by NewReader when the leading header
// line does not declare a supported account type.
type UnknownAccountTypeError struct {
	Header    string
	Supported []string
}

func (e *UnknownAccountTypeError) Error() string {
	return fmt.Sprintf("qif: unknown account type %q (supported: %s)",
		e.Header, strings.Join(e.Supported, ", "))
}

// TruncatedReadError reports a fault that interrupted record scanning: a
// read error on the source, or a date field the active format cannot parse.
// Iteration stops at the failing record, exactly as it does at a cleanly
// exhausted source; Reader.Err exposes the fault so callers can tell the
// two apart.
type TruncatedReadError struct {
	Line int
	Err  error
}

func (e *TruncatedReadError) Error() string {
	return fmt.Sprintf("qif: record scan aborted at line %d: %v", e.Line, e.Err)
}

func (e *TruncatedReadError) Unwrap() error {
	return e.Err
}

// accountTypes maps header sentinels to the account type they declare.
// Matching is case-insensitive.
var accountTypes = map[string]string{
	"!Type:Bank":  "Bank",
	"!Type:Cash":  "Cash",
	"!Type:CCard": "CCard",
	"!Type:Oth A": "Oth A",
	"!Type:Oth L": "Oth L",
}

func lookupAccountType(header string) (string, bool) {
	for sentinel, name := range accountTypes {
		if strings.EqualFold(sentinel, header) {
			return name, true
		}
	}
	return "", false
}

func supportedAccountTypes() []string {
	sentinels := make([]string, 0, len(accountTypes))
	for sentinel := range accountTypes {
		sentinels = append(sentinels, sentinel)
	}
	slices.Sort(sentinels)
	return sentinels
}
