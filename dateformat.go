package qif

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateOrder is the order of the day and month components in a QIF date.
type DateOrder int

const (
	// DayMonth reads 03/04/2023 as the 3rd of April.
	DayMonth DateOrder = iota
	// MonthDay reads 03/04/2023 as the 4th of March.
	MonthDay
)

// DateFormat describes how the date fields of a file are laid out: which of
// the first two numbers is the day, and how many digits the year carries.
// A DateFormat is immutable once constructed; it is either supplied by the
// caller or inferred by the Reader.
type DateFormat struct {
	Order      DateOrder
	YearDigits int // 2 or 4
}

// DefaultDateFormat is used when no format is forced and inference is
// inconclusive.
var DefaultDateFormat = DateFormat{Order: DayMonth, YearDigits: 4}

// dateRE matches a QIF date value: two 1-2 digit numbers and a 2-4 digit
// year, separated by any single non-digit character.
var dateRE = regexp.MustCompile(`^(\d{1,2})\D(\d{1,2})\D(\d{2,4})$`)

// ParseDateFormat converts a layout string like "dd/mm/yyyy" or "mm/dd/yy"
// into a DateFormat.
func ParseDateFormat(layout string) (DateFormat, error) {
	switch strings.ToLower(layout) {
	case "dd/mm/yyyy":
		return DateFormat{Order: DayMonth, YearDigits: 4}, nil
	case "mm/dd/yyyy":
		return DateFormat{Order: MonthDay, YearDigits: 4}, nil
	case "dd/mm/yy":
		return DateFormat{Order: DayMonth, YearDigits: 2}, nil
	case "mm/dd/yy":
		return DateFormat{Order: MonthDay, YearDigits: 2}, nil
	}
	return DateFormat{}, fmt.Errorf("qif: unknown date format %q", layout)
}

// String returns the layout string, e.g. "dd/mm/yyyy".
func (f DateFormat) String() string {
	year := "yyyy"
	if f.YearDigits == 2 {
		year = "yy"
	}
	if f.Order == MonthDay {
		return "mm/dd/" + year
	}
	return "dd/mm/" + year
}

// Parse converts a raw QIF date value into a time.Time in UTC. The value
// must be two 1-2 digit numbers and a 2-4 digit year separated by single
// non-digit characters. Two-digit years use the same window as time.Parse:
// 69-99 land in the 1900s, 00-68 in the 2000s.
func (f DateFormat) Parse(raw string) (time.Time, error) {
	m := dateRE.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return time.Time{}, fmt.Errorf("qif: unrecognised date %q", raw)
	}
	first, _ := strconv.Atoi(m[1])
	second, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	if len(m[3]) == 2 {
		if year >= 69 {
			year += 1900
		} else {
			year += 2000
		}
	}
	day, month := first, second
	if f.Order == MonthDay {
		day, month = second, first
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("qif: date %q has no %s reading", raw, f)
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day {
		// time.Date normalizes overflow, e.g. 31/02 becomes 2-3 March.
		return time.Time{}, fmt.Errorf("qif: date %q has no %s reading", raw, f)
	}
	return t, nil
}
