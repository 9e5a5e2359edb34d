package qif

import (
	"strconv"
	"strings"
)

// guessDateFormat samples date lines from the start of src to infer whether
// days or months come first. A line where both numbers could be a month is
// ambiguous and skipped; the first conclusive line decides, and its year
// width is kept. ok is false when the source runs out before any line
// settles the question - a file of ambiguous dates yields no guess rather
// than a wrong one. The source is rewound to the start either way.
func guessDateFormat(src *lineSource) (format DateFormat, ok bool) {
	defer src.Rewind()
	for {
		line, err := src.ReadLine()
		if err != nil {
			return DateFormat{}, false
		}
		if len(line) == 0 || line[0] != 'D' {
			continue
		}
		m := dateRE.FindStringSubmatch(strings.TrimSpace(line[1:]))
		if m == nil {
			continue
		}
		first, _ := strconv.Atoi(m[1])
		second, _ := strconv.Atoi(m[2])
		yearDigits := 4
		if len(m[3]) == 2 {
			yearDigits = 2
		}
		switch {
		case couldBeMonth(first) && couldBeMonth(second):
			continue
		case couldBeMonth(first):
			return DateFormat{Order: MonthDay, YearDigits: yearDigits}, true
		default:
			return DateFormat{Order: DayMonth, YearDigits: yearDigits}, true
		}
	}
}

func couldBeMonth(n int) bool {
	return n >= 1 && n <= 12
}
