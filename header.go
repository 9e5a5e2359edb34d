package qif

import "strings"

// accountHeader is the decoded header block: the declared account type and
// any option lines that followed it, in file order.
type accountHeader struct {
	name    string
	options []string
}

// parseHeader consumes the leading "!" lines. The first must declare a
// supported account type; the rest are kept as option lines. The line that
// ends the block is either a record terminator, which is left consumed
// (there is no data before the next record starts), or the first data line,
// in which case the cursor is moved back one line so record scanning sees
// it.
func parseHeader(src *lineSource) (accountHeader, error) {
	var headers []string
	for {
		mark := src.Pos()
		line, err := src.ReadLine()
		if err != nil {
			break
		}
		if strings.HasPrefix(line, "!") {
			headers = append(headers, line)
			continue
		}
		if !strings.HasPrefix(line, "^") {
			src.SeekLine(mark)
		}
		break
	}
	if len(headers) == 0 {
		return accountHeader{}, &UnknownAccountTypeError{Supported: supportedAccountTypes()}
	}
	name, ok := lookupAccountType(headers[0])
	if !ok {
		return accountHeader{}, &UnknownAccountTypeError{
			Header:    headers[0],
			Supported: supportedAccountTypes(),
		}
	}
	return accountHeader{name: name, options: headers[1:]}, nil
}
