package qif

import (
	"bufio"
	"io"
	"strings"
)

// lineSource reads lines from an io.Reader while keeping every line it has
// seen in a replay buffer, so the cursor can be rewound or repositioned
// without re-reading the underlying stream. The Reader needs both: format
// inference reads ahead and rewinds, and the header parser seeks back one
// line when it overshoots into the first record.
type lineSource struct {
	br     *bufio.Reader
	closer io.Closer
	lines  []string
	pos    int
	eof    bool
	closed bool
}

func newLineSource(r io.Reader) *lineSource {
	s := &lineSource{br: bufio.NewReader(r)}
	if c, ok := r.(io.Closer); ok {
		s.closer = c
	}
	return s
}

// ReadLine returns the next line with its line ending removed. It returns
// io.EOF once the source is cleanly exhausted; any other error is a read
// fault. Lines already in the replay buffer are served from it.
func (s *lineSource) ReadLine() (string, error) {
	if s.pos < len(s.lines) {
		line := s.lines[s.pos]
		s.pos++
		return line, nil
	}
	if s.eof {
		return "", io.EOF
	}
	line, err := s.br.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	if err == io.EOF {
		s.eof = true
		s.close()
		if line == "" {
			return "", io.EOF
		}
	}
	line = strings.TrimRight(line, "\r\n")
	s.lines = append(s.lines, line)
	s.pos = len(s.lines)
	return line, nil
}

// Rewind repositions the cursor at the first line.
func (s *lineSource) Rewind() {
	s.pos = 0
}

// SeekLine repositions the cursor at line n. Only lines that have already
// been read can be sought.
func (s *lineSource) SeekLine(n int) {
	if n < 0 {
		n = 0
	}
	if n > len(s.lines) {
		n = len(s.lines)
	}
	s.pos = n
}

// Pos returns the index of the line the next ReadLine call will return.
func (s *lineSource) Pos() int {
	return s.pos
}

// close releases the underlying reader once the byte stream is exhausted.
// The replay buffer stays valid afterwards.
func (s *lineSource) close() {
	if s.closed {
		return
	}
	s.closed = true
	if s.closer != nil {
		s.closer.Close()
	}
}
