// SPDX-License-Identifier: MIT

package dispatch

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// scanner tokenizes the request stream and tracks the current line.
type scanner struct {
	r       *bufio.Reader
	line    int
	cmdLine int // line of the last command returned
}

// errWord marks a token that starts with a letter, such as a command name
// read where a matrix value belongs.
var errWord = errors.New("dispatch: word token")

func newScanner(r io.Reader) *scanner {
	return &scanner{r: bufio.NewReader(r), line: 1}
}

func isDelim(b byte) bool {
	switch b {
	case ',', ' ', '\t', '\r', '\n':
		return true
	}

	return false
}

func isLetter(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

func (s *scanner) readByte() (byte, error) {
	b, err := s.r.ReadByte()
	if err == nil && b == '\n' {
		s.line++
	}

	return b, err
}

// skipDelims consumes delimiters up to the next token byte.
func (s *scanner) skipDelims() error {
	for {
		b, err := s.readByte()
		if err != nil {
			return err
		}
		if !isDelim(b) {
			return s.r.UnreadByte()
		}
	}
}

// number reads the next non-negative integer. It returns io.EOF when the
// stream ends before any token.
func (s *scanner) number() (uint64, error) {
	if err := s.skipDelims(); err != nil {
		return 0, err
	}

	var tok strings.Builder
	for {
		b, err := s.readByte()
		if err == io.EOF || (err == nil && isDelim(b)) {
			break
		}
		if err != nil {
			return 0, err
		}
		tok.WriteByte(b)
	}

	text := tok.String()
	if isLetter(text[0]) {
		return 0, fmt.Errorf("%w: %w: %q", ErrMalformedNumber, errWord, text)
	}
	v, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedNumber, text)
	}

	return v, nil
}

// command reads the next non-blank line, trimmed. It returns io.EOF when
// only delimiters remain.
func (s *scanner) command() (string, error) {
	if err := s.skipDelims(); err != nil {
		return "", err
	}
	s.cmdLine = s.line

	text, err := s.r.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	if strings.HasSuffix(text, "\n") {
		s.line++
	}

	return strings.TrimSpace(text), nil
}
