// SPDX-License-Identifier: MPL-2.0

// Package shlex splits raw alias expansions into argv-style tokens.
//
// The dialect is a deliberately small subset of POSIX shell word splitting:
// fields are whitespace-delimited, single quotes are fully literal, double
// quotes are literal except for \" and \\, and a backslash outside quotes
// escapes the next character. There is no variable expansion, globbing, or
// command substitution; an expansion is data, never something to evaluate.
package shlex

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrUnterminatedQuote is the sentinel error wrapped by UnterminatedQuoteError.
var ErrUnterminatedQuote = errors.New("unterminated quote")

// UnterminatedQuoteError is returned when a quote is opened and never closed
// before the end of the input. It wraps ErrUnterminatedQuote for errors.Is().
type UnterminatedQuoteError struct {
	// Quote is the offending quote rune, '\'' or '"'.
	Quote rune
	// Offset is the rune offset where the quote was opened.
	Offset int
}

// Error implements the error interface.
func (e *UnterminatedQuoteError) Error() string {
	return fmt.Sprintf("unterminated %c quote opened at offset %d", e.Quote, e.Offset)
}

// Unwrap returns the sentinel for use with errors.Is().
func (e *UnterminatedQuoteError) Unwrap() error {
	return ErrUnterminatedQuote
}

// lexState tracks which quoting context the scanner is in.
type lexState int

const (
	stateBare lexState = iota
	stateSingle
	stateDouble
)

// Split tokenizes raw into an ordered argv slice. An empty or whitespace-only
// input yields a nil slice. Split is a pure function.
func Split(raw string) ([]string, error) {
	var (
		tokens    []string
		field     strings.Builder
		inField   bool
		state     = stateBare
		quotePos  int
		quoteRune rune
	)

	flush := func() {
		if inField {
			tokens = append(tokens, field.String())
			field.Reset()
			inField = false
		}
	}

	runes := []rune(raw)
	for i := 0; i < len(runes); i++ {
		c := runes[i]

		switch state {
		case stateSingle:
			if c == '\'' {
				state = stateBare
				continue
			}
			field.WriteRune(c)

		case stateDouble:
			if c == '"' {
				state = stateBare
				continue
			}
			// Only \" and \\ are escapes inside double quotes; any other
			// backslash is a literal backslash.
			if c == '\\' && i+1 < len(runes) && (runes[i+1] == '"' || runes[i+1] == '\\') {
				i++
				field.WriteRune(runes[i])
				continue
			}
			field.WriteRune(c)

		default: // stateBare
			switch {
			case unicode.IsSpace(c):
				flush()
			case c == '\'':
				state = stateSingle
				quoteRune, quotePos = c, i
				inField = true
			case c == '"':
				state = stateDouble
				quoteRune, quotePos = c, i
				inField = true
			case c == '\\':
				if i+1 < len(runes) {
					i++
					field.WriteRune(runes[i])
				}
				// A trailing lone backslash escapes nothing and is dropped.
				inField = true
			default:
				field.WriteRune(c)
				inField = true
			}
		}
	}

	if state != stateBare {
		return nil, &UnterminatedQuoteError{Quote: quoteRune, Offset: quotePos}
	}

	flush()
	return tokens, nil
}
