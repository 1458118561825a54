package functional

import (
	"fmt"
	"strings"
)

// cursor provides single-pass character access over a document with
// line/column tracking, whitespace and comment skipping, and the token
// readers the grammar needs. All side effects are confined to cursor
// state.
type cursor struct {
	input string
	pos   int
	line  int // 1-based
	col   int // 1-based
}

// mark is a saved cursor position for lookahead with rollback.
type mark struct {
	pos, line, col int
}

func newCursor(input string) *cursor {
	return &cursor{input: input, line: 1, col: 1}
}

func (c *cursor) save() mark          { return mark{c.pos, c.line, c.col} }
func (c *cursor) restore(m mark)      { c.pos, c.line, c.col = m.pos, m.line, m.col }
func (c *cursor) eof() bool           { return c.pos >= len(c.input) }
func (c *cursor) errf(format string, args ...any) *ParseError {
	return &ParseError{Line: c.line, Column: c.col, Message: fmt.Sprintf(format, args...)}
}

// peek returns the current byte without consuming it, or 0 at EOF.
func (c *cursor) peek() byte {
	if c.eof() {
		return 0
	}
	return c.input[c.pos]
}

// next consumes and returns the current byte, maintaining the line and
// column counters. Must not be called at EOF.
func (c *cursor) next() byte {
	b := c.input[c.pos]
	c.pos++
	if b == '\n' {
		c.line++
		c.col = 1
	} else {
		c.col++
	}
	return b
}

// skipSpace consumes whitespace and # comments (which run to end of
// line).
func (c *cursor) skipSpace() {
	for !c.eof() {
		switch c.peek() {
		case ' ', '\t', '\r', '\n':
			c.next()
		case '#':
			for !c.eof() && c.peek() != '\n' {
				c.next()
			}
		default:
			return
		}
	}
}

// isDelimiter reports whether b ends a bare token. Colon is not a
// delimiter: abbreviated IRIs carry their prefix colon inside the token.
func isDelimiter(b byte) bool {
	switch b {
	case '(', ')', '<', '>', '"', '=', '@', '^', '#', ' ', '\t', '\r', '\n':
		return true
	}
	return false
}

// readToken skips leading space and reads a run of non-delimiter
// characters. Returns the empty string when the next character is a
// delimiter or the input is exhausted.
func (c *cursor) readToken() string {
	c.skipSpace()
	start := c.pos
	for !c.eof() && !isDelimiter(c.peek()) {
		c.next()
	}
	return c.input[start:c.pos]
}

// match consumes keyword s if it appears at the cursor after leading
// space and ends on a token boundary. On mismatch the cursor is rolled
// back and false is returned.
func (c *cursor) match(s string) bool {
	m := c.save()
	c.skipSpace()
	rest := c.input[c.pos:]
	if !strings.HasPrefix(rest, s) || (len(rest) > len(s) && !isDelimiter(rest[len(s)])) {
		c.restore(m)
		return false
	}
	for i := 0; i < len(s); i++ {
		c.next()
	}
	return true
}

// expect consumes the single character b after leading space, failing
// with a positioned error when something else is found.
func (c *cursor) expect(b byte) error {
	c.skipSpace()
	if c.eof() {
		return c.errf("unexpected end of input, expected %q", string(b))
	}
	if c.peek() != b {
		return c.errf("expected %q, found %q", string(b), string(c.peek()))
	}
	c.next()
	return nil
}

// readQuoted reads a double-quoted string starting at the opening quote.
// Escapes \n \t \r \" and \\ are interpreted; any other escape is a
// lexical error.
func (c *cursor) readQuoted() (string, error) {
	if err := c.expect('"'); err != nil {
		return "", err
	}
	var b strings.Builder
	for {
		if c.eof() {
			return "", c.errf("unterminated string literal")
		}
		ch := c.next()
		switch ch {
		case '"':
			return b.String(), nil
		case '\\':
			if c.eof() {
				return "", c.errf("unterminated string literal")
			}
			esc := c.next()
			switch esc {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			case '"':
				b.WriteByte('"')
			case '\\':
				b.WriteByte('\\')
			default:
				return "", c.errf("invalid escape sequence %q", "\\"+string(esc))
			}
		default:
			b.WriteByte(ch)
		}
	}
}

// readIRIRef reads an angle-bracketed IRI starting at '<'. The text
// between the brackets is taken verbatim.
func (c *cursor) readIRIRef() (string, error) {
	if err := c.expect('<'); err != nil {
		return "", err
	}
	start := c.pos
	for !c.eof() && c.peek() != '>' {
		c.next()
	}
	if c.eof() {
		return "", c.errf("unterminated IRI, expected %q", ">")
	}
	iri := c.input[start:c.pos]
	c.next() // consume '>'
	return iri, nil
}

// readLangTag reads a language tag: letters, digits, and hyphens.
func (c *cursor) readLangTag() (string, error) {
	start := c.pos
	for !c.eof() {
		b := c.peek()
		if b == '-' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' {
			c.next()
			continue
		}
		break
	}
	if c.pos == start {
		return "", c.errf("expected language tag after %q", "@")
	}
	return c.input[start:c.pos], nil
}
