package rorskin

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// tokenType represents a type of a token.
type tokenType int

// token types.
const (
	tokEOF     tokenType = iota // End of file
	tokWord                     // Bare word
	tokString                   // Quoted string
	tokLBrace                   // Left brace
	tokRBrace                   // Right brace
	tokNewline                  // End of line
)

// token represents a token in a skin definition.
type token struct {
	Lit  string    // Literal value of the token
	Type tokenType // Type of the token
	Line int       // Line number of the token
	Col  int       // Column number of the token
}

// lexer splits a skin definition into line-aware tokens.
type lexer struct {
	r   *bufio.Reader // Reader for the input
	pos position      // Position of the current character
	ch  rune          // Current character
	opt ParseOptions  // Options for the lexer
	eof bool          // End of file
}

// position represents a position in the input.
type position struct {
	line int // Line number
	col  int // Column number
}

// newLexer creates a new lexer.
func newLexer(r io.Reader, opt ParseOptions) *lexer {
	l := &lexer{r: bufio.NewReader(r), opt: opt, pos: position{line: 1, col: 0}}
	l.read()
	if l.ch == 0xFEFF {
		// Skip UTF-8 BOM if present.
		l.read()
	}

	return l
}

// next returns the next token.
func (l *lexer) next() (token, error) {
	l.skipBlank()
	if l.eof {
		return token{Type: tokEOF, Line: l.pos.line, Col: l.pos.col}, nil
	}

	startLine, startCol := l.pos.line, l.pos.col

	switch l.ch {
	case '\n':
		l.read()
		return token{Type: tokNewline, Lit: "\n", Line: startLine, Col: startCol}, nil
	case '{':
		l.read()
		return token{Type: tokLBrace, Lit: "{", Line: startLine, Col: startCol}, nil
	case '}':
		l.read()
		return token{Type: tokRBrace, Lit: "}", Line: startLine, Col: startCol}, nil
	case '"':
		lit, err := l.readString()
		return token{Type: tokString, Lit: lit, Line: startLine, Col: startCol}, err
	default:
		if !isWordPart(l.ch) {
			return token{}, l.errorf("unexpected character %q", l.ch)
		}

		return token{Type: tokWord, Lit: l.readWord(), Line: startLine, Col: startCol}, nil
	}
}

// read reads the next character.
func (l *lexer) read() {
	ch, _, err := l.r.ReadRune()
	if err != nil {
		l.eof = true
		l.ch = 0
		return
	}

	// Position tracks the character just read; a newline belongs to the line it ends.
	if l.ch == '\n' {
		l.pos.line++
		l.pos.col = 1
	} else {
		l.pos.col++
	}

	l.ch = ch
}

// peek returns the next character without consuming it.
func (l *lexer) peek() rune {
	ch, _, err := l.r.ReadRune()
	if err != nil {
		return 0
	}

	_ = l.r.UnreadRune()
	return ch
}

// skipBlank skips spaces, carriage returns and comments but stops at newlines.
func (l *lexer) skipBlank() {
	for !l.eof {
		if l.ch != '\n' && unicode.IsSpace(l.ch) {
			l.read()
			continue
		}

		if !l.opt.DisableComments && l.ch == '/' && l.peek() == '/' {
			for l.ch != '\n' && !l.eof {
				l.read()
			}
			continue
		}

		return
	}
}

// readWord reads a bare word.
func (l *lexer) readWord() string {
	var b strings.Builder
	for !l.eof && isWordPart(l.ch) {
		b.WriteRune(l.ch)
		l.read()
	}

	return b.String()
}

// readString reads a double-quoted string on a single line.
func (l *lexer) readString() (string, error) {
	l.read() // consume opening quote
	var b strings.Builder
	for {
		if l.eof || l.ch == '\n' {
			return "", l.errorf("unterminated string")
		}

		if l.ch == '"' {
			l.read()
			break
		}

		if l.ch == '\\' {
			switch l.peek() {
			case '\\', '"':
				l.read()
				b.WriteRune(l.ch)
				l.read()
				continue
			case 'n':
				l.read()
				l.read()
				b.WriteRune('\n')
				continue
			case 'r':
				l.read()
				l.read()
				b.WriteRune('\r')
				continue
			}
		}
		b.WriteRune(l.ch)
		l.read()
	}

	return b.String(), nil
}

// errorf formats an error message and returns an error.
func (l *lexer) errorf(format string, args ...any) error {
	return fmt.Errorf("%w at %d:%d: %s", ErrLex, l.pos.line, l.pos.col, fmt.Sprintf(format, args...))
}

// isWordPart checks if a character can be part of a bare word.
func isWordPart(r rune) bool {
	if unicode.IsSpace(r) || unicode.IsControl(r) {
		return false
	}

	return r != '{' && r != '}' && r != '"'
}
