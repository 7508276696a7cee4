package rorskin

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
)

// Directive keys understood by the parser.
const (
	keyName            = "name"
	keyDescription     = "description"
	keyAuthorName      = "author_name"
	keyAuthorID        = "author_id"
	keyGUID            = "guid"
	keyPreviewImage    = "preview_image"
	keyReplaceMaterial = "replace_material"
	keyReplaceTexture  = "replace_texture"
)

// Parse parses skin definitions from bytes.
func Parse(data []byte, opt *ParseOptions) ([]*Skin, error) {
	return Decode(bytes.NewReader(data), opt)
}

// Decode parses skin definitions from reader.
func Decode(r io.Reader, opt *ParseOptions) ([]*Skin, error) {
	popt := opt.normalize()
	br := bufio.NewReader(r)
	if isBinaryInput(br) {
		return nil, ErrBinaryInput
	}

	p := newParser(br, popt)
	return p.parseFile()
}

// DecodeFile parses skin definitions from a file.
func DecodeFile(path string, opt *ParseOptions) ([]*Skin, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	skins, err := Parse(b, opt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	Logger().Debug("skin file parsed", zap.String("path", path), zap.Int("skins", len(skins)))
	return skins, nil
}

// parser represents a parser for skin definitions.
type parser struct {
	l   *lexer       // Lexer for the input
	buf token        // Buffered token
	has bool         // Has buffered token
	opt ParseOptions // Options for the parser
}

// newParser creates a new parser.
func newParser(r io.Reader, opt ParseOptions) *parser {
	return &parser{l: newLexer(r, opt), opt: opt}
}

// next returns the next token.
func (p *parser) next() (token, error) {
	if p.has {
		p.has = false
		return p.buf, nil
	}

	return p.l.next()
}

// peek returns the next token without consuming it.
func (p *parser) peek() (token, error) {
	if p.has {
		return p.buf, nil
	}

	tok, err := p.l.next()
	if err != nil {
		return tok, err
	}

	p.buf = tok
	p.has = true
	return tok, nil
}

// parseFile parses every skin block in the input.
func (p *parser) parseFile() ([]*Skin, error) {
	var out []*Skin
	for {
		tok, err := p.skipNewlines()
		if err != nil {
			return nil, err
		}
		if tok.Type == tokEOF {
			break
		}

		s, err := p.parseSkin()
		if err != nil {
			return nil, err
		}

		out = append(out, s)
	}

	return out, nil
}

// parseSkin parses a header line followed by a braced block.
func (p *parser) parseSkin() (*Skin, error) {
	head, err := p.peek()
	if err != nil {
		return nil, err
	}

	words, err := p.parseValues()
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, p.errorf(head, "skin block without name")
	}

	// The opening brace may sit on the header line or on a following line.
	if _, err := p.skipNewlines(); err != nil {
		return nil, err
	}
	if _, err := p.expect(tokLBrace); err != nil {
		return nil, err
	}

	s := &Skin{Name: strings.Join(words, " ")}
	for {
		tok, err := p.skipNewlines()
		if err != nil {
			return nil, err
		}

		switch tok.Type {
		case tokRBrace:
			_, _ = p.next()
			return s, nil
		case tokEOF:
			return nil, p.errorf(tok, "unterminated skin block %q", s.Name)
		case tokWord:
			if err := p.parseDirective(s); err != nil {
				return nil, err
			}
		default:
			return nil, p.errorf(tok, "expected directive")
		}
	}
}

// parseDirective parses one "key values..." line into s.
func (p *parser) parseDirective(s *Skin) error {
	keyTok, err := p.expect(tokWord)
	if err != nil {
		return err
	}

	vals, err := p.parseValues()
	if err != nil {
		return err
	}

	key := keyTok.Lit
	ci := !p.opt.DisableCaseInsensitive
	switch {
	case matchKey(key, keyName, ci):
		s.Title = strings.Join(vals, " ")
	case matchKey(key, keyDescription, ci):
		s.Description = strings.Join(vals, " ")
	case matchKey(key, keyAuthorName, ci):
		s.AuthorName = strings.Join(vals, " ")
	case matchKey(key, keyAuthorID, ci):
		s.AuthorID = strings.Join(vals, " ")
	case matchKey(key, keyGUID, ci):
		s.GUID = strings.Join(vals, " ")
	case matchKey(key, keyPreviewImage, ci):
		s.PreviewImage = strings.Join(vals, " ")

	case matchKey(key, keyReplaceMaterial, ci), matchKey(key, keyReplaceTexture, ci):
		if len(vals) != 2 {
			return p.errorf(keyTok, "%s expects 2 arguments, got %d", key, len(vals))
		}

		r := Replacement{Original: vals[0], Replacement: vals[1], Line: keyTok.Line}
		if matchKey(key, keyReplaceMaterial, ci) {
			s.Materials = append(s.Materials, r)
		} else {
			s.Textures = append(s.Textures, r)
		}

	default:
		if p.opt.DisableUnknownDirectives {
			return p.errorf(keyTok, "unknown directive %q", key)
		}
		s.Extra = append(s.Extra, Directive{Key: key, Values: vals})
	}

	return nil
}

// parseValues collects words and strings up to the end of the line.
// A closing or opening brace also ends the value list and is left unconsumed.
func (p *parser) parseValues() ([]string, error) {
	var out []string
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}

		switch tok.Type {
		case tokWord, tokString:
			_, _ = p.next()
			out = append(out, tok.Lit)
		case tokNewline:
			_, _ = p.next()
			return out, nil
		default:
			return out, nil
		}
	}
}

// skipNewlines consumes empty lines and returns the next token without consuming it.
func (p *parser) skipNewlines() (token, error) {
	for {
		tok, err := p.peek()
		if err != nil {
			return tok, err
		}
		if tok.Type != tokNewline {
			return tok, nil
		}

		_, _ = p.next()
	}
}

// expect expects a token.
func (p *parser) expect(tt tokenType) (token, error) {
	tok, err := p.next()
	if err != nil {
		return tok, err
	}

	if tok.Type != tt {
		return tok, p.errorf(tok, "expected %s", tokenName(tt))
	}

	return tok, nil
}

// errorf formats an error.
func (p *parser) errorf(tok token, format string, args ...any) error {
	return fmt.Errorf("%w at %d:%d: %s", ErrParse, tok.Line, tok.Col, fmt.Sprintf(format, args...))
}

// tokenName returns the name of a token.
func tokenName(tt tokenType) string {
	switch tt {
	case tokEOF:
		return "EOF"
	case tokWord:
		return "word"
	case tokString:
		return "string"
	case tokLBrace:
		return "{"
	case tokRBrace:
		return "}"
	case tokNewline:
		return "newline"
	default:
		return "token"
	}
}

// isBinaryInput checks if the input looks binary.
func isBinaryInput(r *bufio.Reader) bool {
	// Text definitions never contain zero bytes.
	peek, err := r.Peek(4096)
	if err != nil && len(peek) == 0 {
		return false
	}

	return bytes.IndexByte(peek, 0x00) >= 0
}

// matchKey checks if the two strings are equal.
func matchKey(a, b string, ci bool) bool {
	if ci {
		return strings.EqualFold(a, b)
	}
	return a == b
}
