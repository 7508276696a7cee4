package rorskin

import "errors"

var (
	// ErrBinaryInput indicates the input is not a text skin definition.
	ErrBinaryInput = errors.New("binary skin input")

	// ErrLex indicates a lexer failure.
	ErrLex = errors.New("lex error")

	// ErrParse indicates a parser failure.
	ErrParse = errors.New("parse error")

	// ErrSkinNotFound indicates a named skin is absent from a parsed file.
	ErrSkinNotFound = errors.New("skin not found")
)
