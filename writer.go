package rorskin

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strings"
)

// Encode writes skins to writer, separated by blank lines.
func Encode(w io.Writer, skins []*Skin, opt *FormatOptions) error {
	fopt := opt.normalize()
	// Buffered writer reduces syscall overhead and short writes.
	bw := bufio.NewWriter(w)
	wr := &writer{w: bw, indent: fopt.Indent, keyWidth: fopt.KeyWidth}

	first := true
	for _, s := range skins {
		if s == nil {
			continue
		}
		if !first {
			if err := wr.writeString("\n"); err != nil {
				return err
			}
		}
		first = false

		if err := wr.writeSkin(s); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// EncodeFile writes skins to a file.
func EncodeFile(path string, skins []*Skin, opt *FormatOptions) error {
	b, err := Format(skins, opt)
	if err != nil {
		return err
	}

	return os.WriteFile(path, b, 0o600)
}

// Format renders skins to bytes.
func Format(skins []*Skin, opt *FormatOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, skins, opt); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// writer writes skins in canonical layout.
type writer struct {
	w        io.Writer // Writer to write to
	indent   string    // Indentation string
	keyWidth int       // Directive key column width
}

// writeSkin writes a single skin block.
func (w *writer) writeSkin(s *Skin) error {
	if err := w.writeText(s.Name); err != nil {
		return err
	}
	if err := w.writeString("\n{\n"); err != nil {
		return err
	}

	// Metadata first, in a fixed order; empty fields are omitted.
	meta := []struct {
		key string
		val string
	}{
		{keyName, s.Title},
		{keyDescription, s.Description},
		{keyAuthorName, s.AuthorName},
		{keyAuthorID, s.AuthorID},
		{keyGUID, s.GUID},
		{keyPreviewImage, s.PreviewImage},
	}
	for _, m := range meta {
		if m.val == "" {
			continue
		}
		if err := w.writeKey(m.key); err != nil {
			return err
		}
		if err := w.writeText(m.val); err != nil {
			return err
		}
		if err := w.writeString("\n"); err != nil {
			return err
		}
	}

	if err := w.writeReplacements(keyReplaceMaterial, s.Materials); err != nil {
		return err
	}
	if err := w.writeReplacements(keyReplaceTexture, s.Textures); err != nil {
		return err
	}

	for _, d := range s.Extra {
		if err := w.writeKey(d.Key); err != nil {
			return err
		}
		for i, v := range d.Values {
			if i > 0 {
				if err := w.writeString(" "); err != nil {
					return err
				}
			}
			if err := w.writeWord(v); err != nil {
				return err
			}
		}
		if err := w.writeString("\n"); err != nil {
			return err
		}
	}

	return w.writeString("}\n")
}

// writeReplacements writes replacement directives in order.
func (w *writer) writeReplacements(key string, reps []Replacement) error {
	for _, r := range reps {
		if err := w.writeKey(key); err != nil {
			return err
		}
		if err := w.writeWord(r.Original); err != nil {
			return err
		}
		if err := w.writeString(" "); err != nil {
			return err
		}
		if err := w.writeWord(r.Replacement); err != nil {
			return err
		}
		if err := w.writeString("\n"); err != nil {
			return err
		}
	}

	return nil
}

// writeKey writes the indented key padded to the key column.
func (w *writer) writeKey(key string) error {
	if err := w.writeString(w.indent); err != nil {
		return err
	}
	if err := w.writeString(key); err != nil {
		return err
	}

	pad := w.keyWidth - len(key)
	if pad < 1 {
		pad = 1
	}

	return w.writeString(strings.Repeat(" ", pad))
}

// writeText writes free text bare when it survives re-parsing as words, quoted otherwise.
func (w *writer) writeText(s string) error {
	if strings.Join(strings.Fields(s), " ") == s && s != "" && isBareText(s) {
		return w.writeString(s)
	}

	return w.writeQuoted(s)
}

// writeWord writes a single value, quoting it when it is not a bare word.
func (w *writer) writeWord(s string) error {
	if s != "" && !strings.ContainsFunc(s, func(r rune) bool { return !isWordPart(r) }) && !strings.HasPrefix(s, "//") {
		return w.writeString(s)
	}

	return w.writeQuoted(s)
}

// quoteEscaper escapes characters the lexer does not accept raw inside quotes.
var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\r", `\r`)

// writeQuoted writes a quoted string, escaping quotes, backslashes and line breaks.
func (w *writer) writeQuoted(s string) error {
	if err := w.writeString("\""); err != nil {
		return err
	}

	s = quoteEscaper.Replace(s)
	if err := w.writeString(s); err != nil {
		return err
	}

	return w.writeString("\"")
}

// writeString writes a string to the writer.
func (w *writer) writeString(s string) error {
	_, err := io.WriteString(w.w, s)
	return err
}

// isBareText reports whether every space-separated word of s is a bare word.
func isBareText(s string) bool {
	for _, f := range strings.Fields(s) {
		if strings.HasPrefix(f, "//") {
			return false
		}
		for _, r := range f {
			if !isWordPart(r) {
				return false
			}
		}
	}

	return true
}
