package rorskin

import (
	"fmt"
	"strings"
)

// Skin represents one skin block of a skin definition file.
type Skin struct {
	Name         string        `json:"name" yaml:"name"`                                     // Skin name from the header line
	Title        string        `json:"title,omitempty" yaml:"title,omitempty"`               // Display name ("name" directive)
	Description  string        `json:"description,omitempty" yaml:"description,omitempty"`   // Description text
	AuthorName   string        `json:"authorName,omitempty" yaml:"authorName,omitempty"`     // Author display name
	AuthorID     string        `json:"authorId,omitempty" yaml:"authorId,omitempty"`         // Author numeric id as written
	GUID         string        `json:"guid,omitempty" yaml:"guid,omitempty"`                 // GUID of the vehicle the skin targets
	PreviewImage string        `json:"previewImage,omitempty" yaml:"previewImage,omitempty"` // Preview image file
	Materials    []Replacement `json:"materials,omitempty" yaml:"materials,omitempty"`       // replace_material directives in file order
	Textures     []Replacement `json:"textures,omitempty" yaml:"textures,omitempty"`         // replace_texture directives in file order
	Extra        []Directive   `json:"extra,omitempty" yaml:"extra,omitempty"`               // Unrecognized directives
}

// Replacement is a single original -> replacement directive.
type Replacement struct {
	Original    string `json:"original" yaml:"original"`       // Name being replaced
	Replacement string `json:"replacement" yaml:"replacement"` // Substituted name
	Line        int    `json:"-" yaml:"-"`                     // Source line, 0 when built in code
}

// Directive is an unrecognized key/value line kept for round-tripping.
type Directive struct {
	Key    string   `json:"key" yaml:"key"`                           // Directive keyword
	Values []string `json:"values,omitempty" yaml:"values,omitempty"` // Raw value words
}

// ReplaceMaterial appends a replace_material directive.
func (s *Skin) ReplaceMaterial(original, replacement string) {
	s.Materials = append(s.Materials, Replacement{Original: original, Replacement: replacement})
}

// ReplaceTexture appends a replace_texture directive.
func (s *Skin) ReplaceTexture(original, replacement string) {
	s.Textures = append(s.Textures, Replacement{Original: original, Replacement: replacement})
}

// MaterialTable builds the material replacement table. Later directives win.
func (s *Skin) MaterialTable() *ReplacementTable {
	return buildTable(s.Materials)
}

// TextureTable builds the texture replacement table. Later directives win.
func (s *Skin) TextureTable() *ReplacementTable {
	return buildTable(s.Textures)
}

// Apply applies the skin to a mesh, its entity and the given materials.
// It returns the number of rewritten material bindings and texture units.
func (s *Skin) Apply(mesh *Mesh, entity *Entity, materials ...*Material) (int, int) {
	bound := ApplyMaterials(s.MaterialTable(), mesh, entity)

	textures := s.TextureTable()
	units := 0
	for _, m := range materials {
		units += m.ReplaceTextures(textures)
	}

	return bound, units
}

// FindSkin returns the skin with the given name, compared case-insensitively.
func FindSkin(skins []*Skin, name string) (*Skin, error) {
	for _, s := range skins {
		if s != nil && strings.EqualFold(s.Name, name) {
			return s, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrSkinNotFound, name)
}

// buildTable creates a table from replacements in order.
func buildTable(reps []Replacement) *ReplacementTable {
	t := NewReplacementTable()
	for _, r := range reps {
		t.Register(r.Original, r.Replacement)
	}

	return t
}
