package rorskin

import "go.uber.org/zap"

// Material is a named shading configuration with its texture units.
type Material struct {
	Name         string        `json:"name" yaml:"name"`                                     // Material name
	TextureUnits []TextureUnit `json:"textureUnits,omitempty" yaml:"textureUnits,omitempty"` // Texture units in pass order
}

// TextureUnit binds a texture to a material pass.
type TextureUnit struct {
	Name    string `json:"name,omitempty" yaml:"name,omitempty"` // Texture unit name
	Texture string `json:"texture" yaml:"texture"`               // Texture file name
}

// ReplaceTextures rewrites texture names that have a replacement in t and
// returns the number of rewritten units.
func (m *Material) ReplaceTextures(t *ReplacementTable) int {
	if m == nil || t.Len() == 0 {
		return 0
	}

	n := 0
	for i := range m.TextureUnits {
		tu := &m.TextureUnits[i]
		repl, ok := t.Lookup(tu.Texture)
		if !ok {
			continue
		}

		Logger().Debug("texture replaced",
			zap.String("material", m.Name),
			zap.String("from", tu.Texture),
			zap.String("to", repl))
		tu.Texture = repl
		n++
	}

	return n
}
