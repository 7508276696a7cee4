package rorskin

// SubMesh is a partition of a mesh with its own material binding.
type SubMesh struct {
	Material string `json:"material" yaml:"material"` // Bound material name
}

// MaterialName returns the bound material name.
func (s *SubMesh) MaterialName() string { return s.Material }

// SetMaterialName rebinds the material.
func (s *SubMesh) SetMaterialName(name string) { s.Material = name }

// Mesh is a named renderable made of sub-meshes.
type Mesh struct {
	Name      string     `json:"name" yaml:"name"`                               // Mesh resource name
	SubMeshes []*SubMesh `json:"subMeshes,omitempty" yaml:"subMeshes,omitempty"` // Sub-mesh partitions
}

// SubEntity is the per-instance counterpart of a sub-mesh.
type SubEntity struct {
	Material string `json:"material" yaml:"material"` // Bound material name
}

// MaterialName returns the bound material name.
func (s *SubEntity) MaterialName() string { return s.Material }

// SetMaterialName rebinds the material.
func (s *SubEntity) SetMaterialName(name string) { s.Material = name }

// Entity is a scene instance of a mesh.
type Entity struct {
	Mesh        *Mesh        `json:"-" yaml:"-"`                                         // Source mesh
	Name        string       `json:"name" yaml:"name"`                                   // Entity name
	SubEntities []*SubEntity `json:"subEntities,omitempty" yaml:"subEntities,omitempty"` // Sub-entity partitions
}

// NewEntity creates an entity with one sub-entity per sub-mesh of mesh,
// each starting with the sub-mesh material.
func NewEntity(name string, mesh *Mesh) *Entity {
	e := &Entity{Name: name, Mesh: mesh}
	if mesh == nil {
		return e
	}

	e.SubEntities = make([]*SubEntity, 0, len(mesh.SubMeshes))
	for _, sm := range mesh.SubMeshes {
		mat := ""
		if sm != nil {
			mat = sm.Material
		}
		e.SubEntities = append(e.SubEntities, &SubEntity{Material: mat})
	}

	return e
}

// ApplyMaterials applies t to the sub-meshes of mesh and the sub-entities of
// entity. Either may be nil. It returns the number of rewritten bindings.
func ApplyMaterials(t *ReplacementTable, mesh *Mesh, entity *Entity) int {
	n := 0
	if mesh != nil {
		n += Apply(t, mesh.SubMeshes)
	}
	if entity != nil {
		n += Apply(t, entity.SubEntities)
	}

	return n
}
