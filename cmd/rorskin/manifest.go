package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/woozymasta/rorskin"
)

// manifest is the YAML description of meshes, entities and materials a skin is applied to.
type manifest struct {
	Meshes    []*rorskin.Mesh     `yaml:"meshes"`
	Entities  []manifestEntity    `yaml:"entities"`
	Materials []*rorskin.Material `yaml:"materials"`
}

// manifestEntity names an entity and the mesh it instantiates.
type manifestEntity struct {
	Name string `yaml:"name"`
	Mesh string `yaml:"mesh"`
}

// scene is a loaded manifest with entities instantiated.
type scene struct {
	Meshes    []*rorskin.Mesh     `yaml:"meshes"`
	Entities  []*rorskin.Entity   `yaml:"entities"`
	Materials []*rorskin.Material `yaml:"materials,omitempty"`
}

// loadScene reads a manifest file and instantiates its entities.
func loadScene(path string) (*scene, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return parseScene(b)
}

// parseScene decodes manifest YAML and instantiates its entities.
func parseScene(b []byte) (*scene, error) {
	var m manifest
	if err := yaml.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}

	meshes := make(map[string]*rorskin.Mesh, len(m.Meshes))
	for _, mesh := range m.Meshes {
		if mesh == nil {
			continue
		}
		if _, ok := meshes[mesh.Name]; ok {
			return nil, fmt.Errorf("manifest: duplicate mesh %q", mesh.Name)
		}
		meshes[mesh.Name] = mesh
	}

	sc := &scene{Meshes: m.Meshes, Materials: m.Materials}
	for _, e := range m.Entities {
		mesh, ok := meshes[e.Mesh]
		if !ok {
			return nil, fmt.Errorf("manifest: entity %q references unknown mesh %q", e.Name, e.Mesh)
		}
		sc.Entities = append(sc.Entities, rorskin.NewEntity(e.Name, mesh))
	}

	return sc, nil
}

// subMaterials returns the material names of every sub-mesh in order.
func (s *scene) subMaterials() []string {
	var out []string
	for _, mesh := range s.Meshes {
		if mesh == nil {
			continue
		}
		for _, sm := range mesh.SubMeshes {
			if sm != nil {
				out = append(out, sm.Material)
			}
		}
	}

	return out
}

// apply applies the material and texture tables to the whole scene.
func (s *scene) apply(materials, textures *rorskin.ReplacementTable) (int, int) {
	bound := 0
	for _, mesh := range s.Meshes {
		bound += rorskin.ApplyMaterials(materials, mesh, nil)
	}
	for _, e := range s.Entities {
		bound += rorskin.ApplyMaterials(materials, nil, e)
	}

	units := 0
	for _, m := range s.Materials {
		units += m.ReplaceTextures(textures)
	}

	return bound, units
}
