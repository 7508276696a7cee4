/*
Package rorskin provides material replacement tables and parsing, writing, and
validation for vehicle skin definition files.

A skin file lists named skins; each skin carries metadata (display name,
author, target guid, preview image) and replace_material / replace_texture
directives. The directives become ReplacementTable values that rewrite the
material bindings of sub-meshes and sub-entities in place.

Reader example:

	skins, err := rorskin.DecodeFile("red.skin", nil)
	if err != nil {
		// handle error
	}

Apply example:

	mesh := &rorskin.Mesh{Name: "body.mesh", SubMeshes: []*rorskin.SubMesh{{Material: "body"}}}
	ent := rorskin.NewEntity("truck", mesh)
	bound, units := skins[0].Apply(mesh, ent)

Table example:

	t := rorskin.NewReplacementTable()
	t.Register("body", "body_red")
	if t.Has("body") {
		_ = t.Get("body") // "body_red"
	}

Writer example:

	out, err := rorskin.Format(skins, nil)
	if err != nil {
		// handle error
	}

Validator example:

	issues := rorskin.Validate(skins[0], &rorskin.ValidateOptions{ResourceRoot: "mods/red"})
	if rorskin.HasErrors(issues) {
		// handle validation issues
	}
*/
package rorskin
