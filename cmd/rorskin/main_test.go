package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/woozymasta/rorskin/errorbox"
)

func TestParseScene(t *testing.T) {
	sc, err := loadScene(filepath.Join("testdata", "scene.yaml"))
	require.NoError(t, err)

	require.Len(t, sc.Meshes, 1)
	require.Len(t, sc.Entities, 1)
	assert.Equal(t, "truck", sc.Entities[0].Name)
	assert.Len(t, sc.Entities[0].SubEntities, 3)
	assert.Equal(t, []string{"truck/body", "truck/glass", "truck/trim"}, sc.subMaterials())
}

func TestParseSceneErrors(t *testing.T) {
	_, err := parseScene([]byte("entities:\n  - name: a\n    mesh: nope\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown mesh")

	_, err = parseScene([]byte("meshes:\n  - name: a\n  - name: a\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate mesh")

	_, err = parseScene([]byte("meshes: [\n"))
	assert.Error(t, err)
}

func TestParseFlags(t *testing.T) {
	opt, err := parseFlags([]string{"-m", "scene.yaml", "--skin-name", "Blue", "-d", "red.skin"})
	require.NoError(t, err)
	assert.Equal(t, "red.skin", opt.skinFile)
	assert.Equal(t, "scene.yaml", opt.manifest)
	assert.Equal(t, "Blue", opt.skinName)
	assert.True(t, opt.debug)

	_, err = parseFlags(nil)
	assert.Error(t, err)

	_, err = parseFlags([]string{"--format", "--validate", "red.skin"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be combined")
}

func TestRunApply(t *testing.T) {
	opt := options{
		skinFile: filepath.Join("testdata", "red.skin"),
		manifest: filepath.Join("testdata", "scene.yaml"),
		script:   filepath.Join("testdata", "tint.js"),
	}

	var out, msgs bytes.Buffer
	rep := errorbox.NewReporter(errorbox.NewPlainConsole(&msgs), nil)
	require.NoError(t, run(opt, &out, rep, zap.NewNop()))
	assert.False(t, rep.HasPending())

	var got scene
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))
	require.Len(t, got.Entities, 1)

	var mats []string
	for _, se := range got.Entities[0].SubEntities {
		mats = append(mats, se.Material)
	}
	assert.Equal(t, []string{"truck/body_red", "truck/glass_tinted", "truck/trim"}, mats)
	assert.Equal(t, "truck/body_red", got.Meshes[0].SubMeshes[0].Material)
	assert.Equal(t, "body_red.dds", got.Materials[0].TextureUnits[0].Texture)
}

func TestRunSelectSkin(t *testing.T) {
	opt := options{
		skinFile: filepath.Join("testdata", "red.skin"),
		manifest: filepath.Join("testdata", "scene.yaml"),
		skinName: "blue",
	}

	var out bytes.Buffer
	rep := errorbox.NewReporter(errorbox.NewPlainConsole(&bytes.Buffer{}), nil)
	require.NoError(t, run(opt, &out, rep, zap.NewNop()))
	assert.Contains(t, out.String(), "truck/body_blue")

	opt.skinName = "green"
	assert.Error(t, run(opt, &out, rep, zap.NewNop()))
}

func TestRunValidateAndFormat(t *testing.T) {
	var out, msgs bytes.Buffer
	rep := errorbox.NewReporter(errorbox.NewPlainConsole(&msgs), nil)

	opt := options{skinFile: filepath.Join("testdata", "red.skin"), validate: true}
	require.NoError(t, run(opt, &out, rep, zap.NewNop()))
	assert.Empty(t, out.String())
	assert.False(t, rep.HasPending())

	out.Reset()
	opt = options{skinFile: filepath.Join("testdata", "red.skin"), format: true}
	require.NoError(t, run(opt, &out, rep, zap.NewNop()))
	assert.Contains(t, out.String(), "\treplace_material truck/body truck/body_blue\n")

	out.Reset()
	opt = options{skinFile: filepath.Join("testdata", "red.skin")}
	require.NoError(t, run(opt, &out, rep, zap.NewNop()))
	assert.Contains(t, msgs.String(), "INFO: Red")
}
