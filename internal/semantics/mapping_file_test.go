package semantics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlMappings = `
max_lights: 2
mappings:
  - name: lightPos
    semantic: LightPosition
    index: 1
  - name: mvp
    semantic: ModelViewProjMatrix
  - name: fogDensity
    semantic: app:3
foreign:
  - name: SUNDIR
    semantic: LightPosition
`

const tomlMappings = `
max_lights = 3
max_texture_units = 1

[[mappings]]
name = "lightPos"
semantic = "LightPosition"
index = 1

[[mappings]]
name = "fogDensity"
semantic = "app:3"

[[foreign]]
name = "SUNDIR"
semantic = "LightPosition"
`

func TestParseMappingFileYAML(t *testing.T) {
	f, err := ParseMappingFile([]byte(yamlMappings), ".yaml")
	require.NoError(t, err)

	cfg := f.Config(DefaultConfig())
	assert.Equal(t, 2, cfg.MaxLights)
	assert.Equal(t, DefaultMaxTextureUnits, cfg.MaxTextureUnits)

	r := NewByVarName()
	f.Apply(r)
	assert.Equal(t, 3, r.Len())

	v := &Variable{Name: "lightPos"}
	require.True(t, r.ConfigureVariable(v))
	assert.Equal(t, SemanticLightPosition, v.Semantic)
	assert.Equal(t, uint(1), v.SemanticIndex)

	v = &Variable{Name: "fogDensity"}
	require.True(t, r.ConfigureVariable(v))
	assert.Equal(t, SemanticAppBase+3, v.Semantic)

	vocab := NewVocabularyTable()
	f.ApplyForeign(vocab)
	assert.Equal(t, SemanticLightPosition, vocab.Translate("SUNDIR"))
}

func TestLoadMappingFileTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mappings.toml")
	require.NoError(t, os.WriteFile(path, []byte(tomlMappings), 0o644))

	f, err := LoadMappingFile(path)
	require.NoError(t, err)

	cfg := f.Config(DefaultConfig())
	assert.Equal(t, DefaultMappingConfig{MaxLights: 3, MaxTextureUnits: 1}, cfg)

	r := NewByVarName()
	f.Apply(r)
	cfgEntry, ok := r.Lookup("lightPos")
	require.True(t, ok)
	assert.Equal(t, SemanticLightPosition, cfgEntry.Semantic())
	assert.Equal(t, uint(1), cfgEntry.SemanticIndex())
	assert.Len(t, f.Foreign, 1)
}

func TestParseMappingFileErrors(t *testing.T) {
	_, err := ParseMappingFile([]byte(yamlMappings), ".json")
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = ParseMappingFile([]byte("mappings:\n  - name: x\n    semantic: Bogus\n"), "yml")
	assert.ErrorIs(t, err, ErrUnknownSemantic)

	_, err = ParseMappingFile([]byte("foreign:\n  - name: X\n    semantic: app:99999\n"), "yaml")
	assert.ErrorIs(t, err, ErrUnknownSemantic)

	_, err = ParseMappingFile([]byte("mappings: [oops"), "yaml")
	assert.Error(t, err)

	_, err = LoadMappingFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParseSemanticRef(t *testing.T) {
	s, err := ParseSemanticRef("CameraPosition")
	require.NoError(t, err)
	assert.Equal(t, SemanticCameraPosition, s)

	s, err = ParseSemanticRef("app:0")
	require.NoError(t, err)
	assert.Equal(t, SemanticAppBase, s)

	_, err = ParseSemanticRef("app:-1")
	assert.ErrorIs(t, err, ErrUnknownSemantic)
	_, err = ParseSemanticRef("")
	assert.ErrorIs(t, err, ErrUnknownSemantic)
}
