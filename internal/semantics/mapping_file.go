package semantics

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownFormat   = errors.New("unknown mapping file format")
	ErrUnknownSemantic = errors.New("unknown semantic")
)

// appSemanticPrefix introduces an application semantic in a mapping file,
// e.g. "app:3" for SemanticAppBase+3.
const appSemanticPrefix = "app:"

// MappingFile declares application variable names and capacities, loaded
// from YAML or TOML:
//
//	max_lights: 2
//	mappings:
//	  - name: lightPos
//	    semantic: LightPosition
//	    index: 1
//	foreign:
//	  - name: SUNDIR
//	    semantic: LightPosition
type MappingFile struct {
	MaxLights       *int           `yaml:"max_lights" toml:"max_lights"`
	MaxTextureUnits *int           `yaml:"max_texture_units" toml:"max_texture_units"`
	Mappings        []MappingEntry `yaml:"mappings" toml:"mappings"`
	Foreign         []ForeignEntry `yaml:"foreign" toml:"foreign"`
}

type MappingEntry struct {
	Name     string `yaml:"name" toml:"name"`
	Semantic string `yaml:"semantic" toml:"semantic"`
	Index    uint   `yaml:"index" toml:"index"`
}

type ForeignEntry struct {
	Name     string `yaml:"name" toml:"name"`
	Semantic string `yaml:"semantic" toml:"semantic"`
}

// LoadMappingFile reads path, choosing the decoder from its extension.
func LoadMappingFile(path string) (*MappingFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read mapping file: %w", err)
	}
	return ParseMappingFile(data, filepath.Ext(path))
}

// ParseMappingFile decodes data in the given format (".yaml", ".yml" or
// ".toml") and checks that every semantic name resolves.
func ParseMappingFile(data []byte, format string) (*MappingFile, error) {
	var f MappingFile
	var err error
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "yaml", "yml":
		err = yaml.Unmarshal(data, &f)
	case "toml":
		err = toml.Unmarshal(data, &f)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("decode mapping file: %w", err)
	}

	for _, m := range f.Mappings {
		if _, err := ParseSemanticRef(m.Semantic); err != nil {
			return nil, fmt.Errorf("mapping %q: %w", m.Name, err)
		}
	}
	for _, m := range f.Foreign {
		if _, err := ParseSemanticRef(m.Semantic); err != nil {
			return nil, fmt.Errorf("foreign name %q: %w", m.Name, err)
		}
	}
	return &f, nil
}

// ParseSemanticRef accepts a core semantic name or "app:<n>" for the n-th
// application semantic.
func ParseSemanticRef(ref string) (Semantic, error) {
	if s, ok := ParseSemantic(ref); ok {
		return s, nil
	}
	if rest, ok := strings.CutPrefix(ref, appSemanticPrefix); ok {
		n, err := strconv.ParseUint(rest, 10, 32)
		if err == nil {
			if s := SemanticAppBase + Semantic(n); s.IsApp() {
				return s, nil
			}
		}
	}
	return SemanticNone, fmt.Errorf("%w: %q", ErrUnknownSemantic, ref)
}

// Config returns base with the capacities declared in the file applied.
func (f *MappingFile) Config(base DefaultMappingConfig) DefaultMappingConfig {
	if f.MaxLights != nil {
		base.MaxLights = *f.MaxLights
	}
	if f.MaxTextureUnits != nil {
		base.MaxTextureUnits = *f.MaxTextureUnits
	}
	return base
}

// Apply maps every entry of the file into r. Entries whose semantic does
// not resolve are skipped; ParseMappingFile already rejects them.
func (f *MappingFile) Apply(r *ByVarName) {
	for _, m := range f.Mappings {
		if s, err := ParseSemanticRef(m.Semantic); err == nil {
			r.MapAt(m.Name, s, m.Index)
		}
	}
}

// ApplyForeign adds the file's foreign names to t.
func (f *MappingFile) ApplyForeign(t *VocabularyTable) {
	for _, m := range f.Foreign {
		if s, err := ParseSemanticRef(m.Semantic); err == nil {
			t.AddMapping(m.Name, s)
		}
	}
}
