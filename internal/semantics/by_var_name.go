package semantics

import (
	"sort"
	"strings"

	"Gopher3DSemantics/internal/logger"

	"go.uber.org/zap"
)

// ByVarName assigns semantics by matching the variable name declared in the
// shader source against a table of configurations. Populating uniforms is
// inherited from Base.
//
// The table is not synchronized. Fill it during setup, before any program
// linked against it starts drawing.
type ByVarName struct {
	Base
	varConfigsByName map[string]*VariableConfiguration
}

func NewByVarName() *ByVarName {
	return &ByVarName{varConfigsByName: make(map[string]*VariableConfiguration)}
}

// ConfigureVariable looks up v.Name and, if found, copies its semantic and
// semantic index onto v. Array uniforms reported as "name[0]" fall back to
// the bare "name".
func (r *ByVarName) ConfigureVariable(v *Variable) bool {
	cfg, ok := r.varConfigsByName[v.Name]
	if !ok {
		if base, isArray := strings.CutSuffix(v.Name, "[0]"); isArray {
			cfg, ok = r.varConfigsByName[base]
		}
	}
	if !ok {
		return false
	}
	cfg.Apply(v)
	return true
}

// AddVariableConfiguration stores cfg under its name, replacing any earlier one.
func (r *ByVarName) AddVariableConfiguration(cfg *VariableConfiguration) {
	r.varConfigsByName[cfg.Name()] = cfg
}

// Map binds name to semantic at index zero.
func (r *ByVarName) Map(name string, semantic Semantic) {
	r.MapAt(name, semantic, 0)
}

// MapAt binds name to the index-th instance of semantic, replacing any
// earlier binding for name. A semantic above SemanticMax or an index above
// MaxSemanticIndex is rejected with a warning and the table is unchanged.
func (r *ByVarName) MapAt(name string, semantic Semantic, index uint) {
	cfg, ok := NewVariableConfiguration(name, semantic, index)
	if !ok {
		logger.Log.Warn("Rejected out-of-range semantic mapping",
			zap.String("name", name),
			zap.Uint32("semantic", uint32(semantic)),
			zap.Uint("index", index))
		return
	}
	r.AddVariableConfiguration(cfg)
}

// Lookup returns the configuration stored for name.
func (r *ByVarName) Lookup(name string) (*VariableConfiguration, bool) {
	cfg, ok := r.varConfigsByName[name]
	return cfg, ok
}

func (r *ByVarName) Len() int {
	return len(r.varConfigsByName)
}

// Names returns the mapped variable names in sorted order.
func (r *ByVarName) Names() []string {
	names := make([]string, 0, len(r.varConfigsByName))
	for name := range r.varConfigsByName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
