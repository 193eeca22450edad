package semantics

// VarType is the GLSL data type of a program variable.
type VarType int

const (
	TypeFloat VarType = iota
	TypeVec2
	TypeVec3
	TypeVec4
	TypeInt
	TypeIVec2
	TypeIVec3
	TypeIVec4
	TypeBool
	TypeMat2
	TypeMat3
	TypeMat4
	TypeSampler2D
	TypeSamplerCube
)

var varTypeComponents = [...]int{
	TypeFloat:       1,
	TypeVec2:        2,
	TypeVec3:        3,
	TypeVec4:        4,
	TypeInt:         1,
	TypeIVec2:       2,
	TypeIVec3:       3,
	TypeIVec4:       4,
	TypeBool:        1,
	TypeMat2:        4,
	TypeMat3:        9,
	TypeMat4:        16,
	TypeSampler2D:   1,
	TypeSamplerCube: 1,
}

// Components is the number of scalars in one element of the type.
func (t VarType) Components() int {
	if t < 0 || int(t) >= len(varTypeComponents) {
		return 1
	}
	return varTypeComponents[t]
}

// IsInteger reports whether values of the type are submitted as integers.
func (t VarType) IsInteger() bool {
	switch t {
	case TypeInt, TypeIVec2, TypeIVec3, TypeIVec4, TypeBool, TypeSampler2D, TypeSamplerCube:
		return true
	}
	return false
}

// Variable is an attribute or uniform declared by a linked program.
//
// Semantic and SemanticIndex start unassigned and are written by the
// configure pass when the program is linked.
type Variable struct {
	Name          string
	Location      int32
	Type          VarType
	Size          int // array length, 1 for non-arrays
	Semantic      Semantic
	SemanticIndex uint
	IsAttribute   bool
}

// IsConfigured reports whether a semantic has been assigned.
func (v *Variable) IsConfigured() bool {
	return v.Semantic != SemanticNone
}

// MaxSemanticIndex bounds the index of a repeated structure such as a light.
const MaxSemanticIndex = 255

// VariableConfiguration states that a variable named Name is the
// SemanticIndex-th instance of Semantic. It is immutable once built.
type VariableConfiguration struct {
	name          string
	semantic      Semantic
	semanticIndex uint
}

// NewVariableConfiguration validates the semantic and index ranges and
// returns the configuration. ok is false when either is out of range.
func NewVariableConfiguration(name string, semantic Semantic, index uint) (cfg *VariableConfiguration, ok bool) {
	if !semantic.IsValid() || index > MaxSemanticIndex {
		return nil, false
	}
	return &VariableConfiguration{name: name, semantic: semantic, semanticIndex: index}, true
}

func (c *VariableConfiguration) Name() string { return c.name }
func (c *VariableConfiguration) Semantic() Semantic { return c.semantic }
func (c *VariableConfiguration) SemanticIndex() uint { return c.semanticIndex }

// Apply copies the semantic assignment onto v.
func (c *VariableConfiguration) Apply(v *Variable) {
	v.Semantic = c.semantic
	v.SemanticIndex = c.semanticIndex
}
