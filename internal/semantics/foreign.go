package semantics

// ForeignVocabulary translates semantic names used by an external tool, such
// as the semantics declared in a PFX effect file, into Semantic values.
// Foreign names carry no structure index.
type ForeignVocabulary interface {
	// Translate returns SemanticNone for names it does not know.
	Translate(foreignName string) Semantic
}

// VocabularyTable is a ForeignVocabulary backed by an editable table.
type VocabularyTable struct {
	semantics map[string]Semantic
}

func NewVocabularyTable() *VocabularyTable {
	return &VocabularyTable{semantics: make(map[string]Semantic)}
}

func (t *VocabularyTable) Translate(foreignName string) Semantic {
	return t.semantics[foreignName]
}

// AddMapping binds foreignName to semantic, replacing an earlier binding.
func (t *VocabularyTable) AddMapping(foreignName string, semantic Semantic) {
	t.semantics[foreignName] = semantic
}

func (t *VocabularyTable) Len() int {
	return len(t.semantics)
}

// NewPVRShamanVocabulary returns a table preloaded with the semantic names
// used by PVRShaman PFX effects.
func NewPVRShamanVocabulary() *VocabularyTable {
	t := NewVocabularyTable()

	t.AddMapping("POSITION", SemanticVertexLocations)
	t.AddMapping("NORMAL", SemanticVertexNormals)
	t.AddMapping("UV", SemanticVertexTexture)
	t.AddMapping("VERTEXCOLOR", SemanticVertexColors)
	t.AddMapping("BONEWEIGHT", SemanticVertexWeights)
	t.AddMapping("BONEINDEX", SemanticVertexMatrices)

	t.AddMapping("WORLD", SemanticModelMatrix)
	t.AddMapping("WORLDI", SemanticModelMatrixInv)
	t.AddMapping("WORLDIT", SemanticModelMatrixInvTran)
	t.AddMapping("VIEW", SemanticViewMatrix)
	t.AddMapping("VIEWI", SemanticViewMatrixInv)
	t.AddMapping("VIEWIT", SemanticViewMatrixInvTran)
	t.AddMapping("PROJECTION", SemanticProjMatrix)
	t.AddMapping("PROJECTIONI", SemanticProjMatrixInv)
	t.AddMapping("PROJECTIONIT", SemanticProjMatrixInvTran)
	t.AddMapping("WORLDVIEW", SemanticModelViewMatrix)
	t.AddMapping("WORLDVIEWI", SemanticModelViewMatrixInv)
	t.AddMapping("WORLDVIEWIT", SemanticModelViewMatrixInvTran)
	t.AddMapping("WORLDVIEWPROJECTION", SemanticModelViewProjMatrix)
	t.AddMapping("WORLDVIEWPROJECTIONI", SemanticModelViewProjMatrixInv)
	t.AddMapping("WORLDVIEWPROJECTIONIT", SemanticModelViewProjMatrixInvTran)

	t.AddMapping("EYEPOSWORLD", SemanticCameraPosition)

	t.AddMapping("MATERIALCOLORAMBIENT", SemanticMaterialColorAmbient)
	t.AddMapping("MATERIALCOLORDIFFUSE", SemanticMaterialColorDiffuse)
	t.AddMapping("MATERIALCOLORSPECULAR", SemanticMaterialColorSpecular)
	t.AddMapping("MATERIALOPACITY", SemanticMaterialOpacity)
	t.AddMapping("MATERIALSHININESS", SemanticMaterialShininess)

	t.AddMapping("LIGHTCOLOR", SemanticLightColorDiffuse)
	t.AddMapping("LIGHTPOSWORLD", SemanticLightPosition)
	t.AddMapping("LIGHTDIRWORLD", SemanticLightPosition)
	t.AddMapping("LIGHTATTENUATION", SemanticLightAttenuation)

	t.AddMapping("TEXTURE", SemanticTextureSamplers)

	return t
}

// MapForeign binds varName in r to the semantic vocab assigns to foreignName.
// It reports false, leaving r unchanged, when foreignName is not recognized.
func MapForeign(r *ByVarName, varName string, vocab ForeignVocabulary, foreignName string, index uint) bool {
	s := vocab.Translate(foreignName)
	if s == SemanticNone {
		return false
	}
	r.MapAt(varName, s, index)
	return true
}
