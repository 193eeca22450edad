package semantics

// Semantic identifies what a shader variable means within the scene.
//
// Values from SemanticAppBase to SemanticMax inclusive are reserved for the
// application. The engine never assigns or populates them itself, and makes
// no attempt to detect collisions between values chosen by the application.
type Semantic uint32

const (
	SemanticNone Semantic = iota // No semantic assigned.

	// Vertex content
	SemanticVertexLocations
	SemanticVertexNormals
	SemanticVertexColors
	SemanticVertexPointSizes
	SemanticVertexWeights
	SemanticVertexMatrices
	SemanticVertexTexture

	SemanticHasVertexNormal
	SemanticShouldNormalizeVertexNormal
	SemanticShouldRescaleVertexNormal
	SemanticHasVertexColor
	SemanticHasVertexTextureCoordinate
	SemanticHasVertexPointSize
	SemanticIsDrawingPoints

	// Environment matrices
	SemanticModelMatrix
	SemanticModelMatrixInv
	SemanticModelMatrixInvTran
	SemanticViewMatrix
	SemanticViewMatrixInv
	SemanticViewMatrixInvTran
	SemanticModelViewMatrix
	SemanticModelViewMatrixInv
	SemanticModelViewMatrixInvTran
	SemanticProjMatrix
	SemanticProjMatrixInv
	SemanticProjMatrixInvTran
	SemanticModelViewProjMatrix
	SemanticModelViewProjMatrixInv
	SemanticModelViewProjMatrixInvTran

	// Camera
	SemanticCameraPosition

	// Materials
	SemanticColor // Color used when lighting and materials are off.
	SemanticMaterialColorAmbient
	SemanticMaterialColorDiffuse
	SemanticMaterialColorSpecular
	SemanticMaterialColorEmission
	SemanticMaterialOpacity
	SemanticMaterialShininess
	SemanticMinimumDrawnAlpha

	// Lighting
	SemanticIsUsingLighting
	SemanticSceneLightColorAmbient

	SemanticLightIsEnabled
	SemanticLightPosition
	SemanticLightColorAmbient
	SemanticLightColorDiffuse
	SemanticLightColorSpecular
	SemanticLightAttenuation
	SemanticLightSpotDirection
	SemanticLightSpotExponent
	SemanticLightSpotCutoffAngle
	SemanticLightSpotCutoffAngleCosine

	// Textures
	SemanticTextureCount
	SemanticTextureSamplers // Array of samplers, one per texture unit.

	// Texture unit combiners, mirroring OpenGL ES 1.1 texture environments.
	SemanticTexUnitMode
	SemanticTexUnitConstantColor
	SemanticTexUnitCombineRGBFunction
	SemanticTexUnitSource0RGB
	SemanticTexUnitSource1RGB
	SemanticTexUnitSource2RGB
	SemanticTexUnitOperand0RGB
	SemanticTexUnitOperand1RGB
	SemanticTexUnitOperand2RGB
	SemanticTexUnitCombineAlphaFunction
	SemanticTexUnitSource0Alpha
	SemanticTexUnitSource1Alpha
	SemanticTexUnitSource2Alpha
	SemanticTexUnitOperand0Alpha
	SemanticTexUnitOperand1Alpha
	SemanticTexUnitOperand2Alpha

	// Points and particles
	SemanticPointSize
	SemanticPointSizeAttenuation
	SemanticPointSizeMinimum
	SemanticPointSizeMaximum
	SemanticPointSizeFadeThreshold
	SemanticPointSpritesIsEnabled

	SemanticAppBase // First application-defined semantic.

	SemanticMax Semantic = 0xFFFF // Last application-defined semantic.
)

// UnknownSemanticName is returned by NameOf for values outside the core vocabulary.
const UnknownSemanticName = "Unknown"

var semanticNames = [...]string{
	SemanticNone: "None",

	SemanticVertexLocations:  "VertexLocations",
	SemanticVertexNormals:    "VertexNormals",
	SemanticVertexColors:     "VertexColors",
	SemanticVertexPointSizes: "VertexPointSizes",
	SemanticVertexWeights:    "VertexWeights",
	SemanticVertexMatrices:   "VertexMatrices",
	SemanticVertexTexture:    "VertexTexture",

	SemanticHasVertexNormal:             "HasVertexNormal",
	SemanticShouldNormalizeVertexNormal: "ShouldNormalizeVertexNormal",
	SemanticShouldRescaleVertexNormal:   "ShouldRescaleVertexNormal",
	SemanticHasVertexColor:              "HasVertexColor",
	SemanticHasVertexTextureCoordinate:  "HasVertexTextureCoordinate",
	SemanticHasVertexPointSize:          "HasVertexPointSize",
	SemanticIsDrawingPoints:             "IsDrawingPoints",

	SemanticModelMatrix:                "ModelMatrix",
	SemanticModelMatrixInv:             "ModelMatrixInv",
	SemanticModelMatrixInvTran:         "ModelMatrixInvTran",
	SemanticViewMatrix:                 "ViewMatrix",
	SemanticViewMatrixInv:              "ViewMatrixInv",
	SemanticViewMatrixInvTran:          "ViewMatrixInvTran",
	SemanticModelViewMatrix:            "ModelViewMatrix",
	SemanticModelViewMatrixInv:         "ModelViewMatrixInv",
	SemanticModelViewMatrixInvTran:     "ModelViewMatrixInvTran",
	SemanticProjMatrix:                 "ProjMatrix",
	SemanticProjMatrixInv:              "ProjMatrixInv",
	SemanticProjMatrixInvTran:          "ProjMatrixInvTran",
	SemanticModelViewProjMatrix:        "ModelViewProjMatrix",
	SemanticModelViewProjMatrixInv:     "ModelViewProjMatrixInv",
	SemanticModelViewProjMatrixInvTran: "ModelViewProjMatrixInvTran",

	SemanticCameraPosition: "CameraPosition",

	SemanticColor:                 "Color",
	SemanticMaterialColorAmbient:  "MaterialColorAmbient",
	SemanticMaterialColorDiffuse:  "MaterialColorDiffuse",
	SemanticMaterialColorSpecular: "MaterialColorSpecular",
	SemanticMaterialColorEmission: "MaterialColorEmission",
	SemanticMaterialOpacity:       "MaterialOpacity",
	SemanticMaterialShininess:     "MaterialShininess",
	SemanticMinimumDrawnAlpha:     "MinimumDrawnAlpha",

	SemanticIsUsingLighting:        "IsUsingLighting",
	SemanticSceneLightColorAmbient: "SceneLightColorAmbient",

	SemanticLightIsEnabled:             "LightIsEnabled",
	SemanticLightPosition:              "LightPosition",
	SemanticLightColorAmbient:          "LightColorAmbient",
	SemanticLightColorDiffuse:          "LightColorDiffuse",
	SemanticLightColorSpecular:         "LightColorSpecular",
	SemanticLightAttenuation:           "LightAttenuation",
	SemanticLightSpotDirection:         "LightSpotDirection",
	SemanticLightSpotExponent:          "LightSpotExponent",
	SemanticLightSpotCutoffAngle:       "LightSpotCutoffAngle",
	SemanticLightSpotCutoffAngleCosine: "LightSpotCutoffAngleCosine",

	SemanticTextureCount:    "TextureCount",
	SemanticTextureSamplers: "TextureSamplers",

	SemanticTexUnitMode:                 "TexUnitMode",
	SemanticTexUnitConstantColor:        "TexUnitConstantColor",
	SemanticTexUnitCombineRGBFunction:   "TexUnitCombineRGBFunction",
	SemanticTexUnitSource0RGB:           "TexUnitSource0RGB",
	SemanticTexUnitSource1RGB:           "TexUnitSource1RGB",
	SemanticTexUnitSource2RGB:           "TexUnitSource2RGB",
	SemanticTexUnitOperand0RGB:          "TexUnitOperand0RGB",
	SemanticTexUnitOperand1RGB:          "TexUnitOperand1RGB",
	SemanticTexUnitOperand2RGB:          "TexUnitOperand2RGB",
	SemanticTexUnitCombineAlphaFunction: "TexUnitCombineAlphaFunction",
	SemanticTexUnitSource0Alpha:         "TexUnitSource0Alpha",
	SemanticTexUnitSource1Alpha:         "TexUnitSource1Alpha",
	SemanticTexUnitSource2Alpha:         "TexUnitSource2Alpha",
	SemanticTexUnitOperand0Alpha:        "TexUnitOperand0Alpha",
	SemanticTexUnitOperand1Alpha:        "TexUnitOperand1Alpha",
	SemanticTexUnitOperand2Alpha:        "TexUnitOperand2Alpha",

	SemanticPointSize:              "PointSize",
	SemanticPointSizeAttenuation:   "PointSizeAttenuation",
	SemanticPointSizeMinimum:       "PointSizeMinimum",
	SemanticPointSizeMaximum:       "PointSizeMaximum",
	SemanticPointSizeFadeThreshold: "PointSizeFadeThreshold",
	SemanticPointSpritesIsEnabled:  "PointSpritesIsEnabled",
}

var semanticsByName map[string]Semantic

func init() {
	semanticsByName = make(map[string]Semantic, len(semanticNames))
	for s, name := range semanticNames {
		semanticsByName[name] = Semantic(s)
	}
}

// NameOf returns a diagnostic name for s. Application semantics and values
// outside the vocabulary all report UnknownSemanticName.
func NameOf(s Semantic) string {
	if s < SemanticAppBase {
		return semanticNames[s]
	}
	return UnknownSemanticName
}

func (s Semantic) String() string {
	return NameOf(s)
}

// ParseSemantic is the inverse of NameOf over the core vocabulary.
func ParseSemantic(name string) (Semantic, bool) {
	s, ok := semanticsByName[name]
	return s, ok
}

// IsCore reports whether s is an engine-defined semantic other than SemanticNone.
func (s Semantic) IsCore() bool {
	return s > SemanticNone && s < SemanticAppBase
}

// IsApp reports whether s lies in the application range.
func (s Semantic) IsApp() bool {
	return s >= SemanticAppBase && s <= SemanticMax
}

// IsValid reports whether s fits the semantic value space.
func (s Semantic) IsValid() bool {
	return s <= SemanticMax
}

// IsAttribute reports whether s describes per-vertex content rather than a uniform.
func (s Semantic) IsAttribute() bool {
	return s >= SemanticVertexLocations && s <= SemanticVertexTexture
}

// IsLight reports whether s is a per-light semantic, indexed by light.
func (s Semantic) IsLight() bool {
	return s >= SemanticLightIsEnabled && s <= SemanticLightSpotCutoffAngleCosine
}

// IsTexUnit reports whether s is a per-texture-unit combiner semantic.
func (s Semantic) IsTexUnit() bool {
	return s >= SemanticTexUnitMode && s <= SemanticTexUnitOperand2Alpha
}
