package semantics

import (
	"fmt"
	"sync"

	"Gopher3DSemantics/internal/logger"

	"go.uber.org/zap"
)

const (
	DefaultMaxLights       = 4
	DefaultMaxTextureUnits = 4
)

// DefaultMappingConfig bounds how many indexed default mappings are generated.
// Each light or texture unit adds a block of names to the registry.
type DefaultMappingConfig struct {
	MaxLights       int
	MaxTextureUnits int
}

func DefaultConfig() DefaultMappingConfig {
	return DefaultMappingConfig{MaxLights: DefaultMaxLights, MaxTextureUnits: DefaultMaxTextureUnits}
}

var matrixNames = []struct {
	prefix   string
	semantic Semantic
}{
	{"u_modelMatrix", SemanticModelMatrix},
	{"u_viewMatrix", SemanticViewMatrix},
	{"u_modelViewMatrix", SemanticModelViewMatrix},
	{"u_projMatrix", SemanticProjMatrix},
	{"u_modelViewProjMatrix", SemanticModelViewProjMatrix},
}

var lightFields = []struct {
	flat, member string
	semantic     Semantic
}{
	{"IsEnabled", "isEnabled", SemanticLightIsEnabled},
	{"Position", "position", SemanticLightPosition},
	{"Ambient", "ambient", SemanticLightColorAmbient},
	{"Diffuse", "diffuse", SemanticLightColorDiffuse},
	{"Specular", "specular", SemanticLightColorSpecular},
	{"Attenuation", "attenuation", SemanticLightAttenuation},
	{"SpotDirection", "spotDirection", SemanticLightSpotDirection},
	{"SpotExponent", "spotExponent", SemanticLightSpotExponent},
	{"SpotCutoffAngle", "spotCutoffAngle", SemanticLightSpotCutoffAngle},
	{"SpotCutoffAngleCos", "spotCutoffAngleCos", SemanticLightSpotCutoffAngleCosine},
}

var texUnitFields = []struct {
	suffix   string
	semantic Semantic
}{
	{"Mode", SemanticTexUnitMode},
	{"ConstantColor", SemanticTexUnitConstantColor},
	{"CombineRGB", SemanticTexUnitCombineRGBFunction},
	{"Source0RGB", SemanticTexUnitSource0RGB},
	{"Source1RGB", SemanticTexUnitSource1RGB},
	{"Source2RGB", SemanticTexUnitSource2RGB},
	{"Operand0RGB", SemanticTexUnitOperand0RGB},
	{"Operand1RGB", SemanticTexUnitOperand1RGB},
	{"Operand2RGB", SemanticTexUnitOperand2RGB},
	{"CombineAlpha", SemanticTexUnitCombineAlphaFunction},
	{"Source0Alpha", SemanticTexUnitSource0Alpha},
	{"Source1Alpha", SemanticTexUnitSource1Alpha},
	{"Source2Alpha", SemanticTexUnitSource2Alpha},
	{"Operand0Alpha", SemanticTexUnitOperand0Alpha},
	{"Operand1Alpha", SemanticTexUnitOperand1Alpha},
	{"Operand2Alpha", SemanticTexUnitOperand2Alpha},
}

// PopulateDefaults adds the engine's default variable names to r. The result
// depends only on cfg, and existing entries with the same names are replaced,
// so applications can call it first and then add their own overrides.
func PopulateDefaults(r *ByVarName, cfg DefaultMappingConfig) {
	// Vertex attributes
	r.Map("a_position", SemanticVertexLocations)
	r.Map("a_normal", SemanticVertexNormals)
	r.Map("a_color", SemanticVertexColors)
	r.Map("a_pointSize", SemanticVertexPointSizes)
	r.Map("a_weights", SemanticVertexWeights)
	r.Map("a_matrices", SemanticVertexMatrices)
	r.Map("a_texCoord", SemanticVertexTexture)
	for i := 0; i < cfg.MaxTextureUnits; i++ {
		r.MapAt(fmt.Sprintf("a_texCoord%d", i), SemanticVertexTexture, uint(i))
	}

	// Mesh and draw flags
	r.Map("u_hasNormal", SemanticHasVertexNormal)
	r.Map("u_shouldNormalizeNormal", SemanticShouldNormalizeVertexNormal)
	r.Map("u_shouldRescaleNormal", SemanticShouldRescaleVertexNormal)
	r.Map("u_hasVertexColor", SemanticHasVertexColor)
	r.Map("u_hasTexCoord", SemanticHasVertexTextureCoordinate)
	r.Map("u_hasPointSize", SemanticHasVertexPointSize)
	r.Map("u_isDrawingPoints", SemanticIsDrawingPoints)

	// Matrices, each with its inverse and inverse-transpose
	for _, m := range matrixNames {
		r.Map(m.prefix, m.semantic)
		r.Map(m.prefix+"Inv", m.semantic+1)
		r.Map(m.prefix+"InvTran", m.semantic+2)
	}
	r.Map("u_normalMatrix", SemanticModelViewMatrixInvTran)

	r.Map("u_cameraPosition", SemanticCameraPosition)

	// Material
	r.Map("u_color", SemanticColor)
	r.Map("u_materialAmbient", SemanticMaterialColorAmbient)
	r.Map("u_materialDiffuse", SemanticMaterialColorDiffuse)
	r.Map("u_materialSpecular", SemanticMaterialColorSpecular)
	r.Map("u_materialEmission", SemanticMaterialColorEmission)
	r.Map("u_materialOpacity", SemanticMaterialOpacity)
	r.Map("u_materialShininess", SemanticMaterialShininess)
	r.Map("u_minimumDrawnAlpha", SemanticMinimumDrawnAlpha)

	// Global lighting
	r.Map("u_isUsingLighting", SemanticIsUsingLighting)
	r.Map("u_sceneLightAmbient", SemanticSceneLightColorAmbient)

	// Whole-array light uniforms, e.g. "uniform vec4 u_lightPosition[4];"
	for _, f := range lightFields {
		r.Map("u_light"+f.flat, f.semantic)
	}
	for i := 0; i < cfg.MaxLights; i++ {
		for _, f := range lightFields {
			r.MapAt(fmt.Sprintf("u_light%d%s", i, f.flat), f.semantic, uint(i))
			r.MapAt(fmt.Sprintf("u_lights[%d].%s", i, f.member), f.semantic, uint(i))
		}
	}

	// Textures
	r.Map("u_textureCount", SemanticTextureCount)
	r.Map("s_texture", SemanticTextureSamplers)
	for i := 0; i < cfg.MaxTextureUnits; i++ {
		r.MapAt(fmt.Sprintf("s_texture%d", i), SemanticTextureSamplers, uint(i))
		for _, f := range texUnitFields {
			r.MapAt(fmt.Sprintf("u_texUnit%d%s", i, f.suffix), f.semantic, uint(i))
		}
	}

	// Points and particles
	r.Map("u_pointSize", SemanticPointSize)
	r.Map("u_pointSizeAttenuation", SemanticPointSizeAttenuation)
	r.Map("u_pointSizeMinimum", SemanticPointSizeMinimum)
	r.Map("u_pointSizeMaximum", SemanticPointSizeMaximum)
	r.Map("u_pointSizeFadeThreshold", SemanticPointSizeFadeThreshold)
	r.Map("u_isPointSpritesEnabled", SemanticPointSpritesIsEnabled)
}

// NewDefaultByVarName returns a registry holding the default mappings for cfg.
func NewDefaultByVarName(cfg DefaultMappingConfig) *ByVarName {
	r := NewByVarName()
	PopulateDefaults(r, cfg)
	return r
}

var (
	sharedMu      sync.Mutex
	sharedOnce    sync.Once
	sharedCfg     = DefaultConfig()
	sharedBuilt   bool
	sharedWarned  bool
	sharedDefault *ByVarName
)

// SharedDefault returns the process-wide registry holding the default
// mappings. It is built on first call using the capacities current at that
// moment. Programs share it, so changes made to it affect all of them.
func SharedDefault() *ByVarName {
	sharedOnce.Do(func() {
		sharedMu.Lock()
		defer sharedMu.Unlock()
		sharedDefault = NewDefaultByVarName(sharedCfg)
		sharedBuilt = true
		logger.Log.Info("Built shared default semantic mappings",
			zap.Int("maxLights", sharedCfg.MaxLights),
			zap.Int("maxTextureUnits", sharedCfg.MaxTextureUnits),
			zap.Int("mappings", sharedDefault.Len()))
	})
	return sharedDefault
}

// SetMaxDefaultMappingLights sets the number of lights mapped by SharedDefault.
// It only has an effect before the first call to SharedDefault; later calls
// are ignored and the registry is never rebuilt.
func SetMaxDefaultMappingLights(n int) {
	setSharedCapacity(func(cfg *DefaultMappingConfig) { cfg.MaxLights = max(n, 0) })
}

// SetMaxDefaultMappingTextureUnits sets the number of texture units mapped by
// SharedDefault, with the same first-use restriction as SetMaxDefaultMappingLights.
func SetMaxDefaultMappingTextureUnits(n int) {
	setSharedCapacity(func(cfg *DefaultMappingConfig) { cfg.MaxTextureUnits = max(n, 0) })
}

func MaxDefaultMappingLights() int {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	return sharedCfg.MaxLights
}

func MaxDefaultMappingTextureUnits() int {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	return sharedCfg.MaxTextureUnits
}

func setSharedCapacity(update func(*DefaultMappingConfig)) {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	if sharedBuilt {
		if !sharedWarned {
			sharedWarned = true
			logger.Log.Warn("Default mapping capacity changed after the shared registry was built; ignoring",
				zap.Int("maxLights", sharedCfg.MaxLights),
				zap.Int("maxTextureUnits", sharedCfg.MaxTextureUnits))
		}
		return
	}
	update(&sharedCfg)
}
