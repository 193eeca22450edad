package semantics

import (
	"Gopher3DSemantics/internal/scene"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// MaxTextureUnits is the number of texture units whose samplers can be resolved.
const MaxTextureUnits = 8

// Base populates uniforms for every core semantic. It assigns no semantics
// itself; ByVarName and other strategies embed it for the population pass.
type Base struct{}

func (Base) ConfigureVariable(*Variable) bool { return false }

func (Base) NameOf(s Semantic) string { return NameOf(s) }

// PopulateUniform resolves the value for u.Semantic from state and submits it
// when it changed. It returns false for semantics it does not recognize and
// for sampler arrays with a slot past MaxTextureUnits; slots staged before
// the failing one are kept.
func (Base) PopulateUniform(u *Uniform, state SceneState) bool {
	if !resolve(u, state) {
		return false
	}
	u.Update()
	return true
}

func resolve(u *Uniform, s SceneState) bool {
	sem := u.Semantic
	switch {
	case sem.IsLight():
		resolveLights(u, s)
		return true
	case sem.IsTexUnit():
		resolveTexUnits(u, s)
		return true
	case sem >= SemanticModelMatrix && sem <= SemanticModelViewProjMatrixInvTran:
		resolveMatrix(u, s)
		return true
	}

	switch sem {
	case SemanticHasVertexNormal:
		u.SetBool(0, s.Mesh().HasNormals)
	case SemanticShouldNormalizeVertexNormal:
		u.SetBool(0, s.Mesh().ShouldNormalizeNormals)
	case SemanticShouldRescaleVertexNormal:
		u.SetBool(0, s.Mesh().ShouldRescaleNormals)
	case SemanticHasVertexColor:
		u.SetBool(0, s.Mesh().HasColors)
	case SemanticHasVertexTextureCoordinate:
		mesh := s.Mesh()
		for i := 0; i < u.Size; i++ {
			u.SetBool(i, mesh.HasTexCoords(int(u.SemanticIndex)+i))
		}
	case SemanticHasVertexPointSize:
		u.SetBool(0, s.Mesh().HasPointSizes)
	case SemanticIsDrawingPoints:
		u.SetBool(0, s.Mesh().IsDrawingPoints)

	case SemanticCameraPosition:
		u.SetVec3(0, s.CameraPosition())

	case SemanticColor:
		u.SetVec4(0, s.PureColor())
	case SemanticMaterialColorAmbient:
		u.SetVec4(0, materialOf(s).AmbientColor)
	case SemanticMaterialColorDiffuse:
		u.SetVec4(0, materialOf(s).DiffuseColor)
	case SemanticMaterialColorSpecular:
		u.SetVec4(0, materialOf(s).SpecularColor)
	case SemanticMaterialColorEmission:
		u.SetVec4(0, materialOf(s).EmissionColor)
	case SemanticMaterialOpacity:
		u.SetFloat(0, materialOf(s).Opacity())
	case SemanticMaterialShininess:
		u.SetFloat(0, materialOf(s).Shininess)
	case SemanticMinimumDrawnAlpha:
		u.SetFloat(0, materialOf(s).MinimumDrawnAlpha)

	case SemanticIsUsingLighting:
		u.SetBool(0, s.IsUsingLighting())
	case SemanticSceneLightColorAmbient:
		u.SetVec4(0, s.SceneLightColorAmbient())

	case SemanticTextureCount:
		u.SetInt(0, int32(s.TextureUnitCount()))
	case SemanticTextureSamplers:
		return resolveSamplers(u)

	case SemanticPointSize:
		u.SetFloat(0, s.Points().Size)
	case SemanticPointSizeAttenuation:
		u.SetVec3(0, s.Points().Attenuation)
	case SemanticPointSizeMinimum:
		u.SetFloat(0, s.Points().MinimumSize)
	case SemanticPointSizeMaximum:
		u.SetFloat(0, s.Points().MaximumSize)
	case SemanticPointSizeFadeThreshold:
		u.SetFloat(0, s.Points().FadeThreshold)
	case SemanticPointSpritesIsEnabled:
		u.SetBool(0, s.Points().SpritesEnabled)

	default:
		return false
	}
	return true
}

// Read-only fallbacks for state the scene does not supply.
var (
	defaultMaterial  = scene.DefaultMaterial()
	inertLight       = scene.InertLight()
	inertTextureUnit = scene.InertTextureUnit()
)

func materialOf(s SceneState) *scene.Material {
	if m := s.Material(); m != nil {
		return m
	}
	return &defaultMaterial
}

// Matrix semantics come in (plain, inverse, inverse-transpose) triplets
// ordered model, view, model-view, projection, model-view-projection.
func resolveMatrix(u *Uniform, s SceneState) {
	offset := int(u.Semantic - SemanticModelMatrix)
	var m mgl32.Mat4
	switch offset / 3 {
	case 0:
		m = s.ModelMatrix()
	case 1:
		m = s.ViewMatrix()
	case 2:
		m = s.ViewMatrix().Mul4(s.ModelMatrix())
	case 3:
		m = s.ProjMatrix()
	case 4:
		m = s.ProjMatrix().Mul4(s.ViewMatrix()).Mul4(s.ModelMatrix())
	}

	variant := offset % 3
	if variant == 0 {
		u.SetMat4(0, m)
		return
	}
	if u.Type == TypeMat3 {
		// Normal matrices only need the linear part.
		m3 := m.Mat3().Inv()
		if variant == 2 {
			m3 = m3.Transpose()
		}
		u.SetMat3(0, m3)
		return
	}
	m = m.Inv()
	if variant == 2 {
		m = m.Transpose()
	}
	u.SetMat4(0, m)
}

// Element i of a light uniform belongs to light SemanticIndex+i. Slots
// beyond the active lights receive scene.InertLight().
func resolveLights(u *Uniform, s SceneState) {
	base := int(u.SemanticIndex)
	count := s.LightCount()
	for i := 0; i < u.Size; i++ {
		l := &inertLight
		if idx := base + i; idx < count {
			if live := s.LightAt(idx); live != nil {
				l = live
			}
		}
		switch u.Semantic {
		case SemanticLightIsEnabled:
			u.SetBool(i, l.Enabled)
		case SemanticLightPosition:
			u.SetVec4(i, l.Position)
		case SemanticLightColorAmbient:
			u.SetVec4(i, l.AmbientColor)
		case SemanticLightColorDiffuse:
			u.SetVec4(i, l.DiffuseColor)
		case SemanticLightColorSpecular:
			u.SetVec4(i, l.SpecularColor)
		case SemanticLightAttenuation:
			u.SetVec3(i, l.Attenuation)
		case SemanticLightSpotDirection:
			u.SetVec3(i, l.SpotDirection)
		case SemanticLightSpotExponent:
			u.SetFloat(i, l.SpotExponent)
		case SemanticLightSpotCutoffAngle:
			u.SetFloat(i, l.SpotCutoffAngle)
		case SemanticLightSpotCutoffAngleCosine:
			u.SetFloat(i, math32.Cos(mgl32.DegToRad(l.SpotCutoffAngle)))
		}
	}
}

func resolveTexUnits(u *Uniform, s SceneState) {
	base := int(u.SemanticIndex)
	count := s.TextureUnitCount()
	for i := 0; i < u.Size; i++ {
		tu := &inertTextureUnit
		if idx := base + i; idx < count {
			if live := s.TextureUnitAt(idx); live != nil {
				tu = live
			}
		}
		switch u.Semantic {
		case SemanticTexUnitMode:
			u.SetInt(i, tu.Mode)
		case SemanticTexUnitConstantColor:
			u.SetVec4(i, tu.ConstantColor)
		case SemanticTexUnitCombineRGBFunction:
			u.SetInt(i, tu.CombineRGB)
		case SemanticTexUnitSource0RGB, SemanticTexUnitSource1RGB, SemanticTexUnitSource2RGB:
			u.SetInt(i, tu.SourceRGB[u.Semantic-SemanticTexUnitSource0RGB])
		case SemanticTexUnitOperand0RGB, SemanticTexUnitOperand1RGB, SemanticTexUnitOperand2RGB:
			u.SetInt(i, tu.OperandRGB[u.Semantic-SemanticTexUnitOperand0RGB])
		case SemanticTexUnitCombineAlphaFunction:
			u.SetInt(i, tu.CombineAlpha)
		case SemanticTexUnitSource0Alpha, SemanticTexUnitSource1Alpha, SemanticTexUnitSource2Alpha:
			u.SetInt(i, tu.SourceAlpha[u.Semantic-SemanticTexUnitSource0Alpha])
		case SemanticTexUnitOperand0Alpha, SemanticTexUnitOperand1Alpha, SemanticTexUnitOperand2Alpha:
			u.SetInt(i, tu.OperandAlpha[u.Semantic-SemanticTexUnitOperand0Alpha])
		}
	}
}

// Sampler slot i is bound to texture unit SemanticIndex+i.
func resolveSamplers(u *Uniform) bool {
	base := int(u.SemanticIndex)
	for i := 0; i < u.Size; i++ {
		unit := base + i
		if unit >= MaxTextureUnits {
			return false
		}
		u.SetInt(i, int32(unit))
	}
	return true
}
