package semantics

import (
	"Gopher3DSemantics/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// Delegate assigns semantics to program variables and populates uniforms
// from the scene on every draw.
type Delegate interface {
	// ConfigureVariable assigns a semantic to v and reports whether it did.
	// On false, v is left untouched. Called once per variable at link time.
	ConfigureVariable(v *Variable) bool

	// PopulateUniform stages the current scene value for u, submits it if it
	// changed, and reports whether a value could be resolved. Called for every
	// configured uniform on every draw, so it must stay cheap.
	PopulateUniform(u *Uniform, state SceneState) bool

	// NameOf returns a diagnostic name for s.
	NameOf(s Semantic) string
}

// SceneState is the view of the scene available while a node is drawn.
type SceneState interface {
	ModelMatrix() mgl32.Mat4
	ViewMatrix() mgl32.Mat4
	ProjMatrix() mgl32.Mat4
	CameraPosition() mgl32.Vec3

	// Material returns nil when the drawn node has none.
	Material() *scene.Material
	PureColor() mgl32.Vec4

	IsUsingLighting() bool
	SceneLightColorAmbient() mgl32.Vec4
	LightCount() int
	// LightAt returns the i-th active light, or nil when i >= LightCount().
	LightAt(i int) *scene.Light

	TextureUnitCount() int
	// TextureUnitAt returns the i-th bound unit, or nil when i >= TextureUnitCount().
	TextureUnitAt(i int) *scene.TextureUnit

	Mesh() scene.MeshFlags
	Points() scene.PointParams
}

// Chain tries each delegate in order and stops at the first one that succeeds.
// Place application delegates ahead of the engine defaults to override them.
type Chain []Delegate

func (c Chain) ConfigureVariable(v *Variable) bool {
	for _, d := range c {
		if d.ConfigureVariable(v) {
			return true
		}
	}
	return false
}

func (c Chain) PopulateUniform(u *Uniform, s SceneState) bool {
	for _, d := range c {
		if d.PopulateUniform(u, s) {
			return true
		}
	}
	return false
}

func (c Chain) NameOf(s Semantic) string {
	for _, d := range c {
		if name := d.NameOf(s); name != UnknownSemanticName {
			return name
		}
	}
	return UnknownSemanticName
}
