package renderer

import (
	"Gopher3DSemantics/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// DrawVisitor carries the scene state for the model currently being drawn.
// It implements semantics.SceneState.
type DrawVisitor struct {
	Camera       *Camera
	Lights       []*scene.Light
	AmbientLight mgl32.Vec4
	UseLighting  bool

	model  *Model
	view   mgl32.Mat4
	proj   mgl32.Mat4
	active []*scene.Light
}

func NewDrawVisitor(camera *Camera, lights []*scene.Light) *DrawVisitor {
	return &DrawVisitor{
		Camera:       camera,
		Lights:       lights,
		AmbientLight: mgl32.Vec4{0.2, 0.2, 0.2, 1},
		UseLighting:  true,
	}
}

// BeginFrame snapshots the camera matrices and the enabled lights for the
// frame. Lights switched on or off later take effect on the next frame.
func (dv *DrawVisitor) BeginFrame() {
	dv.active = dv.active[:0]
	for _, l := range dv.Lights {
		if l != nil && l.Enabled {
			dv.active = append(dv.active, l)
		}
	}
	if dv.Camera == nil {
		dv.view = mgl32.Ident4()
		dv.proj = mgl32.Ident4()
		return
	}
	dv.view = dv.Camera.GetViewMatrix()
	dv.proj = dv.Camera.GetProjectionMatrix()
}

// Visit makes m the model whose state is reported.
func (dv *DrawVisitor) Visit(m *Model) {
	m.UpdateModelMatrix()
	dv.model = m
}

func (dv *DrawVisitor) ModelMatrix() mgl32.Mat4 {
	if dv.model == nil {
		return mgl32.Ident4()
	}
	return dv.model.ModelMatrix
}

func (dv *DrawVisitor) ViewMatrix() mgl32.Mat4 { return dv.view }
func (dv *DrawVisitor) ProjMatrix() mgl32.Mat4 { return dv.proj }

func (dv *DrawVisitor) CameraPosition() mgl32.Vec3 {
	if dv.Camera == nil {
		return mgl32.Vec3{}
	}
	return dv.Camera.Position
}

func (dv *DrawVisitor) Material() *scene.Material {
	if dv.model == nil {
		return nil
	}
	return dv.model.Material
}

func (dv *DrawVisitor) PureColor() mgl32.Vec4 {
	if dv.model == nil {
		return mgl32.Vec4{1, 1, 1, 1}
	}
	return dv.model.PureColor
}

// IsUsingLighting is false for models drawn without a material.
func (dv *DrawVisitor) IsUsingLighting() bool {
	return dv.UseLighting && dv.Material() != nil
}

func (dv *DrawVisitor) SceneLightColorAmbient() mgl32.Vec4 { return dv.AmbientLight }

// LightCount counts the lights enabled at BeginFrame. LightAt indexes the
// same subset.
func (dv *DrawVisitor) LightCount() int { return len(dv.active) }

func (dv *DrawVisitor) LightAt(i int) *scene.Light {
	if i < 0 || i >= len(dv.active) {
		return nil
	}
	return dv.active[i]
}

func (dv *DrawVisitor) TextureUnitCount() int {
	if dv.model == nil {
		return 0
	}
	return len(dv.model.TextureUnits)
}

func (dv *DrawVisitor) TextureUnitAt(i int) *scene.TextureUnit {
	if dv.model == nil || i < 0 || i >= len(dv.model.TextureUnits) {
		return nil
	}
	return dv.model.TextureUnits[i]
}

func (dv *DrawVisitor) Mesh() scene.MeshFlags {
	if dv.model == nil {
		return scene.MeshFlags{}
	}
	return dv.model.Mesh
}

func (dv *DrawVisitor) Points() scene.PointParams {
	if dv.model == nil {
		return scene.DefaultPointParams()
	}
	return dv.model.Points
}
