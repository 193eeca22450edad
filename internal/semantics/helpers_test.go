package semantics

import (
	"sync"
	"testing"

	"Gopher3DSemantics/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

type countingWriter struct {
	floatWrites int
	intWrites   int
	lastFloats  []float32
	lastInts    []int32
}

func (w *countingWriter) WriteFloats(u *Uniform, values []float32) {
	w.floatWrites++
	w.lastFloats = append(w.lastFloats[:0], values...)
}

func (w *countingWriter) WriteInts(u *Uniform, values []int32) {
	w.intWrites++
	w.lastInts = append(w.lastInts[:0], values...)
}

func (w *countingWriter) total() int {
	return w.floatWrites + w.intWrites
}

type fakeScene struct {
	model, view, proj mgl32.Mat4
	camera            mgl32.Vec3
	material          *scene.Material
	pureColor         mgl32.Vec4
	lighting          bool
	ambient           mgl32.Vec4
	lights            []*scene.Light
	units             []*scene.TextureUnit
	mesh              scene.MeshFlags
	points            scene.PointParams
}

func newFakeScene() *fakeScene {
	return &fakeScene{
		model:  mgl32.Translate3D(1, 2, 3),
		view:   mgl32.LookAtV(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}),
		proj:   mgl32.Perspective(mgl32.DegToRad(45), 4.0/3.0, 0.1, 100),
		camera: mgl32.Vec3{0, 0, 10},
		points: scene.DefaultPointParams(),
	}
}

func (f *fakeScene) ModelMatrix() mgl32.Mat4 { return f.model }
func (f *fakeScene) ViewMatrix() mgl32.Mat4 { return f.view }
func (f *fakeScene) ProjMatrix() mgl32.Mat4 { return f.proj }
func (f *fakeScene) CameraPosition() mgl32.Vec3 { return f.camera }
func (f *fakeScene) Material() *scene.Material { return f.material }
func (f *fakeScene) PureColor() mgl32.Vec4 { return f.pureColor }
func (f *fakeScene) IsUsingLighting() bool { return f.lighting }
func (f *fakeScene) SceneLightColorAmbient() mgl32.Vec4 { return f.ambient }
func (f *fakeScene) LightCount() int { return len(f.lights) }
func (f *fakeScene) TextureUnitCount() int { return len(f.units) }
func (f *fakeScene) Mesh() scene.MeshFlags { return f.mesh }
func (f *fakeScene) Points() scene.PointParams { return f.points }

func (f *fakeScene) LightAt(i int) *scene.Light {
	if i < 0 || i >= len(f.lights) {
		return nil
	}
	return f.lights[i]
}

func (f *fakeScene) TextureUnitAt(i int) *scene.TextureUnit {
	if i < 0 || i >= len(f.units) {
		return nil
	}
	return f.units[i]
}

func newTestUniform(name string, t VarType, size int, s Semantic, index uint) (*Uniform, *countingWriter) {
	w := &countingWriter{}
	u := NewUniform(Variable{Name: name, Type: t, Size: size, Semantic: s, SemanticIndex: index}, w)
	return u, w
}

func resetSharedDefault() {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	sharedOnce = sync.Once{}
	sharedCfg = DefaultConfig()
	sharedBuilt = false
	sharedWarned = false
	sharedDefault = nil
}

func sharedDefaultForTest(t *testing.T) *ByVarName {
	resetSharedDefault()
	t.Cleanup(resetSharedDefault)
	return SharedDefault()
}
