package renderer

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// vec3Near compares with an absolute tolerance, so components that should be
// zero accept float rounding.
func vec3Near(a, b mgl32.Vec3, tol float32) bool {
	return a.Sub(b).Len() < tol
}

func TestNewDefaultCamera(t *testing.T) {
	cam := NewDefaultCamera(800, 600)

	if cam == nil {
		t.Fatal("NewDefaultCamera returned nil")
	}
	if cam.Position == (mgl32.Vec3{0, 0, 0}) {
		t.Error("Camera position should not be at origin")
	}
	if math.Abs(float64(cam.AspectRatio)-800.0/600.0) > 1e-6 {
		t.Errorf("Expected aspect ratio 4:3, got %f", cam.AspectRatio)
	}
	if cam.Sensitivity <= 0 {
		t.Error("Camera sensitivity should be positive")
	}
}

func TestCameraGetViewMatrix(t *testing.T) {
	cam := NewDefaultCamera(800, 600)
	cam.Position = mgl32.Vec3{0, 0, 5}
	cam.Front = mgl32.Vec3{0, 0, -1}
	cam.Up = mgl32.Vec3{0, 1, 0}

	view := cam.GetViewMatrix()

	if view.At(3, 3) != 1.0 {
		t.Error("View matrix should be valid (w component = 1)")
	}
	origin := view.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if !mgl32.FloatEqualThreshold(origin.Z(), -5, 1e-5) {
		t.Errorf("Origin should be 5 units in front of the camera, got %v", origin)
	}
}

func TestCameraGetProjectionMatrix(t *testing.T) {
	cam := NewDefaultCamera(800, 600)

	proj := cam.GetProjectionMatrix()

	if proj.At(3, 3) != 0.0 {
		t.Error("Perspective projection should have w=0 at (3,3)")
	}
}

func TestCameraGetViewProjection(t *testing.T) {
	cam := NewDefaultCamera(800, 600)

	vp := cam.GetViewProjection()
	want := cam.GetProjectionMatrix().Mul4(cam.GetViewMatrix())

	if !vp.ApproxEqualThreshold(want, 1e-6) {
		t.Error("ViewProjection should equal projection times view")
	}
}

func TestCameraSettersUpdateProjection(t *testing.T) {
	cam := NewDefaultCamera(800, 600)
	before := cam.Projection

	cam.SetFov(60)

	if cam.Projection == before {
		t.Error("SetFov should rebuild the projection")
	}

	before = cam.Projection
	cam.SetNear(1)
	if cam.Projection == before || cam.Near != 1 {
		t.Error("SetNear should rebuild the projection")
	}

	before = cam.Projection
	cam.SetFar(50)
	if cam.Projection == before || cam.Far != 50 {
		t.Error("SetFar should rebuild the projection")
	}
	want := mgl32.Perspective(mgl32.DegToRad(60), cam.AspectRatio, 1, 50)
	if cam.Projection != want {
		t.Error("Projection should use the new clip planes")
	}
}

func TestCameraUpdateVectors(t *testing.T) {
	cam := NewDefaultCamera(800, 600)
	cam.Yaw = -90
	cam.Pitch = 0

	cam.updateCameraVectors()

	frontLen := cam.Front.Len()
	if math.Abs(float64(frontLen)-1.0) > 0.01 {
		t.Errorf("Front vector should be normalized, length=%f", frontLen)
	}
	if !vec3Near(cam.Front, mgl32.Vec3{0, 0, -1}, 1e-5) {
		t.Errorf("Yaw -90 should look down -Z, got %v", cam.Front)
	}
}

func TestCameraLookAt(t *testing.T) {
	cam := NewDefaultCamera(800, 600)
	cam.Position = mgl32.Vec3{3, 4, 0}

	cam.LookAt(mgl32.Vec3{})

	want := mgl32.Vec3{-3, -4, 0}.Normalize()
	if !vec3Near(cam.Front, want, 1e-4) {
		t.Errorf("Expected front %v, got %v", want, cam.Front)
	}
}

func TestCameraOrbit(t *testing.T) {
	cam := NewDefaultCamera(800, 600)
	cam.Position = mgl32.Vec3{0, 2, 0}

	cam.Orbit(mgl32.Vec3{}, 5, 90)

	horizontal := mgl32.Vec2{cam.Position.X(), cam.Position.Z()}.Len()
	if math.Abs(float64(horizontal)-5) > 1e-4 {
		t.Errorf("Camera should orbit at radius 5, got %f", horizontal)
	}
	if cam.Position.Y() != 2 {
		t.Errorf("Orbit should keep the height, got %f", cam.Position.Y())
	}
	toTarget := cam.Position.Mul(-1).Normalize()
	if !vec3Near(cam.Front, toTarget, 1e-4) {
		t.Errorf("Camera should face the target, front=%v", cam.Front)
	}
}

func TestCameraPitchConstraint(t *testing.T) {
	cam := NewDefaultCamera(800, 600)
	cam.InvertMouse = false

	cam.ProcessMouseMovement(0, 10000, true)

	if cam.Pitch != 89.0 {
		t.Errorf("Pitch should be clamped to 89, got %f", cam.Pitch)
	}
}
