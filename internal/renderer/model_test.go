package renderer

import (
	"testing"

	"Gopher3DSemantics/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

func TestCreateCube(t *testing.T) {
	m := CreateCube()

	if len(m.Vertices) != 24*3 {
		t.Errorf("Expected 24 vertices, got %d", len(m.Vertices)/3)
	}
	if len(m.Faces) != 36 {
		t.Errorf("Expected 36 indices, got %d", len(m.Faces))
	}
	if len(m.InterleavedData) != 24*vertexStride {
		t.Errorf("Unexpected interleaved length %d", len(m.InterleavedData))
	}
	if !m.Mesh.HasNormals {
		t.Error("Cube should have normals")
	}
}

func TestCreateModelDefaults(t *testing.T) {
	m := CreateModel([]mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}, nil, nil, nil)

	if m.Mesh.HasNormals {
		t.Error("Model without normals should not report them")
	}
	// Placeholder normal of the first vertex.
	n := m.InterleavedData[normalOffset : normalOffset+3]
	if n[0] != 0 || n[1] != 1 || n[2] != 0 {
		t.Errorf("Expected placeholder normal (0,1,0), got %v", n)
	}
	if m.Points != scene.DefaultPointParams() {
		t.Error("Model should start with the default point parameters")
	}
}

func TestModelMatrixTRS(t *testing.T) {
	m := CreateCube()
	m.SetScale(2, 2, 2)
	m.Rotate(0, 90, 0)
	m.SetPosition(1, 0, 0)

	m.UpdateModelMatrix()

	p := m.ModelMatrix.Mul4x1(mgl32.Vec4{1, 0, 0, 1}).Vec3()
	if !vec3Near(p, mgl32.Vec3{1, 0, -2}, 1e-5) {
		t.Errorf("Expected scale, rotate, then translate; got %v", p)
	}
	if m.IsDirty {
		t.Error("UpdateModelMatrix should clear the dirty flag")
	}
}

func TestModelMaterialIsOwned(t *testing.T) {
	m := CreateCube()
	m.SetDiffuseColor(0, 1, 0)
	m.SetAlpha(0.5)

	if scene.DefaultMaterial().DiffuseColor != (mgl32.Vec4{0.8, 0.8, 0.8, 1}) {
		t.Error("Default material must not be modified")
	}
	if m.Material.DiffuseColor != (mgl32.Vec4{0, 1, 0, 0.5}) {
		t.Errorf("Unexpected diffuse %v", m.Material.DiffuseColor)
	}
}

func TestModelAddTexture(t *testing.T) {
	m := CreateCube()
	m.AddTexture(3)
	m.AddTexture(4)

	if len(m.TextureUnits) != 2 || m.TextureUnits[1].TextureID != 4 {
		t.Errorf("Unexpected texture units %+v", m.TextureUnits)
	}
	if m.Mesh.TexCoordCount != 2 {
		t.Errorf("Expected 2 texture coordinate sets, got %d", m.Mesh.TexCoordCount)
	}
}
