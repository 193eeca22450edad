package renderer

import (
	"Gopher3DSemantics/internal/logger"
	"Gopher3DSemantics/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Interleaved vertex layout: position (3), texture coordinate (2), normal (3).
const (
	vertexStride       = 8
	texCoordOffset     = 3
	normalOffset       = 5
	floatSize          = 4
	indexSize          = 4
	positionComponents = 3
)

type Model struct {
	// HOT DATA - Accessed every frame in render loop
	ModelMatrix  mgl32.Mat4           // Transformation matrix
	Position     mgl32.Vec3           // Position in world space
	Scale        mgl32.Vec3           // Scale factors
	Rotation     mgl32.Quat           // Rotation quaternion
	Material     *scene.Material      // nil draws with the GL default material
	PureColor    mgl32.Vec4           // Color used when lighting is off
	TextureUnits []*scene.TextureUnit // Bound texture units, in unit order
	Mesh         scene.MeshFlags      // Vertex content of the mesh
	Points       scene.PointParams    // Point size and sprite state
	Program      *Program             // Overrides the renderer's default program
	VAO          uint32               // Vertex Array Object
	VBO          uint32               // Vertex Buffer Object
	EBO          uint32               // Element Buffer Object
	IsDirty      bool                 // Needs recalculation flag

	// COLD DATA - Initialization only or rarely accessed
	Name            string
	Vertices        []float32 // Vertex position data
	Faces           []int32   // Face indices
	InterleavedData []float32 // Combined vertex data
}

func (m *Model) Rotate(angleX, angleY, angleZ float32) {
	if m.Rotation == (mgl32.Quat{}) {
		m.Rotation = mgl32.QuatIdent()
	}
	rotationX := mgl32.QuatRotate(mgl32.DegToRad(angleX), mgl32.Vec3{1, 0, 0})
	rotationY := mgl32.QuatRotate(mgl32.DegToRad(angleY), mgl32.Vec3{0, 1, 0})
	rotationZ := mgl32.QuatRotate(mgl32.DegToRad(angleZ), mgl32.Vec3{0, 0, 1})
	m.Rotation = m.Rotation.Mul(rotationX).Mul(rotationY).Mul(rotationZ)
	m.IsDirty = true
}

// SetPosition sets the position of the model
func (m *Model) SetPosition(x, y, z float32) {
	m.Position = mgl32.Vec3{x, y, z}
	m.IsDirty = true
}

func (m *Model) SetScale(x, y, z float32) {
	m.Scale = mgl32.Vec3{x, y, z}
	m.IsDirty = true
}

// UpdateModelMatrix recomputes ModelMatrix if the transform changed.
func (m *Model) UpdateModelMatrix() {
	if !m.IsDirty {
		return
	}
	// Translation * Rotation * Scale
	rotation := m.Rotation
	if rotation == (mgl32.Quat{}) {
		rotation = mgl32.QuatIdent()
	}
	scaleMatrix := mgl32.Scale3D(m.Scale[0], m.Scale[1], m.Scale[2])
	translationMatrix := mgl32.Translate3D(m.Position[0], m.Position[1], m.Position[2])
	m.ModelMatrix = translationMatrix.Mul4(rotation.Mat4()).Mul4(scaleMatrix)
	m.IsDirty = false
}

// ensureMaterial gives the model its own material instance
func (m *Model) ensureMaterial() {
	if m.Material == nil {
		logger.Log.Debug("Creating default material", zap.String("model", m.Name))
		mat := scene.DefaultMaterial()
		m.Material = &mat
	}
}

func (m *Model) SetDiffuseColor(r, g, b float32) {
	m.ensureMaterial()
	m.Material.DiffuseColor = mgl32.Vec4{r, g, b, m.Material.Opacity()}
	m.Material.AmbientColor = mgl32.Vec4{r * 0.2, g * 0.2, b * 0.2, 1}
}

func (m *Model) SetSpecularColor(r, g, b float32) {
	m.ensureMaterial()
	m.Material.SpecularColor = mgl32.Vec4{r, g, b, 1}
}

func (m *Model) SetShininess(shininess float32) {
	m.ensureMaterial()
	m.Material.Shininess = shininess
}

func (m *Model) SetAlpha(alpha float32) {
	m.ensureMaterial()
	m.Material.SetOpacity(alpha)
}

// AddTexture binds textureID to the next free texture unit and returns the unit.
func (m *Model) AddTexture(textureID uint32) *scene.TextureUnit {
	tu := scene.NewTextureUnit(textureID)
	m.TextureUnits = append(m.TextureUnits, tu)
	m.Mesh.TexCoordCount = max(m.Mesh.TexCoordCount, len(m.TextureUnits))
	return tu
}

// CreateModel builds a model from positions, optional per-vertex normals and
// optional texture coordinates. normals and texCoords may be nil.
func CreateModel(vertices []mgl32.Vec3, normals []mgl32.Vec3, texCoords []mgl32.Vec2, indices []int32) *Model {
	interleavedData := make([]float32, 0, len(vertices)*vertexStride)
	for i, v := range vertices {
		interleavedData = append(interleavedData, v.X(), v.Y(), v.Z())

		uv := mgl32.Vec2{}
		if i < len(texCoords) {
			uv = texCoords[i]
		}
		interleavedData = append(interleavedData, uv.X(), uv.Y())

		n := mgl32.Vec3{0, 1, 0}
		if i < len(normals) {
			n = normals[i]
		}
		interleavedData = append(interleavedData, n.X(), n.Y(), n.Z())
	}

	return &Model{
		Scale:           mgl32.Vec3{1, 1, 1},
		Rotation:        mgl32.QuatIdent(),
		ModelMatrix:     mgl32.Ident4(),
		PureColor:       mgl32.Vec4{1, 1, 1, 1},
		Points:          scene.DefaultPointParams(),
		Mesh:            scene.MeshFlags{HasNormals: len(normals) > 0},
		Vertices:        flattenVertices(vertices),
		Faces:           indices,
		InterleavedData: interleavedData,
		IsDirty:         true,
	}
}

// CreateCube builds a unit cube centered on the origin with face normals.
func CreateCube() *Model {
	faces := [6]struct{ normal, u, v mgl32.Vec3 }{
		{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}},
		{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}},
	}
	corners := [4]mgl32.Vec2{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}

	var vertices, normals []mgl32.Vec3
	var texCoords []mgl32.Vec2
	var indices []int32
	for _, f := range faces {
		base := int32(len(vertices))
		for _, c := range corners {
			p := f.normal.Add(f.u.Mul(c.X())).Add(f.v.Mul(c.Y())).Mul(0.5)
			vertices = append(vertices, p)
			normals = append(normals, f.normal)
			texCoords = append(texCoords, mgl32.Vec2{(c.X() + 1) / 2, (c.Y() + 1) / 2})
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}
	m := CreateModel(vertices, normals, texCoords, indices)
	m.Name = "cube"
	return m
}

// Helper to flatten Vec3 array
func flattenVertices(vertices []mgl32.Vec3) []float32 {
	flat := make([]float32, 0, len(vertices)*positionComponents)
	for _, v := range vertices {
		flat = append(flat, v.X(), v.Y(), v.Z())
	}
	return flat
}
