package scene

import "github.com/go-gl/mathgl/mgl32"

// MeshFlags describes the vertex content of the mesh being drawn.
type MeshFlags struct {
	HasNormals             bool
	HasColors              bool
	HasPointSizes          bool
	TexCoordCount          int // number of texture units with coordinates
	ShouldNormalizeNormals bool
	ShouldRescaleNormals   bool
	IsDrawingPoints        bool
}

// HasTexCoords reports whether unit carries texture coordinates.
func (m MeshFlags) HasTexCoords(unit int) bool {
	return unit >= 0 && unit < m.TexCoordCount
}

// PointParams are the particle and point-sprite parameters of a draw.
type PointParams struct {
	Size           float32
	Attenuation    mgl32.Vec3 // constant, linear, quadratic
	MinimumSize    float32
	MaximumSize    float32
	FadeThreshold  float32
	SpritesEnabled bool
}

// DefaultPointParams returns the OpenGL point defaults.
func DefaultPointParams() PointParams { return defaultPointParams }

var defaultPointParams = PointParams{
	Size:          1,
	Attenuation:   mgl32.Vec3{1, 0, 0},
	MinimumSize:   0,
	MaximumSize:   1,
	FadeThreshold: 1,
}
