package scene

import "github.com/go-gl/mathgl/mgl32"

// DefaultMaterial returns the OpenGL fixed-function material defaults. They
// are used whenever a drawn node has no material of its own.
func DefaultMaterial() Material { return defaultMaterial }

var defaultMaterial = Material{
	Name:              "default",
	AmbientColor:      mgl32.Vec4{0.2, 0.2, 0.2, 1.0},
	DiffuseColor:      mgl32.Vec4{0.8, 0.8, 0.8, 1.0},
	SpecularColor:     mgl32.Vec4{0.0, 0.0, 0.0, 1.0},
	EmissionColor:     mgl32.Vec4{0.0, 0.0, 0.0, 1.0},
	Shininess:         0.0,
	MinimumDrawnAlpha: 0.0,
}

type Material struct {
	// HOT DATA - Accessed every render call for shading calculations
	AmbientColor      mgl32.Vec4
	DiffuseColor      mgl32.Vec4
	SpecularColor     mgl32.Vec4
	EmissionColor     mgl32.Vec4
	Shininess         float32 // Specular exponent
	MinimumDrawnAlpha float32 // Fragments below this alpha are discarded

	// COLD DATA
	Name string
}

// Opacity is the alpha of the diffuse color.
func (m *Material) Opacity() float32 {
	return m.DiffuseColor.W()
}

// SetOpacity sets the alpha component of every material color.
func (m *Material) SetOpacity(alpha float32) {
	m.AmbientColor[3] = alpha
	m.DiffuseColor[3] = alpha
	m.SpecularColor[3] = alpha
	m.EmissionColor[3] = alpha
}
