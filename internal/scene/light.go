package scene

import "github.com/go-gl/mathgl/mgl32"

type LightType int

const (
	STATIC_LIGHT LightType = iota
	DYNAMIC_LIGHT
)

// Light holds the full parameter set of one light as seen by shaders.
// Position is homogeneous: W = 0 marks a directional light.
type Light struct {
	// HOT DATA - read by the population pass on every draw
	Position        mgl32.Vec4
	AmbientColor    mgl32.Vec4
	DiffuseColor    mgl32.Vec4
	SpecularColor   mgl32.Vec4
	Attenuation     mgl32.Vec3 // constant, linear, quadratic
	SpotDirection   mgl32.Vec3
	SpotExponent    float32
	SpotCutoffAngle float32 // degrees, 180 disables the spot cone
	Enabled         bool

	// COLD DATA
	Name string
	Type LightType
}

// InertLight returns the state supplied for light slots a shader declares
// beyond the lights active in the scene.
func InertLight() Light { return inertLight }

var inertLight = Light{
	Position:        mgl32.Vec4{0, 0, 1, 0},
	AmbientColor:    mgl32.Vec4{0, 0, 0, 1},
	DiffuseColor:    mgl32.Vec4{0, 0, 0, 1},
	SpecularColor:   mgl32.Vec4{0, 0, 0, 1},
	Attenuation:     mgl32.Vec3{1, 0, 0},
	SpotDirection:   mgl32.Vec3{0, 0, -1},
	SpotExponent:    0,
	SpotCutoffAngle: 180,
	Enabled:         false,
}

// NewPointLight returns an enabled, white, unattenuated point light at pos.
func NewPointLight(name string, pos mgl32.Vec3) *Light {
	l := InertLight()
	l.Name = name
	l.Type = DYNAMIC_LIGHT
	l.Position = pos.Vec4(1)
	l.DiffuseColor = mgl32.Vec4{1, 1, 1, 1}
	l.SpecularColor = mgl32.Vec4{1, 1, 1, 1}
	l.Enabled = true
	return &l
}

// NewDirectionalLight returns an enabled white light shining along dir.
func NewDirectionalLight(name string, dir mgl32.Vec3) *Light {
	l := NewPointLight(name, mgl32.Vec3{})
	// The position of a directional light points towards the light source.
	l.Position = dir.Mul(-1).Vec4(0)
	return l
}

// IsDirectional reports whether the light sits at infinity.
func (l *Light) IsDirectional() bool {
	return l.Position.W() == 0
}

// SetColor sets the diffuse and specular colors together.
func (l *Light) SetColor(c mgl32.Vec3) {
	l.DiffuseColor = c.Vec4(1)
	l.SpecularColor = c.Vec4(1)
}
