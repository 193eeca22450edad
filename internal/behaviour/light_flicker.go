package behaviour

import (
	"Gopher3DSemantics/internal/scene"

	perlin "github.com/aquilax/go-perlin"
	"github.com/go-gl/mathgl/mgl32"
)

// LightFlicker scales the diffuse color of some lights by Perlin noise.
// Lights not listed keep their color, so only part of the scene changes
// from frame to frame.
type LightFlicker struct {
	Lights    []*scene.Light
	Speed     float64 // noise units per second
	Amplitude float32 // 0 keeps the base color, 1 can go fully dark

	noise *perlin.Perlin
	seed  int64
	time  float64
	base  []mgl32.Vec4
}

func NewLightFlicker(seed int64, lights ...*scene.Light) *LightFlicker {
	return &LightFlicker{
		Lights:    lights,
		Speed:     1.5,
		Amplitude: 0.5,
		seed:      seed,
	}
}

func (f *LightFlicker) Start() {
	f.noise = perlin.NewPerlin(2, 2, 3, f.seed)
	f.base = f.base[:0]
	for _, l := range f.Lights {
		f.base = append(f.base, l.DiffuseColor)
	}
}

func (f *LightFlicker) Update(deltaTime float64) {
	f.time += deltaTime * f.Speed
	for i, l := range f.Lights {
		// Offset each light so they do not pulse in step.
		n := float32(f.noise.Noise1D(f.time + float64(i)*7.3))
		scale := mgl32.Clamp(1-f.Amplitude*(0.5-n), 0, 1)
		c := f.base[i]
		l.DiffuseColor = mgl32.Vec4{c[0] * scale, c[1] * scale, c[2] * scale, c[3]}
	}
}
