package behaviour

import "github.com/go-gl/mathgl/mgl32"

// Orbiter is anything that can be placed on a circle around a target.
type Orbiter interface {
	Orbit(target mgl32.Vec3, radius, angle float32)
}

// Orbit moves an Orbiter around Target at Speed degrees per second.
type Orbit struct {
	Subject Orbiter
	Target  mgl32.Vec3
	Radius  float32
	Speed   float32

	angle float32
}

func (o *Orbit) Start() {
	o.Subject.Orbit(o.Target, o.Radius, o.angle)
}

func (o *Orbit) Update(deltaTime float64) {
	o.angle += o.Speed * float32(deltaTime)
	for o.angle >= 360 {
		o.angle -= 360
	}
	o.Subject.Orbit(o.Target, o.Radius, o.angle)
}

func (o *Orbit) Angle() float32 { return o.angle }
