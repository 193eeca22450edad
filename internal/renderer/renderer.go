package renderer

import (
	"Gopher3DSemantics/internal/scene"
	"Gopher3DSemantics/internal/semantics"
)

var FaceCullingEnabled bool = false
var Debug bool = false
var DepthTestEnabled bool = true
var ClearColorR float32 = 0.0 // Background clear color red
var ClearColorG float32 = 0.0 // Background clear color green
var ClearColorB float32 = 0.0 // Background clear color blue

// FrameStats counts the uniform traffic of one rendered frame.
type FrameStats struct {
	Draws     int // models drawn
	Populated int // configured uniforms that resolved a scene value
	Uploads   int // uniforms actually written to the GPU
}

func (s *FrameStats) add(populated, uploads int) {
	s.Draws++
	s.Populated += populated
	s.Uploads += uploads
}

type Render interface {
	// Init links the default program through delegate.
	Init(width, height int32, delegate semantics.Delegate) error
	Render(camera *Camera, lights []*scene.Light) FrameStats
	AddModel(model *Model) error
	RemoveModel(model *Model)
	Cleanup()
}
