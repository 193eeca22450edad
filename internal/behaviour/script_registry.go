package behaviour

import (
	"sort"

	"Gopher3DSemantics/internal/scene"
)

// Scene holds what a registered behaviour may animate.
type Scene struct {
	Camera Orbiter
	Lights []*scene.Light
	Seed   int64
}

type ScriptConstructor func(s Scene) Behaviour

var scriptRegistry = make(map[string]ScriptConstructor)

func RegisterScript(name string, constructor ScriptConstructor) {
	scriptRegistry[name] = constructor
}

func GetAvailableScripts() []string {
	names := make([]string, 0, len(scriptRegistry))
	for name := range scriptRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CreateScript returns nil for names that were never registered.
func CreateScript(name string, s Scene) Behaviour {
	if constructor, exists := scriptRegistry[name]; exists {
		return constructor(s)
	}
	return nil
}

func init() {
	RegisterScript("flicker", func(s Scene) Behaviour {
		// The first light stays steady.
		if len(s.Lights) < 2 {
			return NewLightFlicker(s.Seed, s.Lights...)
		}
		return NewLightFlicker(s.Seed, s.Lights[1:]...)
	})
	RegisterScript("orbit", func(s Scene) Behaviour {
		if s.Camera == nil {
			return nil
		}
		return &Orbit{Subject: s.Camera, Radius: 5, Speed: 20}
	})
}
