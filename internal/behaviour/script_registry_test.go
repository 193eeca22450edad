package behaviour

import (
	"testing"

	"Gopher3DSemantics/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

func TestBuiltinScriptsRegistered(t *testing.T) {
	names := GetAvailableScripts()

	found := map[string]bool{}
	for _, n := range names {
		found[n] = true
	}
	if !found["flicker"] || !found["orbit"] {
		t.Errorf("Expected flicker and orbit scripts, got %v", names)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("Scripts should be sorted, got %v", names)
		}
	}
}

func TestCreateScript(t *testing.T) {
	lights := []*scene.Light{
		scene.NewPointLight("key", mgl32.Vec3{}),
		scene.NewPointLight("fill", mgl32.Vec3{}),
	}

	b := CreateScript("flicker", Scene{Lights: lights})
	f, ok := b.(*LightFlicker)
	if !ok {
		t.Fatalf("Expected a LightFlicker, got %T", b)
	}
	if len(f.Lights) != 1 || f.Lights[0] != lights[1] {
		t.Error("The first light should stay steady")
	}

	if CreateScript("orbit", Scene{}) != nil {
		t.Error("Orbit needs a camera")
	}
	if CreateScript("orbit", Scene{Camera: &recordingOrbiter{}}) == nil {
		t.Error("Orbit with a camera should be created")
	}
	if CreateScript("missing", Scene{}) != nil {
		t.Error("Unknown script should return nil")
	}
}

func TestRegisterScript(t *testing.T) {
	RegisterScript("test-mock", func(Scene) Behaviour { return &MockBehaviour{} })
	defer delete(scriptRegistry, "test-mock")

	if _, ok := CreateScript("test-mock", Scene{}).(*MockBehaviour); !ok {
		t.Error("Registered script should be constructible")
	}
}
