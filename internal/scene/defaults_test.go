package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestFallbacksAreCopies(t *testing.T) {
	l := InertLight()
	l.Enabled = true
	l.DiffuseColor = mgl32.Vec4{1, 1, 1, 1}
	if InertLight().Enabled || InertLight().DiffuseColor != (mgl32.Vec4{0, 0, 0, 1}) {
		t.Error("Changing a returned inert light should not change the next one")
	}

	tu := InertTextureUnit()
	tu.Mode = TexModeModulate + 1
	if InertTextureUnit().Mode != TexModeModulate {
		t.Error("Changing a returned texture unit should not change the next one")
	}

	m := DefaultMaterial()
	m.SetOpacity(0.25)
	fresh := DefaultMaterial()
	if fresh.Opacity() != 1 {
		t.Error("Changing a returned material should not change the next one")
	}

	p := DefaultPointParams()
	p.Size = 10
	if DefaultPointParams().Size != 1 {
		t.Error("Changing returned point params should not change the next ones")
	}
}

func TestNewPointLightStartsFromInert(t *testing.T) {
	l := NewPointLight("key", mgl32.Vec3{1, 2, 3})
	if !l.Enabled || l.Position != (mgl32.Vec4{1, 2, 3, 1}) {
		t.Errorf("Unexpected point light %+v", l)
	}
	if l.SpotCutoffAngle != InertLight().SpotCutoffAngle {
		t.Error("Point light should keep the inert cutoff")
	}
}
