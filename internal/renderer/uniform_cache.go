package renderer

import (
	"strings"

	"Gopher3DSemantics/internal/semantics"

	"github.com/go-gl/mathgl/mgl32"
)

// UniformCache is the name-keyed table of a program's active uniforms.
// Uniforms with a semantic are refreshed by the program every draw; the
// rest are custom uniforms set by name through SetFloat, SetVec3 and SetInt.
// Every setter goes through the uniform's change suppression.
type UniformCache struct {
	byName  map[string]*semantics.Uniform
	ordered []*semantics.Uniform
}

// NewUniformCache creates an empty table for a shader program
func NewUniformCache() *UniformCache {
	return &UniformCache{
		byName: make(map[string]*semantics.Uniform),
	}
}

// Add registers u under its reported name and, for arrays reported as
// "name[0]", under the bare name as well.
func (uc *UniformCache) Add(u *semantics.Uniform) {
	uc.byName[u.Name] = u
	if base, ok := strings.CutSuffix(u.Name, "[0]"); ok {
		if _, taken := uc.byName[base]; !taken {
			uc.byName[base] = u
		}
	}
	uc.ordered = append(uc.ordered, u)
}

// Get returns the uniform named name.
func (uc *UniformCache) Get(name string) (*semantics.Uniform, bool) {
	u, ok := uc.byName[name]
	return u, ok
}

// All returns the uniforms in link order.
func (uc *UniformCache) All() []*semantics.Uniform {
	return uc.ordered
}

func (uc *UniformCache) Len() int { return len(uc.ordered) }

// SetFloat sets a float uniform, ignoring names the program does not use
func (uc *UniformCache) SetFloat(name string, value float32) {
	if u, ok := uc.byName[name]; ok {
		u.SetFloat(0, value)
		u.Update()
	}
}

// SetVec3 sets a vec3 uniform, ignoring names the program does not use
func (uc *UniformCache) SetVec3(name string, x, y, z float32) {
	if u, ok := uc.byName[name]; ok {
		u.SetVec3(0, mgl32.Vec3{x, y, z})
		u.Update()
	}
}

// SetInt sets an int uniform, ignoring names the program does not use
func (uc *UniformCache) SetInt(name string, value int32) {
	if u, ok := uc.byName[name]; ok {
		u.SetInt(0, value)
		u.Update()
	}
}

// Invalidate forces every uniform to be written on its next update.
func (uc *UniformCache) Invalidate() {
	for _, u := range uc.ordered {
		u.Invalidate()
	}
}

// Clear clears the cache (call when shader program changes)
func (uc *UniformCache) Clear() {
	uc.byName = make(map[string]*semantics.Uniform)
	uc.ordered = nil
}
