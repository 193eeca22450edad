package semantics

import (
	"slices"

	"github.com/go-gl/mathgl/mgl32"
)

// UniformWriter submits uniform values to the graphics state. values always
// holds Size elements of Type.Components() scalars each.
type UniformWriter interface {
	WriteFloats(u *Uniform, values []float32)
	WriteInts(u *Uniform, values []int32)
}

// Uniform is a program uniform together with the value last written to the GPU.
//
// Setters stage a value per array element. Update then compares the staged
// value with the cached one and only calls the writer when they differ, so
// the number of GPU writes tracks the number of changed uniforms.
type Uniform struct {
	Variable

	writer UniformWriter

	floats     []float32
	ints       []int32
	lastFloats []float32
	lastInts   []int32
	written    bool
	writes     int
}

// NewUniform wraps v. A nil writer is allowed; values are then cached and
// counted but not submitted anywhere.
func NewUniform(v Variable, w UniformWriter) *Uniform {
	if v.Size < 1 {
		v.Size = 1
	}
	u := &Uniform{Variable: v, writer: w}
	n := v.Size * v.Type.Components()
	if v.Type.IsInteger() {
		u.ints = make([]int32, n)
		u.lastInts = make([]int32, n)
	} else {
		u.floats = make([]float32, n)
		u.lastFloats = make([]float32, n)
	}
	return u
}

func (u *Uniform) SetFloat(i int, v float32) {
	u.stage(i, []float32{v}, 0)
}

func (u *Uniform) SetVec2(i int, v mgl32.Vec2) {
	u.stage(i, v[:], 0)
}

// SetVec3 stages v. A vec4 uniform receives W = 1.
func (u *Uniform) SetVec3(i int, v mgl32.Vec3) {
	u.stage(i, v[:], 1)
}

func (u *Uniform) SetVec4(i int, v mgl32.Vec4) {
	u.stage(i, v[:], 0)
}

// SetMat4 stages m, keeping the upper-left corner for smaller matrix types.
func (u *Uniform) SetMat4(i int, m mgl32.Mat4) {
	switch u.Type {
	case TypeMat3:
		m3 := m.Mat3()
		u.stage(i, m3[:], 0)
	case TypeMat2:
		u.stage(i, []float32{m[0], m[1], m[4], m[5]}, 0)
	default:
		u.stage(i, m[:], 0)
	}
}

// SetMat3 stages m, widening to a homogeneous matrix for mat4 uniforms.
func (u *Uniform) SetMat3(i int, m mgl32.Mat3) {
	if u.Type == TypeMat4 {
		m4 := m.Mat4()
		u.stage(i, m4[:], 0)
		return
	}
	u.stage(i, m[:], 0)
}

func (u *Uniform) SetInt(i int, v int32) {
	u.stageInts(i, []int32{v})
}

func (u *Uniform) SetBool(i int, v bool) {
	var iv int32
	if v {
		iv = 1
	}
	u.stageInts(i, []int32{iv})
}

func (u *Uniform) stage(i int, vals []float32, pad float32) {
	if i < 0 || i >= u.Size {
		return
	}
	n := u.Type.Components()
	off := i * n
	for c := 0; c < n; c++ {
		v := pad
		if c < len(vals) {
			v = vals[c]
		}
		if u.ints != nil {
			if u.Type == TypeBool && v != 0 {
				u.ints[off+c] = 1
			} else {
				u.ints[off+c] = int32(v)
			}
		} else {
			u.floats[off+c] = v
		}
	}
}

func (u *Uniform) stageInts(i int, vals []int32) {
	if i < 0 || i >= u.Size {
		return
	}
	n := u.Type.Components()
	off := i * n
	for c := 0; c < n; c++ {
		var v int32
		if c < len(vals) {
			v = vals[c]
		}
		if u.ints != nil {
			if u.Type == TypeBool && v != 0 {
				v = 1
			}
			u.ints[off+c] = v
		} else {
			u.floats[off+c] = float32(v)
		}
	}
}

// IsDirty reports whether the staged value differs from the last written one.
func (u *Uniform) IsDirty() bool {
	if !u.written {
		return true
	}
	if u.ints != nil {
		return !slices.Equal(u.ints, u.lastInts)
	}
	return !slices.Equal(u.floats, u.lastFloats)
}

// Update writes the staged value if it changed since the last write and
// reports whether a write happened.
func (u *Uniform) Update() bool {
	if !u.IsDirty() {
		return false
	}
	if u.ints != nil {
		copy(u.lastInts, u.ints)
		if u.writer != nil {
			u.writer.WriteInts(u, u.lastInts)
		}
	} else {
		copy(u.lastFloats, u.floats)
		if u.writer != nil {
			u.writer.WriteFloats(u, u.lastFloats)
		}
	}
	u.written = true
	u.writes++
	return true
}

// Invalidate forces the next Update to write, e.g. after the program was re-linked.
func (u *Uniform) Invalidate() {
	u.written = false
}

// Floats returns the staged float values, or nil for integer uniforms.
func (u *Uniform) Floats() []float32 { return u.floats }

// Ints returns the staged integer values, or nil for float uniforms.
func (u *Uniform) Ints() []int32 { return u.ints }

// WriteCount is the number of writes submitted so far.
func (u *Uniform) WriteCount() int { return u.writes }
