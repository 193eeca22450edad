package renderer

import (
	"Gopher3DSemantics/internal/semantics"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// glWriter submits uniform values to one program, whether or not it is the
// program currently in use.
type glWriter struct {
	program uint32
}

func newGLWriter(program uint32) semantics.UniformWriter {
	return glWriter{program: program}
}

func (w glWriter) WriteFloats(u *semantics.Uniform, values []float32) {
	if u.Location < 0 || len(values) == 0 {
		return
	}
	count := int32(u.Size)
	switch u.Type {
	case semantics.TypeFloat:
		gl.ProgramUniform1fv(w.program, u.Location, count, &values[0])
	case semantics.TypeVec2:
		gl.ProgramUniform2fv(w.program, u.Location, count, &values[0])
	case semantics.TypeVec3:
		gl.ProgramUniform3fv(w.program, u.Location, count, &values[0])
	case semantics.TypeVec4:
		gl.ProgramUniform4fv(w.program, u.Location, count, &values[0])
	case semantics.TypeMat2:
		gl.ProgramUniformMatrix2fv(w.program, u.Location, count, false, &values[0])
	case semantics.TypeMat3:
		gl.ProgramUniformMatrix3fv(w.program, u.Location, count, false, &values[0])
	case semantics.TypeMat4:
		gl.ProgramUniformMatrix4fv(w.program, u.Location, count, false, &values[0])
	}
}

func (w glWriter) WriteInts(u *semantics.Uniform, values []int32) {
	if u.Location < 0 || len(values) == 0 {
		return
	}
	count := int32(u.Size)
	switch u.Type {
	case semantics.TypeInt, semantics.TypeBool, semantics.TypeSampler2D, semantics.TypeSamplerCube:
		gl.ProgramUniform1iv(w.program, u.Location, count, &values[0])
	case semantics.TypeIVec2:
		gl.ProgramUniform2iv(w.program, u.Location, count, &values[0])
	case semantics.TypeIVec3:
		gl.ProgramUniform3iv(w.program, u.Location, count, &values[0])
	case semantics.TypeIVec4:
		gl.ProgramUniform4iv(w.program, u.Location, count, &values[0])
	}
}

// varTypeFromGL maps a GL active variable type onto the types uniforms can hold.
func varTypeFromGL(glType uint32) (semantics.VarType, bool) {
	switch glType {
	case gl.FLOAT:
		return semantics.TypeFloat, true
	case gl.FLOAT_VEC2:
		return semantics.TypeVec2, true
	case gl.FLOAT_VEC3:
		return semantics.TypeVec3, true
	case gl.FLOAT_VEC4:
		return semantics.TypeVec4, true
	case gl.INT:
		return semantics.TypeInt, true
	case gl.INT_VEC2:
		return semantics.TypeIVec2, true
	case gl.INT_VEC3:
		return semantics.TypeIVec3, true
	case gl.INT_VEC4:
		return semantics.TypeIVec4, true
	case gl.BOOL:
		return semantics.TypeBool, true
	case gl.FLOAT_MAT2:
		return semantics.TypeMat2, true
	case gl.FLOAT_MAT3:
		return semantics.TypeMat3, true
	case gl.FLOAT_MAT4:
		return semantics.TypeMat4, true
	case gl.SAMPLER_2D:
		return semantics.TypeSampler2D, true
	case gl.SAMPLER_CUBE:
		return semantics.TypeSamplerCube, true
	}
	return 0, false
}
