package renderer

import (
	"errors"
	"fmt"

	"Gopher3DSemantics/internal/logger"
	"Gopher3DSemantics/internal/semantics"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"
)

var (
	ErrCompile = errors.New("shader compile failed")
	ErrLink    = errors.New("program link failed")
)

// Program is a GLSL program whose variables are bound to semantics.
//
// Link compiles and links the sources, lists the active attributes and
// uniforms, and asks the delegate to assign a semantic to each of them.
// PopulateUniforms then refreshes every configured uniform from the scene.
type Program struct {
	ID             uint32
	vertexSource   string
	fragmentSource string

	delegate   semantics.Delegate
	newWriter  func(program uint32) semantics.UniformWriter
	linkErr    error
	attributes []*semantics.Variable
	uniforms   *UniformCache
	configured []*semantics.Uniform
}

func NewProgram(vertexSource, fragmentSource string) *Program {
	return &Program{
		vertexSource:   vertexSource,
		fragmentSource: fragmentSource,
		newWriter:      newGLWriter,
	}
}

// Link builds the program and configures its variables through d.
// Variables d does not recognize stay unconfigured and are only reachable
// by name through Uniforms.
func (p *Program) Link(d semantics.Delegate) error {
	id, err := compileProgram(p.vertexSource, p.fragmentSource)
	if err != nil {
		p.linkErr = err
		return err
	}
	if p.ID != 0 {
		gl.DeleteProgram(p.ID)
	}
	p.ID = id
	p.linkErr = nil
	p.bind(d, activeAttributes(id), activeUniforms(id))
	logger.Log.Info("Linked shader program",
		zap.Uint32("program", id),
		zap.Int("attributes", len(p.attributes)),
		zap.Int("uniforms", p.uniforms.Len()),
		zap.Int("configured", len(p.configured)))
	return nil
}

// bind runs the configure pass over already introspected variables. Every
// uniform writes to p.ID, so custom uniforms can be set while another
// program is in use.
func (p *Program) bind(d semantics.Delegate, attrs, unifs []semantics.Variable) {
	p.delegate = d
	p.attributes = p.attributes[:0]
	p.uniforms = NewUniformCache()
	w := p.newWriter(p.ID)
	p.configured = p.configured[:0]

	for i := range attrs {
		v := attrs[i]
		v.IsAttribute = true
		if !d.ConfigureVariable(&v) {
			logger.Log.Debug("No semantic for attribute", zap.String("name", v.Name))
		}
		p.attributes = append(p.attributes, &v)
	}
	for _, v := range unifs {
		if !d.ConfigureVariable(&v) {
			logger.Log.Debug("No semantic for uniform", zap.String("name", v.Name))
		}
		u := semantics.NewUniform(v, w)
		p.uniforms.Add(u)
		if u.IsConfigured() {
			p.configured = append(p.configured, u)
		}
	}
}

// LinkError returns the error of the last failed Link, or nil.
func (p *Program) LinkError() error { return p.linkErr }

func (p *Program) Use() {
	gl.UseProgram(p.ID)
}

// PopulateUniforms refreshes every configured uniform from state. It returns
// how many uniforms resolved a value and how many of those were written.
func (p *Program) PopulateUniforms(state semantics.SceneState) (populated, uploads int) {
	if p.delegate == nil {
		return 0, 0
	}
	for _, u := range p.configured {
		before := u.WriteCount()
		if p.delegate.PopulateUniform(u, state) {
			populated++
		}
		uploads += u.WriteCount() - before
	}
	return populated, uploads
}

// Uniforms returns the name-keyed uniform table, or nil before Link.
func (p *Program) Uniforms() *UniformCache { return p.uniforms }

func (p *Program) Attributes() []*semantics.Variable { return p.attributes }

// AttributeLocation returns the location of the attribute carrying s, or -1.
func (p *Program) AttributeLocation(s semantics.Semantic, index uint) int32 {
	for _, a := range p.attributes {
		if a.Semantic == s && a.SemanticIndex == index {
			return a.Location
		}
	}
	return -1
}

func (p *Program) Delete() {
	if p.ID != 0 {
		gl.DeleteProgram(p.ID)
		p.ID = 0
	}
	p.delegate = nil
	p.linkErr = nil
	if p.uniforms != nil {
		p.uniforms.Clear()
	}
	p.configured = nil
	p.attributes = nil
}

func compileProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertShader, err := compileShader(vertexSource, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertShader)

	fragShader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertShader)
	gl.AttachShader(program, fragShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetProgramInfoLog(program, logLen, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("%w: %s", ErrLink, gl.GoStr(&log[0]))
	}
	return program, nil
}

func compileShader(source string, shaderType uint32, stage string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetShaderInfoLog(shader, logLen, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%w: %s shader: %s", ErrCompile, stage, gl.GoStr(&log[0]))
	}
	return shader, nil
}

func activeUniforms(program uint32) []semantics.Variable {
	var count, maxLen int32
	gl.GetProgramiv(program, gl.ACTIVE_UNIFORMS, &count)
	gl.GetProgramiv(program, gl.ACTIVE_UNIFORM_MAX_LENGTH, &maxLen)
	buf := make([]uint8, maxLen+1)

	vars := make([]semantics.Variable, 0, count)
	for i := uint32(0); i < uint32(count); i++ {
		var length, size int32
		var glType uint32
		gl.GetActiveUniform(program, i, int32(len(buf)), &length, &size, &glType, &buf[0])
		name := string(buf[:length])
		vt, ok := varTypeFromGL(glType)
		if !ok {
			logger.Log.Warn("Skipping uniform of unsupported type",
				zap.String("name", name), zap.Uint32("glType", glType))
			continue
		}
		loc := gl.GetUniformLocation(program, &buf[0])
		if loc < 0 {
			// Members of uniform blocks have no location.
			continue
		}
		vars = append(vars, semantics.Variable{Name: name, Location: loc, Type: vt, Size: int(size)})
	}
	return vars
}

func activeAttributes(program uint32) []semantics.Variable {
	var count, maxLen int32
	gl.GetProgramiv(program, gl.ACTIVE_ATTRIBUTES, &count)
	gl.GetProgramiv(program, gl.ACTIVE_ATTRIBUTE_MAX_LENGTH, &maxLen)
	buf := make([]uint8, maxLen+1)

	vars := make([]semantics.Variable, 0, count)
	for i := uint32(0); i < uint32(count); i++ {
		var length, size int32
		var glType uint32
		gl.GetActiveAttrib(program, i, int32(len(buf)), &length, &size, &glType, &buf[0])
		name := string(buf[:length])
		vt, ok := varTypeFromGL(glType)
		if !ok {
			logger.Log.Warn("Skipping attribute of unsupported type",
				zap.String("name", name), zap.Uint32("glType", glType))
			continue
		}
		loc := gl.GetAttribLocation(program, &buf[0])
		if loc < 0 {
			continue
		}
		vars = append(vars, semantics.Variable{Name: name, Location: loc, Type: vt, Size: int(size), IsAttribute: true})
	}
	return vars
}
