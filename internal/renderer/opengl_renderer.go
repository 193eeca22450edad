package renderer

import (
	"fmt"

	"Gopher3DSemantics/internal/logger"
	"Gopher3DSemantics/internal/scene"
	"Gopher3DSemantics/internal/semantics"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

type OpenGLRenderer struct {
	defaultProgram *Program
	Models         []*Model
	AmbientLight   mgl32.Vec4
	delegate       semantics.Delegate
	currentProgram uint32 // Track currently bound program to avoid unnecessary switches
}

func (rend *OpenGLRenderer) Init(width, height int32, delegate semantics.Delegate) error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("OpenGL initialization failed: %w", err)
	}
	if Debug {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	}
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.Viewport(0, 0, width, height)

	rend.delegate = delegate
	if rend.AmbientLight == (mgl32.Vec4{}) {
		rend.AmbientLight = mgl32.Vec4{0.2, 0.2, 0.2, 1}
	}
	rend.defaultProgram = InitShader()
	if err := rend.defaultProgram.Link(delegate); err != nil {
		return err
	}
	logger.Log.Info("OpenGL render initialized", zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))))
	return nil
}

// programFor returns the program m is drawn with, linking it on first use.
// A program that failed to link is not retried.
func (rend *OpenGLRenderer) programFor(m *Model) (*Program, error) {
	if m.Program == nil {
		return rend.defaultProgram, nil
	}
	if err := m.Program.LinkError(); err != nil {
		return nil, err
	}
	if m.Program.ID == 0 {
		if err := m.Program.Link(rend.delegate); err != nil {
			logger.Log.Error("Model program failed to link", zap.String("model", m.Name), zap.Error(err))
			return nil, err
		}
	}
	return m.Program, nil
}

// AddModel uploads the model's vertices and binds them to the attributes of
// its program by semantic.
func (rend *OpenGLRenderer) AddModel(model *Model) error {
	program, err := rend.programFor(model)
	if err != nil {
		return err
	}

	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(model.InterleavedData)*floatSize, gl.Ptr(model.InterleavedData), gl.STATIC_DRAW)

	var ebo uint32
	if len(model.Faces) > 0 {
		gl.GenBuffers(1, &ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(model.Faces)*indexSize, gl.Ptr(model.Faces), gl.STATIC_DRAW)
	}

	stride := int32(vertexStride * floatSize)
	bindAttribute(program, semantics.SemanticVertexLocations, 3, stride, 0)
	bindAttribute(program, semantics.SemanticVertexTexture, 2, stride, texCoordOffset*floatSize)
	if model.Mesh.HasNormals {
		bindAttribute(program, semantics.SemanticVertexNormals, 3, stride, normalOffset*floatSize)
	}
	gl.BindVertexArray(0)

	model.VAO = vao
	model.VBO = vbo
	model.EBO = ebo
	model.IsDirty = true
	model.UpdateModelMatrix()

	rend.Models = append(rend.Models, model)
	return nil
}

func bindAttribute(p *Program, s semantics.Semantic, size, stride int32, offset int) {
	loc := p.AttributeLocation(s, 0)
	if loc < 0 {
		return
	}
	gl.VertexAttribPointer(uint32(loc), size, gl.FLOAT, false, stride, gl.PtrOffset(offset))
	gl.EnableVertexAttribArray(uint32(loc))
}

func (rend *OpenGLRenderer) RemoveModel(model *Model) {
	for i, m := range rend.Models {
		if m == model {
			rend.Models = append(rend.Models[:i], rend.Models[i+1:]...)
			break
		}
	}
}

// Render draws every model, refreshing the configured uniforms of its
// program from the scene before each draw.
func (rend *OpenGLRenderer) Render(camera *Camera, lights []*scene.Light) FrameStats {
	gl.ClearColor(ClearColorR, ClearColorG, ClearColorB, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if DepthTestEnabled {
		gl.Enable(gl.DEPTH_TEST)
		gl.DepthMask(true)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
	if FaceCullingEnabled {
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.BACK)
		gl.FrontFace(gl.CCW)
	}

	visitor := NewDrawVisitor(camera, lights)
	visitor.AmbientLight = rend.AmbientLight
	visitor.BeginFrame()

	var stats FrameStats
	for _, model := range rend.Models {
		program, err := rend.programFor(model)
		if err != nil {
			continue
		}
		if rend.currentProgram != program.ID {
			program.Use()
			rend.currentProgram = program.ID
		}

		for i, tu := range model.TextureUnits {
			if i >= semantics.MaxTextureUnits {
				break
			}
			gl.ActiveTexture(gl.TEXTURE0 + uint32(i))
			gl.BindTexture(gl.TEXTURE_2D, tu.TextureID)
		}

		visitor.Visit(model)
		stats.add(program.PopulateUniforms(visitor))

		gl.BindVertexArray(model.VAO)
		switch {
		case model.Mesh.IsDrawingPoints:
			gl.DrawArrays(gl.POINTS, 0, int32(len(model.Vertices)/positionComponents))
		case len(model.Faces) > 0:
			gl.DrawElements(gl.TRIANGLES, int32(len(model.Faces)), gl.UNSIGNED_INT, nil)
		default:
			gl.DrawArrays(gl.TRIANGLES, 0, int32(len(model.Vertices)/positionComponents))
		}
		gl.BindVertexArray(0)
	}
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	return stats
}

func (rend *OpenGLRenderer) Cleanup() {
	for _, model := range rend.Models {
		gl.DeleteVertexArrays(1, &model.VAO)
		gl.DeleteBuffers(1, &model.VBO)
		if model.EBO != 0 {
			gl.DeleteBuffers(1, &model.EBO)
		}
		if model.Program != nil {
			model.Program.Delete()
		}
	}
	if rend.defaultProgram != nil {
		rend.defaultProgram.Delete()
	}
	rend.currentProgram = 0
}

// UpdateViewport updates the OpenGL viewport to match the current window size
func (rend *OpenGLRenderer) UpdateViewport(width, height int32) {
	gl.Viewport(0, 0, width, height)
}
