package renderer

import (
	"errors"
	"testing"

	"Gopher3DSemantics/internal/scene"
	"Gopher3DSemantics/internal/semantics"

	"github.com/go-gl/mathgl/mgl32"
)

func testAttributes() []semantics.Variable {
	return []semantics.Variable{
		{Name: "a_position", Location: 0, Type: semantics.TypeVec4, Size: 1},
		{Name: "a_normal", Location: 1, Type: semantics.TypeVec3, Size: 1},
		{Name: "a_custom", Location: 2, Type: semantics.TypeVec3, Size: 1},
	}
}

func testUniforms() []semantics.Variable {
	return []semantics.Variable{
		{Name: "u_modelViewProjMatrix", Location: 0, Type: semantics.TypeMat4, Size: 1},
		{Name: "u_lightPosition[0]", Location: 1, Type: semantics.TypeVec4, Size: 4},
		{Name: "u_time", Location: 5, Type: semantics.TypeFloat, Size: 1},
	}
}

func boundProgram(d semantics.Delegate) *Program {
	p := NewProgram("", "")
	p.newWriter = func(uint32) semantics.UniformWriter { return nil }
	p.bind(d, testAttributes(), testUniforms())
	return p
}

// targetWriter records which program each write was addressed to.
type targetWriter struct {
	program uint32
	targets *[]uint32
}

func (w targetWriter) WriteFloats(*semantics.Uniform, []float32) {
	*w.targets = append(*w.targets, w.program)
}

func (w targetWriter) WriteInts(*semantics.Uniform, []int32) {
	*w.targets = append(*w.targets, w.program)
}

func TestProgramBindConfiguresAttributes(t *testing.T) {
	p := boundProgram(semantics.NewDefaultByVarName(semantics.DefaultConfig()))

	attrs := p.Attributes()
	if len(attrs) != 3 {
		t.Fatalf("Expected 3 attributes, got %d", len(attrs))
	}
	for _, a := range attrs {
		if !a.IsAttribute {
			t.Errorf("%s should be flagged as an attribute", a.Name)
		}
	}
	if attrs[0].Semantic != semantics.SemanticVertexLocations {
		t.Errorf("a_position configured as %v", attrs[0].Semantic)
	}
	if attrs[2].IsConfigured() {
		t.Error("a_custom should stay unconfigured")
	}
	if loc := p.AttributeLocation(semantics.SemanticVertexNormals, 0); loc != 1 {
		t.Errorf("Expected normals at location 1, got %d", loc)
	}
	if loc := p.AttributeLocation(semantics.SemanticVertexTexture, 0); loc != -1 {
		t.Errorf("Missing attribute should report -1, got %d", loc)
	}
}

func TestProgramBindConfiguresUniforms(t *testing.T) {
	p := boundProgram(semantics.NewDefaultByVarName(semantics.DefaultConfig()))

	if p.Uniforms().Len() != 3 {
		t.Fatalf("Expected 3 uniforms, got %d", p.Uniforms().Len())
	}
	if len(p.configured) != 2 {
		t.Errorf("Expected 2 configured uniforms, got %d", len(p.configured))
	}

	u, ok := p.Uniforms().Get("u_lightPosition")
	if !ok {
		t.Fatal("Array uniform should be reachable by its bare name")
	}
	if u.Semantic != semantics.SemanticLightPosition || u.Size != 4 {
		t.Errorf("Unexpected light uniform: %+v", u.Variable)
	}

	custom, ok := p.Uniforms().Get("u_time")
	if !ok || custom.IsConfigured() {
		t.Error("u_time should be present and unconfigured")
	}
}

func TestProgramPopulateBeforeLink(t *testing.T) {
	p := NewProgram("", "")
	populated, uploads := p.PopulateUniforms(NewDrawVisitor(nil, nil))
	if populated != 0 || uploads != 0 {
		t.Errorf("Unlinked program should populate nothing, got %d/%d", populated, uploads)
	}
}

func TestProgramPopulateSuppressesUnchangedUniforms(t *testing.T) {
	p := boundProgram(semantics.NewDefaultByVarName(semantics.DefaultConfig()))

	model := CreateCube()
	model.Material = &scene.Material{}
	dv := NewDrawVisitor(NewDefaultCamera(800, 600), []*scene.Light{scene.NewPointLight("key", mgl32.Vec3{1, 2, 3})})

	dv.BeginFrame()
	dv.Visit(model)
	populated, uploads := p.PopulateUniforms(dv)
	if populated != 2 || uploads != 2 {
		t.Fatalf("First frame: expected 2 populated and 2 uploads, got %d/%d", populated, uploads)
	}

	populated, uploads = p.PopulateUniforms(dv)
	if populated != 2 || uploads != 0 {
		t.Errorf("Unchanged frame: expected 2 populated and 0 uploads, got %d/%d", populated, uploads)
	}

	model.SetPosition(0, 1, 0)
	dv.Visit(model)
	populated, uploads = p.PopulateUniforms(dv)
	if populated != 2 || uploads != 1 {
		t.Errorf("Moved model: expected only the MVP upload, got %d/%d", populated, uploads)
	}

	u, _ := p.Uniforms().Get("u_lightPosition")
	want := []float32{1, 2, 3, 1, 0, 0, 1, 0}
	for i, v := range want {
		if u.Floats()[i] != v {
			t.Fatalf("Light positions %v, want prefix %v", u.Floats(), want)
		}
	}
}

func TestProgramChainOverridesDefaults(t *testing.T) {
	app := semantics.NewByVarName()
	app.Map("u_time", semantics.SemanticAppBase)
	app.Map("u_modelViewProjMatrix", semantics.SemanticProjMatrix)

	defaults := semantics.NewDefaultByVarName(semantics.DefaultConfig())
	p := boundProgram(semantics.Chain{app, defaults})

	mvp, _ := p.Uniforms().Get("u_modelViewProjMatrix")
	if mvp.Semantic != semantics.SemanticProjMatrix {
		t.Errorf("Application mapping should win, got %v", mvp.Semantic)
	}

	dv := NewDrawVisitor(NewDefaultCamera(800, 600), nil)
	dv.BeginFrame()
	dv.Visit(CreateCube())
	populated, _ := p.PopulateUniforms(dv)
	if populated != 2 {
		t.Errorf("App semantic without a populating delegate should not count, got %d populated", populated)
	}
	if len(p.configured) != 3 {
		t.Errorf("Expected 3 configured uniforms, got %d", len(p.configured))
	}
}

func TestProgramCustomUniforms(t *testing.T) {
	p := boundProgram(semantics.NewDefaultByVarName(semantics.DefaultConfig()))
	cache := p.Uniforms()

	cache.SetFloat("u_time", 1.5)
	cache.SetFloat("u_time", 1.5)
	u, _ := cache.Get("u_time")
	if u.WriteCount() != 1 {
		t.Errorf("Repeated value should be written once, got %d writes", u.WriteCount())
	}

	cache.SetFloat("u_time", 2)
	if u.WriteCount() != 2 {
		t.Errorf("Changed value should be written, got %d writes", u.WriteCount())
	}

	cache.SetFloat("u_missing", 1)
	cache.SetInt("u_missing", 1)
	cache.SetVec3("u_missing", 1, 2, 3)
}

func TestProgramDeleteResetsState(t *testing.T) {
	p := boundProgram(semantics.NewDefaultByVarName(semantics.DefaultConfig()))
	p.Delete()

	if p.Uniforms().Len() != 0 || len(p.Attributes()) != 0 {
		t.Error("Delete should drop introspected variables")
	}
	populated, uploads := p.PopulateUniforms(NewDrawVisitor(nil, nil))
	if populated != 0 || uploads != 0 {
		t.Error("Deleted program should populate nothing")
	}
}

func TestProgramUniformsWriteToOwnProgram(t *testing.T) {
	var targets []uint32
	p := NewProgram("", "")
	p.newWriter = func(program uint32) semantics.UniformWriter {
		return targetWriter{program: program, targets: &targets}
	}

	p.ID = 7
	p.bind(semantics.NewDefaultByVarName(semantics.DefaultConfig()), testAttributes(), testUniforms())
	p.Uniforms().SetFloat("u_time", 1)

	p.ID = 9
	p.bind(semantics.NewDefaultByVarName(semantics.DefaultConfig()), testAttributes(), testUniforms())
	p.Uniforms().SetFloat("u_time", 1)

	if len(targets) != 2 || targets[0] != 7 || targets[1] != 9 {
		t.Errorf("Writes should target the program that owns the uniform, got %v", targets)
	}
}

func TestGLWriterTargetsProgram(t *testing.T) {
	w, ok := newGLWriter(5).(glWriter)
	if !ok || w.program != 5 {
		t.Errorf("Expected a writer for program 5, got %+v", w)
	}
}

func TestProgramForRemembersLinkFailure(t *testing.T) {
	rend := &OpenGLRenderer{}
	m := CreateCube()
	m.Program = NewProgram("", "")
	m.Program.linkErr = ErrLink

	for i := 0; i < 3; i++ {
		p, err := rend.programFor(m)
		if p != nil || !errors.Is(err, ErrLink) {
			t.Fatalf("Failed program should not be relinked, got %v, %v", p, err)
		}
	}

	m.Program.Delete()
	if m.Program.LinkError() != nil {
		t.Error("Delete should clear the link error")
	}
}
