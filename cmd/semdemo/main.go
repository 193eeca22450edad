package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"Gopher3DSemantics/internal/behaviour"
	"Gopher3DSemantics/internal/engine"
	"Gopher3DSemantics/internal/logger"
	"Gopher3DSemantics/internal/renderer"
	"Gopher3DSemantics/internal/scene"
	"Gopher3DSemantics/internal/semantics"

	"github.com/chewxy/math32"
	mgl "github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

var (
	mappingsPath = flag.String("mappings", "", "YAML or TOML file with application variable mappings")
	frames       = flag.Int("frames", 0, "stop after this many frames (0 runs until the window closes)")
	lightCount   = flag.Int("lights", 3, "number of point lights in the scene")
	behaviours   = flag.String("behaviours", "flicker,orbit", "comma separated scene behaviours")
	pfxBindings  = flag.String("pfx", "", "comma separated var=PFXSEMANTIC[@index] bindings")
	seed         = flag.Int64("seed", 1, "noise seed for the light flicker")
	debug        = flag.Bool("debug", false, "draw in wireframe")
	near         = flag.Float64("near", 0.1, "camera near clip distance")
	far          = flag.Float64("far", 1000, "camera far clip distance")
)

// foreignBinding names a program variable by a PVRShaman semantic.
type foreignBinding struct {
	varName string
	foreign string
	index   uint
}

func parseForeignBindings(s string) ([]foreignBinding, error) {
	var out []foreignBinding
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, foreign, ok := strings.Cut(part, "=")
		if !ok || name == "" || foreign == "" {
			return nil, fmt.Errorf("invalid binding %q, want var=SEMANTIC", part)
		}
		b := foreignBinding{varName: name, foreign: foreign}
		if sem, idx, ok := strings.Cut(foreign, "@"); ok {
			n, err := strconv.ParseUint(idx, 10, 8)
			if err != nil {
				return nil, fmt.Errorf("invalid index in binding %q: %w", part, err)
			}
			b.foreign, b.index = sem, uint(n)
		}
		out = append(out, b)
	}
	return out, nil
}

// buildAppRegistry collects the application mappings. It also applies the
// file's default mapping capacities, so it must run before the shared
// defaults are first used.
func buildAppRegistry(file *semantics.MappingFile, bindings []foreignBinding) *semantics.ByVarName {
	app := semantics.NewByVarName()
	vocab := semantics.NewPVRShamanVocabulary()
	if file != nil {
		cfg := file.Config(semantics.DefaultConfig())
		semantics.SetMaxDefaultMappingLights(cfg.MaxLights)
		semantics.SetMaxDefaultMappingTextureUnits(cfg.MaxTextureUnits)
		file.Apply(app)
		file.ApplyForeign(vocab)
	}
	for _, b := range bindings {
		if !semantics.MapForeign(app, b.varName, vocab, b.foreign, b.index) {
			logger.Log.Warn("Unknown PFX semantic", zap.String("variable", b.varName), zap.String("semantic", b.foreign))
		}
	}
	return app
}

// sceneLights places n point lights on a ring above the origin.
func sceneLights(n int) []*scene.Light {
	colors := []mgl.Vec3{{1, 1, 1}, {1, 0.6, 0.3}, {0.3, 0.5, 1}, {0.4, 1, 0.4}}
	lights := make([]*scene.Light, 0, n)
	for i := 0; i < n; i++ {
		angle := mgl.DegToRad(float32(i) * 360 / float32(n))
		pos := mgl.Vec3{3 * math32.Cos(angle), 2, 3 * math32.Sin(angle)}
		l := scene.NewPointLight(fmt.Sprintf("light%d", i), pos)
		l.SetColor(colors[i%len(colors)])
		l.Attenuation = mgl.Vec3{1, 0.05, 0.01}
		lights = append(lights, l)
	}
	return lights
}

func pointCloud() *renderer.Model {
	var vertices []mgl.Vec3
	for x := -2; x <= 2; x++ {
		for z := -2; z <= 2; z++ {
			vertices = append(vertices, mgl.Vec3{float32(x) * 0.5, -1, float32(z) * 0.5})
		}
	}
	m := renderer.CreateModel(vertices, nil, nil, nil)
	m.Name = "points"
	m.Program = renderer.InitPointShader()
	m.Mesh.IsDrawingPoints = true
	m.PureColor = mgl.Vec4{1, 1, 0.8, 1}
	m.Points.Size = 12
	m.Points.MaximumSize = 64
	m.Points.SpritesEnabled = true
	return m
}

func main() {
	flag.Parse()
	logger.Init()
	defer logger.Sync()

	var file *semantics.MappingFile
	if *mappingsPath != "" {
		var err error
		file, err = semantics.LoadMappingFile(*mappingsPath)
		if err != nil {
			logger.Log.Fatal("Could not load mapping file", zap.String("path", *mappingsPath), zap.Error(err))
		}
		logger.Log.Info("Loaded mapping file",
			zap.String("path", *mappingsPath),
			zap.Int("mappings", len(file.Mappings)),
			zap.Int("foreign", len(file.Foreign)))
	}
	bindings, err := parseForeignBindings(*pfxBindings)
	if err != nil {
		logger.Log.Fatal("Invalid -pfx flag", zap.Error(err))
	}

	var app semantics.Delegate
	if registry := buildAppRegistry(file, bindings); registry.Len() > 0 {
		app = registry
	}

	gopher := engine.NewGopher(app)
	gopher.Title = "Gopher3D semantics demo"
	gopher.MaxFrames = *frames
	gopher.SetDebugMode(*debug)
	gopher.SetFaceCulling(true)
	gopher.Camera = renderer.NewDefaultCamera(gopher.Width, gopher.Height)
	gopher.Camera.Position = mgl.Vec3{0, 2, 5}
	gopher.Camera.SetNear(float32(*near))
	gopher.Camera.SetFar(float32(*far))
	gopher.Camera.LookAt(mgl.Vec3{})

	for _, l := range sceneLights(*lightCount) {
		gopher.AddLight(l)
	}

	cube := renderer.CreateCube()
	cube.SetDiffuseColor(0.8, 0.3, 0.2)
	cube.SetSpecularColor(1, 1, 1)
	cube.SetShininess(32)
	cube.Mesh.ShouldNormalizeNormals = true
	gopher.AddModel(cube)

	unlit := renderer.CreateCube()
	unlit.Name = "unlit"
	unlit.SetPosition(-2, 0, 0)
	unlit.SetScale(0.5, 0.5, 0.5)
	unlit.PureColor = mgl.Vec4{0.2, 0.8, 0.9, 1}
	gopher.AddModel(unlit)

	gopher.AddModel(pointCloud())

	s := behaviour.Scene{Camera: gopher.Camera, Lights: gopher.Lights, Seed: *seed}
	for _, name := range strings.Split(*behaviours, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		b := behaviour.CreateScript(name, s)
		if b == nil {
			logger.Log.Warn("Unknown behaviour", zap.String("name", name), zap.Strings("available", behaviour.GetAvailableScripts()))
			continue
		}
		gopher.Behaviours.Add(b)
	}
	// Spin the lit cube so its matrices change while lights and material stay put.
	gopher.Behaviours.Add(&spin{model: cube, speed: 30})

	gopher.SetOnRenderCallback(func(frame int, deltaTime float64, stats renderer.FrameStats) {
		fields := []zap.Field{
			zap.Int("frame", frame),
			zap.Int("draws", stats.Draws),
			zap.Int("populated", stats.Populated),
			zap.Int("uploads", stats.Uploads),
		}
		if frame < 3 || frame%120 == 0 {
			logger.Log.Info("Frame uniforms", fields...)
		} else {
			logger.Log.Debug("Frame uniforms", fields...)
		}
	})

	if err := gopher.Render(100, 100); err != nil {
		logger.Log.Fatal("Render failed", zap.Error(err))
	}
	totals := gopher.Totals()
	logger.Log.Info("Demo finished",
		zap.Int("populated", totals.Populated),
		zap.Int("uploads", totals.Uploads),
		zap.Int("suppressed", totals.Populated-totals.Uploads))
}
