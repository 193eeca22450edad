package engine

import (
	"fmt"
	"runtime"

	"Gopher3DSemantics/internal/behaviour"
	"Gopher3DSemantics/internal/logger"
	"Gopher3DSemantics/internal/renderer"
	"Gopher3DSemantics/internal/scene"
	"Gopher3DSemantics/internal/semantics"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

var lastX, lastY float64
var firstMouse bool = true

type Gopher struct {
	Width      int32
	Height     int32
	Title      string
	Lights     []*scene.Light
	Camera     *renderer.Camera
	Behaviours *behaviour.BehaviourManager
	// MaxFrames stops the loop after that many frames; 0 runs until the window closes.
	MaxFrames int

	delegate         semantics.Delegate
	rendererAPI      renderer.Render
	window           *glfw.Window
	pending          []*renderer.Model
	frame            int
	totals           renderer.FrameStats
	onRenderCallback func(frame int, deltaTime float64, stats renderer.FrameStats)
}

// NewGopher creates an engine whose programs are configured by app first and
// by the shared default mappings after it. app may be nil.
func NewGopher(app semantics.Delegate) *Gopher {
	logger.Init()
	logger.Log.Info("Gopher3D initializing...")
	return &Gopher{
		Title:       "Gopher3D",
		Width:       1024,
		Height:      768,
		Behaviours:  behaviour.NewBehaviourManager(),
		delegate:    linkDelegate(app),
		rendererAPI: &renderer.OpenGLRenderer{},
	}
}

func linkDelegate(app semantics.Delegate) semantics.Delegate {
	if app == nil {
		return semantics.SharedDefault()
	}
	return semantics.Chain{app, semantics.SharedDefault()}
}

// Delegate returns the delegate programs are linked with.
func (gopher *Gopher) Delegate() semantics.Delegate {
	return gopher.delegate
}

// Render opens the window, links the default program and runs the loop.
func (gopher *Gopher) Render(x, y int) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("could not initialize glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	var err error
	gopher.window, err = glfw.CreateWindow(int(gopher.Width), int(gopher.Height), gopher.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("could not create glfw window: %w", err)
	}
	gopher.window.MakeContextCurrent()
	gopher.window.SetPos(x, y)

	if err := gopher.rendererAPI.Init(gopher.Width, gopher.Height, gopher.delegate); err != nil {
		return err
	}
	if gopher.Camera == nil {
		gopher.Camera = renderer.NewDefaultCamera(gopher.Width, gopher.Height)
	}
	for _, m := range gopher.pending {
		gopher.addModel(m)
	}
	gopher.pending = nil

	gopher.window.SetCursorPosCallback(gopher.mouseCallback)
	gopher.RenderLoop()
	return nil
}

func (gopher *Gopher) RenderLoop() {
	lastTime := glfw.GetTime()
	for !gopher.window.ShouldClose() {
		currentTime := glfw.GetTime()
		deltaTime := currentTime - lastTime
		lastTime = currentTime

		width, height := gopher.window.GetFramebufferSize()
		if int32(width) != gopher.Width || int32(height) != gopher.Height {
			gopher.Width, gopher.Height = int32(width), int32(height)
			if ogl, ok := gopher.rendererAPI.(*renderer.OpenGLRenderer); ok {
				ogl.UpdateViewport(gopher.Width, gopher.Height)
			}
			if height > 0 {
				gopher.Camera.SetAspectRatio(float32(width) / float32(height))
			}
		}

		gopher.Behaviours.UpdateAll(deltaTime)
		stats := gopher.rendererAPI.Render(gopher.Camera, gopher.Lights)
		gopher.totals.Draws += stats.Draws
		gopher.totals.Populated += stats.Populated
		gopher.totals.Uploads += stats.Uploads

		if gopher.onRenderCallback != nil {
			gopher.onRenderCallback(gopher.frame, deltaTime, stats)
		}

		gopher.window.SwapBuffers()
		gopher.frame++
		glfw.PollEvents()

		if gopher.MaxFrames > 0 && gopher.frame >= gopher.MaxFrames {
			gopher.window.SetShouldClose(true)
		}
	}
	logger.Log.Info("Render loop finished",
		zap.Int("frames", gopher.frame),
		zap.Int("populated", gopher.totals.Populated),
		zap.Int("uploads", gopher.totals.Uploads))
	gopher.rendererAPI.Cleanup()
}

// SetOnRenderCallback sets a callback that will be called each frame after the 3D scene is rendered
func (gopher *Gopher) SetOnRenderCallback(callback func(frame int, deltaTime float64, stats renderer.FrameStats)) {
	gopher.onRenderCallback = callback
}

// Totals returns the uniform statistics accumulated over all frames so far.
func (gopher *Gopher) Totals() renderer.FrameStats {
	return gopher.totals
}

func (gopher *Gopher) SetDebugMode(debug bool) {
	renderer.Debug = debug
}

func (gopher *Gopher) SetFaceCulling(enabled bool) {
	renderer.FaceCullingEnabled = enabled
}

// AddModel queues model until the GL context exists, then uploads it.
func (gopher *Gopher) AddModel(model *renderer.Model) {
	if gopher.window == nil {
		gopher.pending = append(gopher.pending, model)
		return
	}
	gopher.addModel(model)
}

func (gopher *Gopher) addModel(model *renderer.Model) {
	if err := gopher.rendererAPI.AddModel(model); err != nil {
		logger.Log.Error("Could not add model", zap.String("model", model.Name), zap.Error(err))
	}
}

func (gopher *Gopher) RemoveModel(model *renderer.Model) {
	gopher.rendererAPI.RemoveModel(model)
}

func (gopher *Gopher) AddLight(light *scene.Light) {
	gopher.Lights = append(gopher.Lights, light)
}

// GetWindow returns the GLFW window
func (gopher *Gopher) GetWindow() *glfw.Window {
	return gopher.window
}

// GetRenderer returns the renderer API
func (gopher *Gopher) GetRenderer() renderer.Render {
	return gopher.rendererAPI
}

// Mouse callback function
func (gopher *Gopher) mouseCallback(w *glfw.Window, xpos, ypos float64) {
	// Rotate the camera only while the right mouse button is held
	if w.GetAttrib(glfw.Focused) == glfw.True && w.GetMouseButton(glfw.MouseButtonRight) == glfw.Press {
		if firstMouse {
			lastX = xpos
			lastY = ypos
			firstMouse = false
			return
		}

		xoffset := xpos - lastX
		yoffset := lastY - ypos // Reversed since y-coordinates go from bottom to top
		lastX = xpos
		lastY = ypos

		gopher.Camera.ProcessMouseMovement(float32(xoffset), float32(yoffset), true)
	} else {
		firstMouse = true
	}
}
