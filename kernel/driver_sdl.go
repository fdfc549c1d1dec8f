package kernel

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

// sdlDriver binds the driver seam to SDL2 plus an OpenGL core context.
type sdlDriver struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	context  sdl.GLContext

	platformUp bool
	contextUp  bool
	imageUp    bool
}

func (d *sdlDriver) InitPlatform() error {
	if err := sdl.Init(sdl.INIT_EVERYTHING); err != nil {
		return err
	}

	d.platformUp = true

	slog.Debug("SDL initialized")
	return nil
}

// ConfigureContext requests an OpenGL core profile of the given version.
// Attribute requests are hints consumed by the window and context creation
// that follows; they cannot fail on their own.
func (d *sdlDriver) ConfigureContext(major, minor int) {
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, major)
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, minor)
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
}

func (d *sdlDriver) CreateWindow(title string, width, height int) error {
	window, err := sdl.CreateWindow(
		title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(width),
		int32(height),
		sdl.WINDOW_OPENGL,
	)
	if err != nil {
		return err
	}

	d.window = window

	slog.Debug("Window created",
		slog.String("title", title),
		slog.Int("width", width),
		slog.Int("height", height),
	)

	return nil
}

func (d *sdlDriver) CreateRenderer() error {
	renderer, err := sdl.CreateRenderer(d.window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return err
	}

	d.renderer = renderer

	slog.Debug("Renderer created")
	return nil
}

func (d *sdlDriver) CreateContext() error {
	context, err := d.window.GLCreateContext()
	if err != nil {
		return err
	}

	d.context = context
	d.contextUp = true

	return nil
}

// InitGraphics loads the OpenGL function pointers against the live context
// and applies the initial pipeline state: smoothing hint, clear color and a
// viewport sized to the window's framebuffer.
func (d *sdlDriver) InitGraphics() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("load gl function pointers: %w", err)
	}

	slog.Debug("OpenGL initialized",
		slog.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
	)

	gl.Hint(gl.LINE_SMOOTH_HINT, gl.NICEST)
	gl.ClearColor(0, 0, 0, 0)

	fbWidth, fbHeight := d.window.GLGetDrawableSize()
	gl.Viewport(0, 0, fbWidth, fbHeight)

	return nil
}

func (d *sdlDriver) EnableVSync() error {
	return sdl.GLSetSwapInterval(1)
}

func (d *sdlDriver) InitImageSubsystem() error {
	if err := img.Init(img.INIT_JPG | img.INIT_PNG | img.INIT_TIF); err != nil {
		return err
	}

	d.imageUp = true

	slog.Debug("Image codecs initialized")
	return nil
}

func (d *sdlDriver) ClearFrame() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (d *sdlDriver) Present() {
	gl.Flush()
	d.window.GLSwap()
}

func (d *sdlDriver) DestroyContext() {
	if !d.contextUp {
		return
	}

	sdl.GLDeleteContext(d.context)
	d.contextUp = false
}

func (d *sdlDriver) DestroyRenderer() {
	if d.renderer == nil {
		return
	}

	_ = d.renderer.Destroy()
	d.renderer = nil
}

func (d *sdlDriver) DestroyWindow() {
	if d.window == nil {
		return
	}

	_ = d.window.Destroy()
	d.window = nil
}

func (d *sdlDriver) QuitImageSubsystem() {
	if !d.imageUp {
		return
	}

	img.Quit()
	d.imageUp = false
}

func (d *sdlDriver) QuitPlatform() {
	if !d.platformUp {
		return
	}

	sdl.Quit()
	d.platformUp = false
}

func (d *sdlDriver) Window() *sdl.Window {
	return d.window
}
