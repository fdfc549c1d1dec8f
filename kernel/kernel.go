// Package kernel owns a single native window, its accelerated renderer and
// OpenGL context, and the frame loop that drives a host application. The
// host registers one callable per role (events, update, render, pre-loop)
// and calls Start; the loop runs until one of the handlers calls Stop.
package kernel

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/veandco/go-sdl2/sdl"
)

const (
	contextMajorVersion = 4
	contextMinorVersion = 3
)

// Kernel controls one window with an OpenGL context. Construction stores
// identity only; native resources exist between a successful Start and
// Close. A Kernel is single-shot: Start may run at most once.
type Kernel struct {
	title  string
	width  int
	height int

	drv driver

	eventHandler    func()
	rendererHandler func()
	updateHandler   func()
	preLoopStep     func()

	times FrameTimes

	running bool
	started bool
	closed  bool
}

// New creates a kernel for a window of the given title and size in pixels.
// No native calls happen here.
func New(title string, width, height int) *Kernel {
	return newWithDriver(title, width, height, &sdlDriver{})
}

func newWithDriver(title string, width, height int, drv driver) *Kernel {
	k := &Kernel{
		title:  title,
		width:  width,
		height: height,
		drv:    drv,
	}

	return registerWithGC(k)
}

// Title returns the window title.
func (k *Kernel) Title() string {
	return k.title
}

// Width returns the window width in pixels.
func (k *Kernel) Width() int {
	return k.width
}

// Height returns the window height in pixels.
func (k *Kernel) Height() int {
	return k.height
}

// Window exposes the native window to collaborators that need it, e.g. a
// camera querying the drawable size. Nil before Start.
func (k *Kernel) Window() *sdl.Window {
	return k.drv.Window()
}

// Times returns the frame statistics updated once per loop iteration.
func (k *Kernel) Times() *FrameTimes {
	return &k.times
}

// RegisterEventHandler stores the callable invoked first in every loop
// iteration. It is the sole place the host should poll and dispatch native
// events. A previous registration is overwritten.
func (k *Kernel) RegisterEventHandler(fn func()) error {
	if fn == nil {
		return errors.New("event handler must not be nil")
	}

	k.eventHandler = fn
	return nil
}

// RegisterRendererHandler stores the callable that issues draw calls. It
// runs inside the render step, between the frame clear and the buffer swap.
func (k *Kernel) RegisterRendererHandler(fn func()) error {
	if fn == nil {
		return errors.New("renderer handler must not be nil")
	}

	k.rendererHandler = fn
	return nil
}

// RegisterUpdateHandler stores the callable that advances host state. It
// runs after the event handler, so it always sees input already processed
// for the current iteration.
func (k *Kernel) RegisterUpdateHandler(fn func()) error {
	if fn == nil {
		return errors.New("update handler must not be nil")
	}

	k.updateHandler = fn
	return nil
}

// RegisterPreLoopStep stores the callable invoked exactly once, after
// initialization succeeds and before the first event-handler call.
func (k *Kernel) RegisterPreLoopStep(fn func()) error {
	if fn == nil {
		return errors.New("pre-loop step must not be nil")
	}

	k.preLoopStep = fn
	return nil
}

// Start brings up the native subsystems in order, runs the pre-loop step
// once and then blocks in the frame loop until Stop is called from inside
// a handler. All four handler slots must be registered before Start.
//
// Any fatal initialization failure unwinds already-created native state and
// returns before the first loop iteration. Failures raised inside handlers
// are not caught here; they propagate to the caller's boundary.
func (k *Kernel) Start() error {
	if err := k.checkHandlers(); err != nil {
		return err
	}

	if k.started {
		return errors.New("kernel already started; Start is single-shot")
	}

	k.started = true

	if err := k.initialize(); err != nil {
		return err
	}

	slog.Info("Frame loop started", slog.String("title", k.title))

	k.running = true

	k.preLoopStep()
	for k.running {
		k.times.Tick()

		k.eventHandler()
		k.updateHandler()
		k.render()
	}

	slog.Info("Frame loop stopped",
		slog.String("title", k.title),
		slog.Uint64("frames", k.times.FrameCount),
	)

	return nil
}

// Stop requests the loop to end. The current iteration always completes;
// the next one never begins. Meaningful only when called from inside one of
// the registered handlers while the loop runs.
func (k *Kernel) Stop() {
	k.running = false
}

// Close releases every native resource the kernel owns, strictly in
// reverse-creation order: context, renderer, window, then the image and
// platform subsystems. Safe to call at any time, including before Start
// (no-op) and more than once.
func (k *Kernel) Close() {
	if k.closed {
		return
	}

	k.closed = true
	clearFinalizer(k)

	slog.Debug("Closing kernel", slog.String("title", k.title))

	k.drv.DestroyContext()
	k.drv.DestroyRenderer()
	k.drv.DestroyWindow()
	k.drv.QuitImageSubsystem()
	k.drv.QuitPlatform()
}

func (k *Kernel) checkHandlers() error {
	switch {
	case k.eventHandler == nil:
		return errors.New("no event handler registered")
	case k.rendererHandler == nil:
		return errors.New("no renderer handler registered")
	case k.updateHandler == nil:
		return errors.New("no update handler registered")
	case k.preLoopStep == nil:
		return errors.New("no pre-loop step registered")
	}

	return nil
}

// initialize runs the ordered startup sequence. Each step depends on native
// handles created by an earlier one, so the order is load-bearing: platform
// first, context attributes before any context exists, window before
// renderer and context, a live context before function-pointer loading.
func (k *Kernel) initialize() (err error) {
	// a partial triple must never outlive a failed Start
	defer func() {
		if err != nil {
			k.drv.DestroyContext()
			k.drv.DestroyRenderer()
			k.drv.DestroyWindow()
			k.drv.QuitPlatform()
		}
	}()

	if err := k.drv.InitPlatform(); err != nil {
		return fmt.Errorf("initialize platform subsystem: %w", err)
	}

	k.drv.ConfigureContext(contextMajorVersion, contextMinorVersion)

	if err := k.drv.CreateWindow(k.title, k.width, k.height); err != nil {
		return fmt.Errorf("create window: %w", err)
	}

	if err := k.drv.CreateRenderer(); err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}

	if err := k.drv.CreateContext(); err != nil {
		return fmt.Errorf("create gl context: %w", err)
	}

	if err := k.drv.InitGraphics(); err != nil {
		return fmt.Errorf("initialize gl: %w", err)
	}

	// vsync is a quality-of-service feature, not a correctness requirement
	if err := k.drv.EnableVSync(); err != nil {
		slog.Warn("Unable to enable vsync", slog.Any("error", err))
	}

	if err := k.drv.InitImageSubsystem(); err != nil {
		return fmt.Errorf("initialize image subsystem: %w", err)
	}

	return nil
}

// render clears the frame, lets the renderer handler issue its draw calls
// and presents the result.
func (k *Kernel) render() {
	k.drv.ClearFrame()
	k.rendererHandler()
	k.drv.Present()
}
