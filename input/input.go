// Package input tracks keyboard and mouse state across frame-loop
// iterations. It is collaborator-side code: the kernel never touches it,
// the host feeds it from inside its event handler.
package input

import (
	"log/slog"

	"github.com/veandco/go-sdl2/sdl"
)

// Button identifies a mouse button, numbered as the platform numbers them
// (1 = left, 2 = middle, 3 = right).
type Button = uint8

type Keys struct {
	// the keys that are currently held down
	Pressed map[sdl.Keycode]bool

	// keys that went down after the last call to NextTick
	JustPressed map[sdl.Keycode]bool

	// keys that went up after the last call to NextTick
	JustReleased map[sdl.Keycode]bool
}

func (k *Keys) press(key sdl.Keycode) {
	slog.Debug("Key pressed", slog.String("key", sdl.GetKeyName(key)))

	setTrue(&k.Pressed, key)
	setTrue(&k.JustPressed, key)
}

func (k *Keys) release(key sdl.Keycode) {
	setFalse(&k.Pressed, key)
	setTrue(&k.JustReleased, key)
}

func (k *Keys) nextTick() {
	clear(k.JustPressed)
	clear(k.JustReleased)
}

type Mouse struct {
	X, Y int32

	// motion accumulated since the last call to NextTick
	DeltaX, DeltaY int32

	Pressed      map[Button]bool
	JustPressed  map[Button]bool
	JustReleased map[Button]bool
}

func (m *Mouse) press(button Button) {
	setTrue(&m.Pressed, button)
	setTrue(&m.JustPressed, button)
}

func (m *Mouse) release(button Button) {
	setFalse(&m.Pressed, button)
	setTrue(&m.JustReleased, button)
}

func (m *Mouse) motion(x, y, dx, dy int32) {
	m.X = x
	m.Y = y

	m.DeltaX += dx
	m.DeltaY += dy
}

func (m *Mouse) nextTick() {
	clear(m.JustPressed)
	clear(m.JustReleased)

	m.DeltaX = 0
	m.DeltaY = 0
}

// State aggregates keyboard and mouse state for one window.
type State struct {
	Keys  Keys
	Mouse Mouse
}

// NextTick opens a new frame: just-pressed/just-released sets are cleared
// and mouse deltas reset to zero. Held state carries over.
func (s *State) NextTick() {
	s.Keys.nextTick()
	s.Mouse.nextTick()
}

// Handle folds one event into the state. Reports whether the event was a
// quit request, so the caller can decide to stop the loop. Key repeats are
// ignored; held keys stay in Pressed until released.
func (s *State) Handle(event sdl.Event) (quit bool) {
	switch ev := event.(type) {
	case *sdl.QuitEvent:
		return true

	case *sdl.KeyboardEvent:
		if ev.Repeat > 0 {
			return false
		}

		switch ev.Type {
		case sdl.KEYDOWN:
			s.Keys.press(ev.Keysym.Sym)
		case sdl.KEYUP:
			s.Keys.release(ev.Keysym.Sym)
		}

	case *sdl.MouseMotionEvent:
		s.Mouse.motion(ev.X, ev.Y, ev.XRel, ev.YRel)

	case *sdl.MouseButtonEvent:
		switch ev.Type {
		case sdl.MOUSEBUTTONDOWN:
			s.Mouse.press(ev.Button)
		case sdl.MOUSEBUTTONUP:
			s.Mouse.release(ev.Button)
		}
	}

	return false
}

// Poll opens a new frame and drains the platform event queue into the
// state. Call exactly once per iteration, from the event handler. Reports
// whether a quit was requested.
func (s *State) Poll() (quit bool) {
	s.NextTick()

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if s.Handle(event) {
			quit = true
		}
	}

	return quit
}

func setTrue[K comparable](m *map[K]bool, key K) {
	if *m == nil {
		*m = map[K]bool{}
	}

	(*m)[key] = true
}

func setFalse[K comparable](m *map[K]bool, key K) {
	if *m == nil {
		*m = map[K]bool{}
	}

	(*m)[key] = false
}
