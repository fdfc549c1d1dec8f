package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"
)

func keyEvent(typ uint32, key sdl.Keycode, repeat uint8) *sdl.KeyboardEvent {
	return &sdl.KeyboardEvent{
		Type:   typ,
		Repeat: repeat,
		Keysym: sdl.Keysym{Sym: key},
	}
}

func TestKeyPressAndRelease(t *testing.T) {
	var s State

	quit := s.Handle(keyEvent(sdl.KEYDOWN, sdl.K_w, 0))
	assert.False(t, quit)
	assert.True(t, s.Keys.Pressed[sdl.K_w])
	assert.True(t, s.Keys.JustPressed[sdl.K_w])

	// held across ticks, but no longer "just" pressed
	s.NextTick()
	assert.True(t, s.Keys.Pressed[sdl.K_w])
	assert.False(t, s.Keys.JustPressed[sdl.K_w])

	s.Handle(keyEvent(sdl.KEYUP, sdl.K_w, 0))
	assert.False(t, s.Keys.Pressed[sdl.K_w])
	assert.True(t, s.Keys.JustReleased[sdl.K_w])

	s.NextTick()
	assert.False(t, s.Keys.JustReleased[sdl.K_w])
}

func TestKeyRepeatIgnored(t *testing.T) {
	var s State

	s.Handle(keyEvent(sdl.KEYDOWN, sdl.K_a, 0))
	s.NextTick()

	s.Handle(keyEvent(sdl.KEYDOWN, sdl.K_a, 1))
	assert.False(t, s.Keys.JustPressed[sdl.K_a])
	assert.True(t, s.Keys.Pressed[sdl.K_a])
}

func TestMouseMotionAccumulates(t *testing.T) {
	var s State

	s.Handle(&sdl.MouseMotionEvent{X: 10, Y: 20, XRel: 4, YRel: -2})
	s.Handle(&sdl.MouseMotionEvent{X: 13, Y: 19, XRel: 3, YRel: -1})

	assert.EqualValues(t, 13, s.Mouse.X)
	assert.EqualValues(t, 19, s.Mouse.Y)
	assert.EqualValues(t, 7, s.Mouse.DeltaX)
	assert.EqualValues(t, -3, s.Mouse.DeltaY)

	// deltas are per-tick, position is not
	s.NextTick()
	assert.Zero(t, s.Mouse.DeltaX)
	assert.Zero(t, s.Mouse.DeltaY)
	assert.EqualValues(t, 13, s.Mouse.X)
}

func TestMouseButtons(t *testing.T) {
	var s State

	s.Handle(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_LEFT})
	assert.True(t, s.Mouse.Pressed[sdl.BUTTON_LEFT])
	assert.True(t, s.Mouse.JustPressed[sdl.BUTTON_LEFT])

	s.NextTick()
	s.Handle(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONUP, Button: sdl.BUTTON_LEFT})
	assert.False(t, s.Mouse.Pressed[sdl.BUTTON_LEFT])
	assert.True(t, s.Mouse.JustReleased[sdl.BUTTON_LEFT])
}

func TestQuitEvent(t *testing.T) {
	var s State

	assert.True(t, s.Handle(&sdl.QuitEvent{}))
}
