// Package camera provides a free-fly camera for hosts driving the kernel's
// update and render handlers.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Direction names a movement axis relative to the camera's orientation.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
	Up
	Down
)

const (
	defaultSpeed       = 2.5
	defaultSensitivity = 0.1

	// keep the pitch off the poles so the view matrix never degenerates
	pitchLimit = 89
)

// Camera is a yaw/pitch fly camera. Angles are in degrees; the derived
// basis vectors are recomputed on every orientation change.
type Camera struct {
	Position mgl32.Vec3
	WorldUp  mgl32.Vec3

	Yaw   float32
	Pitch float32

	// MovementSpeed scales Move in units per second.
	MovementSpeed float32

	// Sensitivity scales Look in degrees per unit of cursor motion.
	Sensitivity float32

	front mgl32.Vec3
	right mgl32.Vec3
	up    mgl32.Vec3
}

// New creates a camera at position looking along the orientation given by
// yaw and pitch in degrees. A yaw of -90 faces the negative z axis.
func New(position, worldUp mgl32.Vec3, yaw, pitch float32) *Camera {
	c := &Camera{
		Position:      position,
		WorldUp:       worldUp,
		Yaw:           yaw,
		Pitch:         pitch,
		MovementSpeed: defaultSpeed,
		Sensitivity:   defaultSensitivity,
	}

	c.updateVectors()
	return c
}

// Front returns the unit vector the camera looks along.
func (c *Camera) Front() mgl32.Vec3 {
	return c.front
}

// Move translates the camera along one of its axes by MovementSpeed scaled
// with the frame delta dt in seconds.
func (c *Camera) Move(dir Direction, dt float32) {
	step := c.MovementSpeed * dt

	switch dir {
	case Forward:
		c.Position = c.Position.Add(c.front.Mul(step))
	case Backward:
		c.Position = c.Position.Sub(c.front.Mul(step))
	case Left:
		c.Position = c.Position.Sub(c.right.Mul(step))
	case Right:
		c.Position = c.Position.Add(c.right.Mul(step))
	case Up:
		c.Position = c.Position.Add(c.WorldUp.Mul(step))
	case Down:
		c.Position = c.Position.Sub(c.WorldUp.Mul(step))
	}
}

// Look rotates the camera by a cursor motion of dx, dy pixels. Positive dy
// (cursor moving down) pitches the view down. Pitch is clamped short of
// straight up and straight down.
func (c *Camera) Look(dx, dy float32) {
	c.Yaw += dx * c.Sensitivity
	c.Pitch -= dy * c.Sensitivity

	c.Pitch = min(max(c.Pitch, -pitchLimit), pitchLimit)

	c.updateVectors()
}

// ViewMatrix returns the world-to-view transform for the current position
// and orientation.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.front), c.up)
}

func (c *Camera) updateVectors() {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))

	c.front = mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}.Normalize()

	c.right = c.front.Cross(c.WorldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}
