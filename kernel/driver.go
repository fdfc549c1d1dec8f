package kernel

import "github.com/veandco/go-sdl2/sdl"

// driver is the seam between the loop logic and the native windowing layer.
// The kernel owns ordering and lifecycle; the driver owns the raw calls.
// Destroy and Quit methods must tolerate being called for resources that
// were never created.
type driver interface {
	InitPlatform() error
	ConfigureContext(major, minor int)
	CreateWindow(title string, width, height int) error
	CreateRenderer() error
	CreateContext() error
	InitGraphics() error
	EnableVSync() error
	InitImageSubsystem() error

	ClearFrame()
	Present()

	DestroyContext()
	DestroyRenderer()
	DestroyWindow()
	QuitImageSubsystem()
	QuitPlatform()

	Window() *sdl.Window
}
