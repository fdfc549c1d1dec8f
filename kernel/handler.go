package kernel

// Handler bundles all four loop roles into one implementation. Hosts that
// keep their per-frame state in a single type implement this instead of
// registering four separate callables.
type Handler interface {
	// HandleEvents polls and dispatches native events. Called first in
	// every loop iteration.
	HandleEvents()

	// Update advances host state. Called after HandleEvents, so input for
	// the current iteration is already processed.
	Update()

	// Render issues draw calls. Called between the frame clear and the
	// buffer swap.
	Render()

	// PreLoop runs exactly once, after initialization and before the first
	// HandleEvents call.
	PreLoop()
}

// Attach registers all four of h's role methods, overwriting any previous
// registrations.
func (k *Kernel) Attach(h Handler) error {
	if err := k.RegisterEventHandler(h.HandleEvents); err != nil {
		return err
	}

	if err := k.RegisterUpdateHandler(h.Update); err != nil {
		return err
	}

	if err := k.RegisterRendererHandler(h.Render); err != nil {
		return err
	}

	return k.RegisterPreLoopStep(h.PreLoop)
}
