package kernel

import (
	"log/slog"
	"runtime"
)

// registerWithGC arranges for Close to run if a kernel is garbage collected
// without an explicit Close. The finalizer is a backstop only; hosts should
// still defer Close themselves so teardown happens at a predictable time.
func registerWithGC(k *Kernel) *Kernel {
	runtime.SetFinalizer(k, func(k *Kernel) {
		slog.Debug("Closing garbage collected kernel", slog.String("title", k.title))
		k.Close()
	})

	return k
}

func clearFinalizer(k *Kernel) {
	runtime.SetFinalizer(k, nil)
}
