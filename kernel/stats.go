package kernel

import (
	"time"
)

// FrameTimes tracks timing of the frame loop. The kernel ticks it once at
// the top of every iteration; handlers read Delta for frame-rate
// independent updates.
type FrameTimes struct {
	FrameCount      uint64
	AverageDuration time.Duration
	MinDuration     time.Duration
	MaxDuration     time.Duration

	// Delta is the time elapsed since the previous frame. Zero during the
	// first frame.
	Delta time.Duration

	lastTime time.Time
}

// update folds a new frame duration into the rolling statistics. The
// average is an exponential window so a single slow frame does not dominate.
func (t *FrameTimes) update(d time.Duration) {
	const window = 64

	t.Delta = d
	t.MaxDuration = max(t.MaxDuration, d)

	if t.MinDuration == 0 {
		t.MinDuration = d
	} else {
		t.MinDuration = min(t.MinDuration, d)
	}

	if t.FrameCount < window/2 {
		t.AverageDuration = d
	} else {
		t.AverageDuration = ((window-1)*t.AverageDuration + d) / window
	}
}

// FPS estimates the current frame rate from the windowed average. Zero
// until at least one full frame has elapsed.
func (t *FrameTimes) FPS() float64 {
	if t.AverageDuration <= 0 {
		return 0
	}

	return 1.0 / t.AverageDuration.Seconds()
}

// Tick records the start of a new frame. Returns true once per 60 frames
// for hosts that want to log or refresh overlays at a coarse rate.
func (t *FrameTimes) Tick() bool {
	now := time.Now()

	if t.FrameCount > 0 {
		t.update(now.Sub(t.lastTime))
	}

	t.lastTime = now
	t.FrameCount += 1

	return t.FrameCount%60 == 0
}
