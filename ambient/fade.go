package ambient

import (
	"math"
	"time"
)

// Easing maps linear progress in [0, 1] to eased progress in [0, 1]. Both
// curves here are monotonic, so fades never overshoot their target.
type Easing func(t float64) float64

func EaseInOutCubic(t float64) float64 {
	t = clamp(t, 0, 1)
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// EaseOutExpo drops quickly and settles slowly, used when ambience is pushed
// down to silence floor.
func EaseOutExpo(t float64) float64 {
	t = clamp(t, 0, 1)
	if t == 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// fade is a single volume animation. Progress is always computed from the
// fade's own start time, so late or skipped frames never accumulate drift.
type fade struct {
	from, to float64
	start    time.Time
	duration time.Duration
	easing   Easing
	// release stops playback once volume reaches target
	release bool
}

// at returns volume at the given moment and whether fade is complete.
func (f *fade) at(now time.Time) (float64, bool) {
	if f.duration <= 0 {
		return f.to, true
	}
	elapsed := now.Sub(f.start)
	if elapsed >= f.duration {
		return f.to, true
	}
	if elapsed <= 0 {
		return f.from, false
	}
	p := float64(elapsed) / float64(f.duration)
	v := f.from + (f.to-f.from)*f.easing(p)
	return clamp(v, math.Min(f.from, f.to), math.Max(f.from, f.to)), false
}
