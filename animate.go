package chartpath

import (
	"iter"
	"math"
	"time"
)

// Interpolate returns the chart at progress t of an animation from one chart
// to another. Count, MinY, MaxY and InsetAmount are interpolated linearly; the
// interpolated Count is truncated towards zero. All other fields are taken
// from to. t is clamped to [0, 1].
func Interpolate(from, to LineChart, t float64) LineChart {
	t = min(max(t, 0), 1)
	out := to
	out.Count = int(lerp(float64(from.Count), float64(to.Count), t))
	out.MinY = lerp(from.MinY, to.MinY, t)
	out.MaxY = lerp(from.MaxY, to.MaxY, t)
	out.InsetAmount = lerp(from.InsetAmount, to.InsetAmount, t)
	if t == 1 {
		// Avoid rounding errors at the end of an animation.
		return to
	}
	return out
}

// Appear returns the endpoints of an animation that draws c in from left to
// right.
func Appear(c LineChart) (from, to LineChart) {
	from = c
	from.Count = 0
	return from, c
}

// Rescale returns the endpoints of an animation that moves c's vertical
// bounds to minY and maxY.
func Rescale(c LineChart, minY, maxY float64) (from, to LineChart) {
	return c, c.WithBounds(minY, maxY)
}

// Timing maps linear progress in [0, 1] to eased progress. Timings must map 0
// to 0 and 1 to 1.
type Timing func(t float64) float64

func Linear(t float64) float64 { return t }

func EaseIn(t float64) float64 { return t * t * t }

func EaseOut(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

func EaseInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

// Animation describes how long a transition takes and how its progress is
// eased.
type Animation struct {
	Duration time.Duration
	// Timing defaults to Linear if nil.
	Timing Timing
}

// DefaultAnimation eases in and out over one second.
var DefaultAnimation = Animation{
	Duration: time.Second,
	Timing:   EaseInOut,
}

// Progress returns the eased progress after elapsed time. It is 0 before the
// animation starts and 1 once it has finished. A non-positive duration
// finishes immediately.
func (a Animation) Progress(elapsed time.Duration) float64 {
	if a.Duration <= 0 || elapsed >= a.Duration {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}
	timing := a.Timing
	if timing == nil {
		timing = Linear
	}
	return timing(float64(elapsed) / float64(a.Duration))
}

// Frames yields the charts of an animation from one chart to another, sampled
// at fps frames per second, together with their timestamps. The first frame is
// at time zero and the last one is exactly to.
func Frames(from, to LineChart, anim Animation, fps int) iter.Seq2[time.Duration, LineChart] {
	return func(yield func(time.Duration, LineChart) bool) {
		if fps <= 0 || anim.Duration <= 0 {
			yield(0, to)
			return
		}
		n := int(math.Ceil(anim.Duration.Seconds() * float64(fps)))
		for i := range n + 1 {
			at := min(time.Duration(float64(i)*float64(time.Second)/float64(fps)), anim.Duration)
			if !yield(at, Interpolate(from, to, anim.Progress(at))) {
				return
			}
		}
	}
}
