package chartpath

import (
	"math"
	"testing"
	"time"
)

func TestInterpolateEndpoints(t *testing.T) {
	from := Line(sample).WithBounds(0, 10).WithCount(0)
	to := Line(sample).WithBounds(-10, 50).Inset(4)

	diff(t, to, Interpolate(from, to, 1))
	diff(t, to, Interpolate(from, to, 7))

	got := Interpolate(from, to, 0)
	if got.Count != 0 || got.MinY != 0 || got.MaxY != 10 || got.InsetAmount != 0 {
		t.Errorf("unexpected chart at t=0: %+v", got)
	}
	if got := Interpolate(from, to, -1); got.Count != 0 {
		t.Errorf("t was not clamped: %+v", got)
	}
}

func TestInterpolateMidway(t *testing.T) {
	from := Line(sample).WithBounds(0, 10).WithCount(0)
	to := Line(sample).WithBounds(-10, 50)

	got := Interpolate(from, to, 0.5)
	if got.MinY != -5 || got.MaxY != 30 {
		t.Errorf("got bounds %v, %v; want -5, 30", got.MinY, got.MaxY)
	}
	if got.Count != 2 {
		t.Errorf("got count %d, want 2", got.Count)
	}
	// Count is truncated, not rounded.
	if got := Interpolate(from, to, 0.7); got.Count != 2 {
		t.Errorf("got count %d, want 2", got.Count)
	}
}

func TestAppear(t *testing.T) {
	c := Area(sample)
	from, to := Appear(c)
	if from.Count != 0 {
		t.Errorf("got initial count %d, want 0", from.Count)
	}
	if p := from.Path(square); !p.IsEmpty() {
		t.Errorf("initial frame draws %v", p)
	}
	diff(t, c, to)

	var last int
	for i := range 11 {
		n := Interpolate(from, to, float64(i)/10).Count
		if n < last {
			t.Fatalf("count decreased from %d to %d", last, n)
		}
		last = n
	}
	if last != len(sample) {
		t.Errorf("got final count %d, want %d", last, len(sample))
	}
}

func TestRescale(t *testing.T) {
	c := Line(sample).ZeroBased(false)
	from, to := Rescale(c, 0, 100)
	diff(t, c, from)
	if to.MinY != 0 || to.MaxY != 100 {
		t.Errorf("got bounds %v, %v", to.MinY, to.MaxY)
	}
}

func TestTimings(t *testing.T) {
	timings := map[string]Timing{
		"Linear":    Linear,
		"EaseIn":    EaseIn,
		"EaseOut":   EaseOut,
		"EaseInOut": EaseInOut,
	}
	for name, timing := range timings {
		if v := timing(0); v != 0 {
			t.Errorf("%s(0) = %v, want 0", name, v)
		}
		if v := timing(1); v != 1 {
			t.Errorf("%s(1) = %v, want 1", name, v)
		}
		prev := 0.0
		for i := 1; i <= 100; i++ {
			v := timing(float64(i) / 100)
			if v < prev {
				t.Errorf("%s is not monotonic at %v", name, float64(i)/100)
			}
			prev = v
		}
	}
	if v := EaseInOut(0.5); math.Abs(v-0.5) > 1e-12 {
		t.Errorf("EaseInOut(0.5) = %v, want 0.5", v)
	}
}

func TestAnimationProgress(t *testing.T) {
	a := Animation{Duration: 2 * time.Second}
	tests := []struct {
		elapsed time.Duration
		want    float64
	}{
		{-time.Second, 0},
		{0, 0},
		{500 * time.Millisecond, 0.25},
		{time.Second, 0.5},
		{2 * time.Second, 1},
		{time.Hour, 1},
	}
	for _, tt := range tests {
		if got := a.Progress(tt.elapsed); got != tt.want {
			t.Errorf("Progress(%v) = %v, want %v", tt.elapsed, got, tt.want)
		}
	}
	if got := (Animation{}).Progress(0); got != 1 {
		t.Errorf("zero duration: got %v, want 1", got)
	}
	if got := DefaultAnimation.Progress(500 * time.Millisecond); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("got %v, want 0.5", got)
	}
}

func TestFrames(t *testing.T) {
	from, to := Appear(Line(sample))
	anim := Animation{Duration: time.Second, Timing: Linear}

	var times []time.Duration
	var counts []int
	for at, c := range Frames(from, to, anim, 4) {
		times = append(times, at)
		counts = append(counts, c.Count)
	}
	diff(t, []time.Duration{0, 250 * time.Millisecond, 500 * time.Millisecond, 750 * time.Millisecond, time.Second}, times)
	diff(t, []int{0, 1, 2, 3, 4}, counts)

	var n int
	for range Frames(from, to, anim, 0) {
		n++
	}
	if n != 1 {
		t.Errorf("got %d frames without a frame rate, want 1", n)
	}

	// Stopping early must not panic.
	for range Frames(from, to, anim, 60) {
		break
	}
	var last LineChart
	for _, c := range Frames(from, to, anim, 10) {
		last = c
	}
	diff(t, to, last)
}
