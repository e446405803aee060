package chartpath

import (
	"github.com/gammazero/deque"
)

// Smoother computes the trailing moving average of a series one sample at a
// time. Feeding a series through a new Smoother yields the same values as
// [MovingAverages], without retaining more than period samples.
//
// A Smoother is not safe for concurrent use.
type Smoother struct {
	period int
	window *deque.Deque[float64]
}

// NewSmoother returns a Smoother averaging over the last period samples. A
// period of 1 or less disables smoothing.
func NewSmoother(period int) *Smoother {
	return &Smoother{
		period: max(period, 1),
		window: deque.New[float64](),
	}
}

// Period returns the width of the averaging window.
func (s *Smoother) Period() int { return s.period }

// Len returns the number of samples currently in the window.
func (s *Smoother) Len() int { return s.window.Len() }

// Push adds a sample and returns the mean of the current window.
func (s *Smoother) Push(v float64) float64 {
	if s.window.Len() == s.period {
		s.window.PopFront()
	}
	s.window.PushBack(v)
	return s.Average()
}

// Average returns the mean of the current window, or 0 if no samples have
// been pushed.
func (s *Smoother) Average() float64 {
	n := s.window.Len()
	if n == 0 {
		return 0
	}
	// Summed from scratch: an incremental sum never recovers from NaN or Inf.
	var sum float64
	for i := range n {
		sum += s.window.At(i)
	}
	return sum / float64(n)
}

// Reset discards all samples.
func (s *Smoother) Reset() {
	s.window.Clear()
}

// Smooth pushes every value of series and returns the averages produced.
func (s *Smoother) Smooth(series []float64) []float64 {
	out := make([]float64, len(series))
	for i, v := range series {
		out[i] = s.Push(v)
	}
	return out
}
