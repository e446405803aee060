package chartpath

import (
	"gonum.org/v1/gonum/floats"
)

// Pathable describes shapes that can lay themselves out in a rectangle.
//
// Implementations must be pure: calling Path twice with the same rectangle
// returns identical paths.
type Pathable interface {
	Path(r Rect) Path
}

// Insettable describes shapes that can shrink themselves to leave room for a
// stroke drawn along their outline.
type Insettable interface {
	Pathable
	// InsetBy returns a copy of the shape inset by a further amount on every
	// side.
	InsetBy(amount float64) Pathable
}

var (
	_ Insettable = LineChart{}
	_ Insettable = Frame{}
)

// LineChart maps a series to a line or, if HasArea is set, to a closed area
// anchored at the bottom of the rectangle it is laid out in.
//
// All fields are plain values so that an animation can interpolate them (see
// [Interpolate]). Use [NewLineChart] to get a chart with bounds derived from
// the series.
type LineChart struct {
	// Series holds the samples in display order.
	Series []float64
	// Count is the number of leading points to draw. Points are spaced for the
	// whole series regardless of Count, so increasing it reveals the line from
	// left to right.
	Count int
	// MinY and MaxY are the values mapped to the bottom and top of the chart.
	// MinY is ignored when IsZeroBased is set.
	MinY, MaxY float64
	// AveragingPeriod selects the moving average to plot. Values of 1 or less
	// plot the series itself.
	AveragingPeriod int
	// IsZeroBased anchors the vertical axis at 0 instead of MinY.
	IsZeroBased bool
	// HasArea closes the line against the bottom of the chart.
	HasArea bool
	// InsetAmount is the distance kept free on every side of the rectangle.
	InsetAmount float64
}

// NewLineChart returns a zero-based line chart of the entire series, without
// smoothing. MinY and MaxY are the extrema of the series, or 0 and 1 if it is
// empty.
func NewLineChart[T Real](series []T) LineChart {
	values := Floats(series)
	c := LineChart{
		Series:      values,
		Count:       len(values),
		MinY:        0,
		MaxY:        1,
		IsZeroBased: true,
	}
	if len(values) > 0 {
		c.MinY = floats.Min(values)
		c.MaxY = floats.Max(values)
	}
	return c
}

// Line returns a line chart plotting series as-is.
func Line[T Real](series []T) LineChart {
	return NewLineChart(series)
}

// MovingAverageLine returns a line chart plotting the moving average of
// series. The bounds are still those of the raw series.
func MovingAverageLine[T Real](series []T, period int) LineChart {
	return NewLineChart(series).WithPeriod(period)
}

// Area returns an area chart of series.
func Area[T Real](series []T) LineChart {
	return NewLineChart(series).WithArea(true)
}

// WithBounds returns a copy of c with the vertical axis spanning minY to maxY.
func (c LineChart) WithBounds(minY, maxY float64) LineChart {
	c.MinY, c.MaxY = minY, maxY
	return c
}

func (c LineChart) WithMinY(minY float64) LineChart { c.MinY = minY; return c }
func (c LineChart) WithMaxY(maxY float64) LineChart { c.MaxY = maxY; return c }

// WithCount returns a copy of c drawing only the first n points. n is clamped
// to the length of the series.
func (c LineChart) WithCount(n int) LineChart {
	c.Count = min(n, len(c.Series))
	return c
}

func (c LineChart) WithPeriod(period int) LineChart { c.AveragingPeriod = period; return c }
func (c LineChart) ZeroBased(b bool) LineChart      { c.IsZeroBased = b; return c }
func (c LineChart) WithArea(b bool) LineChart       { c.HasArea = b; return c }

// Inset returns a copy of c inset by a further amount. Insets accumulate.
func (c LineChart) Inset(amount float64) LineChart {
	c.InsetAmount += amount
	return c
}

// InsetBy implements Insettable.
func (c LineChart) InsetBy(amount float64) Pathable {
	return c.Inset(amount)
}

// Values returns the values that are plotted, which is the moving average of
// the series if an averaging period is set.
func (c LineChart) Values() []float64 {
	return MovingAverages(c.Series, c.AveragingPeriod)
}

// Path implements Pathable.
//
// The series is spread evenly across the width of r, minus the inset on both
// sides, and scaled vertically so that the axis minimum lands on the bottom
// inset edge and MaxY on the top one. Point coordinates are relative to the
// size of r. The baseline corners of an area are placed at r's absolute
// extents.
//
// An empty series or a non-positive Count produces an empty path. A series of
// one element or an empty value range are not special-cased and produce
// non-finite coordinates; see [Path.IsNaN] and [Path.IsInf].
func (c LineChart) Path(r Rect) Path {
	n := min(c.Count, len(c.Series))
	if len(c.Series) == 0 || n <= 0 {
		return nil
	}

	inset := c.InsetAmount
	width := r.Width() - 2*inset
	height := r.Height() - 2*inset
	xStep := width / float64(len(c.Series)-1)

	yZero := c.MinY
	yHeight := c.MaxY - c.MinY
	if c.IsZeroBased {
		yZero = 0
		yHeight = c.MaxY
	}

	values := c.Values()
	point := func(i int) Point {
		f := (values[i] - yZero) / yHeight
		return Point{
			X: float64(i)*xStep + inset,
			Y: height*(1-f) + inset,
		}
	}

	extra := 0
	if c.HasArea {
		extra = 3
	}
	p := make(Path, 0, n+extra)
	p.MoveTo(point(0))
	for i := 1; i < n; i++ {
		p.LineTo(point(i))
	}
	if c.HasArea {
		p.LineTo(Pt(r.MaxX()-inset, r.MaxY()-inset))
		p.LineTo(Pt(r.MinX()+inset, r.MaxY()-inset))
		p.ClosePath()
	}
	return p
}

// PathOptions configures [BuildPath]. Nil bounds are derived from the series
// and a nil Count draws the whole series.
type PathOptions struct {
	MinY, MaxY  *float64
	Count       *int
	Period      int
	IsZeroBased bool
	HasArea     bool
	Inset       float64
}

// BuildPath lays out series in r according to opts. It is a one-shot form of
// constructing a [LineChart] and calling its Path method.
func BuildPath[T Real](series []T, opts PathOptions, r Rect) Path {
	return opts.chart(Floats(series)).Path(r)
}

func (opts PathOptions) chart(series []float64) LineChart {
	c := NewLineChart(series).
		WithPeriod(opts.Period).
		ZeroBased(opts.IsZeroBased).
		WithArea(opts.HasArea).
		Inset(opts.Inset)
	if opts.MinY != nil {
		c.MinY = *opts.MinY
	}
	if opts.MaxY != nil {
		c.MaxY = *opts.MaxY
	}
	if opts.Count != nil {
		c = c.WithCount(*opts.Count)
	}
	return c
}

// Frame is the outline of the rectangle a shape is laid out in, optionally
// inset. It is typically used for chart backgrounds and borders.
type Frame struct {
	InsetAmount float64
}

// Path implements Pathable.
func (f Frame) Path(r Rect) Path {
	return r.Inset(f.InsetAmount).Outline()
}

// InsetBy implements Insettable.
func (f Frame) InsetBy(amount float64) Pathable {
	f.InsetAmount += amount
	return f
}
