package chartpath

import (
	"image/color"
)

// PaintKind identifies the variant held by a [Paint].
type PaintKind int

const (
	// A single color.
	SolidKind PaintKind = iota + 1
	// A linear gradient between color stops.
	GradientKind
	// Parallel hatch lines over a transparent background.
	PatternKind
)

func (k PaintKind) String() string {
	switch k {
	case SolidKind:
		return "Solid"
	case GradientKind:
		return "Gradient"
	case PatternKind:
		return "Pattern"
	default:
		return "InvalidPaint"
	}
}

// GradientStop is a color at a relative offset in [0, 1] along a gradient.
type GradientStop struct {
	Offset float64
	Color  color.Color
}

// Paint describes how a path is filled or stroked. It acts as a tagged union of
// solid colors, linear gradients and hatch patterns; geometry never depends
// on it.
type Paint struct {
	Kind PaintKind

	// Color is used by SolidKind and PatternKind.
	Color color.Color

	// Stops, Start and End are used by GradientKind. Start and End are in the
	// unit square of the painted shape's bounding box.
	Stops      []GradientStop
	Start, End Point

	// Spacing and Angle are used by PatternKind. Angle is in degrees.
	Spacing float64
	Angle   float64
}

// Solid returns a paint of a single color.
func Solid(c color.Color) Paint {
	return Paint{Kind: SolidKind, Color: c}
}

// LinearGradient returns a top-to-bottom gradient through the given stops.
func LinearGradient(stops ...GradientStop) Paint {
	return Paint{
		Kind:  GradientKind,
		Stops: stops,
		Start: Pt(0, 0),
		End:   Pt(0, 1),
	}
}

// EvenGradient returns a top-to-bottom gradient with the colors spread evenly.
func EvenGradient(colors ...color.Color) Paint {
	stops := make([]GradientStop, len(colors))
	for i, c := range colors {
		var off float64
		if len(colors) > 1 {
			off = float64(i) / float64(len(colors)-1)
		}
		stops[i] = GradientStop{Offset: off, Color: c}
	}
	return LinearGradient(stops...)
}

// Hatch returns a pattern of diagonal lines of color c, spacing units apart.
func Hatch(c color.Color, spacing float64) Paint {
	return Paint{Kind: PatternKind, Color: c, Spacing: spacing, Angle: 45}
}

// WithDirection returns a copy of a gradient running from start to end.
func (p Paint) WithDirection(start, end Point) Paint {
	p.Start, p.End = start, end
	return p
}
