package chartpath

// Join defines the connection between two segments of a stroke.
type Join int

const (
	// A straight line connecting the segments.
	BevelJoin Join = iota
	// The segments are extended to their natural intersection point.
	MiterJoin
	// An arc between the segments.
	RoundJoin
)

func (j Join) svg() string {
	switch j {
	case BevelJoin:
		return "bevel"
	case MiterJoin:
		return "miter"
	default:
		return "round"
	}
}

// Cap defines the shape to be drawn at the ends of a stroke.
type Cap int

const (
	// Flat cap.
	ButtCap Cap = iota
	// Square cap with dimensions equal to half the stroke width.
	SquareCap
	// Rounded cap with radius equal to half the stroke width.
	RoundCap
)

func (c Cap) svg() string {
	switch c {
	case ButtCap:
		return "butt"
	case SquareCap:
		return "square"
	default:
		return "round"
	}
}

// Stroke describes the visual style of a stroke.
type Stroke struct {
	// Width of the stroke.
	Width float64
	// Style for connecting segments of the stroke.
	Join Join
	// Limit for miter joins.
	MiterLimit float64
	// Style for capping both ends of an open subpath.
	Cap Cap
	// Lengths of dashes in alternating on/off order.
	DashPattern []float64
	// Offset of the first dash.
	DashOffset float64
}

// DefaultStroke is a one unit wide stroke with round caps and joins.
var DefaultStroke = Stroke{
	Width:      1.0,
	Join:       RoundJoin,
	MiterLimit: 10.0,
	Cap:        RoundCap,
}

func (s Stroke) WithWidth(width float64) Stroke      { s.Width = width; return s }
func (s Stroke) WithJoin(join Join) Stroke           { s.Join = join; return s }
func (s Stroke) WithMiterLimit(limit float64) Stroke { s.MiterLimit = limit; return s }
func (s Stroke) WithCap(cap Cap) Stroke              { s.Cap = cap; return s }
func (s Stroke) WithDashes(offset float64, pattern []float64) Stroke {
	s.DashOffset, s.DashPattern = offset, pattern
	return s
}

// StrokeBorder returns shape inset by half of the stroke's width, so that a
// stroke centered on the resulting path stays within the original bounds.
func StrokeBorder(shape Insettable, s Stroke) Pathable {
	return shape.InsetBy(s.Width / 2)
}
