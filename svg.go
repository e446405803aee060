package chartpath

import (
	"fmt"
	"image/color"
	"io"
	"iter"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for [SVG], [WriteSVG] and
// [WriteDocument].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

func (opts SVGOptions) format(n float64) string {
	if opts.MaxPrecision <= 0 {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	s := strconv.FormatFloat(n, 'f', opts.MaxPrecision, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		s = "0"
	}
	return s
}

// SVG converts a sequence of path elements to a string of SVG path commands.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(seq iter.Seq[PathElement], opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, seq, opts)
	return sb.String()
}

// WriteSVG converts a sequence of path elements to a string of SVG path
// commands and writes it to w.
//
// See [SVG] for a version that returns a string instead.
//
// The current implementation doesn't take any special care to produce a
// short string (reducing precision, using relative movement).
func WriteSVG(w io.Writer, seq iter.Seq[PathElement], opts SVGOptions) error {
	ew := &errWriter{w: w}
	first := true
	for el := range seq {
		if ew.err != nil {
			return ew.err
		}
		if !first {
			ew.print(" ")
		}
		first = false
		switch el.Kind {
		case MoveToKind:
			ew.printf("M%s,%s", opts.format(el.P0.X), opts.format(el.P0.Y))
		case LineToKind:
			ew.printf("L%s,%s", opts.format(el.P0.X), opts.format(el.P0.Y))
		case ClosePathKind:
			ew.print("Z")
		default:
			panic(fmt.Sprintf("unhandled case %v", el.Kind))
		}
	}
	return ew.err
}

// Layer is one painted shape of a chart document. Layers are drawn in order,
// each filled before it is stroked.
type Layer struct {
	Shape Pathable
	// Fill and Stroke are optional. A layer with neither draws nothing.
	Fill   *Paint
	Stroke *Paint
	Style  Stroke
	// Border strokes the shape inset by half the stroke width, keeping the
	// stroke inside the layout rectangle. It has no effect on shapes that
	// aren't Insettable.
	Border bool
}

// WriteDocument writes a standalone SVG document of the given size, with
// every layer laid out in the rectangle spanning the whole document.
func WriteDocument(w io.Writer, size Size, layers []Layer, opts SVGOptions) error {
	ew := &errWriter{w: w}
	bounds := NewRectFromSize(size)
	f := opts.format

	ew.printf(`<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`,
		f(size.Width), f(size.Height), f(size.Width), f(size.Height))
	ew.print("\n")

	defs := &paintDefs{opts: opts}
	type drawing struct {
		fill, stroke string
		fillPath     Path
		strokePath   Path
		style        Stroke
	}
	drawings := make([]drawing, 0, len(layers))
	for _, l := range layers {
		if l.Shape == nil {
			continue
		}
		var d drawing
		if l.Fill != nil {
			d.fill = defs.ref("fill", *l.Fill)
			d.fillPath = l.Shape.Path(bounds)
		}
		if l.Stroke != nil {
			d.stroke = defs.ref("stroke", *l.Stroke)
			shape := l.Shape
			if in, ok := shape.(Insettable); ok && l.Border {
				shape = StrokeBorder(in, l.Style)
			}
			d.strokePath = shape.Path(bounds)
			d.style = l.Style
		}
		drawings = append(drawings, d)
	}

	if len(defs.defs) > 0 {
		ew.print("<defs>\n")
		for _, def := range defs.defs {
			ew.print(def)
		}
		ew.print("</defs>\n")
	}

	for _, d := range drawings {
		if len(d.fillPath) > 0 {
			ew.printf(`<path d="%s" %s stroke="none"/>`, d.fillPath.SVG(opts), d.fill)
			ew.print("\n")
		}
		if len(d.strokePath) > 0 {
			ew.printf(`<path d="%s" fill="none" %s %s/>`, d.strokePath.SVG(opts), d.stroke, strokeAttrs(d.style, opts))
			ew.print("\n")
		}
	}
	ew.print("</svg>\n")
	return ew.err
}

func strokeAttrs(s Stroke, opts SVGOptions) string {
	f := opts.format
	attrs := []string{
		fmt.Sprintf(`stroke-width="%s"`, f(s.Width)),
		fmt.Sprintf(`stroke-linecap="%s"`, s.Cap.svg()),
		fmt.Sprintf(`stroke-linejoin="%s"`, s.Join.svg()),
	}
	if s.Join == MiterJoin {
		attrs = append(attrs, fmt.Sprintf(`stroke-miterlimit="%s"`, f(s.MiterLimit)))
	}
	if len(s.DashPattern) > 0 {
		dashes := make([]string, len(s.DashPattern))
		for i, d := range s.DashPattern {
			dashes[i] = f(d)
		}
		attrs = append(attrs, fmt.Sprintf(`stroke-dasharray="%s"`, strings.Join(dashes, " ")))
		if s.DashOffset != 0 {
			attrs = append(attrs, fmt.Sprintf(`stroke-dashoffset="%s"`, f(s.DashOffset)))
		}
	}
	return strings.Join(attrs, " ")
}

// paintDefs collects the gradient and pattern definitions referenced by a
// document.
type paintDefs struct {
	opts SVGOptions
	defs []string
}

// ref returns the attributes painting attr ("fill" or "stroke") with p,
// registering a definition if p needs one.
func (pd *paintDefs) ref(attr string, p Paint) string {
	f := pd.opts.format
	switch p.Kind {
	case SolidKind:
		return colorAttrs(attr, p.Color, pd.opts)
	case GradientKind:
		id := fmt.Sprintf("paint%d", len(pd.defs))
		sb := &strings.Builder{}
		fmt.Fprintf(sb, `<linearGradient id="%s" x1="%s" y1="%s" x2="%s" y2="%s">`,
			id, f(p.Start.X), f(p.Start.Y), f(p.End.X), f(p.End.Y))
		sb.WriteString("\n")
		for _, stop := range p.Stops {
			fmt.Fprintf(sb, `<stop offset="%s" %s/>`, f(stop.Offset), colorAttrs("stop-color", stop.Color, pd.opts))
			sb.WriteString("\n")
		}
		sb.WriteString("</linearGradient>\n")
		pd.defs = append(pd.defs, sb.String())
		return fmt.Sprintf(`%s="url(#%s)"`, attr, id)
	case PatternKind:
		id := fmt.Sprintf("paint%d", len(pd.defs))
		spacing := p.Spacing
		if spacing <= 0 {
			spacing = 4
		}
		def := fmt.Sprintf(`<pattern id="%s" width="%s" height="%s" patternUnits="userSpaceOnUse" patternTransform="rotate(%s)">`+"\n"+
			`<line x1="0" y1="0" x2="0" y2="%s" %s stroke-width="1"/>`+"\n"+
			"</pattern>\n",
			id, f(spacing), f(spacing), f(p.Angle), f(spacing), colorAttrs("stroke", p.Color, pd.opts))
		pd.defs = append(pd.defs, def)
		return fmt.Sprintf(`%s="url(#%s)"`, attr, id)
	default:
		return fmt.Sprintf(`%s="none"`, attr)
	}
}

// colorAttrs formats c as an SVG color attribute named attr, followed by a
// matching opacity attribute if c is translucent.
func colorAttrs(attr string, c color.Color, opts SVGOptions) string {
	if c == nil {
		return fmt.Sprintf(`%s="none"`, attr)
	}
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	s := fmt.Sprintf(`%s="#%02x%02x%02x"`, attr, nc.R, nc.G, nc.B)
	if nc.A != 0xff {
		opacity := attr + "-opacity"
		if attr == "stop-color" {
			opacity = "stop-opacity"
		}
		s += fmt.Sprintf(` %s="%s"`, opacity, opts.format(float64(nc.A)/255))
	}
	return s
}

// errWriter latches the first error encountered while writing.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) print(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = io.WriteString(ew.w, s)
}

func (ew *errWriter) printf(format string, v ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, v...)
}
