package chartpath

import (
	"errors"
	"image/color"
	"strings"
	"testing"
)

func TestSVGPathData(t *testing.T) {
	got := Area(sample).Path(square).SVG(SVGOptions{MaxPrecision: 2})
	want := "M0,80 L33.33,60 L66.67,0 L100,80 L100,100 L0,100 Z"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	got = Line([]int{0, 10}).Path(NewRectFromSize(Sz(10, 10))).SVG(SVGOptions{})
	if want := "M0,10 L10,0"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	if got := (Path{}).SVG(SVGOptions{}); got != "" {
		t.Errorf("got %q for empty path", got)
	}
}

func TestSVGPrecision(t *testing.T) {
	tests := []struct {
		prec int
		in   float64
		want string
	}{
		{0, 0.1, "0.1"},
		{0, 100, "100"},
		{2, 100, "100"},
		{2, 1.005, "1"},
		{3, 2.5, "2.5"},
		{1, -0.01, "0"},
	}
	for _, tt := range tests {
		if got := (SVGOptions{MaxPrecision: tt.prec}).format(tt.in); got != tt.want {
			t.Errorf("format(%v) with precision %d: got %q, want %q", tt.in, tt.prec, got, tt.want)
		}
	}
}

func TestWriteDocument(t *testing.T) {
	fill := Solid(color.NRGBA{0x5a, 0xc8, 0xfa, 0xff})
	stroke := Solid(color.NRGBA{0xff, 0x00, 0x00, 0xff})
	series := []int{0, 10}
	layers := []Layer{
		{Shape: Area(series), Fill: &fill},
		{Shape: Line(series), Stroke: &stroke, Style: DefaultStroke.WithWidth(2), Border: true},
		{Shape: Line([]int{}), Stroke: &stroke, Style: DefaultStroke},
		{},
	}
	sb := &strings.Builder{}
	if err := WriteDocument(sb, Sz(100, 100), layers, SVGOptions{}); err != nil {
		t.Fatal(err)
	}
	want := `<svg xmlns="http://www.w3.org/2000/svg" width="100" height="100" viewBox="0 0 100 100">
<path d="M0,100 L100,0 L100,100 L0,100 Z" fill="#5ac8fa" stroke="none"/>
<path d="M1,99 L99,1" fill="none" stroke="#ff0000" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"/>
</svg>
`
	if got := sb.String(); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestWriteDocumentPaints(t *testing.T) {
	gradient := LinearGradient(
		GradientStop{0, color.NRGBA{0xff, 0xff, 0xff, 0xff}},
		GradientStop{1, color.NRGBA{0, 0, 0, 0}},
	)
	hatch := Hatch(color.NRGBA{0x11, 0x22, 0x33, 0xff}, 6)
	translucent := Solid(color.NRGBA{0xff, 0, 0, 0x80})
	style := DefaultStroke.WithJoin(MiterJoin).WithCap(ButtCap).WithDashes(2, []float64{3, 1})
	layers := []Layer{
		{Shape: Area(sample), Fill: &gradient},
		{Shape: Area(sample), Fill: &hatch},
		{Shape: Frame{}, Stroke: &translucent, Style: style},
	}
	sb := &strings.Builder{}
	if err := WriteDocument(sb, Sz(300, 200), layers, SVGOptions{MaxPrecision: 2}); err != nil {
		t.Fatal(err)
	}
	got := sb.String()
	for _, want := range []string{
		`<defs>`,
		`<linearGradient id="paint0" x1="0" y1="0" x2="0" y2="1">`,
		`<stop offset="0" stop-color="#ffffff"/>`,
		`<stop offset="1" stop-color="#000000" stop-opacity="0"/>`,
		`<pattern id="paint1" width="6" height="6" patternUnits="userSpaceOnUse" patternTransform="rotate(45)">`,
		`<line x1="0" y1="0" x2="0" y2="6" stroke="#112233" stroke-width="1"/>`,
		`fill="url(#paint0)" stroke="none"`,
		`fill="url(#paint1)" stroke="none"`,
		`<path d="M0,0 L300,0 L300,200 L0,200 Z" fill="none" stroke="#ff0000" stroke-opacity="0.5" stroke-width="1" stroke-linecap="butt" stroke-linejoin="miter" stroke-miterlimit="10" stroke-dasharray="3 1" stroke-dashoffset="2"/>`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("document does not contain %s:\n%s", want, got)
		}
	}
}

func TestEvenGradient(t *testing.T) {
	p := EvenGradient(color.White, color.Gray{0x80}, color.Black)
	if p.Kind != GradientKind {
		t.Fatalf("got kind %v", p.Kind)
	}
	var offsets []float64
	for _, s := range p.Stops {
		offsets = append(offsets, s.Offset)
	}
	diff(t, []float64{0, 0.5, 1}, offsets)
	if p := EvenGradient(color.White); p.Stops[0].Offset != 0 {
		t.Errorf("single stop at offset %v", p.Stops[0].Offset)
	}
}

type failingWriter struct{ n int }

var errWrite = errors.New("write failed")

func (w *failingWriter) Write(b []byte) (int, error) {
	if w.n == 0 {
		return 0, errWrite
	}
	w.n--
	return len(b), nil
}

func TestWriteErrors(t *testing.T) {
	p := Line(sample).Path(square)
	for n := range 3 {
		if err := p.WriteSVG(&failingWriter{n: n}, SVGOptions{}); !errors.Is(err, errWrite) {
			t.Errorf("WriteSVG after %d writes: got error %v", n, err)
		}
	}
	stroke := Solid(color.Black)
	layers := []Layer{{Shape: Line(sample), Stroke: &stroke, Style: DefaultStroke}}
	for n := range 4 {
		if err := WriteDocument(&failingWriter{n: n}, Sz(10, 10), layers, SVGOptions{}); !errors.Is(err, errWrite) {
			t.Errorf("WriteDocument after %d writes: got error %v", n, err)
		}
	}
}
