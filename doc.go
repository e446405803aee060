// Package chartpath provides the geometry of simple line and area charts. It
// maps a numeric series to a path that can be stroked or filled by any 2D
// graphics API, and leaves painting and animation clocks to its callers.
//
// # Series and smoothing
//
// A series is a slice of any integer or floating-point type (see [Real]).
// [MovingAverages] smooths a series with a trailing mean whose window grows
// from one sample to the full period, so the result always has as many values
// as the input. [Smoother] computes the same averages incrementally, for
// series that are still growing.
//
// # Charts
//
// [LineChart] is the central type. It holds a series together with the
// parameters of its layout: vertical bounds, whether the axis starts at zero,
// whether to close the line into an area, the number of points to draw, and an
// inset. Its Path method lays the chart out in a [Rect]:
//
//   - points are spread evenly across the width, in series order;
//   - the axis minimum (0 or MinY) maps to the bottom edge and MaxY to the top
//     edge, in a y-down space;
//   - areas are closed against the bottom corners of the rectangle.
//
// [Line], [MovingAverageLine] and [Area] construct the common variants, and
// [BuildPath] lays out a series in a single call.
//
// Every chart shape implements [Pathable]. Shapes that implement [Insettable]
// can be shrunk to keep a thick stroke inside their bounds; [StrokeBorder]
// does this for a given [Stroke].
//
// # Paths
//
// [Path] is a slice of [PathElement], each being one of [MoveTo], [LineTo]
// and [ClosePath], akin to the drawing commands of PostScript-like APIs.
// [Path.Points] and [Path.IsClosed] describe the same path as a vertex list.
//
// # Animation
//
// Charts are plain values, so animations are expressed as interpolation
// between two of them. [Interpolate] computes intermediate charts, [Appear]
// and [Rescale] produce common endpoints, and [Animation] maps elapsed time
// to eased progress. [Frames] samples an entire animation.
//
// # Output
//
// [SVG] and [WriteSVG] format path data. [WriteDocument] renders painted
// [Layer] values, using the [Paint] variants for solid colors, gradients and
// hatch patterns, as a standalone SVG document.
//
// # Degenerate input
//
// Empty series and non-positive counts produce empty paths. A series with a
// single value, or a vertical range of zero, is laid out with the same
// arithmetic as any other series and produces NaN or infinite coordinates.
// [Path.IsNaN] and [Path.IsInf] detect such paths.
package chartpath
