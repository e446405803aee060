package main

import (
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"honnef.co/go/chartpath"
)

func run(cmd *cobra.Command, v *viper.Viper, log *slog.Logger, args []string) error {
	series, err := loadSeries(v.GetString("input"), v.GetString("sheet"), v.GetString("column"), args)
	if err != nil {
		return fmt.Errorf("loading series: %w", err)
	}
	log.Debug("loaded series", "values", len(series))

	chart := chartpath.NewLineChart(series).
		WithPeriod(v.GetInt("period")).
		ZeroBased(v.GetBool("zero-based"))
	if v.IsSet("min-y") {
		chart = chart.WithMinY(v.GetFloat64("min-y"))
	}
	if v.IsSet("max-y") {
		chart = chart.WithMaxY(v.GetFloat64("max-y"))
	}
	from, to := chartpath.Appear(chart)
	chart = chartpath.Interpolate(from, to, chartpath.EaseInOut(min(max(v.GetFloat64("progress"), 0), 1)))
	log.Debug("chart", "count", chart.Count, "min", chart.MinY, "max", chart.MaxY, "period", chart.AveragingPeriod)

	layers, err := buildLayers(v, chart)
	if err != nil {
		return err
	}

	size := chartpath.Sz(v.GetFloat64("width"), v.GetFloat64("height"))
	if p := chart.Path(chartpath.NewRectFromSize(size)); p.IsNaN() || p.IsInf() {
		log.Warn("chart has non-finite coordinates; the series needs at least two values and a non-empty vertical range",
			"values", len(series), "min", chart.MinY, "max", chart.MaxY)
	}

	var w io.Writer = cmd.OutOrStdout()
	if out := v.GetString("output"); out != "" {
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	opts := chartpath.SVGOptions{MaxPrecision: v.GetInt("precision")}
	if err := chartpath.WriteDocument(w, size, layers, opts); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}
	log.Debug("wrote document", "size", size, "layers", len(layers))
	return nil
}

func buildLayers(v *viper.Viper, chart chartpath.LineChart) ([]chartpath.Layer, error) {
	var layers []chartpath.Layer
	if v.GetBool("area") {
		fill, err := areaPaint(v)
		if err != nil {
			return nil, err
		}
		layers = append(layers, chartpath.Layer{
			Shape: chart.WithArea(true),
			Fill:  &fill,
		})
	}
	if v.GetBool("line") {
		c, err := parseColor(v.GetString("stroke"))
		if err != nil {
			return nil, fmt.Errorf("--stroke: %w", err)
		}
		stroke := chartpath.Solid(c)
		layers = append(layers, chartpath.Layer{
			Shape:  chart,
			Stroke: &stroke,
			Style:  chartpath.DefaultStroke.WithWidth(v.GetFloat64("line-width")),
			Border: true,
		})
	}
	return layers, nil
}

func areaPaint(v *viper.Viper) (chartpath.Paint, error) {
	if stops := v.GetStringSlice("gradient"); len(stops) > 0 {
		colors := make([]color.Color, len(stops))
		for i, s := range stops {
			c, err := parseColor(s)
			if err != nil {
				return chartpath.Paint{}, fmt.Errorf("--gradient: %w", err)
			}
			colors[i] = c
		}
		return chartpath.EvenGradient(colors...), nil
	}
	c, err := parseColor(v.GetString("fill"))
	if err != nil {
		return chartpath.Paint{}, fmt.Errorf("--fill: %w", err)
	}
	if spacing := v.GetFloat64("hatch"); spacing > 0 {
		return chartpath.Hatch(c, spacing), nil
	}
	return chartpath.Solid(c), nil
}

// parseColor parses CSS hex colors of the forms #rgb and #rrggbb.
func parseColor(s string) (color.Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 3 && len(hex) != 6 {
		return nil, fmt.Errorf("invalid color %q", s)
	}
	for _, r := range hex {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return nil, fmt.Errorf("invalid color %q", s)
		}
	}
	return drawing.ColorFromHex(hex), nil
}
