package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "chartsvg [values...]",
		Short: "Render a series as an SVG line or area chart",
		Long: `chartsvg lays out a numeric series as a line chart, an area chart or
both, optionally smoothed with a trailing moving average, and writes the
result as a standalone SVG document.

Values are read from the arguments, or from --input if it is set.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v, cfgFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(cmd, v.GetBool("debug"))
			return run(cmd, v, log, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.chartsvg.yaml)")
	flags.StringP("output", "o", "", "output file (default is stdout)")
	flags.StringP("input", "i", "", "read values from a text file or an .xlsx workbook")
	flags.String("sheet", "", "workbook sheet to read (default is the first sheet)")
	flags.String("column", "A", "workbook column to read")
	flags.Float64("width", 300, "document width")
	flags.Float64("height", 200, "document height")
	flags.Int("period", 0, "moving average period, 1 or less plots the raw series")
	flags.Bool("zero-based", true, "start the vertical axis at zero instead of the series minimum")
	flags.Float64("min-y", 0, "vertical axis minimum (default is the series minimum)")
	flags.Float64("max-y", 0, "vertical axis maximum (default is the series maximum)")
	flags.Bool("area", false, "fill the area below the line")
	flags.Bool("line", true, "stroke the line")
	flags.Float64("line-width", 1, "stroke width")
	flags.String("stroke", "#ff2d55", "stroke color")
	flags.String("fill", "#5ac8fa", "area fill color")
	flags.StringSlice("gradient", nil, "area fill gradient colors, top to bottom (overrides --fill)")
	flags.Float64("hatch", 0, "fill the area with diagonal lines this far apart (overrides --fill)")
	flags.Float64("progress", 1, "progress of the drawing-in animation, from 0 to 1")
	flags.Int("precision", 3, "maximum number of decimals in coordinates, 0 for exact")
	flags.Bool("debug", false, "enable debug logging")

	if err := v.BindPFlags(flags); err != nil {
		panic(err)
	}
	return cmd
}

// initConfig reads in config file and ENV variables if set.
func initConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(home)
		}
		v.SetConfigType("yaml")
		v.SetConfigName(".chartsvg")
	}

	v.SetEnvPrefix("chartsvg")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && cfgFile == "" {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

func newLogger(cmd *cobra.Command, debug bool) *slog.Logger {
	opts := slog.HandlerOptions{
		Level: slog.LevelInfo,
	}
	if debug {
		opts.Level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &opts))
}
