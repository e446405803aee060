// Command chartsvg renders a numeric series as a line or area chart in SVG.
//
// Values are taken from the command line, from a text file or from a column
// of an Excel workbook:
//
//	chartsvg 10 20 50 10
//	chartsvg --area --period 7 --input samples.txt -o chart.svg
//	chartsvg --input data.xlsx --sheet Sales --column C
//
// Every flag can also be set in $HOME/.chartsvg.yaml or through an environment
// variable such as CHARTSVG_LINE_WIDTH.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
