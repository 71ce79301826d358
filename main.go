package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	fs := flag.NewFlagSet("sorloss", flag.ExitOnError)
	configFile := fs.String("config", "", "optional YAML defaults file")
	distance := fs.String("distance", ModeAuto, "distance scale: auto, oneway or twoway (viewers usually show oneway)")
	csvOut := fs.String("csv", "", "write the event table to this CSV file")
	plotOut := fs.String("plot", "", "write the trace plot to this PNG file")
	chartOut := fs.String("chart", "", "write the trace chart to this HTML file")
	gui := fs.Bool("gui", false, "open the interactive trace viewer")
	rowLimit := fs.Int("rows", 10, "number of event rows to print")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: sorloss [flags] BLOCKS_JSON\n\nLoss and length analysis of a decoded .sor trace.\n\n")
		fs.PrintDefaults()
	}
	fs.Parse(os.Args[1:])

	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}

	// Config file fills in anything not set explicitly on the command line.
	if *configFile != "" {
		cfg, err := LoadConfig(*configFile)
		if err != nil {
			fatalf("read config: %v", err)
		}
		set := map[string]bool{}
		fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
		if !set["distance"] {
			*distance = cfg.Distance
		}
		if !set["csv"] {
			*csvOut = cfg.CSV
		}
		if !set["plot"] {
			*plotOut = cfg.Plot
		}
		if !set["chart"] {
			*chartOut = cfg.Chart
		}
		if !set["gui"] {
			*gui = cfg.GUI
		}
		if !set["rows"] {
			*rowLimit = cfg.Rows
		}
	}

	path := fs.Arg(0)
	blocks, err := LoadBlocks(path)
	if err != nil {
		fatalf("load %s: %v", path, err)
	}

	factor, err := ResolveDistanceFactor(*distance, blocks)
	if err != nil {
		fatalf("%v", err)
	}

	rows := BuildEventTable(blocks, factor)
	sum := Summarize(blocks, rows)
	PrintReport(path, factor, rows, sum, *rowLimit)

	if *csvOut != "" {
		if err := WriteCSV(rows, *csvOut); err != nil {
			fatalf("write csv: %v", err)
		}
		fmt.Printf("\nCSV written: %s\n", *csvOut)
	}

	if *plotOut != "" {
		if err := PlotTrace(blocks, rows, factor, *plotOut); err != nil {
			fmt.Fprintf(os.Stderr, "plot skipped: %v\n", err)
		} else {
			fmt.Printf("PNG written: %s\n", *plotOut)
		}
	}

	if *chartOut != "" {
		if err := WriteChart(blocks, factor, *chartOut); err != nil {
			fmt.Fprintf(os.Stderr, "chart skipped: %v\n", err)
		} else {
			fmt.Printf("HTML written: %s\n", *chartOut)
		}
	}

	if *gui {
		loadUI(calibratedTrace(blocks, factor), rows)
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
