//Command trajplot draws the charts of all the trajectories in a directory.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/yaulin/trajplot"
	"github.com/yaulin/trajplot/chart"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func usage(fs *pflag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, "Usage: trajplot -d DIR [options]\n\n")
	fmt.Fprintf(w, "trajplot loads every %s trajectory file in DIR and draws the charts\n", trajplot.Ext)
	fmt.Fprintf(w, "of the catalog, overlaying all trajectories and/or one trajectory at a time.\n\n")
	fmt.Fprintf(w, "Options:\n")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintf(w, "\nExamples:\n")
	fmt.Fprintf(w, "  trajplot -d runs/ --list              # list chart codes\n")
	fmt.Fprintf(w, "  trajplot -d runs/ -s -o figs/         # save all combined charts to figs/\n")
	fmt.Fprintf(w, "  trajplot -d runs/ -s --separate --charts xt,alt,3D\n")
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("trajplot", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	dirFlag := fs.StringP("dir", "d", "", "Directory with the trajectory files")
	configFlag := fs.StringP("config", "c", "", "YAML configuration file")
	saveFlag := fs.BoolP("save", "s", false, "Write the charts to PNG files")
	outFlag := fs.StringP("out", "o", "", "Directory for the PNG files (default: working directory)")
	combinedFlag := fs.Bool("combined", true, "Draw the charts overlaying all trajectories")
	separateFlag := fs.Bool("separate", false, "Draw the charts of each trajectory on its own")
	chartsFlag := fs.StringSlice("charts", nil, "Comma-separated chart codes to draw (default: all)")
	dpiFlag := fs.Int("dpi", 0, "Resolution of the PNG files")
	listFlag := fs.Bool("list", false, "List the chart catalog and exit")
	summaryFlag := fs.Bool("summary", false, "Print a summary of each trajectory and exit")
	verboseFlag := fs.BoolP("verbose", "v", false, "Log every loaded trajectory and drawn chart")
	helpFlag := fs.BoolP("help", "h", false, "Show this help message")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintln(stderr, err)
		usage(fs, stderr)
		return 2
	}
	if *helpFlag {
		usage(fs, stdout)
		return 0
	}
	if *listFlag {
		listCatalog(stdout)
		return 0
	}
	level := slog.LevelInfo
	if *verboseFlag {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	var cfg Config
	if *configFlag != "" {
		var err error
		cfg, err = loadConfig(*configFlag)
		if err != nil {
			logger.Error("invalid configuration", "error", err)
			return 2
		}
	}
	if *dirFlag != "" {
		cfg.Dir = *dirFlag
	}
	if fs.Changed("out") {
		cfg.OutDir = *outFlag
	}
	if fs.Changed("charts") {
		cfg.Charts = *chartsFlag
	}
	if *dpiFlag > 0 {
		cfg.Record.DPI = *dpiFlag
		cfg.Combined.DPI = *dpiFlag
	}
	if cfg.Dir == "" {
		fmt.Fprintln(stderr, "a trajectory directory is required")
		usage(fs, stderr)
		return 2
	}
	charts, err := selectCharts(cfg.Charts)
	if err != nil {
		logger.Error("invalid chart selection", "error", err)
		return 2
	}

	coll, err := trajplot.NewCollection(cfg.Dir)
	if err != nil {
		var terr *trajplot.Error
		if errors.As(err, &terr) {
			logger.Error("can't build collection", "dir", cfg.Dir, "kind", terr.Kind(), "file", terr.FileName(), "trace", terr.Trace(), "error", err)
		} else {
			logger.Error("can't build collection", "dir", cfg.Dir, "error", err)
		}
		return 1
	}
	logger.Info("collection loaded", "dir", cfg.Dir, "records", coll.Len())
	for _, R := range coll.Records() {
		logger.Debug("record loaded", "name", R.Name(), "file", R.Path(), "samples", R.Len())
	}
	if err := configure(coll, cfg); err != nil {
		logger.Error("invalid configuration", "error", err)
		return 2
	}
	if *summaryFlag {
		if err := coll.WriteSummaries(stdout); err != nil {
			logger.Error("writing summary", "error", err)
			return 1
		}
		return 0
	}
	if *saveFlag && cfg.OutDir != "" {
		if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
			logger.Error("can't create output directory", "dir", cfg.OutDir, "error", err)
			return 1
		}
	}

	var failed int
	if *combinedFlag {
		for _, ch := range charts {
			if err := coll.PlotCombined(ch.Code, *saveFlag); err != nil {
				logger.Error("chart failed", "chart", ch.Code, "error", err)
				failed++
				continue
			}
			if *saveFlag {
				logger.Debug("chart written", "chart", ch.Code, "file", filepath.Join(cfg.OutDir, ch.OverlayFile()))
			}
		}
	}
	if *separateFlag {
		for _, R := range coll.Records() {
			if *saveFlag {
				R.EnableSaving()
			} else {
				R.DisableSaving()
			}
			for _, ch := range charts {
				if ch.OverlayOnly {
					continue
				}
				if err := R.Plot(ch.Code); err != nil {
					logger.Error("chart failed", "chart", ch.Code, "record", R.Name(), "error", err)
					failed++
					continue
				}
				if *saveFlag {
					logger.Debug("chart written", "chart", ch.Code, "file", filepath.Join(cfg.OutDir, ch.SingleFile(R.Name())))
				}
			}
		}
	}
	if failed > 0 {
		logger.Warn("some charts failed", "failed", failed)
		return 1
	}
	logger.Info("done", "charts", len(charts), "saved", *saveFlag)
	return 0
}

//selectCharts returns the charts with the given codes, or the whole catalog if none is given.
func selectCharts(codes []string) ([]chart.Chart, error) {
	if len(codes) == 0 {
		return chart.Catalog(), nil
	}
	ret := make([]chart.Chart, 0, len(codes))
	for _, v := range codes {
		ch, err := chart.Find(strings.TrimSpace(v))
		if err != nil {
			return nil, err
		}
		ret = append(ret, ch)
	}
	return ret, nil
}

//configure applies the configuration to the collection's style and to the style of each record.
func configure(coll *trajplot.Collection, cfg Config) error {
	st, err := cfg.Combined.apply(coll.Style())
	if err != nil {
		return fmt.Errorf("combined: %w", err)
	}
	st.OutDir = cfg.OutDir
	coll.SetStyle(st)
	for _, R := range coll.Records() {
		st, err := cfg.Record.apply(R.Style())
		if err != nil {
			return fmt.Errorf("record: %w", err)
		}
		st.OutDir = cfg.OutDir
		R.SetStyle(st)
	}
	return nil
}

func listCatalog(w io.Writer) {
	for _, ch := range chart.Catalog() {
		mode := "single, combined"
		if ch.OverlayOnly {
			mode = "combined"
		}
		fmt.Fprintf(w, "%-7s %-8s %-40s (%s)\n", ch.Code, ch.Kind, strings.Join(ch.Labels, " / "), mode)
	}
}
