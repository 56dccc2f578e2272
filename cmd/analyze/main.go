package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/guptarohit/asciigraph"

	"access-analytics/internal/models"
	"access-analytics/internal/reports"
)

const defaultTopUserAgents = 10

// analyze reads a logfile from disk and prints its hourly and monthly
// statistics without going through the HTTP service.
func main() {
	formatFlag := flag.String("format", "simple", "log format: simple or combined")
	chartFlag := flag.Bool("chart", false, "plot the hourly counts as an ASCII chart")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <logfile>\n\nFlags:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	path := flag.Arg(0)

	if err := run(path, *formatFlag, *chartFlag); err != nil {
		fmt.Fprintf(os.Stderr, "analyze: %v\n", err)
		os.Exit(1)
	}
}

func run(path, formatName string, chart bool) error {
	format, err := models.NewLogFormatFromString(formatName)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read logfile: %w", err)
	}

	logfile := &models.RawLogfile{
		LogID:   filepath.Base(path),
		Name:    filepath.Base(path),
		Format:  format,
		Content: content,
	}

	report, err := reports.NewReportBuilder(defaultTopUserAgents).Build(logfile)
	if err != nil {
		return err
	}

	if err := reports.RenderSummary(os.Stdout, report); err != nil {
		return err
	}
	fmt.Println()
	if err := reports.RenderHourlyCounts(os.Stdout, report.HourCounts); err != nil {
		return err
	}
	fmt.Println()
	if err := reports.RenderMonthlyCounts(os.Stdout, report.MonthCounts); err != nil {
		return err
	}

	if chart {
		fmt.Println()
		fmt.Println(plotHourly(report.HourCounts))
	}

	return nil
}

func plotHourly(counts [24]int64) string {
	data := make([]float64, len(counts))
	for hour, count := range counts {
		data[hour] = float64(count)
	}
	return asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Caption("accesses per hour (0-23)"),
	)
}
