// Package charts renders throughput vs tenant count bar charts from
// simulator samples, one chart per distinct processing time.
package charts

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/tenantsim/simplot/pkg/config"
	log "github.com/tenantsim/simplot/pkg/logging"
	result "github.com/tenantsim/simplot/pkg/results"
	"github.com/tenantsim/simplot/pkg/sample"
)

// RenderAll renders one grouped bar chart per distinct processing time among
// the samples matching the configured distribution. Zero matching samples is
// not an error, the run simply produces no files.
// Returns the paths of the files written.
func RenderAll(samples []sample.Sample, cfg config.Config) ([]string, error) {
	matching := result.FilterDistribution(samples, cfg.Distribution)
	if len(matching) == 0 {
		log.Warnf("😥 No %q samples to render", cfg.Distribution)
		return nil, nil
	}
	var written []string
	for _, pt := range result.ProcTimeLabels(matching) {
		group := result.ForProcTime(matching, pt)
		out := filepath.Join(cfg.OutputDir, fmt.Sprintf("throughput_procTime%sns.%s", pt, cfg.Ext()))
		if err := renderGraph(group, pt, cfg, out); err != nil {
			return written, err
		}
		log.Infof("📈 Wrote %s", out)
		written = append(written, out)
	}
	return written, nil
}

// renderGraph renders throughput vs tenants for a particular processing time
// and writes the chart to out. The samples in group share one processing time.
func renderGraph(group []sample.Sample, procLabel string, cfg config.Config, out string) error {
	// Tenant counts are the x-axis categories, ascending. Context switch
	// values become the bar series, ascending, so colors and legend order
	// are stable across runs.
	tenants := result.TenantCounts(group)
	cswitches := result.CSwitchLabels(group)

	entries := make([]legendEntry, 0, len(cswitches))
	styles := make([]chart.Style, 0, len(cswitches))
	for i, cs := range cswitches {
		color := chart.GetDefaultColor(i)
		styles = append(styles, chart.Style{
			FillColor:   color,
			StrokeColor: color,
			StrokeWidth: 1,
		})
		entries = append(entries, legendEntry{
			Label: microseconds(cs) + " µs",
			Color: color,
		})
	}

	// One bar per (tenant, context switch) pair so series for the same
	// tenant count sit side by side. Only the middle bar of each group
	// carries the tenant label.
	mid := len(cswitches) / 2
	var bars []chart.Value
	for _, t := range tenants {
		for i, cs := range cswitches {
			label := ""
			if i == mid {
				label = strconv.Itoa(t)
			}
			bars = append(bars, chart.Value{
				Value: result.CellThroughput(group, cs, t),
				Label: label,
				Style: styles[i],
			})
		}
	}

	// Anchor the y-range at zero with an explicit maximum. go-chart rejects
	// a zero-delta range, which a flat-valued group (a single sample, or
	// equal throughput across every bar) would otherwise produce.
	maxTput := 0.0
	for _, b := range bars {
		if b.Value > maxTput {
			maxTput = b.Value
		}
	}
	if maxTput <= 0 {
		maxTput = 1
	}

	barWidth, barSpacing := barGeometry(cfg.Width, len(bars))
	bc := chart.BarChart{
		Title:  fmt.Sprintf("Processing time of %s µs per request", microseconds(procLabel)),
		Width:  cfg.Width,
		Height: cfg.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 48, Left: 24, Right: 24, Bottom: 48},
		},
		BarWidth:     barWidth,
		BarSpacing:   barSpacing,
		UseBaseValue: true,
		BaseValue:    0.0,
		YAxis: chart.YAxis{
			Name:  "Throughput (requests per second)",
			Range: &chart.ContinuousRange{Min: 0, Max: maxTput},
		},
		Bars: bars,
		Elements: []chart.Renderable{
			seriesLegend(entries),
			xAxisCaption("Number of tenants"),
		},
	}

	fp, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create chart file %q: %w", out, err)
	}
	defer fp.Close()
	if err := bc.Render(provider(cfg), fp); err != nil {
		return fmt.Errorf("failed to render %q: %w", out, err)
	}
	return nil
}

// provider maps the configured image format to a go-chart renderer.
func provider(cfg config.Config) chart.RendererProvider {
	if cfg.Ext() == "png" {
		return chart.PNG
	}
	return chart.SVG
}

// barGeometry sizes the bars so every group fits the canvas width.
func barGeometry(width, bars int) (int, int) {
	if bars == 0 {
		return 1, 1
	}
	// Leave room for the y-axis and the background padding.
	avail := width - 160
	spacing := 6
	barWidth := avail/bars - spacing
	if barWidth > 60 {
		barWidth = 60
	}
	if barWidth < 4 {
		barWidth = 4
	}
	return barWidth, spacing
}

// microseconds converts a nanosecond label from the data file to a
// microsecond display value, e.g. "500" -> "0.5".
func microseconds(nsLabel string) string {
	ns, err := strconv.ParseFloat(nsLabel, 64)
	if err != nil {
		return nsLabel
	}
	return strconv.FormatFloat(ns/1000, 'f', -1, 64)
}
