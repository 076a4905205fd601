package result

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	math "github.com/aclements/go-moremath/stats"
	stats "github.com/montanaflynn/stats"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tenantsim/simplot/pkg/logging"
	"github.com/tenantsim/simplot/pkg/sample"
)

// Specify Language specific case wrapper as global variable
var caser = cases.Title(language.English)

const tputMetric = "req/s"

// ScenarioResults holds every sample of one rendering run
type ScenarioResults struct {
	Samples []sample.Sample
	Metadata
}

// Metadata for the run
type Metadata struct {
	RunID        string    `json:"uuid"`
	DataFile     string    `json:"dataFile"`
	Distribution string    `json:"distribution"`
	Timestamp    time.Time `json:"timestamp"`
}

// FilterDistribution returns the samples whose distribution label equals dist.
// Samples with any other label never reach a chart or a summary.
func FilterDistribution(samples []sample.Sample, dist string) []sample.Sample {
	var matching []sample.Sample
	for _, s := range samples {
		if s.Distribution == dist {
			matching = append(matching, s)
		}
	}
	return matching
}

// distinctLabels returns the distinct labels produced by key, ascending by
// the numeric value paired with each label. Set iteration order must never
// leak into the output, charts have to be reproducible across runs.
func distinctLabels(samples []sample.Sample, key func(sample.Sample) (string, float64)) []string {
	seen := make(map[string]float64)
	for _, s := range samples {
		label, value := key(s)
		seen[label] = value
	}
	labels := make([]string, 0, len(seen))
	for label := range seen {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool { return seen[labels[i]] < seen[labels[j]] })
	return labels
}

// ProcTimeLabels returns the distinct processing time labels among samples,
// ascending by numeric value.
func ProcTimeLabels(samples []sample.Sample) []string {
	return distinctLabels(samples, func(s sample.Sample) (string, float64) {
		return s.ProcTimeLabel, s.ProcTime
	})
}

// CSwitchLabels returns the distinct context switch labels among samples,
// ascending by numeric value.
func CSwitchLabels(samples []sample.Sample) []string {
	return distinctLabels(samples, func(s sample.Sample) (string, float64) {
		return s.CSwitchLabel, s.CSwitch
	})
}

// TenantCounts returns the distinct tenant counts among samples, ascending.
func TenantCounts(samples []sample.Sample) []int {
	seen := make(map[int]struct{})
	for _, s := range samples {
		seen[s.Tenants] = struct{}{}
	}
	tenants := make([]int, 0, len(seen))
	for t := range seen {
		tenants = append(tenants, t)
	}
	sort.Ints(tenants)
	return tenants
}

// ForProcTime returns the samples whose processing time label equals label.
func ForProcTime(samples []sample.Sample, label string) []sample.Sample {
	var matching []sample.Sample
	for _, s := range samples {
		if s.ProcTimeLabel == label {
			matching = append(matching, s)
		}
	}
	return matching
}

// Series returns the samples of one context switch series, ordered by
// ascending tenant count.
func Series(samples []sample.Sample, csLabel string) []sample.Sample {
	var series []sample.Sample
	for _, s := range samples {
		if s.CSwitchLabel == csLabel {
			series = append(series, s)
		}
	}
	sort.SliceStable(series, func(i, j int) bool { return series[i].Tenants < series[j].Tenants })
	return series
}

// CellThroughputs returns the throughput values measured for one
// (context switch, tenant count) cell.
func CellThroughputs(samples []sample.Sample, csLabel string, tenants int) []float64 {
	var vals []float64
	for _, s := range samples {
		if s.CSwitchLabel == csLabel && s.Tenants == tenants {
			vals = append(vals, s.Throughput)
		}
	}
	return vals
}

// CellThroughput returns the throughput for one (context switch, tenant
// count) cell, averaging replicated measurements. A cell absent from the
// samples yields 0 so bar groups stay aligned across series.
func CellThroughput(samples []sample.Sample, csLabel string, tenants int) float64 {
	vals := CellThroughputs(samples, csLabel, tenants)
	if len(vals) == 0 {
		return 0
	}
	avg, _ := Average(vals)
	return avg
}

// Average accepts array of floats to calculate average
func Average(vals []float64) (float64, error) {
	return stats.Mean(vals)
}

// Percentile accepts array of floats and the desired %tile to calculate
func Percentile(vals []float64, ptile float64) (float64, error) {
	return stats.Percentile(vals, ptile)
}

// ConfidenceInterval accepts array of floats to calculate the CI
func ConfidenceInterval(vals []float64, ci float64) (float64, float64, float64) {
	return math.MeanCI(vals, ci)
}

// Method to init common table structure.
func initTable(header []string) *tablewriter.Table {
	// Create a new table writer with the appropriate header and alignment options
	table := tablewriter.NewWriter(os.Stdout)
	// Add a header to the table
	table.SetHeader(header)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	return table
}

// ShowSummary accepts ScenarioResults and presents the per series throughput
// aggregates to the user via stdout
func ShowSummary(sr ScenarioResults) {
	if len(sr.Samples) == 0 {
		return
	}
	logging.Debug("Rendering throughput summary")
	table := initTable([]string{"Result Type", "Proc Time (ns)", "Context Switch (ns)", "Tenants", "Samples", "Avg value", "Median value", "95% Confidence Interval"})
	for _, pt := range ProcTimeLabels(sr.Samples) {
		group := ForProcTime(sr.Samples, pt)
		for _, cs := range CSwitchLabels(group) {
			series := Series(group, cs)
			tput := make([]float64, 0, len(series))
			for _, s := range series {
				tput = append(tput, s.Throughput)
			}
			avg, _ := Average(tput)
			// Percentile rejects a single-element input.
			med := tput[0]
			if len(tput) > 1 {
				med, _ = Percentile(tput, 50)
			}
			var lo, hi float64
			if len(tput) > 1 {
				_, lo, hi = ConfidenceInterval(tput, 0.95)
			}
			tenants := TenantCounts(series)
			span := fmt.Sprintf("%d-%d", tenants[0], tenants[len(tenants)-1])
			table.Append([]string{fmt.Sprintf("📊 %s Results", caser.String(strings.ToLower(sr.Distribution))), pt, cs, span, strconv.Itoa(len(series)), fmt.Sprintf("%f (%s)", avg, tputMetric), fmt.Sprintf("%f (%s)", med, tputMetric), fmt.Sprintf("%f-%f (%s)", lo, hi, tputMetric)})
		}
	}
	table.Render()
}
