package archive

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	result "github.com/tenantsim/simplot/pkg/results"
)

const tputMetric = "req/s"

// Doc struct of the JSON document emitted for each measured cell
type Doc struct {
	UUID         string    `json:"uuid"`
	Timestamp    time.Time `json:"timestamp"`
	DataFile     string    `json:"dataFile"`
	Distribution string    `json:"distribution"`
	ProcTime     string    `json:"procTimeNs"`
	CSwitch      string    `json:"cswitchNs"`
	Tenants      int       `json:"tenants"`
	Samples      int       `json:"samples"`
	Throughput   float64   `json:"throughput"`
	TputMetric   string    `json:"tputMetric"`
	Confidence   []float64 `json:"confidence"`
}

// BuildDocs returns the documents that need to be exported or an error.
// One document per (processing time, context switch, tenant count) cell.
func BuildDocs(sr result.ScenarioResults) ([]Doc, error) {
	if len(sr.Samples) < 1 {
		return nil, fmt.Errorf("no result documents")
	}
	var docs []Doc
	for _, pt := range result.ProcTimeLabels(sr.Samples) {
		group := result.ForProcTime(sr.Samples, pt)
		for _, cs := range result.CSwitchLabels(group) {
			series := result.Series(group, cs)
			for _, t := range result.TenantCounts(series) {
				vals := result.CellThroughputs(series, cs, t)
				avg, _ := result.Average(vals)
				var lo, hi float64
				if len(vals) > 1 {
					_, lo, hi = result.ConfidenceInterval(vals, 0.95)
				}
				docs = append(docs, Doc{
					UUID:         sr.RunID,
					Timestamp:    sr.Timestamp,
					DataFile:     sr.DataFile,
					Distribution: sr.Distribution,
					ProcTime:     pt,
					CSwitch:      cs,
					Tenants:      t,
					Samples:      len(vals),
					Throughput:   avg,
					TputMetric:   tputMetric,
					Confidence:   []float64{lo, hi},
				})
			}
		}
	}
	return docs, nil
}

// Csv header fields.
func csvHeaderFields() []string {
	return []string{
		"Distribution",
		"Processing Time (ns)",
		"Context Switch (ns)",
		"Tenants",
		"# of Samples",
		"Avg Throughput",
		"Throughput Metric",
		"Confidence metric - low",
		"Confidence metric - high",
	}
}

// Csv data fields for one doc.
func csvDataFields(d Doc) []string {
	return []string{
		d.Distribution,
		d.ProcTime,
		d.CSwitch,
		strconv.Itoa(d.Tenants),
		strconv.Itoa(d.Samples),
		strconv.FormatFloat(d.Throughput, 'f', -1, 64),
		d.TputMetric,
		strconv.FormatFloat(d.Confidence[0], 'f', -1, 64),
		strconv.FormatFloat(d.Confidence[1], 'f', -1, 64),
	}
}

// WriteCSVResult will write the throughput summary to the local filesystem
func WriteCSVResult(sr result.ScenarioResults) error {
	docs, err := BuildDocs(sr)
	if err != nil {
		return err
	}
	d := time.Now().Unix()
	fp, err := os.Create(fmt.Sprintf("throughput-summary-%d.csv", d))
	if err != nil {
		return fmt.Errorf("failed to open archive file")
	}
	defer fp.Close()
	archive := csv.NewWriter(fp)
	defer archive.Flush()

	if err := archive.Write(csvHeaderFields()); err != nil {
		return fmt.Errorf("failed to write result archive to file")
	}
	for _, doc := range docs {
		if err := archive.Write(csvDataFields(doc)); err != nil {
			return fmt.Errorf("failed to write archive to file")
		}
	}
	return nil
}

// WriteJSONResult sends the results as JSON to stdout
func WriteJSONResult(sr result.ScenarioResults) error {
	docs, err := BuildDocs(sr)
	if err != nil {
		return err
	}
	p, err := json.MarshalIndent(docs, " ", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(p))
	return nil
}
