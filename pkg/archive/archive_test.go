package archive

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	result "github.com/tenantsim/simplot/pkg/results"
	"github.com/tenantsim/simplot/pkg/sample"
)

func testResults() result.ScenarioResults {
	return result.ScenarioResults{
		Samples: []sample.Sample{
			{Distribution: "Zipf", ProcTime: 1000, ProcTimeLabel: "1000", CSwitch: 500, CSwitchLabel: "500", Tenants: 10, Throughput: 200},
			{Distribution: "Zipf", ProcTime: 1000, ProcTimeLabel: "1000", CSwitch: 500, CSwitchLabel: "500", Tenants: 20, Throughput: 150},
			{Distribution: "Zipf", ProcTime: 2000, ProcTimeLabel: "2000", CSwitch: 500, CSwitchLabel: "500", Tenants: 10, Throughput: 90},
		},
		Metadata: result.Metadata{
			RunID:        "test-uuid",
			DataFile:     "samples.data",
			Distribution: "Zipf",
			Timestamp:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		},
	}
}

// TestBuildDocs One document per measured cell, metadata carried through
func TestBuildDocs(t *testing.T) {
	docs, err := BuildDocs(testResults())
	if err != nil {
		t.Fatalf("Building docs failed : %v", err)
	}
	if len(docs) != 3 {
		t.Fatalf("Expected 3 docs, got %d", len(docs))
	}
	d := docs[0]
	if d.UUID != "test-uuid" {
		t.Errorf("Expected uuid test-uuid, got %q", d.UUID)
	}
	if d.ProcTime != "1000" || d.CSwitch != "500" || d.Tenants != 10 {
		t.Errorf("Unexpected first cell: %+v", d)
	}
	if d.Throughput != 200 {
		t.Errorf("Expected throughput 200, got %f", d.Throughput)
	}
	if d.Samples != 1 {
		t.Errorf("Expected 1 sample in the cell, got %d", d.Samples)
	}
}

// TestBuildDocsEmpty Testing for failure. No samples, no documents
func TestBuildDocsEmpty(t *testing.T) {
	_, err := BuildDocs(result.ScenarioResults{})
	if err == nil {
		t.Fatal("Building docs should have failed but succeeded")
	}
}

// TestWriteCSVResult The summary lands on disk with header and rows
func TestWriteCSVResult(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	})
	if err := WriteCSVResult(testResults()); err != nil {
		t.Fatalf("Writing CSV failed : %v", err)
	}
	matches, err := filepath.Glob("throughput-summary-*.csv")
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1 {
		t.Fatalf("Expected one summary CSV, got %d", len(matches))
	}
	fp, err := os.Open(matches[0])
	if err != nil {
		t.Fatal(err)
	}
	defer fp.Close()
	rows, err := csv.NewReader(fp).ReadAll()
	if err != nil {
		t.Fatalf("Reading the summary CSV back failed : %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("Expected a header and 3 rows, got %d rows", len(rows))
	}
	if rows[0][0] != "Distribution" {
		t.Errorf("Unexpected CSV header: %v", rows[0])
	}
	if rows[1][1] != "1000" || rows[1][3] != "10" {
		t.Errorf("Unexpected first CSV row: %v", rows[1])
	}
}
