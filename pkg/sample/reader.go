package sample

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	log "github.com/tenantsim/simplot/pkg/logging"
)

// Number of whitespace-separated fields in a record.
// Dist ProcTime CSwitch Tenants Thrpt
const fieldCount = 5

// ReadFile reads simulator samples from the data file at path.
// Lines whose first character is '#' are comments, blank lines are ignored.
// A malformed record is skipped with a warning so one bad line does not
// throw away an entire simulation run.
func ReadFile(path string) ([]Sample, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open data file %q: %w", path, err)
	}
	defer fp.Close()
	var samples []Sample
	scanner := bufio.NewScanner(fp)
	num := 0
	for scanner.Scan() {
		num++
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || strings.HasPrefix(line, "#") {
			continue
		}
		s, err := parseRecord(line)
		if err != nil {
			log.Warnf("Skipping %s line %d: %v", path, num, err)
			continue
		}
		samples = append(samples, s)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read data file %q: %w", path, err)
	}
	return samples, nil
}

// parseRecord parses one whitespace-separated record into a Sample.
func parseRecord(line string) (Sample, error) {
	s := Sample{}
	fields := strings.Fields(line)
	if len(fields) != fieldCount {
		return s, fmt.Errorf("expected %d fields, got %d", fieldCount, len(fields))
	}
	s.Distribution = fields[0]
	var err error
	s.ProcTime, err = strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return s, fmt.Errorf("bad processing time %q", fields[1])
	}
	s.ProcTimeLabel = fields[1]
	s.CSwitch, err = strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return s, fmt.Errorf("bad context switch cost %q", fields[2])
	}
	s.CSwitchLabel = fields[2]
	s.Tenants, err = strconv.Atoi(fields[3])
	if err != nil {
		return s, fmt.Errorf("bad tenant count %q", fields[3])
	}
	s.Throughput, err = strconv.ParseFloat(fields[4], 64)
	if err != nil {
		return s, fmt.Errorf("bad throughput %q", fields[4])
	}
	return s, nil
}
