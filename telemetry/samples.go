package telemetry

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
)

// SampleRecord is one probe query, as written to samples.csv.
type SampleRecord struct {
	RunID   string  `csv:"run_id"`
	Tick    int32   `csv:"tick"`
	SimTime float64 `csv:"sim_time"`
	ProbeID uint32  `csv:"probe_id"`
	Probe   string  `csv:"probe"`
	R       uint8   `csv:"r"`
	G       uint8   `csv:"g"`
	B       uint8   `csv:"b"`
	Luma    float64 `csv:"luma"`
}

// ReadSamples loads a samples.csv file.
func ReadSamples(path string) ([]SampleRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening samples: %w", err)
	}
	defer f.Close()

	var records []SampleRecord
	if err := gocsv.UnmarshalFile(f, &records); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return records, nil
}
