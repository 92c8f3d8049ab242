package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/lumaprobe/config"
)

// csvFile is an output CSV that writes its header once.
type csvFile struct {
	f             *os.File
	headerWritten bool
}

func createCSV(dir, name string) (*csvFile, error) {
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", name, err)
	}
	return &csvFile{f: f}, nil
}

// write appends records, with a header on first use. records must be a
// slice of csv-tagged structs.
func (c *csvFile) write(records any) error {
	if c == nil {
		return nil
	}
	if !c.headerWritten {
		if err := gocsv.Marshal(records, c.f); err != nil {
			return err
		}
		c.headerWritten = true
		return nil
	}
	return gocsv.MarshalWithoutHeaders(records, c.f)
}

func (c *csvFile) close() error {
	if c == nil {
		return nil
	}
	return c.f.Close()
}

// OutputManager handles run output: windowed stats, perf and per-query
// samples as CSV, plus the effective configuration.
type OutputManager struct {
	dir string

	luminance *csvFile
	perf      *csvFile
	samples   *csvFile
}

// NewOutputManager creates the output directory and files. Returns nil if dir
// is empty (output disabled). samples.csv is only created when recordSamples
// is set.
func NewOutputManager(dir string, recordSamples bool) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}
	var err error
	if om.luminance, err = createCSV(dir, "luminance.csv"); err != nil {
		return nil, err
	}
	if om.perf, err = createCSV(dir, "perf.csv"); err != nil {
		om.Close()
		return nil, err
	}
	if recordSamples {
		if om.samples, err = createCSV(dir, "samples.csv"); err != nil {
			om.Close()
			return nil, err
		}
	}

	return om, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteStats writes a window stats record to luminance.csv.
func (om *OutputManager) WriteStats(stats WindowStats) error {
	if om == nil {
		return nil
	}
	if err := om.luminance.write([]WindowStats{stats}); err != nil {
		return fmt.Errorf("writing luminance stats: %w", err)
	}
	return nil
}

// WritePerf writes a performance stats record to perf.csv.
func (om *OutputManager) WritePerf(stats PerfStats, runID string, windowEnd int32) error {
	if om == nil {
		return nil
	}
	if err := om.perf.write([]PerfStatsCSV{stats.ToCSV(runID, windowEnd)}); err != nil {
		return fmt.Errorf("writing perf: %w", err)
	}
	return nil
}

// WriteSamples appends per-query records to samples.csv. It is a no-op when
// sample recording is disabled.
func (om *OutputManager) WriteSamples(records []SampleRecord) error {
	if om == nil || om.samples == nil || len(records) == 0 {
		return nil
	}
	if err := om.samples.write(records); err != nil {
		return fmt.Errorf("writing samples: %w", err)
	}
	return nil
}

// Path returns the path of a file in the output directory.
func (om *OutputManager) Path(name string) string {
	if om == nil {
		return ""
	}
	return filepath.Join(om.dir, name)
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	var firstErr error
	for _, c := range []*csvFile{om.luminance, om.perf, om.samples} {
		if err := c.close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
