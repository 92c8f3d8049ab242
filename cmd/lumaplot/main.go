// Luma plot tool - plots a recorded samples.csv as luma over time per probe.
//
// Usage: go run ./cmd/lumaplot -samples out/samples.csv -out luma.png
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pthm-cable/lumaprobe/telemetry"
)

func main() {
	samplesPath := flag.String("samples", "samples.csv", "Path to samples.csv written with -output-dir")
	outPath := flag.String("out", "luma.png", "Output image path (format from extension)")
	title := flag.String("title", "", "Plot title (empty = run ID)")
	probe := flag.String("probe", "", "Only plot this probe (empty = all)")
	flag.Parse()

	records, err := telemetry.ReadSamples(*samplesPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read samples: %v\n", err)
		os.Exit(1)
	}

	if *probe != "" {
		filtered := records[:0]
		for _, r := range records {
			if r.Probe == *probe {
				filtered = append(filtered, r)
			}
		}
		records = filtered
	}

	t := *title
	if t == "" && len(records) > 0 {
		t = fmt.Sprintf("%s (run %s)", filepath.Base(*samplesPath), records[0].RunID)
	}

	if err := telemetry.PlotLuma(records, t, *outPath); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to plot: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Plotted %d samples to: %s\n", len(records), *outPath)
}
