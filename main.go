package main

import (
	"flag"
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/lumaprobe/config"
	"github.com/pthm-cable/lumaprobe/game"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics using software capture")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	statsWindow := flag.Float64("stats-window", 0, "Stats window size in seconds (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	panoramaDir := flag.String("panorama", "", "Write each probe's panorama PNG to this directory on exit")
	perfLog := flag.Bool("perf", false, "Log draw timing summaries (graphical mode)")
	debug := flag.Bool("debug", false, "Log capture refreshes")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	if *statsWindow > 0 {
		cfg.Telemetry.StatsWindow = *statsWindow
	}

	opts := game.Options{
		LogStats:  *logStats,
		OutputDir: *outputDir,
		Headless:  *headless,
		PerfLog:   *perfLog,
	}

	if *headless && *maxTicks == 0 && *panoramaDir != "" {
		slog.Warn("panorama is written on exit; set -max-ticks for headless runs")
	}

	if *headless {
		// Headless mode - software capture, no raylib window
		g := game.NewGameWithOptions(opts)
		defer g.Unload()

		slog.Info("starting headless run",
			"run_id", g.RunID(),
			"stats_window", cfg.Telemetry.StatsWindow,
			"max_ticks", *maxTicks,
		)

		for {
			g.UpdateHeadless()

			if *maxTicks > 0 && int(g.Tick()) >= *maxTicks {
				slog.Info("max ticks reached", "tick", g.Tick())
				break
			}
		}
		exportPanoramas(g, *panoramaDir)
		return
	}

	// Graphical mode
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Luminance Probes")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g := game.NewGameWithOptions(opts)
	defer g.Unload()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()

		if *maxTicks > 0 && int(g.Tick()) >= *maxTicks {
			break
		}
	}
	exportPanoramas(g, *panoramaDir)
}

func exportPanoramas(g *game.Game, dir string) {
	if dir == "" {
		return
	}
	if err := g.ExportPanoramas(dir); err != nil {
		slog.Error("failed to export panoramas", "error", err)
		return
	}
	slog.Info("panoramas written", "dir", dir)
}
