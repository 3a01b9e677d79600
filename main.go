package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"fittrack/internal/config"
	"fittrack/internal/sensor"
	"fittrack/internal/service"
	"fittrack/internal/store"
	"fittrack/internal/tui"
	"fittrack/internal/workout"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	feedPath := flag.String("feed", "", "path to a sensor packet feed (overrides config)")
	noTUI := flag.Bool("no-tui", false, "print summaries and exit without the TUI")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if errors.Is(err, config.ErrNoConfig) {
		if err := config.CreateExample(); err != nil {
			return fmt.Errorf("creating example config: %w", err)
		}
		configDir, _ := config.GetConfigDir()
		fmt.Printf("Created example config at %s/config.json, using defaults.\n\n", configDir)
		defaults := config.DefaultConfig()
		cfg = &defaults
	} else if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		configDir, _ := config.GetConfigDir()
		fmt.Printf("Config validation failed: %v\n\n", err)
		fmt.Printf("Please edit the config file at:\n  %s/config.json\n", configDir)
		return nil
	}

	// Open database
	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	// Read the packet feed; without one, process the built-in demo
	path := cfg.Feed.Path
	if *feedPath != "" {
		path = *feedPath
	}
	var packets []sensor.Packet
	if path != "" {
		packets, err = sensor.LoadFeed(path)
		if err != nil {
			return fmt.Errorf("loading feed: %w", err)
		}
	} else {
		packets = demoPackets()
	}

	// Process and print summaries
	proc := service.NewProcessor(db)
	results, err := proc.Process(packets)
	if err != nil {
		return fmt.Errorf("processing packets: %w", err)
	}
	fmt.Print(service.Report(results))

	if *noTUI || cfg.Display.NoTUI {
		return nil
	}

	// Launch TUI
	app := tui.NewApp(proc, cfg.Display.ChartHeight)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}

// demoPackets mirrors the sensor unit's self-test sequence.
func demoPackets() []sensor.Packet {
	return []sensor.Packet{
		{WorkoutType: workout.TagSwimming, Data: []any{720.0, 1.0, 80.0, 25.0, 40.0}},
		{WorkoutType: workout.TagRunning, Data: []any{15000.0, 1.0, 75.0}},
		{WorkoutType: workout.TagWalking, Data: []any{9000.0, 1.0, 75.0, 180.0}},
	}
}
