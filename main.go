package main

import (
	"fmt"
	"os"

	"github.com/BusselW/navmenu/internal/app"
	"github.com/BusselW/navmenu/internal/config"
	"github.com/BusselW/navmenu/internal/logging"
	"github.com/BusselW/navmenu/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	runtimeCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	traceStartup(runtimeCfg)

	if err := app.Run(runtimeCfg); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func traceStartup(cfg config.Runtime) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Runtime) map[string]any {
	flags := make(map[string]any, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	return map[string]any{
		"argv":     cfg.Args,
		"flags":    flags,
		"config":   cfg,
		"terminal": probeTerminal(),
	}
}

// terminalReport records which standard descriptors are terminals and the
// size the program will render into.
type terminalReport struct {
	TTY    map[string]bool `json:"tty"`
	Source string          `json:"source,omitempty"`
	Width  int             `json:"width,omitempty"`
	Height int             `json:"height,omitempty"`
}

func probeTerminal() terminalReport {
	report := terminalReport{TTY: make(map[string]bool, 3)}
	for _, probe := range []struct {
		name string
		file *os.File
	}{
		{"stdin", os.Stdin},
		{"stdout", os.Stdout},
		{"stderr", os.Stderr},
	} {
		fd := int(probe.file.Fd())
		isTerminal := term.IsTerminal(fd)
		report.TTY[probe.name] = isTerminal
		if !isTerminal || report.Source != "" {
			continue
		}
		if width, height, err := term.GetSize(fd); err == nil {
			report.Source = probe.name
			report.Width = width
			report.Height = height
		}
	}
	return report
}
