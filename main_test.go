package main

import (
	"testing"

	"github.com/BusselW/navmenu/internal/config"
)

func TestProbeTerminalCoversStandardDescriptors(t *testing.T) {
	report := probeTerminal()
	for _, name := range []string{"stdin", "stdout", "stderr"} {
		if _, ok := report.TTY[name]; !ok {
			t.Fatalf("expected %s in the terminal report, got %v", name, report.TTY)
		}
	}
	if report.Source != "" && report.Width <= 0 {
		t.Fatalf("detected terminal %q must carry a size, got %dx%d", report.Source, report.Width, report.Height)
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Runtime{
		MenuFile:   "menu.yaml",
		Width:      80,
		Height:     24,
		ShowFooter: true,
		Verbose:    true,
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"menu":    "menu.yaml",
			"width":   "80",
			"height":  "24",
			"footer":  "true",
			"verbose": "true",
		},
		Args: []string{"--menu", "menu.yaml"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["menu"] != "menu.yaml" {
		t.Fatalf("expected menu flag %q, got %v", "menu.yaml", flagsValue["menu"])
	}
	if flagsValue["width"] != "80" {
		t.Fatalf("expected width 80, got %v", flagsValue["width"])
	}
	if flagsValue["height"] != "24" {
		t.Fatalf("expected height 24, got %v", flagsValue["height"])
	}
	if flagsValue["footer"] != "true" {
		t.Fatalf("expected footer flag true, got %v", flagsValue["footer"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}

	if _, ok := payload["terminal"].(terminalReport); !ok {
		t.Fatalf("expected terminal report in payload")
	}
	if cfgValue, ok := payload["config"].(config.Runtime); !ok {
		t.Fatalf("expected runtime config in payload")
	} else if cfgValue.MenuFile != cfg.MenuFile || cfgValue.Width != cfg.Width {
		t.Fatalf("expected runtime config %#v, got %#v", cfg, cfgValue)
	}
}
