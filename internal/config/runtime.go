package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Runtime captures configuration for the navmenu binary itself, as opposed
// to the menu Options loaded from the definition file.
type Runtime struct {
	MenuFile   string
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	Watch      time.Duration
	Logging    Logging
	Flags      map[string]string
	Args       []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envMenuFile   = "NAVMENU_MENU_FILE"
	envWidth      = "NAVMENU_WIDTH"
	envHeight     = "NAVMENU_HEIGHT"
	envShowFooter = "NAVMENU_FOOTER"
	envVerbose    = "NAVMENU_VERBOSE"
	envWatch      = "NAVMENU_WATCH"
	envTrace      = "NAVMENU_TRACE"
	envLogFile    = "NAVMENU_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Runtime, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Runtime, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("navmenu", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	menuFile := fs.String("menu", envOrDefault(env, envMenuFile, ""), "path to the menu definition file (YAML)")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "print activation messages for menu items")
	watch := fs.Int("watch", envOrInt(env, envWatch, 0), "re-fetch the data source every N seconds (0 disables)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Runtime{}, err
	}

	if *width < 0 {
		return Runtime{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Runtime{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *watch < 0 {
		return Runtime{}, fmt.Errorf("watch must be >= 0 (got %d)", *watch)
	}

	cfg := Runtime{
		MenuFile:   *menuFile,
		Width:      *width,
		Height:     *height,
		ShowFooter: *footer,
		Verbose:    *verbose,
		Watch:      time.Duration(*watch) * time.Second,
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"menu":    *menuFile,
			"width":   strconv.Itoa(*width),
			"height":  strconv.Itoa(*height),
			"footer":  strconv.FormatBool(*footer),
			"verbose": strconv.FormatBool(*verbose),
			"watch":   strconv.Itoa(*watch),
			"trace":   strconv.FormatBool(*trace),
			"logFile": *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Runtime {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}
