package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/BusselW/navmenu/internal/menu"
	"github.com/BusselW/navmenu/internal/source"
)

const envPrefix = "NAVMENU_OPT_"

// fileOptions mirrors the on-disk menu definition. Delays and durations are
// carried in milliseconds/seconds the way host pages configure them.
type fileOptions struct {
	Layers                   int        `koanf:"layers"`
	TriggerType              string     `koanf:"triggerType"`
	HoverDelayMS             int        `koanf:"hoverDelay"`
	CloseDelayMS             int        `koanf:"closeDelay"`
	CloseOnOutsideClick      *bool      `koanf:"closeOnOutsideClick"`
	CloseOnEscape            *bool      `koanf:"closeOnEscape"`
	EnableKeyboardNavigation *bool      `koanf:"enableKeyboardNavigation"`
	MobileBreakpoint         *int       `koanf:"mobileBreakpoint"`
	CacheData                *bool      `koanf:"cacheData"`
	CacheDurationSec         int        `koanf:"cacheDuration"`
	DataSource               fileSource `koanf:"dataSource"`
}

type fileSource struct {
	Type           string            `koanf:"type"`
	URL            string            `koanf:"url"`
	Method         string            `koanf:"method"`
	Headers        map[string]string `koanf:"headers"`
	Body           string            `koanf:"body"`
	Items          []map[string]any  `koanf:"items"`
	SortDescending bool              `koanf:"sortDescending"`
}

// LoadOptionsFile reads a YAML menu definition, layers NAVMENU_OPT_*
// environment overrides on top, and returns validated options.
func LoadOptionsFile(path string) (Options, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return Options{}, fmt.Errorf("load menu definition %s: %w", path, err)
	}
	if err := k.Load(env.Provider(envPrefix, ".", func(key string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(key, envPrefix)), "__", ".")
	}), nil); err != nil {
		return Options{}, fmt.Errorf("load environment overrides: %w", err)
	}

	var raw fileOptions
	if err := k.Unmarshal("", &raw); err != nil {
		return Options{}, fmt.Errorf("parse menu definition %s: %w", path, err)
	}
	return raw.toOptions()
}

func (f fileOptions) toOptions() (Options, error) {
	opts := Defaults()
	if f.Layers != 0 {
		opts.Layers = f.Layers
	}
	if f.TriggerType != "" {
		opts.TriggerType = TriggerType(f.TriggerType)
	}
	if f.HoverDelayMS != 0 {
		opts.HoverDelay = time.Duration(f.HoverDelayMS) * time.Millisecond
	}
	if f.CloseDelayMS != 0 {
		opts.CloseDelay = time.Duration(f.CloseDelayMS) * time.Millisecond
	}
	if f.CloseOnOutsideClick != nil {
		opts.CloseOnOutsideClick = *f.CloseOnOutsideClick
	}
	if f.CloseOnEscape != nil {
		opts.CloseOnEscape = *f.CloseOnEscape
	}
	if f.EnableKeyboardNavigation != nil {
		opts.EnableKeyboardNavigation = *f.EnableKeyboardNavigation
	}
	if f.MobileBreakpoint != nil {
		opts.MobileBreakpoint = *f.MobileBreakpoint
	}
	if f.CacheData != nil {
		opts.CacheData = *f.CacheData
	}
	if f.CacheDurationSec != 0 {
		opts.CacheDuration = time.Duration(f.CacheDurationSec) * time.Second
	}
	if f.DataSource.Type != "" {
		kind, err := source.ParseKind(f.DataSource.Type)
		if err != nil {
			return Options{}, &ValidationError{Field: "dataSource.type", Reason: err.Error()}
		}
		items := make([]menu.RawRecord, 0, len(f.DataSource.Items))
		for _, item := range f.DataSource.Items {
			items = append(items, menu.RawRecord(item))
		}
		opts.Source = source.Config{
			Kind:           kind,
			URL:            f.DataSource.URL,
			Method:         f.DataSource.Method,
			Headers:        f.DataSource.Headers,
			Body:           f.DataSource.Body,
			Items:          items,
			SortDescending: f.DataSource.SortDescending,
		}
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}
