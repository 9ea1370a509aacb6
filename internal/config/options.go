// Package config defines the recognized menu options, their validation, and
// the runtime configuration of the navmenu binary.
package config

import (
	"fmt"
	"time"

	"github.com/BusselW/navmenu/internal/source"
)

// TriggerType selects how submenus are opened.
type TriggerType string

const (
	TriggerHover TriggerType = "hover"
	TriggerClick TriggerType = "click"
)

// ParseTriggerType resolves a configured trigger-type string.
func ParseTriggerType(value string) (TriggerType, error) {
	switch TriggerType(value) {
	case TriggerHover, TriggerClick:
		return TriggerType(value), nil
	default:
		return "", fmt.Errorf("unrecognized trigger type %q", value)
	}
}

// Options holds every recognized menu option. Construct from Defaults and
// override; unvalidated instances must pass Validate before use.
type Options struct {
	Layers                   int
	TriggerType              TriggerType
	HoverDelay               time.Duration
	CloseDelay               time.Duration
	CloseOnOutsideClick      bool
	CloseOnEscape            bool
	EnableKeyboardNavigation bool
	MobileBreakpoint         int
	CacheData                bool
	CacheDuration            time.Duration
	Source                   source.Config
}

// Defaults returns the baseline option set: a three-layer hover menu with
// caching enabled and an empty static source.
func Defaults() Options {
	return Options{
		Layers:                   3,
		TriggerType:              TriggerHover,
		HoverDelay:               200 * time.Millisecond,
		CloseDelay:               300 * time.Millisecond,
		CloseOnOutsideClick:      true,
		CloseOnEscape:            true,
		EnableKeyboardNavigation: true,
		MobileBreakpoint:         768,
		CacheData:                true,
		CacheDuration:            5 * time.Minute,
		Source:                   source.Config{Kind: source.KindStatic},
	}
}

// ValidationError reports an out-of-range or unrecognized option value.
// It is fatal at construction time: no partial instance is produced.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid option %s: %s", e.Field, e.Reason)
}

// Validate checks every recognized option and returns the first violation.
func (o Options) Validate() error {
	if o.Layers < 1 || o.Layers > 3 {
		return &ValidationError{Field: "layers", Reason: fmt.Sprintf("must be between 1 and 3, got %d", o.Layers)}
	}
	if _, err := ParseTriggerType(string(o.TriggerType)); err != nil {
		return &ValidationError{Field: "triggerType", Reason: err.Error()}
	}
	if o.HoverDelay < 0 {
		return &ValidationError{Field: "hoverDelay", Reason: "must not be negative"}
	}
	if o.CloseDelay < 0 {
		return &ValidationError{Field: "closeDelay", Reason: "must not be negative"}
	}
	if o.MobileBreakpoint < 0 {
		return &ValidationError{Field: "mobileBreakpoint", Reason: "must not be negative"}
	}
	if o.CacheDuration < 0 {
		return &ValidationError{Field: "cacheDuration", Reason: "must not be negative"}
	}
	if _, err := source.ParseKind(string(o.Source.Kind)); err != nil {
		return &ValidationError{Field: "dataSource.type", Reason: err.Error()}
	}
	switch o.Source.Kind {
	case source.KindDocument, source.KindRemoteAPI:
		if o.Source.URL == "" {
			return &ValidationError{Field: "dataSource.url", Reason: "required for remote sources"}
		}
	}
	return nil
}
