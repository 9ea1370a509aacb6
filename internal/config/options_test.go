package config

import (
	"errors"
	"testing"
	"time"

	"github.com/BusselW/navmenu/internal/source"
)

func TestDefaultsValidate(t *testing.T) {
	if err := Defaults().Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestValidateLayerBounds(t *testing.T) {
	for _, layers := range []int{1, 2, 3} {
		opts := Defaults()
		opts.Layers = layers
		if err := opts.Validate(); err != nil {
			t.Fatalf("layers=%d should validate: %v", layers, err)
		}
	}
	for _, layers := range []int{0, 4, -1} {
		opts := Defaults()
		opts.Layers = layers
		err := opts.Validate()
		if err == nil {
			t.Fatalf("layers=%d should fail validation", layers)
		}
		var verr *ValidationError
		if !errors.As(err, &verr) || verr.Field != "layers" {
			t.Fatalf("expected layers validation error, got %v", err)
		}
	}
}

func TestValidateTriggerType(t *testing.T) {
	opts := Defaults()
	opts.TriggerType = "touch"
	var verr *ValidationError
	if err := opts.Validate(); !errors.As(err, &verr) || verr.Field != "triggerType" {
		t.Fatalf("expected triggerType validation error, got %v", err)
	}
	opts.TriggerType = TriggerClick
	if err := opts.Validate(); err != nil {
		t.Fatalf("click trigger should validate: %v", err)
	}
}

func TestValidateNegativeDurations(t *testing.T) {
	cases := []struct {
		field  string
		mutate func(*Options)
	}{
		{"hoverDelay", func(o *Options) { o.HoverDelay = -time.Millisecond }},
		{"closeDelay", func(o *Options) { o.CloseDelay = -time.Millisecond }},
		{"mobileBreakpoint", func(o *Options) { o.MobileBreakpoint = -1 }},
		{"cacheDuration", func(o *Options) { o.CacheDuration = -time.Second }},
	}
	for _, tc := range cases {
		opts := Defaults()
		tc.mutate(&opts)
		var verr *ValidationError
		if err := opts.Validate(); !errors.As(err, &verr) || verr.Field != tc.field {
			t.Fatalf("expected %s validation error, got %v", tc.field, err)
		}
	}
}

func TestValidateRemoteSourcesRequireURL(t *testing.T) {
	for _, kind := range []source.Kind{source.KindDocument, source.KindRemoteAPI} {
		opts := Defaults()
		opts.Source = source.Config{Kind: kind}
		var verr *ValidationError
		if err := opts.Validate(); !errors.As(err, &verr) || verr.Field != "dataSource.url" {
			t.Fatalf("kind %s without url should fail, got %v", kind, err)
		}
		opts.Source.URL = "https://example.com/menu"
		if err := opts.Validate(); err != nil {
			t.Fatalf("kind %s with url should validate: %v", kind, err)
		}
	}
}

func TestParseTriggerType(t *testing.T) {
	if _, err := ParseTriggerType("hover"); err != nil {
		t.Fatalf("hover: %v", err)
	}
	if _, err := ParseTriggerType("click"); err != nil {
		t.Fatalf("click: %v", err)
	}
	if _, err := ParseTriggerType("focus"); err == nil {
		t.Fatal("expected error for unknown trigger")
	}
}
