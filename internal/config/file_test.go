package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/BusselW/navmenu/internal/source"
)

func writeMenuFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "menu.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadOptionsFileOverlaysDefaults(t *testing.T) {
	path := writeMenuFile(t, `
layers: 2
triggerType: click
hoverDelay: 150
closeDelay: 450
closeOnEscape: false
cacheDuration: 60
dataSource:
  type: document
  url: https://example.com/menu.json
  headers:
    Authorization: Bearer token
`)

	opts, err := LoadOptionsFile(path)
	require.NoError(t, err)
	require.Equal(t, 2, opts.Layers)
	require.Equal(t, TriggerClick, opts.TriggerType)
	require.Equal(t, 150*time.Millisecond, opts.HoverDelay)
	require.Equal(t, 450*time.Millisecond, opts.CloseDelay)
	require.False(t, opts.CloseOnEscape)
	require.True(t, opts.CloseOnOutsideClick, "unset options keep their defaults")
	require.Equal(t, time.Minute, opts.CacheDuration)
	require.Equal(t, source.KindDocument, opts.Source.Kind)
	require.Equal(t, "https://example.com/menu.json", opts.Source.URL)
	require.Equal(t, "Bearer token", opts.Source.Headers["Authorization"])
}

func TestLoadOptionsFileStaticItems(t *testing.T) {
	path := writeMenuFile(t, `
dataSource:
  type: static
  items:
    - id: home
      title: Home
      url: /
    - id: about
      title: About
      url: /about
`)

	opts, err := LoadOptionsFile(path)
	require.NoError(t, err)
	require.Equal(t, source.KindStatic, opts.Source.Kind)
	require.Len(t, opts.Source.Items, 2)
	require.Equal(t, "home", opts.Source.Items[0].ID())
	require.Equal(t, "About", opts.Source.Items[1].Title())
}

func TestLoadOptionsFileRejectsInvalidValues(t *testing.T) {
	path := writeMenuFile(t, `
layers: 7
dataSource:
  type: static
`)
	_, err := LoadOptionsFile(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "layers")
}

func TestLoadOptionsFileRejectsUnknownSourceType(t *testing.T) {
	path := writeMenuFile(t, `
dataSource:
  type: carousel
`)
	_, err := LoadOptionsFile(path)
	require.Error(t, err)
}

func TestLoadOptionsFileEnvOverride(t *testing.T) {
	path := writeMenuFile(t, `
layers: 3
dataSource:
  type: static
`)
	t.Setenv("NAVMENU_OPT_LAYERS", "1")

	opts, err := LoadOptionsFile(path)
	require.NoError(t, err)
	require.Equal(t, 1, opts.Layers)
}

func TestLoadOptionsFileMissingFile(t *testing.T) {
	_, err := LoadOptionsFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadOptionsFileFromMarshaledDocument(t *testing.T) {
	doc := map[string]any{
		"layers":      1,
		"triggerType": "click",
		"dataSource": map[string]any{
			"type": "hierarchicalList",
			"url":  "https://example.com/_api/lists/menu",
		},
	}
	raw, err := yaml.Marshal(doc)
	require.NoError(t, err)
	path := writeMenuFile(t, string(raw))

	opts, err := LoadOptionsFile(path)
	require.NoError(t, err)
	require.Equal(t, 1, opts.Layers)
	require.Equal(t, TriggerClick, opts.TriggerType)
	require.Equal(t, source.KindHierarchicalList, opts.Source.Kind)
}
