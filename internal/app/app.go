package app

import (
	"errors"
	"fmt"

	"github.com/BusselW/navmenu/internal/backend"
	"github.com/BusselW/navmenu/internal/cache"
	"github.com/BusselW/navmenu/internal/config"
	"github.com/BusselW/navmenu/internal/controller"
	"github.com/BusselW/navmenu/internal/data/dispatcher"
	"github.com/BusselW/navmenu/internal/logging"
	"github.com/BusselW/navmenu/internal/menu"
	"github.com/BusselW/navmenu/internal/router"
	"github.com/BusselW/navmenu/internal/source"
	"github.com/BusselW/navmenu/internal/state"
	"github.com/BusselW/navmenu/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg config.Runtime) error {
	opts, err := resolveOptions(cfg.MenuFile)
	if err != nil {
		return fmt.Errorf("load menu definition: %w", err)
	}

	adapter, err := source.New(opts.Source, nil)
	if err != nil {
		return fmt.Errorf("build source adapter: %w", err)
	}

	var watcher *backend.Watcher
	if cfg.Watch > 0 {
		watcher = backend.NewWatcher(adapter, cfg.Watch)
		defer watcher.Stop()
	}

	store := state.NewTreeStore()
	model := ui.NewModel(ui.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Verbose:    cfg.Verbose,
		Watcher:    watcher,
		Dispatcher: dispatcher.New(opts.Layers, store),
	})

	ctrl, err := controller.New(opts, controller.Deps{
		Adapter:  adapter,
		Cache:    cache.New(opts.CacheDuration),
		Renderer: model.Bridge(),
		Callbacks: controller.Callbacks{
			OnDataLoad: func(tree []*menu.Node) { store.SetTree(tree) },
			OnError:    func(err error) { logging.Error(err) },
		},
	})
	if err != nil {
		return fmt.Errorf("build controller: %w", err)
	}
	defer ctrl.Destroy()
	model.SetController(ctrl, router.New(ctrl))

	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// resolveOptions loads the menu definition file, or falls back to a small
// built-in menu so the binary is usable without one.
func resolveOptions(menuFile string) (config.Options, error) {
	if menuFile != "" {
		return config.LoadOptionsFile(menuFile)
	}
	opts := config.Defaults()
	opts.Source = source.Config{
		Kind:  source.KindStatic,
		Items: demoItems(),
	}
	return opts, opts.Validate()
}

func demoItems() []menu.RawRecord {
	return []menu.RawRecord{
		{
			"id": "home", "title": "Home", "url": "https://example.com/",
		},
		{
			"id": "docs", "title": "Documentation", "url": "https://example.com/docs",
			"children": []any{
				map[string]any{"id": "docs-start", "title": "Getting Started", "url": "https://example.com/docs/start"},
				map[string]any{"id": "docs-api", "title": "API Reference", "url": "https://example.com/docs/api"},
			},
		},
		{
			"id": "about", "title": "About", "url": "https://example.com/about", "openInNewTab": true,
		},
	}
}
