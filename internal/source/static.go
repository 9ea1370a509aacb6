package source

import (
	"context"

	"github.com/BusselW/navmenu/internal/menu"
)

// staticAdapter serves the record collection embedded in the configuration.
type staticAdapter struct {
	cfg Config
}

func (a *staticAdapter) Config() Config {
	return a.cfg
}

func (a *staticAdapter) Fetch(ctx context.Context) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	records := make([]menu.RawRecord, len(a.cfg.Items))
	copy(records, a.cfg.Items)
	return &Result{Records: records}, nil
}
