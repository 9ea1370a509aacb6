// Package controller owns the current menu tree and drives the submenu
// open/close state machine: timed hover transitions, activation with the
// single-open-path policy, keyboard-triggered activation, and the teardown
// contract that releases every timer and subscription deterministically.
package controller

import (
	"context"
	"errors"
	"sync"

	"github.com/BusselW/navmenu/internal/cache"
	"github.com/BusselW/navmenu/internal/config"
	"github.com/BusselW/navmenu/internal/logging/events"
	"github.com/BusselW/navmenu/internal/menu"
	"github.com/BusselW/navmenu/internal/source"
)

// ErrNoRenderer is returned at construction when no host mount point is
// supplied.
var ErrNoRenderer = errors.New("navmenu: renderer (host mount point) is required")

// ErrDestroyed is returned by operations invoked after Destroy.
var ErrDestroyed = errors.New("navmenu: controller already destroyed")

// Controller renders the validated tree and runs the per-submenu state
// machine. All mutation happens under one mutex; lifecycle callbacks and
// renderer notifications are flushed after the lock drops, in transition
// order, so hosts may call back into the controller from them.
type Controller struct {
	mu        sync.Mutex
	opts      config.Options
	adapter   source.Adapter
	cache     *cache.Cache
	renderer  Renderer
	sched     Scheduler
	callbacks Callbacks

	tree    []*menu.Node
	nodes   map[string]*menu.Node
	parents map[string]string
	order   []string
	states  map[string]*submenuState

	subs         []*Subscription
	pending      []func()
	initialized  bool
	inFlight     bool
	destroyed    bool
	viewportWide int
	mobileOpen   bool
}

// Deps carries the controller's collaborators. Adapter, Cache, and Scheduler
// have working defaults; Renderer is mandatory.
type Deps struct {
	Adapter   source.Adapter
	Cache     *cache.Cache
	Renderer  Renderer
	Scheduler Scheduler
	Callbacks Callbacks
}

// New validates the options and builds a controller. Validation failures and
// a missing renderer are fatal: no partial instance is produced.
func New(opts config.Options, deps Deps) (*Controller, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if deps.Renderer == nil {
		return nil, ErrNoRenderer
	}
	adapter := deps.Adapter
	if adapter == nil {
		built, err := source.New(opts.Source, nil)
		if err != nil {
			return nil, err
		}
		adapter = built
	}
	store := deps.Cache
	if store == nil {
		store = cache.New(opts.CacheDuration)
	}
	sched := deps.Scheduler
	if sched == nil {
		sched = NewScheduler()
	}
	return &Controller{
		opts:      opts,
		adapter:   adapter,
		cache:     store,
		renderer:  deps.Renderer,
		sched:     sched,
		callbacks: deps.Callbacks,
		nodes:     map[string]*menu.Node{},
		parents:   map[string]string{},
		states:    map[string]*submenuState{},
	}, nil
}

// Init fetches (through the cache), normalizes, and renders the menu. A
// re-entrant call while a cycle is in flight is a logged no-op. On fetch
// failure the inline error state is rendered, OnError fires, the error is
// returned, and the controller stays uninitialized.
func (c *Controller) Init(ctx context.Context) error {
	return c.load(ctx, false)
}

// Refresh bypasses the cache, re-fetches, and re-renders.
func (c *Controller) Refresh(ctx context.Context) error {
	return c.load(ctx, true)
}

func (c *Controller) load(ctx context.Context, bypassCache bool) error {
	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return ErrDestroyed
	}
	if c.inFlight {
		c.mu.Unlock()
		events.App.InitSkipped("initialization already in flight")
		return nil
	}
	c.inFlight = true
	c.mu.Unlock()

	result, err := c.fetchRecords(ctx, bypassCache)

	c.mu.Lock()
	c.inFlight = false
	if c.destroyed {
		c.mu.Unlock()
		return ErrDestroyed
	}
	if err != nil {
		c.enqueue(func() { c.renderer.ShowError(err) })
		c.invokeError(err)
		c.flushLocked()
		return err
	}
	firstMount := !c.initialized
	c.mountLocked(result)
	c.initialized = true
	if firstMount {
		c.enqueue(func() { c.invokeInit() })
	}
	c.flushLocked()
	return nil
}

// fetchRecords consults the cache first (unless bypassed) and falls through
// to a live fetch. Cache misses are silent; only adapter failures surface.
func (c *Controller) fetchRecords(ctx context.Context, bypassCache bool) (*source.Result, error) {
	cfg := c.adapter.Config()
	key := cache.KeyFor(string(cfg.Kind), cfg.Locator(), cfg.Headers)
	if c.opts.CacheData {
		if bypassCache {
			c.cache.Invalidate(key)
			events.Cache.Invalidate(key)
		} else if payload, ok := c.cache.Get(key); ok {
			if cached, ok := payload.(*source.Result); ok {
				events.Cache.Hit(key)
				return cached, nil
			}
		} else {
			events.Cache.Miss(key)
		}
	}
	events.Fetch.Start(string(cfg.Kind), cfg.Locator())
	result, err := c.adapter.Fetch(ctx)
	if err != nil {
		events.Fetch.Error(string(cfg.Kind), err)
		return nil, err
	}
	events.Fetch.Success(string(cfg.Kind), len(result.Records), len(result.Dropped))
	if c.opts.CacheData {
		c.cache.Set(key, result, c.opts.CacheDuration)
	}
	return result, nil
}

// mountLocked replaces the tree: existing submenu state is torn down first
// so no timer from the previous render survives.
func (c *Controller) mountLocked(result *source.Result) {
	for _, st := range c.states {
		st.cancelTimer()
	}
	tree := menu.Normalize(result.Records, c.opts.Layers)

	c.tree = tree
	c.nodes = map[string]*menu.Node{}
	c.parents = map[string]string{}
	c.order = c.order[:0]
	c.states = map[string]*submenuState{}

	var index func(parentID string, level []*menu.Node)
	index = func(parentID string, level []*menu.Node) {
		for _, node := range level {
			c.nodes[node.ID] = node
			c.parents[node.ID] = parentID
			if node.HasChildren() {
				c.order = append(c.order, node.ID)
				c.states[node.ID] = &submenuState{phase: PhaseClosed}
			}
			index(node.ID, node.Children)
		}
	}
	index("", tree)

	mounted := menu.CloneTree(tree)
	c.enqueue(func() { c.renderer.MountTree(mounted) })
	c.invokeDataLoad(menu.CloneTree(tree))
	for _, dropped := range result.Dropped {
		events.Fetch.RecordDropped(dropped.RecordID)
		c.invokeError(dropped)
	}
}

// ReplaceData remounts the menu from records the host already fetched, for
// example from a background poller. The fetch pipeline and cache are not
// consulted.
func (c *Controller) ReplaceData(result *source.Result) error {
	if result == nil {
		return errors.New("navmenu: replace data requires a result")
	}
	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return ErrDestroyed
	}
	firstMount := !c.initialized
	c.mountLocked(result)
	c.initialized = true
	if firstMount {
		c.enqueue(func() { c.invokeInit() })
	}
	c.flushLocked()
	return nil
}

// Destroy cancels every pending timer, detaches every subscription, and
// resets submenu state. It is idempotent.
func (c *Controller) Destroy() {
	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}
	c.destroyed = true
	c.initialized = false
	timers := 0
	for _, st := range c.states {
		if st.timer != nil {
			timers++
		}
		st.cancelTimer()
		st.phase = PhaseClosed
	}
	subs := c.subs
	c.subs = nil
	c.enqueue(func() { c.renderer.Unmount() })
	events.App.Destroyed(timers, len(subs))
	c.flushLocked()
	for _, sub := range subs {
		sub.Detach()
	}
}

// UpdateConfig swaps in a new option set after validating it. It does not
// re-initialize; callers decide when to re-render under the new options.
func (c *Controller) UpdateConfig(opts config.Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.destroyed {
		return ErrDestroyed
	}
	c.opts = opts
	return nil
}

// CloseAllSubmenus forces every open submenu to Closed.
func (c *Controller) CloseAllSubmenus() {
	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}
	c.closeAllLocked("api")
	c.flushLocked()
}

// IsInitialized reports whether a render cycle has completed successfully.
func (c *Controller) IsInitialized() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initialized
}

// Tree returns a deep copy of the current tree.
func (c *Controller) Tree() []*menu.Node {
	c.mu.Lock()
	defer c.mu.Unlock()
	return menu.CloneTree(c.tree)
}

// Phase reports the state of one submenu; absent ids read as Closed.
func (c *Controller) Phase(submenuID string) Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	if st, ok := c.states[submenuID]; ok {
		return st.phase
	}
	return PhaseClosed
}

// Options returns the active option set.
func (c *Controller) Options() config.Options {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.opts
}

// enqueue defers a side effect (callback or renderer notification) until the
// controller lock drops, preserving transition order.
func (c *Controller) enqueue(fn func()) {
	if fn != nil {
		c.pending = append(c.pending, fn)
	}
}

// flushLocked releases the lock and runs the side effects queued so far.
func (c *Controller) flushLocked() {
	fire := c.pending
	c.pending = nil
	c.mu.Unlock()
	for _, fn := range fire {
		fn()
	}
}

func (c *Controller) invokeInit() {
	if c.callbacks.OnMenuInit != nil {
		c.callbacks.OnMenuInit(c)
	}
}

func (c *Controller) invokeError(err error) {
	if cb := c.callbacks.OnError; cb != nil {
		c.enqueue(func() { cb(err) })
	}
}

func (c *Controller) invokeDataLoad(tree []*menu.Node) {
	if cb := c.callbacks.OnDataLoad; cb != nil {
		c.enqueue(func() { cb(tree) })
	}
}
