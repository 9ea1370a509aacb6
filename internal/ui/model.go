package ui

import (
	"context"
	"reflect"
	"time"

	"github.com/BusselW/navmenu/internal/backend"
	"github.com/BusselW/navmenu/internal/controller"
	"github.com/BusselW/navmenu/internal/data/dispatcher"
	"github.com/BusselW/navmenu/internal/menu"
	"github.com/BusselW/navmenu/internal/router"
	"github.com/BusselW/navmenu/internal/theme"
	"github.com/BusselW/navmenu/internal/ui/command"
	uistate "github.com/BusselW/navmenu/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	menuHeaderSeparator = " → "
	defaultRootTitle    = "navigation"

	// Terminal columns approximate CSS pixels for breakpoint purposes; a
	// text cell is treated as this many pixels wide.
	cellWidthPx = 10
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the navigation menu.
type Model struct {
	ctrl    *controller.Controller
	rtr     *router.Router
	bridge  *renderBridge
	watcher *backend.Watcher
	disp    *dispatcher.Dispatcher
	bus     *command.Bus

	list  *uistate.List
	tree  []*menu.Node
	nodes map[string]*menu.Node

	loading      bool
	pendingID    string
	pendingLabel string
	errMsg       string
	infoMsg      string
	infoExpire   time.Time
	width        int
	height       int
	fixedWidth   bool
	fixedHeight  bool
	showFooter   bool
	verbose      bool
	rootTitle    string

	filterCursor      cursor.Model
	filterCursorDirty bool

	handlers map[reflect.Type]msgHandler
}

// Options configures the UI shell around the controller.
type Options struct {
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	RootTitle  string
	Watcher    *backend.Watcher
	Dispatcher *dispatcher.Dispatcher
}

// NewModel initialises the UI state. The model's Bridge is the renderer the
// controller must be constructed with; attach the controller and router via
// SetController before the program runs.
func NewModel(opts Options) *Model {
	m := &Model{
		bridge:     newRenderBridge(),
		watcher:    opts.Watcher,
		disp:       opts.Dispatcher,
		bus:        command.New(),
		list:       uistate.NewList(nil),
		nodes:      map[string]*menu.Node{},
		loading:    true,
		showFooter: opts.ShowFooter,
		verbose:    opts.Verbose,
		rootTitle:  opts.RootTitle,
	}
	if m.rootTitle == "" {
		m.rootTitle = defaultRootTitle
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.registerHandlers()
	return m
}

// Bridge exposes the renderer adapter for controller wiring.
func (m *Model) Bridge() controller.Renderer {
	return m.bridge
}

// SetController attaches the controller and its focus router once both are
// constructed.
func (m *Model) SetController(ctrl *controller.Controller, rtr *router.Router) {
	m.ctrl = ctrl
	m.rtr = rtr
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.bridge != nil {
		cmds = append(cmds, waitForRenderEvent(m.bridge))
	}
	if m.watcher != nil {
		cmds = append(cmds, waitForWatcherEvent(m.watcher))
	}
	cmds = append(cmds, initControllerCmd(m.ctrl))
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}

	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):           m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):    m.handleWindowSizeMsg,
		reflect.TypeOf(renderEventMsg{}):       m.handleRenderEventMsg,
		reflect.TypeOf(renderDoneMsg{}):        m.handleRenderDoneMsg,
		reflect.TypeOf(watcherEventMsg{}):      m.handleWatcherEventMsg,
		reflect.TypeOf(watcherDoneMsg{}):       m.handleWatcherDoneMsg,
		reflect.TypeOf(initResultMsg{}):        m.handleInitResultMsg,
		reflect.TypeOf(command.ActionResult{}): m.handleActionResultMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// initControllerCmd runs the controller's initial load off the UI loop.
func initControllerCmd(ctrl *controller.Controller) tea.Cmd {
	return func() tea.Msg {
		return initResultMsg{err: ctrl.Init(context.Background())}
	}
}

type initResultMsg struct {
	err error
}

func (m *Model) handleInitResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(initResultMsg)
	if !ok {
		return nil
	}
	if result.err != nil {
		m.loading = false
		m.errMsg = result.err.Error()
	}
	return nil
}

// setTree replaces the model's copy of the rendered tree and recomputes the
// visible rows.
func (m *Model) setTree(tree []*menu.Node) {
	m.tree = tree
	m.nodes = map[string]*menu.Node{}
	var index func(level []*menu.Node)
	index = func(level []*menu.Node) {
		for _, node := range level {
			m.nodes[node.ID] = node
			index(node.Children)
		}
	}
	index(tree)
	if m.rtr != nil {
		m.rtr.Reindex()
	}
	m.rebuildRows()
}

// rebuildRows re-flattens the tree according to the current submenu phases
// and filter, keeping the cursor on the same entry when it survives.
func (m *Model) rebuildRows() {
	if m.ctrl == nil {
		return
	}
	expandAll := m.list.Filter != ""
	rows := buildRows(m.tree, m.ctrl.Phase, expandAll)
	m.list.UpdateEntries(rows)
	m.syncViewport()
	m.syncFocus()
}

// syncFocus aligns router focus and hover simulation with the cursor row.
// Both rows are resolved to the submenu trigger they hover for; a leave fires
// only when the cursor actually exits that trigger's subtree, so moving onto
// a descendant never arms the close timer.
func (m *Model) syncFocus() {
	if m.rtr == nil {
		return
	}
	id := m.list.CurrentID()
	if id == "" || id == m.rtr.Focused() {
		return
	}
	prev := m.rtr.Focused()
	m.rtr.SetFocus(id)

	parents := menu.ParentIndex(m.tree)
	prevOwner := m.hoverOwner(parents, prev)
	newOwner := m.hoverOwner(parents, id)
	if prevOwner != "" && prevOwner != newOwner && !m.inSubtree(parents, prevOwner, id) {
		m.rtr.PointerLeave(prevOwner)
	}
	if newOwner != "" {
		m.rtr.PointerEnter(newOwner)
	}
}

// hoverOwner resolves the submenu trigger a row hovers for: the row itself
// when it owns a submenu, otherwise its nearest submenu-owning ancestor.
func (m *Model) hoverOwner(parents map[string]*menu.Node, id string) string {
	node, ok := m.nodes[id]
	if !ok {
		return ""
	}
	if node.HasChildren() {
		return id
	}
	for parent := parents[id]; parent != nil; parent = parents[parent.ID] {
		if parent.HasChildren() {
			return parent.ID
		}
	}
	return ""
}

// inSubtree reports whether id sits inside owner's subtree.
func (m *Model) inSubtree(parents map[string]*menu.Node, owner, id string) bool {
	for parent := parents[id]; parent != nil; parent = parents[parent.ID] {
		if parent.ID == owner {
			return true
		}
	}
	return false
}

func (m *Model) syncViewport() {
	m.list.EnsureCursorVisible(m.maxVisibleItems())
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}
