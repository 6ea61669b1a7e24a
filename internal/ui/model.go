package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/gallery-browser/internal/catalog"
	"github.com/atomicstack/gallery-browser/internal/data/dispatcher"
	"github.com/atomicstack/gallery-browser/internal/gallery"
	"github.com/atomicstack/gallery-browser/internal/logging/events"
	"github.com/atomicstack/gallery-browser/internal/theme"
	"github.com/atomicstack/gallery-browser/internal/ui/command"
	uistate "github.com/atomicstack/gallery-browser/internal/ui/state"
	"github.com/atomicstack/gallery-browser/internal/viewport"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Mode selects which gallery is on screen.
type Mode int

const (
	ModeImages Mode = iota
	ModeVideos
)

func (m Mode) String() string {
	if m == ModeVideos {
		return "videos"
	}
	return "images"
}

// ParseMode maps a view name to a Mode. Unknown names fall back to images.
func ParseMode(name string) Mode {
	if name == "videos" {
		return ModeVideos
	}
	return ModeImages
}

const (
	defaultCellWidth  = 8
	defaultCellHeight = 16
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Navigator leaves the gallery for the site home. The default quits.
type Navigator interface {
	Home() tea.Cmd
}

type quitNavigator struct{}

func (quitNavigator) Home() tea.Cmd { return tea.Quit }

// Options configures a Model.
type Options struct {
	Tree   catalog.Tree
	Videos catalog.VideoList

	// Width and Height pin the layout; zero follows the terminal.
	Width  int
	Height int
	// InitialWidth and InitialHeight seed the layout before the first
	// resize message arrives.
	InitialWidth  int
	InitialHeight int

	CellWidth  int
	CellHeight int

	View       Mode
	ShowFooter bool
	Style      string

	Navigator      Navigator
	Bus            *command.Bus
	GalleryOptions []gallery.Option
}

// Model implements the Bubble Tea model for the gallery browser.
type Model struct {
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	cellWidth   int
	cellHeight  int
	showFooter  bool
	style       string

	mode     Mode
	quitting bool
	errMsg   string
	infoMsg  string

	infoExpire time.Time

	controller *gallery.Controller
	hub        *viewport.Hub
	dispatcher *dispatcher.Dispatcher
	bus        *command.Bus
	navigator  Navigator

	grid      *uistate.Grid
	videoGrid *uistate.Grid
	videos    catalog.VideoList
	videoView gallery.Preview[catalog.Video]

	spinner  spinner.Model
	spinning bool

	jump       *jumpForm
	preview    *previewData
	previewSeq int
	renderer   *markdownRenderer

	handlers map[reflect.Type]msgHandler
}

// NewModel mounts the gallery over opts.Tree and wires the viewport hub,
// dispatcher and command bus.
func NewModel(opts Options) *Model {
	m := &Model{
		cellWidth:  opts.CellWidth,
		cellHeight: opts.CellHeight,
		showFooter: opts.ShowFooter,
		style:      opts.Style,
		mode:       opts.View,
		bus:        opts.Bus,
		navigator:  opts.Navigator,
		videos:     opts.Videos,
		hub:        viewport.NewHub(),
		grid:       uistate.NewGrid(1),
		videoGrid:  uistate.NewGrid(1),
	}
	if m.cellWidth <= 0 {
		m.cellWidth = defaultCellWidth
	}
	if m.cellHeight <= 0 {
		m.cellHeight = defaultCellHeight
	}
	if m.bus == nil {
		m.bus = command.New()
	}
	if m.navigator == nil {
		m.navigator = quitNavigator{}
	}
	m.width, m.height = opts.InitialWidth, opts.InitialHeight
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.renderer = newMarkdownRenderer(m.style)

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	if styles.Loading != nil {
		spin.Style = styles.Loading.Copy()
	}
	m.spinner = spin

	m.controller = gallery.New(opts.Tree, m.pixelWidth(), opts.GalleryOptions...)
	m.dispatcher = dispatcher.New(m.controller)
	m.dispatcher.Mount(m.hub)
	m.traceSelection()
	m.syncGrid()
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	events.UI.View(m.mode.String())
	return m.publishViewport(false)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):         m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):       m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):  m.handleWindowSizeMsg,
		reflect.TypeOf(command.TaskDueMsg{}): m.handleTaskDueMsg,
		reflect.TypeOf(spinner.TickMsg{}):    m.handleSpinnerTickMsg,
		reflect.TypeOf(previewRenderedMsg{}): m.handlePreviewRenderedMsg,
		reflect.TypeOf(actionResultMsg{}):    m.handleActionResultMsg,
		reflect.TypeOf(assetFailedMsg{}):     m.handleAssetFailedMsg,
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

// Controller exposes the gallery state machine.
func (m *Model) Controller() *gallery.Controller {
	return m.controller
}

// Mode returns the active view.
func (m *Model) Mode() Mode {
	return m.mode
}

// Shutdown releases viewport subscriptions. It is safe to call repeatedly.
func (m *Model) Shutdown() {
	if m.quitting {
		return
	}
	m.quitting = true
	m.dispatcher.Unmount()
}

func (m *Model) quit() tea.Cmd {
	m.Shutdown()
	events.App.Stop("quit")
	return tea.Quit
}

// schedule hands gallery tasks to the bus and starts the spinner when a
// transition became pending.
func (m *Model) schedule(tasks ...gallery.Task) tea.Cmd {
	cmds := []tea.Cmd{m.bus.ScheduleAll(tasks)}
	if cmd := m.startSpinner(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (m *Model) startSpinner() tea.Cmd {
	if m.spinning || !m.controller.Adjusting() {
		return nil
	}
	m.spinning = true
	return m.spinner.Tick
}

func (m *Model) handleSpinnerTickMsg(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(spinner.TickMsg)
	if !ok {
		return nil
	}
	if !m.controller.Adjusting() {
		m.spinning = false
		return nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(tick)
	return cmd
}

func (m *Model) handleTaskDueMsg(msg tea.Msg) tea.Cmd {
	due, ok := msg.(command.TaskDueMsg)
	if !ok {
		return nil
	}
	task := due.Task
	if task.Kind == gallery.TaskMarkLoaded && task.Generation == m.controller.Generation() {
		if cmd := m.assetCheckCmd(task); cmd != nil {
			return cmd
		}
	}
	if !m.controller.Complete(task) {
		events.Task.Stale(task.Kind.String(), task.Generation)
		return nil
	}
	events.Task.Applied(task.Kind.String(), task.Key)
	if task.Kind == gallery.TaskMarkLoaded {
		return nil
	}
	summary := m.controller.Summary()
	events.Gallery.Window(summary.Visible, summary.Total, summary.Adjusting)
	m.syncGrid()
	return m.publishViewport(false)
}

func (m *Model) traceSelection() {
	cat, sub := "", ""
	if c := m.controller.ActiveCategory(); c != nil {
		cat = c.ID
	}
	if s := m.controller.ActiveSubCategory(); s != nil {
		sub = s.ID
	}
	events.Gallery.Select(cat, sub, m.controller.Generation())
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
