package app

import (
	"io"
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/gabrielmiguelok/gridselect/internal/config"
	"github.com/gabrielmiguelok/gridselect/internal/event"
	"github.com/gabrielmiguelok/gridselect/internal/geometry"
	"github.com/gabrielmiguelok/gridselect/internal/grid"
	"github.com/gabrielmiguelok/gridselect/internal/input/keynav"
	"github.com/gabrielmiguelok/gridselect/internal/input/pointer"
	"github.com/gabrielmiguelok/gridselect/internal/input/touch"
	"github.com/gabrielmiguelok/gridselect/internal/renderer"
	"github.com/gabrielmiguelok/gridselect/internal/selection"
)

// eventSource identifies the app on the bus.
const eventSource = "app"

// Options configures the application.
type Options struct {
	// ConfigPath is an optional JSON config file.
	ConfigPath string

	// DataPath is an optional JSON dataset; the built-in sample grid is
	// used when empty.
	DataPath string

	// LogLevel overrides the configured log level when non-empty.
	LogLevel string

	// LogOutput overrides where logs go (default os.Stderr).
	LogOutput io.Writer
}

// App owns the engine components and the terminal event loop.
type App struct {
	cfg config.Config
	log *Logger

	bus    *event.Bus
	store  *grid.Store
	oracle *geometry.Oracle
	state  *selection.State
	guard  *selection.Guard

	pointerHandler *pointer.Handler
	touchHandler   *touch.Handler
	keyHandler     *keynav.Handler

	term       *renderer.Terminal
	translator *renderer.Translator
	view       *renderer.View

	running  atomic.Bool
	shutdown sync.Once
}

// New builds a fully wired application.
func New(opts Options) (*App, error) {
	cfg := config.DefaultConfig()
	if opts.ConfigPath != "" {
		loaded, err := config.Load(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}

	logCfg := DefaultLoggerConfig()
	logCfg.Level = ParseLogLevel(cfg.LogLevel)
	if opts.LogOutput != nil {
		logCfg.Output = opts.LogOutput
	}
	log := NewLogger(logCfg)

	rows, cols, err := loadRows(opts.DataPath)
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:        cfg,
		log:        log,
		bus:        event.NewBus(),
		store:      grid.NewStore(grid.NewSnapshot(rows, cols)),
		translator: renderer.NewTranslator(),
	}

	a.oracle = geometry.NewOracle(a.store, layoutConfig(cfg))
	a.state = selection.NewState(a.store, a.bus)
	a.guard = selection.NewGuard(a.state)

	a.pointerHandler = pointer.NewHandler(pointerConfig(cfg), a.oracle, a.state)
	a.touchHandler = touch.NewHandler(a.pointerHandler)
	a.keyHandler = keynav.NewHandler(a.store, a.oracle, a.state)

	a.wire()

	log.Info("initialized: %d rows, %d columns", len(rows), len(cols))
	return a, nil
}

// wire connects the store and the bus subscriptions.
func (a *App) wire() {
	// Snapshot replacements go through the bus so the guard and any
	// other subscriber observe them in order.
	a.store.OnChange(func(snap *grid.Snapshot) {
		a.bus.Publish(event.New(event.TopicSnapshotChanged, event.SnapshotChanged{Snapshot: snap}, eventSource))
	})

	guardLog := a.log.WithComponent("guard")
	_, _ = a.bus.Subscribe(event.TopicSnapshotChanged, func(ev event.Event) {
		payload, ok := ev.Payload.(event.SnapshotChanged)
		if !ok {
			return
		}
		before := a.state.Count()
		a.guard.Revalidate(payload.Snapshot)
		if after := a.state.Count(); after != before {
			guardLog.Info("dropped %d stale cells after snapshot change", before-after)
		}
	})

	// The guard also re-checks after every selection change; when
	// nothing is stale this is a no-op and does not loop.
	_, _ = a.bus.Subscribe(event.TopicSelectionChanged, func(event.Event) {
		a.guard.Revalidate(a.store.Snapshot())
	})

	selLog := a.log.WithComponent("selection")
	_, _ = a.bus.Subscribe(event.TopicSelectionChanged, func(ev event.Event) {
		if payload, ok := ev.Payload.(event.SelectionChanged); ok {
			selLog.Debug("selection changed: %d cells", len(payload.Cells))
		}
	})
}

// loadRows returns the dataset rows and columns for the given path, or
// the built-in sample data when the path is empty.
func loadRows(path string) ([]grid.Row, []grid.Column, error) {
	if path == "" {
		rows, cols := SampleDataset()
		return rows, cols, nil
	}
	return LoadDataset(path)
}

// layoutConfig maps the app config onto the geometry layout settings.
func layoutConfig(cfg config.Config) geometry.LayoutConfig {
	lc := geometry.DefaultLayoutConfig()
	lc.RowHeight = cfg.RowHeight
	lc.MinColumnWidth = cfg.MinColumnWidth
	lc.MaxColumnWidth = cfg.MaxColumnWidth
	lc.HeaderHeight = cfg.HeaderHeight
	lc.GutterWidth = cfg.GutterWidth
	return lc
}

// pointerConfig maps the app config onto the pointer handler settings.
func pointerConfig(cfg config.Config) pointer.Config {
	pc := pointer.DefaultConfig()
	pc.EdgeScrollThreshold = cfg.EdgeScrollThreshold
	pc.EdgeScrollStep = cfg.EdgeScrollStep
	pc.WheelScrollRows = cfg.WheelScrollRows
	pc.EnableDragSelection = cfg.DragSelection
	pc.EnableHeaderSelection = cfg.HeaderSelection
	return pc
}

// Selection exposes the selection state to read-only collaborators.
func (a *App) Selection() *selection.State { return a.state }

// Store exposes the grid store so hosts can publish snapshot changes.
func (a *App) Store() *grid.Store { return a.store }

// Bus exposes the notification bus.
func (a *App) Bus() *event.Bus { return a.bus }

// Touch exposes the touch adapter for hosts with a touch event stream.
func (a *App) Touch() *touch.Handler { return a.touchHandler }

// Run initializes the terminal and processes input until Stop is called
// or the user quits with Ctrl+C or q.
func (a *App) Run() error {
	if !a.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer a.running.Store(false)

	term, err := renderer.NewTerminal()
	if err != nil {
		return NewOperationError("init-terminal", "", err)
	}
	if err := term.Init(); err != nil {
		return NewOperationError("init-terminal", "", err)
	}
	a.term = term
	defer term.Shutdown()

	a.view = renderer.NewView(term, renderer.DefaultTheme(), a.store, a.oracle, a.state)
	w, h := term.Size()
	a.view.Resize(w, h)
	a.view.Draw()

	for {
		ev := term.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventInterrupt:
			return nil

		case *tcell.EventResize:
			w, h := ev.Size()
			a.view.Resize(w, h)

		case *tcell.EventMouse:
			for _, pe := range a.translator.TranslateMouse(ev) {
				a.pointerHandler.Handle(pe)
			}

		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				return nil
			}
			if ke, ok := renderer.TranslateKey(ev); ok {
				a.keyHandler.Handle(ke)
			}
		}
		a.view.Draw()
	}
}

// Stop asks a running event loop to exit. Safe to call from any
// goroutine and more than once.
func (a *App) Stop() {
	a.shutdown.Do(func() {
		if a.term != nil {
			a.term.PostQuit()
		}
	})
}
