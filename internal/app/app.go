// Package app wires the editor together and runs an editing session.
//
// An Application owns one engine, the controller that edits it, the painter
// that shows it and the decoder that turns terminal bytes into keys. Run
// drives them from a single goroutine until the quit key is pressed, input
// ends or a fatal error occurs.
package app

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/dshills/linedit/internal/config"
	"github.com/dshills/linedit/internal/editor"
	"github.com/dshills/linedit/internal/engine"
	"github.com/dshills/linedit/internal/input/decode"
	"github.com/dshills/linedit/internal/renderer"
	"github.com/dshills/linedit/internal/terminal"
)

// Application is the editing session.
type Application struct {
	mu      sync.Mutex
	stopped bool

	cfg     *config.Config
	term    terminal.Terminal
	logger  *Logger
	metrics *Metrics

	eng     *engine.Engine
	ctrl    *editor.Controller
	painter *renderer.Painter
	decoder *decode.Decoder

	// checkInvariants verifies the engine after every key.
	checkInvariants bool

	// pending holds settings from Reconfigure not yet applied.
	pending atomic.Pointer[liveSettings]

	running atomic.Bool
}

// Options configures the application.
type Options struct {
	// Config holds the settings. Nil means config.Default().
	Config *config.Config

	// Terminal is the channel to the user. Required.
	Terminal terminal.Terminal

	// Logger receives diagnostics. Nil discards them.
	Logger *Logger
}

// New creates an application ready to Run.
func New(opts Options) (*Application, error) {
	app := &Application{
		cfg:     opts.Config,
		term:    opts.Terminal,
		logger:  opts.Logger,
		metrics: NewMetrics(),
	}
	if app.cfg == nil {
		app.cfg = config.Default()
	}

	if err := app.bootstrap(); err != nil {
		return nil, err
	}
	return app, nil
}

// Run starts the session and blocks until it ends. A normal end returns
// ErrQuit; anything else is fatal. The terminal is restored on every path.
func (app *Application) Run() error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := app.term.Start(); err != nil {
		return &InitError{Component: "terminal", Err: err}
	}
	defer app.Shutdown()

	log := app.Logger().WithComponent("app")
	log.Info("session started: %v", app.eng.State())

	err := app.eventLoop()

	s := app.metrics.Snapshot()
	log.Info("session ended after %s: %d keys (avg %s, max %s), %d unknown sequences, %d listings, %d reloads",
		s.Uptime.Round(time.Millisecond), s.Keys, s.KeyAvg, s.KeyMax, s.Unknown, s.Listings, s.Reloads)
	return err
}

// Shutdown restores the terminal. It may be called from another goroutine
// and more than once.
func (app *Application) Shutdown() {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.stopped {
		return
	}
	app.stopped = true
	if err := app.term.Stop(); err != nil {
		app.Logger().WithComponent("app").Error("restore terminal: %v", err)
	}
}

// IsRunning returns true if the application is running.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Config returns the settings in use.
func (app *Application) Config() *config.Config {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.cfg
}

// Engine returns the edited document.
func (app *Application) Engine() *engine.Engine {
	return app.eng
}

// Controller returns the key handler.
func (app *Application) Controller() *editor.Controller {
	return app.ctrl
}
