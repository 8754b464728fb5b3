package app

import (
	"github.com/dshills/linedit/internal/config"
	"github.com/dshills/linedit/internal/editor"
	"github.com/dshills/linedit/internal/renderer"
)

// liveSettings are the parts of a configuration that can change during a
// session.
type liveSettings struct {
	cfg    *config.Config
	keymap editor.Keymap
	style  renderer.Style
}

// Reconfigure validates cfg and schedules its key bindings, gutter and log
// level to take effect before the next line is drawn. Settings that shape
// the document, the terminal or the log file keep their running values;
// the names of those that differ in cfg are returned. It may be called
// from any goroutine.
func (app *Application) Reconfigure(cfg *config.Config) ([]string, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	keymap, err := cfg.Keymap()
	if err != nil {
		return nil, err
	}
	style, err := cfg.GutterStyle()
	if err != nil {
		return nil, err
	}

	current := app.Config()
	merged := *cfg
	merged.Editor = current.Editor
	merged.Terminal = current.Terminal
	merged.Log.File = current.Log.File

	app.pending.Store(&liveSettings{cfg: &merged, keymap: keymap, style: style})
	return restartOnly(current, cfg), nil
}

// restartOnly names the settings that differ between running and next but
// only apply to a new session.
func restartOnly(running, next *config.Config) []string {
	var names []string
	if running.Editor.Capacity != next.Editor.Capacity {
		names = append(names, "editor.capacity")
	}
	if running.Editor.Banner != next.Editor.Banner {
		names = append(names, "editor.banner")
	}
	if running.Terminal.Backend != next.Terminal.Backend {
		names = append(names, "terminal.backend")
	}
	if running.Log.File != next.Log.File {
		names = append(names, "log.file")
	}
	return names
}

// applyPending installs settings queued by Reconfigure. It runs on the
// event loop goroutine.
func (app *Application) applyPending() {
	s := app.pending.Swap(nil)
	if s == nil {
		return
	}

	app.ctrl.SetKeymap(s.keymap)
	app.painter.Configure(
		renderer.WithGutterWidth(s.cfg.Gutter.Width),
		renderer.WithGutterStyle(s.style),
	)
	app.Logger().SetLevel(ParseLogLevel(s.cfg.Log.Level))
	app.checkInvariants = app.Logger().Enabled(LogLevelDebug)

	app.mu.Lock()
	app.cfg = s.cfg
	app.mu.Unlock()

	app.metrics.RecordReload()
	app.Logger().WithComponent("app").Info("configuration reloaded: gutter=%d style=%q level=%s",
		s.cfg.Gutter.Width, s.cfg.Gutter.Style, s.cfg.Log.Level)
}
