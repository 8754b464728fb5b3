package app

import (
	"bufio"
	"errors"

	"github.com/dshills/linedit/internal/editor"
	"github.com/dshills/linedit/internal/engine"
	"github.com/dshills/linedit/internal/input/decode"
	"github.com/dshills/linedit/internal/renderer"
)

// bootstrap builds the components from the configuration.
func (app *Application) bootstrap() error {
	if app.term == nil {
		return &InitError{Component: "terminal", Err: errors.New("no terminal")}
	}

	cfg := app.cfg
	if err := cfg.Validate(); err != nil {
		return &InitError{Component: "config", Err: err}
	}
	keymap, err := cfg.Keymap()
	if err != nil {
		return &InitError{Component: "keymap", Err: err}
	}
	style, err := cfg.GutterStyle()
	if err != nil {
		return &InitError{Component: "gutter", Err: err}
	}

	app.eng = engine.New(
		engine.WithCapacity(cfg.Editor.Capacity),
		engine.WithContent(cfg.Editor.Banner),
	)
	app.ctrl = editor.New(app.eng, editor.WithKeymap(keymap))

	app.painter = renderer.New(app.term,
		renderer.WithGutterWidth(cfg.Gutter.Width),
		renderer.WithGutterStyle(style),
		renderer.WithWidth(app.term.Width),
	)

	app.decoder = decode.NewDecoder(bufio.NewReader(app.term))
	app.decoder.OnUnknown = app.onUnknownSequence

	app.checkInvariants = app.Logger().Enabled(LogLevelDebug)

	app.Logger().WithComponent("bootstrap").Debug("capacity=%d gutter=%d style=%q backend=%s",
		cfg.Editor.Capacity, cfg.Gutter.Width, cfg.Gutter.Style, cfg.Terminal.Backend)
	return nil
}

func (app *Application) onUnknownSequence(seq []byte) {
	app.metrics.RecordUnknown()
	app.Logger().WithComponent("input").Debug("unknown escape sequence %q", seq)
}
