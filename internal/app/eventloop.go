package app

import (
	"io"
	"runtime/debug"

	"github.com/dshills/linedit/internal/editor"
	"github.com/dshills/linedit/internal/input/key"
)

// eventLoop lists the document once, then redraws the current line and
// applies one key per iteration. Buffer precondition panics are recovered
// and returned so the terminal is still restored.
func (app *Application) eventLoop() (err error) {
	var inFlight *key.Key
	defer func() {
		if r := recover(); r != nil {
			pe := NewRecoveredPanicError(r, app.eng.State(), string(debug.Stack()))
			if inFlight != nil {
				pe.Key = inFlight.String()
			}
			app.Logger().WithComponent("app").Error("%v\n%s", pe, pe.Stack)
			err = pe
		}
	}()

	log := app.Logger().WithComponent("loop")

	if err := app.painter.Start(); err != nil {
		return NewOperationError("draw", "terminal", err)
	}
	if err := app.listing(); err != nil {
		return err
	}

	for {
		app.applyPending()
		if err := app.painter.DrawLine(app.eng.Cursor()); err != nil {
			return NewOperationError("draw line", "terminal", err)
		}
		app.metrics.RecordDraw()

		k, err := app.decoder.Next()
		if err == io.EOF {
			log.Info("input closed")
			return app.finish()
		}
		if err != nil {
			return NewOperationError("read key", "terminal", err)
		}

		timer := StartTimer()
		inFlight = &k
		action, err := app.ctrl.Handle(k)
		inFlight = nil
		app.metrics.RecordKey(timer.Elapsed())
		if err != nil {
			log.Error("%v", err)
			return err
		}

		if app.checkInvariants {
			if err := app.eng.Check(); err != nil {
				log.Error("after %v: %v", k, err)
				return &editor.FatalError{Action: action, Key: k, State: app.eng.State(), Err: err}
			}
			log.Debug("%v -> %q %v", k, action, app.eng.State())
		}

		switch action {
		case editor.ActionQuit:
			return app.finish()
		case editor.ActionRedraw:
			if err := app.listing(); err != nil {
				return err
			}
		}
	}
}

func (app *Application) listing() error {
	if err := app.painter.Listing(app.eng.Cursor()); err != nil {
		return NewOperationError("list", "terminal", err)
	}
	app.metrics.RecordListing()
	return nil
}

// finish leaves the terminal on a fresh row and ends the session normally.
func (app *Application) finish() error {
	if err := app.painter.Finish(); err != nil {
		return NewOperationError("finish", "terminal", err)
	}
	return ErrQuit
}
