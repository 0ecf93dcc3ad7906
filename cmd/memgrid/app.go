package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/memgrid/game"
	"github.com/lixenwraith/memgrid/render"
	"github.com/rs/zerolog"
)

// app routes terminal events to the controller on the loop goroutine
type app struct {
	ctrl    *game.Controller
	screen  *render.Screen
	sched   *render.Scheduler
	logger  zerolog.Logger
	buttons tcell.ButtonMask
}

// handleEvent processes one event, returns false to quit
func (a *app) handleEvent(ev tcell.Event) bool {
	if a.sched.Dispatch(ev) {
		return true
	}

	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)

	case *tcell.EventMouse:
		// Act on the press edge only, motion and release repeat the mask
		pressed := ev.Buttons()&tcell.Button1 != 0 && a.buttons&tcell.Button1 == 0
		a.buttons = ev.Buttons()
		if !pressed {
			return true
		}
		x, y := ev.Position()
		if p, ok := a.screen.CellAt(x, y); ok && a.screen.CellsEnabled() {
			a.ctrl.OnCellClicked(p.Row, p.Col)
		}
	}
	return true
}

func (a *app) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return false
	}

	if a.screen.ReportVisible() {
		switch ev.Key() {
		case tcell.KeyUp:
			a.screen.ScrollReport(-1)
		case tcell.KeyDown:
			a.screen.ScrollReport(1)
		case tcell.KeyPgUp:
			a.screen.ScrollReport(-10)
		case tcell.KeyPgDn:
			a.screen.ScrollReport(10)
		default:
			a.screen.CloseReport()
		}
		return true
	}

	if ev.Key() == tcell.KeyEscape {
		return false
	}
	if ev.Key() != tcell.KeyRune {
		return true
	}

	switch ev.Rune() {
	case 'q':
		return false
	case 'n':
		if a.screen.NextRoundEnabled() {
			a.ctrl.OnNextRoundRequested()
		}
	case 'r':
		if a.screen.ReplayEnabled() {
			a.ctrl.OnReplayRequested()
		}
	case 'p':
		a.screen.ShowReport(a.ctrl.OnShowPerformanceRequested())
		a.logger.Debug().Int("rounds", len(a.ctrl.Records())).Msg("performance report shown")
	}
	return true
}
