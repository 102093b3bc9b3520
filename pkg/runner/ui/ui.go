// Package ui runs the full-screen month viewer.
package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"tableflip.dev/tcal/pkg/calendar"
)

// ErrInputClosed is returned when the terminal stops delivering events.
var ErrInputClosed = errors.New("terminal input closed")

// UI drives a calendar from the keyboard and redraws it after every change.
type UI struct {
	Calendar *calendar.Calendar

	// Theme defaults to DefaultTheme.
	Theme *Theme

	// NewScreen defaults to tcell.NewScreen.
	NewScreen func() (tcell.Screen, error)
}

// Do takes over the terminal until the user quits or input fails. The
// terminal is restored on every return path.
func (u *UI) Do(ctx context.Context) error {
	s, err := u.open()
	if err != nil {
		return err
	}
	defer s.Fini()

	return u.run(ctx, s)
}

func (u *UI) open() (tcell.Screen, error) {
	newScreen := u.NewScreen
	if newScreen == nil {
		newScreen = tcell.NewScreen
	}
	s, err := newScreen()
	if err != nil {
		return nil, fmt.Errorf("opening terminal: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("initializing terminal: %w", err)
	}
	s.HideCursor()
	return s, nil
}

func (u *UI) run(ctx context.Context, s tcell.Screen) error {
	u.draw(s)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		switch ev := s.PollEvent().(type) {
		case nil:
			return ErrInputClosed
		case *tcell.EventError:
			return fmt.Errorf("reading terminal input: %w", ev)
		case *tcell.EventKey:
			a := ActionFor(ev)
			if a == Quit {
				return nil
			}
			if Apply(a, u.Calendar) {
				u.draw(s)
			}
		}
	}
}

func (u *UI) theme() Theme {
	if u.Theme == nil {
		return DefaultTheme()
	}
	return *u.Theme
}
