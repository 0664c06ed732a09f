package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/lovi-cli/lovi/reader"
	"github.com/lovi-cli/lovi/utils"
)

// Application is the full-screen viewer. It owns the refresh cadence and
// translates key presses into reader operations; the reader itself never
// watches the filesystem.
type Application struct {
	reader   *reader.Reader
	filter   *LineFilter
	follow   bool
	interval time.Duration

	screen tcell.Screen
	width  int
	height int

	status string
}

func NewApplication(rdr *reader.Reader, filter *LineFilter, follow bool, interval time.Duration) *Application {
	return &Application{
		reader:   rdr,
		filter:   filter,
		follow:   follow,
		interval: interval,
	}
}

func (a *Application) Run(ctx context.Context, cancelCtx context.CancelFunc) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal screen: %w", err)
	}

	quit := func() {
		// Panics must be caught, the screen restored, and then re-raised,
		// otherwise the application dies without leaving a diagnostic trace.
		maybePanic := recover()
		screen.Fini()
		if maybePanic != nil {
			panic(maybePanic)
		}
	}
	defer quit()

	a.screen = screen
	a.width, a.height = screen.Size()

	if a.follow {
		a.do(a.reader.Tail)
	} else {
		a.do(a.reader.Top)
	}
	a.render()

	events := make(chan tcell.Event)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			a.poll()
			a.render()
		case ev := <-events:
			if quit := a.handleEvent(ev, cancelCtx); quit {
				return nil
			}
			a.render()
		}
	}
}

// poll is the caller-driven resynchronization: pin to the end while
// following, otherwise re-anchor the current window against whatever the
// file looks like now.
func (a *Application) poll() {
	if a.follow {
		a.do(a.reader.Tail)
	} else {
		a.do(a.reader.Refresh)
	}
}

func (a *Application) handleEvent(ev tcell.Event, cancelCtx context.CancelFunc) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.width, a.height = ev.Size()
		a.screen.Sync()

	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
			cancelCtx()
			return true

		case ev.Key() == tcell.KeyUp || ev.Rune() == 'k':
			a.follow = false
			a.do(func() ([]string, error) { return a.reader.MoveUp(1) })

		case ev.Key() == tcell.KeyDown || ev.Rune() == 'j':
			a.do(func() ([]string, error) { return a.reader.MoveDown(1) })

		case ev.Key() == tcell.KeyPgUp:
			a.follow = false
			a.do(func() ([]string, error) { return a.reader.MoveUp(a.pageSize()) })

		case ev.Key() == tcell.KeyPgDn:
			a.do(func() ([]string, error) { return a.reader.MoveDown(a.pageSize()) })

		case ev.Key() == tcell.KeyHome || ev.Rune() == 'g':
			a.follow = false
			a.do(a.reader.Top)

		case ev.Key() == tcell.KeyEnd || ev.Rune() == 'G':
			a.do(a.reader.Tail)

		case ev.Rune() == 'r':
			a.do(a.reader.Refresh)

		case ev.Rune() == 'f':
			a.follow = !a.follow
			if a.follow {
				a.do(a.reader.Tail)
			}
		}
	}

	return false
}

func (a *Application) pageSize() int {
	if a.height <= 1 {
		return 1
	}
	return a.height - 1
}

// do runs one reader operation. Failures are expected (the file may be
// rotated away between polls), so they only update the status bar and the
// previous window stays on screen; the next poll is the retry.
func (a *Application) do(op func() ([]string, error)) {
	if _, err := op(); err != nil {
		a.status = err.Error()
		return
	}
	a.status = ""
}

func (a *Application) render() {
	a.screen.Clear()

	rows := a.visibleRows()
	viewHeight := a.pageSize()

	// When following, the bottom of the window is the interesting part.
	start := 0
	if a.follow && len(rows) > viewHeight {
		start = len(rows) - viewHeight
	}

	y := 0
	for _, row := range rows[start:] {
		if y >= viewHeight {
			break
		}
		a.drawText(0, y, row, tcell.StyleDefault)
		y++
	}

	a.renderStatusBar()
	a.screen.Show()
}

// visibleRows maps the reader's window through the filter and wraps each
// line to the terminal width.
func (a *Application) visibleRows() []string {
	var rows []string
	for _, ln := range a.reader.Window() {
		text := ln
		if a.filter != nil {
			shown := false
			if text, shown = a.filter.Apply(ln); !shown {
				continue
			}
		}
		rows = append(rows, utils.WrapLine(text, a.width)...)
	}
	return rows
}

func (a *Application) renderStatusBar() {
	mode := "scroll"
	if a.follow {
		mode = "follow"
	}

	text := fmt.Sprintf(" %s [%s]", a.reader.Path(), mode)
	if a.status != "" {
		text += "  " + a.status
	}

	style := tcell.StyleDefault.Reverse(true)
	y := a.height - 1
	for x := 0; x < a.width; x++ {
		a.screen.SetContent(x, y, ' ', nil, style)
	}
	a.drawText(0, y, text, style)
}

func (a *Application) drawText(x, y int, text string, style tcell.Style) {
	state := -1
	var cluster string
	for text != "" && x < a.width {
		cluster, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
		runes := []rune(cluster)
		if len(runes) == 0 {
			break
		}
		a.screen.SetContent(x, y, runes[0], runes[1:], style)
		x += uniseg.StringWidth(cluster)
	}
}
