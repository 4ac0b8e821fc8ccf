// Package term provides the tcell frontend for the game. Unlike the Bubble
// Tea frontend it runs an explicit fixed-tick loop: wait for the tick, drain
// pending input, step the game, draw.
package term

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// eventBuffer bounds the events queued between two ticks.
const eventBuffer = 64

// Runner drives a game on a tcell screen.
type Runner struct {
	screen tcell.Screen
	game   *flappy.Game
	config core.RuntimeConfig
	logger *log.Logger
	buf    *core.Screen
	frame  core.InputFrame
	events chan tcell.Event
	done   chan struct{} // closed when Loop returns
}

// NewRunner creates a runner for an initialized screen and resets the game
// to its title screen sized to the terminal.
func NewRunner(screen tcell.Screen, game *flappy.Game, cfg core.RuntimeConfig, logger *log.Logger) *Runner {
	w, h := screen.Size()
	cfg.ScreenW, cfg.ScreenH = w, h
	game.Reset(cfg)

	return &Runner{
		screen: screen,
		game:   game,
		config: cfg,
		logger: logger,
		buf:    core.NewScreen(w, h),
		frame:  core.NewInputFrame(),
		events: make(chan tcell.Event, eventBuffer),
		done:   make(chan struct{}),
	}
}

// Run opens the terminal, plays until the player quits and restores the
// terminal on return.
func Run(game *flappy.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("term: cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("term: cannot init screen: %w", err)
	}
	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault)
	screen.HideCursor()
	screen.Clear()

	return NewRunner(screen, game, cfg, logger).Loop()
}

// Loop runs the game until a tick reports quit.
func (r *Runner) Loop() error {
	defer close(r.done)
	go r.poll()

	ticker := time.NewTicker(time.Second / time.Duration(r.config.TickRate))
	defer ticker.Stop()

	r.draw()
	for {
		<-ticker.C

		r.drain()
		if r.step() {
			return nil
		}
		r.draw()
	}
}

// poll forwards screen events until the screen is finalized or the loop
// has returned.
func (r *Runner) poll() {
	for {
		ev := r.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case r.events <- ev:
		case <-r.done:
			return
		}
	}
}

// drain consumes every queued event without blocking, in arrival order.
func (r *Runner) drain() {
	for {
		select {
		case ev := <-r.events:
			r.handleEvent(ev)
		default:
			return
		}
	}
}

// handleEvent applies one terminal event.
func (r *Runner) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if a := KeyAction(ev); a != core.ActionNone {
			r.frame.Set(a)
		}
	case *tcell.EventResize:
		w, h := ev.Size()
		r.buf.Resize(w, h)
		r.config.ScreenW, r.config.ScreenH = w, h
		r.screen.Sync()
	}
}

// step advances the game one tick with the collected input.
// Returns true when the player asked to quit.
func (r *Runner) step() bool {
	var in core.InputFrame
	if !r.frame.Empty() {
		in = r.frame.Clone()
		r.frame.Clear()
	}

	prev := r.game.Mode()
	result := r.game.Step(in)

	if mode := r.game.Mode(); mode != prev && mode == flappy.ModeGameOver {
		r.logger.Debug("run ended", "score", result.State.Score, "high_score", result.State.HighScore)
	}
	return result.Quit
}

// draw renders the game and copies the cells to the terminal.
func (r *Runner) draw() {
	r.game.Render(r.buf)

	for y := 0; y < r.buf.Height(); y++ {
		for x := 0; x < r.buf.Width(); x++ {
			cell := r.buf.GetCell(x, y)
			r.screen.SetContent(x, y, cell.Rune, nil, Style(cell.Color))
		}
	}
	r.screen.Show()
}

// KeyAction maps a key event to a game action.
func KeyAction(ev *tcell.EventKey) core.Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return core.ActionJump
	case tcell.KeyEnter:
		return core.ActionConfirm
	case tcell.KeyEscape:
		return core.ActionPause
	case tcell.KeyCtrlC:
		return core.ActionQuit
	case tcell.KeyRune:
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			if ev.Rune() == 'c' {
				return core.ActionQuit
			}
			return core.ActionNone
		}
		switch ev.Rune() {
		case ' ', 'w':
			return core.ActionJump
		case 'r':
			return core.ActionRestart
		case 'p':
			return core.ActionPause
		case 'q':
			return core.ActionQuit
		}
	}
	return core.ActionNone
}

// styles maps core.Color to tcell styles.
var styles = map[core.Color]tcell.Style{
	core.ColorDefault:      tcell.StyleDefault,
	core.ColorRed:          tcell.StyleDefault.Foreground(tcell.ColorMaroon),
	core.ColorGreen:        tcell.StyleDefault.Foreground(tcell.ColorGreen),
	core.ColorYellow:       tcell.StyleDefault.Foreground(tcell.ColorOlive),
	core.ColorBlue:         tcell.StyleDefault.Foreground(tcell.ColorNavy),
	core.ColorCyan:         tcell.StyleDefault.Foreground(tcell.ColorTeal),
	core.ColorWhite:        tcell.StyleDefault.Foreground(tcell.ColorSilver),
	core.ColorBrightGreen:  tcell.StyleDefault.Foreground(tcell.ColorLime),
	core.ColorBrightYellow: tcell.StyleDefault.Foreground(tcell.ColorYellow),
	core.ColorBrightWhite:  tcell.StyleDefault.Foreground(tcell.ColorWhite),
	core.ColorOrange:       tcell.StyleDefault.Foreground(tcell.PaletteColor(208)),
	core.ColorGray:         tcell.StyleDefault.Foreground(tcell.PaletteColor(245)),
	core.ColorTan:          tcell.StyleDefault.Foreground(tcell.PaletteColor(180)),
}

// Style returns the tcell style for a cell color.
func Style(c core.Color) tcell.Style {
	if s, ok := styles[c]; ok {
		return s
	}
	return tcell.StyleDefault
}
