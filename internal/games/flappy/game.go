// Package flappy implements a Flappy Bird-style game.
// The player controls a bird that must pass through gaps in vertical pipes
// without touching them, the ceiling or the ground.
package flappy

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// ID is the game identifier used for score storage.
const ID = "flappy"

// Mode is the top-level state of a game.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModeGameOver
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Game implements the Flappy Bird state machine: title screen, runs and
// the game-over screen. It is driven one tick at a time through Step and
// never touches the terminal, the speaker or the disk directly.
type Game struct {
	mode      Mode
	bird      Bird
	pipes     []Pipe       // Active pipes in spawn order
	spawner   *Spawner     // Pipe cadence and gap placement
	score     int          // Current run score
	highScore int          // Best score across runs
	speed     float64      // Current scroll speed
	paused    bool         // Whether the run is paused
	lastHit   HitKind      // What ended the last run
	config    core.RuntimeConfig
	caps      Capabilities // Sound and persistence, never nil after New
}

// New creates a game using the given optional capabilities.
func New(caps Capabilities) *Game {
	return &Game{caps: caps.resolve()}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Reset initializes the game on the title screen and loads the high score.
// A failing store leaves the high score at 0.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.config = cfg

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.spawner = NewSpawner(rand.New(rand.NewSource(seed)))

	g.highScore = 0
	if hs, err := g.caps.Store.LoadHighScore(); err == nil && hs > 0 {
		g.highScore = hs
	}

	g.mode = ModeMenu
	g.newRun()
}

// newRun clears all per-run state.
func (g *Game) newRun() {
	g.bird = NewBird()
	g.pipes = g.pipes[:0]
	g.score = 0
	g.speed = BaseSpeed
	g.paused = false
	g.lastHit = HitNone
	g.spawner.Reset()
}

// Step advances the game by one tick. Input events are applied in arrival
// order, so a restart followed by a flap in the same tick flaps the new bird.
// The run, if any, is then simulated once.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	for _, a := range in.Events {
		switch g.mode {
		case ModeMenu:
			g.stepMenu(a)
		case ModePlaying:
			g.stepPlaying(a)
		case ModeGameOver:
			g.stepGameOver(a)
		}
	}

	if g.mode == ModePlaying && !g.paused {
		g.simulate()
	}

	return core.StepResult{
		State: g.State(),
		Quit:  in.Has(core.ActionQuit),
	}
}

// stepMenu waits for the start input on the title screen.
func (g *Game) stepMenu(a core.Action) {
	switch a {
	case core.ActionJump, core.ActionConfirm:
		g.start()
	}
}

// stepGameOver waits for the restart input.
func (g *Game) stepGameOver(a core.Action) {
	switch a {
	case core.ActionJump, core.ActionConfirm, core.ActionRestart:
		g.start()
	}
}

// start begins a new run. The start key does not count as a flap; later
// events of the same tick apply to the new run.
func (g *Game) start() {
	g.newRun()
	g.mode = ModePlaying
}

// stepPlaying applies one run input. Flaps are ignored while paused.
func (g *Game) stepPlaying(a core.Action) {
	switch a {
	case core.ActionPause:
		g.paused = !g.paused
	case core.ActionJump:
		if g.paused {
			return
		}
		g.bird.Flap()
		g.caps.Sound.Play(SoundFlap)
	}
}

// simulate runs one physics tick: bird, spawner, pipes, then collision.
func (g *Game) simulate() {
	g.bird.Update()

	g.pipes = g.spawner.Update(g.pipes, g.score)

	g.speed = ScrollSpeed(g.score)
	for i := range g.pipes {
		g.pipes[i].Advance(g.speed)
	}
	g.pipes = Prune(g.pipes)

	out := Evaluate(g.bird, g.pipes)
	for i := 0; i < out.Scored; i++ {
		g.score++
		g.caps.Sound.Play(SoundScore)
	}

	if out.GameOver() {
		g.lastHit = out.Hit
		g.caps.Sound.Play(SoundHit)
		g.finish()
	}
}

// finish ends the run and records a new high score.
func (g *Game) finish() {
	g.mode = ModeGameOver
	if g.score > g.highScore {
		g.highScore = g.score
		//nolint:errcheck // Best-effort save, game continues regardless
		g.caps.Store.SaveHighScore(g.highScore)
	}
}

// Mode returns the current top-level state.
func (g *Game) Mode() Mode {
	return g.mode
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		HighScore: g.highScore,
		GameOver:  g.mode == ModeGameOver,
		Paused:    g.paused,
	}
}
