package flappy

// SoundEvent identifies a sound effect requested by the game.
type SoundEvent int

const (
	SoundFlap SoundEvent = iota
	SoundScore
	SoundHit
)

// String returns the event name.
func (e SoundEvent) String() string {
	switch e {
	case SoundFlap:
		return "flap"
	case SoundScore:
		return "score"
	case SoundHit:
		return "hit"
	default:
		return "unknown"
	}
}

// Sound plays effects. Play must not block the game loop; failures are the
// implementation's business and never reach the game.
type Sound interface {
	Play(SoundEvent)
}

// HighScoreStore persists the single best score.
type HighScoreStore interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
}

// Capabilities are the optional collaborators of a game. A nil field means
// the capability is absent and the game runs without it.
type Capabilities struct {
	Sound Sound
	Store HighScoreStore
}

// resolve replaces absent capabilities with no-op implementations so the
// game never has to check for nil inside a tick.
func (c Capabilities) resolve() Capabilities {
	if c.Sound == nil {
		c.Sound = silence{}
	}
	if c.Store == nil {
		c.Store = memoryStore{}
	}
	return c
}

type silence struct{}

func (silence) Play(SoundEvent) {}

type memoryStore struct{}

func (memoryStore) LoadHighScore() (int, error) { return 0, nil }

func (memoryStore) SaveHighScore(int) error { return nil }
