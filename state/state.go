package state

// GameState is the single process-wide mode the game runs in.
type GameState int

const (
	Loading GameState = iota
	Menu
	Game
	Pause
	Win
)

func (s GameState) String() string {
	switch s {
	case Loading:
		return "loading"
	case Menu:
		return "menu"
	case Game:
		return "game"
	case Pause:
		return "pause"
	case Win:
		return "win"
	default:
		return "unknown"
	}
}

// Store holds the committed state and a pending next-state slot. All
// transitions go through Request; Commit applies the most recent request
// once per tick, after every system has read the current value.
type Store struct {
	current GameState
	pending GameState
	hasNext bool
}

// NewStore starts in Loading.
func NewStore() *Store {
	return &Store{current: Loading}
}

// Get returns the last committed state.
func (s *Store) Get() GameState {
	return s.current
}

// Request records the next state. Repeated requests within one tick are
// last-write-wins.
func (s *Store) Request(next GameState) {
	s.pending = next
	s.hasNext = true
}

// Commit applies the most recently requested state, if any, and reports
// whether the committed value differs from the previous one.
func (s *Store) Commit() bool {
	if !s.hasNext {
		return false
	}
	s.hasNext = false
	changed := s.pending != s.current
	s.current = s.pending
	return changed
}
