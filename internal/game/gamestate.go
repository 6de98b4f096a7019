package game

type Phase int

const (
	PhaseIdle    Phase = iota // waiting for the first forward input
	PhaseRunning              // actor and obstacles moving
	PhaseLost                 // hit an obstacle
	PhaseWon                  // crossed the finish line
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseLost:
		return "lost"
	case PhaseWon:
		return "won"
	}
	return "unknown"
}

type Transition int

const (
	TransitionStart Transition = iota
	TransitionCollide
	TransitionFinish
	TransitionReset
)

func (t Transition) String() string {
	switch t {
	case TransitionStart:
		return "start"
	case TransitionCollide:
		return "collide"
	case TransitionFinish:
		return "finish"
	case TransitionReset:
		return "reset"
	}
	return "unknown"
}

// GameState is the run phase plus the controls panel flag. The panel is
// independent of the phase: the first forward input hides it and nothing
// shows it again, not even Reset.
type GameState struct {
	phase    Phase
	controls bool
}

func NewGameState() GameState {
	return GameState{phase: PhaseIdle, controls: true}
}

// Apply performs a transition and reports whether anything changed.
// Transitions that do not apply to the current phase are ignored.
func (s *GameState) Apply(t Transition) bool {
	switch t {
	case TransitionStart:
		changed := s.controls
		s.controls = false
		if s.phase == PhaseIdle {
			s.phase = PhaseRunning
			return true
		}
		return changed
	case TransitionCollide:
		if s.phase != PhaseRunning {
			return false
		}
		s.phase = PhaseLost
		return true
	case TransitionFinish:
		if s.phase != PhaseRunning {
			return false
		}
		s.phase = PhaseWon
		return true
	case TransitionReset:
		changed := s.phase != PhaseIdle
		s.phase = PhaseIdle
		return changed
	}
	return false
}

func (s GameState) Phase() Phase { return s.phase }

// Moving is true from the first forward input until Reset. It stays set
// after a terminal outcome, which is what keeps obstacles drifting after
// a win.
func (s GameState) Moving() bool { return s.phase != PhaseIdle }

// CameraStopped is true once the run has ended either way.
func (s GameState) CameraStopped() bool {
	return s.phase == PhaseLost || s.phase == PhaseWon
}

// ObstaclesStopped is only set by a collision.
func (s GameState) ObstaclesStopped() bool { return s.phase == PhaseLost }

func (s GameState) ControlsPanelVisible() bool { return s.controls }
func (s GameState) GameOverVisible() bool { return s.phase == PhaseLost }
func (s GameState) WinnerVisible() bool { return s.phase == PhaseWon }
