package game

import "testing"

func TestNewGameStateIsIdle(t *testing.T) {
	s := NewGameState()
	if s.Phase() != PhaseIdle {
		t.Fatalf("phase = %v, want idle", s.Phase())
	}
	if s.Moving() || s.CameraStopped() || s.ObstaclesStopped() {
		t.Fatal("idle state reports motion flags")
	}
	if !s.ControlsPanelVisible() {
		t.Fatal("controls panel hidden at start")
	}
	if s.GameOverVisible() || s.WinnerVisible() {
		t.Fatal("outcome visible at start")
	}
}

func TestGameStateTransitions(t *testing.T) {
	tests := []struct {
		name    string
		steps   []Transition
		want    Phase
		changed bool // result of the last Apply
	}{
		{"start from idle", []Transition{TransitionStart}, PhaseRunning, true},
		{"collide while idle ignored", []Transition{TransitionCollide}, PhaseIdle, false},
		{"finish while idle ignored", []Transition{TransitionFinish}, PhaseIdle, false},
		{"collide while running", []Transition{TransitionStart, TransitionCollide}, PhaseLost, true},
		{"finish while running", []Transition{TransitionStart, TransitionFinish}, PhaseWon, true},
		{"finish after loss ignored", []Transition{TransitionStart, TransitionCollide, TransitionFinish}, PhaseLost, false},
		{"collide after win ignored", []Transition{TransitionStart, TransitionFinish, TransitionCollide}, PhaseWon, false},
		{"start after loss ignored", []Transition{TransitionStart, TransitionCollide, TransitionStart}, PhaseLost, false},
		{"reset after loss", []Transition{TransitionStart, TransitionCollide, TransitionReset}, PhaseIdle, true},
		{"reset while idle", []Transition{TransitionReset}, PhaseIdle, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewGameState()
			var changed bool
			for _, tr := range tt.steps {
				changed = s.Apply(tr)
			}
			if s.Phase() != tt.want {
				t.Errorf("phase = %v, want %v", s.Phase(), tt.want)
			}
			if changed != tt.changed {
				t.Errorf("last Apply = %v, want %v", changed, tt.changed)
			}
			if s.GameOverVisible() && s.WinnerVisible() {
				t.Error("game over and winner both visible")
			}
		})
	}
}

func TestGameStateFlags(t *testing.T) {
	s := NewGameState()
	s.Apply(TransitionStart)
	s.Apply(TransitionCollide)
	if !s.Moving() || !s.CameraStopped() || !s.ObstaclesStopped() || !s.GameOverVisible() {
		t.Fatalf("lost flags wrong: %+v", s)
	}

	s = NewGameState()
	s.Apply(TransitionStart)
	s.Apply(TransitionFinish)
	if !s.Moving() || !s.CameraStopped() || !s.WinnerVisible() {
		t.Fatalf("won flags wrong: %+v", s)
	}
	if s.ObstaclesStopped() {
		t.Fatal("a win must not freeze obstacles")
	}
}

func TestResetKeepsControlsHidden(t *testing.T) {
	s := NewGameState()
	s.Apply(TransitionStart)
	s.Apply(TransitionReset)
	if s.ControlsPanelVisible() {
		t.Fatal("reset restored the controls panel")
	}
	if !s.Apply(TransitionStart) || s.Phase() != PhaseRunning {
		t.Fatal("start after reset did not run")
	}
}
