package game

// FrameInput is the set of semantic inputs observed during one frame.
type FrameInput struct {
	Forward bool
	Left    bool
	Right   bool
	Reset   bool
	Quit    bool
}

// Session owns everything that changes during a run: the actor camera,
// the obstacle pool and the game state. It is driven by a single frame
// loop and is not safe for concurrent use.
type Session struct {
	cfg   Config
	rng   *Rand
	cam   Camera
	pool  *ObstaclePool
	state GameState
	bus   *EventBus
	fx    *ParticleSystem

	events []Event
}

// NewSession builds a session in the idle phase. The same seed always
// yields the same obstacle layouts.
func NewSession(cfg Config, seed uint64) *Session {
	rng := NewRand(seed)
	return &Session{
		cfg:   cfg,
		rng:   rng,
		cam:   NewCamera(cfg.ActorStart, cfg.StartSpeed),
		pool:  NewObstaclePool(cfg.Pool, rng),
		state: NewGameState(),
		bus:   NewEventBus(),
		fx:    NewParticleSystem(MaxParticles, seed^0xBEAD),
	}
}

func (s *Session) Bus() *EventBus { return s.bus }
func (s *Session) State() GameState { return s.state }
func (s *Session) Camera() Camera { return s.cam }
func (s *Session) Obstacles() []Obstacle { return s.pool.Obstacles() }
func (s *Session) Pool() *ObstaclePool { return s.pool }
func (s *Session) Config() Config { return s.cfg }

// Particles are the crash and finish effects currently alive.
func (s *Session) Particles() []Particle { return s.fx.P }

// PlayerBox is the car volume used for collision this frame.
func (s *Session) PlayerBox() Box {
	return Box{Pos: s.cam.Position.Add(s.cfg.PlayerOffset), Scale: s.cfg.PlayerScale}
}

// Progress is the fraction of the track between start and finish the
// actor has covered, in [0, 1].
func (s *Session) Progress() float32 {
	total := s.cfg.ActorStart.Z() - s.cfg.FinishDepth
	if total <= 0 {
		return 0
	}
	return clampF((s.cfg.ActorStart.Z()-s.cam.Position.Z())/total, 0, 1)
}

// Zoom forwards a scroll offset to the camera field of view.
func (s *Session) Zoom(yOffset float32) {
	s.cam.Scroll(yOffset)
}

// Tick runs one frame: input, actor motion and finish check, obstacle
// advance, collision, then effects. The returned events are also published on
// the bus; the slice is reused by the next Tick.
func (s *Session) Tick(dt float32, in FrameInput) []Event {
	s.events = s.events[:0]

	if in.Quit {
		s.emit(Event{Type: EventQuit, Index: -1})
	}

	if in.Forward {
		wasIdle := s.state.Phase() == PhaseIdle
		s.state.Apply(TransitionStart)
		if wasIdle {
			s.emit(Event{Type: EventRunStarted, Index: -1, Z: s.cam.Position.Z()})
		}
	}

	if !s.state.CameraStopped() {
		if in.Left && s.cam.Position.X() > s.cfg.Pool.LaneMin {
			s.cam.Move(MoveLeft, dt)
		}
		if in.Right && s.cam.Position.X() < s.cfg.Pool.LaneMax {
			s.cam.Move(MoveRight, dt)
		}
	}

	if in.Reset {
		s.reset()
	}

	if s.state.Phase() == PhaseRunning {
		s.cam.Speed += s.cfg.Acceleration * dt
		s.cam.Move(MoveForward, dt)
		if s.cam.Position.Z() <= s.cfg.FinishDepth && s.cam.Position.X() <= s.cfg.FinishLaneMax {
			s.state.Apply(TransitionFinish)
			s.cam.Speed = 0
			s.fx.SpawnConfetti(s.PlayerBox().Pos)
			s.emit(Event{Type: EventFinished, Index: -1, Z: s.cam.Position.Z()})
		}
	}

	for _, i := range s.pool.Advance(dt, s.cam.Position.Z(), s.state.Moving()) {
		s.emit(Event{Type: EventRecycled, Index: i, Z: s.pool.Obstacles()[i].Position.Z()})
	}

	if s.state.Phase() == PhaseRunning {
		if i, hit := FirstHit(s.PlayerBox(), s.pool.Obstacles()); hit {
			s.state.Apply(TransitionCollide)
			s.cam.Speed = 0
			s.pool.Freeze()
			o := s.pool.Obstacles()[i]
			s.fx.SpawnCrash(o.Position.Add(o.Scale.Mul(0.5)), 1)
			s.emit(Event{Type: EventCollision, Index: i, Z: s.cam.Position.Z()})
		}
	}

	s.fx.Update(dt, TrackSurface)

	return s.events
}

// reset returns to the idle phase with the actor at its start position
// and a freshly laid out pool. The controls panel stays as it was.
func (s *Session) reset() {
	s.state.Apply(TransitionReset)
	s.cam.Position = s.cfg.ActorStart
	s.cam.Speed = s.cfg.StartSpeed
	s.pool.Initialize()
	s.fx.Clear()
	s.emit(Event{Type: EventReset, Index: -1, Z: s.cam.Position.Z()})
}

func (s *Session) emit(e Event) {
	s.events = append(s.events, e)
	s.bus.Emit(e)
}
