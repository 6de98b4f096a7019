// Package audio plays procedurally generated sound effects and an engine
// drone whose pitch follows the actor's speed. Nothing is loaded from disk.
package audio

import (
	"io"
	"math"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"lanerunner/internal/game"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// SoundKind identifies different sound effects.
type SoundKind int

const (
	SoundStart SoundKind = iota
	SoundCrash
	SoundWin
	SoundReset
)

// System owns the oto context and the engine drone player.
type System struct {
	ctx    *oto.Context
	ready  chan struct{}
	engine oto.Player
	drone  *engineReader

	sfxVolume float64
	seq       uint64
}

// Init creates the audio context. Callers treat an error as "run silent".
func Init() (*System, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return nil, err
	}
	return &System{ctx: ctx, ready: ready, sfxVolume: 0.58}, nil
}

// Attach plays the matching effect for session events and keeps the
// engine drone silent whenever the run is not moving.
func (a *System) Attach(bus *game.EventBus) {
	bus.Subscribe(game.EventRunStarted, func(game.Event) { a.Play(SoundStart) })
	bus.Subscribe(game.EventCollision, func(game.Event) {
		a.SetEngineSpeed(0)
		a.Play(SoundCrash)
	})
	bus.Subscribe(game.EventFinished, func(game.Event) {
		a.SetEngineSpeed(0)
		a.Play(SoundWin)
	})
	bus.Subscribe(game.EventReset, func(game.Event) {
		a.SetEngineSpeed(0)
		a.Play(SoundReset)
	})
}

func (a *System) isReady() bool {
	if a == nil {
		return false
	}
	select {
	case <-a.ready:
		return true
	default:
		return false
	}
}

// Play starts a one-shot effect. It returns immediately; playback runs on
// its own goroutine.
func (a *System) Play(kind SoundKind) {
	if !a.isReady() {
		return
	}
	samples := generateSound(kind, atomic.AddUint64(&a.seq, 1)^uint64(time.Now().UnixNano()))
	if len(samples) == 0 {
		return
	}
	go func() {
		player := a.ctx.NewPlayer(&soundReader{data: samples})
		player.SetVolume(a.sfxVolume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

// SetEngineSpeed retunes the drone. Speed 0 mutes it. The player is
// created lazily on the first non-zero speed.
func (a *System) SetEngineSpeed(speed float32) {
	if !a.isReady() {
		return
	}
	if a.engine == nil {
		if speed <= 0 {
			return
		}
		a.drone = &engineReader{}
		a.engine = a.ctx.NewPlayer(a.drone)
		a.engine.SetVolume(0.12)
		a.engine.Play()
	}
	a.drone.setSpeed(speed)
}

// Close stops the drone.
func (a *System) Close() error {
	if a == nil || a.engine == nil {
		return nil
	}
	return a.engine.Close()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// engineReader streams an endless two-oscillator drone. The target
// frequency is written from the frame loop and read by the oto goroutine.
type engineReader struct {
	target atomic.Uint32 // float32 bits, Hz
	freq   float64
	phase1 float64
	phase2 float64
	seed   uint64
	lp     float64
}

func (e *engineReader) setSpeed(speed float32) {
	var hz float32
	if speed > 0 {
		hz = 38 + 2.2*speed
	}
	e.target.Store(math.Float32bits(hz))
}

func (e *engineReader) Read(p []byte) (int, error) {
	samples := len(p) / 8
	target := float64(math.Float32frombits(e.target.Load()))
	for i := 0; i < samples; i++ {
		// Glide toward the target so speed changes do not click.
		e.freq += (target - e.freq) * 0.0005
		s := 0.0
		if e.freq > 1 {
			e.phase1 += 2 * math.Pi * e.freq / SampleRate
			e.phase2 += 2 * math.Pi * e.freq * 2.01 / SampleRate
			e.lp = e.lp*0.97 + lcg(&e.seed)*0.03
			s = math.Sin(e.phase1)*0.5 + math.Sin(e.phase2)*0.2 + e.lp*0.3
			s *= math.Min(e.freq/40, 1)
		}
		putStereoF32(p, i, softSat(s))
	}
	if e.phase1 > 2*math.Pi*1e6 {
		e.phase1 = math.Mod(e.phase1, 2*math.Pi)
		e.phase2 = math.Mod(e.phase2, 2*math.Pi)
	}
	return samples * 8, nil
}
