package game

import "github.com/go-gl/mathgl/mgl32"

// Obstacle is one crate on the track. Scale never changes after creation.
type Obstacle struct {
	Position mgl32.Vec3
	Scale    mgl32.Vec3
}

func (o Obstacle) Box() Box {
	return Box{Pos: o.Position, Scale: o.Scale}
}

// ObstaclePool is a fixed set of obstacles that drift toward the actor and
// are moved back in front of it once passed, so the track never runs out.
type ObstaclePool struct {
	cfg       PoolConfig
	rng       *Rand
	obstacles []Obstacle
	frozen    bool
}

func NewObstaclePool(cfg PoolConfig, rng *Rand) *ObstaclePool {
	p := &ObstaclePool{
		cfg:       cfg,
		rng:       rng,
		obstacles: make([]Obstacle, cfg.Count),
	}
	p.Initialize()
	return p
}

// Initialize places obstacle i at depth -(i*Spacing) in a random lane and
// thaws the pool. The backing slice is reused.
func (p *ObstaclePool) Initialize() {
	scale := mgl32.Vec3{p.cfg.Size, p.cfg.Size, p.cfg.Size}
	for i := range p.obstacles {
		p.obstacles[i] = Obstacle{
			Position: mgl32.Vec3{
				p.rng.RangeF32(p.cfg.LaneMin, p.cfg.LaneMax),
				p.cfg.Height,
				-(float32(i) * p.cfg.Spacing),
			},
			Scale: scale,
		}
	}
	p.frozen = false
}

// Advance moves every obstacle by dt*Speed along +Z. Obstacles that end up
// more than RecycleDistance behind actorDepth are placed RecycleDistance in
// front of it with a new lane. Nothing moves while !moving or frozen.
// The returned slice lists recycled indices and is nil when none were.
func (p *ObstaclePool) Advance(dt, actorDepth float32, moving bool) []int {
	if !moving || p.frozen {
		return nil
	}
	var recycled []int
	step := dt * p.cfg.Speed
	for i := range p.obstacles {
		o := &p.obstacles[i]
		o.Position[2] += step
		if o.Position[2] > actorDepth+p.cfg.RecycleDistance {
			o.Position[2] = actorDepth - p.cfg.RecycleDistance
			o.Position[0] = p.rng.RangeF32(p.cfg.LaneMin, p.cfg.LaneMax)
			recycled = append(recycled, i)
		}
	}
	return recycled
}

// Freeze stops all movement until the next Initialize.
func (p *ObstaclePool) Freeze() { p.frozen = true }
func (p *ObstaclePool) Frozen() bool { return p.frozen }
func (p *ObstaclePool) Len() int { return len(p.obstacles) }
func (p *ObstaclePool) Config() PoolConfig { return p.cfg }

// Obstacles exposes the pool for rendering and collision. The slice is
// owned by the pool and is updated in place.
func (p *ObstaclePool) Obstacles() []Obstacle { return p.obstacles }
