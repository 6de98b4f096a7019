package game

import "github.com/go-gl/mathgl/mgl32"

// Obstacle layout (world units). Obstacles sit on the track at a fixed
// height and are spread along -Z at a fixed spacing.
const (
	ObstacleCount   = 10
	ObstacleSize    = 3.0
	ObstacleHeight  = 1.5
	ObstacleSpacing = 20.0
	ObstacleSpeed   = 5.0
	RecycleDistance = 50.0
)

// Lane limits on the X axis. Obstacle lanes are drawn from this range and
// the actor cannot steer past it.
const (
	LaneMin = -27.0
	LaneMax = 13.0
)

// Actor motion.
const (
	StartSpeed   = 2.5
	Acceleration = 0.5 // units/s added to speed per second while running
	DefaultZoom  = 45.0
	MinZoom      = 1.0
	MaxZoom      = 45.0
)

// Finish line. The actor wins once Z drops to FinishDepth while its X
// stays at or below FinishLaneMax.
const (
	FinishDepth   = -7075.0
	FinishLaneMax = 10000.0
)

// TrackSurface is the height of the road surface. Crash debris settles on it.
const TrackSurface = 0.5

// MaxFrameDelta caps dt so a stalled frame cannot teleport the actor.
const MaxFrameDelta = 0.1

var (
	// ActorStart is the camera position at program start and after reset.
	ActorStart = mgl32.Vec3{0, 3.7, -11}
	// PlayerOffset places the car volume below and ahead of the camera.
	PlayerOffset = mgl32.Vec3{0, -3, -12}
	PlayerScale  = mgl32.Vec3{1, 1, 1}
)

// PoolConfig describes an obstacle pool. An obstacle that drifts more
// than RecycleDistance behind the actor is moved RecycleDistance ahead.
// RecycleDistance is expected to loosely exceed Spacing*Count, else
// obstacles can pop back in front before being passed; the pool does
// not check this.
type PoolConfig struct {
	Count           int
	LaneMin         float32
	LaneMax         float32
	Spacing         float32
	Height          float32
	Size            float32
	Speed           float32
	RecycleDistance float32
}

// Config holds every tunable of a session.
type Config struct {
	Pool PoolConfig

	ActorStart   mgl32.Vec3
	StartSpeed   float32
	Acceleration float32

	PlayerOffset mgl32.Vec3
	PlayerScale  mgl32.Vec3

	FinishDepth   float32
	FinishLaneMax float32
}

// DefaultConfig returns the tuning the collision thresholds were set against.
func DefaultConfig() Config {
	return Config{
		Pool: PoolConfig{
			Count:           ObstacleCount,
			LaneMin:         LaneMin,
			LaneMax:         LaneMax,
			Spacing:         ObstacleSpacing,
			Height:          ObstacleHeight,
			Size:            ObstacleSize,
			Speed:           ObstacleSpeed,
			RecycleDistance: RecycleDistance,
		},
		ActorStart:    ActorStart,
		StartSpeed:    StartSpeed,
		Acceleration:  Acceleration,
		PlayerOffset:  PlayerOffset,
		PlayerScale:   PlayerScale,
		FinishDepth:   FinishDepth,
		FinishLaneMax: FinishLaneMax,
	}
}
