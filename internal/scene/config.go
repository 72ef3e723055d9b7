package scene

import "math"

// Scene defaults. The scene is a tall portrait canvas; the arena inside it
// is clamped to 16:9.
const (
	DefaultWidth  = 1536
	DefaultHeight = 2048

	// BulletSound is the cue played when a bullet leaves the ship.
	BulletSound = "soundeffect1"
)

type Size struct {
	W, H float64
}

// Config holds everything a scene needs to build itself. Durations are in
// seconds.
type Config struct {
	Width, Height float64

	PlayerSize Size
	BulletSize Size
	// EnemySize is measured with the ship facing +x, the direction a zero
	// rotation points at.
	EnemySize Size

	SpawnInterval  float64
	BulletDuration float64
	EnemyDuration  float64

	// PlayerHeight is the player's y as a fraction of the scene height.
	PlayerHeight float64
	// EnemyStart and EnemyEnd are the enemy's start and end y as fractions
	// of the scene height.
	EnemyStart float64
	EnemyEnd   float64

	// Seed feeds the random source. Zero picks a time based seed.
	Seed int64

	// CellSize is the broad-phase cell edge used for contact detection.
	CellSize int
}

func DefaultConfig() Config {
	return Config{
		Width:  DefaultWidth,
		Height: DefaultHeight,

		PlayerSize: Size{W: 120, H: 150},
		BulletSize: Size{W: 18, H: 60},
		EnemySize:  Size{W: 150, H: 120},

		SpawnInterval:  1,
		BulletDuration: 1,
		EnemyDuration:  1.5,

		PlayerHeight: 0.2,
		EnemyStart:   1.2,
		EnemyEnd:     -0.2,

		CellSize: 64,
	}
}

func (c Config) Size() Size {
	return Size{W: c.Width, H: c.Height}
}

// FlightBounds is the band every body can occupy during its flight, padded by
// the largest body so a rotated enemy still fits on either side.
func (c Config) FlightBounds() Rect {
	pad := 0.0
	for _, sz := range []Size{c.PlayerSize, c.BulletSize, c.EnemySize} {
		pad = math.Max(pad, math.Hypot(sz.W, sz.H))
	}
	lo := math.Min(0, math.Min(c.EnemyStart, c.EnemyEnd)*c.Height)
	hi := math.Max(c.Height+c.BulletSize.H, math.Max(c.EnemyStart, c.EnemyEnd)*c.Height)
	return Rect{
		X: -pad,
		Y: lo - pad,
		W: c.Width + 2*pad,
		H: hi - lo + 2*pad,
	}
}
