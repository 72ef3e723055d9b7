package scene

import (
	"solo/internal/physics"

	"github.com/google/uuid"
)

type Kind int

const (
	KindPlayer Kind = iota
	KindBullet
	KindEnemy
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindBullet:
		return "bullet"
	case KindEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Draw order.
const (
	ZBackground = 0
	ZBullet     = 1
	ZShip       = 2
)

// Entity is a sprite with a physics body living in a scene. Position is the
// centre of the sprite.
type Entity struct {
	ID        uuid.UUID
	Kind      Kind
	X, Y      float64
	ZRotation float64
	ZPosition float64
	W, H      float64
	Body      *physics.Body

	scene   *Scene
	removed bool
}

func newEntity(s *Scene, kind Kind, size Size, category physics.Category, contactTest physics.Mask) *Entity {
	e := &Entity{
		ID:    uuid.New(),
		Kind:  kind,
		W:     size.W,
		H:     size.H,
		scene: s,
	}
	e.Body = physics.NewBody(category, contactTest, size.W, size.H)
	e.Body.Owner = e
	return e
}

func (e *Entity) Position() (float64, float64) {
	return e.X, e.Y
}

func (e *Entity) SetPosition(x, y float64) {
	e.X, e.Y = x, y
	e.Body.SetPosition(x, y)
}

// RemoveFromParent takes the entity out of its scene. Its running actions
// stop and its body leaves the physics world.
func (e *Entity) RemoveFromParent() {
	if e.removed || e.scene == nil {
		return
	}
	e.scene.remove(e)
}

// Removed reports whether the entity has left its scene.
func (e *Entity) Removed() bool {
	return e.removed
}

func (e *Entity) Category() physics.Category {
	return e.Body.Category
}
