package scene

import (
	"math"

	"solo/internal/action"
	"solo/internal/physics"
)

// CreatePlayer places the player ship at the horizontal centre of the scene,
// a fifth of the way up. The ship reports contact with enemies only.
func (s *Scene) CreatePlayer() *Entity {
	if s.player != nil {
		return s.player
	}
	p := newEntity(s, KindPlayer, s.cfg.PlayerSize,
		physics.CategoryPlayer, physics.MaskOf(physics.CategoryEnemy))
	p.X = s.cfg.Width / 2
	p.Y = s.cfg.Height * s.cfg.PlayerHeight
	p.ZPosition = ZShip
	s.add(p)
	s.player = p
	return p
}

// FireBullet launches one bullet from the player's current position straight
// up past the top edge, then removes it.
func (s *Scene) FireBullet() *Entity {
	if s.player == nil || s.tornDown {
		return nil
	}
	b := newEntity(s, KindBullet, s.cfg.BulletSize,
		physics.CategoryBullet, physics.MaskOf(physics.CategoryEnemy))
	b.X, b.Y = s.player.X, s.player.Y
	b.ZPosition = ZBullet
	s.add(b)

	s.actions.Run(b, action.Sequence(
		action.PlaySound(s.sounds, BulletSound),
		action.MoveToY(s.cfg.Height+b.H, s.cfg.BulletDuration),
		action.RemoveFromParent(),
	))
	s.stats.Fired++
	return b
}

// SpawnEnemy creates an enemy above the top edge at a random x inside the
// arena and sends it to a random x below the bottom edge. The ship is
// rotated to face where it is going.
func (s *Scene) SpawnEnemy() *Entity {
	if s.tornDown {
		return nil
	}
	startX := s.random(s.arena.MinX(), s.arena.MaxX())
	endX := s.random(s.arena.MinX(), s.arena.MaxX())
	startY := s.cfg.Height * s.cfg.EnemyStart
	endY := s.cfg.Height * s.cfg.EnemyEnd

	e := newEntity(s, KindEnemy, s.cfg.EnemySize,
		physics.CategoryEnemy, physics.MaskOf(physics.CategoryPlayer, physics.CategoryBullet))
	e.X, e.Y = startX, startY
	e.ZPosition = ZShip
	e.ZRotation = math.Atan2(endY-startY, endX-startX)

	// The body is axis aligned, so it covers the rotated sprite's bounds.
	sin, cos := math.Abs(math.Sin(e.ZRotation)), math.Abs(math.Cos(e.ZRotation))
	e.Body.W = e.W*cos + e.H*sin
	e.Body.H = e.W*sin + e.H*cos

	s.add(e)
	s.actions.Run(e, action.Sequence(
		action.MoveTo(endX, endY, s.cfg.EnemyDuration),
		action.RemoveFromParent(),
	))
	s.stats.Spawned++
	return e
}
