package scene

// Touch is one finger sample in scene coordinates, with where the same
// finger was on the previous sample.
type Touch struct {
	ID           int
	X, Y         float64
	PrevX, PrevY float64
}

// TouchesBegan fires exactly one bullet per began event, however many
// fingers went down together. It returns the bullet, or nil when nothing
// could be fired.
func (s *Scene) TouchesBegan(touches []Touch) *Entity {
	if len(touches) == 0 {
		return nil
	}
	return s.FireBullet()
}

// TouchesMoved drags the player horizontally by each touch's movement since
// its previous sample, keeping the whole ship inside the arena. Several
// touches are applied one after another in the order given.
func (s *Scene) TouchesMoved(touches []Touch) {
	if s.player == nil || s.tornDown {
		return
	}
	for _, t := range touches {
		s.DragPlayer(t.X - t.PrevX)
	}
}

// DragPlayer moves the player by dx and clamps it to the arena.
func (s *Scene) DragPlayer(dx float64) {
	p := s.player
	if p == nil {
		return
	}
	x := p.X + dx
	if hi := s.arena.MaxX() - p.W/2; x > hi {
		x = hi
	}
	if lo := s.arena.MinX() + p.W/2; x < lo {
		x = lo
	}
	p.SetPosition(x, p.Y)
}
