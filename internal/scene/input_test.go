package scene

import (
	"math/rand"
	"testing"
)

func TestTouchesBeganFiresOncePerEvent(t *testing.T) {
	tests := []struct {
		name    string
		touches []Touch
		want    int
	}{
		{"none", nil, 0},
		{"one finger", []Touch{{ID: 1}}, 1},
		{"three fingers", []Touch{{ID: 1}, {ID: 2}, {ID: 3}}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestScene(t, 375, 667)
			s.CreatePlayer()
			s.TouchesBegan(tt.touches)
			if got := s.Count(KindBullet); got != tt.want {
				t.Errorf("bullets = %d, want %d", got, tt.want)
			}
			if got := s.Stats().Fired; got != tt.want {
				t.Errorf("Stats().Fired = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTapsFireOneBulletEach(t *testing.T) {
	s := newTestScene(t, 375, 667)
	s.CreatePlayer()
	for i := 1; i <= 5; i++ {
		s.TouchesBegan([]Touch{{ID: i}})
		if got := s.Count(KindBullet); got != i {
			t.Fatalf("after %d taps: %d bullets", i, got)
		}
	}
}

func TestDragClampsAtRightWall(t *testing.T) {
	s := newTestScene(t, 375, 667)
	p := s.CreatePlayer()
	arena := s.Arena()
	maxX := arena.MaxX() - p.W/2

	p.SetPosition(maxX-10, p.Y)

	s.TouchesMoved([]Touch{{ID: 1, X: 250, PrevX: 200}})
	if p.X != maxX {
		t.Errorf("x = %v, want clamp at %v", p.X, maxX)
	}
	if bx, _ := p.Body.Position(); bx != p.X {
		t.Errorf("body x = %v, sprite x = %v", bx, p.X)
	}
}

func TestDragClampsAtLeftWall(t *testing.T) {
	s := newTestScene(t, 375, 667)
	p := s.CreatePlayer()
	s.TouchesMoved([]Touch{{ID: 1, X: 0, PrevX: 1000}})
	if want := s.Arena().MinX() + p.W/2; p.X != want {
		t.Errorf("x = %v, want %v", p.X, want)
	}
}

func TestDragOnlyMovesHorizontally(t *testing.T) {
	s := newTestScene(t, 1536, 2048)
	p := s.CreatePlayer()
	y := p.Y
	s.TouchesMoved([]Touch{{ID: 1, X: 800, Y: 900, PrevX: 780, PrevY: 100}})
	if p.X != 1536.0/2+20 || p.Y != y {
		t.Errorf("player at (%v, %v)", p.X, p.Y)
	}
}

func TestDragFoldsAllTouchesInOrder(t *testing.T) {
	s := newTestScene(t, 1536, 2048)
	p := s.CreatePlayer()
	start := p.X
	s.TouchesMoved([]Touch{
		{ID: 1, X: 110, PrevX: 100},
		{ID: 2, X: 470, PrevX: 500},
	})
	if p.X != start-20 {
		t.Errorf("x = %v, want %v", p.X, start-20)
	}
}

func TestDragNeverLeavesArena(t *testing.T) {
	sizes := [][2]float64{{375, 667}, {1536, 2048}, {1080, 1920}, {768, 1024}}
	rng := rand.New(rand.NewSource(3))
	for _, sz := range sizes {
		s := newTestScene(t, sz[0], sz[1])
		p := s.CreatePlayer()
		lo := s.Arena().MinX() + p.W/2
		hi := s.Arena().MaxX() - p.W/2
		for i := 0; i < 2000; i++ {
			n := 1 + rng.Intn(3)
			touches := make([]Touch, n)
			for j := range touches {
				prev := rng.Float64() * sz[0]
				touches[j] = Touch{ID: j, PrevX: prev, X: prev + (rng.Float64()-0.5)*400}
			}
			s.TouchesMoved(touches)
			if p.X < lo || p.X > hi {
				t.Fatalf("%vx%v: x = %v outside [%v, %v]", sz[0], sz[1], p.X, lo, hi)
			}
		}
	}
}
