package scene

import (
	"errors"
	"math"
	"testing"
)

const tick = 1.0 / 60

func TestStartCreatesPlayerAndSpawnsImmediately(t *testing.T) {
	s := newTestScene(t, 1536, 2048)
	s.Start()
	if s.Player() == nil {
		t.Fatal("no player after Start")
	}
	if s.Count(KindEnemy) != 0 {
		t.Fatal("enemy spawned before the first tick")
	}
	s.Update(tick)
	if got := s.Count(KindEnemy); got != 1 {
		t.Errorf("enemies after first tick = %d, want 1", got)
	}

	s.Start()
	if s.Count(KindPlayer) != 1 {
		t.Error("second Start created another player")
	}
}

func TestSpawnDriverRate(t *testing.T) {
	s := newTestScene(t, 1536, 2048)
	s.Start()
	// 1 + 60*5 ticks covers spawns at t = 0, 1, 2, 3, 4, 5.
	for i := 0; i < 1+60*5; i++ {
		s.Update(tick)
	}
	if got := s.Stats().Spawned; got != 6 {
		t.Errorf("spawned = %d, want 6", got)
	}
	// Each enemy lives 1.5s, so at most two are on screen at once.
	if got := s.Count(KindEnemy); got < 1 || got > 2 {
		t.Errorf("live enemies = %d, want 1 or 2", got)
	}
}

func TestEnemiesAreRemovedAfterFlight(t *testing.T) {
	s := newTestScene(t, 1536, 2048)
	e := s.SpawnEnemy()
	for i := 0; i < 89; i++ {
		s.Update(tick)
	}
	if e.Removed() {
		t.Fatal("enemy removed before finishing its flight")
	}
	for i := 0; i < 3; i++ {
		s.Update(tick)
	}
	if !e.Removed() {
		t.Fatal("enemy not removed")
	}
	if s.RunningActions() != 0 {
		t.Errorf("running actions = %d, want 0", s.RunningActions())
	}
}

func TestContactsAreReportedWithoutResponse(t *testing.T) {
	s := newTestScene(t, 1536, 2048)
	p := s.CreatePlayer()

	var got []Contact
	s.OnContact = func(c Contact) { got = append(got, c) }

	e := s.SpawnEnemy()
	e.SetPosition(p.X, p.Y)
	s.Update(0)

	if len(got) != 1 {
		t.Fatalf("contacts = %d, want 1", len(got))
	}
	if got[0].A != p || got[0].B != e {
		t.Errorf("unexpected pair %v/%v", got[0].A.Kind, got[0].B.Kind)
	}
	if e.Removed() || p.Removed() {
		t.Error("contact removed an entity")
	}

	s.Update(0)
	if len(got) != 1 {
		t.Errorf("contact reported again while still touching: %d", len(got))
	}
	if s.Stats().Contacts != 1 {
		t.Errorf("Stats().Contacts = %d", s.Stats().Contacts)
	}
}

func TestBulletEnemyContact(t *testing.T) {
	s := newTestScene(t, 1536, 2048)
	p := s.CreatePlayer()
	s.DragPlayer(-300)
	b := s.FireBullet()
	s.DragPlayer(600)

	kinds := map[Kind]int{}
	s.OnContact = func(c Contact) {
		kinds[c.A.Kind]++
		kinds[c.B.Kind]++
	}

	e := s.SpawnEnemy()
	e.SetPosition(b.X, b.Y)
	s.Update(0)

	if kinds[KindBullet] != 1 || kinds[KindEnemy] != 1 || kinds[KindPlayer] != 0 {
		t.Errorf("unexpected contacts %v (player at %v, bullet at %v)", kinds, p.X, b.X)
	}
	if b.Removed() || e.Removed() {
		t.Error("contact cancelled an entity")
	}

	flight := math.Max(s.Config().BulletDuration, s.Config().EnemyDuration)
	for i := 0; i < int(flight/tick)+10; i++ {
		s.Update(tick)
	}
	if !b.Removed() || !e.Removed() {
		t.Errorf("removed after flight: bullet %v, enemy %v", b.Removed(), e.Removed())
	}
	if n := s.RunningActions(); n != 0 {
		t.Errorf("RunningActions() = %d after every flight ended", n)
	}
}

func TestContactsOutsideScreen(t *testing.T) {
	s := newTestScene(t, 1536, 2048)
	s.CreatePlayer()
	contacts := 0
	s.OnContact = func(Contact) { contacts++ }

	// a bullet at the end of its flight and an enemy that just spawned
	top := s.FireBullet()
	top.SetPosition(500, s.Size().H+top.H)
	high := s.SpawnEnemy()
	high.SetPosition(500, 2120+high.Body.H/2)

	// an enemy leaving through the bottom edge
	low := s.FireBullet()
	low.SetPosition(1000, -300)
	gone := s.SpawnEnemy()
	gone.SetPosition(1000, -300)

	s.Update(0)
	if contacts != 2 {
		t.Errorf("contacts = %d, want 2", contacts)
	}
}

func TestFlightBoundsCoverEveryFlight(t *testing.T) {
	cfg := DefaultConfig()
	b := cfg.FlightBounds()

	if b.MaxY() < cfg.Height*cfg.EnemyStart+cfg.EnemySize.W {
		t.Errorf("top %v does not reach above the enemy start", b.MaxY())
	}
	if b.MaxY() < cfg.Height+1.5*cfg.BulletSize.H {
		t.Errorf("top %v does not cover a finished bullet", b.MaxY())
	}
	if b.MinY() > cfg.Height*cfg.EnemyEnd-cfg.EnemySize.W {
		t.Errorf("bottom %v does not reach below the enemy end", b.MinY())
	}
	if b.MinX() > 0 || b.MaxX() < cfg.Width {
		t.Errorf("bounds %v narrower than the scene", b)
	}
}

func TestEnemiesDoNotContactEachOther(t *testing.T) {
	s := newTestScene(t, 1536, 2048)
	contacts := 0
	s.OnContact = func(Contact) { contacts++ }

	a := s.SpawnEnemy()
	b := s.SpawnEnemy()
	a.SetPosition(500, 1000)
	b.SetPosition(510, 1010)
	s.Update(0)
	if contacts != 0 {
		t.Errorf("contacts = %d, want 0", contacts)
	}
}

func TestTeardownHaltsEverything(t *testing.T) {
	s := newTestScene(t, 1536, 2048)
	s.Start()
	for i := 0; i < 90; i++ {
		s.Update(tick)
	}
	s.FireBullet()

	s.Teardown()
	if len(s.Entities()) != 0 || s.RunningActions() != 0 {
		t.Fatalf("teardown left %d entities and %d actions", len(s.Entities()), s.RunningActions())
	}
	spawned := s.Stats().Spawned
	for i := 0; i < 120; i++ {
		s.Update(tick)
	}
	if s.Stats().Spawned != spawned {
		t.Error("spawn loop kept running after teardown")
	}
	if s.FireBullet() != nil || s.SpawnEnemy() != nil {
		t.Error("factory produced entities after teardown")
	}
	if !s.TornDown() {
		t.Error("TornDown() = false")
	}
}

func TestEntitiesInDrawOrder(t *testing.T) {
	s := newTestScene(t, 1536, 2048)
	s.CreatePlayer()
	s.SpawnEnemy()
	s.FireBullet()

	es := s.Entities()
	if len(es) != 3 {
		t.Fatalf("entities = %d", len(es))
	}
	if es[0].Kind != KindBullet || es[1].Kind != KindPlayer || es[2].Kind != KindEnemy {
		t.Errorf("draw order = %v %v %v", es[0].Kind, es[1].Kind, es[2].Kind)
	}
}

func TestDecodeIsUnsupported(t *testing.T) {
	if _, err := Decode(nil); !errors.Is(err, ErrDecodeUnsupported) {
		t.Errorf("Decode err = %v", err)
	}
	s := newTestScene(t, 10, 10)
	if err := s.UnmarshalBinary([]byte("{}")); !errors.Is(err, ErrDecodeUnsupported) {
		t.Errorf("UnmarshalBinary err = %v", err)
	}
}
