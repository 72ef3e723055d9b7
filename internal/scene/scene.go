package scene

import (
	"math/rand"
	"sort"
	"time"

	"solo/internal/action"
	"solo/internal/physics"
)

// Contact is a pair of entities that started touching.
type Contact struct {
	A, B *Entity
}

// Stats counts what happened since the scene started.
type Stats struct {
	Fired    int
	Spawned  int
	Removed  int
	Contacts int
}

// Scene owns the arena, the entities, the random source, the physics world
// and the action runner. Everything runs on the caller's goroutine, one
// Update per tick.
type Scene struct {
	cfg   Config
	arena Rect
	rng   *rand.Rand

	world   *physics.World
	actions *action.Runner
	sounds  action.SoundPlayer

	player   *Entity
	entities []*Entity

	started  bool
	tornDown bool
	stats    Stats

	// OnContact, when set, receives every contact-begin event. Nothing
	// reacts to contacts by default.
	OnContact func(Contact)
}

// New builds a scene from cfg. sounds may be nil.
func New(cfg Config, sounds action.SoundPlayer) *Scene {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Scene{
		cfg:     cfg,
		arena:   NewArena(cfg.Width, cfg.Height),
		rng:     rand.New(rand.NewSource(seed)),
		world:   newWorld(cfg),
		actions: action.NewRunner(),
		sounds:  sounds,
	}
}

func (s *Scene) Config() Config { return s.cfg }

func (s *Scene) Size() Size { return s.cfg.Size() }

// Arena returns the playable rectangle. It never changes after New.
func (s *Scene) Arena() Rect { return s.arena }

func (s *Scene) Player() *Entity { return s.player }

func (s *Scene) Stats() Stats { return s.stats }

// Start places the player and starts the spawn loop. Calling it again does
// nothing.
func (s *Scene) Start() {
	if s.started || s.tornDown {
		return
	}
	s.started = true
	s.CreatePlayer()
	s.StartNewLevel()
}

// StartNewLevel spawns an enemy right away and then once every spawn
// interval, forever. The rate does not depend on how many enemies are alive.
func (s *Scene) StartNewLevel() {
	spawn := action.Run(func() { s.SpawnEnemy() })
	wait := action.Wait(s.cfg.SpawnInterval)
	s.actions.Run(s, action.RepeatForever(action.Sequence(spawn, wait)))
}

// Update advances all scripts by dt seconds and then reports new contacts.
func (s *Scene) Update(dt float64) {
	if s.tornDown {
		return
	}
	s.actions.Update(dt)
	for _, c := range s.world.Step() {
		a, _ := c.A.Owner.(*Entity)
		b, _ := c.B.Owner.(*Entity)
		if a == nil || b == nil {
			continue
		}
		s.stats.Contacts++
		if s.OnContact != nil {
			s.OnContact(Contact{A: a, B: b})
		}
	}
}

// Teardown stops every script, the spawn loop included, and empties the
// scene.
func (s *Scene) Teardown() {
	if s.tornDown {
		return
	}
	s.tornDown = true
	s.actions.Stop()
	s.world.Clear()
	for _, e := range s.entities {
		e.removed = true
	}
	s.entities = nil
}

func (s *Scene) TornDown() bool { return s.tornDown }

// Entities returns the live entities in draw order (lowest z first, then
// insertion order).
func (s *Scene) Entities() []*Entity {
	out := make([]*Entity, len(s.entities))
	copy(out, s.entities)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ZPosition < out[j].ZPosition
	})
	return out
}

// Count returns how many live entities are of kind k.
func (s *Scene) Count(k Kind) int {
	n := 0
	for _, e := range s.entities {
		if e.Kind == k {
			n++
		}
	}
	return n
}

// RunningActions returns the number of unfinished scripts.
func (s *Scene) RunningActions() int {
	return s.actions.Len()
}

// The scene itself is the node the spawn loop runs on.

func (s *Scene) Position() (float64, float64) { return 0, 0 }

func (s *Scene) SetPosition(float64, float64) {}

func (s *Scene) RemoveFromParent() {}

func (s *Scene) add(e *Entity) {
	s.entities = append(s.entities, e)
	s.world.Add(e.Body, e.X, e.Y)
}

func (s *Scene) remove(e *Entity) {
	for i, o := range s.entities {
		if o == e {
			s.entities = append(s.entities[:i], s.entities[i+1:]...)
			break
		}
	}
	e.removed = true
	s.world.Remove(e.Body)
	s.actions.RemoveActions(e)
	s.stats.Removed++
}

// newWorld indexes everything a body can reach: enemies start above the top
// edge and finish below the bottom one, bullets end one bullet above the top.
func newWorld(cfg Config) *physics.World {
	b := cfg.FlightBounds()
	return physics.NewWorldBounds(b.MinX(), b.MinY(), b.MaxX(), b.MaxY(), cfg.CellSize)
}

func (s *Scene) random(lo, hi float64) float64 {
	return s.rng.Float64()*(hi-lo) + lo
}
