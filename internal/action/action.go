// Package action runs small declarative scripts against scene nodes: move
// in a straight line, wait, call a function, play a sound, remove the node,
// and the sequence/repeat combinators that glue them together.
//
// Time is measured in seconds. A Runner advances every running script by the
// tick length each frame; nothing here is safe for concurrent use.
package action

import "math"

// Node is anything an action can drive.
type Node interface {
	Position() (x, y float64)
	SetPosition(x, y float64)
	RemoveFromParent()
}

// SoundPlayer plays a named sound without waiting for it to finish.
type SoundPlayer interface {
	Play(name string)
}

// Action is an immutable description of a script. The same Action may be
// run on any number of nodes.
type Action interface {
	// Duration is the nominal running time in seconds.
	Duration() float64
	start(n Node) step
}

// step is one running instance of an Action.
type step interface {
	// advance runs the step for up to dt seconds. Once the step finishes it
	// returns done and the part of dt it did not use.
	advance(dt float64) (left float64, done bool)
}

type moveTo struct {
	x, y     float64
	keepX    bool
	duration float64
}

// MoveTo moves the node linearly to (x, y) over d seconds.
func MoveTo(x, y, d float64) Action {
	return moveTo{x: x, y: y, duration: d}
}

// MoveToY moves the node linearly to the given y over d seconds, leaving x
// untouched.
func MoveToY(y, d float64) Action {
	return moveTo{y: y, keepX: true, duration: d}
}

func (m moveTo) Duration() float64 { return m.duration }

func (m moveTo) start(n Node) step {
	fx, fy := n.Position()
	tx := m.x
	if m.keepX {
		tx = fx
	}
	return &moveStep{node: n, fromX: fx, fromY: fy, toX: tx, toY: m.y, duration: m.duration}
}

type moveStep struct {
	node         Node
	fromX, fromY float64
	toX, toY     float64
	duration     float64
	elapsed      float64
}

func (s *moveStep) advance(dt float64) (float64, bool) {
	s.elapsed += dt
	if s.duration <= 0 || s.elapsed >= s.duration {
		s.node.SetPosition(s.toX, s.toY)
		if s.duration <= 0 {
			return dt, true
		}
		return s.elapsed - s.duration, true
	}
	t := s.elapsed / s.duration
	s.node.SetPosition(s.fromX+(s.toX-s.fromX)*t, s.fromY+(s.toY-s.fromY)*t)
	return 0, false
}

type wait struct {
	duration float64
}

// Wait does nothing for d seconds.
func Wait(d float64) Action {
	return wait{duration: d}
}

func (w wait) Duration() float64 { return w.duration }

func (w wait) start(Node) step {
	return &waitStep{duration: w.duration}
}

type waitStep struct {
	duration float64
	elapsed  float64
}

func (s *waitStep) advance(dt float64) (float64, bool) {
	s.elapsed += dt
	if s.elapsed >= s.duration {
		return s.elapsed - s.duration, true
	}
	return 0, false
}

type instant func(n Node)

func (f instant) Duration() float64 { return 0 }

func (f instant) start(n Node) step {
	return &instantStep{node: n, fn: f}
}

type instantStep struct {
	node Node
	fn   instant
}

func (s *instantStep) advance(dt float64) (float64, bool) {
	s.fn(s.node)
	return dt, true
}

// Run calls fn once.
func Run(fn func()) Action {
	return instant(func(Node) { fn() })
}

// PlaySound plays the named sound and finishes immediately.
func PlaySound(p SoundPlayer, name string) Action {
	return instant(func(Node) {
		if p != nil {
			p.Play(name)
		}
	})
}

// RemoveFromParent removes the node it runs on.
func RemoveFromParent() Action {
	return instant(func(n Node) { n.RemoveFromParent() })
}

type sequence []Action

// Sequence runs the actions one after another. Time left over by a
// finishing child is handed to the next one within the same tick.
func Sequence(actions ...Action) Action {
	return sequence(actions)
}

func (s sequence) Duration() float64 {
	var d float64
	for _, a := range s {
		d += a.Duration()
	}
	return d
}

func (s sequence) start(n Node) step {
	return &sequenceStep{node: n, actions: s}
}

type sequenceStep struct {
	node    Node
	actions sequence
	next    int
	cur     step
}

func (s *sequenceStep) advance(dt float64) (float64, bool) {
	for {
		if s.cur == nil {
			if s.next >= len(s.actions) {
				return dt, true
			}
			s.cur = s.actions[s.next].start(s.node)
			s.next++
		}
		left, done := s.cur.advance(dt)
		if !done {
			return 0, false
		}
		s.cur = nil
		dt = left
	}
}

type repeatForever struct {
	action Action
}

// RepeatForever restarts a forever. A child that takes no time runs at most
// once per tick.
func RepeatForever(a Action) Action {
	return repeatForever{action: a}
}

func (r repeatForever) Duration() float64 { return math.Inf(1) }

func (r repeatForever) start(n Node) step {
	return &repeatStep{node: n, action: r.action}
}

type repeatStep struct {
	node   Node
	action Action
	cur    step
}

func (s *repeatStep) advance(dt float64) (float64, bool) {
	for {
		fresh := false
		if s.cur == nil {
			s.cur = s.action.start(s.node)
			fresh = true
		}
		left, done := s.cur.advance(dt)
		if !done {
			return 0, false
		}
		s.cur = nil
		if fresh && left >= dt {
			return 0, false
		}
		dt = left
	}
}
