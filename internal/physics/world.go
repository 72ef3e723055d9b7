package physics

import (
	"math"

	"github.com/solarlune/resolv"
)

// DefaultCellSize is the edge of a broad-phase cell in scene units.
const DefaultCellSize = 64

// Body is a rectangular, gravity-free physics body centred on its position.
//
// Bodies never resolve overlap: Collision is carried for completeness but the
// world only reports contacts.
type Body struct {
	Category    Category
	Collision   Mask
	ContactTest Mask
	W, H        float64

	// Owner is whatever the body belongs to, usually a scene entity.
	Owner any

	x, y   float64
	serial uint64
	obj    *resolv.Object
	world  *World
}

// NewBody returns a body of the given size with an empty collision mask.
func NewBody(category Category, contactTest Mask, w, h float64) *Body {
	return &Body{
		Category:    category,
		Collision:   MaskNone,
		ContactTest: contactTest,
		W:           w,
		H:           h,
	}
}

// Position returns the centre of the body.
func (b *Body) Position() (float64, float64) {
	return b.x, b.y
}

// SetPosition moves the body centre and refreshes its broad-phase cells.
func (b *Body) SetPosition(x, y float64) {
	b.x, b.y = x, y
	if b.obj != nil {
		b.obj.Position.X = x - b.W/2 - b.world.minX
		b.obj.Position.Y = y - b.H/2 - b.world.minY
		b.obj.Update()
	}
}

// InWorld reports whether the body is currently registered with a world.
func (b *Body) InWorld() bool {
	return b.world != nil
}

// Overlaps reports whether the two bodies' rectangles overlap. Touching edges
// do not count.
func (b *Body) Overlaps(o *Body) bool {
	return b.x-b.W/2 < o.x+o.W/2 && o.x-o.W/2 < b.x+b.W/2 &&
		b.y-b.H/2 < o.y+o.H/2 && o.y-o.H/2 < b.y+b.H/2
}

// ShouldReportContact reports whether a contact between a and b is of
// interest to either side.
func ShouldReportContact(a, b *Body) bool {
	return a.ContactTest.Has(b.Category) || b.ContactTest.Has(a.Category)
}

// Contact is a pair of bodies that started overlapping during a step.
type Contact struct {
	A, B *Body
}

type pair struct {
	lo, hi uint64
}

func pairOf(a, b *Body) pair {
	if a.serial < b.serial {
		return pair{a.serial, b.serial}
	}
	return pair{b.serial, a.serial}
}

// World tracks bodies in a resolv space and reports contact-begin events.
// Only the parts of bodies inside the world bounds are indexed; a pair that
// overlaps entirely outside them is never reported.
type World struct {
	space      *resolv.Space
	minX, minY float64
	bodies   []*Body
	touching map[pair]struct{}
	next     uint64
}

// NewWorld creates a world covering [0,width]x[0,height] with square cells.
func NewWorld(width, height float64, cellSize int) *World {
	return NewWorldBounds(0, 0, width, height, cellSize)
}

// NewWorldBounds creates a world covering [minX,maxX]x[minY,maxY]. Positions
// stay in scene coordinates; the offset into the space is applied internally.
func NewWorldBounds(minX, minY, maxX, maxY float64, cellSize int) *World {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	w := int(math.Ceil(maxX-minX)) + cellSize
	h := int(math.Ceil(maxY-minY)) + cellSize
	return &World{
		space:    resolv.NewSpace(w, h, cellSize, cellSize),
		minX:     minX,
		minY:     minY,
		touching: make(map[pair]struct{}),
	}
}

// Add registers b at the given centre position. Adding a body that is
// already in a world is a no-op.
func (w *World) Add(b *Body, x, y float64) {
	if b.world != nil {
		return
	}
	w.next++
	b.serial = w.next
	b.world = w
	b.x, b.y = x, y
	b.obj = resolv.NewObject(x-b.W/2-w.minX, y-b.H/2-w.minY, b.W, b.H, b.Category.String())
	b.obj.Data = b
	w.space.Add(b.obj)
	w.bodies = append(w.bodies, b)
}

// Remove deregisters b. Pending contacts involving b are dropped on the
// next step.
func (w *World) Remove(b *Body) {
	if b.world != w {
		return
	}
	w.space.Remove(b.obj)
	for i, o := range w.bodies {
		if o == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			break
		}
	}
	b.obj = nil
	b.world = nil
}

// Len returns the number of registered bodies.
func (w *World) Len() int {
	return len(w.bodies)
}

// Step finds every reportable overlapping pair and returns the ones that
// were not already overlapping on the previous step, in registration order.
func (w *World) Step() []Contact {
	var contacts []Contact
	current := make(map[pair]struct{}, len(w.touching))

	for _, a := range w.bodies {
		if a.ContactTest.IsEmpty() {
			continue
		}
		col := a.obj.Check(0, 0)
		if col == nil {
			continue
		}
		for _, o := range col.Objects {
			b, ok := o.Data.(*Body)
			if !ok || b == a || b.world != w {
				continue
			}
			if !ShouldReportContact(a, b) || !a.Overlaps(b) {
				continue
			}
			p := pairOf(a, b)
			if _, seen := current[p]; seen {
				continue
			}
			current[p] = struct{}{}
			if _, was := w.touching[p]; was {
				continue
			}
			if a.serial < b.serial {
				contacts = append(contacts, Contact{A: a, B: b})
			} else {
				contacts = append(contacts, Contact{A: b, B: a})
			}
		}
	}

	w.touching = current
	return contacts
}

// Clear removes every body.
func (w *World) Clear() {
	for _, b := range w.bodies {
		w.space.Remove(b.obj)
		b.obj = nil
		b.world = nil
	}
	w.bodies = nil
	w.touching = make(map[pair]struct{})
}
