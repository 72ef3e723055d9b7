package solo

import (
	"image"

	"solo/internal/scene"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Ids for the synthetic touches made by the mouse and the space bar.
const (
	mouseTouchID    = -1
	keyboardTouchID = -2
)

// touchTracker turns ebiten touches and the left mouse button into began and
// moved samples in scene coordinates, remembering where every finger was on
// the previous tick.
type touchTracker struct {
	height float64
	last   map[int]image.Point
	buf    []ebiten.TouchID
}

func newTouchTracker(sceneHeight float64) *touchTracker {
	return &touchTracker{
		height: sceneHeight,
		last:   make(map[int]image.Point),
	}
}

// poll reads this tick's input. Touches that started this tick are only
// reported as began.
func (t *touchTracker) poll() (began, moved []scene.Touch) {
	seen := make(map[int]bool, len(t.last))

	t.buf = inpututil.AppendJustPressedTouchIDs(t.buf[:0])
	for _, id := range t.buf {
		x, y := ebiten.TouchPosition(id)
		p := image.Point{X: x, Y: y}
		began = append(began, t.sample(int(id), p, p))
		t.last[int(id)] = p
		seen[int(id)] = true
	}

	t.buf = ebiten.AppendTouchIDs(t.buf[:0])
	for _, id := range t.buf {
		if seen[int(id)] {
			continue
		}
		seen[int(id)] = true
		x, y := ebiten.TouchPosition(id)
		if s, ok := t.move(int(id), image.Point{X: x, Y: y}); ok {
			moved = append(moved, s)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		p := image.Point{X: x, Y: y}
		began = append(began, t.sample(mouseTouchID, p, p))
		t.last[mouseTouchID] = p
		seen[mouseTouchID] = true
	} else if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		seen[mouseTouchID] = true
		if s, ok := t.move(mouseTouchID, image.Point{X: x, Y: y}); ok {
			moved = append(moved, s)
		}
	}

	for id := range t.last {
		if !seen[id] {
			delete(t.last, id)
		}
	}
	return began, moved
}

func (t *touchTracker) move(id int, p image.Point) (scene.Touch, bool) {
	prev, ok := t.last[id]
	t.last[id] = p
	if !ok || prev == p {
		return scene.Touch{}, false
	}
	return t.sample(id, p, prev), true
}

// sample flips screen coordinates (y down) into scene coordinates (y up).
func (t *touchTracker) sample(id int, p, prev image.Point) scene.Touch {
	return scene.Touch{
		ID:    id,
		X:     float64(p.X),
		Y:     t.height - float64(p.Y),
		PrevX: float64(prev.X),
		PrevY: t.height - float64(prev.Y),
	}
}

func (t *touchTracker) reset() {
	for id := range t.last {
		delete(t.last, id)
	}
}
