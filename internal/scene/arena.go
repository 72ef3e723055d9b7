package scene

// MaxAspectRatio is the tallest height:width ratio the playable area keeps.
const MaxAspectRatio = 16.0 / 9.0

// Rect is an axis-aligned rectangle in scene coordinates (y grows upward).
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) MinX() float64 { return r.X }
func (r Rect) MaxX() float64 { return r.X + r.W }
func (r Rect) MidX() float64 { return r.X + r.W/2 }
func (r Rect) MinY() float64 { return r.Y }
func (r Rect) MaxY() float64 { return r.Y + r.H }

// NewArena returns the playable area for a screen of the given size: full
// height, width height/(16/9), centred horizontally.
func NewArena(width, height float64) Rect {
	playable := height / MaxAspectRatio
	margin := (width - playable) / 2
	return Rect{X: margin, Y: 0, W: playable, H: height}
}
