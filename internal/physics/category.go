package physics

import "strings"

// Category identifies what kind of body something is for contact filtering.
// Each category is a single disjoint bit.
type Category uint32

const (
	CategoryNone   Category = 0
	CategoryPlayer Category = 1 << 0 // 1
	CategoryBullet Category = 1 << 1 // 2
	CategoryEnemy  Category = 1 << 2 // 4
)

func (c Category) String() string {
	switch c {
	case CategoryNone:
		return "none"
	case CategoryPlayer:
		return "player"
	case CategoryBullet:
		return "bullet"
	case CategoryEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Mask is a set of categories.
type Mask uint32

// MaskNone matches nothing.
const MaskNone Mask = 0

// MaskOf builds a mask containing the given categories.
func MaskOf(cs ...Category) Mask {
	var m Mask
	for _, c := range cs {
		m |= Mask(c)
	}
	return m
}

// Has reports whether c is a member of m. CategoryNone is never a member.
func (m Mask) Has(c Category) bool {
	return c != CategoryNone && m&Mask(c) == Mask(c)
}

// Intersects reports whether m and o share at least one category.
func (m Mask) Intersects(o Mask) bool {
	return m&o != 0
}

func (m Mask) With(c Category) Mask {
	return m | Mask(c)
}

func (m Mask) Without(c Category) Mask {
	return m &^ Mask(c)
}

func (m Mask) IsEmpty() bool {
	return m == MaskNone
}

// Categories lists the known categories in m, lowest bit first.
func (m Mask) Categories() []Category {
	var out []Category
	for _, c := range []Category{CategoryPlayer, CategoryBullet, CategoryEnemy} {
		if m.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

func (m Mask) String() string {
	cs := m.Categories()
	if len(cs) == 0 {
		return "{}"
	}
	names := make([]string, len(cs))
	for i, c := range cs {
		names[i] = c.String()
	}
	return "{" + strings.Join(names, ",") + "}"
}
