package math

// Vec2 is a 2D vector, used for texture coordinates.
type Vec2 struct {
	X, Y float32
}

// FlipV mirrors the vertical texture coordinate (v = 1 - v).
// Image rows are stored top-down while GL samples bottom-up.
func (v Vec2) FlipV() Vec2 {
	return Vec2{v.X, 1 - v.Y}
}
