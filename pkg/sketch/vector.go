package sketch

// Vector2 is a 2D coordinate pair. Treat it as a value: replace it, don't patch it.
type Vector2 struct {
	X, Y float64
}

// Vec is shorthand for Vector2{x, y}.
func Vec(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{v.X + o.X, v.Y + o.Y}
}

func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{v.X - o.X, v.Y - o.Y}
}

// DistanceSquared returns the squared Euclidean distance between a and b.
func DistanceSquared(a, b Vector2) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// Normalize maps curr from [min,max] onto [0,1]. No clamping.
func Normalize(min, max, curr float64) float64 {
	return (curr - min) / (max - min)
}
