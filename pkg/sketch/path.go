package sketch

import "math"

// ArcSegments is how many line segments a full circle is flattened into by
// surfaces that have no native arc primitive.
const ArcSegments = 48

// FlattenArc appends points approximating an arc to dst. Angles follow the
// canvas convention: clockwise on screen unless anticlockwise is set.
func FlattenArc(dst []Vector2, x, y, radius, startAngle, endAngle float64, anticlockwise bool) []Vector2 {
	sweep := endAngle - startAngle
	if anticlockwise {
		if sweep > 0 {
			sweep -= 2 * math.Pi * math.Ceil(sweep/(2*math.Pi))
		}
	} else if sweep < 0 {
		sweep += 2 * math.Pi * math.Ceil(-sweep/(2*math.Pi))
	}
	if sweep > 2*math.Pi {
		sweep = 2 * math.Pi
	} else if sweep < -2*math.Pi {
		sweep = -2 * math.Pi
	}

	n := int(math.Ceil(math.Abs(sweep) / (2 * math.Pi) * ArcSegments))
	if n < 1 {
		n = 1
	}
	for i := 0; i <= n; i++ {
		a := startAngle + sweep*float64(i)/float64(n)
		dst = append(dst, Vector2{x + radius*math.Cos(a), y + radius*math.Sin(a)})
	}
	return dst
}
