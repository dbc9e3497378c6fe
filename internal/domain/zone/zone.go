// Package zone описывает анатомические области лица в нормализованных
// координатах единичного квадрата и проверки попадания точки в них.
package zone

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"acne-bot/internal/domain/entity"
)

// Shape форма исключающей зоны
type Shape int

const (
	Circle Shape = iota
	Ellipse
	Polygon
)

func (s Shape) String() string {
	switch s {
	case Circle:
		return "circle"
	case Ellipse:
		return "ellipse"
	case Polygon:
		return "polygon"
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// ParseShape разбирает имя формы.
func ParseShape(s string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "circle":
		return Circle, nil
	case "ellipse":
		return Ellipse, nil
	case "polygon":
		return Polygon, nil
	}
	return 0, fmt.Errorf("unknown zone shape %q", s)
}

// ExclusionZone — область, где элементы не размещаются (глаза, ноздри, губы).
type ExclusionZone struct {
	Name     string
	Shape    Shape
	Center   entity.Point   // circle, ellipse
	Radius   float64        // circle
	RadiusX  float64        // ellipse
	RadiusY  float64        // ellipse
	Vertices []entity.Point // polygon
	Buffer   float64        // дополнительный отступ вокруг формы
}

// Contains сообщает, попадает ли точка в зону с учётом отступа.
func (z ExclusionZone) Contains(p entity.Point) bool {
	switch z.Shape {
	case Circle:
		return distance(p, z.Center) <= z.Radius+z.Buffer
	case Ellipse:
		rx, ry := z.RadiusX+z.Buffer, z.RadiusY+z.Buffer
		if rx <= 0 || ry <= 0 {
			return false
		}
		dx := (p.X - z.Center.X) / rx
		dy := (p.Y - z.Center.Y) / ry
		return dx*dx+dy*dy <= 1
	case Polygon:
		if len(z.Vertices) < 3 {
			return false
		}
		if insidePolygon(p, z.Vertices) {
			return true
		}
		return z.Buffer > 0 && distanceToEdges(p, z.Vertices) <= z.Buffer
	}
	return false
}

// IsExcluded — true, если точка попала хотя бы в одну зону.
func IsExcluded(p entity.Point, zones []ExclusionZone) bool {
	for _, z := range zones {
		if z.Contains(p) {
			return true
		}
	}
	return false
}

// AcneZone — прямоугольная область предпочтительного размещения.
type AcneZone struct {
	Name string
	XMin float64
	XMax float64
	YMin float64
	YMax float64
}

// Contains проверяет попадание точки в прямоугольник (границы включены).
func (z AcneZone) Contains(p entity.Point) bool {
	return p.X >= z.XMin && p.X <= z.XMax && p.Y >= z.YMin && p.Y <= z.YMax
}

// Sample выбирает равномерно случайную точку внутри зоны.
func (z AcneZone) Sample(rng *rand.Rand) entity.Point {
	return entity.Point{
		X: z.XMin + rng.Float64()*(z.XMax-z.XMin),
		Y: z.YMin + rng.Float64()*(z.YMax-z.YMin),
	}
}

// Distance — евклидово расстояние между точками.
func Distance(a, b entity.Point) float64 {
	return distance(a, b)
}

func distance(a, b entity.Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// insidePolygon — правило чёт-нечет.
func insidePolygon(p entity.Point, vs []entity.Point) bool {
	inside := false
	for i, j := 0, len(vs)-1; i < len(vs); j, i = i, i+1 {
		a, b := vs[i], vs[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			xCross := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if p.X < xCross {
				inside = !inside
			}
		}
	}
	return inside
}

func distanceToEdges(p entity.Point, vs []entity.Point) float64 {
	best := math.Inf(1)
	for i := range vs {
		d := distanceToSegment(p, vs[i], vs[(i+1)%len(vs)])
		if d < best {
			best = d
		}
	}
	return best
}

func distanceToSegment(p, a, b entity.Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return distance(p, a)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	t = math.Max(0, math.Min(1, t))
	return distance(p, entity.Point{X: a.X + t*dx, Y: a.Y + t*dy})
}
