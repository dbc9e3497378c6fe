package zone

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"acne-bot/internal/domain/entity"
)

func pt(x, y float64) entity.Point { return entity.Point{X: x, Y: y} }

func TestCircleContains(t *testing.T) {
	z := ExclusionZone{Shape: Circle, Center: pt(0.5, 0.5), Radius: 0.1, Buffer: 0.05}

	assert.True(t, z.Contains(pt(0.5, 0.5)))
	assert.True(t, z.Contains(pt(0.64, 0.5)), "inside buffer")
	assert.False(t, z.Contains(pt(0.66, 0.5)))
}

func TestEllipseContains(t *testing.T) {
	z := ExclusionZone{Shape: Ellipse, Center: pt(0.5, 0.5), RadiusX: 0.2, RadiusY: 0.1}

	assert.True(t, z.Contains(pt(0.69, 0.5)))
	assert.False(t, z.Contains(pt(0.5, 0.61)))
	assert.True(t, z.Contains(pt(0.5, 0.59)))

	z.Buffer = 0.02
	assert.True(t, z.Contains(pt(0.5, 0.61)))
}

func TestPolygonContains(t *testing.T) {
	square := ExclusionZone{
		Shape:    Polygon,
		Vertices: []entity.Point{pt(0.2, 0.2), pt(0.4, 0.2), pt(0.4, 0.4), pt(0.2, 0.4)},
	}

	assert.True(t, square.Contains(pt(0.3, 0.3)))
	assert.False(t, square.Contains(pt(0.45, 0.3)))

	square.Buffer = 0.06
	assert.True(t, square.Contains(pt(0.45, 0.3)))
	assert.False(t, square.Contains(pt(0.5, 0.5)))

	// вогнутый многоугольник: выемка сверху
	concave := ExclusionZone{
		Shape: Polygon,
		Vertices: []entity.Point{
			pt(0, 0), pt(0.3, 0), pt(0.3, 0.3), pt(0.2, 0.3),
			pt(0.2, 0.1), pt(0.1, 0.1), pt(0.1, 0.3), pt(0, 0.3),
		},
	}
	assert.True(t, concave.Contains(pt(0.05, 0.2)))
	assert.False(t, concave.Contains(pt(0.15, 0.2)))

	degenerate := ExclusionZone{Shape: Polygon, Vertices: []entity.Point{pt(0, 0), pt(1, 1)}}
	assert.False(t, degenerate.Contains(pt(0.5, 0.5)))
}

func TestIsExcluded(t *testing.T) {
	zones := DefaultExclusionZones()

	assert.True(t, IsExcluded(pt(0.35, 0.38), zones), "left eye")
	assert.True(t, IsExcluded(pt(0.57, 0.52), zones), "right nostril")
	assert.True(t, IsExcluded(pt(0.5, 0.67), zones), "lower lip")
	assert.False(t, IsExcluded(pt(0.5, 0.2), zones), "forehead")
	assert.False(t, IsExcluded(pt(0.2, 0.6), zones), "cheek")
	assert.False(t, IsExcluded(pt(0.5, 0.5), nil))

	reversed := make([]ExclusionZone, len(zones))
	for i, z := range zones {
		reversed[len(zones)-1-i] = z
	}
	for _, p := range []entity.Point{pt(0.35, 0.38), pt(0.5, 0.2), pt(0.5, 0.62)} {
		assert.Equal(t, IsExcluded(p, zones), IsExcluded(p, reversed))
	}
}

func TestAcneZoneSample(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for _, z := range DefaultFaceZones().All() {
		for i := 0; i < 200; i++ {
			p := z.Sample(rng)
			require.True(t, z.Contains(p), z.Name)
			require.True(t, p.InUnitSquare())
		}
	}
}

func TestParseShape(t *testing.T) {
	s, err := ParseShape("Ellipse")
	require.NoError(t, err)
	require.Equal(t, Ellipse, s)

	_, err = ParseShape("star")
	require.Error(t, err)
}

func TestFaceZoneSets(t *testing.T) {
	f := DefaultFaceZones()
	require.Len(t, f.All(), 5)
	require.Equal(t, []string{Forehead, Nose, Chin}, names(f.TZone()))
	require.Equal(t, []string{LeftCheek, RightCheek, Chin}, names(f.LowerFace()))
}

func names(zs []AcneZone) []string {
	out := make([]string, 0, len(zs))
	for _, z := range zs {
		out = append(out, z.Name)
	}
	return out
}
