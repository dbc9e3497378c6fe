package zonefile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"acne-bot/internal/domain/entity"
	"acne-bot/internal/domain/zone"
)

const sample = `
exclusionZones:
  - name: leftEye
    shape: ellipse
    x: 0.35
    y: 0.38
    radiusX: 0.08
    radiusY: 0.05
    buffer: 0.02
  - name: nostril
    shape: circle
    x: 0.43
    y: 0.52
    radius: 0.025
  - name: mouth
    shape: polygon
    points: [[0.4, 0.6], [0.6, 0.6], [0.6, 0.7], [0.4, 0.7]]
    buffer: 0.01
`

func TestDecode(t *testing.T) {
	zones, err := Decode(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, zones, 3)

	assert.Equal(t, zone.Ellipse, zones[0].Shape)
	assert.Equal(t, 0.02, zones[0].Buffer)
	assert.Equal(t, zone.Circle, zones[1].Shape)
	assert.Equal(t, zone.Polygon, zones[2].Shape)
	assert.Len(t, zones[2].Vertices, 4)

	assert.True(t, zone.IsExcluded(entity.Point{X: 0.5, Y: 0.65}, zones))
	assert.False(t, zone.IsExcluded(entity.Point{X: 0.5, Y: 0.2}, zones))
}

func TestDecode_Errors(t *testing.T) {
	cases := map[string]string{
		"unknown shape":  "exclusionZones:\n  - shape: star\n",
		"circle radius":  "exclusionZones:\n  - shape: circle\n    x: 0.5\n",
		"ellipse radius": "exclusionZones:\n  - shape: ellipse\n    radiusX: 0.1\n",
		"polygon points": "exclusionZones:\n  - shape: polygon\n    points: [[0, 0], [1, 1]]\n",
		"negative buf":   "exclusionZones:\n  - shape: circle\n    radius: 0.1\n    buffer: -1\n",
		"unknown field":  "exclusionZones:\n  - shape: circle\n    radius: 0.1\n    colour: red\n",
		"empty":          "",
	}
	for name, doc := range cases {
		_, err := Decode(strings.NewReader(doc))
		assert.Error(t, err, name)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zones.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	zones, err := Load(path)
	require.NoError(t, err)
	require.Len(t, zones, 3)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoad_ExampleFile(t *testing.T) {
	zones, err := Load(filepath.Join("..", "..", "..", "config", "exclusion_zones.example.yaml"))
	require.NoError(t, err)
	require.Len(t, zones, 5)
	assert.True(t, zone.IsExcluded(entity.Point{X: 0.5, Y: 0.65}, zones))
}
