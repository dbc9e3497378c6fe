// Package zonefile читает набор исключающих зон из YAML.
package zonefile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"acne-bot/internal/domain/entity"
	"acne-bot/internal/domain/zone"
)

// File — корень YAML-документа.
type File struct {
	ExclusionZones []ZoneSpec `yaml:"exclusionZones"`
}

// ZoneSpec описывает зону в YAML.
type ZoneSpec struct {
	Name    string       `yaml:"name"`
	Shape   string       `yaml:"shape"`
	X       float64      `yaml:"x"`
	Y       float64      `yaml:"y"`
	Radius  float64      `yaml:"radius"`
	RadiusX float64      `yaml:"radiusX"`
	RadiusY float64      `yaml:"radiusY"`
	Points  [][2]float64 `yaml:"points"`
	Buffer  float64      `yaml:"buffer"`
}

// Load читает зоны из файла.
func Load(path string) ([]zone.ExclusionZone, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read zones file: %w", err)
	}
	return Decode(bytes.NewReader(raw))
}

// Decode разбирает и проверяет зоны.
func Decode(r io.Reader) ([]zone.ExclusionZone, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("zones file is empty")
		}
		return nil, fmt.Errorf("parse zones file: %w", err)
	}

	zones := make([]zone.ExclusionZone, 0, len(f.ExclusionZones))
	for i, spec := range f.ExclusionZones {
		z, err := spec.toZone()
		if err != nil {
			return nil, fmt.Errorf("zone %d (%s): %w", i, spec.Name, err)
		}
		zones = append(zones, z)
	}
	return zones, nil
}

func (s ZoneSpec) toZone() (zone.ExclusionZone, error) {
	shape, err := zone.ParseShape(s.Shape)
	if err != nil {
		return zone.ExclusionZone{}, err
	}
	if s.Buffer < 0 {
		return zone.ExclusionZone{}, fmt.Errorf("negative buffer %v", s.Buffer)
	}

	z := zone.ExclusionZone{
		Name:   s.Name,
		Shape:  shape,
		Center: entity.Point{X: s.X, Y: s.Y},
		Buffer: s.Buffer,
	}
	switch shape {
	case zone.Circle:
		if s.Radius <= 0 {
			return zone.ExclusionZone{}, errors.New("circle needs positive radius")
		}
		z.Radius = s.Radius
	case zone.Ellipse:
		if s.RadiusX <= 0 || s.RadiusY <= 0 {
			return zone.ExclusionZone{}, errors.New("ellipse needs positive radiusX and radiusY")
		}
		z.RadiusX, z.RadiusY = s.RadiusX, s.RadiusY
	case zone.Polygon:
		if len(s.Points) < 3 {
			return zone.ExclusionZone{}, errors.New("polygon needs at least 3 points")
		}
		for _, p := range s.Points {
			z.Vertices = append(z.Vertices, entity.Point{X: p[0], Y: p[1]})
		}
	}
	return z, nil
}
