package zone

import "acne-bot/internal/domain/entity"

// Имена зон предпочтения.
const (
	Forehead   = "forehead"
	LeftCheek  = "leftCheek"
	RightCheek = "rightCheek"
	Nose       = "nose"
	Chin       = "chin"
)

// DefaultExclusionZones — усреднённая геометрия глаз, ноздрей и губ.
// Не зависит от конкретного фото.
func DefaultExclusionZones() []ExclusionZone {
	return []ExclusionZone{
		{Name: "leftEye", Shape: Ellipse, Center: entity.Point{X: 0.35, Y: 0.38}, RadiusX: 0.08, RadiusY: 0.05, Buffer: 0.02},
		{Name: "rightEye", Shape: Ellipse, Center: entity.Point{X: 0.65, Y: 0.38}, RadiusX: 0.08, RadiusY: 0.05, Buffer: 0.02},
		{Name: "leftNostril", Shape: Circle, Center: entity.Point{X: 0.43, Y: 0.52}, Radius: 0.025, Buffer: 0.01},
		{Name: "rightNostril", Shape: Circle, Center: entity.Point{X: 0.57, Y: 0.52}, Radius: 0.025, Buffer: 0.01},
		{Name: "upperLip", Shape: Ellipse, Center: entity.Point{X: 0.5, Y: 0.62}, RadiusX: 0.10, RadiusY: 0.03, Buffer: 0.01},
		{Name: "lowerLip", Shape: Ellipse, Center: entity.Point{X: 0.5, Y: 0.67}, RadiusX: 0.11, RadiusY: 0.04, Buffer: 0.01},
	}
}

// FaceZones — набор зон предпочтения.
type FaceZones struct {
	Forehead   AcneZone
	LeftCheek  AcneZone
	RightCheek AcneZone
	Nose       AcneZone
	Chin       AcneZone
}

// DefaultFaceZones возвращает стандартную разметку лица.
func DefaultFaceZones() FaceZones {
	return FaceZones{
		Forehead:   AcneZone{Name: Forehead, XMin: 0.3, XMax: 0.7, YMin: 0.15, YMax: 0.35},
		LeftCheek:  AcneZone{Name: LeftCheek, XMin: 0.15, XMax: 0.4, YMin: 0.4, YMax: 0.65},
		RightCheek: AcneZone{Name: RightCheek, XMin: 0.6, XMax: 0.85, YMin: 0.4, YMax: 0.65},
		Nose:       AcneZone{Name: Nose, XMin: 0.42, XMax: 0.58, YMin: 0.35, YMax: 0.55},
		Chin:       AcneZone{Name: Chin, XMin: 0.35, XMax: 0.65, YMin: 0.7, YMax: 0.85},
	}
}

// All — все зоны в фиксированном порядке.
func (f FaceZones) All() []AcneZone {
	return []AcneZone{f.Forehead, f.LeftCheek, f.RightCheek, f.Nose, f.Chin}
}

// TZone — лоб, нос и подбородок.
func (f FaceZones) TZone() []AcneZone {
	return []AcneZone{f.Forehead, f.Nose, f.Chin}
}

// LowerFace — щёки и подбородок.
func (f FaceZones) LowerFace() []AcneZone {
	return []AcneZone{f.LeftCheek, f.RightCheek, f.Chin}
}
