package vision

import (
	"image/color"
	"math"

	"acne-bot/internal/domain/entity"
)

// defaultIntensity — для отметок пользователя, у которых яркость не задана.
const defaultIntensity = 0.6

// maxSide — фото приводится к этому размеру по большей стороне.
const maxSide = 1024

// markerRadius — радиус маркера в пикселях, растёт с яркостью элемента.
func markerRadius(l entity.Lesion, width, height int) int {
	intensity := l.Intensity
	if intensity <= 0 {
		intensity = defaultIntensity
	}
	base := float64(min(width, height)) * 0.012
	return max(2, int(math.Round(base*(1+intensity))))
}

// markerColor — цвет маркера по типу элемента.
func markerColor(t entity.LesionType) color.RGBA {
	if info, ok := t.Info(); ok {
		return info.Color
	}
	return color.RGBA{R: 255, G: 255, B: 255, A: 255}
}
