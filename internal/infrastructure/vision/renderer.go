//go:build !gocv
// +build !gocv

package vision

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"acne-bot/internal/domain/entity"
	"acne-bot/internal/domain/port"
)

// Renderer рисует маркеры на фото средствами imaging (без OpenCV).
type Renderer struct {
	MaxSide     int
	JPEGQuality int
}

// NewRenderer создаёт рендерер с настройками по умолчанию.
func NewRenderer() *Renderer {
	return &Renderer{MaxSide: maxSide, JPEGQuality: 90}
}

// Render переводит нормализованные позиции в пиксели полного кадра и рисует кольца.
func (r *Renderer) Render(photo []byte, lesions []entity.Lesion) ([]byte, error) {
	if len(photo) == 0 {
		return nil, errors.New("empty image")
	}
	src, err := imaging.Decode(bytes.NewReader(photo), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	b := src.Bounds()
	if b.Dx() > r.MaxSide || b.Dy() > r.MaxSide {
		src = imaging.Fit(src, r.MaxSide, r.MaxSide, imaging.Lanczos)
	}
	canvas := imaging.Clone(src)
	w, h := canvas.Bounds().Dx(), canvas.Bounds().Dy()

	for _, l := range lesions {
		x, y := l.PixelCenter(w, h)
		radius := markerRadius(l, w, h)
		drawRing(canvas, x, y, radius, max(2, radius/3), markerColor(l.Type))
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, canvas, imaging.JPEG, imaging.JPEGQuality(r.JPEGQuality)); err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}
	return buf.Bytes(), nil
}

// drawRing закрашивает кольцо толщиной thickness с внешним радиусом radius.
func drawRing(img *image.NRGBA, cx, cy, radius, thickness int, c color.RGBA) {
	outer := radius * radius
	inner := (radius - thickness) * (radius - thickness)
	if radius-thickness <= 0 {
		inner = -1
	}
	nc := color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
	bounds := img.Bounds()
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			d := dx*dx + dy*dy
			if d > outer || d <= inner {
				continue
			}
			p := image.Pt(cx+dx, cy+dy)
			if p.In(bounds) {
				img.SetNRGBA(p.X, p.Y, nc)
			}
		}
	}
}

// Проверка реализации интерфейса
var _ port.LesionRenderer = (*Renderer)(nil)
