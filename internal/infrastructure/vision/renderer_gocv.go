//go:build gocv
// +build gocv

package vision

import (
	"bytes"
	"errors"
	"image"
	"image/jpeg"

	"gocv.io/x/gocv"

	"acne-bot/internal/domain/entity"
	"acne-bot/internal/domain/port"
)

// Renderer рисует маркеры на фото средствами OpenCV.
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
	mat, err := decodeToMat(photo)
	if err != nil {
		return nil, err
	}
	defer mat.Close()

	// Приводим изображение к стандартному размеру, чтобы маркеры были соразмерны.
	if mat.Cols() > r.MaxSide || mat.Rows() > r.MaxSide {
		scale := float64(r.MaxSide) / float64(max(mat.Cols(), mat.Rows()))
		newW := int(float64(mat.Cols()) * scale)
		newH := int(float64(mat.Rows()) * scale)
		resized := gocv.NewMat()
		gocv.Resize(mat, &resized, image.Pt(newW, newH), 0, 0, gocv.InterpolationArea)
		mat.Close()
		mat = resized
	}

	w, h := mat.Cols(), mat.Rows()
	for _, l := range lesions {
		x, y := l.PixelCenter(w, h)
		radius := markerRadius(l, w, h)
		gocv.Circle(&mat, image.Pt(x, y), radius, markerColor(l.Type), max(2, radius/3))
	}

	img, err := mat.ToImage()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: r.JPEGQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// decodeToMat превращает байты изображения в gocv.Mat.
func decodeToMat(imageData []byte) (gocv.Mat, error) {
	mat, err := gocv.IMDecode(imageData, gocv.IMReadColor)
	if err == nil && !mat.Empty() {
		return mat, nil
	}
	if !mat.Empty() {
		mat.Close()
	}
	return gocv.NewMat(), errors.New("failed to decode image")
}

// Проверка реализации интерфейса
var _ port.LesionRenderer = (*Renderer)(nil)
