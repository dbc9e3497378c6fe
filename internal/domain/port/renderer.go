package port

import "acne-bot/internal/domain/entity"

// LesionRenderer интерфейс отрисовки маркеров поверх фото
type LesionRenderer interface {
	// Render рисует элементы на полном (необрезанном) кадре и возвращает JPEG
	Render(photo []byte, lesions []entity.Lesion) ([]byte, error)
}
