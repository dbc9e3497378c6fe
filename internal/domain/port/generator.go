package port

import "acne-bot/internal/domain/entity"

// LayoutGenerator интерфейс генератора синтетической разметки
type LayoutGenerator interface {
	// Generate размещает запрошенные элементы; результат может быть короче запроса
	Generate(req entity.LesionRequest) []entity.Lesion

	// SampleCounts выбирает количества для демонстрационного анализа
	SampleCounts() entity.LesionRequest
}
