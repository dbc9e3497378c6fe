package entity

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrUnknownLesionType  = errors.New("unknown lesion type")
	ErrPositionOutOfRange = errors.New("position is out of [0,1] range")
	ErrLesionNotFound     = errors.New("lesion not found")
)

// LesionType тип элемента акне
type LesionType int

const (
	Comedone LesionType = iota // комедон (невоспалительный)
	Papule                     // папула
	Pustule                    // пустула
	Nodule                     // узел

	numLesionTypes
)

// LesionTypes возвращает все типы в порядке генерации.
func LesionTypes() []LesionType {
	return []LesionType{Comedone, Papule, Pustule, Nodule}
}

func (t LesionType) String() string {
	switch t {
	case Comedone:
		return "comedone"
	case Papule:
		return "papule"
	case Pustule:
		return "pustule"
	case Nodule:
		return "nodule"
	}
	return fmt.Sprintf("LesionType(%d)", int(t))
}

// Valid сообщает, входит ли значение в закрытый список типов.
func (t LesionType) Valid() bool {
	return t >= Comedone && t < numLesionTypes
}

// Inflammatory — папулы, пустулы и узлы.
func (t LesionType) Inflammatory() bool {
	return t == Papule || t == Pustule || t == Nodule
}

// ParseLesionType разбирает имя типа (допускается множественное число).
func ParseLesionType(s string) (LesionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "comedone", "comedones":
		return Comedone, nil
	case "papule", "papules":
		return Papule, nil
	case "pustule", "pustules":
		return Pustule, nil
	case "nodule", "nodules":
		return Nodule, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLesionType, s)
}

// Point — нормализованные координаты относительно всего кадра.
type Point struct {
	X float64
	Y float64
}

// InUnitSquare проверяет, что обе координаты лежат в [0,1].
func (p Point) InUnitSquare() bool {
	return p.X >= 0 && p.X <= 1 && p.Y >= 0 && p.Y <= 1
}

// Lesion представляет отмеченный или сгенерированный элемент.
// После создания не изменяется, правка = удаление + создание.
type Lesion struct {
	ID        string     // идентификатор для удаления в сессии разметки
	Type      LesionType // тип элемента
	Position  Point      // нормализованная позиция
	Intensity float64    // яркость маркера, только для синтетических
	CreatedAt time.Time  // порядок создания
}

// NewLesion создаёт элемент, отмеченный пользователем.
func NewLesion(id string, t LesionType, pos Point, createdAt time.Time) (Lesion, error) {
	if !t.Valid() {
		return Lesion{}, fmt.Errorf("%w: %d", ErrUnknownLesionType, int(t))
	}
	if !pos.InUnitSquare() {
		return Lesion{}, fmt.Errorf("%w: (%.3f, %.3f)", ErrPositionOutOfRange, pos.X, pos.Y)
	}
	return Lesion{ID: id, Type: t, Position: pos, CreatedAt: createdAt}, nil
}

// PixelCenter переводит позицию в пиксели изображения width x height.
func (l Lesion) PixelCenter(width, height int) (x, y int) {
	return int(l.Position.X * float64(width)), int(l.Position.Y * float64(height))
}

// LesionRequest — запрошенное количество элементов каждого типа.
type LesionRequest struct {
	Comedones int
	Papules   int
	Pustules  int
	Nodules   int
}

// Count возвращает запрошенное количество для типа.
func (r LesionRequest) Count(t LesionType) int {
	switch t {
	case Comedone:
		return r.Comedones
	case Papule:
		return r.Papules
	case Pustule:
		return r.Pustules
	case Nodule:
		return r.Nodules
	}
	return 0
}
