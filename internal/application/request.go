package app

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"acne-bot/internal/domain/entity"
)

// MarkRequest — отметка одного элемента пользователем.
type MarkRequest struct {
	Type string  `validate:"required,oneof=comedone papule pustule nodule comedones papules pustules nodules"`
	X    float64 `validate:"gte=0,lte=1"`
	Y    float64 `validate:"gte=0,lte=1"`
}

// CountsRequest — количества для синтетической разметки.
type CountsRequest struct {
	Comedones int `validate:"gte=0,lte=500"`
	Papules   int `validate:"gte=0,lte=500"`
	Pustules  int `validate:"gte=0,lte=500"`
	Nodules   int `validate:"gte=0,lte=500"`
}

// LesionRequest переводит запрос в доменную структуру.
func (r CountsRequest) LesionRequest() entity.LesionRequest {
	return entity.LesionRequest{
		Comedones: r.Comedones,
		Papules:   r.Papules,
		Pustules:  r.Pustules,
		Nodules:   r.Nodules,
	}
}

// NewValidator создаёт валидатор входящих запросов.
func NewValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

func validate(v *validator.Validate, req any) error {
	if err := v.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	return nil
}
