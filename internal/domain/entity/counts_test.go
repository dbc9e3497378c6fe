package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAggregate_Empty(t *testing.T) {
	require.Equal(t, LesionCounts{}, Aggregate(nil))
}

func TestAggregate_CountsPerType(t *testing.T) {
	lesions := []Lesion{
		{Type: Comedone}, {Type: Comedone}, {Type: Comedone},
		{Type: Papule}, {Type: Papule},
		{Type: Pustule},
		{Type: Nodule},
	}

	c := Aggregate(lesions)
	require.Equal(t, LesionCounts{
		Comedones:    3,
		Papules:      2,
		Pustules:     1,
		Nodules:      1,
		Total:        7,
		Inflammatory: 4,
	}, c)
	require.Equal(t, len(lesions), c.Total)
	require.Equal(t, c.Papules+c.Pustules+c.Nodules, c.Inflammatory)

	// повторный вызов на том же списке даёт тот же результат
	require.Equal(t, c, Aggregate(lesions))
}

func TestCountsFromRequest(t *testing.T) {
	c := CountsFromRequest(LesionRequest{Comedones: 25, Papules: 10, Pustules: 5})
	require.Equal(t, 15, c.Inflammatory)
	require.Equal(t, 40, c.Total)
}

func TestGradeForScore(t *testing.T) {
	require.Equal(t, GradeClear, GradeForScore(0))
	require.Equal(t, GradeAlmostClear, GradeForScore(1))
	require.Equal(t, GradeMild, GradeForScore(2))
	require.Equal(t, GradeModerate, GradeForScore(3))
	require.Equal(t, GradeSevere, GradeForScore(4))
	require.Equal(t, GradeSevere, GradeForScore(9))
	require.Equal(t, GradeClear, GradeForScore(-1))
}
