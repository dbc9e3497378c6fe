// Package severity содержит две независимые шкалы тяжести и каталоги рекомендаций.
//
// Шкала по порогам (Classify) используется для интерактивной разметки,
// балльная шкала IGA (IGAScore) — для синтетического анализа. На одних и тех
// же количествах они могут расходиться, Compare показывает расхождение.
package severity

import "acne-bot/internal/domain/entity"

// Classify относит количества к одному из трёх уровней. Правила проверяются
// по порядку, срабатывает первое.
func Classify(c entity.LesionCounts) entity.SeverityTier {
	switch {
	case c.Nodules > 5 || c.Comedones > 100 || c.Inflammatory > 50 || c.Total > 125:
		return entity.TierSevere
	case between(c.Comedones, 20, 100) || between(c.Inflammatory, 15, 50) || between(c.Total, 30, 125):
		return entity.TierModerate
	default:
		return entity.TierMild
	}
}

// IGAScore вычисляет балл 0..4 по сумме воспалительных и числу комедонов.
func IGAScore(c entity.LesionCounts) int {
	inflammatory := c.Papules + c.Pustules + c.Nodules
	nonInflammatory := c.Comedones

	switch {
	case inflammatory == 0 && nonInflammatory == 0:
		return 0
	case inflammatory == 0 && nonInflammatory <= 3,
		inflammatory <= 3 && nonInflammatory <= 8:
		return 1
	case inflammatory <= 8 && nonInflammatory <= 15:
		return 2
	case inflammatory <= 15 && nonInflammatory <= 30:
		return 3
	default:
		return 4
	}
}

// ClassifyIGA возвращает метку пятиуровневой шкалы.
func ClassifyIGA(c entity.LesionCounts) entity.IGAGrade {
	return entity.GradeForScore(IGAScore(c))
}

// Comparison — результат обеих шкал на одних количествах.
type Comparison struct {
	Tier  entity.SeverityTier
	Score int
	Grade entity.IGAGrade
	Agree bool // метки совпадают
}

// Compare оценивает количества обеими шкалами. Шкалы не объединяются:
// расхождение только фиксируется.
func Compare(c entity.LesionCounts) Comparison {
	score := IGAScore(c)
	grade := entity.GradeForScore(score)
	tier := Classify(c)
	return Comparison{
		Tier:  tier,
		Score: score,
		Grade: grade,
		Agree: string(tier) == string(grade),
	}
}

func between(v, lo, hi int) bool {
	return v >= lo && v <= hi
}
