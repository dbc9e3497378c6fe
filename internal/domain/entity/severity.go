package entity

// SeverityTier — трёхуровневая шкала по порогам количества элементов.
type SeverityTier string

const (
	TierMild     SeverityTier = "Mild"
	TierModerate SeverityTier = "Moderate"
	TierSevere   SeverityTier = "Severe"
)

// IGAGrade — пятиуровневая шкала, соответствует баллу 0..4.
type IGAGrade string

const (
	GradeClear       IGAGrade = "Clear"
	GradeAlmostClear IGAGrade = "Almost Clear"
	GradeMild        IGAGrade = "Mild"
	GradeModerate    IGAGrade = "Moderate"
	GradeSevere      IGAGrade = "Severe"
)

var igaGrades = [...]IGAGrade{GradeClear, GradeAlmostClear, GradeMild, GradeModerate, GradeSevere}

// GradeForScore возвращает метку для балла; значения вне 0..4 прижимаются к краям.
func GradeForScore(score int) IGAGrade {
	if score < 0 {
		score = 0
	}
	if score >= len(igaGrades) {
		score = len(igaGrades) - 1
	}
	return igaGrades[score]
}

// Assessment — итог интерактивной оценки по порогам (3 уровня).
type Assessment struct {
	Counts          LesionCounts
	Tier            SeverityTier
	Description     string
	Recommendations []string
}

// SimulatedAssessment — итог синтетического анализа по баллу IGA.
// CountsTier — оценка тех же количеств по порогам, ScalesAgree — совпадение меток.
type SimulatedAssessment struct {
	Requested       LesionRequest
	Lesions         []Lesion // фактически размещённые элементы
	Counts          LesionCounts
	IGAScore        int
	Grade           IGAGrade
	Recommendations []string
	CountsTier      SeverityTier
	ScalesAgree     bool
}
