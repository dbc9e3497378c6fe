package severity

import "acne-bot/internal/domain/entity"

// Дополнительные рекомендации. NoduleNote относится к трёхуровневой шкале,
// NoduleWarning и RetinoidNote к шкале IGA, HygieneTips всегда идут последними.
const (
	NoduleNote    = "Nodular acne requires professional treatment to prevent permanent scarring and cysts"
	NoduleWarning = "⚠️ Nodular acne detected - requires immediate professional medical attention to prevent scarring."
	RetinoidNote  = "High comedone count suggests need for retinoid therapy to prevent pore blockage"
	HygieneTips   = "General tips: Wash face twice daily, avoid touching your face, change pillowcases regularly."
)

const retinoidComedoneThreshold = 30

var tierBlocks = map[entity.SeverityTier][]string{
	entity.TierMild: {
		"Use over-the-counter topical treatments containing benzoyl peroxide (2.5-5%) or salicylic acid",
		"Maintain a consistent gentle cleansing routine twice daily",
		"Avoid picking or squeezing lesions to prevent scarring",
		"Consider non-comedogenic skincare and makeup products",
		"Monitor your skin for 6-8 weeks; if no improvement, consult a dermatologist",
	},
	entity.TierModerate: {
		"Consult a dermatologist for prescription-strength topical treatments (retinoids, antibiotics)",
		"Consider combination therapy with benzoyl peroxide and topical antibiotics",
		"Maintain consistent skincare routine with gentle, non-irritating products",
		"Avoid harsh scrubbing or over-washing, which can worsen inflammation",
		"Discuss oral antibiotic options with your dermatologist if topical treatments are insufficient",
		"Consider professional extraction of comedones by a licensed professional",
	},
	entity.TierSevere: {
		"⚠️ URGENT: Schedule an appointment with a board-certified dermatologist as soon as possible",
		"Severe acne requires professional medical treatment to prevent permanent scarring",
		"Your dermatologist may recommend oral isotretinoin (Accutane) or hormonal therapy",
		"Do not attempt to treat severe nodular acne with over-the-counter products alone",
		"Avoid picking or manipulating nodules, which can lead to deep scarring and infection",
		"Consider referral to an acne specialist or dermatology clinic for comprehensive treatment",
		"Discuss potential need for oral antibiotics, hormonal treatments, or isotretinoin therapy",
	},
}

var tierDescriptions = map[entity.SeverityTier]string{
	entity.TierMild:     "Your acne is classified as mild. With proper over-the-counter treatment and skincare routine, improvement is typically seen within 6-8 weeks.",
	entity.TierModerate: "Your acne is classified as moderate. Professional dermatological treatment is recommended for optimal results and to prevent scarring.",
	entity.TierSevere:   "Your acne is classified as severe. Immediate professional medical treatment is strongly recommended to prevent permanent scarring and complications.",
}

var gradeBlocks = map[entity.IGAGrade][]string{
	entity.GradeClear: {
		"Your skin is clear! Maintain your current skincare routine.",
		"Continue using gentle cleansers and moisturizers.",
		"Protect your skin with SPF 30+ daily.",
	},
	entity.GradeAlmostClear: {
		"Your skin is almost clear with minimal acne.",
		"Consider OTC products with salicylic acid (0.5-2%) for maintenance.",
		"Maintain a consistent gentle skincare routine.",
		"Avoid harsh scrubs or over-washing which can irritate skin.",
	},
	entity.GradeMild: {
		"Mild acne detected. OTC treatments are typically effective.",
		"Try products with benzoyl peroxide (2.5-5%) or salicylic acid (2%).",
		"Consider adding a retinoid product (adapalene 0.1%) at night.",
		"Use non-comedogenic moisturizers and sunscreen daily.",
		"If no improvement in 8-12 weeks, consult a dermatologist.",
	},
	entity.GradeModerate: {
		"Moderate acne detected. Professional treatment recommended.",
		"Schedule an appointment with a dermatologist for personalized care.",
		"Prescription treatments (topical or oral) may be more effective.",
		"Avoid picking or squeezing lesions to prevent scarring.",
		"Consider professional extractions for comedones if needed.",
	},
	entity.GradeSevere: {
		"Severe acne detected. Dermatologist consultation strongly recommended.",
		"Professional medical treatment is necessary for optimal results.",
		"Prescription medications (oral antibiotics, isotretinoin, or hormonal therapy) may be required.",
		"Early aggressive treatment helps prevent permanent scarring.",
		"Your dermatologist may recommend combination therapy for best results.",
	},
}

// Recommend собирает рекомендации для трёхуровневой шкалы: блок уровня,
// затем заметка про узлы, затем общие советы.
func Recommend(tier entity.SeverityTier, c entity.LesionCounts) []string {
	block := tierBlocks[tier]
	out := make([]string, 0, len(block)+2)
	out = append(out, block...)
	if c.Nodules > 0 {
		out = append(out, NoduleNote)
	}
	return append(out, HygieneTips)
}

// RecommendIGA собирает рекомендации для шкалы IGA: блок уровня,
// предупреждение про узлы, заметка про ретиноиды, общие советы.
func RecommendIGA(grade entity.IGAGrade, c entity.LesionCounts) []string {
	block := gradeBlocks[grade]
	out := make([]string, 0, len(block)+3)
	out = append(out, block...)
	if c.Nodules > 0 {
		out = append(out, NoduleWarning)
	}
	if c.Comedones > retinoidComedoneThreshold {
		out = append(out, RetinoidNote)
	}
	return append(out, HygieneTips)
}

// TierBlock возвращает копию блока рекомендаций уровня.
func TierBlock(tier entity.SeverityTier) []string {
	return append([]string(nil), tierBlocks[tier]...)
}

// GradeBlock возвращает копию блока рекомендаций для метки IGA.
func GradeBlock(grade entity.IGAGrade) []string {
	return append([]string(nil), gradeBlocks[grade]...)
}

// Describe возвращает краткое пояснение к уровню.
func Describe(tier entity.SeverityTier) string {
	return tierDescriptions[tier]
}
