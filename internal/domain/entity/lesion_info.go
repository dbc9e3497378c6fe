package entity

import "image/color"

// LesionTypeInfo справочная информация о типе элемента
type LesionTypeInfo struct {
	Type        LesionType
	Name        string
	Description string
	Color       color.RGBA // цвет маркера
	Examples    []string
}

var lesionInfo = [numLesionTypes]LesionTypeInfo{
	Comedone: {
		Type:        Comedone,
		Name:        "Comedones",
		Description: "Non-inflammatory lesions including blackheads (open comedones) and whiteheads (closed comedones). These are clogged pores without redness or swelling.",
		Color:       color.RGBA{R: 250, G: 204, B: 21, A: 255},
		Examples: []string{
			"Small black dots on nose, chin, or forehead",
			"Tiny white bumps under the skin",
			"Visible enlarged pores with dark centers",
			"Small flesh-colored bumps",
		},
	},
	Papule: {
		Type:        Papule,
		Name:        "Papules",
		Description: "Small, red, raised bumps without a visible center or pus. These are inflammatory lesions that are tender to touch but do not contain fluid.",
		Color:       color.RGBA{R: 251, G: 146, B: 60, A: 255},
		Examples: []string{
			"Small red bumps (2-5mm)",
			"Tender or slightly painful when touched",
			"No visible white or yellow center",
			"Firm to the touch",
		},
	},
	Pustule: {
		Type:        Pustule,
		Name:        "Pustules",
		Description: "Inflamed lesions with a visible white or yellow center filled with pus. Similar to papules but with a fluid-filled head.",
		Color:       color.RGBA{R: 255, G: 100, B: 100, A: 255},
		Examples: []string{
			"Red bumps with white or yellow center",
			"Pus-filled head that may be ready to drain",
			"Surrounded by red, inflamed skin",
			"May be painful or tender",
		},
	},
	Nodule: {
		Type:        Nodule,
		Name:        "Nodules",
		Description: "Large, deep, painful lesions that extend into deeper skin layers. These are severe inflammatory lesions that often feel hard and may not have a visible head.",
		Color:       color.RGBA{R: 200, G: 0, B: 0, A: 255},
		Examples: []string{
			"Large bumps (>5mm) deep under the skin",
			"Very painful or tender",
			"Hard to the touch",
			"May not have a visible head or opening",
			"Can last for weeks or months",
		},
	},
}

// Info возвращает справку по типу; для неизвестного типа ok=false.
func (t LesionType) Info() (LesionTypeInfo, bool) {
	if !t.Valid() {
		return LesionTypeInfo{}, false
	}
	return lesionInfo[t], true
}
