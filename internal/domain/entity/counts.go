package entity

// LesionCounts — агрегат, всегда пересчитывается из списка элементов.
type LesionCounts struct {
	Comedones    int
	Papules      int
	Pustules     int
	Nodules      int
	Total        int
	Inflammatory int // papules + pustules + nodules
}

// Aggregate подсчитывает элементы по типам.
func Aggregate(lesions []Lesion) LesionCounts {
	var c LesionCounts
	for _, l := range lesions {
		switch l.Type {
		case Comedone:
			c.Comedones++
		case Papule:
			c.Papules++
		case Pustule:
			c.Pustules++
		case Nodule:
			c.Nodules++
		}
	}
	c.Total = len(lesions)
	c.Inflammatory = c.Papules + c.Pustules + c.Nodules
	return c
}

// CountsFromRequest строит агрегат из запрошенных количеств без генерации позиций.
func CountsFromRequest(r LesionRequest) LesionCounts {
	c := LesionCounts{
		Comedones: r.Comedones,
		Papules:   r.Papules,
		Pustules:  r.Pustules,
		Nodules:   r.Nodules,
	}
	c.Inflammatory = c.Papules + c.Pustules + c.Nodules
	c.Total = c.Comedones + c.Inflammatory
	return c
}
