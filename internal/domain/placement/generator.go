// Package placement размещает синтетические элементы акне на лице с учётом
// зон предпочтения, исключающих зон и минимального расстояния.
package placement

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"acne-bot/internal/domain/entity"
	"acne-bot/internal/domain/port"
	"acne-bot/internal/domain/zone"
)

// DefaultMaxAttempts — число попыток на один элемент.
const DefaultMaxAttempts = 30

// tZoneChance — вероятность выбрать для комедона зону из Т-зоны.
const tZoneChance = 0.7

// rule — параметры размещения одного типа.
type rule struct {
	spacing      float64
	intensityMin float64
	intensityMax float64
	zones        func(g *Generator) zone.AcneZone
}

// Generator размещает элементы методом отбора с повторами.
type Generator struct {
	mu          sync.Mutex
	rng         *rand.Rand
	exclusions  []zone.ExclusionZone
	face        zone.FaceZones
	maxAttempts int
	log         logrus.FieldLogger
	now         func() time.Time
	newID       func() string
}

var rules = [...]rule{
	entity.Comedone: {spacing: 0.04, intensityMin: 0.3, intensityMax: 0.7, zones: (*Generator).comedoneZone},
	entity.Papule:   {spacing: 0.06, intensityMin: 0.5, intensityMax: 0.75, zones: (*Generator).anyZone},
	entity.Pustule:  {spacing: 0.08, intensityMin: 0.65, intensityMax: 0.85, zones: (*Generator).lowerFaceZone},
	entity.Nodule:   {spacing: 0.10, intensityMin: 0.8, intensityMax: 0.95, zones: (*Generator).lowerFaceZone},
}

// Option настраивает генератор.
type Option func(*Generator)

// WithExclusions задаёт исключающие зоны; nil отключает проверку.
func WithExclusions(zones []zone.ExclusionZone) Option {
	return func(g *Generator) { g.exclusions = zones }
}

// WithFaceZones задаёт зоны предпочтения.
func WithFaceZones(f zone.FaceZones) Option {
	return func(g *Generator) { g.face = f }
}

// WithMaxAttempts задаёт лимит попыток на элемент.
func WithMaxAttempts(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.maxAttempts = n
		}
	}
}

// WithLogger задаёт логгер.
func WithLogger(l logrus.FieldLogger) Option {
	return func(g *Generator) { g.log = l }
}

// WithClock задаёт источник времени создания.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// New создаёт генератор поверх переданного источника случайности.
func New(rng *rand.Rand, opts ...Option) *Generator {
	g := &Generator{
		rng:         rng,
		exclusions:  zone.DefaultExclusionZones(),
		face:        zone.DefaultFaceZones(),
		maxAttempts: DefaultMaxAttempts,
		log:         logrus.StandardLogger(),
		now:         time.Now,
		newID:       func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Spacing возвращает минимальное расстояние для типа.
func Spacing(t entity.LesionType) float64 {
	if !t.Valid() {
		return 0
	}
	return rules[t].spacing
}

// IntensityRange возвращает диапазон яркости маркера для типа.
func IntensityRange(t entity.LesionType) (lo, hi float64) {
	if !t.Valid() {
		return 0, 0
	}
	return rules[t].intensityMin, rules[t].intensityMax
}

// Generate размещает элементы: сначала все комедоны, затем папулы, пустулы и узлы.
// Элемент, для которого не нашлось места за maxAttempts попыток, пропускается,
// поэтому длина результата может быть меньше запрошенной.
func (g *Generator) Generate(req entity.LesionRequest) []entity.Lesion {
	g.mu.Lock()
	defer g.mu.Unlock()

	var accepted []entity.Lesion
	requested := 0
	for _, t := range entity.LesionTypes() {
		n := req.Count(t)
		if n <= 0 {
			continue
		}
		requested += n
		r := rules[t]
		for i := 0; i < n; i++ {
			pos, attempts, ok := g.place(r, accepted)
			if !ok {
				g.log.WithFields(logrus.Fields{
					"type":     t.String(),
					"attempts": attempts,
				}).Debug("lesion dropped: no free position")
				continue
			}
			accepted = append(accepted, entity.Lesion{
				ID:        g.newID(),
				Type:      t,
				Position:  pos,
				Intensity: r.intensityMin + g.rng.Float64()*(r.intensityMax-r.intensityMin),
				CreatedAt: g.now(),
			})
		}
	}

	g.log.WithFields(logrus.Fields{
		"requested": requested,
		"placed":    len(accepted),
	}).Debug("layout generated")
	return accepted
}

// SampleCounts выбирает количества для демонстрационного анализа.
func (g *Generator) SampleCounts() entity.LesionRequest {
	g.mu.Lock()
	defer g.mu.Unlock()

	return entity.LesionRequest{
		Comedones: g.rng.IntN(8) + 2,
		Papules:   g.rng.IntN(5) + 1,
		Pustules:  g.rng.IntN(4),
		Nodules:   g.rng.IntN(2),
	}
}

// place ищет позицию за ограниченное число попыток.
func (g *Generator) place(r rule, accepted []entity.Lesion) (entity.Point, int, bool) {
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		candidate := r.zones(g).Sample(g.rng)
		if zone.IsExcluded(candidate, g.exclusions) {
			continue
		}
		if tooClose(candidate, accepted, r.spacing) {
			continue
		}
		return candidate, attempt, true
	}
	return entity.Point{}, g.maxAttempts, false
}

func tooClose(p entity.Point, accepted []entity.Lesion, spacing float64) bool {
	for _, l := range accepted {
		if zone.Distance(p, l.Position) < spacing {
			return true
		}
	}
	return false
}

func (g *Generator) comedoneZone() zone.AcneZone {
	if g.rng.Float64() < tZoneChance {
		return pick(g.rng, g.face.TZone())
	}
	return pick(g.rng, g.face.All())
}

func (g *Generator) anyZone() zone.AcneZone {
	return pick(g.rng, g.face.All())
}

func (g *Generator) lowerFaceZone() zone.AcneZone {
	return pick(g.rng, g.face.LowerFace())
}

func pick(rng *rand.Rand, zones []zone.AcneZone) zone.AcneZone {
	return zones[rng.IntN(len(zones))]
}

// Проверка реализации интерфейса
var _ port.LayoutGenerator = (*Generator)(nil)
