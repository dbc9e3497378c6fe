package app

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"acne-bot/internal/domain/entity"
	"acne-bot/internal/domain/port"
	"acne-bot/internal/domain/severity"
)

type AssessmentService struct {
	users     *UserService
	generator port.LayoutGenerator
	renderer  port.LesionRenderer
	validate  *validator.Validate
	log       logrus.FieldLogger
	now       func() time.Time
	newID     func() string
}

// SimulationOutput содержит результат синтетического анализа и фото с маркерами.
type SimulationOutput struct {
	Result      *entity.SimulatedAssessment
	Highlighted []byte
}

// NewAssessmentService создаёт сервис разметки и оценки тяжести.
func NewAssessmentService(users *UserService, generator port.LayoutGenerator, renderer port.LesionRenderer, log logrus.FieldLogger) *AssessmentService {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &AssessmentService{
		users:     users,
		generator: generator,
		renderer:  renderer,
		validate:  NewValidator(),
		log:       log,
		now:       time.Now,
		newID:     func() string { return uuid.NewString() },
	}
}

// AcceptPhoto сохраняет фото лица и начинает новую разметку.
func (s *AssessmentService) AcceptPhoto(ctx context.Context, userID, chatID int64, photo []byte) (*entity.User, error) {
	if len(photo) == 0 {
		return nil, ErrNoPhoto
	}
	user, err := s.users.Get(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}
	user.StartSession(photo)
	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// MarkLesion добавляет отметку пользователя в текущую сессию.
func (s *AssessmentService) MarkLesion(ctx context.Context, userID, chatID int64, req MarkRequest) (*entity.User, entity.Lesion, error) {
	if err := validate(s.validate, req); err != nil {
		return nil, entity.Lesion{}, err
	}
	lesionType, err := entity.ParseLesionType(req.Type)
	if err != nil {
		return nil, entity.Lesion{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	user, err := s.sessionUser(ctx, userID, chatID)
	if err != nil {
		return nil, entity.Lesion{}, err
	}

	lesion, err := entity.NewLesion(s.newID(), lesionType, entity.Point{X: req.X, Y: req.Y}, s.now())
	if err != nil {
		return nil, entity.Lesion{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	user.AddLesion(lesion)
	if err := s.users.Save(ctx, user); err != nil {
		return nil, entity.Lesion{}, err
	}
	return user, lesion, nil
}

// RemoveLesion удаляет отметку по ID.
func (s *AssessmentService) RemoveLesion(ctx context.Context, userID, chatID int64, id string) (*entity.User, error) {
	user, err := s.sessionUser(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}
	if err := user.RemoveLesion(id); err != nil {
		return nil, err
	}
	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UndoLesion удаляет последнюю отметку.
func (s *AssessmentService) UndoLesion(ctx context.Context, userID, chatID int64) (*entity.User, entity.Lesion, error) {
	user, err := s.sessionUser(ctx, userID, chatID)
	if err != nil {
		return nil, entity.Lesion{}, err
	}
	removed, ok := user.RemoveLast()
	if !ok {
		return user, entity.Lesion{}, entity.ErrLesionNotFound
	}
	if err := s.users.Save(ctx, user); err != nil {
		return nil, entity.Lesion{}, err
	}
	return user, removed, nil
}

// ClearLesions удаляет все отметки текущей сессии.
func (s *AssessmentService) ClearLesions(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	user, err := s.sessionUser(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}
	user.ClearLesions()
	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Assess оценивает отметки пользователя по порогам.
func (s *AssessmentService) Assess(ctx context.Context, userID, chatID int64) (*entity.Assessment, error) {
	user, err := s.users.Get(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}
	result := AssessLesions(user.Lesions)
	return &result, nil
}

// AssessLesions — оценка произвольного набора элементов по порогам.
func AssessLesions(lesions []entity.Lesion) entity.Assessment {
	counts := entity.Aggregate(lesions)
	tier := severity.Classify(counts)
	return entity.Assessment{
		Counts:          counts,
		Tier:            tier,
		Description:     severity.Describe(tier),
		Recommendations: severity.Recommend(tier, counts),
	}
}

// Simulate генерирует синтетическую разметку и оценивает её по шкале IGA.
// Если req == nil, количества выбираются случайно.
func (s *AssessmentService) Simulate(ctx context.Context, req *CountsRequest) (*entity.SimulatedAssessment, error) {
	if s.generator == nil {
		return nil, ErrGeneratorNotConfigured
	}

	var requested entity.LesionRequest
	if req != nil {
		if err := validate(s.validate, *req); err != nil {
			return nil, err
		}
		requested = req.LesionRequest()
	} else {
		requested = s.generator.SampleCounts()
	}

	lesions := s.generator.Generate(requested)
	counts := entity.Aggregate(lesions)
	cmp := severity.Compare(counts)
	if !cmp.Agree {
		s.log.WithFields(logrus.Fields{
			"tier":  cmp.Tier,
			"grade": cmp.Grade,
			"score": cmp.Score,
			"total": counts.Total,
		}).Info("severity scales disagree")
	}

	return &entity.SimulatedAssessment{
		Requested:       requested,
		Lesions:         lesions,
		Counts:          counts,
		IGAScore:        cmp.Score,
		Grade:           cmp.Grade,
		Recommendations: severity.RecommendIGA(cmp.Grade, counts),
		CountsTier:      cmp.Tier,
		ScalesAgree:     cmp.Agree,
	}, nil
}

// SimulateForUser выполняет синтетический анализ и рисует маркеры на фото пользователя.
func (s *AssessmentService) SimulateForUser(ctx context.Context, userID, chatID int64, req *CountsRequest) (*SimulationOutput, error) {
	result, err := s.Simulate(ctx, req)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Get(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}

	var highlighted []byte
	if len(user.Photo) > 0 && s.renderer != nil && len(result.Lesions) > 0 {
		highlighted, err = s.renderer.Render(user.Photo, result.Lesions)
		if err != nil {
			s.log.WithError(err).Warn("render simulated layout")
			highlighted = nil
		}
	}
	return &SimulationOutput{Result: result, Highlighted: highlighted}, nil
}

// RenderMarks рисует отметки пользователя на его фото.
func (s *AssessmentService) RenderMarks(ctx context.Context, userID, chatID int64) ([]byte, error) {
	if s.renderer == nil {
		return nil, ErrRendererNotConfigured
	}
	user, err := s.sessionUser(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}
	return s.renderer.Render(user.Photo, user.Lesions)
}

// sessionUser возвращает пользователя с начатой разметкой.
func (s *AssessmentService) sessionUser(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	user, err := s.users.Get(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}
	if len(user.Photo) == 0 {
		return nil, ErrNoPhoto
	}
	return user, nil
}
