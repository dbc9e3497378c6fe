package container

import (
	"github.com/sirupsen/logrus"

	app "acne-bot/internal/application"
	"acne-bot/internal/domain/port"
)

type Container struct {
	UserService       *app.UserService
	AssessmentService *app.AssessmentService
}

func New(userRepo port.UserRepository, generator port.LayoutGenerator, renderer port.LesionRenderer, log logrus.FieldLogger) *Container {
	userService := app.NewUserService(userRepo)
	assessmentService := app.NewAssessmentService(userService, generator, renderer, log)

	return &Container{
		UserService:       userService,
		AssessmentService: assessmentService,
	}
}
