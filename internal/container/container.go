package container

import (
	"github.com/rs/zerolog"

	app "rescue-planner/internal/application"
	"rescue-planner/internal/domain/port"
	"rescue-planner/internal/domain/rescue"
)

type Container struct {
	UserService   *app.UserService
	SurveyService *app.SurveyService
}

func New(userRepo port.UserRepository, reports port.ReportRepository, extractor port.MarkerExtractor, renderer port.SurveyRenderer, tables *rescue.Tables, log zerolog.Logger) *Container {
	userService := app.NewUserService(userRepo)
	surveyService := app.NewSurveyService(extractor, renderer, reports, tables, log)

	return &Container{
		UserService:   userService,
		SurveyService: surveyService,
	}
}
