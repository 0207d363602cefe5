package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/seoulmkt/content-scheduler/backend/internal/config"
	"github.com/seoulmkt/content-scheduler/backend/internal/repository"
	"github.com/seoulmkt/content-scheduler/backend/internal/scheduler"
)

// ScheduleGenerator 는 generation.Service 가 구현한다
type ScheduleGenerator interface {
	Generate(hospitalID int64, year, month int32) (*scheduler.Result, error)
	Preview(hospitalID int64, year, month int32) (*scheduler.Result, error)
}

type Handler struct {
	validate   *validator.Validate
	config     *config.Config
	repository *repository.Repository
	translator ut.Translator
	generator  ScheduleGenerator

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, generator ScheduleGenerator) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	en := en.New()
	uni := ut.New(en, en)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:   validate,
		config:     cfg,
		repository: repo,
		translator: trans,
		generator:  generator,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Route("/hospitals", func(r chi.Router) {
		r.Get("/", h.GetAllHospitals)
		r.Post("/", h.CreateHospital)
		r.Route("/{id}", func(r chi.Router) {
			r.Use(h.hospital)
			r.Get("/", h.GetHospital)
			r.Patch("/", h.UpdateHospital)
			r.Delete("/", h.DeleteHospital)
		})
	})

	h.Mux.Route("/monthly-tasks", func(r chi.Router) {
		r.Get("/", h.GetMonthlyTasks) // ?year=&month=
		r.Post("/", h.UpsertMonthlyTask)
		r.Delete("/{id}", h.DeleteMonthlyTask)
	})

	h.Mux.Route("/vacations", func(r chi.Router) {
		r.Get("/", h.GetVacations) // ?year=&month=
		r.Post("/", h.CreateVacation)
		r.Delete("/{id}", h.DeleteVacation)
	})

	h.Mux.Route("/holidays", func(r chi.Router) {
		r.Get("/", h.GetHolidays) // ?year=
		r.Post("/", h.CreateHoliday)
		r.Delete("/{id}", h.DeleteHoliday)
	})

	h.Mux.Route("/schedules", func(r chi.Router) {
		r.Post("/generate", h.GenerateSchedule)
		r.Post("/preview", h.PreviewSchedule)
		r.Get("/{year}/{month}", h.GetMonthSchedules)
		r.Delete("/{year}/{month}/{hospitalID}", h.DeleteSchedules)
	})

	// 생성된 일정 한 건에 대한 수동 수정
	h.Mux.Route("/schedule-items/{id}", func(r chi.Router) {
		r.Use(h.scheduleItem)
		r.Patch("/completion", h.UpdateScheduleCompletion)
		r.Patch("/move", h.MoveScheduleItem)
	})
}
