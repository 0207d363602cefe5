package handler

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/seoulmkt/content-scheduler/backend/internal/calendar"
	"github.com/seoulmkt/content-scheduler/backend/internal/domain"
	"github.com/seoulmkt/content-scheduler/backend/internal/generation"
	"github.com/seoulmkt/content-scheduler/backend/internal/lock"
	"github.com/seoulmkt/content-scheduler/backend/internal/scheduler"
	"github.com/seoulmkt/content-scheduler/backend/internal/utils"
)

type generateRequest struct {
	HospitalID int64 `json:"hospitalID" validate:"required"`
	Year       int32 `json:"year" validate:"required,min=2000,max=2100"`
	Month      int32 `json:"month" validate:"required,min=1,max=12"`
}

func (h *Handler) GenerateSchedule(w http.ResponseWriter, r *http.Request) {
	h.runGenerator(w, r, h.generator.Generate, "스케줄 생성 성공")
}

func (h *Handler) PreviewSchedule(w http.ResponseWriter, r *http.Request) {
	h.runGenerator(w, r, h.generator.Preview, "스케줄 미리보기 성공")
}

func (h *Handler) runGenerator(w http.ResponseWriter, r *http.Request, run func(int64, int32, int32) (*scheduler.Result, error), msg string) {
	var req generateRequest

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	res, err := run(req.HospitalID, req.Year, req.Month)
	if err != nil {
		var se *domain.ScheduleError
		switch {
		case errors.As(err, &se):
			h.scheduleErrorResponse(w, r, se)
		case errors.Is(err, generation.ErrHospitalNotFound):
			h.errorResponse(w, r, "병원을 찾을 수 없습니다")
		case errors.Is(err, generation.ErrMonthlyTaskNotFound):
			h.errorResponse(w, r, "해당 월의 작업량 데이터가 없습니다")
		case errors.Is(err, lock.ErrLocked):
			h.errorResponse(w, r, "같은 달의 스케줄이 생성 중입니다. 잠시 후 다시 시도해 주세요")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, msg, res)
}

func (h *Handler) GetMonthSchedules(w http.ResponseWriter, r *http.Request) {
	year, month, err := parseYearMonth(chi.URLParam(r, "year"), chi.URLParam(r, "month"))
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	schedules, err := h.repository.GetSchedulesByMonth(year, month)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "스케줄 조회 성공", schedules)
}

func (h *Handler) DeleteSchedules(w http.ResponseWriter, r *http.Request) {
	year, month, err := parseYearMonth(chi.URLParam(r, "year"), chi.URLParam(r, "month"))
	if err != nil {
		h.badRequest(w, r, err)
		return
	}
	hospitalID, err := idParam(r, "hospitalID")
	if err != nil {
		h.errorResponse(w, r, "병원 ID가 잘못되었습니다")
		return
	}

	if err := h.repository.DeleteSchedules(hospitalID, year, month); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "스케줄 삭제 성공", nil)
}

func (h *Handler) UpdateScheduleCompletion(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IsCompleted *bool `json:"isCompleted" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	schedule := r.Context().Value(ScheduleItemCtx).(*domain.Schedule)
	schedule.IsCompleted = *req.IsCompleted

	if err := h.repository.UpdateScheduleCompletion(schedule); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "완료 상태 변경 실패, 다시 시도해 주세요")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "완료 상태 변경 성공", schedule)
}

// MoveScheduleItem 은 일정을 다른 근무일/시간으로 옮긴다. 작업 시간은 그대로 유지한다.
func (h *Handler) MoveScheduleItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TaskDate      string `json:"taskDate" validate:"required,datetime=2006-01-02"`
		StartTime     string `json:"startTime" validate:"required,datetime=15:04"`
		SequenceIndex int32  `json:"sequenceIndex" validate:"min=0"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// 옮길 날짜의 공휴일/연차를 반영한 달력
	holidays, err := h.repository.GetHolidaysBetween(req.TaskDate, req.TaskDate)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	vacations, err := h.repository.GetVacationDatesBetween(req.TaskDate, req.TaskDate)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	cal, err := newCalendar(holidays, vacations)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if err := utils.ValidateMoveTarget(cal, req.TaskDate); err != nil {
		h.badRequest(w, r, err)
		return
	}

	schedule := r.Context().Value(ScheduleItemCtx).(*domain.Schedule)

	start, _ := time.Parse("15:04", req.StartTime)
	startHour := float64(start.Hour()) + float64(start.Minute())/60
	endHour, endMinute := calendar.AddHours(startHour, schedule.DurationHours)
	if endHour > 23 {
		h.badRequest(w, r, fmt.Errorf("종료 시간이 하루를 넘어갑니다: %s 시작, %g시간", req.StartTime, schedule.DurationHours))
		return
	}

	schedule.TaskDate = req.TaskDate
	schedule.StartTime = calendar.FormatTime(start.Hour(), start.Minute())
	schedule.EndTime = calendar.FormatTime(endHour, endMinute)
	schedule.SequenceIndex = req.SequenceIndex

	if err := h.repository.MoveSchedule(schedule); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "일정 이동 실패, 다시 시도해 주세요")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "일정 이동 성공", schedule)
}

func newCalendar(holidays []*domain.Holiday, vacations []string) (*calendar.Calendar, error) {
	list := make([]domain.Holiday, 0, len(holidays))
	for _, h := range holidays {
		list = append(list, *h)
	}
	ht, err := calendar.NewHolidayTable(list)
	if err != nil {
		return nil, err
	}
	return calendar.New(ht, vacations)
}
