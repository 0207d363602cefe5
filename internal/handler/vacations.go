package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/seoulmkt/content-scheduler/backend/internal/calendar"
	"github.com/seoulmkt/content-scheduler/backend/internal/domain"
)

func monthRange(year, month int32) (string, string) {
	y, m := int(year), time.Month(month)
	return calendar.Format(calendar.Date(y, m, 1)), calendar.Format(calendar.Date(y, m, calendar.DaysIn(y, m)))
}

func (h *Handler) GetVacations(w http.ResponseWriter, r *http.Request) {
	year, month, err := parseYearMonth(r.URL.Query().Get("year"), r.URL.Query().Get("month"))
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	from, to := monthRange(year, month)
	vacations, err := h.repository.GetVacationsBetween(from, to)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "연차 목록 조회 성공", vacations)
}

func (h *Handler) CreateVacation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		VacationDate string `json:"vacationDate" validate:"required,datetime=2006-01-02"`
		Memo         string `json:"memo" validate:"max=200"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	vacation := &domain.Vacation{
		VacationDate: req.VacationDate,
		Memo:         req.Memo,
	}

	if err := h.repository.CreateVacation(vacation); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "vacations_vacation_date_key":
			h.errorResponse(w, r, "이미 등록된 연차 날짜입니다")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "연차 등록 성공", vacation)
}

func (h *Handler) DeleteVacation(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		h.errorResponse(w, r, "연차 ID가 잘못되었습니다")
		return
	}

	if err := h.repository.DeleteVacation(id); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "연차 삭제 성공", nil)
}
