package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/seoulmkt/content-scheduler/backend/internal/domain"
)

func (h *Handler) GetHolidays(w http.ResponseWriter, r *http.Request) {
	yearParam := r.URL.Query().Get("year")
	year, err := strconv.ParseInt(yearParam, 10, 32)
	if err != nil || year < 2000 || year > 2100 {
		h.badRequest(w, r, fmt.Errorf("연도가 잘못되었습니다: %q", yearParam))
		return
	}

	holidays, err := h.repository.GetHolidaysByYear(int32(year))
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "공휴일 목록 조회 성공", holidays)
}

func (h *Handler) CreateHoliday(w http.ResponseWriter, r *http.Request) {
	var req struct {
		HolidayDate string `json:"holidayDate" validate:"required,datetime=2006-01-02"`
		Name        string `json:"name" validate:"required,max=50"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	holiday := &domain.Holiday{
		HolidayDate: req.HolidayDate,
		Name:        req.Name,
	}

	if err := h.repository.CreateHoliday(holiday); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "holidays_holiday_date_key":
			h.errorResponse(w, r, "이미 등록된 공휴일입니다")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "공휴일 등록 성공", holiday)
}

func (h *Handler) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		h.errorResponse(w, r, "공휴일 ID가 잘못되었습니다")
		return
	}

	if err := h.repository.DeleteHoliday(id); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "공휴일 삭제 성공", nil)
}
