package handler

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/seoulmkt/content-scheduler/backend/internal/utils"
)

func (h *Handler) GetMonthlyTasks(w http.ResponseWriter, r *http.Request) {
	year, month, err := parseYearMonth(r.URL.Query().Get("year"), r.URL.Query().Get("month"))
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	tasks, err := h.repository.GetMonthlyTasksByMonth(year, month)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "월별 작업량 조회 성공", tasks)
}

func (h *Handler) UpsertMonthlyTask(w http.ResponseWriter, r *http.Request) {
	var req struct {
		HospitalID       int64  `json:"hospitalID" validate:"required"`
		Year             int32  `json:"year" validate:"required,min=2000,max=2100"`
		Month            int32  `json:"month" validate:"required,min=1,max=12"`
		SanwiNosul       int32  `json:"sanwiNosul" validate:"min=0"`
		Brand            int32  `json:"brand" validate:"min=0"`
		Trend            int32  `json:"trend" validate:"min=0"`
		EonronBodo       int32  `json:"eonronBodo" validate:"min=0"`
		Jisikin          int32  `json:"jisikin" validate:"min=0"`
		CafePost         int32  `json:"cafePost" validate:"min=0"`
		DeadlinePullDays int32  `json:"deadlinePullDays" validate:"min=0,max=30"`
		BrandOrder       int32  `json:"brandOrder" validate:"omitempty,oneof=1 2"`
		TrendOrder       int32  `json:"trendOrder" validate:"omitempty,oneof=1 2"`
		WorkStartDate    string `json:"workStartDate"`
		WorkEndDate      string `json:"workEndDate"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	mt, err := utils.ParseWorkPeriod(req.WorkStartDate, req.WorkEndDate)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	mt.HospitalID = req.HospitalID
	mt.Year, mt.Month = req.Year, req.Month
	mt.SanwiNosul, mt.Brand, mt.Trend = req.SanwiNosul, req.Brand, req.Trend
	mt.EonronBodo, mt.Jisikin, mt.CafePost = req.EonronBodo, req.Jisikin, req.CafePost
	mt.DeadlinePullDays = req.DeadlinePullDays
	mt.BrandOrder, mt.TrendOrder = 1, 2
	if req.BrandOrder != 0 {
		mt.BrandOrder = req.BrandOrder
	}
	if req.TrendOrder != 0 {
		mt.TrendOrder = req.TrendOrder
	}

	if err := h.repository.UpsertMonthlyTask(mt); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "monthly_tasks_hospital_id_fkey":
			h.errorResponse(w, r, "병원을 찾을 수 없습니다")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "월별 작업량 저장 성공", mt)
}

func (h *Handler) DeleteMonthlyTask(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		h.errorResponse(w, r, "작업량 ID가 잘못되었습니다")
		return
	}

	if err := h.repository.DeleteMonthlyTask(id); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "월별 작업량 삭제 성공", nil)
}
