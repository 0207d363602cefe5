package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/seoulmkt/content-scheduler/backend/internal/domain"
	"github.com/seoulmkt/content-scheduler/backend/internal/utils"
)

func (h *Handler) GetAllHospitals(w http.ResponseWriter, r *http.Request) {
	hospitals, err := h.repository.GetAllHospitals()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "병원 목록 조회 성공", hospitals)
}

func (h *Handler) CreateHospital(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name           string  `json:"name" validate:"required"`
		BaseDueDay     int32   `json:"baseDueDay" validate:"required,min=1,max=31"`
		SanwiNosulDays []int32 `json:"sanwiNosulDays"`
		Color          string  `json:"color" validate:"omitempty,hexcolor"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := utils.ValidateSanwiNosulDays(req.SanwiNosulDays); err != nil {
		h.badRequest(w, r, err)
		return
	}

	hospital := &domain.Hospital{
		Name:           req.Name,
		BaseDueDay:     req.BaseDueDay,
		SanwiNosulDays: utils.NormalizeSanwiNosulDays(req.SanwiNosulDays),
		Color:          req.Color,
	}

	if err := h.repository.CreateHospital(hospital); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "hospitals_name_key":
			h.errorResponse(w, r, "이미 등록된 병원명입니다")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "병원 등록 성공", hospital)
}

func (h *Handler) GetHospital(w http.ResponseWriter, r *http.Request) {
	hospital := r.Context().Value(HospitalCtx).(*domain.Hospital)

	h.successResponse(w, r, "병원 조회 성공", hospital)
}

func (h *Handler) UpdateHospital(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name           *string  `json:"name" validate:"omitempty,min=1"`
		BaseDueDay     *int32   `json:"baseDueDay" validate:"omitempty,min=1,max=31"`
		SanwiNosulDays *[]int32 `json:"sanwiNosulDays"`
		Color          *string  `json:"color" validate:"omitempty,hexcolor"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	hospital := r.Context().Value(HospitalCtx).(*domain.Hospital)

	if req.Name != nil {
		hospital.Name = *req.Name
	}
	if req.BaseDueDay != nil {
		hospital.BaseDueDay = *req.BaseDueDay
	}
	if req.SanwiNosulDays != nil {
		if err := utils.ValidateSanwiNosulDays(*req.SanwiNosulDays); err != nil {
			h.badRequest(w, r, err)
			return
		}
		hospital.SanwiNosulDays = utils.NormalizeSanwiNosulDays(*req.SanwiNosulDays)
	}
	if req.Color != nil {
		hospital.Color = *req.Color
	}

	if err := h.repository.UpdateHospital(hospital); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "hospitals_name_key":
			h.errorResponse(w, r, "이미 등록된 병원명입니다")
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "병원 정보 수정 실패, 다시 시도해 주세요")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "병원 정보 수정 성공", hospital)
}

func (h *Handler) DeleteHospital(w http.ResponseWriter, r *http.Request) {
	hospital := r.Context().Value(HospitalCtx).(*domain.Hospital)

	if err := h.repository.DeleteHospital(hospital.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "병원 삭제 성공", nil)
}
