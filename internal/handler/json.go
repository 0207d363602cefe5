package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/seoulmkt/content-scheduler/backend/internal/domain"
)

func (h *Handler) logInternalServerError(r *http.Request, err error) {
	slog.Error("서버 내부 오류", "method", r.Method, "path", r.URL.Path, "error", err)
}

func (h *Handler) readJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logInternalServerError(r, err)
		http.Error(w, "서버 내부 오류", http.StatusInternalServerError)
	}
}

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func (h *Handler) errorResponse(w http.ResponseWriter, r *http.Request, msg string) {
	h.writeJSON(w, r, http.StatusOK, Response{
		Success: false,
		Message: msg,
		Data:    nil,
	})
}

// scheduleErrorResponse 는 사용자가 작업량을 조정할 수 있도록 부족 시간과 작업 목록을 함께 돌려준다
func (h *Handler) scheduleErrorResponse(w http.ResponseWriter, r *http.Request, se *domain.ScheduleError) {
	h.writeJSON(w, r, http.StatusOK, Response{
		Success: false,
		Message: se.Message,
		Data:    se,
	})
}

func (h *Handler) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		h.errorResponse(w, r, err.Error())
		return
	}

	h.errorResponse(w, r, validationErrors[0].Translate(h.translator))
}

func (h *Handler) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	h.logInternalServerError(r, err)
	h.writeJSON(w, r, http.StatusInternalServerError, Response{
		Success: false,
		Message: "서버 내부 오류",
		Data:    nil,
	})
}

func (h *Handler) successResponse(w http.ResponseWriter, r *http.Request, msg string, data any) {
	h.writeJSON(w, r, http.StatusOK, Response{
		Success: true,
		Message: msg,
		Data:    data,
	})
}

func parseYearMonth(yearParam, monthParam string) (int32, int32, error) {
	year, err := strconv.ParseInt(yearParam, 10, 32)
	if err != nil || year < 2000 || year > 2100 {
		return 0, 0, fmt.Errorf("연도가 잘못되었습니다: %q", yearParam)
	}
	month, err := strconv.ParseInt(monthParam, 10, 32)
	if err != nil || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("월이 잘못되었습니다: %q", monthParam)
	}
	return int32(year), int32(month), nil
}
