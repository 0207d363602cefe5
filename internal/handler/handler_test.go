package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/seoulmkt/content-scheduler/backend/internal/domain"
	"github.com/seoulmkt/content-scheduler/backend/internal/generation"
	"github.com/seoulmkt/content-scheduler/backend/internal/lock"
	"github.com/seoulmkt/content-scheduler/backend/internal/scheduler"
)

type fakeGenerator struct {
	calls int
	err   error
}

func (g *fakeGenerator) Generate(hospitalID int64, year, month int32) (*scheduler.Result, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	return &scheduler.Result{HospitalID: hospitalID, HospitalName: "강남연세안과", Year: year, Month: month, DueDate: "2026-06-25", EarlyStartDates: []string{}}, nil
}

func (g *fakeGenerator) Preview(hospitalID int64, year, month int32) (*scheduler.Result, error) {
	return g.Generate(hospitalID, year, month)
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestHandler(t *testing.T, gen ScheduleGenerator) *Handler {
	t.Helper()
	h, err := NewHandler(nil, nil, gen)
	if err != nil {
		t.Fatalf("NewHandler error: %v", err)
	}
	h.RegisterRoutes()
	return h
}

func do(t *testing.T, h *Handler, method, path, body string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Mux.ServeHTTP(rec, req)

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid response body %q: %v", rec.Body.String(), err)
	}
	return rec.Code, env
}

func TestGenerateScheduleValidation(t *testing.T) {
	t.Parallel()
	gen := &fakeGenerator{}
	h := newTestHandler(t, gen)

	tests := []struct {
		name string
		body string
	}{
		{name: "bad json", body: `{`},
		{name: "missing hospital", body: `{"year": 2026, "month": 6}`},
		{name: "month out of range", body: `{"hospitalID": 1, "year": 2026, "month": 13}`},
	}

	for _, tt := range tests {
		status, env := do(t, h, http.MethodPost, "/schedules/generate", tt.body)
		if status != http.StatusOK || env.Success || env.Message == "" {
			t.Fatalf("%s: unexpected response %d %+v", tt.name, status, env)
		}
	}
	if gen.calls != 0 {
		t.Fatalf("generator called %d times on invalid input", gen.calls)
	}
}

func TestGenerateScheduleErrors(t *testing.T) {
	t.Parallel()
	shortage := &domain.ScheduleError{
		Kind:          domain.ScheduleErrorCapacityShortage,
		HospitalName:  "강남연세안과",
		ShortageHours: 3.5,
		Tasks:         []string{"브랜드"},
		Message:       "배치하지 못한 작업이 있습니다: 1건, 3.5시간 부족",
	}

	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{name: "hospital not found", err: generation.ErrHospitalNotFound, status: http.StatusOK, message: "병원을 찾을 수 없습니다"},
		{name: "quota not found", err: generation.ErrMonthlyTaskNotFound, status: http.StatusOK, message: "해당 월의 작업량 데이터가 없습니다"},
		{name: "locked", err: lock.ErrLocked, status: http.StatusOK, message: "같은 달의 스케줄이 생성 중입니다. 잠시 후 다시 시도해 주세요"},
		{name: "shortage", err: shortage, status: http.StatusOK, message: shortage.Message},
	}

	for _, tt := range tests {
		h := newTestHandler(t, &fakeGenerator{err: tt.err})
		status, env := do(t, h, http.MethodPost, "/schedules/generate", `{"hospitalID": 1, "year": 2026, "month": 6}`)
		if status != tt.status || env.Success || env.Message != tt.message {
			t.Fatalf("%s: unexpected response %d %+v", tt.name, status, env)
		}
	}

	h := newTestHandler(t, &fakeGenerator{err: shortage})
	_, env := do(t, h, http.MethodPost, "/schedules/preview", `{"hospitalID": 1, "year": 2026, "month": 6}`)
	var got domain.ScheduleError
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("data is not a schedule error: %s", env.Data)
	}
	if got.Kind != domain.ScheduleErrorCapacityShortage || got.ShortageHours != 3.5 || got.HospitalName != "강남연세안과" {
		t.Fatalf("unexpected error data: %+v", got)
	}
}

func TestGenerateScheduleSuccess(t *testing.T) {
	t.Parallel()
	h := newTestHandler(t, &fakeGenerator{})

	status, env := do(t, h, http.MethodPost, "/schedules/generate", `{"hospitalID": 3, "year": 2026, "month": 6}`)
	if status != http.StatusOK || !env.Success {
		t.Fatalf("unexpected response %d %+v", status, env)
	}

	var res scheduler.Result
	if err := json.Unmarshal(env.Data, &res); err != nil {
		t.Fatalf("invalid data: %v", err)
	}
	if res.HospitalID != 3 || res.DueDate != "2026-06-25" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestParamValidationBeforeRepository(t *testing.T) {
	t.Parallel()
	h := newTestHandler(t, &fakeGenerator{})

	for _, path := range []string{
		"/schedules/2026/13",
		"/monthly-tasks?year=2026",
		"/vacations?year=abc&month=1",
		"/holidays?year=",
	} {
		status, env := do(t, h, http.MethodGet, path, "")
		if status != http.StatusOK || env.Success {
			t.Fatalf("%s: unexpected response %d %+v", path, status, env)
		}
	}

	status, env := do(t, h, http.MethodDelete, "/schedules/2026/6/abc", "")
	if status != http.StatusOK || env.Success || env.Message != "병원 ID가 잘못되었습니다" {
		t.Fatalf("unexpected response %d %+v", status, env)
	}
}

func TestParseYearMonth(t *testing.T) {
	t.Parallel()
	tests := []struct {
		year, month string
		wantErr     bool
	}{
		{year: "2026", month: "6"},
		{year: "2026", month: "12"},
		{year: "2026", month: "0", wantErr: true},
		{year: "1999", month: "1", wantErr: true},
		{year: "x", month: "1", wantErr: true},
	}

	for _, tt := range tests {
		y, m, err := parseYearMonth(tt.year, tt.month)
		if (err != nil) != tt.wantErr {
			t.Fatalf("parseYearMonth(%s, %s) error = %v", tt.year, tt.month, err)
		}
		if err == nil && (y != 2026) {
			t.Fatalf("parseYearMonth(%s, %s) = %d, %d", tt.year, tt.month, y, m)
		}
	}
}
