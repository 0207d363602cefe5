package utils

import (
	"reflect"
	"testing"

	"github.com/seoulmkt/content-scheduler/backend/internal/calendar"
	"github.com/seoulmkt/content-scheduler/backend/internal/domain"
)

func TestValidateSanwiNosulDays(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		days    []int32
		wantErr bool
	}{
		{name: "empty", days: nil},
		{name: "five days", days: []int32{1, 5, 10, 20, 31}},
		{name: "too many", days: []int32{1, 2, 3, 4, 5, 6}, wantErr: true},
		{name: "zero", days: []int32{0}, wantErr: true},
		{name: "32", days: []int32{32}, wantErr: true},
		{name: "duplicate", days: []int32{3, 3}, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateSanwiNosulDays(tt.days)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateSanwiNosulDays(%v) error = %v, wantErr %v", tt.days, err, tt.wantErr)
			}
		})
	}
}

func TestNormalizeSanwiNosulDaysDoesNotMutate(t *testing.T) {
	t.Parallel()
	in := []int32{20, 3, 11}
	out := NormalizeSanwiNosulDays(in)
	if !reflect.DeepEqual(out, []int32{3, 11, 20}) {
		t.Fatalf("out = %v", out)
	}
	if !reflect.DeepEqual(in, []int32{20, 3, 11}) {
		t.Fatalf("input mutated: %v", in)
	}
}

func TestParseWorkPeriod(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		start, end string
		wantPeriod bool
		wantErr    bool
	}{
		{name: "none"},
		{name: "both", start: "2026-06-01", end: "2026-06-19", wantPeriod: true},
		{name: "same day", start: "2026-06-19", end: "2026-06-19", wantPeriod: true},
		{name: "only start", start: "2026-06-01", wantErr: true},
		{name: "reversed", start: "2026-06-19", end: "2026-06-01", wantErr: true},
		{name: "bad format", start: "2026/06/01", end: "2026-06-19", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			mt, err := ParseWorkPeriod(tt.start, tt.end)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && mt.HasWorkPeriod() != tt.wantPeriod {
				t.Fatalf("HasWorkPeriod = %v, want %v", mt.HasWorkPeriod(), tt.wantPeriod)
			}
		})
	}
}

func TestValidateMoveTarget(t *testing.T) {
	t.Parallel()
	ht, err := calendar.NewHolidayTable([]domain.Holiday{{HolidayDate: "2026-05-05", Name: "어린이날"}})
	if err != nil {
		t.Fatalf("NewHolidayTable error: %v", err)
	}
	cal, err := calendar.New(ht, []string{"2026-05-07"})
	if err != nil {
		t.Fatalf("calendar.New error: %v", err)
	}

	for date, wantErr := range map[string]bool{
		"2026-05-04": false,
		"2026-05-05": true, // 공휴일
		"2026-05-07": true, // 연차
		"2026-05-09": true, // 토요일
		"05-09":      true,
	} {
		if err := ValidateMoveTarget(cal, date); (err != nil) != wantErr {
			t.Fatalf("ValidateMoveTarget(%s) error = %v, wantErr %v", date, err, wantErr)
		}
	}
}

func TestGenerateRandomHospitalIsValid(t *testing.T) {
	t.Parallel()
	for i := 0; i < 50; i++ {
		h := GenerateRandomHospital()
		if err := ValidateSanwiNosulDays(h.SanwiNosulDays); err != nil {
			t.Fatalf("invalid random hospital %+v: %v", h, err)
		}
		if h.BaseDueDay < 1 || h.BaseDueDay > 28 || len(h.Color) != 7 {
			t.Fatalf("invalid random hospital %+v", h)
		}
		mt := GenerateRandomMonthlyTask(1, 2026, 6)
		if mt.BrandOrder == mt.TrendOrder || mt.Brand < 1 || mt.Trend < 1 {
			t.Fatalf("invalid random monthly task %+v", mt)
		}
	}
}
