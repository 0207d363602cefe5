package autogen

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/seoulmkt/content-scheduler/backend/internal/calendar"
	"github.com/seoulmkt/content-scheduler/backend/internal/domain"
	"github.com/seoulmkt/content-scheduler/backend/internal/scheduler"
)

type fakeSource struct {
	tasks    []*domain.MonthlyTask
	existing map[int64]bool
}

func (f *fakeSource) GetMonthlyTasksByMonth(year, month int32) ([]*domain.MonthlyTask, error) {
	return f.tasks, nil
}

func (f *fakeSource) HasSchedules(hospitalID int64, year, month int32) (bool, error) {
	return f.existing[hospitalID], nil
}

type fakeGenerator struct {
	calls []int64
	fail  map[int64]error
}

func (f *fakeGenerator) Generate(hospitalID int64, year, month int32) (*scheduler.Result, error) {
	f.calls = append(f.calls, hospitalID)
	if err := f.fail[hospitalID]; err != nil {
		return nil, err
	}
	return &scheduler.Result{HospitalID: hospitalID, Year: year, Month: month}, nil
}

func TestRunMonth(t *testing.T) {
	t.Parallel()
	source := &fakeSource{
		tasks: []*domain.MonthlyTask{
			{HospitalID: 1, HospitalName: "가"},
			{HospitalID: 2, HospitalName: "나"},
			{HospitalID: 3, HospitalName: "다"},
			{HospitalID: 4, HospitalName: "라"},
		},
		existing: map[int64]bool{2: true},
	}
	gen := &fakeGenerator{fail: map[int64]error{
		3: &domain.ScheduleError{Kind: domain.ScheduleErrorCapacityShortage, Message: "부족"},
	}}

	r := NewRunner(source, gen, 1000)
	summary, err := r.RunMonth(context.Background(), 2026, 7)
	if err != nil {
		t.Fatalf("RunMonth error: %v", err)
	}

	if summary != (Summary{Generated: 2, Skipped: 1, Failed: 1}) {
		t.Fatalf("summary = %+v", summary)
	}
	want := []int64{1, 3, 4}
	if len(gen.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", gen.calls, want)
	}
	for i := range want {
		if gen.calls[i] != want[i] {
			t.Fatalf("calls = %v, want %v", gen.calls, want)
		}
	}
}

func TestRunMonthStopsOnCancelledContext(t *testing.T) {
	t.Parallel()
	source := &fakeSource{tasks: []*domain.MonthlyTask{{HospitalID: 1}}}
	gen := &fakeGenerator{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRunner(source, gen, 1)
	if _, err := r.RunMonth(ctx, 2026, 7); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(gen.calls) != 0 {
		t.Fatalf("generator called after cancel: %v", gen.calls)
	}
}

func TestNextMonth(t *testing.T) {
	t.Parallel()
	tests := []struct {
		now   time.Time
		year  int32
		month int32
	}{
		{now: calendar.Date(2026, time.June, 20), year: 2026, month: 7},
		{now: calendar.Date(2026, time.December, 31), year: 2027, month: 1},
		// UTC 로는 1월 31일이지만 한국 시간으로는 이미 2월
		{now: time.Date(2026, time.January, 31, 16, 0, 0, 0, time.UTC), year: 2026, month: 3},
	}

	for _, tt := range tests {
		year, month := NextMonth(tt.now)
		if year != tt.year || month != tt.month {
			t.Fatalf("NextMonth(%v) = %d-%d, want %d-%d", tt.now, year, month, tt.year, tt.month)
		}
	}
}
