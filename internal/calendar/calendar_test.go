package calendar

import (
	"testing"
	"time"

	"github.com/seoulmkt/content-scheduler/backend/internal/domain"
)

func testCalendar(t *testing.T, leave ...string) *Calendar {
	t.Helper()
	ht, err := NewHolidayTable([]domain.Holiday{
		{HolidayDate: "2026-01-01", Name: "신정"},
		{HolidayDate: "2026-02-16", Name: "설날"},
		{HolidayDate: "2026-02-17", Name: "설날"},
		{HolidayDate: "2026-02-18", Name: "설날"},
		{HolidayDate: "2026-03-02", Name: "삼일절 대체공휴일"},
		{HolidayDate: "2026-10-09", Name: "한글날"},
	})
	if err != nil {
		t.Fatalf("NewHolidayTable error: %v", err)
	}
	c, err := New(ht, leave)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	return c
}

func TestWorkdaysExcludesWeekendsHolidaysAndLeave(t *testing.T) {
	t.Parallel()
	c := testCalendar(t, "2026-02-05", "2026-03-10")

	for month := time.January; month <= time.December; month++ {
		workdays := c.Workdays(2026, month)
		seen := make(map[string]bool)
		for i, d := range workdays {
			if c.IsNonWorkday(d) {
				t.Fatalf("%s is not a workday", Format(d))
			}
			if i > 0 && !workdays[i-1].Before(d) {
				t.Fatalf("workdays not ascending at %s", Format(d))
			}
			seen[Format(d)] = true
		}
		for day := 1; day <= DaysIn(2026, month); day++ {
			d := Date(2026, month, day)
			if !c.IsNonWorkday(d) && !seen[Format(d)] {
				t.Fatalf("%s missing from workdays", Format(d))
			}
		}
	}
}

func TestIsNonWorkday(t *testing.T) {
	t.Parallel()
	c := testCalendar(t, "2026-02-05")

	tests := []struct {
		date string
		want bool
	}{
		{"2026-01-01", true},  // 신정
		{"2026-01-02", false}, // 금요일
		{"2026-01-10", true},  // 토요일
		{"2026-01-11", true},  // 일요일
		{"2026-02-05", true},  // 연차
		{"2026-02-16", true},  // 설날
		{"2026-03-03", false},
	}

	for _, tt := range tests {
		d, _ := Parse(tt.date)
		if got := c.IsNonWorkday(d); got != tt.want {
			t.Fatalf("IsNonWorkday(%s) = %v, want %v", tt.date, got, tt.want)
		}
	}
}

func TestIsNonWorkdayIgnoresInputZone(t *testing.T) {
	t.Parallel()
	c := testCalendar(t)

	// 2026-01-09 23:30 UTC 는 KST 로 2026-01-10(토)
	utc := time.Date(2026, time.January, 9, 23, 30, 0, 0, time.UTC)
	if !c.IsNonWorkday(utc) {
		t.Fatal("expected KST Saturday to be a non-workday")
	}
}

func TestRollBackToWorkday(t *testing.T) {
	t.Parallel()
	c := testCalendar(t, "2026-10-08")

	tests := []struct {
		date string
		want string
	}{
		{"2026-01-10", "2026-01-09"}, // 토 -> 금
		{"2026-10-11", "2026-10-07"}, // 일 -> 토 -> 한글날 -> 연차 -> 수
		{"2026-03-02", "2026-02-27"}, // 대체공휴일(월) -> 금
		{"2026-03-04", "2026-03-04"},
	}

	for _, tt := range tests {
		d, _ := Parse(tt.date)
		got, err := c.RollBackToWorkday(d)
		if err != nil {
			t.Fatalf("RollBackToWorkday(%s) error: %v", tt.date, err)
		}
		if Format(got) != tt.want {
			t.Fatalf("RollBackToWorkday(%s) = %s, want %s", tt.date, Format(got), tt.want)
		}
		if got.After(d) {
			t.Fatalf("RollBackToWorkday(%s) moved forward", tt.date)
		}
		again, err := c.RollBackToWorkday(got)
		if err != nil || !again.Equal(got) {
			t.Fatalf("RollBackToWorkday not idempotent for %s", tt.date)
		}
	}
}

func TestRollBackToWorkdayGivesUp(t *testing.T) {
	t.Parallel()

	leave := []string{}
	start := Date(2026, time.March, 31)
	for i := 0; i <= MaxRollbackDays+1; i++ {
		leave = append(leave, Format(start.AddDate(0, 0, -i)))
	}
	c := testCalendar(t, leave...)

	if _, err := c.RollBackToWorkday(start); err == nil {
		t.Fatal("expected error when every day is unavailable")
	}
}

func TestDailyCapacity(t *testing.T) {
	t.Parallel()
	monday := Date(2026, time.June, 1)
	friday := Date(2026, time.June, 5)

	if !IsFirstWeekday(monday) || IsFirstWeekday(friday) {
		t.Fatal("IsFirstWeekday mismatch")
	}
	if got := DailyCapacityHours(monday); got != 7.5 {
		t.Fatalf("monday capacity = %v, want 7.5", got)
	}
	if got := DailyCapacityHours(friday); got != 8.5 {
		t.Fatalf("friday capacity = %v, want 8.5", got)
	}
	if OpeningHour(monday) != 10 || OpeningHour(friday) != 9 {
		t.Fatal("opening hour mismatch")
	}
}

func TestAddHours(t *testing.T) {
	t.Parallel()
	tests := []struct {
		start, duration float64
		want            string
	}{
		{9, 3.5, "12:30"},
		{10, 1.5, "11:30"},
		{12.5, 0.5, "13:00"},
		{7.5, 0, "07:30"},
	}
	for _, tt := range tests {
		if got := FormatTime(AddHours(tt.start, tt.duration)); got != tt.want {
			t.Fatalf("AddHours(%v, %v) = %s, want %s", tt.start, tt.duration, got, tt.want)
		}
	}
}
