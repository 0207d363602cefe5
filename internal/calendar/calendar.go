package calendar

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// 실행 환경의 로컬 타임존과 상관없이 모든 날짜는 한국 시간 기준의 순수한 날짜로 취급한다
var KST = time.FixedZone("KST", 9*60*60)

const DateLayout = "2006-01-02"

const (
	defaultOpeningHour   = 9.0
	mondayOpeningHour    = 10.0
	defaultCapacityHours = 8.5
	mondayCapacityHours  = 7.5

	// 마감일을 되돌릴 때 최대 몇 일까지 거슬러 올라갈지
	MaxRollbackDays = 31
)

var ErrNoWorkday = errors.New("근무일을 찾을 수 없습니다")

func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, KST)
}

// Normalize 는 시간 정보를 버리고 KST 기준 날짜만 남긴다
func Normalize(t time.Time) time.Time {
	t = t.In(KST)
	return Date(t.Year(), t.Month(), t.Day())
}

func Format(t time.Time) string {
	return t.In(KST).Format(DateLayout)
}

func Parse(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, KST)
}

func DaysIn(year int, month time.Month) int {
	return Date(year, month+1, 0).Day()
}

type Calendar struct {
	holidays *HolidayTable
	leave    map[string]struct{}
}

// New 는 공휴일 테이블과 연차/휴가 날짜 목록으로 달력을 만든다. leaveDates 는 변경하지 않는다.
func New(holidays *HolidayTable, leaveDates []string) (*Calendar, error) {
	c := &Calendar{
		holidays: holidays,
		leave:    make(map[string]struct{}, len(leaveDates)),
	}

	for _, s := range leaveDates {
		d, err := Parse(s)
		if err != nil {
			return nil, fmt.Errorf("잘못된 연차 날짜 %q: %w", s, err)
		}
		c.leave[Format(d)] = struct{}{}
	}

	return c, nil
}

// IsNonWorkday 는 주말, 공휴일, 연차/휴가일이면 true
func (c *Calendar) IsNonWorkday(t time.Time) bool {
	t = Normalize(t)

	if wd := t.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return true
	}
	if c.holidays.IsHoliday(t) {
		return true
	}
	_, onLeave := c.leave[Format(t)]
	return onLeave
}

// Workdays 는 해당 월의 근무일을 오름차순으로 반환
func (c *Calendar) Workdays(year int, month time.Month) []time.Time {
	return c.WorkdaysBetween(Date(year, month, 1), Date(year, month, DaysIn(year, month)))
}

// WorkdaysBetween 은 [from, to] 구간의 근무일을 오름차순으로 반환
func (c *Calendar) WorkdaysBetween(from, to time.Time) []time.Time {
	from, to = Normalize(from), Normalize(to)

	workdays := []time.Time{}
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if !c.IsNonWorkday(d) {
			workdays = append(workdays, d)
		}
	}
	return workdays
}

// RollBackToWorkday 는 근무일이 나올 때까지 하루씩 앞으로 당긴다
func (c *Calendar) RollBackToWorkday(t time.Time) (time.Time, error) {
	d := Normalize(t)
	for i := 0; i <= MaxRollbackDays; i++ {
		if !c.IsNonWorkday(d) {
			return d, nil
		}
		d = d.AddDate(0, 0, -1)
	}
	return time.Time{}, fmt.Errorf("%s 이전 %d일: %w", Format(t), MaxRollbackDays, ErrNoWorkday)
}

// IsFirstWeekday 는 월요일인지 확인 (월요일은 한 시간 늦게 시작)
func IsFirstWeekday(t time.Time) bool {
	return Normalize(t).Weekday() == time.Monday
}

func DailyCapacityHours(t time.Time) float64 {
	if IsFirstWeekday(t) {
		return mondayCapacityHours
	}
	return defaultCapacityHours
}

func OpeningHour(t time.Time) float64 {
	if IsFirstWeekday(t) {
		return mondayOpeningHour
	}
	return defaultOpeningHour
}

// AddHours 는 9시 + 3.5시간 = 12시 30분 처럼 소수 시간을 더한다
func AddHours(startHour, durationHours float64) (hour, minute int) {
	totalMinutes := int(math.Round(startHour*60 + durationHours*60))
	return totalMinutes / 60, totalMinutes % 60
}

func FormatTime(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// FormatHour 는 소수 시간을 HH:MM 로 변환
func FormatHour(h float64) string {
	return FormatTime(AddHours(h, 0))
}
