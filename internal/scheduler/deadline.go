package scheduler

import (
	"errors"
	"fmt"
	"time"

	"github.com/seoulmkt/content-scheduler/backend/internal/calendar"
	"github.com/seoulmkt/content-scheduler/backend/internal/domain"
)

// Deadline: 마감일과 작업을 배치할 수 있는 구간
type Deadline struct {
	DueDate         time.Time
	ContentDeadline time.Time // 마감일 하루 전 근무일 (참고용)
	WindowStart     time.Time
	WindowEnd       time.Time
}

var (
	errDeadlineUnresolvable = errors.New("마감일을 계산할 수 없습니다")
	errInvalidWorkPeriod    = errors.New("작업 기간이 올바르지 않습니다")
)

// resolveDeadline 은 기본 마감일에서 당김 일수를 빼고 근무일로 되돌린다.
// 작업 기간이 지정되어 있으면 종료일을 그대로 마감일로 쓴다.
func resolveDeadline(cal *calendar.Calendar, year int, month time.Month, baseDueDay, pullDays int32, start, end *time.Time) (*Deadline, error) {
	if start != nil && end != nil {
		windowStart, windowEnd := calendar.Normalize(*start), calendar.Normalize(*end)
		if windowStart.After(windowEnd) {
			return nil, fmt.Errorf("%w: 시작일 %s 이 종료일 %s 보다 늦습니다", errInvalidWorkPeriod, calendar.Format(windowStart), calendar.Format(windowEnd))
		}

		return &Deadline{
			DueDate:         windowEnd,
			ContentDeadline: contentDeadline(cal, windowStart, windowEnd),
			WindowStart:     windowStart,
			WindowEnd:       windowEnd,
		}, nil
	}

	day := int(baseDueDay - pullDays)
	if day < 1 {
		return nil, fmt.Errorf("%w: 기본 마감일 %d일에서 %d일을 당기면 %d월을 벗어납니다", errDeadlineUnresolvable, baseDueDay, pullDays, month)
	}
	// 2월 30일 같은 날짜는 그 달 마지막 날로 본다
	day = min(day, calendar.DaysIn(year, month))

	dueDate, err := cal.RollBackToWorkday(calendar.Date(year, month, day))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errDeadlineUnresolvable, err)
	}
	if dueDate.Month() != month || dueDate.Year() != year {
		return nil, fmt.Errorf("%w: %d월 %d일 이전에 근무일이 없습니다", errDeadlineUnresolvable, month, day)
	}

	windowStart := calendar.Date(year, month, 1)
	return &Deadline{
		DueDate:         dueDate,
		ContentDeadline: contentDeadline(cal, windowStart, dueDate),
		WindowStart:     windowStart,
		WindowEnd:       dueDate,
	}, nil
}

// contentDeadline 은 마감일 하루 전 근무일. 구간 안에 없으면 마감일 자체
func contentDeadline(cal *calendar.Calendar, windowStart, dueDate time.Time) time.Time {
	d, err := cal.RollBackToWorkday(dueDate.AddDate(0, 0, -1))
	if err != nil || d.Before(windowStart) {
		return dueDate
	}
	return d
}

func deadlineError(hospitalName string, err error) *domain.ScheduleError {
	kind := domain.ScheduleErrorDeadlineUnresolvable
	if errors.Is(err, errInvalidWorkPeriod) {
		kind = domain.ScheduleErrorInvalidInput
	}
	return &domain.ScheduleError{
		Kind:          kind,
		HospitalName:  hospitalName,
		ShortageHours: 0,
		Tasks:         []string{},
		Message:       err.Error(),
	}
}
