package utils

import (
	"errors"
	"fmt"
	"slices"

	"github.com/seoulmkt/content-scheduler/backend/internal/calendar"
	"github.com/seoulmkt/content-scheduler/backend/internal/domain"
)

func ValidateSanwiNosulDays(days []int32) error {
	if len(days) > domain.MaxSanwiNosulDays {
		return fmt.Errorf("상위노출 지정일은 최대 %d개까지 설정할 수 있습니다", domain.MaxSanwiNosulDays)
	}

	seen := make(map[int32]bool)
	for _, day := range days {
		if day < 1 || day > 31 {
			return fmt.Errorf("상위노출 지정일 %d 은 1~31 사이여야 합니다", day)
		}
		if seen[day] {
			return fmt.Errorf("상위노출 지정일 %d 이 중복되었습니다", day)
		}
		seen[day] = true
	}

	return nil
}

// NormalizeSanwiNosulDays 는 정렬된 복사본을 돌려준다
func NormalizeSanwiNosulDays(days []int32) []int32 {
	out := append([]int32{}, days...)
	slices.Sort(out)
	return out
}

// ParseWorkPeriod 는 시작일과 종료일이 모두 있거나 모두 없을 때만 허용한다
func ParseWorkPeriod(start, end string) (*domain.MonthlyTask, error) {
	mt := &domain.MonthlyTask{}
	if start == "" && end == "" {
		return mt, nil
	}
	if start == "" || end == "" {
		return nil, errors.New("작업 기간은 시작일과 종료일을 모두 입력해야 합니다")
	}

	s, err := calendar.Parse(start)
	if err != nil {
		return nil, fmt.Errorf("작업 시작일 형식이 잘못되었습니다: %s", start)
	}
	e, err := calendar.Parse(end)
	if err != nil {
		return nil, fmt.Errorf("작업 종료일 형식이 잘못되었습니다: %s", end)
	}
	if s.After(e) {
		return nil, errors.New("작업 시작일이 종료일보다 늦을 수 없습니다")
	}

	mt.WorkStartDate, mt.WorkEndDate = &s, &e
	return mt, nil
}

// ValidateMoveTarget 은 수동으로 옮길 날짜가 근무일인지 확인한다
func ValidateMoveTarget(cal *calendar.Calendar, date string) error {
	t, err := calendar.Parse(date)
	if err != nil {
		return fmt.Errorf("날짜 형식이 잘못되었습니다: %s", date)
	}
	if cal.IsNonWorkday(t) {
		return fmt.Errorf("%s 은 근무일이 아닙니다", date)
	}
	return nil
}
