package scheduler

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/seoulmkt/content-scheduler/backend/internal/calendar"
	"github.com/seoulmkt/content-scheduler/backend/internal/domain"
)

// placeFixedSanwiNosul 은 지정일마다 상위노출 하나를 그날에 넣는다.
// 그날이 근무일이 아니거나 시간이 모자라면 작업을 돌려주어 일반 배치로 넘긴다.
func placeFixedSanwiNosul(b *Board, year int, month time.Month, reservedDays []int32, pending []Task) []Task {
	days := slices.Clone(reservedDays)
	slices.Sort(days)
	days = slices.Compact(days)

	returned := []Task{}
	for _, dom := range days {
		if len(pending) == 0 {
			break
		}
		task := pending[0]
		pending = pending[1:]

		var day *DaySchedule
		if int(dom) >= 1 && int(dom) <= calendar.DaysIn(year, month) {
			day = b.day(calendar.Date(year, month, int(dom)))
		}

		if day == nil || !b.fits(day, task) {
			returned = append(returned, task)
			continue
		}
		b.place(day, task, false)
	}

	return append(returned, pending...)
}

// placeInOrder 는 날짜를 한 방향으로만 훑으며 앞에서부터 들어가는 만큼 넣는다.
// 현재 작업이 그날 들어가지 않으면 뒤의 작업을 당겨 넣지 않고 다음 날로 넘어간다.
func placeInOrder(b *Board, tasks []Task) []Task {
	idx := 0
	for _, day := range b.days {
		if idx >= len(tasks) {
			break
		}
		for idx < len(tasks) && b.fits(day, tasks[idx]) {
			b.place(day, tasks[idx], false)
			idx++
		}
	}
	return tasks[idx:]
}

// recoverOverflow 는 남은 작업 시간만큼 조기출근 블록을 넣고 작업마다 들어갈 수 있는 첫 날에 다시 배치한다.
// 그래도 못 넣은 작업을 반환한다.
func recoverOverflow(b *Board, hospitalID int64, hospitalName string, unplaced []Task) []Task {
	if len(unplaced) == 0 {
		return unplaced
	}

	needed := int(math.Ceil(totalDuration(unplaced) / b.params.EarlyStartHours))
	injected := []*DaySchedule{}
	for _, day := range b.days {
		if len(injected) >= needed {
			break
		}
		if calendar.IsFirstWeekday(day.Date) || day.hasEarlyStart() {
			continue
		}
		covered := float64(len(injected)) * b.params.EarlyStartHours
		label := fmt.Sprintf("%s (%s)", domain.TaskDefinitions[domain.TaskTypeEarlyStart].Label, labelAt(unplaced, covered))
		b.injectEarlyStart(day, hospitalID, hospitalName, label)
		injected = append(injected, day)
	}

	remaining := []Task{}
	for _, task := range unplaced {
		placed := false
		for _, day := range b.days {
			if b.fits(day, task) {
				b.place(day, task, false)
				placed = true
				break
			}
		}
		if !placed {
			remaining = append(remaining, task)
		}
	}

	// 늘어난 시간을 쓰지 않은 날은 조기출근을 취소
	for _, day := range injected {
		if day.ExistingHours+day.ClientHours()+day.ReservedHours <= day.CapacityHours {
			b.removeEarlyStart(day)
		}
	}

	return remaining
}

// labelAt 은 남은 작업을 이어 붙였을 때 offset 시간 지점에 있는 작업 이름
func labelAt(tasks []Task, offset float64) string {
	acc := 0.0
	for _, t := range tasks {
		acc += t.Duration
		if offset < acc {
			return t.Label
		}
	}
	return tasks[len(tasks)-1].Label
}

// finalizeReport 는 마감일에 비워 둔 자리를 풀고 보고서를 그날 마지막 작업으로 넣는다
func finalizeReport(b *Board, dueDay *DaySchedule, report Task) error {
	if dueDay == nil {
		return fmt.Errorf("마감일이 근무일 목록에 없습니다")
	}
	dueDay.ReservedHours = 0
	b.place(dueDay, report, true)
	return nil
}
