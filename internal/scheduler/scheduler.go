package scheduler

import (
	"errors"
	"fmt"
	"time"

	"github.com/seoulmkt/content-scheduler/backend/internal/calendar"
	"github.com/seoulmkt/content-scheduler/backend/internal/domain"
)

type Scheduler struct {
	parameters    *Parameters
	hospital      *domain.Hospital
	monthlyTask   *domain.MonthlyTask
	calendar      *calendar.Calendar
	existingHours map[string]float64 // {YYYY-MM-DD: 다른 병원이 이미 쓰고 있는 시간}
}

// New 는 한 병원의 한 달치 스케줄러를 만든다.
// existingHours 는 생성 시작 시점에 읽은 스냅샷이며, 같은 달을 동시에 생성하는 다른 병원의 변경은 반영되지 않는다.
func New(parameters *Parameters, hospital *domain.Hospital, monthlyTask *domain.MonthlyTask, cal *calendar.Calendar, existingHours map[string]float64) (*Scheduler, error) {
	if hospital == nil {
		return nil, errors.New("병원 정보가 없습니다")
	}
	if monthlyTask == nil {
		return nil, errors.New("월별 작업량 정보가 없습니다")
	}
	if monthlyTask.Month < 1 || monthlyTask.Month > 12 {
		return nil, fmt.Errorf("잘못된 월: %d", monthlyTask.Month)
	}
	if parameters == nil {
		parameters = DefaultParameters()
	}
	if existingHours == nil {
		existingHours = map[string]float64{}
	}

	return &Scheduler{
		parameters:    parameters,
		hospital:      hospital,
		monthlyTask:   monthlyTask,
		calendar:      cal,
		existingHours: existingHours,
	}, nil
}

// Schedule 은 스케줄을 생성한다. 업무상 실패는 *domain.ScheduleError 로 반환하며 그 경우 결과는 nil 이다.
func (s *Scheduler) Schedule() (*Result, error) {
	year, month := int(s.monthlyTask.Year), time.Month(s.monthlyTask.Month)
	name := s.hospital.Name

	// 마감일 계산
	deadline, err := resolveDeadline(s.calendar, year, month, s.hospital.BaseDueDay, s.monthlyTask.DeadlinePullDays, s.monthlyTask.WorkStartDate, s.monthlyTask.WorkEndDate)
	if err != nil {
		return nil, deadlineError(name, err)
	}

	// 근무일별 상태 초기화
	board := newBoard(s.parameters, s.calendar.WorkdaysBetween(deadline.WindowStart, deadline.WindowEnd), s.existingHours)

	report := newTask(s.hospital, domain.TaskTypeReport)
	dueDay := board.day(deadline.DueDate)
	if dueDay == nil {
		return nil, &domain.ScheduleError{
			Kind:          domain.ScheduleErrorDueDateNotWorkday,
			HospitalName:  name,
			ShortageHours: 0,
			Tasks:         []string{report.Label},
			Message:       fmt.Sprintf("마감일 %s이 근무일이 아닙니다", calendar.Format(deadline.DueDate)),
		}
	}
	// 보고서가 마지막에 반드시 들어가도록 마감일에 자리를 비워 둔다
	dueDay.ReservedHours = report.Duration

	tasks := buildTaskList(s.hospital, s.monthlyTask)

	// 전체 필요 시간이 전체 가용 시간보다 많으면 바로 실패
	required, available := totalDuration(tasks.All), board.totalRemainingHours()
	if required > available {
		return nil, &domain.ScheduleError{
			Kind:          domain.ScheduleErrorCapacityShortage,
			HospitalName:  name,
			ShortageHours: required - available,
			Tasks:         labels(tasks.All),
			Message:       fmt.Sprintf("콘텐츠 작업 시간 부족: 필요 %g시간, 가능 %g시간", required, available),
		}
	}

	// 상위노출 지정일 배치
	others := tasks.Other
	if len(s.hospital.SanwiNosulDays) > 0 {
		sanwi, rest := []Task{}, []Task{}
		for _, t := range tasks.Other {
			if t.Type == domain.TaskTypeSanwiNosul {
				sanwi = append(sanwi, t)
			} else {
				rest = append(rest, t)
			}
		}
		others = append(placeFixedSanwiNosul(board, year, month, s.hospital.SanwiNosulDays, sanwi), rest...)
	}

	// 메인 블로그 작업을 먼저, 나머지 작업을 그 다음에 배치
	unplaced := placeInOrder(board, tasks.Main)
	unplaced = append(unplaced, placeInOrder(board, others)...)

	// 남은 작업은 조기출근으로 시간을 늘려 다시 배치
	remaining := recoverOverflow(board, s.hospital.ID, name, unplaced)
	if len(remaining) > 0 {
		shortage := totalDuration(remaining)
		return nil, &domain.ScheduleError{
			Kind:          domain.ScheduleErrorCapacityShortage,
			HospitalName:  name,
			ShortageHours: shortage,
			Tasks:         labels(remaining),
			Message:       fmt.Sprintf("배치하지 못한 작업이 있습니다: %d건, %g시간 부족", len(remaining), shortage),
		}
	}

	if err := finalizeReport(board, dueDay, report); err != nil {
		return nil, &domain.ScheduleError{
			Kind:         domain.ScheduleErrorDueDateNotWorkday,
			HospitalName: name,
			Tasks:        []string{report.Label},
			Message:      err.Error(),
		}
	}
	board.assignSequence()

	result := &Result{
		HospitalID:      s.hospital.ID,
		HospitalName:    name,
		Year:            s.monthlyTask.Year,
		Month:           s.monthlyTask.Month,
		DueDate:         calendar.Format(deadline.DueDate),
		ContentDeadline: calendar.Format(deadline.ContentDeadline),
		EarlyStartDates: []string{},
		Days:            board.days,
	}
	for _, day := range board.days {
		if day.hasEarlyStart() {
			result.EarlyStartDates = append(result.EarlyStartDates, day.DateKey)
		}
	}

	return result, nil
}
