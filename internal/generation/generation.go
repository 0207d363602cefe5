package generation

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/seoulmkt/content-scheduler/backend/internal/calendar"
	"github.com/seoulmkt/content-scheduler/backend/internal/domain"
	"github.com/seoulmkt/content-scheduler/backend/internal/scheduler"
)

var (
	ErrHospitalNotFound    = fmt.Errorf("병원을 찾을 수 없습니다: %w", sql.ErrNoRows)
	ErrMonthlyTaskNotFound = fmt.Errorf("해당 월의 작업량 데이터가 없습니다: %w", sql.ErrNoRows)
)

// Store 는 생성에 필요한 외부 데이터를 읽고 결과를 저장한다
type Store interface {
	GetHospitalByID(id int64) (*domain.Hospital, error)
	GetMonthlyTask(hospitalID int64, year int32, month int32) (*domain.MonthlyTask, error)
	GetHolidaysBetween(from string, to string) ([]*domain.Holiday, error)
	GetVacationDatesBetween(from string, to string) ([]string, error)
	GetExistingHoursBetween(from string, to string, hospitalID int64, year int32, month int32) (map[string]float64, error)
	ReplaceSchedules(hospitalID int64, year int32, month int32, rows []domain.Schedule) error
}

// Locker 는 같은 달의 생성 요청을 한 번에 하나씩만 실행되도록 막는다
type Locker interface {
	Lock(key string) (unlock func(), err error)
}

type Notifier interface {
	NotifyScheduleGenerated(result *scheduler.Result) error
}

type Service struct {
	store      Store
	locker     Locker
	notifier   Notifier
	parameters *scheduler.Parameters
}

// NewService 에서 locker 와 notifier 는 nil 이어도 된다
func NewService(store Store, locker Locker, notifier Notifier, parameters *scheduler.Parameters) *Service {
	if parameters == nil {
		parameters = scheduler.DefaultParameters()
	}
	return &Service{
		store:      store,
		locker:     locker,
		notifier:   notifier,
		parameters: parameters,
	}
}

func LockKey(year, month int32) string {
	return fmt.Sprintf("schedule_generate_%04d_%02d", year, month)
}

// Generate 는 스케줄을 생성하고 기존 스케줄을 통째로 교체한다.
// 실패하면 아무것도 저장하지 않는다. 업무 오류는 *domain.ScheduleError 로 반환한다.
func (s *Service) Generate(hospitalID int64, year, month int32) (*scheduler.Result, error) {
	if s.locker != nil {
		unlock, err := s.locker.Lock(LockKey(year, month))
		if err != nil {
			return nil, err
		}
		defer unlock()
	}

	res, err := s.compute(hospitalID, year, month)
	if err != nil {
		return nil, err
	}

	if err := s.store.ReplaceSchedules(hospitalID, year, month, res.Rows()); err != nil {
		return nil, fmt.Errorf("스케줄 저장 실패: %w", err)
	}

	slog.Info("스케줄 생성 완료",
		"hospital", res.HospitalName,
		"year", year,
		"month", month,
		"dueDate", res.DueDate,
		"tasks", len(res.Rows()),
		"earlyStarts", len(res.EarlyStartDates),
	)

	if s.notifier != nil {
		// 알림 실패로 이미 저장된 스케줄을 되돌리지는 않는다
		if err := s.notifier.NotifyScheduleGenerated(res); err != nil {
			slog.Error("스케줄 생성 알림 실패", "hospital", res.HospitalName, "error", err)
		}
	}

	return res, nil
}

// Preview 는 저장하지 않고 생성 결과만 계산한다
func (s *Service) Preview(hospitalID int64, year, month int32) (*scheduler.Result, error) {
	return s.compute(hospitalID, year, month)
}

func (s *Service) compute(hospitalID int64, year, month int32) (*scheduler.Result, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("잘못된 월: %d", month)
	}

	hospital, err := s.store.GetHospitalByID(hospitalID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrHospitalNotFound
		}
		return nil, err
	}

	monthlyTask, err := s.store.GetMonthlyTask(hospitalID, year, month)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMonthlyTaskNotFound
		}
		return nil, err
	}

	from, to := fetchRange(monthlyTask)

	holidays, err := s.store.GetHolidaysBetween(from, to)
	if err != nil {
		return nil, err
	}
	vacations, err := s.store.GetVacationDatesBetween(from, to)
	if err != nil {
		return nil, err
	}
	// 이번에 교체할 행을 뺀 사용 시간. 이 시점의 스냅샷이다
	existingHours, err := s.store.GetExistingHoursBetween(from, to, hospitalID, year, month)
	if err != nil {
		return nil, err
	}

	holidayList := make([]domain.Holiday, 0, len(holidays))
	for _, h := range holidays {
		holidayList = append(holidayList, *h)
	}
	holidayTable, err := calendar.NewHolidayTable(holidayList)
	if err != nil {
		return nil, err
	}
	cal, err := calendar.New(holidayTable, vacations)
	if err != nil {
		return nil, err
	}

	sch, err := scheduler.New(s.parameters, hospital, monthlyTask, cal, existingHours)
	if err != nil {
		return nil, err
	}

	res, err := sch.Schedule()
	if err != nil {
		var se *domain.ScheduleError
		if errors.As(err, &se) {
			slog.Warn("스케줄 생성 불가", "hospital", se.HospitalName, "kind", se.Kind, "shortageHours", se.ShortageHours, "message", se.Message)
		}
		return nil, err
	}

	return res, nil
}

// fetchRange 는 해당 월과 작업 기간을 모두 덮는 조회 구간
func fetchRange(mt *domain.MonthlyTask) (string, string) {
	from := calendar.Date(int(mt.Year), time.Month(mt.Month), 1)
	to := calendar.Date(int(mt.Year), time.Month(mt.Month), calendar.DaysIn(int(mt.Year), time.Month(mt.Month)))

	if mt.HasWorkPeriod() {
		if start := calendar.Normalize(*mt.WorkStartDate); start.Before(from) {
			from = start
		}
		if end := calendar.Normalize(*mt.WorkEndDate); end.After(to) {
			to = end
		}
	}

	return calendar.Format(from), calendar.Format(to)
}
