package scheduler

import (
	"time"

	"github.com/seoulmkt/content-scheduler/backend/internal/domain"
)

// Task: 아직 배치되지 않은 작업 하나. 같은 종류의 작업끼리는 서로 바꿔도 무방하다
type Task struct {
	HospitalID   int64           `json:"hospitalID"`
	HospitalName string          `json:"hospitalName"`
	Type         domain.TaskType `json:"type"`
	Label        string          `json:"label"`
	Duration     float64         `json:"duration"`
}

// PlacedTask: 날짜와 시간이 정해진 작업
type PlacedTask struct {
	Task
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	IsReport      bool   `json:"isReport"`
	SequenceIndex int32  `json:"sequenceIndex"`
}

// CapacityAdjustment: 조기출근처럼 하루의 가용 시간을 바꾼 이벤트 기록
type CapacityAdjustment struct {
	Type  domain.TaskType `json:"type"`
	Hours float64         `json:"hours"`
	Label string          `json:"label"`
}

type DaySchedule struct {
	Date          time.Time            `json:"-"`
	DateKey       string               `json:"date"`
	CapacityHours float64              `json:"capacityHours"` // 월요일 7.5, 나머지 8.5
	ExistingHours float64              `json:"existingHours"` // 다른 병원이 이미 사용 중인 시간
	ReservedHours float64              `json:"reservedHours"` // 보고서 자리로 비워 둔 시간
	Adjustments   []CapacityAdjustment `json:"adjustments"`
	Tasks         []PlacedTask         `json:"tasks"`
}

// 스케줄러 파라미터
type Parameters struct {
	ClientDailyCapHours float64 // 한 병원이 하루에 쓸 수 있는 최대 시간
	MainTasksPerDay     int     // 하루 최대 메인 블로그(브랜드/트렌드) 작업 수
	EarlyStartHours     float64 // 조기출근 한 번에 늘어나는 시간
}

func DefaultParameters() *Parameters {
	return &Parameters{
		ClientDailyCapHours: 6,
		MainTasksPerDay:     1,
		EarlyStartHours:     1.5,
	}
}

// Result: 한 번의 스케줄 생성 결과
type Result struct {
	HospitalID      int64          `json:"hospitalID"`
	HospitalName    string         `json:"hospitalName"`
	Year            int32          `json:"year"`
	Month           int32          `json:"month"`
	DueDate         string         `json:"dueDate"`
	ContentDeadline string         `json:"contentDeadline"`
	EarlyStartDates []string       `json:"earlyStartDates"`
	Days            []*DaySchedule `json:"days"`
}

// Rows 는 저장할 행 목록으로 펼친다. SequenceIndex 는 그날 목록에서의 위치와 같다
func (r *Result) Rows() []domain.Schedule {
	rows := []domain.Schedule{}
	for _, day := range r.Days {
		for _, t := range day.Tasks {
			rows = append(rows, domain.Schedule{
				HospitalID:    r.HospitalID,
				Year:          r.Year,
				Month:         r.Month,
				TaskDate:      day.DateKey,
				TaskType:      t.Type,
				TaskName:      t.Label,
				StartTime:     t.StartTime,
				EndTime:       t.EndTime,
				DurationHours: t.Duration,
				IsReport:      t.IsReport,
				SequenceIndex: t.SequenceIndex,
			})
		}
	}
	return rows
}

func (r *Result) TotalHours() float64 {
	total := 0.0
	for _, day := range r.Days {
		total += day.ClientHours()
	}
	return total
}
