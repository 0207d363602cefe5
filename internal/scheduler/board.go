package scheduler

import (
	"math"
	"time"

	"github.com/seoulmkt/content-scheduler/backend/internal/calendar"
	"github.com/seoulmkt/content-scheduler/backend/internal/domain"
)

// Board 는 한 번의 생성 동안 각 단계가 차례로 고쳐 쓰는 날짜별 배치 상태
type Board struct {
	params *Parameters
	days   []*DaySchedule
	index  map[string]int // YYYY-MM-DD -> days 의 위치
}

func newBoard(params *Parameters, workdays []time.Time, existingHours map[string]float64) *Board {
	b := &Board{
		params: params,
		days:   make([]*DaySchedule, 0, len(workdays)),
		index:  make(map[string]int, len(workdays)),
	}

	for _, d := range workdays {
		key := calendar.Format(d)
		b.index[key] = len(b.days)
		b.days = append(b.days, &DaySchedule{
			Date:          d,
			DateKey:       key,
			CapacityHours: calendar.DailyCapacityHours(d),
			ExistingHours: existingHours[key],
			Adjustments:   []CapacityAdjustment{},
			Tasks:         []PlacedTask{},
		})
	}

	return b
}

func (b *Board) day(t time.Time) *DaySchedule {
	i, ok := b.index[calendar.Format(t)]
	if !ok {
		return nil
	}
	return b.days[i]
}

// AvailableHours 는 기본 가용 시간에 조기출근 등 조정분을 더한 값
func (d *DaySchedule) AvailableHours() float64 {
	hours := d.CapacityHours
	for _, adj := range d.Adjustments {
		hours += adj.Hours
	}
	return hours
}

// OpeningHour 는 조기출근만큼 앞당긴 그날의 업무 시작 시각
func (d *DaySchedule) OpeningHour() float64 {
	hour := calendar.OpeningHour(d.Date)
	for _, adj := range d.Adjustments {
		if adj.Type == domain.TaskTypeEarlyStart {
			hour -= adj.Hours
		}
	}
	return hour
}

// ClientHours 는 이 병원이 그날 배치한 작업 시간 (조기출근 표시는 제외)
func (d *DaySchedule) ClientHours() float64 {
	hours := 0.0
	for _, t := range d.Tasks {
		if t.Type == domain.TaskTypeEarlyStart {
			continue
		}
		hours += t.Duration
	}
	return hours
}

func (d *DaySchedule) RemainingHours() float64 {
	return d.AvailableHours() - d.ExistingHours - d.ClientHours() - d.ReservedHours
}

func (d *DaySchedule) mainTaskCount() int {
	cnt := 0
	for _, t := range d.Tasks {
		if t.Type.IsMain() {
			cnt++
		}
	}
	return cnt
}

func (d *DaySchedule) hasEarlyStart() bool {
	for _, adj := range d.Adjustments {
		if adj.Type == domain.TaskTypeEarlyStart {
			return true
		}
	}
	return false
}

// nextStartHour 는 다른 병원 작업과 이미 배치된 작업 뒤의 시작 시각
func (d *DaySchedule) nextStartHour() float64 {
	return d.OpeningHour() + d.ExistingHours + d.ClientHours()
}

// fits 는 세 가지 제약(메인 작업 개수, 병원별 하루 상한, 남은 시간)을 모두 만족하는지 확인
func (b *Board) fits(d *DaySchedule, t Task) bool {
	if t.Type.IsMain() && d.mainTaskCount() >= b.params.MainTasksPerDay {
		return false
	}
	if d.ClientHours()+d.ReservedHours+t.Duration > b.params.ClientDailyCapHours {
		return false
	}
	return t.Duration <= d.RemainingHours()
}

func (b *Board) place(d *DaySchedule, t Task, isReport bool) {
	start := d.nextStartHour()
	d.Tasks = append(d.Tasks, PlacedTask{
		Task:      t,
		StartTime: calendar.FormatHour(start),
		EndTime:   calendar.FormatTime(calendar.AddHours(start, t.Duration)),
		IsReport:  isReport,
	})
}

// injectEarlyStart 는 개장 시각 전에 조기출근 블록을 넣고 그날 가용 시간을 늘린다
func (b *Board) injectEarlyStart(d *DaySchedule, hospitalID int64, hospitalName, label string) {
	hours := b.params.EarlyStartHours
	opening := calendar.OpeningHour(d.Date)

	d.Adjustments = append(d.Adjustments, CapacityAdjustment{
		Type:  domain.TaskTypeEarlyStart,
		Hours: hours,
		Label: label,
	})

	early := PlacedTask{
		Task: Task{
			HospitalID:   hospitalID,
			HospitalName: hospitalName,
			Type:         domain.TaskTypeEarlyStart,
			Label:        label,
			Duration:     hours,
		},
		StartTime: calendar.FormatHour(opening - hours),
		EndTime:   calendar.FormatHour(opening),
	}
	d.Tasks = append([]PlacedTask{early}, d.Tasks...)
}

// removeEarlyStart 는 늘린 시간을 쓰지 않은 날의 조기출근을 되돌린다
func (b *Board) removeEarlyStart(d *DaySchedule) {
	adjustments := d.Adjustments[:0]
	for _, adj := range d.Adjustments {
		if adj.Type != domain.TaskTypeEarlyStart {
			adjustments = append(adjustments, adj)
		}
	}
	d.Adjustments = adjustments

	tasks := d.Tasks[:0]
	for _, t := range d.Tasks {
		if t.Type != domain.TaskTypeEarlyStart {
			tasks = append(tasks, t)
		}
	}
	d.Tasks = tasks
}

// totalRemainingHours 는 음수인 날을 0 으로 보고 남은 시간을 합한다
func (b *Board) totalRemainingHours() float64 {
	total := 0.0
	for _, d := range b.days {
		total += math.Max(0, d.RemainingHours())
	}
	return total
}

func (b *Board) assignSequence() {
	for _, d := range b.days {
		for i := range d.Tasks {
			d.Tasks[i].SequenceIndex = int32(i)
		}
	}
}
