package domain

type ScheduleErrorKind string

const (
	ScheduleErrorDeadlineUnresolvable ScheduleErrorKind = "deadline_unresolvable"
	ScheduleErrorDueDateNotWorkday    ScheduleErrorKind = "due_date_not_workday"
	ScheduleErrorCapacityShortage     ScheduleErrorKind = "capacity_shortage"
	ScheduleErrorInvalidInput         ScheduleErrorKind = "invalid_input"
)

// ScheduleError 는 사용자가 작업량/연차 등을 조정해서 해결해야 하는 업무 오류
type ScheduleError struct {
	Kind          ScheduleErrorKind `json:"kind"`
	HospitalName  string            `json:"hospitalName"`
	ShortageHours float64           `json:"shortageHours"`
	Tasks         []string          `json:"tasks"`
	Message       string            `json:"message"`
}

func (e *ScheduleError) Error() string {
	return e.Message
}
