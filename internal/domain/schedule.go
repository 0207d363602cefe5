package domain

import "time"

// Schedule 은 schedules 테이블의 한 행
type Schedule struct {
	ID            int64     `json:"id"`
	HospitalID    int64     `json:"hospitalID"`
	HospitalName  string    `json:"hospitalName,omitempty"`
	HospitalColor string    `json:"hospitalColor,omitempty"`
	Year          int32     `json:"year"`
	Month         int32     `json:"month"`
	TaskDate      string    `json:"taskDate"` // YYYY-MM-DD
	TaskType      TaskType  `json:"taskType"`
	TaskName      string    `json:"taskName"`
	StartTime     string    `json:"startTime"` // HH:MM
	EndTime       string    `json:"endTime"`
	DurationHours float64   `json:"durationHours"`
	IsReport      bool      `json:"isReport"`
	IsCompleted   bool      `json:"isCompleted"`
	SequenceIndex int32     `json:"sequenceIndex"`
	CreatedAt     time.Time `json:"createdAt"`
	Version       int32     `json:"-"`
}
