package domain

const MailTypeScheduleGenerated = "schedule_generated"

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type ScheduleGeneratedMailData struct {
	HospitalName    string   `json:"hospitalName"`
	Year            int32    `json:"year"`
	Month           int32    `json:"month"`
	DueDate         string   `json:"dueDate"`
	TaskCount       int      `json:"taskCount"`
	TotalHours      float64  `json:"totalHours"`
	EarlyStartDates []string `json:"earlyStartDates"`
}
