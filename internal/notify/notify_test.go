package notify

import (
	"testing"

	"github.com/seoulmkt/content-scheduler/backend/internal/domain"
	"github.com/seoulmkt/content-scheduler/backend/internal/scheduler"
)

func TestNewScheduleGeneratedMessage(t *testing.T) {
	t.Parallel()
	res := &scheduler.Result{
		HospitalName: "강남연세안과",
		Year:         2026,
		Month:        6,
		DueDate:      "2026-06-25",
		Days: []*scheduler.DaySchedule{
			{
				DateKey: "2026-06-02",
				Tasks: []scheduler.PlacedTask{
					{Task: scheduler.Task{Type: domain.TaskTypeEarlyStart, Duration: 1.5}},
					{Task: scheduler.Task{Type: domain.TaskTypeBrand, Duration: 3.5}},
				},
			},
			{
				DateKey: "2026-06-25",
				Tasks: []scheduler.PlacedTask{
					{Task: scheduler.Task{Type: domain.TaskTypeReport, Duration: 2}, IsReport: true},
				},
			},
		},
	}

	msg := NewScheduleGeneratedMessage("team@example.com", res)
	if msg.Type != domain.MailTypeScheduleGenerated || msg.To != "team@example.com" {
		t.Fatalf("unexpected message: %+v", msg)
	}

	data, ok := msg.Data.(domain.ScheduleGeneratedMailData)
	if !ok {
		t.Fatalf("unexpected data type %T", msg.Data)
	}
	// 조기출근은 작업 시간에 포함하지 않는다
	if data.TaskCount != 3 || data.TotalHours != 5.5 || data.EarlyStartDates == nil {
		t.Fatalf("unexpected data: %+v", data)
	}
}

func TestNotifySkipsWithoutRecipient(t *testing.T) {
	t.Parallel()
	p := NewPublisher(nil, "email_queue", "", 0)
	if err := p.NotifyScheduleGenerated(&scheduler.Result{}); err != nil {
		t.Fatalf("expected no error without recipient, got %v", err)
	}
}
