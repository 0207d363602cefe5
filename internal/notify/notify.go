package notify

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/seoulmkt/content-scheduler/backend/internal/domain"
	"github.com/seoulmkt/content-scheduler/backend/internal/scheduler"
)

// Publisher 는 메일 메시지를 rabbitmq 큐에 넣고, 실제 발송은 cmd/mail 이 한다
type Publisher struct {
	channel *amqp.Channel
	queue   string
	to      string
	timeout time.Duration
}

func NewPublisher(ch *amqp.Channel, queue, to string, timeout time.Duration) *Publisher {
	return &Publisher{
		channel: ch,
		queue:   queue,
		to:      to,
		timeout: timeout,
	}
}

func (p *Publisher) NotifyScheduleGenerated(res *scheduler.Result) error {
	// 수신자가 설정되지 않았으면 보내지 않는다
	if p.to == "" {
		return nil
	}

	body, err := json.Marshal(NewScheduleGeneratedMessage(p.to, res))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	return p.channel.PublishWithContext(
		ctx,
		"",
		p.queue,
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}

func NewScheduleGeneratedMessage(to string, res *scheduler.Result) *domain.MailMessage {
	earlyStarts := res.EarlyStartDates
	if earlyStarts == nil {
		earlyStarts = []string{}
	}

	return &domain.MailMessage{
		Type: domain.MailTypeScheduleGenerated,
		To:   to,
		Data: domain.ScheduleGeneratedMailData{
			HospitalName:    res.HospitalName,
			Year:            res.Year,
			Month:           res.Month,
			DueDate:         res.DueDate,
			TaskCount:       len(res.Rows()),
			TotalHours:      res.TotalHours(),
			EarlyStartDates: earlyStarts,
		},
	}
}
