package main

import (
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/seoulmkt/content-scheduler/backend/internal/config"
	"github.com/seoulmkt/content-scheduler/backend/internal/domain"
	"github.com/wneessen/go-mail"
)

// 큐에서 받은 메시지. Data 는 Type 에 따라 다른 구조체로 풀어야 한다
type queuedMail struct {
	Type string          `json:"type"`
	To   string          `json:"to"`
	Data json.RawMessage `json:"data"`
}

func buildMessage(from string, body []byte) (*mail.Msg, error) {
	queued := queuedMail{}
	if err := json.Unmarshal(body, &queued); err != nil {
		return nil, fmt.Errorf("메일 메시지 역직렬화 실패: %w", err)
	}

	m := mail.NewMsg()
	if err := m.From(from); err != nil {
		return nil, fmt.Errorf("발신자 설정 실패: %w", err)
	}
	if err := m.To(queued.To); err != nil {
		return nil, fmt.Errorf("수신자 설정 실패: %w", err)
	}

	switch queued.Type {
	case domain.MailTypeScheduleGenerated:
		data := domain.ScheduleGeneratedMailData{}
		if err := json.Unmarshal(queued.Data, &data); err != nil {
			return nil, fmt.Errorf("메일 데이터 역직렬화 실패: %w", err)
		}
		tmpl, err := template.ParseFiles("./templates/schedule_generated_email.html")
		if err != nil {
			return nil, fmt.Errorf("메일 템플릿 파싱 실패: %w", err)
		}
		if err := m.SetBodyHTMLTemplate(tmpl, data); err != nil {
			return nil, fmt.Errorf("메일 본문 설정 실패: %w", err)
		}
		m.Subject(fmt.Sprintf("[콘텐츠 스케줄] %s %d년 %d월 스케줄 생성 완료", data.HospitalName, data.Year, data.Month))
	default:
		return nil, fmt.Errorf("지원하지 않는 메일 유형: %s", queued.Type)
	}

	return m, nil
}

func main() {
	/**********************************************
	 * logger 생성
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	/**********************************************
	 * 설정 불러오기
	 **********************************************/
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("설정을 불러올 수 없습니다", slog.String("error", err.Error()))
		return
	}

	/**********************************************
	 * 메일 클라이언트 생성
	 **********************************************/
	client, err := mail.NewClient(cfg.Email.SMTP.Host,
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithSSL(),
		mail.WithPort(cfg.Email.SMTP.Port),
		mail.WithUsername(cfg.Email.SMTP.Username),
		mail.WithPassword(cfg.Email.SMTP.Password),
	)
	if err != nil {
		logger.Error("메일 클라이언트를 만들 수 없습니다", slog.String("error", err.Error()))
		return
	}
	defer client.Close()

	// 메일 서버에 실제로 연결되는지 확인
	clientDialCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Email.SMTP.DialTimeout)*time.Second)
	defer cancel()
	if err := client.DialWithContext(clientDialCtx); err != nil {
		logger.Error("메일 서버에 연결할 수 없습니다", slog.String("error", err.Error()))
		return
	}

	/**********************************************
	 * RabbitMQ 연결
	 **********************************************/
	conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
	if err != nil {
		logger.Error("RabbitMQ 에 연결할 수 없습니다", slog.String("error", err.Error()))
		return
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		logger.Error("채널을 만들 수 없습니다", slog.String("error", err.Error()))
		return
	}
	defer ch.Close()

	q, err := ch.QueueDeclare(
		cfg.RabbitMQ.Queue,
		true,  // 영속 큐
		false, // 소비자가 없어도 삭제하지 않음
		false, // 여러 소비자 허용
		false,
		nil,
	)
	if err != nil {
		logger.Error("큐를 선언할 수 없습니다", slog.String("error", err.Error()))
		return
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	msgs, err := ch.Consume(
		q.Name,
		"",    // 소비자 이름은 RabbitMQ 가 정함
		false, // 수동 ack
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		logger.Error("메시지를 소비할 수 없습니다", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	wg := sync.WaitGroup{}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				logger.Info("메시지 수신", slog.String("message", string(msg.Body)))

				m, err := buildMessage(cfg.Email.SMTP.Username, msg.Body)
				if err != nil {
					logger.Error("메일을 만들 수 없습니다", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}

				if err := client.DialAndSend(m); err != nil {
					logger.Error("메일 발송 실패", slog.String("error", err.Error()))
					_ = msg.Nack(false, true) // 다시 큐에 넣음
					continue
				}

				_ = msg.Ack(false)
			}
		}
	}()

	logger.Info("메시지 대기 중... (CTRL+C 로 종료)")
	<-sigChan

	slog.Info("mail worker 종료 중...")
	cancel()
	wg.Wait()
	slog.Info("mail worker 종료 완료")
}
