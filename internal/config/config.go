package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Server      struct {
		Port            string `env:"PORT" envDefault:"3000"`
		ReadTimeout     int    `env:"READ_TIMEOUT" envDefault:"10"`
		WriteTimeout    int    `env:"WRITE_TIMEOUT" envDefault:"30"`
		IdleTimeout     int    `env:"IDLE_TIMEOUT" envDefault:"60"`
		ShutdownTimeout int    `env:"SHUTDOWN_TIMEOUT" envDefault:"10"`
	} `envPrefix:"SERVER_"`
	Database struct {
		DSN                string `env:"DSN,required"`
		ConnectTimeout     int    `env:"CONNECT_TIMEOUT" envDefault:"10"`
		QueryTimeout       int    `env:"QUERY_TIMEOUT" envDefault:"10"`
		TransactionTimeout int    `env:"TRANSACTION_TIMEOUT" envDefault:"20"`
		MaxOpenConns       int    `env:"MAX_OPEN_CONNS" envDefault:"10"`
		MaxIdleConns       int    `env:"MAX_IDLE_CONNS" envDefault:"10"`
		MaxIdleTime        int    `env:"MAX_IDLE_TIME" envDefault:"60"`
	} `envPrefix:"DATABASE_"`
	Redis struct {
		Host           string `env:"HOST" envDefault:"localhost"`
		Port           int    `env:"PORT" envDefault:"6379"`
		Password       string `env:"PASSWORD"`
		ConnectTimeout int    `env:"CONNECT_TIMEOUT" envDefault:"10"`
		LockTTL        int    `env:"LOCK_TTL" envDefault:"60"` // 생성 잠금 유지 시간 (초)
	} `envPrefix:"REDIS_"`
	RabbitMQ struct {
		DSN            string `env:"DSN,required"`
		PublishTimeout int    `env:"PUBLISH_TIMEOUT" envDefault:"10"`
		Queue          string `env:"QUEUE" envDefault:"email_queue"`
	} `envPrefix:"RABBITMQ_"`
	Email struct {
		NotifyTo string `env:"NOTIFY_TO"` // 비어 있으면 생성 알림을 보내지 않음
		SMTP     struct {
			Username    string `env:"USERNAME"`
			Password    string `env:"PASSWORD"`
			Host        string `env:"HOST"`
			Port        int    `env:"PORT" envDefault:"465"`
			DialTimeout int    `env:"DIAL_TIMEOUT" envDefault:"10"`
		} `envPrefix:"SMTP_"`
	} `envPrefix:"EMAIL_"`
	Scheduler struct {
		ClientDailyCapHours float64 `env:"CLIENT_DAILY_CAP_HOURS" envDefault:"6"`
		MainTasksPerDay     int     `env:"MAIN_TASKS_PER_DAY" envDefault:"1"`
		EarlyStartHours     float64 `env:"EARLY_START_HOURS" envDefault:"1.5"`
	} `envPrefix:"SCHEDULER_"`
	AutoGenerate struct {
		Enabled bool   `env:"ENABLED" envDefault:"false"`
		Spec    string `env:"SPEC" envDefault:"0 6 20 * *"` // 매월 20일 06:00 에 다음 달 생성
		RPS     int    `env:"RPS" envDefault:"2"`           // 병원 단위 생성 속도 제한
	} `envPrefix:"AUTO_GENERATE_"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		aggErr := env.AggregateError{}
		if ok := errors.As(err, &aggErr); ok {
			// 첫 번째 오류만 반환해 로그를 깔끔하게 유지
			return nil, aggErr.Errors[0]
		}
		return nil, err
	}

	return cfg, nil
}
