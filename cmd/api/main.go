package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/seoulmkt/content-scheduler/backend/internal/autogen"
	"github.com/seoulmkt/content-scheduler/backend/internal/config"
	"github.com/seoulmkt/content-scheduler/backend/internal/generation"
	"github.com/seoulmkt/content-scheduler/backend/internal/handler"
	"github.com/seoulmkt/content-scheduler/backend/internal/lock"
	"github.com/seoulmkt/content-scheduler/backend/internal/notify"
	"github.com/seoulmkt/content-scheduler/backend/internal/repository"
	"github.com/seoulmkt/content-scheduler/backend/internal/scheduler"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	/**********************************************
	 * logger 생성
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	/**********************************************
	 * 설정 불러오기
	 **********************************************/
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("설정을 불러올 수 없습니다", "error", err)
		return
	}

	/**********************************************
	 * 데이터베이스 연결
	 **********************************************/
	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("데이터베이스 연결 풀을 만들 수 없습니다", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open 은 연결 풀만 만들기 때문에 실제 연결은 ping 으로 확인한다
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("데이터베이스에 연결할 수 없습니다", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, dbpool)

	/**********************************************
	 * rabbitmq 연결
	 **********************************************/
	conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
	if err != nil {
		logger.Error("rabbitmq 에 연결할 수 없습니다", "error", err)
		return
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		logger.Error("채널을 만들 수 없습니다", "error", err)
		return
	}
	defer ch.Close()

	_, err = ch.QueueDeclare(
		cfg.RabbitMQ.Queue,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		logger.Error("큐를 선언할 수 없습니다", "error", err)
		return
	}

	/**********************************************
	 * redis 연결
	 **********************************************/
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       0,
	})
	defer rdb.Close()

	redisCtx, redisCancel := context.WithTimeout(context.Background(), time.Duration(cfg.Redis.ConnectTimeout)*time.Second)
	defer redisCancel()
	if err := rdb.Ping(redisCtx).Err(); err != nil {
		logger.Error("redis 에 연결할 수 없습니다", "error", err)
		return
	}

	/**********************************************
	 * 스케줄 생성 서비스
	 **********************************************/
	parameters := scheduler.DefaultParameters()
	parameters.ClientDailyCapHours = cfg.Scheduler.ClientDailyCapHours
	parameters.MainTasksPerDay = cfg.Scheduler.MainTasksPerDay
	parameters.EarlyStartHours = cfg.Scheduler.EarlyStartHours

	monthLock := lock.NewMonthLock(rdb, time.Duration(cfg.Redis.LockTTL)*time.Second, time.Duration(cfg.Redis.ConnectTimeout)*time.Second)
	publisher := notify.NewPublisher(ch, cfg.RabbitMQ.Queue, cfg.Email.NotifyTo, time.Duration(cfg.RabbitMQ.PublishTimeout)*time.Second)
	service := generation.NewService(repo, monthLock, publisher, parameters)

	/**********************************************
	 * 다음 달 자동 생성
	 **********************************************/
	if cfg.AutoGenerate.Enabled {
		runner := autogen.NewRunner(repo, service, cfg.AutoGenerate.RPS)
		if err := runner.Schedule(cfg.AutoGenerate.Spec); err != nil {
			logger.Error("자동 생성 일정을 등록할 수 없습니다", "spec", cfg.AutoGenerate.Spec, "error", err)
			return
		}
		runner.Start()
		defer runner.Stop()
		logger.Info("자동 생성 활성화", "spec", cfg.AutoGenerate.Spec)
	}

	/**********************************************
	 * handler 생성
	 **********************************************/
	handler, err := handler.NewHandler(cfg, repo, service)
	if err != nil {
		logger.Error("handler 를 만들 수 없습니다", "error", err)
		return
	}
	handler.RegisterRoutes()

	/**********************************************
	 * HTTP 서버 시작
	 **********************************************/
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      handler.Mux,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("서버 시작 중...", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("서버를 시작할 수 없습니다", slog.String("error", err.Error()))
			return
		}
	}()

	<-quit
	logger.Info("서버 종료 중...")

	ctx, cancel = context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("서버 종료 실패", slog.String("error", err.Error()))
	}
	logger.Info("서버 종료 완료")
}
