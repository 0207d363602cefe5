package autogen

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/seoulmkt/content-scheduler/backend/internal/calendar"
	"github.com/seoulmkt/content-scheduler/backend/internal/domain"
	"github.com/seoulmkt/content-scheduler/backend/internal/scheduler"
	"golang.org/x/time/rate"
)

type Source interface {
	GetMonthlyTasksByMonth(year, month int32) ([]*domain.MonthlyTask, error)
	HasSchedules(hospitalID int64, year, month int32) (bool, error)
}

type Generator interface {
	Generate(hospitalID int64, year, month int32) (*scheduler.Result, error)
}

type Summary struct {
	Generated int
	Skipped   int
	Failed    int
}

// Runner 는 정해진 시각에 다음 달 스케줄을 아직 없는 병원에 대해서만 생성한다
type Runner struct {
	cron      *cron.Cron
	source    Source
	generator Generator
	limiter   *rate.Limiter
	now       func() time.Time
}

func NewRunner(source Source, generator Generator, rps int) *Runner {
	if rps <= 0 {
		rps = 1
	}
	return &Runner{
		cron:      cron.New(cron.WithLocation(calendar.KST)),
		source:    source,
		generator: generator,
		limiter:   rate.NewLimiter(rate.Limit(rps), rps),
		now:       time.Now,
	}
}

// Schedule 은 표준 5필드 cron 표현식으로 작업을 등록한다
func (r *Runner) Schedule(spec string) error {
	_, err := r.cron.AddFunc(spec, func() {
		year, month := NextMonth(r.now())
		summary, err := r.RunMonth(context.Background(), year, month)
		if err != nil {
			slog.Error("자동 생성 실패", "year", year, "month", month, "error", err)
			return
		}
		slog.Info("자동 생성 완료", "year", year, "month", month, "generated", summary.Generated, "skipped", summary.Skipped, "failed", summary.Failed)
	})
	return err
}

func (r *Runner) Start() {
	r.cron.Start()
}

func (r *Runner) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
}

// RunMonth 는 병원마다 순서대로 생성한다. 앞에서 생성된 병원의 작업 시간이 뒤 병원의 기존 사용량이 된다.
func (r *Runner) RunMonth(ctx context.Context, year, month int32) (Summary, error) {
	summary := Summary{}

	tasks, err := r.source.GetMonthlyTasksByMonth(year, month)
	if err != nil {
		return summary, err
	}

	for _, mt := range tasks {
		exists, err := r.source.HasSchedules(mt.HospitalID, year, month)
		if err != nil {
			return summary, err
		}
		if exists {
			summary.Skipped++
			continue
		}

		if err := r.limiter.Wait(ctx); err != nil {
			return summary, err
		}

		if _, err := r.generator.Generate(mt.HospitalID, year, month); err != nil {
			summary.Failed++
			var se *domain.ScheduleError
			if errors.As(err, &se) {
				slog.Warn("자동 생성 불가", "hospital", mt.HospitalName, "kind", se.Kind, "message", se.Message)
				continue
			}
			slog.Error("자동 생성 중 오류", "hospital", mt.HospitalName, "error", err)
			continue
		}
		summary.Generated++
	}

	return summary, nil
}

func NextMonth(now time.Time) (int32, int32) {
	next := calendar.Date(now.In(calendar.KST).Year(), now.In(calendar.KST).Month()+1, 1)
	return int32(next.Year()), int32(next.Month())
}
