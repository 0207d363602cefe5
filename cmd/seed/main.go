package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/seoulmkt/content-scheduler/backend/internal/config"
	"github.com/seoulmkt/content-scheduler/backend/internal/repository"
	"github.com/seoulmkt/content-scheduler/backend/internal/seed"
	"github.com/seoulmkt/content-scheduler/backend/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int
	var year, month int
	var csvPath string

	flag.IntVar(&op, "op", 0, "실행할 작업 (1: 2026년 공휴일 입력, 2: CSV 병원 입력, 3: 무작위 병원 입력, 4: 무작위 월별 작업량 입력)")
	flag.IntVar(&n, "n", 5, "입력할 무작위 병원 수")
	flag.IntVar(&year, "year", 2026, "작업량을 입력할 연도")
	flag.IntVar(&month, "month", 1, "작업량을 입력할 월")
	flag.StringVar(&csvPath, "csv", "./internal/seed/data/hospitals.csv", "병원 CSV 파일 경로")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("설정을 불러올 수 없습니다", slog.String("error", err.Error()))
		os.Exit(1)
	}

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

	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("데이터베이스에 연결할 수 없습니다", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, dbpool)

	switch op {
	case 0:
		slog.Error("작업이 지정되지 않았습니다")
	case 1:
		seed.SeedHolidays(repo)
	case 2:
		seed.SeedHospitals(repo, csvPath)
	case 3:
		if n <= 0 {
			slog.Error("병원 수가 올바르지 않습니다")
			return
		}
		cnt := 0
		for i := 0; i < n; i++ {
			hospital := utils.GenerateRandomHospital()
			if err := repo.CreateHospital(hospital); err != nil {
				// 이름이 겹치면 건너뜀
				slog.Error("병원을 입력할 수 없습니다", "name", hospital.Name, slog.String("error", err.Error()))
				continue
			}
			cnt++
		}
		slog.Info("무작위 병원 입력 완료", slog.Int("count", cnt))
	case 4:
		if month < 1 || month > 12 {
			slog.Error("월이 올바르지 않습니다", slog.Int("month", month))
			return
		}
		hospitals, err := repo.GetAllHospitals()
		if err != nil {
			slog.Error("병원 목록을 가져올 수 없습니다", slog.String("error", err.Error()))
			return
		}
		cnt := 0
		for _, h := range hospitals {
			mt := utils.GenerateRandomMonthlyTask(h.ID, int32(year), int32(month))
			if err := repo.UpsertMonthlyTask(mt); err != nil {
				slog.Error("월별 작업량을 입력할 수 없습니다", "hospital", h.Name, slog.String("error", err.Error()))
				continue
			}
			cnt++
		}
		slog.Info("무작위 월별 작업량 입력 완료", slog.Int("count", cnt))
	default:
		slog.Error("알 수 없는 작업입니다")
	}
}
