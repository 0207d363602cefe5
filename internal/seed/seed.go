package seed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/seoulmkt/content-scheduler/backend/internal/domain"
	"github.com/seoulmkt/content-scheduler/backend/internal/repository"
	"github.com/seoulmkt/content-scheduler/backend/internal/utils"
)

// 2026년 공휴일 (대체공휴일 포함)
var Holidays2026 = []domain.Holiday{
	{HolidayDate: "2026-01-01", Name: "신정"},
	{HolidayDate: "2026-02-16", Name: "설날 연휴"},
	{HolidayDate: "2026-02-17", Name: "설날"},
	{HolidayDate: "2026-02-18", Name: "설날 연휴"},
	{HolidayDate: "2026-03-01", Name: "삼일절"},
	{HolidayDate: "2026-03-02", Name: "삼일절 대체공휴일"},
	{HolidayDate: "2026-05-05", Name: "어린이날"},
	{HolidayDate: "2026-05-24", Name: "부처님오신날"},
	{HolidayDate: "2026-05-25", Name: "부처님오신날 대체공휴일"},
	{HolidayDate: "2026-06-06", Name: "현충일"},
	{HolidayDate: "2026-08-15", Name: "광복절"},
	{HolidayDate: "2026-08-17", Name: "광복절 대체공휴일"},
	{HolidayDate: "2026-09-24", Name: "추석 연휴"},
	{HolidayDate: "2026-09-25", Name: "추석"},
	{HolidayDate: "2026-09-26", Name: "추석 연휴"},
	{HolidayDate: "2026-10-03", Name: "개천절"},
	{HolidayDate: "2026-10-05", Name: "개천절 대체공휴일"},
	{HolidayDate: "2026-10-09", Name: "한글날"},
	{HolidayDate: "2026-12-25", Name: "성탄절"},
}

func SeedHolidays(r *repository.Repository) {
	if err := r.UpsertHolidays(Holidays2026); err != nil {
		slog.Error("공휴일 입력 실패", "error", err)
		return
	}
	slog.Info("공휴일 입력 완료", "count", len(Holidays2026))
}

var hospitalHeaders = []string{"병원명", "마감일", "상위노출지정일", "색상"}

func SeedHospitals(r *repository.Repository, path string) {
	file, err := os.Open(path)
	if err != nil {
		slog.Error("파일 열기 실패", "error", err)
		return
	}
	defer file.Close()

	hospitals, err := ReadHospitals(file)
	if err != nil {
		slog.Error("병원 목록 읽기 실패", "error", err)
		return
	}

	cnt := 0
	for _, h := range hospitals {
		if err := r.CreateHospital(h); err != nil {
			slog.Error("병원 입력 실패", "name", h.Name, "error", err)
			continue
		}
		cnt++
	}

	slog.Info("병원 입력 완료", "count", cnt)
}

// ReadHospitals 는 "병원명,마감일,상위노출지정일,색상" 헤더의 CSV 를 읽는다.
// 상위노출지정일은 "3, 10" 처럼 쉼표로 구분한다.
func ReadHospitals(src io.Reader) ([]*domain.Hospital, error) {
	reader := csv.NewReader(src)

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("헤더 읽기 실패: %w", err)
	}
	for _, key := range hospitalHeaders {
		if !slices.Contains(headers, key) {
			return nil, fmt.Errorf("%s 열이 없습니다", key)
		}
	}

	hospitals := make([]*domain.Hospital, 0)
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}

		record := make(map[string]string)
		for i, value := range row {
			record[headers[i]] = strings.TrimSpace(value)
		}

		h, err := hospitalFromRecord(record)
		if err != nil {
			return nil, fmt.Errorf("%d번째 줄: %w", line, err)
		}
		hospitals = append(hospitals, h)
	}

	return hospitals, nil
}

func hospitalFromRecord(record map[string]string) (*domain.Hospital, error) {
	if record["병원명"] == "" {
		return nil, errors.New("병원명이 비어 있습니다")
	}

	dueDay, err := strconv.Atoi(record["마감일"])
	if err != nil || dueDay < 1 || dueDay > 31 {
		return nil, fmt.Errorf("마감일이 잘못되었습니다: %q", record["마감일"])
	}

	days := make([]int32, 0)
	for _, day := range strings.Split(record["상위노출지정일"], ",") {
		day = strings.TrimSpace(day)
		if day == "" {
			continue
		}
		d, err := strconv.Atoi(day)
		if err != nil {
			return nil, fmt.Errorf("상위노출 지정일이 잘못되었습니다: %q", day)
		}
		days = append(days, int32(d))
	}
	if err := utils.ValidateSanwiNosulDays(days); err != nil {
		return nil, err
	}

	return &domain.Hospital{
		Name:           record["병원명"],
		BaseDueDay:     int32(dueDay),
		SanwiNosulDays: utils.NormalizeSanwiNosulDays(days),
		Color:          record["색상"],
	}, nil
}
