package calendar

import (
	"fmt"
	"time"

	"github.com/seoulmkt/content-scheduler/backend/internal/domain"
)

// HolidayTable 은 연도별 공휴일 조회 테이블. 공휴일은 DB 에서 읽어 주입한다.
type HolidayTable struct {
	years map[int]map[string]string // year -> YYYY-MM-DD -> 이름
}

func NewHolidayTable(holidays []domain.Holiday) (*HolidayTable, error) {
	ht := &HolidayTable{
		years: make(map[int]map[string]string),
	}

	for _, h := range holidays {
		d, err := Parse(h.HolidayDate)
		if err != nil {
			return nil, fmt.Errorf("잘못된 공휴일 날짜 %q: %w", h.HolidayDate, err)
		}
		ht.Add(d, h.Name)
	}

	return ht, nil
}

func (ht *HolidayTable) Add(t time.Time, name string) {
	t = Normalize(t)
	if _, exists := ht.years[t.Year()]; !exists {
		ht.years[t.Year()] = make(map[string]string)
	}
	ht.years[t.Year()][Format(t)] = name
}

// IsHoliday 는 nil 테이블에서도 안전하게 false 를 반환
func (ht *HolidayTable) IsHoliday(t time.Time) bool {
	_, ok := ht.Name(t)
	return ok
}

func (ht *HolidayTable) Name(t time.Time) (string, bool) {
	if ht == nil {
		return "", false
	}
	t = Normalize(t)
	name, ok := ht.years[t.Year()][Format(t)]
	return name, ok
}
