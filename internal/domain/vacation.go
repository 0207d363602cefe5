package domain

import "time"

// Vacation 은 병원과 무관하게 전체 작업자가 쉬는 날(연차/휴가)
type Vacation struct {
	ID           int64     `json:"id"`
	VacationDate string    `json:"vacationDate"` // YYYY-MM-DD
	Memo         string    `json:"memo"`
	CreatedAt    time.Time `json:"createdAt"`
}
