package domain

type Holiday struct {
	ID          int64  `json:"id"`
	HolidayDate string `json:"holidayDate"` // YYYY-MM-DD
	Name        string `json:"name"`
}
