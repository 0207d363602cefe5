package domain

import "time"

type MonthlyTask struct {
	ID               int64      `json:"id"`
	HospitalID       int64      `json:"hospitalID"`
	HospitalName     string     `json:"hospitalName,omitempty"`
	Year             int32      `json:"year"`
	Month            int32      `json:"month"`
	SanwiNosul       int32      `json:"sanwiNosul"`
	Brand            int32      `json:"brand"`
	Trend            int32      `json:"trend"`
	EonronBodo       int32      `json:"eonronBodo"`
	Jisikin          int32      `json:"jisikin"`
	CafePost         int32      `json:"cafePost"`
	DeadlinePullDays int32      `json:"deadlinePullDays"`
	BrandOrder       int32      `json:"brandOrder"`
	TrendOrder       int32      `json:"trendOrder"`
	WorkStartDate    *time.Time `json:"workStartDate"` // 작업 기간이 지정되면 마감일 계산 대신 이 기간을 사용
	WorkEndDate      *time.Time `json:"workEndDate"`
	CreatedAt        time.Time  `json:"createdAt"`
	Version          int32      `json:"-"`
}

func (mt *MonthlyTask) HasWorkPeriod() bool {
	return mt.WorkStartDate != nil && mt.WorkEndDate != nil
}
