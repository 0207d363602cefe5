package domain

import "time"

// 상위노출 지정일은 최대 5개까지 설정 가능
const MaxSanwiNosulDays = 5

type Hospital struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	BaseDueDay     int32     `json:"baseDueDay"`
	SanwiNosulDays []int32   `json:"sanwiNosulDays"` // 비어 있으면 월별 작업량의 상위노출 개수를 사용
	Color          string    `json:"color"`
	CreatedAt      time.Time `json:"createdAt"`
	Version        int32     `json:"-"`
}
