package utils

import (
	"fmt"
	"math/rand"

	"github.com/seoulmkt/content-scheduler/backend/internal/domain"
)

var hospitalRegions = []string{
	"강남", "서초", "송파", "잠실", "압구정", "청담", "신사", "홍대", "분당", "일산",
	"수원", "부천", "인천", "대전", "대구", "부산", "광주", "울산", "창원", "제주",
}
var hospitalBrands = []string{
	"연세", "서울", "밝은", "하늘", "바른", "미소", "새봄", "참", "튼튼", "맑은",
}
var hospitalKinds = []string{
	"안과", "치과", "피부과", "성형외과", "정형외과", "한의원", "내과", "이비인후과",
}

func GenerateRandomHospitalName() string {
	region := hospitalRegions[rand.Intn(len(hospitalRegions))]
	brand := hospitalBrands[rand.Intn(len(hospitalBrands))]
	kind := hospitalKinds[rand.Intn(len(hospitalKinds))]
	return region + brand + kind
}

func GenerateRandomColor() string {
	return fmt.Sprintf("#%06X", rand.Intn(0x1000000))
}

// Fisher-Yates 로 1~28 중에서 최대 n개의 상위노출 지정일을 고른다
func GenerateRandomSanwiNosulDays(n int) []int32 {
	days := make([]int32, 28)
	for i := range days {
		days[i] = int32(i + 1)
	}

	for i := len(days) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		days[i], days[j] = days[j], days[i]
	}

	return NormalizeSanwiNosulDays(days[:rand.Intn(n+1)])
}

func GenerateRandomHospital() *domain.Hospital {
	return &domain.Hospital{
		Name:           GenerateRandomHospitalName(),
		BaseDueDay:     int32(rand.Intn(28) + 1),
		SanwiNosulDays: GenerateRandomSanwiNosulDays(2),
		Color:          GenerateRandomColor(),
	}
}

// GenerateRandomMonthlyTask 는 한 병원이 한 달에 소화할 만한 작업량을 만든다
func GenerateRandomMonthlyTask(hospitalID int64, year, month int32) *domain.MonthlyTask {
	mt := &domain.MonthlyTask{
		HospitalID: hospitalID,
		Year:       year,
		Month:      month,
		SanwiNosul: int32(rand.Intn(3)),
		Brand:      int32(rand.Intn(4) + 1),
		Trend:      int32(rand.Intn(4) + 1),
		EonronBodo: int32(rand.Intn(3)),
		Jisikin:    int32(rand.Intn(5)),
		CafePost:   int32(rand.Intn(3)),
		BrandOrder: 1,
		TrendOrder: 2,
	}
	if rand.Intn(2) == 0 {
		mt.BrandOrder, mt.TrendOrder = 2, 1
	}
	if rand.Intn(4) == 0 {
		mt.DeadlinePullDays = int32(rand.Intn(3) + 1)
	}

	return mt
}
