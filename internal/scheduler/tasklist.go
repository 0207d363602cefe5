package scheduler

import (
	"github.com/seoulmkt/content-scheduler/backend/internal/domain"
)

// TaskList: 월별 작업량을 펼친 작업 목록
type TaskList struct {
	All   []Task // Main 다음 Other 순서
	Main  []Task // 브랜드/트렌드 교차 배치
	Other []Task // 상위노출, 언론보도, 지식인, 카페 포스팅 순
}

func newTask(h *domain.Hospital, taskType domain.TaskType) Task {
	def := domain.TaskDefinitions[taskType]
	return Task{
		HospitalID:   h.ID,
		HospitalName: h.Name,
		Type:         def.Type,
		Label:        def.Label,
		Duration:     def.Duration,
	}
}

// buildTaskList 는 브랜드와 트렌드를 번갈아 넣고 나머지 작업을 종류별로 이어 붙인다.
// 순서 값이 작은 쪽이 먼저 오고, 같으면 브랜드가 먼저다.
func buildTaskList(h *domain.Hospital, mt *domain.MonthlyTask) *TaskList {
	first, second := domain.TaskTypeBrand, domain.TaskTypeTrend
	firstCount, secondCount := int(max(mt.Brand, 0)), int(max(mt.Trend, 0))
	if mt.TrendOrder < mt.BrandOrder {
		first, second = second, first
		firstCount, secondCount = secondCount, firstCount
	}

	tl := &TaskList{
		Main:  []Task{},
		Other: []Task{},
	}

	for i := 0; i < max(firstCount, secondCount); i++ {
		if i < firstCount {
			tl.Main = append(tl.Main, newTask(h, first))
		}
		if i < secondCount {
			tl.Main = append(tl.Main, newTask(h, second))
		}
	}

	// 상위노출 지정일이 있으면 지정일 개수만큼만 만든다
	sanwiCount := int(max(mt.SanwiNosul, 0))
	if len(h.SanwiNosulDays) > 0 {
		sanwiCount = len(h.SanwiNosulDays)
	}

	others := []struct {
		taskType domain.TaskType
		count    int
	}{
		{domain.TaskTypeSanwiNosul, sanwiCount},
		{domain.TaskTypeEonronBodo, int(max(mt.EonronBodo, 0))},
		{domain.TaskTypeJisikin, int(max(mt.Jisikin, 0))},
		{domain.TaskTypeCafePost, int(max(mt.CafePost, 0))},
	}
	for _, o := range others {
		for i := 0; i < o.count; i++ {
			tl.Other = append(tl.Other, newTask(h, o.taskType))
		}
	}

	tl.All = make([]Task, 0, len(tl.Main)+len(tl.Other))
	tl.All = append(tl.All, tl.Main...)
	tl.All = append(tl.All, tl.Other...)

	return tl
}

func totalDuration(tasks []Task) float64 {
	total := 0.0
	for _, t := range tasks {
		total += t.Duration
	}
	return total
}

func labels(tasks []Task) []string {
	ls := make([]string, 0, len(tasks))
	for _, t := range tasks {
		ls = append(ls, t.Label)
	}
	return ls
}
