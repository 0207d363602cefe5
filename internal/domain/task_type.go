package domain

type TaskType string

const (
	TaskTypeSanwiNosul TaskType = "sanwi_nosul"
	TaskTypeBrand      TaskType = "brand"
	TaskTypeTrend      TaskType = "trend"
	TaskTypeEonronBodo TaskType = "eonron_bodo"
	TaskTypeJisikin    TaskType = "jisikin"
	TaskTypeCafePost   TaskType = "cafe_post"
	TaskTypeReport     TaskType = "report"
	TaskTypeEarlyStart TaskType = "early_start"
)

type TaskDefinition struct {
	Type     TaskType
	Label    string
	Duration float64 // 시간 단위
}

var TaskDefinitions = map[TaskType]TaskDefinition{
	TaskTypeSanwiNosul: {Type: TaskTypeSanwiNosul, Label: "상위노출", Duration: 3.5},
	TaskTypeBrand:      {Type: TaskTypeBrand, Label: "브랜드", Duration: 3.5},
	TaskTypeTrend:      {Type: TaskTypeTrend, Label: "트렌드", Duration: 1.5},
	TaskTypeEonronBodo: {Type: TaskTypeEonronBodo, Label: "언론보도", Duration: 0.5},
	TaskTypeJisikin:    {Type: TaskTypeJisikin, Label: "지식인", Duration: 0.5},
	TaskTypeCafePost:   {Type: TaskTypeCafePost, Label: "카페 포스팅", Duration: 0.5},
	TaskTypeReport:     {Type: TaskTypeReport, Label: "보고서", Duration: 2},
	TaskTypeEarlyStart: {Type: TaskTypeEarlyStart, Label: "조기출근", Duration: 1.5},
}

// IsMain 은 하루 1개 제한이 걸리는 메인 블로그 작업인지 확인
func (t TaskType) IsMain() bool {
	return t == TaskTypeBrand || t == TaskTypeTrend
}
