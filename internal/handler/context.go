package handler

type ContextKey string

var (
	HospitalCtx     ContextKey = "hospital"
	ScheduleItemCtx ContextKey = "scheduleItem"
)
