package repository

import (
	"github.com/seoulmkt/content-scheduler/backend/internal/domain"
)

// GetExistingHoursBetween 은 날짜별로 이미 사용 중인 작업 시간.
// 다시 생성할 (병원, 연, 월) 의 행만 빼므로 같은 병원의 다른 달 스케줄은 합산된다.
// 조기출근 행은 운영 시간 밖이므로 합산하지 않는다.
func (r *Repository) GetExistingHoursBetween(from, to string, hospitalID int64, year, month int32) (map[string]float64, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT to_char(task_date, 'YYYY-MM-DD'), SUM(duration_hours)
		FROM schedules
		WHERE task_date BETWEEN $1::date AND $2::date
			AND NOT (hospital_id = $3 AND year = $4 AND month = $5)
			AND task_type <> $6
		GROUP BY task_date
	`

	rows, err := r.dbpool.QueryContext(ctx, query, from, to, hospitalID, year, month, domain.TaskTypeEarlyStart)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hours := make(map[string]float64)
	for rows.Next() {
		var date string
		var sum float64
		if err := rows.Scan(&date, &sum); err != nil {
			return nil, err
		}
		hours[date] = sum
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return hours, nil
}

// ReplaceSchedules 는 해당 병원/월의 스케줄을 지우고 새로 넣는다. 중간에 실패하면 아무것도 바뀌지 않는다.
func (r *Repository) ReplaceSchedules(hospitalID int64, year, month int32, rows []domain.Schedule) error {
	ctx, cancel := r.transactionContext()
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `DELETE FROM schedules WHERE hospital_id = $1 AND year = $2 AND month = $3`
	if _, err := tx.ExecContext(ctx, query, hospitalID, year, month); err != nil {
		return err
	}

	query = `
		INSERT INTO schedules (
			hospital_id, year, month, task_date, task_type, task_name,
			start_time, end_time, duration_hours, is_report, sequence_index
		)
		VALUES ($1, $2, $3, $4::date, $5, $6, $7, $8, $9, $10, $11)
	`
	for _, s := range rows {
		args := []any{
			hospitalID, year, month, s.TaskDate, s.TaskType, s.TaskName,
			s.StartTime, s.EndTime, s.DurationHours, s.IsReport, s.SequenceIndex,
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteSchedules(hospitalID int64, year, month int32) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `DELETE FROM schedules WHERE hospital_id = $1 AND year = $2 AND month = $3`
	if _, err := r.dbpool.ExecContext(ctx, query, hospitalID, year, month); err != nil {
		return err
	}

	return nil
}

const scheduleColumns = `
	s.id, s.hospital_id, h.name, h.color, s.year, s.month,
	to_char(s.task_date, 'YYYY-MM-DD'), s.task_type, s.task_name, s.start_time, s.end_time,
	s.duration_hours, s.is_report, s.is_completed, s.sequence_index, s.created_at, s.version
`

func scheduleDst(s *domain.Schedule) []any {
	return []any{
		&s.ID, &s.HospitalID, &s.HospitalName, &s.HospitalColor, &s.Year, &s.Month,
		&s.TaskDate, &s.TaskType, &s.TaskName, &s.StartTime, &s.EndTime,
		&s.DurationHours, &s.IsReport, &s.IsCompleted, &s.SequenceIndex, &s.CreatedAt, &s.Version,
	}
}

func (r *Repository) GetSchedulesByMonth(year, month int32) ([]*domain.Schedule, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT` + scheduleColumns + `
		FROM schedules s
		JOIN hospitals h ON h.id = s.hospital_id
		WHERE s.year = $1 AND s.month = $2
		ORDER BY s.task_date, h.name, s.sequence_index
	`

	rows, err := r.dbpool.QueryContext(ctx, query, year, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	schedules := make([]*domain.Schedule, 0)
	for rows.Next() {
		s := &domain.Schedule{}
		if err := rows.Scan(scheduleDst(s)...); err != nil {
			return nil, err
		}
		schedules = append(schedules, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return schedules, nil
}

func (r *Repository) GetScheduleByID(id int64) (*domain.Schedule, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT` + scheduleColumns + `
		FROM schedules s
		JOIN hospitals h ON h.id = s.hospital_id
		WHERE s.id = $1
	`

	s := &domain.Schedule{}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(scheduleDst(s)...); err != nil {
		return nil, err
	}

	return s, nil
}

func (r *Repository) UpdateScheduleCompletion(s *domain.Schedule) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		UPDATE schedules
		SET is_completed = $1, version = version + 1
		WHERE id = $2 AND version = $3
		RETURNING version
	`

	if err := r.dbpool.QueryRowContext(ctx, query, s.IsCompleted, s.ID, s.Version).Scan(&s.Version); err != nil {
		return err
	}

	return nil
}

// MoveSchedule 은 사람이 직접 일정을 옮길 때 사용한다. 용량 검사는 하지 않는다.
func (r *Repository) MoveSchedule(s *domain.Schedule) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		UPDATE schedules
		SET
			task_date = $1::date,
			start_time = $2,
			end_time = $3,
			sequence_index = $4,
			version = version + 1
		WHERE id = $5 AND version = $6
		RETURNING version
	`

	args := []any{s.TaskDate, s.StartTime, s.EndTime, s.SequenceIndex, s.ID, s.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&s.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) HasSchedules(hospitalID int64, year, month int32) (bool, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	exists := false
	query := `
		SELECT EXISTS (SELECT 1 FROM schedules WHERE hospital_id = $1 AND year = $2 AND month = $3)
	`
	if err := r.dbpool.QueryRowContext(ctx, query, hospitalID, year, month).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}
