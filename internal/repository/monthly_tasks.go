package repository

import (
	"database/sql"

	"github.com/seoulmkt/content-scheduler/backend/internal/calendar"
	"github.com/seoulmkt/content-scheduler/backend/internal/domain"
)

const monthlyTaskColumns = `
	mt.id, mt.hospital_id, h.name, mt.year, mt.month,
	mt.sanwi_nosul, mt.brand, mt.trend, mt.eonron_bodo, mt.jisikin, mt.cafe_post,
	mt.deadline_pull_days, mt.brand_order, mt.trend_order,
	to_char(mt.work_start_date, 'YYYY-MM-DD'), to_char(mt.work_end_date, 'YYYY-MM-DD'),
	mt.created_at, mt.version
`

type monthlyTaskRow struct {
	task      domain.MonthlyTask
	workStart sql.NullString
	workEnd   sql.NullString
}

func (row *monthlyTaskRow) dst() []any {
	mt := &row.task
	return []any{
		&mt.ID, &mt.HospitalID, &mt.HospitalName, &mt.Year, &mt.Month,
		&mt.SanwiNosul, &mt.Brand, &mt.Trend, &mt.EonronBodo, &mt.Jisikin, &mt.CafePost,
		&mt.DeadlinePullDays, &mt.BrandOrder, &mt.TrendOrder,
		&row.workStart, &row.workEnd,
		&mt.CreatedAt, &mt.Version,
	}
}

func (row *monthlyTaskRow) build() (*domain.MonthlyTask, error) {
	mt := row.task
	if row.workStart.Valid && row.workEnd.Valid {
		start, err := calendar.Parse(row.workStart.String)
		if err != nil {
			return nil, err
		}
		end, err := calendar.Parse(row.workEnd.String)
		if err != nil {
			return nil, err
		}
		mt.WorkStartDate, mt.WorkEndDate = &start, &end
	}
	return &mt, nil
}

func (r *Repository) GetMonthlyTasksByMonth(year, month int32) ([]*domain.MonthlyTask, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT` + monthlyTaskColumns + `
		FROM monthly_tasks mt
		JOIN hospitals h ON h.id = mt.hospital_id
		WHERE mt.year = $1 AND mt.month = $2
		ORDER BY h.name
	`

	rows, err := r.dbpool.QueryContext(ctx, query, year, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]*domain.MonthlyTask, 0)
	for rows.Next() {
		var row monthlyTaskRow
		if err := rows.Scan(row.dst()...); err != nil {
			return nil, err
		}
		mt, err := row.build()
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, mt)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

func (r *Repository) GetMonthlyTask(hospitalID int64, year, month int32) (*domain.MonthlyTask, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT` + monthlyTaskColumns + `
		FROM monthly_tasks mt
		JOIN hospitals h ON h.id = mt.hospital_id
		WHERE mt.hospital_id = $1 AND mt.year = $2 AND mt.month = $3
	`

	var row monthlyTaskRow
	if err := r.dbpool.QueryRowContext(ctx, query, hospitalID, year, month).Scan(row.dst()...); err != nil {
		return nil, err
	}

	return row.build()
}

// UpsertMonthlyTask 는 (병원, 연, 월) 당 하나의 작업량만 유지한다
func (r *Repository) UpsertMonthlyTask(mt *domain.MonthlyTask) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		INSERT INTO monthly_tasks (
			hospital_id, year, month,
			sanwi_nosul, brand, trend, eonron_bodo, jisikin, cafe_post,
			deadline_pull_days, brand_order, trend_order,
			work_start_date, work_end_date
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13::date, $14::date)
		ON CONFLICT (hospital_id, year, month) DO UPDATE
		SET
			sanwi_nosul = EXCLUDED.sanwi_nosul,
			brand = EXCLUDED.brand,
			trend = EXCLUDED.trend,
			eonron_bodo = EXCLUDED.eonron_bodo,
			jisikin = EXCLUDED.jisikin,
			cafe_post = EXCLUDED.cafe_post,
			deadline_pull_days = EXCLUDED.deadline_pull_days,
			brand_order = EXCLUDED.brand_order,
			trend_order = EXCLUDED.trend_order,
			work_start_date = EXCLUDED.work_start_date,
			work_end_date = EXCLUDED.work_end_date,
			version = monthly_tasks.version + 1
		RETURNING id, created_at, version
	`

	var workStart, workEnd sql.NullString
	if mt.HasWorkPeriod() {
		workStart = sql.NullString{String: calendar.Format(*mt.WorkStartDate), Valid: true}
		workEnd = sql.NullString{String: calendar.Format(*mt.WorkEndDate), Valid: true}
	}

	args := []any{
		mt.HospitalID, mt.Year, mt.Month,
		mt.SanwiNosul, mt.Brand, mt.Trend, mt.EonronBodo, mt.Jisikin, mt.CafePost,
		mt.DeadlinePullDays, mt.BrandOrder, mt.TrendOrder,
		workStart, workEnd,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&mt.ID, &mt.CreatedAt, &mt.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteMonthlyTask(id int64) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `DELETE FROM monthly_tasks WHERE id = $1`
	if _, err := r.dbpool.ExecContext(ctx, query, id); err != nil {
		return err
	}

	return nil
}
