package repository

import (
	"fmt"

	"github.com/seoulmkt/content-scheduler/backend/internal/domain"
)

func (r *Repository) GetHolidaysByYear(year int32) ([]*domain.Holiday, error) {
	return r.GetHolidaysBetween(fmt.Sprintf("%04d-01-01", year), fmt.Sprintf("%04d-12-31", year))
}

func (r *Repository) GetHolidaysBetween(from, to string) ([]*domain.Holiday, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT id, to_char(holiday_date, 'YYYY-MM-DD'), name
		FROM holidays
		WHERE holiday_date BETWEEN $1::date AND $2::date
		ORDER BY holiday_date
	`

	rows, err := r.dbpool.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	holidays := make([]*domain.Holiday, 0)
	for rows.Next() {
		h := &domain.Holiday{}
		if err := rows.Scan(&h.ID, &h.HolidayDate, &h.Name); err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return holidays, nil
}

func (r *Repository) CreateHoliday(h *domain.Holiday) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		INSERT INTO holidays (holiday_date, name)
		VALUES ($1::date, $2)
		RETURNING id
	`

	if err := r.dbpool.QueryRowContext(ctx, query, h.HolidayDate, h.Name).Scan(&h.ID); err != nil {
		return err
	}

	return nil
}

// UpsertHolidays 는 이미 있는 날짜의 이름만 갱신한다
func (r *Repository) UpsertHolidays(holidays []domain.Holiday) error {
	ctx, cancel := r.transactionContext()
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		INSERT INTO holidays (holiday_date, name)
		VALUES ($1::date, $2)
		ON CONFLICT (holiday_date) DO UPDATE SET name = EXCLUDED.name
	`
	for _, h := range holidays {
		if _, err := tx.ExecContext(ctx, query, h.HolidayDate, h.Name); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *Repository) DeleteHoliday(id int64) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `DELETE FROM holidays WHERE id = $1`
	if _, err := r.dbpool.ExecContext(ctx, query, id); err != nil {
		return err
	}

	return nil
}
