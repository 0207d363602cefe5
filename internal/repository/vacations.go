package repository

import (
	"github.com/seoulmkt/content-scheduler/backend/internal/domain"
)

func (r *Repository) GetVacationsBetween(from, to string) ([]*domain.Vacation, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT id, to_char(vacation_date, 'YYYY-MM-DD'), memo, created_at
		FROM vacations
		WHERE vacation_date BETWEEN $1::date AND $2::date
		ORDER BY vacation_date
	`

	rows, err := r.dbpool.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vacations := make([]*domain.Vacation, 0)
	for rows.Next() {
		v := &domain.Vacation{}
		if err := rows.Scan(&v.ID, &v.VacationDate, &v.Memo, &v.CreatedAt); err != nil {
			return nil, err
		}
		vacations = append(vacations, v)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return vacations, nil
}

func (r *Repository) GetVacationDatesBetween(from, to string) ([]string, error) {
	vacations, err := r.GetVacationsBetween(from, to)
	if err != nil {
		return nil, err
	}

	dates := make([]string, 0, len(vacations))
	for _, v := range vacations {
		dates = append(dates, v.VacationDate)
	}

	return dates, nil
}

func (r *Repository) CreateVacation(v *domain.Vacation) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		INSERT INTO vacations (vacation_date, memo)
		VALUES ($1::date, $2)
		RETURNING id, created_at
	`

	if err := r.dbpool.QueryRowContext(ctx, query, v.VacationDate, v.Memo).Scan(&v.ID, &v.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteVacation(id int64) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `DELETE FROM vacations WHERE id = $1`
	if _, err := r.dbpool.ExecContext(ctx, query, id); err != nil {
		return err
	}

	return nil
}
