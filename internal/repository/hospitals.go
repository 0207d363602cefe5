package repository

import (
	"encoding/json"

	"github.com/seoulmkt/content-scheduler/backend/internal/domain"
)

func (r *Repository) GetAllHospitals() ([]*domain.Hospital, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT id, name, base_due_day, sanwi_nosul_days, color, created_at, version
		FROM hospitals ORDER BY name
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hospitals := make([]*domain.Hospital, 0)
	for rows.Next() {
		hospital := &domain.Hospital{}
		var days []byte
		dst := []any{&hospital.ID, &hospital.Name, &hospital.BaseDueDay, &days, &hospital.Color, &hospital.CreatedAt, &hospital.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		if err := decodeDays(days, &hospital.SanwiNosulDays); err != nil {
			return nil, err
		}
		hospitals = append(hospitals, hospital)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return hospitals, nil
}

func (r *Repository) GetHospitalByID(id int64) (*domain.Hospital, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT name, base_due_day, sanwi_nosul_days, color, created_at, version
		FROM hospitals WHERE id = $1
	`

	hospital := &domain.Hospital{
		ID: id,
	}

	var days []byte
	dst := []any{&hospital.Name, &hospital.BaseDueDay, &days, &hospital.Color, &hospital.CreatedAt, &hospital.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}
	if err := decodeDays(days, &hospital.SanwiNosulDays); err != nil {
		return nil, err
	}

	return hospital, nil
}

func (r *Repository) CreateHospital(hospital *domain.Hospital) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	days, err := json.Marshal(nonNilDays(hospital.SanwiNosulDays))
	if err != nil {
		return err
	}

	query := `
		INSERT INTO hospitals (name, base_due_day, sanwi_nosul_days, color)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, version
	`

	args := []any{hospital.Name, hospital.BaseDueDay, days, hospital.Color}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&hospital.ID, &hospital.CreatedAt, &hospital.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateHospital(hospital *domain.Hospital) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	days, err := json.Marshal(nonNilDays(hospital.SanwiNosulDays))
	if err != nil {
		return err
	}

	query := `
		UPDATE hospitals
		SET
			name = $1,
			base_due_day = $2,
			sanwi_nosul_days = $3,
			color = $4,
			version = version + 1
		WHERE id = $5 AND version = $6
		RETURNING created_at, version
	`

	args := []any{hospital.Name, hospital.BaseDueDay, days, hospital.Color, hospital.ID, hospital.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&hospital.CreatedAt, &hospital.Version); err != nil {
		return err
	}

	return nil
}

// DeleteHospital 은 병원을 지우면 작업량과 스케줄도 함께 지워진다 (ON DELETE CASCADE)
func (r *Repository) DeleteHospital(id int64) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `DELETE FROM hospitals WHERE id = $1`
	if _, err := r.dbpool.ExecContext(ctx, query, id); err != nil {
		return err
	}

	return nil
}

func decodeDays(raw []byte, dst *[]int32) error {
	*dst = make([]int32, 0)
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dst)
}

func nonNilDays(days []int32) []int32 {
	if days == nil {
		return []int32{}
	}
	return days
}
