package postgres

import (
	"context"
	"database/sql"
	"errors"

	"petclinic/internal/domain/clinic"
)

type SpecialtiesRepo struct {
	db *sql.DB
}

func NewSpecialtiesRepo(db *sql.DB) *SpecialtiesRepo {
	return &SpecialtiesRepo{db: db}
}

func (r *SpecialtiesRepo) List(ctx context.Context) ([]clinic.Specialty, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM specialties ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]clinic.Specialty, 0)
	for rows.Next() {
		var s clinic.Specialty
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SpecialtiesRepo) GetByID(ctx context.Context, id int64) (clinic.Specialty, error) {
	return r.getOne(ctx, `SELECT id, name FROM specialties WHERE id = $1`, id)
}

func (r *SpecialtiesRepo) GetByName(ctx context.Context, name string) (clinic.Specialty, error) {
	return r.getOne(ctx, `SELECT id, name FROM specialties WHERE name = $1 ORDER BY id LIMIT 1`, name)
}

func (r *SpecialtiesRepo) getOne(ctx context.Context, query string, arg any) (clinic.Specialty, error) {
	var s clinic.Specialty
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&s.ID, &s.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return clinic.Specialty{}, ErrNotFound
	}
	return s, err
}

func (r *SpecialtiesRepo) Create(ctx context.Context, s clinic.Specialty) (clinic.Specialty, error) {
	err := r.db.QueryRowContext(ctx, `INSERT INTO specialties (name) VALUES ($1) RETURNING id`, s.Name).Scan(&s.ID)
	return s, err
}

func (r *SpecialtiesRepo) Update(ctx context.Context, s clinic.Specialty) error {
	res, err := r.db.ExecContext(ctx, `UPDATE specialties SET name = $2 WHERE id = $1`, s.ID, s.Name)
	if err != nil {
		return err
	}
	return mustAffect(res)
}

func (r *SpecialtiesRepo) Delete(ctx context.Context, id int64) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM vet_specialties WHERE specialty_id = $1`, id); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM specialties WHERE id = $1`, id)
		if err != nil {
			return err
		}
		return mustAffect(res)
	})
}
