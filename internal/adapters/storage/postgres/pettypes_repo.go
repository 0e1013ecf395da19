package postgres

import (
	"context"
	"database/sql"
	"errors"

	"petclinic/internal/domain/clinic"
)

type PetTypesRepo struct {
	db *sql.DB
}

func NewPetTypesRepo(db *sql.DB) *PetTypesRepo {
	return &PetTypesRepo{db: db}
}

func (r *PetTypesRepo) List(ctx context.Context) ([]clinic.PetType, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM types ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]clinic.PetType, 0)
	for rows.Next() {
		var t clinic.PetType
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *PetTypesRepo) GetByID(ctx context.Context, id int64) (clinic.PetType, error) {
	var t clinic.PetType
	err := r.db.QueryRowContext(ctx, `SELECT id, name FROM types WHERE id = $1`, id).Scan(&t.ID, &t.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return clinic.PetType{}, ErrNotFound
	}
	return t, err
}

func (r *PetTypesRepo) Create(ctx context.Context, t clinic.PetType) (clinic.PetType, error) {
	err := r.db.QueryRowContext(ctx, `INSERT INTO types (name) VALUES ($1) RETURNING id`, t.Name).Scan(&t.ID)
	return t, err
}

func (r *PetTypesRepo) Update(ctx context.Context, t clinic.PetType) error {
	res, err := r.db.ExecContext(ctx, `UPDATE types SET name = $2 WHERE id = $1`, t.ID, t.Name)
	if err != nil {
		return err
	}
	return mustAffect(res)
}

func (r *PetTypesRepo) Delete(ctx context.Context, id int64) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `UPDATE pets SET type_id = NULL WHERE type_id = $1`, id); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM types WHERE id = $1`, id)
		if err != nil {
			return err
		}
		return mustAffect(res)
	})
}
