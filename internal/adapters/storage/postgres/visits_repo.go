package postgres

import (
	"context"
	"database/sql"
	"errors"

	"petclinic/internal/domain/clinic"
)

type VisitsRepo struct {
	db *sql.DB
}

func NewVisitsRepo(db *sql.DB) *VisitsRepo {
	return &VisitsRepo{db: db}
}

const visitSelect = `SELECT id, pet_id, visit_date, description FROM visits`

func scanVisit(row rowScanner) (clinic.Visit, error) {
	var (
		v    clinic.Visit
		date sql.NullTime
	)
	if err := row.Scan(&v.ID, &v.PetID, &date, &v.Description); err != nil {
		return clinic.Visit{}, err
	}
	v.Date = fromNullDate(date)
	return v, nil
}

func (r *VisitsRepo) List(ctx context.Context, f clinic.VisitFilter) ([]clinic.Visit, error) {
	var (
		rows *sql.Rows
		err  error
	)
	const order = ` ORDER BY visit_date ASC NULLS LAST, id ASC`
	if f.PetID != 0 {
		rows, err = r.db.QueryContext(ctx, visitSelect+` WHERE pet_id = $1`+order, f.PetID)
	} else {
		rows, err = r.db.QueryContext(ctx, visitSelect+order)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]clinic.Visit, 0)
	for rows.Next() {
		v, err := scanVisit(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *VisitsRepo) GetByID(ctx context.Context, id int64) (clinic.Visit, error) {
	v, err := scanVisit(r.db.QueryRowContext(ctx, visitSelect+` WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return clinic.Visit{}, ErrNotFound
	}
	return v, err
}

func (r *VisitsRepo) Create(ctx context.Context, v clinic.Visit) (clinic.Visit, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO visits (pet_id, visit_date, description)
		VALUES ($1, $2, $3)
		RETURNING id
	`, v.PetID, toNullDate(v.Date), v.Description).Scan(&v.ID)
	return v, err
}

func (r *VisitsRepo) Update(ctx context.Context, v clinic.Visit) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE visits
		SET
			pet_id = $2,
			visit_date = $3,
			description = $4
		WHERE id = $1
	`, v.ID, v.PetID, toNullDate(v.Date), v.Description)
	if err != nil {
		return err
	}
	return mustAffect(res)
}

func (r *VisitsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM visits WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return mustAffect(res)
}
