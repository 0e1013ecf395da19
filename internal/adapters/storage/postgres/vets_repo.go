package postgres

import (
	"context"
	"database/sql"
	"errors"

	"petclinic/internal/domain/clinic"
)

type VetsRepo struct {
	db *sql.DB
}

func NewVetsRepo(db *sql.DB) *VetsRepo {
	return &VetsRepo{db: db}
}

func (r *VetsRepo) List(ctx context.Context) ([]clinic.Vet, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, first_name, last_name FROM vets ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]clinic.Vet, 0)
	idx := map[int64]int{}
	for rows.Next() {
		var v clinic.Vet
		if err := rows.Scan(&v.ID, &v.FirstName, &v.LastName); err != nil {
			return nil, err
		}
		v.Specialties = make([]clinic.Specialty, 0)
		idx[v.ID] = len(out)
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// una sola query para toda la join table
	srows, err := r.db.QueryContext(ctx, `
		SELECT vs.vet_id, s.id, s.name
		FROM vet_specialties vs
		JOIN specialties s ON s.id = vs.specialty_id
		ORDER BY s.name, s.id
	`)
	if err != nil {
		return nil, err
	}
	defer srows.Close()

	for srows.Next() {
		var (
			vetID int64
			s     clinic.Specialty
		)
		if err := srows.Scan(&vetID, &s.ID, &s.Name); err != nil {
			return nil, err
		}
		if i, ok := idx[vetID]; ok {
			out[i].Specialties = append(out[i].Specialties, s)
		}
	}
	return out, srows.Err()
}

func (r *VetsRepo) GetByID(ctx context.Context, id int64) (clinic.Vet, error) {
	var v clinic.Vet
	err := r.db.QueryRowContext(ctx, `SELECT id, first_name, last_name FROM vets WHERE id = $1`, id).
		Scan(&v.ID, &v.FirstName, &v.LastName)
	if errors.Is(err, sql.ErrNoRows) {
		return clinic.Vet{}, ErrNotFound
	}
	if err != nil {
		return clinic.Vet{}, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT s.id, s.name
		FROM vet_specialties vs
		JOIN specialties s ON s.id = vs.specialty_id
		WHERE vs.vet_id = $1
		ORDER BY s.name, s.id
	`, id)
	if err != nil {
		return clinic.Vet{}, err
	}
	defer rows.Close()

	v.Specialties = make([]clinic.Specialty, 0)
	for rows.Next() {
		var s clinic.Specialty
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return clinic.Vet{}, err
		}
		v.Specialties = append(v.Specialties, s)
	}
	return v, rows.Err()
}

func (r *VetsRepo) Create(ctx context.Context, v clinic.Vet) (clinic.Vet, error) {
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx, `
			INSERT INTO vets (first_name, last_name) VALUES ($1, $2) RETURNING id
		`, v.FirstName, v.LastName).Scan(&v.ID); err != nil {
			return err
		}
		for _, sid := range v.SpecialtyIDs() {
			if err := addSpecialty(ctx, tx, v.ID, sid); err != nil {
				return err
			}
		}
		return nil
	})
	return v, err
}

func (r *VetsRepo) Update(ctx context.Context, v clinic.Vet) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE vets SET first_name = $2, last_name = $3 WHERE id = $1
		`, v.ID, v.FirstName, v.LastName)
		if err != nil {
			return err
		}
		if err := mustAffect(res); err != nil {
			return err
		}
		return replaceSpecialties(ctx, tx, v.ID, v.SpecialtyIDs())
	})
}

func (r *VetsRepo) Delete(ctx context.Context, id int64) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM vet_specialties WHERE vet_id = $1`, id); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM vets WHERE id = $1`, id)
		if err != nil {
			return err
		}
		return mustAffect(res)
	})
}

// addSpecialty es el "add-one" de vet_specialties.
func addSpecialty(ctx context.Context, tx *sql.Tx, vetID, specialtyID int64) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO vet_specialties (vet_id, specialty_id) VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, vetID, specialtyID)
	return err
}

// replaceSpecialties es el "replace-all" de vet_specialties.
func replaceSpecialties(ctx context.Context, tx *sql.Tx, vetID int64, specialtyIDs []int64) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM vet_specialties WHERE vet_id = $1`, vetID); err != nil {
		return err
	}
	for _, sid := range specialtyIDs {
		if err := addSpecialty(ctx, tx, vetID, sid); err != nil {
			return err
		}
	}
	return nil
}
