package postgres

import (
	"context"
	"database/sql"
	"errors"

	"petclinic/internal/domain/clinic"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

// el LEFT JOIN con types resuelve pet.type en la misma query
const petSelect = `
	SELECT
		p.id, p.name, p.birth_date, p.type_id, p.owner_id,
		t.id, t.name
	FROM pets p
	LEFT JOIN types t ON t.id = p.type_id
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPet(row rowScanner) (clinic.Pet, error) {
	var (
		p        clinic.Pet
		bd       sql.NullTime
		typeID   sql.NullInt64
		tID      sql.NullInt64
		typeName sql.NullString
	)
	if err := row.Scan(&p.ID, &p.Name, &bd, &typeID, &p.OwnerID, &tID, &typeName); err != nil {
		return clinic.Pet{}, err
	}

	p.BirthDate = fromNullDate(bd)
	if typeID.Valid {
		id := typeID.Int64
		p.TypeID = &id
	}
	if tID.Valid {
		p.Type = &clinic.PetType{ID: tID.Int64, Name: typeName.String}
	}
	return p, nil
}

func toNullID(id *int64) sql.NullInt64 {
	if id == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *id, Valid: true}
}

func (r *PetsRepo) List(ctx context.Context, f clinic.PetFilter) ([]clinic.Pet, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if f.OwnerID != 0 {
		rows, err = r.db.QueryContext(ctx, petSelect+` WHERE p.owner_id = $1 ORDER BY p.id`, f.OwnerID)
	} else {
		rows, err = r.db.QueryContext(ctx, petSelect+` ORDER BY p.id`)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]clinic.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PetsRepo) GetByID(ctx context.Context, id int64) (clinic.Pet, error) {
	p, err := scanPet(r.db.QueryRowContext(ctx, petSelect+` WHERE p.id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return clinic.Pet{}, ErrNotFound
	}
	return p, err
}

func (r *PetsRepo) Create(ctx context.Context, p clinic.Pet) (clinic.Pet, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO pets (name, birth_date, type_id, owner_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, p.Name, toNullDate(p.BirthDate), toNullID(p.TypeID), p.OwnerID).Scan(&p.ID)
	return p, err
}

func (r *PetsRepo) Update(ctx context.Context, p clinic.Pet) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET
			name = $2,
			birth_date = $3,
			type_id = $4,
			owner_id = $5
		WHERE id = $1
	`, p.ID, p.Name, toNullDate(p.BirthDate), toNullID(p.TypeID), p.OwnerID)
	if err != nil {
		return err
	}
	return mustAffect(res)
}

func (r *PetsRepo) Delete(ctx context.Context, id int64) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM visits WHERE pet_id = $1`, id); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id)
		if err != nil {
			return err
		}
		return mustAffect(res)
	})
}
