package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"petclinic/internal/domain/clinic"
)

type OwnersRepo struct {
	db *sql.DB
}

func NewOwnersRepo(db *sql.DB) *OwnersRepo {
	return &OwnersRepo{db: db}
}

const ownerColumns = `id, first_name, last_name, address, city, telephone`

// where arma el WHERE del filtro; devuelve la cláusula y sus args.
func ownerWhere(f clinic.OwnerFilter) (string, []any) {
	if f.LastNamePrefix == "" {
		return "", nil
	}
	return ` WHERE last_name ILIKE $1 ESCAPE '\'`, []any{likePrefix(f.LastNamePrefix)}
}

func (r *OwnersRepo) List(ctx context.Context, f clinic.OwnerFilter) ([]clinic.Owner, error) {
	where, args := ownerWhere(f)

	q := `SELECT ` + ownerColumns + ` FROM owners` + where
	if f.OrderByLastName {
		q += ` ORDER BY last_name, id`
	} else {
		q += ` ORDER BY id`
	}
	if f.Limit > 0 {
		args = append(args, f.Limit)
		q += fmt.Sprintf(` LIMIT $%d`, len(args))
	}
	if f.Offset > 0 {
		args = append(args, f.Offset)
		q += fmt.Sprintf(` OFFSET $%d`, len(args))
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]clinic.Owner, 0)
	for rows.Next() {
		var o clinic.Owner
		if err := rows.Scan(&o.ID, &o.FirstName, &o.LastName, &o.Address, &o.City, &o.Telephone); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *OwnersRepo) Count(ctx context.Context, f clinic.OwnerFilter) (int, error) {
	where, args := ownerWhere(f)

	var n int
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM owners`+where, args...).Scan(&n)
	return n, err
}

func (r *OwnersRepo) GetByID(ctx context.Context, id int64) (clinic.Owner, error) {
	var o clinic.Owner
	err := r.db.QueryRowContext(ctx, `SELECT `+ownerColumns+` FROM owners WHERE id = $1`, id).
		Scan(&o.ID, &o.FirstName, &o.LastName, &o.Address, &o.City, &o.Telephone)
	if errors.Is(err, sql.ErrNoRows) {
		return clinic.Owner{}, ErrNotFound
	}
	return o, err
}

func (r *OwnersRepo) Create(ctx context.Context, o clinic.Owner) (clinic.Owner, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO owners (first_name, last_name, address, city, telephone)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, o.FirstName, o.LastName, o.Address, o.City, o.Telephone).Scan(&o.ID)
	return o, err
}

func (r *OwnersRepo) Update(ctx context.Context, o clinic.Owner) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE owners
		SET
			first_name = $2,
			last_name = $3,
			address = $4,
			city = $5,
			telephone = $6
		WHERE id = $1
	`, o.ID, o.FirstName, o.LastName, o.Address, o.City, o.Telephone)
	if err != nil {
		return err
	}
	return mustAffect(res)
}

// Delete hace la cascada explícita: visits de sus pets, pets, owner.
func (r *OwnersRepo) Delete(ctx context.Context, id int64) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			DELETE FROM visits WHERE pet_id IN (SELECT id FROM pets WHERE owner_id = $1)
		`, id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM pets WHERE owner_id = $1`, id); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM owners WHERE id = $1`, id)
		if err != nil {
			return err
		}
		return mustAffect(res)
	})
}
