package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"petclinic/internal/domain/clinic"

	_ "github.com/jackc/pgx/v5/stdlib"
)

var (
	ErrNotFound = clinic.ErrNotFound
)

// Open abre una conexión pool a Postgres usando pgx (database/sql).
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// NewRepositories arma todos los repos sobre el mismo pool.
func NewRepositories(db *sql.DB) clinic.Repositories {
	return clinic.Repositories{
		PetTypes:    NewPetTypesRepo(db),
		Specialties: NewSpecialtiesRepo(db),
		Owners:      NewOwnersRepo(db),
		Pets:        NewPetsRepo(db),
		Visits:      NewVisitsRepo(db),
		Vets:        NewVetsRepo(db),
	}
}

// withTx corre fn en una transacción; rollback si fn falla.
func withTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// mustAffect devuelve ErrNotFound si el statement no tocó filas.
func mustAffect(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// date columns (birth_date, visit_date) son DATE, las pasamos como NullTime
func toNullDate(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: clinic.DateOf(*t), Valid: true}
}

func fromNullDate(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	// pgx mapea DATE a medianoche UTC
	t := clinic.DateOf(nt.Time)
	return &t
}

// likePrefix escapa los comodines de LIKE y agrega el % final.
func likePrefix(prefix string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(prefix) + "%"
}
