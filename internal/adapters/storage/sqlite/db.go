package sqlite

import (
	"errors"
	"strings"
	"time"

	"petclinic/internal/domain/clinic"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

var (
	ErrNotFound = clinic.ErrNotFound
)

// Open abre (o crea) la base SQLite en path con foreign keys activadas.
func Open(path string) (*gorm.DB, error) {
	dsn := path
	if !strings.Contains(dsn, "?") {
		dsn += "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	}

	db, err := gorm.Open(sqlite.Dialector{
		DriverName: "sqlite",
		DSN:        dsn,
	}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// un solo writer: evita "database is locked" bajo requests concurrentes
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}

func NewRepositories(db *gorm.DB) clinic.Repositories {
	return clinic.Repositories{
		PetTypes:    NewPetTypeRepository(db),
		Specialties: NewSpecialtyRepository(db),
		Owners:      NewOwnerRepository(db),
		Pets:        NewPetRepository(db),
		Visits:      NewVisitRepository(db),
		Vets:        NewVetRepository(db),
	}
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func mustAffect(res *gorm.DB) error {
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Las fechas se guardan como TEXT YYYY-MM-DD (orden lexicográfico = cronológico).
func toDateText(t *time.Time) *string {
	return clinic.FormatDate(t)
}

func fromDateText(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, err := clinic.ParseDate(*s)
	if err != nil {
		return nil
	}
	return t
}

func likePrefix(prefix string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(prefix) + "%"
}
