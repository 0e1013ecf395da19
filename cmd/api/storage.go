package main

import (
	"context"
	"database/sql"

	pg "petclinic/internal/adapters/storage/postgres"
	lite "petclinic/internal/adapters/storage/sqlite"
	"petclinic/internal/platform/config"
	"petclinic/internal/platform/logger"
	"petclinic/internal/router"

	"gorm.io/gorm"
)

// storage agrupa el handle abierto según storage.driver.
type storage struct {
	driver string
	db     *sql.DB
	gdb    *gorm.DB
}

func openStorage(ctx context.Context, cfg *config.Config, log logger.Logger) (*storage, error) {
	st := &storage{driver: cfg.Storage.Driver}

	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		// Open ya hace ping
		db, err := pg.Open(cfg.Storage.DSN)
		if err != nil {
			return nil, err
		}
		st.db = db
	case config.DriverSQLite:
		gdb, err := lite.Open(cfg.Storage.DSN)
		if err != nil {
			return nil, err
		}
		st.gdb = gdb
	}

	log.Info("storage ready", map[string]any{"driver": st.driver})
	return st, nil
}

func (s *storage) RouterOptions() router.Options {
	return router.Options{DB: s.db, Gorm: s.gdb}
}

func (s *storage) Migrate(ctx context.Context) error {
	switch {
	case s.db != nil:
		return pg.RunMigrations(ctx, s.db)
	case s.gdb != nil:
		return lite.RunMigrations(ctx, s.gdb)
	}
	return nil
}

func (s *storage) Status(ctx context.Context) error {
	switch {
	case s.db != nil:
		return pg.MigrationStatus(ctx, s.db)
	case s.gdb != nil:
		return lite.MigrationStatus(ctx, s.gdb)
	}
	return nil
}

func (s *storage) Close() {
	if s.db != nil {
		_ = s.db.Close()
	}
	if s.gdb != nil {
		if sqlDB, err := s.gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}
