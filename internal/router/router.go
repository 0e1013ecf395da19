package router

import (
	"database/sql"
	"net/http"

	_ "petclinic/docs"
	mem "petclinic/internal/adapters/storage/memory"
	pg "petclinic/internal/adapters/storage/postgres"
	lite "petclinic/internal/adapters/storage/sqlite"
	"petclinic/internal/domain/clinic"
	"petclinic/internal/middleware"
	"petclinic/internal/platform/logger"
	"petclinic/internal/web"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"gorm.io/gorm"
)

type Options struct {
	// Backend: DB (Postgres) tiene prioridad sobre Gorm (SQLite). Sin ninguno, in-memory.
	DB   *sql.DB
	Gorm *gorm.DB

	// Opcional: cache del listado de vets (Redis).
	VetCache clinic.VetCache

	Logger logger.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recover(log))
	r.Use(middleware.RequestLogger(log.With(map[string]any{"component": "http"})))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var repos clinic.Repositories
	switch {
	case opts.DB != nil:
		repos = pg.NewRepositories(opts.DB)
	case opts.Gorm != nil:
		repos = lite.NewRepositories(opts.Gorm)
	default:
		repos = mem.NewRepositories()
	}

	svcOpts := []clinic.Option{clinic.WithLogger(log)}
	if opts.VetCache != nil {
		svcOpts = append(svcOpts, clinic.WithVetCache(opts.VetCache))
	}
	svc := clinic.NewService(repos, svcOpts...)

	r.Route("/api", func(ar chi.Router) {
		clinic.RegisterRoutes(ar, svc, log)
	})
	web.RegisterRoutes(r, svc, log)

	return r
}
