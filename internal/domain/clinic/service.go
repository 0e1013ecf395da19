package clinic

import (
	"context"
	"sync/atomic"
	"time"

	"petclinic/internal/platform/logger"
)

type Service struct {
	repos    Repositories
	vetCache VetCache
	log      logger.Logger
	now      func() time.Time

	// vetGen avanza en cada invalidación; ListVets no cachea lecturas de otra generación.
	vetGen atomic.Uint64
}

type Option func(*Service)

// WithVetCache activa el cache del listado de vets.
func WithVetCache(c VetCache) Option {
	return func(s *Service) { s.vetCache = c }
}

func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithClock reemplaza time.Now (fecha por defecto de las visits).
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func NewService(repos Repositories, opts ...Option) *Service {
	s := &Service{
		repos: repos,
		log:   logger.Nop(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(map[string]any{"component": "clinic"})
	return s
}

// today es la fecha por defecto de una visita.
func (s *Service) today() *time.Time {
	d := DateOf(s.now())
	return &d
}

// DatePatch distingue "no enviado" de "enviado como null" en un PATCH.
type DatePatch struct {
	Present bool
	Value   *time.Time
}

func applyString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func (s *Service) invalidateVets(ctx context.Context) {
	if s.vetCache == nil {
		return
	}
	s.vetGen.Add(1)
	if err := s.vetCache.InvalidateVets(ctx); err != nil {
		s.log.Warn("vet cache invalidation failed", map[string]any{"error": err.Error()})
	}
}
