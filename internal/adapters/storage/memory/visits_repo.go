package memory

import (
	"context"
	"sort"

	"petclinic/internal/domain/clinic"
)

type visitRepo struct {
	s *Store
}

func NewVisitRepo(s *Store) clinic.VisitRepository {
	return &visitRepo{s: s}
}

func (r *visitRepo) List(ctx context.Context, f clinic.VisitFilter) ([]clinic.Visit, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]clinic.Visit, 0)
	for _, v := range r.s.visits {
		if f.PetID != 0 && v.PetID != f.PetID {
			continue
		}
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return visitLess(out[i], out[j]) })
	return out, nil
}

// visitLess: fecha asc, nulls al final, desempate por id.
func visitLess(a, b clinic.Visit) bool {
	switch {
	case a.Date != nil && b.Date != nil && !a.Date.Equal(*b.Date):
		return a.Date.Before(*b.Date)
	case a.Date != nil && b.Date == nil:
		return true
	case a.Date == nil && b.Date != nil:
		return false
	}
	return a.ID < b.ID
}

func (r *visitRepo) GetByID(ctx context.Context, id int64) (clinic.Visit, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	v, ok := r.s.visits[id]
	if !ok {
		return clinic.Visit{}, ErrNotFound
	}
	return v, nil
}

func (r *visitRepo) Create(ctx context.Context, v clinic.Visit) (clinic.Visit, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.pets[v.PetID]; !ok {
		return clinic.Visit{}, ErrNotFound
	}
	v.ID = r.s.nextID("visits")
	r.s.visits[v.ID] = v
	return v, nil
}

func (r *visitRepo) Update(ctx context.Context, v clinic.Visit) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.visits[v.ID]; !ok {
		return ErrNotFound
	}
	r.s.visits[v.ID] = v
	return nil
}

func (r *visitRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.visits[id]; !ok {
		return ErrNotFound
	}
	delete(r.s.visits, id)
	return nil
}
