package memory

import (
	"context"
	"sort"

	"petclinic/internal/domain/clinic"
)

type specialtyRepo struct {
	s *Store
}

func NewSpecialtyRepo(s *Store) clinic.SpecialtyRepository {
	return &specialtyRepo{s: s}
}

func (r *specialtyRepo) List(ctx context.Context) ([]clinic.Specialty, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]clinic.Specialty, 0, len(r.s.specialties))
	for _, sp := range r.s.specialties {
		out = append(out, sp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *specialtyRepo) GetByID(ctx context.Context, id int64) (clinic.Specialty, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	sp, ok := r.s.specialties[id]
	if !ok {
		return clinic.Specialty{}, ErrNotFound
	}
	return sp, nil
}

func (r *specialtyRepo) GetByName(ctx context.Context, name string) (clinic.Specialty, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var (
		found clinic.Specialty
		ok    bool
	)
	for _, sp := range r.s.specialties {
		if sp.Name != name {
			continue
		}
		if !ok || sp.ID < found.ID {
			found, ok = sp, true
		}
	}
	if !ok {
		return clinic.Specialty{}, ErrNotFound
	}
	return found, nil
}

func (r *specialtyRepo) Create(ctx context.Context, sp clinic.Specialty) (clinic.Specialty, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	sp.ID = r.s.nextID("specialties")
	r.s.specialties[sp.ID] = sp
	return sp, nil
}

func (r *specialtyRepo) Update(ctx context.Context, sp clinic.Specialty) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.specialties[sp.ID]; !ok {
		return ErrNotFound
	}
	r.s.specialties[sp.ID] = sp
	return nil
}

func (r *specialtyRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.specialties[id]; !ok {
		return ErrNotFound
	}
	for k := range r.s.vetSpecialties {
		if k.specialtyID == id {
			delete(r.s.vetSpecialties, k)
		}
	}
	delete(r.s.specialties, id)
	return nil
}
