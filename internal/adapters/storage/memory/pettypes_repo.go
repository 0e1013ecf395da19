package memory

import (
	"context"
	"sort"

	"petclinic/internal/domain/clinic"
)

type petTypeRepo struct {
	s *Store
}

func NewPetTypeRepo(s *Store) clinic.PetTypeRepository {
	return &petTypeRepo{s: s}
}

func (r *petTypeRepo) List(ctx context.Context) ([]clinic.PetType, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]clinic.PetType, 0, len(r.s.types))
	for _, t := range r.s.types {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *petTypeRepo) GetByID(ctx context.Context, id int64) (clinic.PetType, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	t, ok := r.s.types[id]
	if !ok {
		return clinic.PetType{}, ErrNotFound
	}
	return t, nil
}

func (r *petTypeRepo) Create(ctx context.Context, t clinic.PetType) (clinic.PetType, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t.ID = r.s.nextID("types")
	r.s.types[t.ID] = t
	return t, nil
}

func (r *petTypeRepo) Update(ctx context.Context, t clinic.PetType) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.types[t.ID]; !ok {
		return ErrNotFound
	}
	r.s.types[t.ID] = t
	return nil
}

func (r *petTypeRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.types[id]; !ok {
		return ErrNotFound
	}
	// ON DELETE SET NULL
	for pid, p := range r.s.pets {
		if p.TypeID != nil && *p.TypeID == id {
			p.TypeID = nil
			r.s.pets[pid] = p
		}
	}
	delete(r.s.types, id)
	return nil
}
