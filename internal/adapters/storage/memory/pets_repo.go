package memory

import (
	"context"
	"sort"

	"petclinic/internal/domain/clinic"
)

type petRepo struct {
	s *Store
}

func NewPetRepo(s *Store) clinic.PetRepository {
	return &petRepo{s: s}
}

// withType resuelve el join con types. Llamar con el lock tomado.
func (s *Store) withType(p clinic.Pet) clinic.Pet {
	p.Type = nil
	p.Visits = nil
	if p.TypeID != nil {
		if t, ok := s.types[*p.TypeID]; ok {
			p.Type = &t
		}
	}
	return p
}

// deletePetLocked borra el pet y sus visits. Llamar con Lock.
func (s *Store) deletePetLocked(id int64) {
	for vid, v := range s.visits {
		if v.PetID == id {
			delete(s.visits, vid)
		}
	}
	delete(s.pets, id)
}

func (r *petRepo) List(ctx context.Context, f clinic.PetFilter) ([]clinic.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]clinic.Pet, 0)
	for _, p := range r.s.pets {
		if f.OwnerID != 0 && p.OwnerID != f.OwnerID {
			continue
		}
		out = append(out, r.s.withType(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *petRepo) GetByID(ctx context.Context, id int64) (clinic.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.pets[id]
	if !ok {
		return clinic.Pet{}, ErrNotFound
	}
	return r.s.withType(p), nil
}

func (r *petRepo) Create(ctx context.Context, p clinic.Pet) (clinic.Pet, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.owners[p.OwnerID]; !ok {
		return clinic.Pet{}, ErrNotFound
	}
	p.ID = r.s.nextID("pets")
	r.s.pets[p.ID] = stripPet(p)
	return r.s.withType(p), nil
}

func (r *petRepo) Update(ctx context.Context, p clinic.Pet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.pets[p.ID]; !ok {
		return ErrNotFound
	}
	r.s.pets[p.ID] = stripPet(p)
	return nil
}

func (r *petRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.pets[id]; !ok {
		return ErrNotFound
	}
	r.s.deletePetLocked(id)
	return nil
}

// stripPet guarda solo las columnas propias (sin joins).
func stripPet(p clinic.Pet) clinic.Pet {
	p.Type = nil
	p.Visits = nil
	return p
}
