package memory

import (
	"context"
	"sort"

	"petclinic/internal/domain/clinic"
)

type vetRepo struct {
	s *Store
}

func NewVetRepo(s *Store) clinic.VetRepository {
	return &vetRepo{s: s}
}

// withSpecialties arma las specialties del vet desde la join table,
// ordenadas por nombre. Llamar con el lock tomado.
func (s *Store) withSpecialties(v clinic.Vet) clinic.Vet {
	v.Specialties = make([]clinic.Specialty, 0)
	for k := range s.vetSpecialties {
		if k.vetID != v.ID {
			continue
		}
		if sp, ok := s.specialties[k.specialtyID]; ok {
			v.Specialties = append(v.Specialties, sp)
		}
	}
	sort.Slice(v.Specialties, func(i, j int) bool {
		a, b := v.Specialties[i], v.Specialties[j]
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.ID < b.ID
	})
	return v
}

// addSpecialty es el "add-one" de la join table; ignora duplicados.
func (s *Store) addSpecialty(vetID, specialtyID int64) {
	if _, ok := s.specialties[specialtyID]; !ok {
		return
	}
	s.vetSpecialties[vetSpecialty{vetID: vetID, specialtyID: specialtyID}] = struct{}{}
}

// replaceSpecialties es el "replace-all" de la join table.
func (s *Store) replaceSpecialties(vetID int64, specialtyIDs []int64) {
	s.clearSpecialties(vetID)
	for _, id := range specialtyIDs {
		s.addSpecialty(vetID, id)
	}
}

func (s *Store) clearSpecialties(vetID int64) {
	for k := range s.vetSpecialties {
		if k.vetID == vetID {
			delete(s.vetSpecialties, k)
		}
	}
}

func (r *vetRepo) List(ctx context.Context) ([]clinic.Vet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]clinic.Vet, 0, len(r.s.vets))
	for _, v := range r.s.vets {
		out = append(out, r.s.withSpecialties(v))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *vetRepo) GetByID(ctx context.Context, id int64) (clinic.Vet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	v, ok := r.s.vets[id]
	if !ok {
		return clinic.Vet{}, ErrNotFound
	}
	return r.s.withSpecialties(v), nil
}

func (r *vetRepo) Create(ctx context.Context, v clinic.Vet) (clinic.Vet, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	v.ID = r.s.nextID("vets")
	ids := v.SpecialtyIDs()
	v.Specialties = nil
	r.s.vets[v.ID] = v
	for _, id := range ids {
		r.s.addSpecialty(v.ID, id)
	}
	return r.s.withSpecialties(v), nil
}

func (r *vetRepo) Update(ctx context.Context, v clinic.Vet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.vets[v.ID]; !ok {
		return ErrNotFound
	}
	ids := v.SpecialtyIDs()
	v.Specialties = nil
	r.s.vets[v.ID] = v
	r.s.replaceSpecialties(v.ID, ids)
	return nil
}

func (r *vetRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.vets[id]; !ok {
		return ErrNotFound
	}
	r.s.clearSpecialties(id)
	delete(r.s.vets, id)
	return nil
}
