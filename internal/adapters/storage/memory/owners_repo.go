package memory

import (
	"context"
	"sort"
	"strings"

	"petclinic/internal/domain/clinic"
)

type ownerRepo struct {
	s *Store
}

func NewOwnerRepo(s *Store) clinic.OwnerRepository {
	return &ownerRepo{s: s}
}

// filter aplica prefijo + orden; el paginado lo hace List. Llamar con RLock.
func (r *ownerRepo) filter(f clinic.OwnerFilter) []clinic.Owner {
	prefix := strings.ToLower(f.LastNamePrefix)

	out := make([]clinic.Owner, 0)
	for _, o := range r.s.owners {
		if prefix != "" && !strings.HasPrefix(strings.ToLower(o.LastName), prefix) {
			continue
		}
		out = append(out, o)
	}

	sort.Slice(out, func(i, j int) bool {
		if f.OrderByLastName && out[i].LastName != out[j].LastName {
			return out[i].LastName < out[j].LastName
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (r *ownerRepo) List(ctx context.Context, f clinic.OwnerFilter) ([]clinic.Owner, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := r.filter(f)
	if f.Offset > 0 {
		if f.Offset >= len(out) {
			return []clinic.Owner{}, nil
		}
		out = out[f.Offset:]
	}
	if f.Limit > 0 && f.Limit < len(out) {
		out = out[:f.Limit]
	}
	return out, nil
}

func (r *ownerRepo) Count(ctx context.Context, f clinic.OwnerFilter) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return len(r.filter(f)), nil
}

func (r *ownerRepo) GetByID(ctx context.Context, id int64) (clinic.Owner, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	o, ok := r.s.owners[id]
	if !ok {
		return clinic.Owner{}, ErrNotFound
	}
	return o, nil
}

func (r *ownerRepo) Create(ctx context.Context, o clinic.Owner) (clinic.Owner, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	o.ID = r.s.nextID("owners")
	o.Pets = nil
	r.s.owners[o.ID] = o
	return o, nil
}

func (r *ownerRepo) Update(ctx context.Context, o clinic.Owner) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.owners[o.ID]; !ok {
		return ErrNotFound
	}
	o.Pets = nil
	r.s.owners[o.ID] = o
	return nil
}

func (r *ownerRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.owners[id]; !ok {
		return ErrNotFound
	}
	for pid, p := range r.s.pets {
		if p.OwnerID == id {
			r.s.deletePetLocked(pid)
		}
	}
	delete(r.s.owners, id)
	return nil
}
