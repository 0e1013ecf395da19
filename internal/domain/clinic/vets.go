package clinic

import "context"

// SpecialtyRef referencia una specialty por id o, si no hay id, por nombre.
type SpecialtyRef struct {
	ID   *int64
	Name *string
}

type VetInput struct {
	FirstName   string         `json:"firstName" validate:"required,max=30"`
	LastName    string         `json:"lastName" validate:"required,max=30"`
	Specialties []SpecialtyRef `json:"specialties"`
}

// VetPatch: Specialties nil = no tocar; no-nil (aunque esté vacío) = reemplazar el set.
type VetPatch struct {
	FirstName   *string
	LastName    *string
	Specialties *[]SpecialtyRef
}

func (s *Service) ListVets(ctx context.Context) ([]Vet, error) {
	gen := s.vetGen.Load()
	if s.vetCache != nil {
		vets, ok, err := s.vetCache.GetVets(ctx)
		if err != nil {
			s.log.Warn("vet cache read failed", map[string]any{"error": err.Error()})
		} else if ok {
			return vets, nil
		}
	}

	vets, err := s.repos.Vets.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.vetCache != nil && s.vetGen.Load() == gen {
		if err := s.vetCache.SetVets(ctx, vets); err != nil {
			s.log.Warn("vet cache write failed", map[string]any{"error": err.Error()})
		}
		// una mutación entre el chequeo y el Set dejaría el listado viejo en cache
		if s.vetGen.Load() != gen {
			s.invalidateVets(ctx)
		}
	}
	return vets, nil
}

func (s *Service) GetVet(ctx context.Context, id int64) (Vet, error) {
	v, err := s.repos.Vets.GetByID(ctx, id)
	if err != nil {
		return Vet{}, notFound(EntityVet, id, err)
	}
	return v, nil
}

func (s *Service) CreateVet(ctx context.Context, in VetInput) (Vet, error) {
	if err := validateStruct(in); err != nil {
		return Vet{}, err
	}

	specialties, err := s.resolveSpecialties(ctx, in.Specialties)
	if err != nil {
		return Vet{}, err
	}

	v, err := s.repos.Vets.Create(ctx, Vet{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Specialties: specialties,
	})
	if err != nil {
		return Vet{}, err
	}
	s.invalidateVets(ctx)
	return s.GetVet(ctx, v.ID)
}

func (s *Service) UpdateVet(ctx context.Context, id int64, in VetPatch) (Vet, error) {
	v, err := s.GetVet(ctx, id)
	if err != nil {
		return Vet{}, err
	}

	applyString(&v.FirstName, in.FirstName)
	applyString(&v.LastName, in.LastName)
	if in.Specialties != nil {
		specialties, err := s.resolveSpecialties(ctx, *in.Specialties)
		if err != nil {
			return Vet{}, err
		}
		v.Specialties = specialties
	}

	if err := validateStruct(VetInput{FirstName: v.FirstName, LastName: v.LastName}); err != nil {
		return Vet{}, err
	}
	if err := s.repos.Vets.Update(ctx, v); err != nil {
		return Vet{}, notFound(EntityVet, id, err)
	}
	s.invalidateVets(ctx)
	return s.GetVet(ctx, id)
}

// DeleteVet borra el vet y sus filas de asociación; las specialties quedan.
func (s *Service) DeleteVet(ctx context.Context, id int64) error {
	if err := s.repos.Vets.Delete(ctx, id); err != nil {
		return notFound(EntityVet, id, err)
	}
	s.invalidateVets(ctx)
	return nil
}

// resolveSpecialties es best-effort: las referencias que no resuelven se
// descartan sin error. Los duplicados se colapsan (vet_specialties tiene PK).
func (s *Service) resolveSpecialties(ctx context.Context, refs []SpecialtyRef) ([]Specialty, error) {
	out := make([]Specialty, 0, len(refs))
	seen := map[int64]struct{}{}

	for _, ref := range refs {
		var (
			sp  Specialty
			err error
		)
		switch {
		case ref.ID != nil:
			sp, err = s.repos.Specialties.GetByID(ctx, *ref.ID)
		case ref.Name != nil:
			sp, err = s.repos.Specialties.GetByName(ctx, *ref.Name)
		default:
			continue
		}
		if err != nil {
			if isNotFound(err) {
				continue
			}
			return nil, err
		}

		if _, ok := seen[sp.ID]; ok {
			continue
		}
		seen[sp.ID] = struct{}{}
		out = append(out, sp)
	}
	return out, nil
}
