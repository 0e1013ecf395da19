package clinic

import "context"

type PetTypeInput struct {
	Name string `json:"name" validate:"required,max=80"`
}

type PetTypePatch struct {
	Name *string
}

func (s *Service) ListPetTypes(ctx context.Context) ([]PetType, error) {
	return s.repos.PetTypes.List(ctx)
}

func (s *Service) GetPetType(ctx context.Context, id int64) (PetType, error) {
	t, err := s.repos.PetTypes.GetByID(ctx, id)
	if err != nil {
		return PetType{}, notFound(EntityPetType, id, err)
	}
	return t, nil
}

func (s *Service) CreatePetType(ctx context.Context, in PetTypeInput) (PetType, error) {
	if err := validateStruct(in); err != nil {
		return PetType{}, err
	}
	return s.repos.PetTypes.Create(ctx, PetType{Name: in.Name})
}

func (s *Service) UpdatePetType(ctx context.Context, id int64, in PetTypePatch) (PetType, error) {
	t, err := s.GetPetType(ctx, id)
	if err != nil {
		return PetType{}, err
	}

	applyString(&t.Name, in.Name)
	if err := validateStruct(PetTypeInput{Name: t.Name}); err != nil {
		return PetType{}, err
	}

	if err := s.repos.PetTypes.Update(ctx, t); err != nil {
		return PetType{}, notFound(EntityPetType, id, err)
	}
	return t, nil
}

func (s *Service) DeletePetType(ctx context.Context, id int64) error {
	if err := s.repos.PetTypes.Delete(ctx, id); err != nil {
		return notFound(EntityPetType, id, err)
	}
	return nil
}

// resolvePetType busca el tipo referenciado; si no existe queda en nil sin error.
func (s *Service) resolvePetType(ctx context.Context, id *int64) (*PetType, error) {
	if id == nil {
		return nil, nil
	}
	t, err := s.repos.PetTypes.GetByID(ctx, *id)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}
