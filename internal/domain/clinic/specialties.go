package clinic

import "context"

type SpecialtyInput struct {
	Name string `json:"name" validate:"required,max=80"`
}

type SpecialtyPatch struct {
	Name *string
}

func (s *Service) ListSpecialties(ctx context.Context) ([]Specialty, error) {
	return s.repos.Specialties.List(ctx)
}

func (s *Service) GetSpecialty(ctx context.Context, id int64) (Specialty, error) {
	sp, err := s.repos.Specialties.GetByID(ctx, id)
	if err != nil {
		return Specialty{}, notFound(EntitySpecialty, id, err)
	}
	return sp, nil
}

func (s *Service) CreateSpecialty(ctx context.Context, in SpecialtyInput) (Specialty, error) {
	if err := validateStruct(in); err != nil {
		return Specialty{}, err
	}
	return s.repos.Specialties.Create(ctx, Specialty{Name: in.Name})
}

func (s *Service) UpdateSpecialty(ctx context.Context, id int64, in SpecialtyPatch) (Specialty, error) {
	sp, err := s.GetSpecialty(ctx, id)
	if err != nil {
		return Specialty{}, err
	}

	applyString(&sp.Name, in.Name)
	if err := validateStruct(SpecialtyInput{Name: sp.Name}); err != nil {
		return Specialty{}, err
	}

	if err := s.repos.Specialties.Update(ctx, sp); err != nil {
		return Specialty{}, notFound(EntitySpecialty, id, err)
	}
	// el nombre aparece embebido en el listado de vets
	s.invalidateVets(ctx)
	return sp, nil
}

func (s *Service) DeleteSpecialty(ctx context.Context, id int64) error {
	if err := s.repos.Specialties.Delete(ctx, id); err != nil {
		return notFound(EntitySpecialty, id, err)
	}
	s.invalidateVets(ctx)
	return nil
}
