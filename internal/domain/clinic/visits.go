package clinic

import (
	"context"
	"time"
)

type VisitInput struct {
	Description string     `json:"description" validate:"required,max=255"`
	PetID       int64      `json:"petId" validate:"required"`
	Date        *time.Time `json:"date"` // nil => hoy
}

// Validate chequea los obligatorios y largos; date no participa.
func (in VisitInput) Validate() error {
	return validateStruct(in)
}

type VisitPatch struct {
	Date        DatePatch
	Description *string
	PetID       *int64
}

// ListVisits ordena por fecha asc. petID 0 => todas.
func (s *Service) ListVisits(ctx context.Context, petID int64) ([]Visit, error) {
	return s.repos.Visits.List(ctx, VisitFilter{PetID: petID})
}

func (s *Service) GetVisit(ctx context.Context, id int64) (Visit, error) {
	v, err := s.repos.Visits.GetByID(ctx, id)
	if err != nil {
		return Visit{}, notFound(EntityVisit, id, err)
	}
	return v, nil
}

func (s *Service) CreateVisit(ctx context.Context, in VisitInput) (Visit, error) {
	if err := in.Validate(); err != nil {
		return Visit{}, err
	}
	if _, err := s.repos.Pets.GetByID(ctx, in.PetID); err != nil {
		return Visit{}, notFound(EntityPet, in.PetID, err)
	}

	date := in.Date
	if date == nil {
		date = s.today()
	}

	return s.repos.Visits.Create(ctx, Visit{
		PetID:       in.PetID,
		Date:        date,
		Description: in.Description,
	})
}

// UpdateVisit: "date": null limpia la fecha (el default solo aplica al crear).
func (s *Service) UpdateVisit(ctx context.Context, id int64, in VisitPatch) (Visit, error) {
	v, err := s.GetVisit(ctx, id)
	if err != nil {
		return Visit{}, err
	}

	if in.Date.Present {
		v.Date = in.Date.Value
	}
	applyString(&v.Description, in.Description)
	if in.PetID != nil {
		if _, err := s.repos.Pets.GetByID(ctx, *in.PetID); err != nil {
			return Visit{}, notFound(EntityPet, *in.PetID, err)
		}
		v.PetID = *in.PetID
	}

	if err := validateStruct(VisitInput{Description: v.Description, PetID: v.PetID}); err != nil {
		return Visit{}, err
	}
	if err := s.repos.Visits.Update(ctx, v); err != nil {
		return Visit{}, notFound(EntityVisit, id, err)
	}
	return v, nil
}

func (s *Service) DeleteVisit(ctx context.Context, id int64) error {
	if err := s.repos.Visits.Delete(ctx, id); err != nil {
		return notFound(EntityVisit, id, err)
	}
	return nil
}

// PetOf devuelve el pet de la visit sin sus visits (para embeberlo).
func (s *Service) PetOf(ctx context.Context, v Visit) (Pet, error) {
	p, err := s.repos.Pets.GetByID(ctx, v.PetID)
	if err != nil {
		return Pet{}, notFound(EntityPet, v.PetID, err)
	}
	return p, nil
}
