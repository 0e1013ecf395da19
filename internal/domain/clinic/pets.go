package clinic

import (
	"context"
	"time"
)

type PetInput struct {
	Name      string     `json:"name" validate:"required,max=30"`
	BirthDate *time.Time `json:"birthDate"`
	// TypeID se busca pero no es obligatorio que exista: si no existe queda null.
	TypeID  *int64 `json:"type"`
	OwnerID int64  `json:"ownerId" validate:"required"`
}

// PetPatch sigue la semántica PATCH: nil / Present=false = no tocar.
type PetPatch struct {
	Name      *string
	BirthDate DatePatch
	TypeID    *int64
	OwnerID   *int64
}

// ListPets devuelve los pets (con tipo y visits). ownerID 0 => todos.
func (s *Service) ListPets(ctx context.Context, ownerID int64) ([]Pet, error) {
	pets, err := s.repos.Pets.List(ctx, PetFilter{OwnerID: ownerID})
	if err != nil {
		return nil, err
	}
	for i := range pets {
		visits, err := s.repos.Visits.List(ctx, VisitFilter{PetID: pets[i].ID})
		if err != nil {
			return nil, err
		}
		pets[i].Visits = visits
	}
	return pets, nil
}

func (s *Service) GetPet(ctx context.Context, id int64) (Pet, error) {
	p, err := s.repos.Pets.GetByID(ctx, id)
	if err != nil {
		return Pet{}, notFound(EntityPet, id, err)
	}
	visits, err := s.repos.Visits.List(ctx, VisitFilter{PetID: p.ID})
	if err != nil {
		return Pet{}, err
	}
	p.Visits = visits
	return p, nil
}

// GetOwnerPet resuelve primero el owner y luego exige que el pet sea suyo.
func (s *Service) GetOwnerPet(ctx context.Context, ownerID, petID int64) (Pet, error) {
	if _, err := s.repos.Owners.GetByID(ctx, ownerID); err != nil {
		return Pet{}, notFound(EntityOwner, ownerID, err)
	}
	p, err := s.GetPet(ctx, petID)
	if err != nil {
		return Pet{}, err
	}
	if p.OwnerID != ownerID {
		return Pet{}, &NotFoundError{Entity: EntityPet, ID: petID}
	}
	return p, nil
}

func (s *Service) CreatePet(ctx context.Context, in PetInput) (Pet, error) {
	if err := validateStruct(in); err != nil {
		return Pet{}, err
	}
	if _, err := s.repos.Owners.GetByID(ctx, in.OwnerID); err != nil {
		return Pet{}, notFound(EntityOwner, in.OwnerID, err)
	}

	petType, err := s.resolvePetType(ctx, in.TypeID)
	if err != nil {
		return Pet{}, err
	}

	p := Pet{
		Name:      in.Name,
		BirthDate: in.BirthDate,
		Type:      petType,
		OwnerID:   in.OwnerID,
	}
	if petType != nil {
		p.TypeID = &petType.ID
	}

	created, err := s.repos.Pets.Create(ctx, p)
	if err != nil {
		return Pet{}, err
	}
	created.Type = petType
	created.Visits = []Visit{}
	return created, nil
}

func (s *Service) UpdatePet(ctx context.Context, id int64, in PetPatch) (Pet, error) {
	p, err := s.repos.Pets.GetByID(ctx, id)
	if err != nil {
		return Pet{}, notFound(EntityPet, id, err)
	}

	applyString(&p.Name, in.Name)
	if in.BirthDate.Present {
		p.BirthDate = in.BirthDate.Value
	}
	if in.TypeID != nil {
		petType, err := s.resolvePetType(ctx, in.TypeID)
		if err != nil {
			return Pet{}, err
		}
		p.Type = petType
		p.TypeID = nil
		if petType != nil {
			p.TypeID = &petType.ID
		}
	}
	if in.OwnerID != nil {
		if _, err := s.repos.Owners.GetByID(ctx, *in.OwnerID); err != nil {
			return Pet{}, notFound(EntityOwner, *in.OwnerID, err)
		}
		p.OwnerID = *in.OwnerID
	}

	if err := validateStruct(PetInput{Name: p.Name, OwnerID: p.OwnerID}); err != nil {
		return Pet{}, err
	}
	if err := s.repos.Pets.Update(ctx, p); err != nil {
		return Pet{}, notFound(EntityPet, id, err)
	}
	return s.GetPet(ctx, id)
}

// DeletePet borra el pet y sus visits.
func (s *Service) DeletePet(ctx context.Context, id int64) error {
	if err := s.repos.Pets.Delete(ctx, id); err != nil {
		return notFound(EntityPet, id, err)
	}
	return nil
}

// OwnerOf devuelve el owner del pet sin sus pets (para embeberlo).
func (s *Service) OwnerOf(ctx context.Context, p Pet) (Owner, error) {
	o, err := s.repos.Owners.GetByID(ctx, p.OwnerID)
	if err != nil {
		return Owner{}, notFound(EntityOwner, p.OwnerID, err)
	}
	return o, nil
}
