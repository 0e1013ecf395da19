package clinic

import (
	"context"
	"strings"
)

// OwnerInput se valida en este orden; el primer campo inválido gana.
type OwnerInput struct {
	FirstName string `json:"firstName" validate:"required,max=30"`
	LastName  string `json:"lastName" validate:"required,max=30"`
	Address   string `json:"address" validate:"required,max=255"`
	City      string `json:"city" validate:"required,max=80"`
	Telephone string `json:"telephone" validate:"required,max=20"`
}

// OwnerPatch: punteros nil = no tocar.
type OwnerPatch struct {
	FirstName *string
	LastName  *string
	Address   *string
	City      *string
	Telephone *string
}

// OwnerPage es una página del buscador de owners.
type OwnerPage struct {
	Owners   []Owner
	Page     int
	PageSize int
	Total    int
}

func (o Owner) input() OwnerInput {
	return OwnerInput{
		FirstName: o.FirstName,
		LastName:  o.LastName,
		Address:   o.Address,
		City:      o.City,
		Telephone: o.Telephone,
	}
}

// ListOwners devuelve los owners (con pets y visits) cuyo apellido empieza
// con lastNamePrefix, sin distinguir mayúsculas. Prefijo vacío => todos.
func (s *Service) ListOwners(ctx context.Context, lastNamePrefix string) ([]Owner, error) {
	owners, err := s.repos.Owners.List(ctx, OwnerFilter{LastNamePrefix: strings.TrimSpace(lastNamePrefix)})
	if err != nil {
		return nil, err
	}
	return s.loadOwnersPets(ctx, owners)
}

// PageOwners pagina el buscador ordenando por apellido. page empieza en 1.
func (s *Service) PageOwners(ctx context.Context, lastNamePrefix string, page, pageSize int) (OwnerPage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 5
	}

	f := OwnerFilter{
		LastNamePrefix:  strings.TrimSpace(lastNamePrefix),
		OrderByLastName: true,
	}
	total, err := s.repos.Owners.Count(ctx, f)
	if err != nil {
		return OwnerPage{}, err
	}

	f.Limit = pageSize
	f.Offset = (page - 1) * pageSize
	owners, err := s.repos.Owners.List(ctx, f)
	if err != nil {
		return OwnerPage{}, err
	}
	owners, err = s.loadOwnersPets(ctx, owners)
	if err != nil {
		return OwnerPage{}, err
	}

	return OwnerPage{Owners: owners, Page: page, PageSize: pageSize, Total: total}, nil
}

func (s *Service) GetOwner(ctx context.Context, id int64) (Owner, error) {
	o, err := s.repos.Owners.GetByID(ctx, id)
	if err != nil {
		return Owner{}, notFound(EntityOwner, id, err)
	}
	pets, err := s.ListPets(ctx, o.ID)
	if err != nil {
		return Owner{}, err
	}
	o.Pets = pets
	return o, nil
}

func (s *Service) CreateOwner(ctx context.Context, in OwnerInput) (Owner, error) {
	if err := validateStruct(in); err != nil {
		return Owner{}, err
	}

	o, err := s.repos.Owners.Create(ctx, Owner{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Address:   in.Address,
		City:      in.City,
		Telephone: in.Telephone,
	})
	if err != nil {
		return Owner{}, err
	}
	o.Pets = []Pet{}
	return o, nil
}

func (s *Service) UpdateOwner(ctx context.Context, id int64, in OwnerPatch) (Owner, error) {
	o, err := s.repos.Owners.GetByID(ctx, id)
	if err != nil {
		return Owner{}, notFound(EntityOwner, id, err)
	}

	applyString(&o.FirstName, in.FirstName)
	applyString(&o.LastName, in.LastName)
	applyString(&o.Address, in.Address)
	applyString(&o.City, in.City)
	applyString(&o.Telephone, in.Telephone)

	if err := validateStruct(o.input()); err != nil {
		return Owner{}, err
	}
	if err := s.repos.Owners.Update(ctx, o); err != nil {
		return Owner{}, notFound(EntityOwner, id, err)
	}
	return s.GetOwner(ctx, id)
}

// DeleteOwner borra el owner junto con sus pets y las visits de esos pets.
func (s *Service) DeleteOwner(ctx context.Context, id int64) error {
	if err := s.repos.Owners.Delete(ctx, id); err != nil {
		return notFound(EntityOwner, id, err)
	}
	return nil
}

func (s *Service) loadOwnersPets(ctx context.Context, owners []Owner) ([]Owner, error) {
	for i := range owners {
		pets, err := s.ListPets(ctx, owners[i].ID)
		if err != nil {
			return nil, err
		}
		owners[i].Pets = pets
	}
	return owners, nil
}

// RequireOwner devuelve NotFoundError si el owner no existe (sin cargar pets).
func (s *Service) RequireOwner(ctx context.Context, id int64) error {
	if _, err := s.repos.Owners.GetByID(ctx, id); err != nil {
		return notFound(EntityOwner, id, err)
	}
	return nil
}
