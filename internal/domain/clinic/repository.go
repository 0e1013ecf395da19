package clinic

import "context"

// Los repositorios devuelven ErrNotFound (sin envolver o con %w) cuando
// el id no existe. Cada operación de escritura es atómica por sí misma.

type PetTypeRepository interface {
	List(ctx context.Context) ([]PetType, error)
	GetByID(ctx context.Context, id int64) (PetType, error)
	Create(ctx context.Context, t PetType) (PetType, error)
	Update(ctx context.Context, t PetType) error
	// Delete deja en null pets.type_id de las mascotas que lo referencian.
	Delete(ctx context.Context, id int64) error
}

type SpecialtyRepository interface {
	List(ctx context.Context) ([]Specialty, error)
	GetByID(ctx context.Context, id int64) (Specialty, error)
	// GetByName devuelve la primera coincidencia exacta (menor id).
	GetByName(ctx context.Context, name string) (Specialty, error)
	Create(ctx context.Context, s Specialty) (Specialty, error)
	Update(ctx context.Context, s Specialty) error
	// Delete borra las filas de vet_specialties, nunca los vets.
	Delete(ctx context.Context, id int64) error
}

type OwnerFilter struct {
	// LastNamePrefix filtra por last_name ILIKE 'prefix%'; vacío => sin filtro.
	LastNamePrefix string

	// OrderByLastName ordena por last_name, id (si no, por id).
	OrderByLastName bool

	// Limit <= 0 => sin límite.
	Limit  int
	Offset int
}

type OwnerRepository interface {
	List(ctx context.Context, f OwnerFilter) ([]Owner, error)
	Count(ctx context.Context, f OwnerFilter) (int, error)
	GetByID(ctx context.Context, id int64) (Owner, error)
	Create(ctx context.Context, o Owner) (Owner, error)
	Update(ctx context.Context, o Owner) error
	// Delete borra en una transacción las visits de sus pets, los pets y el owner.
	Delete(ctx context.Context, id int64) error
}

type PetFilter struct {
	OwnerID int64 // 0 => todos
}

type PetRepository interface {
	List(ctx context.Context, f PetFilter) ([]Pet, error)
	GetByID(ctx context.Context, id int64) (Pet, error)
	Create(ctx context.Context, p Pet) (Pet, error)
	Update(ctx context.Context, p Pet) error
	// Delete borra en una transacción las visits del pet y el pet.
	Delete(ctx context.Context, id int64) error
}

type VisitFilter struct {
	PetID int64 // 0 => todas
}

type VisitRepository interface {
	// List ordena por fecha asc (nulls al final) y luego por id.
	List(ctx context.Context, f VisitFilter) ([]Visit, error)
	GetByID(ctx context.Context, id int64) (Visit, error)
	Create(ctx context.Context, v Visit) (Visit, error)
	Update(ctx context.Context, v Visit) error
	Delete(ctx context.Context, id int64) error
}

type VetRepository interface {
	List(ctx context.Context) ([]Vet, error)
	GetByID(ctx context.Context, id int64) (Vet, error)
	// Create inserta el vet y agrega una fila de asociación por cada specialty.
	Create(ctx context.Context, v Vet) (Vet, error)
	// Update persiste nombres y reemplaza el set completo de specialties.
	Update(ctx context.Context, v Vet) error
	// Delete borra solo las filas de asociación y el vet.
	Delete(ctx context.Context, id int64) error
}

// Repositories agrupa los repos por entidad; un mismo backend los provee todos.
type Repositories struct {
	PetTypes    PetTypeRepository
	Specialties SpecialtyRepository
	Owners      OwnerRepository
	Pets        PetRepository
	Visits      VisitRepository
	Vets        VetRepository
}

// VetCache es opcional: cachea el listado completo de vets.
type VetCache interface {
	GetVets(ctx context.Context) ([]Vet, bool, error)
	SetVets(ctx context.Context, vets []Vet) error
	InvalidateVets(ctx context.Context) error
}
