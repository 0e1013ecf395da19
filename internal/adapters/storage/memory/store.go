package memory

import (
	"sync"

	"petclinic/internal/domain/clinic"
)

var (
	ErrNotFound = clinic.ErrNotFound
)

type vetSpecialty struct {
	vetID       int64
	specialtyID int64
}

// Store es el "schema" in-memory compartido por todos los repos. Un único
// RWMutex hace que cada operación de escritura sea atómica (cascadas incluidas).
type Store struct {
	mu sync.RWMutex

	types       map[int64]clinic.PetType
	specialties map[int64]clinic.Specialty
	owners      map[int64]clinic.Owner
	pets        map[int64]clinic.Pet
	visits      map[int64]clinic.Visit
	vets        map[int64]clinic.Vet

	// join table vet_specialties
	vetSpecialties map[vetSpecialty]struct{}

	seq map[string]int64
}

func NewStore() *Store {
	return &Store{
		types:          make(map[int64]clinic.PetType),
		specialties:    make(map[int64]clinic.Specialty),
		owners:         make(map[int64]clinic.Owner),
		pets:           make(map[int64]clinic.Pet),
		visits:         make(map[int64]clinic.Visit),
		vets:           make(map[int64]clinic.Vet),
		vetSpecialties: make(map[vetSpecialty]struct{}),
		seq:            make(map[string]int64),
	}
}

// nextID simula un SERIAL por tabla. Llamar con el lock tomado.
func (s *Store) nextID(table string) int64 {
	s.seq[table]++
	return s.seq[table]
}

// NewRepositories arma todos los repos sobre un Store nuevo.
func NewRepositories() clinic.Repositories {
	return NewRepositoriesWithStore(NewStore())
}

func NewRepositoriesWithStore(s *Store) clinic.Repositories {
	return clinic.Repositories{
		PetTypes:    NewPetTypeRepo(s),
		Specialties: NewSpecialtyRepo(s),
		Owners:      NewOwnerRepo(s),
		Pets:        NewPetRepo(s),
		Visits:      NewVisitRepo(s),
		Vets:        NewVetRepo(s),
	}
}
