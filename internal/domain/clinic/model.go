package clinic

import "time"

// DateLayout es el formato de fecha calendario usado en la API (ISO-8601).
const DateLayout = "2006-01-02"

// PetType es la especie/tipo de mascota (cat, dog, lizard...).
type PetType struct {
	ID   int64
	Name string
}

// Specialty es una especialidad veterinaria (radiology, surgery...).
type Specialty struct {
	ID   int64
	Name string
}

// Owner es el dueño de las mascotas. Pets solo viene cargado cuando
// el Service arma el agregado completo (GetOwner / ListOwners).
type Owner struct {
	ID        int64
	FirstName string
	LastName  string
	Address   string
	City      string
	Telephone string

	Pets []Pet
}

// Pet pertenece a un Owner y es dueño de sus Visits.
type Pet struct {
	ID        int64
	Name      string
	BirthDate *time.Time

	TypeID *int64
	Type   *PetType // resuelto por el repositorio (join con types)

	OwnerID int64

	// Visits ordenadas por fecha asc; cargadas por el Service.
	Visits []Visit
}

type Visit struct {
	ID          int64
	PetID       int64
	Date        *time.Time
	Description string
}

// Vet y Specialty comparten una relación many-to-many sin dueño.
type Vet struct {
	ID        int64
	FirstName string
	LastName  string

	Specialties []Specialty
}

// SpecialtyIDs devuelve los ids de la asociación vet↔specialty.
func (v Vet) SpecialtyIDs() []int64 {
	out := make([]int64, 0, len(v.Specialties))
	for _, s := range v.Specialties {
		out = append(out, s.ID)
	}
	return out
}

// DateOf normaliza t a medianoche UTC del mismo día calendario.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parsea YYYY-MM-DD. String vacío => nil.
func ParseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FormatDate devuelve YYYY-MM-DD o nil si no hay fecha.
func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}
