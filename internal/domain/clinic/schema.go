package clinic

// Payloads JSON (camelCase). Los embebidos opcionales son punteros con
// omitempty para que la clave directamente no aparezca cuando no se incluye.

type PetTypePayload struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type SpecialtyPayload struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type VisitPayload struct {
	ID          int64       `json:"id"`
	Date        *string     `json:"date"`
	Description string      `json:"description"`
	PetID       int64       `json:"petId"`
	Pet         *PetPayload `json:"pet,omitempty"`
}

type PetPayload struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	BirthDate *string         `json:"birthDate"`
	Type      *PetTypePayload `json:"type"`
	OwnerID   int64           `json:"ownerId"`
	Visits    *[]VisitPayload `json:"visits,omitempty"`
	Owner     *OwnerPayload   `json:"owner,omitempty"`
}

type OwnerPayload struct {
	ID        int64         `json:"id"`
	FirstName string        `json:"firstName"`
	LastName  string        `json:"lastName"`
	Address   string        `json:"address"`
	City      string        `json:"city"`
	Telephone string        `json:"telephone"`
	Pets      *[]PetPayload `json:"pets,omitempty"`
}

type VetPayload struct {
	ID          int64              `json:"id"`
	FirstName   string             `json:"firstName"`
	LastName    string             `json:"lastName"`
	Specialties []SpecialtyPayload `json:"specialties"`
}

type PetOptions struct {
	IncludeVisits bool
	IncludeOwner  bool
}

// DefaultPetOptions: visits sí, owner no.
var DefaultPetOptions = PetOptions{IncludeVisits: true}

type OwnerOptions struct {
	IncludePets bool
}

var DefaultOwnerOptions = OwnerOptions{IncludePets: true}

type VisitOptions struct {
	IncludePet bool
}

func SerializePetType(t PetType) PetTypePayload {
	return PetTypePayload{ID: t.ID, Name: t.Name}
}

func SerializePetTypes(items []PetType) []PetTypePayload {
	out := make([]PetTypePayload, 0, len(items))
	for _, t := range items {
		out = append(out, SerializePetType(t))
	}
	return out
}

func SerializeSpecialty(s Specialty) SpecialtyPayload {
	return SpecialtyPayload{ID: s.ID, Name: s.Name}
}

func SerializeSpecialties(items []Specialty) []SpecialtyPayload {
	out := make([]SpecialtyPayload, 0, len(items))
	for _, s := range items {
		out = append(out, SerializeSpecialty(s))
	}
	return out
}

func SerializeVet(v Vet) VetPayload {
	return VetPayload{
		ID:          v.ID,
		FirstName:   v.FirstName,
		LastName:    v.LastName,
		Specialties: SerializeSpecialties(v.Specialties),
	}
}

func SerializeVets(items []Vet) []VetPayload {
	out := make([]VetPayload, 0, len(items))
	for _, v := range items {
		out = append(out, SerializeVet(v))
	}
	return out
}

// SerializeVisit embebe el pet solo si se pide y viene cargado. El pet
// embebido va sin visits ni owner (no hay ciclos).
func SerializeVisit(v Visit, pet *Pet, opts VisitOptions) VisitPayload {
	out := VisitPayload{
		ID:          v.ID,
		Date:        FormatDate(v.Date),
		Description: v.Description,
		PetID:       v.PetID,
	}
	if opts.IncludePet && pet != nil {
		p := SerializePet(*pet, nil, PetOptions{})
		out.Pet = &p
	}
	return out
}

func SerializeVisits(items []Visit) []VisitPayload {
	out := make([]VisitPayload, 0, len(items))
	for _, v := range items {
		out = append(out, SerializeVisit(v, nil, VisitOptions{}))
	}
	return out
}

// SerializePet: las visits embebidas nunca traen el pet; el owner embebido
// nunca trae pets.
func SerializePet(p Pet, owner *Owner, opts PetOptions) PetPayload {
	out := PetPayload{
		ID:        p.ID,
		Name:      p.Name,
		BirthDate: FormatDate(p.BirthDate),
		OwnerID:   p.OwnerID,
	}
	if p.Type != nil {
		t := SerializePetType(*p.Type)
		out.Type = &t
	}
	if opts.IncludeVisits {
		visits := SerializeVisits(p.Visits)
		out.Visits = &visits
	}
	if opts.IncludeOwner && owner != nil {
		o := SerializeOwner(*owner, OwnerOptions{})
		out.Owner = &o
	}
	return out
}

func SerializeOwner(o Owner, opts OwnerOptions) OwnerPayload {
	out := OwnerPayload{
		ID:        o.ID,
		FirstName: o.FirstName,
		LastName:  o.LastName,
		Address:   o.Address,
		City:      o.City,
		Telephone: o.Telephone,
	}
	if opts.IncludePets {
		pets := make([]PetPayload, 0, len(o.Pets))
		for _, p := range o.Pets {
			pets = append(pets, SerializePet(p, nil, PetOptions{IncludeVisits: true}))
		}
		out.Pets = &pets
	}
	return out
}

func SerializeOwners(items []Owner, opts OwnerOptions) []OwnerPayload {
	out := make([]OwnerPayload, 0, len(items))
	for _, o := range items {
		out = append(out, SerializeOwner(o, opts))
	}
	return out
}
