package clinic_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petclinic/internal/domain/clinic"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func sampleOwner() clinic.Owner {
	dog := clinic.PetType{ID: 2, Name: "dog"}
	return clinic.Owner{
		ID: 1, FirstName: "George", LastName: "Franklin",
		Address: "110 W. Liberty St.", City: "Madison", Telephone: "6085551023",
		Pets: []clinic.Pet{
			{
				ID: 1, Name: "Leo", BirthDate: date(2010, 9, 7), TypeID: &dog.ID, Type: &dog, OwnerID: 1,
				Visits: []clinic.Visit{{ID: 1, PetID: 1, Date: date(2013, 1, 1), Description: "rabies shot"}},
			},
			{
				ID: 2, Name: "Basil", OwnerID: 1,
				Visits: []clinic.Visit{{ID: 2, PetID: 2, Description: "spayed"}},
			},
		},
	}
}

func TestSerializeOwnerHasNoBackReferences(t *testing.T) {
	b, err := json.Marshal(clinic.SerializeOwner(sampleOwner(), clinic.DefaultOwnerOptions))
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(b, &out))

	pets := out["pets"].([]any)
	require.Len(t, pets, 2)
	for _, raw := range pets {
		pet := raw.(map[string]any)
		assert.NotContains(t, pet, "owner")
		visits := pet["visits"].([]any)
		require.Len(t, visits, 1)
		assert.NotContains(t, visits[0].(map[string]any), "pet")
	}

	leo := pets[0].(map[string]any)
	assert.Equal(t, "2010-09-07", leo["birthDate"])
	assert.Equal(t, map[string]any{"id": float64(2), "name": "dog"}, leo["type"])

	basil := pets[1].(map[string]any)
	assert.Nil(t, basil["birthDate"])
	assert.Contains(t, basil, "type")
	assert.Nil(t, basil["type"])
	assert.Nil(t, basil["visits"].([]any)[0].(map[string]any)["date"])
}

func TestSerializeOwnerWithoutPets(t *testing.T) {
	b, err := json.Marshal(clinic.SerializeOwner(sampleOwner(), clinic.OwnerOptions{}))
	require.NoError(t, err)
	assert.NotContains(t, string(b), `"pets"`)

	o := sampleOwner()
	o.Pets = nil
	b, err = json.Marshal(clinic.SerializeOwner(o, clinic.DefaultOwnerOptions))
	require.NoError(t, err)
	assert.Contains(t, string(b), `"pets":[]`)
}

func TestSerializePetOptions(t *testing.T) {
	o := sampleOwner()
	pet := o.Pets[0]

	tests := []struct {
		name       string
		opts       clinic.PetOptions
		owner      *clinic.Owner
		wantVisits bool
		wantOwner  bool
	}{
		{"default", clinic.DefaultPetOptions, &o, true, false},
		{"with owner", clinic.PetOptions{IncludeVisits: true, IncludeOwner: true}, &o, true, true},
		{"owner requested but not loaded", clinic.PetOptions{IncludeOwner: true}, nil, false, false},
		{"bare", clinic.PetOptions{}, &o, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := clinic.SerializePet(pet, tt.owner, tt.opts)
			assert.Equal(t, tt.wantVisits, p.Visits != nil)
			assert.Equal(t, tt.wantOwner, p.Owner != nil)
			if p.Owner != nil {
				// el owner embebido nunca trae pets
				assert.Nil(t, p.Owner.Pets)
			}
		})
	}
}

func TestSerializeVisitEmbedsPetWithoutVisits(t *testing.T) {
	o := sampleOwner()
	pet := o.Pets[0]
	v := pet.Visits[0]

	out := clinic.SerializeVisit(v, &pet, clinic.VisitOptions{IncludePet: true})
	require.NotNil(t, out.Pet)
	assert.Equal(t, "Leo", out.Pet.Name)
	assert.Nil(t, out.Pet.Visits)
	assert.Nil(t, out.Pet.Owner)
	assert.Equal(t, "2013-01-01", *out.Date)

	out = clinic.SerializeVisit(v, &pet, clinic.VisitOptions{})
	assert.Nil(t, out.Pet)
}

func TestSerializeVet(t *testing.T) {
	b, err := json.Marshal(clinic.SerializeVets([]clinic.Vet{{ID: 1, FirstName: "James", LastName: "Carter"}}))
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1,"firstName":"James","lastName":"Carter","specialties":[]}]`, string(b))
}
