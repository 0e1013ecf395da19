package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petclinic/internal/domain/clinic"
)

func TestLikePrefix(t *testing.T) {
	tests := map[string]string{
		"":     "%",
		"Da":   "Da%",
		"50%":  `50\%%`,
		"a_b":  `a\_b%`,
		`c:\x`: `c:\\x%`,
	}
	for in, want := range tests {
		assert.Equal(t, want, likePrefix(in), in)
	}
}

func TestNullDate(t *testing.T) {
	assert.False(t, toNullDate(nil).Valid)
	assert.Nil(t, fromNullDate(toNullDate(nil)))

	d := time.Date(2013, 1, 2, 17, 4, 0, 0, time.FixedZone("x", -3*3600))
	got := fromNullDate(toNullDate(&d))
	require.NotNil(t, got)
	assert.Equal(t, "2013-01-02", got.Format(clinic.DateLayout))
}

// Integración: solo corre con PETCLINIC_TEST_POSTGRES_DSN (p.ej. un postgres de docker).
func TestRepositoriesAgainstPostgres(t *testing.T) {
	dsn := os.Getenv("PETCLINIC_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("PETCLINIC_TEST_POSTGRES_DSN not set")
	}

	ctx := context.Background()
	db, err := Open(dsn)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, RunMigrations(ctx, db))
	_, err = db.ExecContext(ctx, `TRUNCATE vet_specialties, vets, visits, pets, owners, specialties, types RESTART IDENTITY CASCADE`)
	require.NoError(t, err)

	svc := clinic.NewService(NewRepositories(db))

	o, err := svc.CreateOwner(ctx, clinic.OwnerInput{FirstName: "Harold", LastName: "Davis", Address: "563 Friendly St.", City: "Windsor", Telephone: "6085553198"})
	require.NoError(t, err)
	_, err = svc.CreateOwner(ctx, clinic.OwnerInput{FirstName: "Peter", LastName: "McDavid", Address: "2387 S. Fair Way", City: "Madison", Telephone: "6085552765"})
	require.NoError(t, err)

	owners, err := svc.ListOwners(ctx, "da")
	require.NoError(t, err)
	require.Len(t, owners, 1)
	assert.Equal(t, o.ID, owners[0].ID)

	dog, err := svc.CreatePetType(ctx, clinic.PetTypeInput{Name: "dog"})
	require.NoError(t, err)
	p, err := svc.CreatePet(ctx, clinic.PetInput{Name: "Iggy", OwnerID: o.ID, TypeID: &dog.ID})
	require.NoError(t, err)
	v, err := svc.CreateVisit(ctx, clinic.VisitInput{PetID: p.ID, Description: "checkup"})
	require.NoError(t, err)
	require.NotNil(t, v.Date)

	require.NoError(t, svc.DeletePetType(ctx, dog.ID))
	got, err := svc.GetPet(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Type)
	require.Len(t, got.Visits, 1)

	sp, err := svc.CreateSpecialty(ctx, clinic.SpecialtyInput{Name: "radiology"})
	require.NoError(t, err)
	vet, err := svc.CreateVet(ctx, clinic.VetInput{FirstName: "Helen", LastName: "Leary", Specialties: []clinic.SpecialtyRef{{ID: &sp.ID}, {ID: &sp.ID}}})
	require.NoError(t, err)
	assert.Len(t, vet.Specialties, 1)

	require.NoError(t, svc.DeleteOwner(ctx, o.ID))
	_, err = svc.GetVisit(ctx, v.ID)
	assert.ErrorIs(t, err, clinic.ErrNotFound)
}
