package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lite "petclinic/internal/adapters/storage/sqlite"
	"petclinic/internal/domain/clinic"
)

func setupTestDB(t *testing.T) *clinic.Service {
	t.Helper()

	db, err := lite.Open(filepath.Join(t.TempDir(), "petclinic.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	require.NoError(t, lite.RunMigrations(context.Background(), db))
	// idempotente
	require.NoError(t, lite.RunMigrations(context.Background(), db))

	return clinic.NewService(lite.NewRepositories(db))
}

func ptr[T any](v T) *T { return &v }

func newOwner(t *testing.T, svc *clinic.Service, last string) clinic.Owner {
	t.Helper()
	o, err := svc.CreateOwner(context.Background(), clinic.OwnerInput{
		FirstName: "Jean", LastName: last, Address: "105 N. Lake St.", City: "Monona", Telephone: "6085552654",
	})
	require.NoError(t, err)
	return o
}

func TestOwnersPrefixAndPaging(t *testing.T) {
	svc := setupTestDB(t)
	ctx := context.Background()
	for _, ln := range []string{"Davis", "davis", "McDavid", "Da_vinci"} {
		newOwner(t, svc, ln)
	}

	owners, err := svc.ListOwners(ctx, "da")
	require.NoError(t, err)
	assert.Len(t, owners, 3)

	// "_" se escapa: no es comodín
	owners, err = svc.ListOwners(ctx, "Da_")
	require.NoError(t, err)
	require.Len(t, owners, 1)
	assert.Equal(t, "Da_vinci", owners[0].LastName)

	// en blanco no filtra, igual que en memoria
	owners, err = svc.ListOwners(ctx, "  ")
	require.NoError(t, err)
	assert.Len(t, owners, 4)

	page, err := svc.PageOwners(ctx, "", 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 4, page.Total)
	require.Len(t, page.Owners, 2)
}

func TestPetLifecycleAndCascade(t *testing.T) {
	svc := setupTestDB(t)
	ctx := context.Background()
	o := newOwner(t, svc, "Coleman")
	cat, err := svc.CreatePetType(ctx, clinic.PetTypeInput{Name: "cat"})
	require.NoError(t, err)

	born := time.Date(2012, 8, 6, 0, 0, 0, 0, time.UTC)
	p, err := svc.CreatePet(ctx, clinic.PetInput{Name: "Samantha", BirthDate: &born, TypeID: &cat.ID, OwnerID: o.ID})
	require.NoError(t, err)

	visitDate := time.Date(2013, 1, 1, 0, 0, 0, 0, time.UTC)
	v1, err := svc.CreateVisit(ctx, clinic.VisitInput{PetID: p.ID, Description: "rabies shot", Date: &visitDate})
	require.NoError(t, err)
	v2, err := svc.CreateVisit(ctx, clinic.VisitInput{PetID: p.ID, Description: "spayed"})
	require.NoError(t, err)
	_, err = svc.UpdateVisit(ctx, v2.ID, clinic.VisitPatch{Date: clinic.DatePatch{Present: true}})
	require.NoError(t, err)

	got, err := svc.GetOwner(ctx, o.ID)
	require.NoError(t, err)
	require.Len(t, got.Pets, 1)
	pet := got.Pets[0]
	require.NotNil(t, pet.Type)
	assert.Equal(t, "cat", pet.Type.Name)
	assert.Equal(t, born, *pet.BirthDate)
	require.Len(t, pet.Visits, 2)
	assert.Equal(t, v1.ID, pet.Visits[0].ID)
	assert.Nil(t, pet.Visits[1].Date)

	updated, err := svc.UpdatePet(ctx, p.ID, clinic.PetPatch{Name: ptr("Sam")})
	require.NoError(t, err)
	assert.Equal(t, "Sam", updated.Name)
	assert.Equal(t, cat.ID, *updated.TypeID)

	require.NoError(t, svc.DeletePetType(ctx, cat.ID))
	updated, err = svc.GetPet(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, updated.Type)

	require.NoError(t, svc.DeleteOwner(ctx, o.ID))
	_, err = svc.GetPet(ctx, p.ID)
	assert.ErrorIs(t, err, clinic.ErrNotFound)
	_, err = svc.GetVisit(ctx, v1.ID)
	assert.ErrorIs(t, err, clinic.ErrNotFound)
	require.ErrorIs(t, svc.DeleteOwner(ctx, o.ID), clinic.ErrNotFound)
}

func TestVetSpecialtiesJoinTable(t *testing.T) {
	svc := setupTestDB(t)
	ctx := context.Background()
	radiology, err := svc.CreateSpecialty(ctx, clinic.SpecialtyInput{Name: "radiology"})
	require.NoError(t, err)
	surgery, err := svc.CreateSpecialty(ctx, clinic.SpecialtyInput{Name: "surgery"})
	require.NoError(t, err)

	v, err := svc.CreateVet(ctx, clinic.VetInput{
		FirstName: "Linda", LastName: "Douglas",
		Specialties: []clinic.SpecialtyRef{{Name: ptr("surgery")}, {ID: &radiology.ID}, {ID: &surgery.ID}, {ID: ptr(int64(77))}},
	})
	require.NoError(t, err)
	require.Len(t, v.Specialties, 2)
	// ordenadas por nombre
	assert.Equal(t, "radiology", v.Specialties[0].Name)

	v, err = svc.UpdateVet(ctx, v.ID, clinic.VetPatch{Specialties: &[]clinic.SpecialtyRef{{ID: &surgery.ID}}})
	require.NoError(t, err)
	assert.Equal(t, []int64{surgery.ID}, v.SpecialtyIDs())

	require.NoError(t, svc.DeleteSpecialty(ctx, surgery.ID))
	v, err = svc.GetVet(ctx, v.ID)
	require.NoError(t, err)
	assert.Empty(t, v.Specialties)

	require.NoError(t, svc.DeleteVet(ctx, v.ID))
	vets, err := svc.ListVets(ctx)
	require.NoError(t, err)
	assert.Empty(t, vets)
	specialties, err := svc.ListSpecialties(ctx)
	require.NoError(t, err)
	assert.Len(t, specialties, 1)
}

func TestNotFoundTranslation(t *testing.T) {
	svc := setupTestDB(t)
	ctx := context.Background()

	_, err := svc.GetVet(ctx, 1)
	assert.EqualError(t, err, "Vet not found")
	_, err = svc.UpdatePetType(ctx, 1, clinic.PetTypePatch{Name: ptr("x")})
	assert.EqualError(t, err, "Pet type not found")
	assert.EqualError(t, svc.DeleteVisit(ctx, 1), "Visit not found")
}
