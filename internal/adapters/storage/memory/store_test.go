package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petclinic/internal/domain/clinic"
)

func TestSpecialtyGetByNamePicksLowestID(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories()

	first, err := repos.Specialties.Create(ctx, clinic.Specialty{Name: "surgery"})
	require.NoError(t, err)
	_, err = repos.Specialties.Create(ctx, clinic.Specialty{Name: "surgery"})
	require.NoError(t, err)

	got, err := repos.Specialties.GetByName(ctx, "surgery")
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)

	_, err = repos.Specialties.GetByName(ctx, "Surgery")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOwnerDeleteCascadesInStore(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	repos := NewRepositoriesWithStore(s)

	o, err := repos.Owners.Create(ctx, clinic.Owner{FirstName: "Jean", LastName: "Coleman"})
	require.NoError(t, err)
	p, err := repos.Pets.Create(ctx, clinic.Pet{Name: "Max", OwnerID: o.ID})
	require.NoError(t, err)
	_, err = repos.Visits.Create(ctx, clinic.Visit{PetID: p.ID, Description: "neutered"})
	require.NoError(t, err)

	require.NoError(t, repos.Owners.Delete(ctx, o.ID))
	assert.Empty(t, s.owners)
	assert.Empty(t, s.pets)
	assert.Empty(t, s.visits)

	assert.ErrorIs(t, repos.Owners.Delete(ctx, o.ID), ErrNotFound)
}

func TestVisitsOrderedByDateNullsLast(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories()

	o, err := repos.Owners.Create(ctx, clinic.Owner{FirstName: "Maria", LastName: "Escobito"})
	require.NoError(t, err)
	p1, err := repos.Pets.Create(ctx, clinic.Pet{Name: "Mulligan", OwnerID: o.ID})
	require.NoError(t, err)
	p2, err := repos.Pets.Create(ctx, clinic.Pet{Name: "Freddy", OwnerID: o.ID})
	require.NoError(t, err)

	d := func(y int) *time.Time {
		t := time.Date(y, 1, 1, 0, 0, 0, 0, time.UTC)
		return &t
	}
	undated, _ := repos.Visits.Create(ctx, clinic.Visit{PetID: p1.ID, Description: "a"})
	late, _ := repos.Visits.Create(ctx, clinic.Visit{PetID: p1.ID, Description: "b", Date: d(2014)})
	early, _ := repos.Visits.Create(ctx, clinic.Visit{PetID: p1.ID, Description: "c", Date: d(2010)})
	_, err = repos.Visits.Create(ctx, clinic.Visit{PetID: p2.ID, Description: "other pet", Date: d(2000)})
	require.NoError(t, err)

	_, err = repos.Visits.Create(ctx, clinic.Visit{PetID: 99, Description: "orphan"})
	assert.ErrorIs(t, err, ErrNotFound)

	visits, err := repos.Visits.List(ctx, clinic.VisitFilter{PetID: p1.ID})
	require.NoError(t, err)
	require.Len(t, visits, 3)
	assert.Equal(t, []int64{early.ID, late.ID, undated.ID}, []int64{visits[0].ID, visits[1].ID, visits[2].ID})

	all, err := repos.Visits.List(ctx, clinic.VisitFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestVetJoinTableIgnoresUnknownSpecialties(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories()

	sp, err := repos.Specialties.Create(ctx, clinic.Specialty{Name: "dentistry"})
	require.NoError(t, err)
	v, err := repos.Vets.Create(ctx, clinic.Vet{
		FirstName:   "Sharon",
		LastName:    "Jenkins",
		Specialties: []clinic.Specialty{sp, sp, {ID: 99, Name: "ghost"}},
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{sp.ID}, v.SpecialtyIDs())

	require.NoError(t, repos.Specialties.Delete(ctx, sp.ID))
	v, err = repos.Vets.GetByID(ctx, v.ID)
	require.NoError(t, err)
	assert.Empty(t, v.Specialties)
}
