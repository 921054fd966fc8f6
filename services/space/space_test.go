package space

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	spaceRepo "workhive/database/repository/space"
	"workhive/models"
)

type stubSpaceRepo struct {
	spaces map[string]*models.Space
}

func newStubSpaceRepo() *stubSpaceRepo {
	return &stubSpaceRepo{spaces: make(map[string]*models.Space)}
}

func (r *stubSpaceRepo) Create(space *models.Space) error {
	r.spaces[space.ID] = space
	return nil
}

func (r *stubSpaceRepo) GetByID(id string) (*models.Space, error) {
	space, ok := r.spaces[id]
	if !ok {
		return nil, errors.New("space not found")
	}
	copied := *space
	return &copied, nil
}

func (r *stubSpaceRepo) Update(space *models.Space) error {
	r.spaces[space.ID] = space
	return nil
}

func (r *stubSpaceRepo) List(filter spaceRepo.SpaceFilter) ([]models.Space, error) {
	var out []models.Space
	for _, s := range r.spaces {
		if filter.Type != "" && s.Type != filter.Type {
			continue
		}
		if filter.Disponible != nil && s.Disponible != *filter.Disponible {
			continue
		}
		out = append(out, *s)
	}
	return out, nil
}

func (r *stubSpaceRepo) SetDisponible(id string, disponible bool) error {
	space, ok := r.spaces[id]
	if !ok {
		return errors.New("space not found")
	}
	space.Disponible = disponible
	return nil
}

func validInput() SpaceInput {
	return SpaceInput{
		Name:        "Open Space",
		Type:        models.SpaceTypeShared,
		Capacity:    12,
		PriceHourly: 5,
		PriceDay:    30,
		Disponible:  true,
	}
}

func TestCreateSpace(t *testing.T) {
	svc := &DefaultSpaceService{Repo: newStubSpaceRepo()}

	space, err := svc.CreateSpace(validInput())
	require.NoError(t, err)
	assert.NotEmpty(t, space.ID)
	assert.Equal(t, "Open Space", space.Name)
	assert.Equal(t, 12, space.Capacity)
	assert.True(t, space.Disponible)
	assert.False(t, space.CreatedAt.IsZero())
}

func TestCreateSpaceValidation(t *testing.T) {
	svc := &DefaultSpaceService{Repo: newStubSpaceRepo()}

	tests := []struct {
		name   string
		mutate func(*SpaceInput)
	}{
		{"missing name", func(in *SpaceInput) { in.Name = "" }},
		{"bad type", func(in *SpaceInput) { in.Type = "penthouse" }},
		{"zero capacity", func(in *SpaceInput) { in.Capacity = 0 }},
		{"negative capacity", func(in *SpaceInput) { in.Capacity = -3 }},
		{"negative price", func(in *SpaceInput) { in.PriceHourly = -1 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			input := validInput()
			tc.mutate(&input)
			_, err := svc.CreateSpace(input)
			assert.Error(t, err)
		})
	}
}

func TestUpdateSpace(t *testing.T) {
	repo := newStubSpaceRepo()
	svc := &DefaultSpaceService{Repo: repo}

	space, err := svc.CreateSpace(validInput())
	require.NoError(t, err)

	input := validInput()
	input.Name = "Renamed"
	input.Capacity = 20
	updated, err := svc.UpdateSpace(space.ID, input)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, 20, updated.Capacity)
	assert.Equal(t, space.ID, updated.ID)

	_, err = svc.UpdateSpace("missing", input)
	assert.Error(t, err)
}

func TestListSpacesFilter(t *testing.T) {
	repo := newStubSpaceRepo()
	svc := &DefaultSpaceService{Repo: repo}

	shared := validInput()
	_, err := svc.CreateSpace(shared)
	require.NoError(t, err)

	exclusive := validInput()
	exclusive.Name = "Corner Office"
	exclusive.Type = models.SpaceTypeExclusive
	exclusive.Capacity = 4
	_, err = svc.CreateSpace(exclusive)
	require.NoError(t, err)

	all, err := svc.ListSpaces(spaceRepo.SpaceFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	onlyShared, err := svc.ListSpaces(spaceRepo.SpaceFilter{Type: models.SpaceTypeShared})
	require.NoError(t, err)
	require.Len(t, onlyShared, 1)
	assert.Equal(t, "Open Space", onlyShared[0].Name)
}

func TestSetDisponible(t *testing.T) {
	repo := newStubSpaceRepo()
	svc := &DefaultSpaceService{Repo: repo}

	space, err := svc.CreateSpace(validInput())
	require.NoError(t, err)

	require.NoError(t, svc.SetDisponible(space.ID, false))
	stored, err := svc.GetSpace(space.ID)
	require.NoError(t, err)
	assert.False(t, stored.Disponible)
}
