package space

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	spaceRepo "workhive/database/repository/space"
	"workhive/models"
)

// SpaceService manages the back-office space catalogue.
type SpaceService interface {
	CreateSpace(input SpaceInput) (*models.Space, error)
	UpdateSpace(id string, input SpaceInput) (*models.Space, error)
	GetSpace(id string) (*models.Space, error)
	ListSpaces(filter spaceRepo.SpaceFilter) ([]models.Space, error)
	SetDisponible(id string, disponible bool) error
}

// SpaceInput carries normalized space fields from the API boundary.
type SpaceInput struct {
	Name         string
	Type         string
	Capacity     int
	PriceHourly  float64
	PriceHalfDay float64
	PriceDay     float64
	PriceWeek    float64
	Disponible   bool
	Description  string
}

// DefaultSpaceService implements SpaceService.
type DefaultSpaceService struct {
	Repo spaceRepo.SpaceRepository
}

func validateInput(input SpaceInput) error {
	if input.Name == "" {
		return fmt.Errorf("name is required")
	}
	if !models.ValidSpaceType(input.Type) {
		return fmt.Errorf("type must be %q or %q", models.SpaceTypeExclusive, models.SpaceTypeShared)
	}
	// Capacity below 1 would make every availability computation degenerate.
	if input.Capacity < 1 {
		return fmt.Errorf("capacity must be at least 1")
	}
	if input.PriceHourly < 0 || input.PriceHalfDay < 0 || input.PriceDay < 0 || input.PriceWeek < 0 {
		return fmt.Errorf("prices must not be negative")
	}
	return nil
}

func (svc *DefaultSpaceService) CreateSpace(input SpaceInput) (*models.Space, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	space := &models.Space{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Type:         input.Type,
		Capacity:     input.Capacity,
		PriceHourly:  input.PriceHourly,
		PriceHalfDay: input.PriceHalfDay,
		PriceDay:     input.PriceDay,
		PriceWeek:    input.PriceWeek,
		Disponible:   input.Disponible,
		Description:  input.Description,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := svc.Repo.Create(space); err != nil {
		return nil, err
	}
	return space, nil
}

func (svc *DefaultSpaceService) UpdateSpace(id string, input SpaceInput) (*models.Space, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	space, err := svc.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	space.Name = input.Name
	space.Type = input.Type
	space.Capacity = input.Capacity
	space.PriceHourly = input.PriceHourly
	space.PriceHalfDay = input.PriceHalfDay
	space.PriceDay = input.PriceDay
	space.PriceWeek = input.PriceWeek
	space.Disponible = input.Disponible
	space.Description = input.Description
	if err := svc.Repo.Update(space); err != nil {
		return nil, err
	}
	return space, nil
}

func (svc *DefaultSpaceService) GetSpace(id string) (*models.Space, error) {
	return svc.Repo.GetByID(id)
}

func (svc *DefaultSpaceService) ListSpaces(filter spaceRepo.SpaceFilter) ([]models.Space, error) {
	return svc.Repo.List(filter)
}

func (svc *DefaultSpaceService) SetDisponible(id string, disponible bool) error {
	return svc.Repo.SetDisponible(id, disponible)
}
