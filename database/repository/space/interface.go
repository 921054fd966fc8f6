package spaceRepo

import "workhive/models"

// SpaceFilter narrows a space listing.
type SpaceFilter struct {
	Type       string // "exclusive", "shared" or empty for all
	Disponible *bool  // nil for all
}

// SpaceRepository defines the interface for space data access.
type SpaceRepository interface {
	Create(space *models.Space) error
	GetByID(id string) (*models.Space, error)
	Update(space *models.Space) error
	List(filter SpaceFilter) ([]models.Space, error)
	SetDisponible(id string, disponible bool) error
}
