package models

import "time"

// Space types.
const (
	SpaceTypeExclusive = "exclusive" // one party at a time (private office, meeting room)
	SpaceTypeShared    = "shared"    // seat capacity shared across concurrent reservations
)

// Space represents a bookable coworking unit.
type Space struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Type         string    `bson:"type" json:"type"` // "exclusive" or "shared"
	Capacity     int       `bson:"capacity" json:"capacity"`
	PriceHourly  float64   `bson:"priceHourly" json:"priceHourly"`
	PriceHalfDay float64   `bson:"priceHalfDay" json:"priceHalfDay"`
	PriceDay     float64   `bson:"priceDay" json:"priceDay"`
	PriceWeek    float64   `bson:"priceWeek" json:"priceWeek"`
	Disponible   bool      `bson:"disponible" json:"disponible"` // back-office availability toggle
	Description  string    `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ValidSpaceType reports whether t is a recognized space type.
func ValidSpaceType(t string) bool {
	return t == SpaceTypeExclusive || t == SpaceTypeShared
}
