package promoRepo

import "workhive/models"

// PromoRepository defines the interface for promo code data access.
type PromoRepository interface {
	Create(promo *models.PromoCode) error
	GetByCode(code string) (*models.PromoCode, error)
	Update(promo *models.PromoCode) error
	List(activeOnly bool) ([]models.PromoCode, error)
	IncrementUses(code string) error
}
