package promo

import (
	"math"
	"time"

	"github.com/google/uuid"

	promoRepo "workhive/database/repository/promo"
	"workhive/models"
)

// PromoService validates and manages discount codes. Validation is purely
// advisory: it reports a discount for a given amount, nothing more.
type PromoService interface {
	Validate(code string, amount float64) (models.PromoResult, error)
	Redeem(code string) error
	CreatePromo(promo models.PromoCode) (*models.PromoCode, error)
	ListPromos(activeOnly bool) ([]models.PromoCode, error)
	DeactivatePromo(code string) error
}

// DefaultPromoService implements PromoService.
type DefaultPromoService struct {
	Repo promoRepo.PromoRepository
}

// Validate checks a code against its validity window and usage cap and
// computes the discount for the given amount. Unknown or inapplicable
// codes come back with Valid=false and a reason, not an error; errors are
// reserved for storage failures.
func (svc *DefaultPromoService) Validate(code string, amount float64) (models.PromoResult, error) {
	promo, err := svc.Repo.GetByCode(code)
	if err != nil {
		return models.PromoResult{Valid: false, Reason: "unknown code"}, nil
	}
	now := time.Now()
	switch {
	case !promo.Active:
		return models.PromoResult{Valid: false, Reason: "code is no longer active"}, nil
	case !promo.ValidFrom.IsZero() && now.Before(promo.ValidFrom):
		return models.PromoResult{Valid: false, Reason: "code is not valid yet"}, nil
	case !promo.ValidUntil.IsZero() && now.After(promo.ValidUntil):
		return models.PromoResult{Valid: false, Reason: "code has expired"}, nil
	case promo.MaxUses > 0 && promo.Uses >= promo.MaxUses:
		return models.PromoResult{Valid: false, Reason: "code has reached its usage limit"}, nil
	}

	var discount float64
	switch promo.Type {
	case models.PromoPercent:
		discount = amount * promo.Value / 100
	case models.PromoFixed:
		discount = promo.Value
	default:
		return models.PromoResult{Valid: false, Reason: "unsupported discount type"}, nil
	}
	if discount > amount {
		discount = amount
	}
	discount = math.Round(discount*100) / 100
	return models.PromoResult{Valid: true, Discount: discount}, nil
}

func (svc *DefaultPromoService) Redeem(code string) error {
	return svc.Repo.IncrementUses(code)
}

func (svc *DefaultPromoService) CreatePromo(promo models.PromoCode) (*models.PromoCode, error) {
	promo.ID = uuid.New().String()
	promo.Uses = 0
	promo.CreatedAt = time.Now().UTC()
	if err := svc.Repo.Create(&promo); err != nil {
		return nil, err
	}
	return &promo, nil
}

func (svc *DefaultPromoService) ListPromos(activeOnly bool) ([]models.PromoCode, error) {
	return svc.Repo.List(activeOnly)
}

func (svc *DefaultPromoService) DeactivatePromo(code string) error {
	promo, err := svc.Repo.GetByCode(code)
	if err != nil {
		return err
	}
	promo.Active = false
	return svc.Repo.Update(promo)
}
