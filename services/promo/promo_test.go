package promo

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workhive/models"
)

type stubPromoRepo struct {
	promos map[string]*models.PromoCode
}

func newStubPromoRepo(promos ...models.PromoCode) *stubPromoRepo {
	repo := &stubPromoRepo{promos: make(map[string]*models.PromoCode)}
	for i := range promos {
		repo.promos[promos[i].Code] = &promos[i]
	}
	return repo
}

func (r *stubPromoRepo) Create(promo *models.PromoCode) error {
	r.promos[promo.Code] = promo
	return nil
}

func (r *stubPromoRepo) GetByCode(code string) (*models.PromoCode, error) {
	promo, ok := r.promos[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return nil, errors.New("promo code not found")
	}
	copied := *promo
	return &copied, nil
}

func (r *stubPromoRepo) Update(promo *models.PromoCode) error {
	r.promos[promo.Code] = promo
	return nil
}

func (r *stubPromoRepo) List(activeOnly bool) ([]models.PromoCode, error) {
	var out []models.PromoCode
	for _, p := range r.promos {
		if activeOnly && !p.Active {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubPromoRepo) IncrementUses(code string) error {
	if p, ok := r.promos[code]; ok {
		p.Uses++
	}
	return nil
}

func TestValidatePercentDiscount(t *testing.T) {
	svc := &DefaultPromoService{Repo: newStubPromoRepo(models.PromoCode{
		Code: "SAVE20", Type: models.PromoPercent, Value: 20, Active: true,
	})}

	result, err := svc.Validate("SAVE20", 150)
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Equal(t, 30.0, result.Discount)
}

func TestValidateFixedDiscountCappedAtAmount(t *testing.T) {
	svc := &DefaultPromoService{Repo: newStubPromoRepo(models.PromoCode{
		Code: "FLAT50", Type: models.PromoFixed, Value: 50, Active: true,
	})}

	result, err := svc.Validate("FLAT50", 200)
	require.NoError(t, err)
	assert.Equal(t, 50.0, result.Discount)

	// The discount never exceeds the amount.
	result, err = svc.Validate("FLAT50", 30)
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Equal(t, 30.0, result.Discount)
}

func TestValidateRejections(t *testing.T) {
	now := time.Now()
	svc := &DefaultPromoService{Repo: newStubPromoRepo(
		models.PromoCode{Code: "INACTIVE", Type: models.PromoFixed, Value: 5, Active: false},
		models.PromoCode{Code: "FUTURE", Type: models.PromoFixed, Value: 5, Active: true,
			ValidFrom: now.AddDate(0, 1, 0)},
		models.PromoCode{Code: "EXPIRED", Type: models.PromoFixed, Value: 5, Active: true,
			ValidUntil: now.AddDate(0, -1, 0)},
		models.PromoCode{Code: "USEDUP", Type: models.PromoFixed, Value: 5, Active: true,
			MaxUses: 3, Uses: 3},
		models.PromoCode{Code: "WEIRD", Type: "buy-one-get-one", Value: 5, Active: true},
	)}

	for _, code := range []string{"NOSUCHCODE", "INACTIVE", "FUTURE", "EXPIRED", "USEDUP", "WEIRD"} {
		result, err := svc.Validate(code, 100)
		require.NoError(t, err, code)
		assert.False(t, result.Valid, code)
		assert.NotEmpty(t, result.Reason, code)
		assert.Zero(t, result.Discount, code)
	}
}

func TestValidateUnlimitedUses(t *testing.T) {
	svc := &DefaultPromoService{Repo: newStubPromoRepo(models.PromoCode{
		Code: "EVERGREEN", Type: models.PromoPercent, Value: 10, Active: true,
		MaxUses: 0, Uses: 9999,
	})}

	result, err := svc.Validate("EVERGREEN", 100)
	require.NoError(t, err)
	assert.True(t, result.Valid)
}

func TestValidateRoundsDiscount(t *testing.T) {
	svc := &DefaultPromoService{Repo: newStubPromoRepo(models.PromoCode{
		Code: "ODD", Type: models.PromoPercent, Value: 33, Active: true,
	})}

	result, err := svc.Validate("ODD", 10)
	require.NoError(t, err)
	assert.Equal(t, 3.3, result.Discount)
}

func TestRedeemIncrementsUses(t *testing.T) {
	repo := newStubPromoRepo(models.PromoCode{
		Code: "SAVE20", Type: models.PromoPercent, Value: 20, Active: true,
	})
	svc := &DefaultPromoService{Repo: repo}

	require.NoError(t, svc.Redeem("SAVE20"))
	require.NoError(t, svc.Redeem("SAVE20"))
	assert.Equal(t, 2, repo.promos["SAVE20"].Uses)
}

func TestCreatePromoAssignsIDAndResetsUses(t *testing.T) {
	repo := newStubPromoRepo()
	svc := &DefaultPromoService{Repo: repo}

	created, err := svc.CreatePromo(models.PromoCode{
		Code: "LAUNCH", Type: models.PromoFixed, Value: 15, Active: true, Uses: 42,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Zero(t, created.Uses)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestDeactivatePromo(t *testing.T) {
	repo := newStubPromoRepo(models.PromoCode{
		Code: "SAVE20", Type: models.PromoPercent, Value: 20, Active: true,
	})
	svc := &DefaultPromoService{Repo: repo}

	require.NoError(t, svc.DeactivatePromo("SAVE20"))

	result, err := svc.Validate("SAVE20", 100)
	require.NoError(t, err)
	assert.False(t, result.Valid)
}
