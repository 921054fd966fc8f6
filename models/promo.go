package models

import "time"

// Promo discount types.
const (
	PromoPercent = "percent"
	PromoFixed   = "fixed"
)

// PromoCode is a back-office managed discount code.
type PromoCode struct {
	ID         string    `bson:"id" json:"id"`
	Code       string    `bson:"code" json:"code"`
	Type       string    `bson:"type" json:"type"` // "percent" or "fixed"
	Value      float64   `bson:"value" json:"value"`
	ValidFrom  time.Time `bson:"validFrom" json:"validFrom"`
	ValidUntil time.Time `bson:"validUntil" json:"validUntil"`
	MaxUses    int       `bson:"maxUses" json:"maxUses"` // 0 means unlimited
	Uses       int       `bson:"uses" json:"uses"`
	Active     bool      `bson:"active" json:"active"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}

// PromoResult is the advisory outcome of validating a code against an amount.
type PromoResult struct {
	Valid    bool    `json:"valid"`
	Discount float64 `json:"discount,omitempty"`
	Reason   string  `json:"reason,omitempty"`
}
