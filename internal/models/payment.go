package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PaymentCreditCard = "credit_card"
	PaymentPayPal     = "paypal"
	PaymentStripe     = "stripe"
)

type Payment struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	BookingID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount        float64   `gorm:"type:decimal(10,2);not null"`
	PaymentDate   time.Time `gorm:"autoCreateTime"`
	PaymentMethod string    `gorm:"size:20;not null"`

	// Relationships
	Booking Booking `gorm:"foreignKey:BookingID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	if p.Amount < 0 {
		return ErrNegativeAmount
	}

	switch p.PaymentMethod {
	case PaymentCreditCard, PaymentPayPal, PaymentStripe:
		return nil
	default:
		return ErrInvalidPaymentMethod
	}
}

func (p *Payment) Label() string {
	return "Payment " + p.ID.String()
}
