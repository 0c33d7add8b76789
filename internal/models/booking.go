package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCanceled  = "canceled"
)

type Booking struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ListingID  uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	StartDate  time.Time `gorm:"type:date;not null"`
	EndDate    time.Time `gorm:"type:date;not null"`
	TotalPrice float64   `gorm:"type:decimal(10,2);not null"`
	Status     string    `gorm:"size:10;not null;default:pending"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`

	// Relationships
	Listing  Listing   `gorm:"foreignKey:ListingID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	User     User      `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Payments []Payment `gorm:"foreignKey:BookingID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}

	if b.Status == "" {
		b.Status = BookingPending
	}

	if !b.EndDate.After(b.StartDate) {
		return ErrInvalidDateRange
	}

	switch b.Status {
	case BookingPending, BookingConfirmed, BookingCanceled:
		return nil
	default:
		return ErrInvalidBookingStatus
	}
}

func (b *Booking) Label() string {
	return "Booking " + b.ID.String()
}
