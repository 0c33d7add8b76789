package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Listing struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	HostID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Name          string    `gorm:"size:255;not null"`
	Description   string    `gorm:"type:text"`
	Location      string    `gorm:"size:255"`
	PricePerNight float64   `gorm:"type:decimal(10,2);not null"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`

	// Relationships
	Host     User      `gorm:"foreignKey:HostID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Bookings []Booking `gorm:"foreignKey:ListingID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Reviews  []Review  `gorm:"foreignKey:ListingID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

func (l *Listing) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}

	if l.PricePerNight < 0 {
		return ErrNegativePrice
	}

	return nil
}

func (l *Listing) Label() string {
	return l.Name
}
