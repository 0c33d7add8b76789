package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleGuest = "guest"
	RoleHost  = "host"
	RoleAdmin = "admin"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName    string    `gorm:"size:100;not null"`
	LastName     string    `gorm:"size:100;not null"`
	Email        string    `gorm:"size:191;uniqueIndex;not null"`
	PasswordHash string    `gorm:"size:255;not null"`
	PhoneNumber  string    `gorm:"size:20"`
	Role         string    `gorm:"size:10;not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`

	// Relationships
	Listings         []Listing `gorm:"foreignKey:HostID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Bookings         []Booking `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Reviews          []Review  `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	SentMessages     []Message `gorm:"foreignKey:SenderID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	ReceivedMessages []Message `gorm:"foreignKey:RecipientID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}

	switch u.Role {
	case RoleGuest, RoleHost, RoleAdmin:
		return nil
	default:
		return ErrInvalidRole
	}
}

func (u *User) Label() string {
	return u.FirstName + " " + u.LastName
}
