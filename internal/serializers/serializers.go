// Package serializers maps entities to their API representations. Nested
// relations are output-only: creating or updating a related record always
// goes through that record's own creation path, never through the parent's
// representation. Constructors are pure and never touch the store.
package serializers

import (
	"time"

	"github.com/google/uuid"
	"github.com/stayhaven-dev/stayhaven/internal/models"
)

type UserResponse struct {
	ID           uuid.UUID `json:"user_id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	PhoneNumber  string    `json:"phone_number"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

type ListingResponse struct {
	ID            uuid.UUID    `json:"listing_id"`
	Host          UserResponse `json:"host"`
	Name          string       `json:"name"`
	Description   string       `json:"description"`
	Location      string       `json:"location"`
	PricePerNight float64      `json:"price_per_night"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

type BookingResponse struct {
	ID         uuid.UUID       `json:"booking_id"`
	Listing    ListingResponse `json:"listing"`
	User       UserResponse    `json:"user"`
	StartDate  time.Time       `json:"start_date"`
	EndDate    time.Time       `json:"end_date"`
	TotalPrice float64         `json:"total_price"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
}

type PaymentResponse struct {
	ID            uuid.UUID       `json:"payment_id"`
	Booking       BookingResponse `json:"booking"`
	Amount        float64         `json:"amount"`
	PaymentDate   time.Time       `json:"payment_date"`
	PaymentMethod string          `json:"payment_method"`
}

type ReviewResponse struct {
	ID        uuid.UUID       `json:"review_id"`
	Listing   ListingResponse `json:"listing"`
	User      UserResponse    `json:"user"`
	Rating    int             `json:"rating"`
	Comment   string          `json:"comment"`
	CreatedAt time.Time       `json:"created_at"`
}

type MessageResponse struct {
	ID          uuid.UUID    `json:"message_id"`
	Sender      UserResponse `json:"sender"`
	Recipient   UserResponse `json:"recipient"`
	MessageBody string       `json:"message_body"`
	SentAt      time.Time    `json:"sent_at"`
}

func NewUserResponse(user models.User) UserResponse {
	return UserResponse{
		ID:           user.ID,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		PhoneNumber:  user.PhoneNumber,
		Role:         user.Role,
		CreatedAt:    user.CreatedAt,
	}
}

// NewListingResponse expects listing.Host to be preloaded.
func NewListingResponse(listing models.Listing) ListingResponse {
	return ListingResponse{
		ID:            listing.ID,
		Host:          NewUserResponse(listing.Host),
		Name:          listing.Name,
		Description:   listing.Description,
		Location:      listing.Location,
		PricePerNight: listing.PricePerNight,
		CreatedAt:     listing.CreatedAt,
		UpdatedAt:     listing.UpdatedAt,
	}
}

// NewBookingResponse expects booking.Listing (with its host) and
// booking.User to be preloaded.
func NewBookingResponse(booking models.Booking) BookingResponse {
	return BookingResponse{
		ID:         booking.ID,
		Listing:    NewListingResponse(booking.Listing),
		User:       NewUserResponse(booking.User),
		StartDate:  booking.StartDate,
		EndDate:    booking.EndDate,
		TotalPrice: booking.TotalPrice,
		Status:     booking.Status,
		CreatedAt:  booking.CreatedAt,
	}
}

// NewPaymentResponse expects the full booking chain to be preloaded.
func NewPaymentResponse(payment models.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            payment.ID,
		Booking:       NewBookingResponse(payment.Booking),
		Amount:        payment.Amount,
		PaymentDate:   payment.PaymentDate,
		PaymentMethod: payment.PaymentMethod,
	}
}

// NewReviewResponse expects review.Listing (with its host) and review.User
// to be preloaded.
func NewReviewResponse(review models.Review) ReviewResponse {
	return ReviewResponse{
		ID:        review.ID,
		Listing:   NewListingResponse(review.Listing),
		User:      NewUserResponse(review.User),
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}
}

// NewMessageResponse expects message.Sender and message.Recipient to be
// preloaded.
func NewMessageResponse(message models.Message) MessageResponse {
	return MessageResponse{
		ID:          message.ID,
		Sender:      NewUserResponse(message.Sender),
		Recipient:   NewUserResponse(message.Recipient),
		MessageBody: message.MessageBody,
		SentAt:      message.SentAt,
	}
}
