package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stayhaven-dev/stayhaven/db"
	"github.com/stayhaven-dev/stayhaven/internal/models"
	"github.com/stayhaven-dev/stayhaven/internal/serializers"
	"github.com/stayhaven-dev/stayhaven/internal/utils"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type CreateBookingRequest struct {
	ListingID string `json:"listing_id" binding:"required,uuid"`
	UserID    string `json:"user_id" binding:"required,uuid"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Status    string `json:"status"`
}

func CreateBooking(ctx *gin.Context) {
	var req CreateBookingRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	listingID, err := uuid.Parse(req.ListingID)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid listing_id"})
		return
	}

	userID, err := uuid.Parse(req.UserID)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user_id"})
		return
	}

	startDate, err := time.Parse(dateLayout, req.StartDate)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start_date, expected YYYY-MM-DD"})
		return
	}

	endDate, err := time.Parse(dateLayout, req.EndDate)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end_date, expected YYYY-MM-DD"})
		return
	}

	var listing models.Listing

	if err := db.DB.Preload("Host").First(&listing, "id = ?", listingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve listing"})
		}
		return
	}

	var guest models.User

	if err := db.DB.First(&guest, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
		}
		return
	}

	// The total is the creator's responsibility, not the schema's.
	nights := utils.Nights(startDate, endDate)

	booking := models.Booking{
		ListingID:  listingID,
		UserID:     userID,
		StartDate:  startDate,
		EndDate:    endDate,
		TotalPrice: utils.RoundPrice(listing.PricePerNight * float64(nights)),
		Status:     req.Status,
	}

	if err := db.DB.Create(&booking).Error; err != nil {
		if errors.Is(err, models.ErrInvalidDateRange) || errors.Is(err, models.ErrInvalidBookingStatus) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Failed to create booking: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		return
	}

	booking.Listing = listing
	booking.User = guest

	ctx.JSON(http.StatusCreated, serializers.NewBookingResponse(booking))
}

func ListBookings(ctx *gin.Context) {
	var bookings []models.Booking

	if err := db.DB.Preload("Listing.Host").Preload("User").Find(&bookings).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve bookings"})
		return
	}

	response := make([]serializers.BookingResponse, 0, len(bookings))

	for _, booking := range bookings {
		response = append(response, serializers.NewBookingResponse(booking))
	}

	ctx.JSON(http.StatusOK, response)
}

func GetBooking(ctx *gin.Context) {
	bookingID, err := utils.GetUUIDParam(ctx, "booking_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var booking models.Booking

	if err := db.DB.Preload("Listing.Host").Preload("User").First(&booking, "id = ?", bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve booking"})
		}
		return
	}

	ctx.JSON(http.StatusOK, serializers.NewBookingResponse(booking))
}

func DeleteBooking(ctx *gin.Context) {
	bookingID, err := utils.GetUUIDParam(ctx, "booking_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var booking models.Booking

	if err := db.DB.First(&booking, "id = ?", bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve booking"})
		}
		return
	}

	if err := db.DB.Delete(&booking).Error; err != nil {
		log.Printf("Failed to delete booking: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete booking"})
		return
	}

	ctx.Status(http.StatusNoContent)
}
