package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stayhaven-dev/stayhaven/db"
	"github.com/stayhaven-dev/stayhaven/internal/models"
	"github.com/stayhaven-dev/stayhaven/internal/serializers"
	"github.com/stayhaven-dev/stayhaven/internal/utils"
	"gorm.io/gorm"
)

type CreatePaymentRequest struct {
	BookingID     string   `json:"booking_id" binding:"required,uuid"`
	Amount        *float64 `json:"amount"`
	PaymentMethod string   `json:"payment_method" binding:"required"`
}

func CreatePayment(ctx *gin.Context) {
	var req CreatePaymentRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	bookingID, err := uuid.Parse(req.BookingID)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking_id"})
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

	// Defaults to the booking total when the caller leaves the amount out.
	amount := booking.TotalPrice

	if req.Amount != nil {
		amount = utils.RoundPrice(*req.Amount)
	}

	payment := models.Payment{
		BookingID:     bookingID,
		Amount:        amount,
		PaymentMethod: req.PaymentMethod,
	}

	if err := db.DB.Create(&payment).Error; err != nil {
		if errors.Is(err, models.ErrInvalidPaymentMethod) || errors.Is(err, models.ErrNegativeAmount) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Failed to create payment: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment"})
		return
	}

	payment.Booking = booking

	ctx.JSON(http.StatusCreated, serializers.NewPaymentResponse(payment))
}

func ListPayments(ctx *gin.Context) {
	var payments []models.Payment

	if err := db.DB.Preload("Booking.Listing.Host").Preload("Booking.User").Find(&payments).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve payments"})
		return
	}

	response := make([]serializers.PaymentResponse, 0, len(payments))

	for _, payment := range payments {
		response = append(response, serializers.NewPaymentResponse(payment))
	}

	ctx.JSON(http.StatusOK, response)
}

func GetPayment(ctx *gin.Context) {
	paymentID, err := utils.GetUUIDParam(ctx, "payment_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var payment models.Payment

	if err := db.DB.Preload("Booking.Listing.Host").Preload("Booking.User").First(&payment, "id = ?", paymentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve payment"})
		}
		return
	}

	ctx.JSON(http.StatusOK, serializers.NewPaymentResponse(payment))
}
