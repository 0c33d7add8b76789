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

type CreateReviewRequest struct {
	ListingID string `json:"listing_id" binding:"required,uuid"`
	UserID    string `json:"user_id" binding:"required,uuid"`
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment"`
}

func CreateReview(ctx *gin.Context) {
	var req CreateReviewRequest

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

	var listing models.Listing

	if err := db.DB.Preload("Host").First(&listing, "id = ?", listingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve listing"})
		}
		return
	}

	var user models.User

	if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
		}
		return
	}

	review := models.Review{
		ListingID: listingID,
		UserID:    userID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}

	if err := db.DB.Create(&review).Error; err != nil {
		if errors.Is(err, models.ErrInvalidRating) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Failed to create review: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
		return
	}

	review.Listing = listing
	review.User = user

	ctx.JSON(http.StatusCreated, serializers.NewReviewResponse(review))
}

func ListReviews(ctx *gin.Context) {
	var reviews []models.Review

	if err := db.DB.Preload("Listing.Host").Preload("User").Find(&reviews).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve reviews"})
		return
	}

	response := make([]serializers.ReviewResponse, 0, len(reviews))

	for _, review := range reviews {
		response = append(response, serializers.NewReviewResponse(review))
	}

	ctx.JSON(http.StatusOK, response)
}

func GetReview(ctx *gin.Context) {
	reviewID, err := utils.GetUUIDParam(ctx, "review_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var review models.Review

	if err := db.DB.Preload("Listing.Host").Preload("User").First(&review, "id = ?", reviewID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve review"})
		}
		return
	}

	ctx.JSON(http.StatusOK, serializers.NewReviewResponse(review))
}

func DeleteReview(ctx *gin.Context) {
	reviewID, err := utils.GetUUIDParam(ctx, "review_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var review models.Review

	if err := db.DB.First(&review, "id = ?", reviewID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve review"})
		}
		return
	}

	if err := db.DB.Delete(&review).Error; err != nil {
		log.Printf("Failed to delete review: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete review"})
		return
	}

	ctx.Status(http.StatusNoContent)
}
