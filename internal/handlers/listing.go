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

type CreateListingRequest struct {
	HostID        string  `json:"host_id" binding:"required,uuid"`
	Name          string  `json:"name" binding:"required"`
	Description   string  `json:"description"`
	Location      string  `json:"location"`
	PricePerNight float64 `json:"price_per_night"`
}

type UpdateListingRequest struct {
	Name          string   `json:"name"`
	Description   *string  `json:"description"`
	Location      *string  `json:"location"`
	PricePerNight *float64 `json:"price_per_night"`
}

func CreateListing(ctx *gin.Context) {
	var req CreateListingRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	hostID, err := uuid.Parse(req.HostID)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid host_id"})
		return
	}

	var host models.User

	if err := db.DB.First(&host, "id = ?", hostID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Host not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve host"})
		}
		return
	}

	listing := models.Listing{
		HostID:        hostID,
		Name:          req.Name,
		Description:   req.Description,
		Location:      req.Location,
		PricePerNight: utils.RoundPrice(req.PricePerNight),
	}

	if err := db.DB.Create(&listing).Error; err != nil {
		if errors.Is(err, models.ErrNegativePrice) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Failed to create listing: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create listing"})
		return
	}

	listing.Host = host

	ctx.JSON(http.StatusCreated, serializers.NewListingResponse(listing))
}

func ListListings(ctx *gin.Context) {
	var listings []models.Listing

	if err := db.DB.Preload("Host").Find(&listings).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve listings"})
		return
	}

	response := make([]serializers.ListingResponse, 0, len(listings))

	for _, listing := range listings {
		response = append(response, serializers.NewListingResponse(listing))
	}

	ctx.JSON(http.StatusOK, response)
}

func GetListing(ctx *gin.Context) {
	listingID, err := utils.GetUUIDParam(ctx, "listing_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
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

	ctx.JSON(http.StatusOK, serializers.NewListingResponse(listing))
}

func UpdateListing(ctx *gin.Context) {
	listingID, err := utils.GetUUIDParam(ctx, "listing_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req UpdateListingRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
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

	if req.Name != "" {
		listing.Name = req.Name
	}

	if req.Description != nil {
		listing.Description = *req.Description
	}

	if req.Location != nil {
		listing.Location = *req.Location
	}

	if req.PricePerNight != nil {
		if *req.PricePerNight < 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": models.ErrNegativePrice.Error()})
			return
		}
		listing.PricePerNight = utils.RoundPrice(*req.PricePerNight)
	}

	// Save touches UpdatedAt through autoUpdateTime.
	if err := db.DB.Save(&listing).Error; err != nil {
		log.Printf("Failed to update listing: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update listing"})
		return
	}

	ctx.JSON(http.StatusOK, serializers.NewListingResponse(listing))
}

func DeleteListing(ctx *gin.Context) {
	listingID, err := utils.GetUUIDParam(ctx, "listing_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var listing models.Listing

	if err := db.DB.First(&listing, "id = ?", listingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve listing"})
		}
		return
	}

	if err := db.DB.Delete(&listing).Error; err != nil {
		log.Printf("Failed to delete listing: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete listing"})
		return
	}

	ctx.Status(http.StatusNoContent)
}
