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

type CreateMessageRequest struct {
	SenderID    string `json:"sender_id" binding:"required,uuid"`
	RecipientID string `json:"recipient_id" binding:"required,uuid"`
	MessageBody string `json:"message_body" binding:"required"`
}

func CreateMessage(ctx *gin.Context) {
	var req CreateMessageRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	senderID, err := uuid.Parse(req.SenderID)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sender_id"})
		return
	}

	recipientID, err := uuid.Parse(req.RecipientID)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipient_id"})
		return
	}

	var sender models.User

	if err := db.DB.First(&sender, "id = ?", senderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Sender not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve sender"})
		}
		return
	}

	var recipient models.User

	if err := db.DB.First(&recipient, "id = ?", recipientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Recipient not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve recipient"})
		}
		return
	}

	message := models.Message{
		SenderID:    senderID,
		RecipientID: recipientID,
		MessageBody: req.MessageBody,
	}

	if err := db.DB.Create(&message).Error; err != nil {
		if errors.Is(err, models.ErrSelfMessage) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Failed to create message: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create message"})
		return
	}

	message.Sender = sender
	message.Recipient = recipient

	ctx.JSON(http.StatusCreated, serializers.NewMessageResponse(message))
}

func ListMessages(ctx *gin.Context) {
	var messages []models.Message

	if err := db.DB.Preload("Sender").Preload("Recipient").Find(&messages).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve messages"})
		return
	}

	response := make([]serializers.MessageResponse, 0, len(messages))

	for _, message := range messages {
		response = append(response, serializers.NewMessageResponse(message))
	}

	ctx.JSON(http.StatusOK, response)
}

func GetMessage(ctx *gin.Context) {
	messageID, err := utils.GetUUIDParam(ctx, "message_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var message models.Message

	if err := db.DB.Preload("Sender").Preload("Recipient").First(&message, "id = ?", messageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve message"})
		}
		return
	}

	ctx.JSON(http.StatusOK, serializers.NewMessageResponse(message))
}
