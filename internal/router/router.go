package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/stayhaven-dev/stayhaven/internal/handlers"
	"github.com/stayhaven-dev/stayhaven/internal/types"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		users := api.Group("/users")
		{
			users.POST("", handlers.CreateUser)
			users.GET("", handlers.ListUsers)
			users.GET("/:user_id", handlers.GetUser)
			users.DELETE("/:user_id", handlers.DeleteUser)
		}

		listings := api.Group("/listings")
		{
			listings.POST("", handlers.CreateListing)
			listings.GET("", handlers.ListListings)
			listings.GET("/:listing_id", handlers.GetListing)
			listings.PATCH("/:listing_id", handlers.UpdateListing)
			listings.DELETE("/:listing_id", handlers.DeleteListing)
		}

		bookings := api.Group("/bookings")
		{
			bookings.POST("", handlers.CreateBooking)
			bookings.GET("", handlers.ListBookings)
			bookings.GET("/:booking_id", handlers.GetBooking)
			bookings.DELETE("/:booking_id", handlers.DeleteBooking)
		}

		payments := api.Group("/payments")
		{
			payments.POST("", handlers.CreatePayment)
			payments.GET("", handlers.ListPayments)
			payments.GET("/:payment_id", handlers.GetPayment)
		}

		reviews := api.Group("/reviews")
		{
			reviews.POST("", handlers.CreateReview)
			reviews.GET("", handlers.ListReviews)
			reviews.GET("/:review_id", handlers.GetReview)
			reviews.DELETE("/:review_id", handlers.DeleteReview)
		}

		messages := api.Group("/messages")
		{
			messages.POST("", handlers.CreateMessage)
			messages.GET("", handlers.ListMessages)
			messages.GET("/:message_id", handlers.GetMessage)
		}
	}

	return r
}
