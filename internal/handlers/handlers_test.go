package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stayhaven-dev/stayhaven/db"
	"github.com/stayhaven-dev/stayhaven/internal/models"
	"github.com/stayhaven-dev/stayhaven/internal/router"
	"github.com/stayhaven-dev/stayhaven/internal/serializers"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupServer(t *testing.T, name string) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	dsn := "file:handlers_" + name + "?mode=memory&cache=shared&_foreign_keys=on"

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	if err := gdb.AutoMigrate(
		&models.User{},
		&models.Listing{},
		&models.Booking{},
		&models.Payment{},
		&models.Review{},
		&models.Message{},
	); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	db.DB = gdb

	return router.NewRouter()
}

func doJSON(t *testing.T, server *gin.Engine, method, path string, body interface{}, wantStatus int, out interface{}) {
	t.Helper()

	var reader *bytes.Reader

	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	if rec.Code != wantStatus {
		t.Fatalf("%s %s: status %d, want %d, body: %s", method, path, rec.Code, wantStatus, rec.Body.String())
	}

	if out != nil {
		if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
			t.Fatalf("decode response: %v, body: %s", err, rec.Body.String())
		}
	}
}

func createUserViaAPI(t *testing.T, server *gin.Engine, email, role string) serializers.UserResponse {
	t.Helper()

	var user serializers.UserResponse
	doJSON(t, server, http.MethodPost, "/api/users", gin.H{
		"first_name":   "Mira",
		"last_name":    "Holt",
		"email":        email,
		"password":     "correcthorse",
		"phone_number": "555-0102",
		"role":         role,
	}, http.StatusCreated, &user)

	return user
}

func TestCreateAndFetchBookingSerializesNestedChain(t *testing.T) {
	server := setupServer(t, "booking_chain")

	host := createUserViaAPI(t, server, "host@example.com", models.RoleHost)
	guest := createUserViaAPI(t, server, "guest@example.com", models.RoleGuest)

	var listing serializers.ListingResponse
	doJSON(t, server, http.MethodPost, "/api/listings", gin.H{
		"host_id":         host.ID.String(),
		"name":            "Canal house",
		"description":     "Narrow but tall.",
		"location":        "Amsterdam",
		"price_per_night": 150.00,
	}, http.StatusCreated, &listing)

	if listing.Host.ID != host.ID {
		t.Fatalf("expected host embedded in listing response")
	}

	var booking serializers.BookingResponse
	doJSON(t, server, http.MethodPost, "/api/bookings", gin.H{
		"listing_id": listing.ID.String(),
		"user_id":    guest.ID.String(),
		"start_date": "2026-09-10",
		"end_date":   "2026-09-13",
		"status":     models.BookingConfirmed,
	}, http.StatusCreated, &booking)

	if booking.TotalPrice != 450.00 {
		t.Fatalf("expected total 450.00 for 3 nights at 150, got %.2f", booking.TotalPrice)
	}

	var fetched serializers.BookingResponse
	doJSON(t, server, http.MethodGet, "/api/bookings/"+booking.ID.String(), nil, http.StatusOK, &fetched)

	if fetched.Listing.ID != listing.ID {
		t.Fatalf("expected nested listing in fetched booking")
	}
	if fetched.Listing.Host.Email != "host@example.com" {
		t.Fatalf("expected host nested inside the booking's listing, got %+v", fetched.Listing.Host)
	}
	if fetched.User.Email != "guest@example.com" {
		t.Fatalf("expected nested guest, got %+v", fetched.User)
	}
}

func TestCreatePaymentDefaultsToBookingTotal(t *testing.T) {
	server := setupServer(t, "payment_total")

	host := createUserViaAPI(t, server, "host@example.com", models.RoleHost)
	guest := createUserViaAPI(t, server, "guest@example.com", models.RoleGuest)

	var listing serializers.ListingResponse
	doJSON(t, server, http.MethodPost, "/api/listings", gin.H{
		"host_id":         host.ID.String(),
		"name":            "Hill cabin",
		"price_per_night": 90.00,
	}, http.StatusCreated, &listing)

	var booking serializers.BookingResponse
	doJSON(t, server, http.MethodPost, "/api/bookings", gin.H{
		"listing_id": listing.ID.String(),
		"user_id":    guest.ID.String(),
		"start_date": "2026-10-01",
		"end_date":   "2026-10-03",
	}, http.StatusCreated, &booking)

	var payment serializers.PaymentResponse
	doJSON(t, server, http.MethodPost, "/api/payments", gin.H{
		"booking_id":     booking.ID.String(),
		"payment_method": models.PaymentPayPal,
	}, http.StatusCreated, &payment)

	if payment.Amount != booking.TotalPrice {
		t.Fatalf("expected payment amount %.2f, got %.2f", booking.TotalPrice, payment.Amount)
	}
	if payment.Booking.Listing.Host.ID != host.ID {
		t.Fatalf("expected full booking chain in payment response")
	}
}

func TestValidationErrorsSurfaceAsBadRequest(t *testing.T) {
	server := setupServer(t, "validation")

	host := createUserViaAPI(t, server, "host@example.com", models.RoleHost)
	guest := createUserViaAPI(t, server, "guest@example.com", models.RoleGuest)

	var listing serializers.ListingResponse
	doJSON(t, server, http.MethodPost, "/api/listings", gin.H{
		"host_id":         host.ID.String(),
		"name":            "Shed",
		"price_per_night": 45.00,
	}, http.StatusCreated, &listing)

	// End date before start date.
	doJSON(t, server, http.MethodPost, "/api/bookings", gin.H{
		"listing_id": listing.ID.String(),
		"user_id":    guest.ID.String(),
		"start_date": "2026-10-05",
		"end_date":   "2026-10-01",
	}, http.StatusBadRequest, nil)

	// Rating outside 1..5.
	doJSON(t, server, http.MethodPost, "/api/reviews", gin.H{
		"listing_id": listing.ID.String(),
		"user_id":    guest.ID.String(),
		"rating":     6,
	}, http.StatusBadRequest, nil)

	// Message to self.
	doJSON(t, server, http.MethodPost, "/api/messages", gin.H{
		"sender_id":    guest.ID.String(),
		"recipient_id": guest.ID.String(),
		"message_body": "hi me",
	}, http.StatusBadRequest, nil)

	// Duplicate email.
	doJSON(t, server, http.MethodPost, "/api/users", gin.H{
		"first_name": "Again",
		"last_name":  "Holt",
		"email":      "host@example.com",
		"password":   "correcthorse",
		"role":       models.RoleGuest,
	}, http.StatusBadRequest, nil)
}

func TestGetUnknownBookingReturnsNotFound(t *testing.T) {
	server := setupServer(t, "not_found")

	doJSON(t, server, http.MethodGet, "/api/bookings/"+uuid.NewString(), nil, http.StatusNotFound, nil)
	doJSON(t, server, http.MethodGet, "/api/bookings/not-a-uuid", nil, http.StatusBadRequest, nil)
}

func TestDeleteUserCascadesOverAPI(t *testing.T) {
	server := setupServer(t, "cascade")

	host := createUserViaAPI(t, server, "host@example.com", models.RoleHost)
	guest := createUserViaAPI(t, server, "guest@example.com", models.RoleGuest)

	var listing serializers.ListingResponse
	doJSON(t, server, http.MethodPost, "/api/listings", gin.H{
		"host_id":         host.ID.String(),
		"name":            "Attic room",
		"price_per_night": 60.00,
	}, http.StatusCreated, &listing)

	var booking serializers.BookingResponse
	doJSON(t, server, http.MethodPost, "/api/bookings", gin.H{
		"listing_id": listing.ID.String(),
		"user_id":    guest.ID.String(),
		"start_date": "2026-11-01",
		"end_date":   "2026-11-04",
	}, http.StatusCreated, &booking)

	doJSON(t, server, http.MethodDelete, "/api/users/"+host.ID.String(), nil, http.StatusNoContent, nil)

	doJSON(t, server, http.MethodGet, "/api/listings/"+listing.ID.String(), nil, http.StatusNotFound, nil)
	doJSON(t, server, http.MethodGet, "/api/bookings/"+booking.ID.String(), nil, http.StatusNotFound, nil)
}
