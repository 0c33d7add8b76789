package seeder

import (
	"errors"
	"fmt"
	"sort"
	"testing"

	"github.com/stayhaven-dev/stayhaven/internal/models"
	"github.com/stayhaven-dev/stayhaven/internal/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()

	dsn := "file:seeder_" + name + "?mode=memory&cache=shared&_foreign_keys=on"

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Listing{},
		&models.Booking{},
		&models.Payment{},
		&models.Review{},
		&models.Message{},
	); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	return db
}

// runSuccessfulSeed walks seeds until one yields both a host and a guest.
// A single seed fails with probability ~6%, so a handful of tries suffices.
func runSuccessfulSeed(t *testing.T, name string) (*gorm.DB, Summary, uint64) {
	t.Helper()

	for seed := uint64(1); seed <= 40; seed++ {
		db := openTestDB(t, fmt.Sprintf("%s_%d", name, seed))
		summary, err := New(db, seed).Run()
		if err == nil {
			return db, summary, seed
		}
		if !errors.Is(err, ErrNoHosts) && !errors.Is(err, ErrNoGuests) {
			t.Fatalf("seed %d failed unexpectedly: %v", seed, err)
		}
	}

	t.Fatalf("no seed in 1..40 produced both roles")
	return nil, Summary{}, 0
}

func count(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()

	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count %T: %v", model, err)
	}
	return n
}

func TestRunProducesExactCounts(t *testing.T) {
	db, summary, _ := runSuccessfulSeed(t, "counts")

	want := Summary{Users: 5, Listings: 5, Bookings: 10, Payments: 10, Reviews: 10, Messages: 10}

	if summary != want {
		t.Fatalf("summary mismatch: got %+v, want %+v", summary, want)
	}

	if n := count(t, db, &models.User{}); n != 5 {
		t.Fatalf("expected 5 users in store, got %d", n)
	}
	if n := count(t, db, &models.Listing{}); n != 5 {
		t.Fatalf("expected 5 listings in store, got %d", n)
	}
	if n := count(t, db, &models.Booking{}); n != 10 {
		t.Fatalf("expected 10 bookings in store, got %d", n)
	}
	if n := count(t, db, &models.Payment{}); n != 10 {
		t.Fatalf("expected 10 payments in store, got %d", n)
	}
	if n := count(t, db, &models.Review{}); n != 10 {
		t.Fatalf("expected 10 reviews in store, got %d", n)
	}
	if n := count(t, db, &models.Message{}); n != 10 {
		t.Fatalf("expected 10 messages in store, got %d", n)
	}
}

func TestRunRespectsDataInvariants(t *testing.T) {
	db, _, _ := runSuccessfulSeed(t, "invariants")

	var users []models.User
	if err := db.Find(&users).Error; err != nil {
		t.Fatalf("load users: %v", err)
	}

	emails := make(map[string]struct{}, len(users))
	for _, user := range users {
		if _, dup := emails[user.Email]; dup {
			t.Fatalf("duplicate seeded email %q", user.Email)
		}
		emails[user.Email] = struct{}{}

		if user.Role != models.RoleGuest && user.Role != models.RoleHost {
			t.Fatalf("unexpected seeded role %q", user.Role)
		}
	}

	var listings []models.Listing
	if err := db.Find(&listings).Error; err != nil {
		t.Fatalf("load listings: %v", err)
	}
	for _, listing := range listings {
		if listing.PricePerNight < 40 || listing.PricePerNight > 300 {
			t.Fatalf("listing price %.2f outside [40, 300]", listing.PricePerNight)
		}
		if listing.PricePerNight != utils.RoundPrice(listing.PricePerNight) {
			t.Fatalf("listing price %.10f not rounded to cents", listing.PricePerNight)
		}
	}

	var bookings []models.Booking
	if err := db.Preload("Listing").Find(&bookings).Error; err != nil {
		t.Fatalf("load bookings: %v", err)
	}
	for _, booking := range bookings {
		if !booking.EndDate.After(booking.StartDate) {
			t.Fatalf("booking %s: end %v not after start %v", booking.ID, booking.EndDate, booking.StartDate)
		}

		nights := utils.Nights(booking.StartDate, booking.EndDate)
		if nights < 2 || nights > 5 {
			t.Fatalf("booking %s: stay of %d nights outside [2, 5]", booking.ID, nights)
		}

		want := utils.RoundPrice(booking.Listing.PricePerNight * float64(nights))
		if booking.TotalPrice != want {
			t.Fatalf("booking %s: total %.2f, want %.2f", booking.ID, booking.TotalPrice, want)
		}
	}

	var payments []models.Payment
	if err := db.Preload("Booking").Find(&payments).Error; err != nil {
		t.Fatalf("load payments: %v", err)
	}
	for _, payment := range payments {
		if payment.Amount != payment.Booking.TotalPrice {
			t.Fatalf("payment %s: amount %.2f does not match booking total %.2f",
				payment.ID, payment.Amount, payment.Booking.TotalPrice)
		}
	}

	var reviews []models.Review
	if err := db.Find(&reviews).Error; err != nil {
		t.Fatalf("load reviews: %v", err)
	}
	for _, review := range reviews {
		if review.Rating < 1 || review.Rating > 5 {
			t.Fatalf("review %s: rating %d outside [1, 5]", review.ID, review.Rating)
		}
	}

	var messages []models.Message
	if err := db.Find(&messages).Error; err != nil {
		t.Fatalf("load messages: %v", err)
	}
	for _, message := range messages {
		if message.SenderID == message.RecipientID {
			t.Fatalf("message %s: sender equals recipient", message.ID)
		}
	}
}

func TestRunAbortsWhenRolesAreOneSided(t *testing.T) {
	for seed := uint64(1); seed <= 400; seed++ {
		db := openTestDB(t, fmt.Sprintf("abort_%d", seed))
		_, err := New(db, seed).Run()

		if err == nil {
			continue
		}

		if !errors.Is(err, ErrNoHosts) && !errors.Is(err, ErrNoGuests) {
			t.Fatalf("seed %d: unexpected error: %v", seed, err)
		}

		// The abort leaves the created users behind and nothing else.
		if n := count(t, db, &models.User{}); n != 5 {
			t.Fatalf("expected the 5 users from the aborted run to remain, got %d", n)
		}
		for _, model := range []interface{}{&models.Listing{}, &models.Booking{}, &models.Payment{}, &models.Review{}, &models.Message{}} {
			if n := count(t, db, model); n != 0 {
				t.Fatalf("expected no %T after abort, got %d", model, n)
			}
		}
		return
	}

	t.Fatalf("no seed in 1..400 produced a one-sided role split")
}

func TestRunIsDeterministicForAFixedSeed(t *testing.T) {
	first, _, seed := runSuccessfulSeed(t, "determ_a")

	second := openTestDB(t, "determ_b")
	if _, err := New(second, seed).Run(); err != nil {
		t.Fatalf("second run with seed %d failed: %v", seed, err)
	}

	emailsOf := func(db *gorm.DB) []string {
		var users []models.User
		if err := db.Find(&users).Error; err != nil {
			t.Fatalf("load users: %v", err)
		}
		emails := make([]string, 0, len(users))
		for _, user := range users {
			emails = append(emails, user.Email)
		}
		sort.Strings(emails)
		return emails
	}

	a, b := emailsOf(first), emailsOf(second)

	if len(a) != len(b) {
		t.Fatalf("runs produced different user counts: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("runs diverged at email %d: %q vs %q", i, a[i], b[i])
		}
	}
}

func TestRunClearsExistingData(t *testing.T) {
	db := openTestDB(t, "clear")

	stale := models.User{
		FirstName:    "Old",
		LastName:     "Row",
		Email:        "stale@example.com",
		PasswordHash: "x",
		Role:         models.RoleGuest,
	}
	if err := db.Create(&stale).Error; err != nil {
		t.Fatalf("create stale user: %v", err)
	}

	// The wipe happens before anything else, so it holds whether or not
	// this particular seed survives the role partition check.
	if _, err := New(db, 7).Run(); err != nil && !errors.Is(err, ErrNoHosts) && !errors.Is(err, ErrNoGuests) {
		t.Fatalf("run: %v", err)
	}

	var n int64
	if err := db.Model(&models.User{}).Where("email = ?", "stale@example.com").Count(&n).Error; err != nil {
		t.Fatalf("count stale user: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected the old dataset to be wiped")
	}
}

func TestPartitionByRole(t *testing.T) {
	users := []models.User{
		{Role: models.RoleHost},
		{Role: models.RoleGuest},
		{Role: models.RoleGuest},
	}

	hosts, guests := partitionByRole(users)

	if len(hosts) != 1 || len(guests) != 2 {
		t.Fatalf("partition mismatch: %d hosts, %d guests", len(hosts), len(guests))
	}

	hosts, guests = partitionByRole([]models.User{{Role: models.RoleGuest}})

	if len(hosts) != 0 || len(guests) != 1 {
		t.Fatalf("expected empty host partition, got %d hosts", len(hosts))
	}
}
