// Package seeder populates the store with a consistent sample dataset for
// development and manual testing. Every successful run produces exactly
// 5 users, 5 listings, 10 bookings, 10 payments, 10 reviews and 10 messages.
package seeder

import (
	"errors"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stayhaven-dev/stayhaven/internal/models"
	"github.com/stayhaven-dev/stayhaven/internal/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrNoHosts  = errors.New("seed aborted: need at least one host among the generated users")
	ErrNoGuests = errors.New("seed aborted: need at least one guest among the generated users")
)

type Summary struct {
	Users    int
	Listings int
	Bookings int
	Payments int
	Reviews  int
	Messages int
}

type Seeder struct {
	db    *gorm.DB
	faker *gofakeit.Faker
}

// New returns a seeder drawing all random values from the given seed.
// Seed 0 produces a different dataset on every run.
func New(db *gorm.DB, seed uint64) *Seeder {
	return &Seeder{
		db:    db,
		faker: gofakeit.New(seed),
	}
}

// Run clears the store and recreates the sample dataset. When the random
// role assignment yields no hosts or no guests, Run stops after the users
// step and returns the matching error; the users created so far are kept.
func (s *Seeder) Run() (Summary, error) {
	var summary Summary

	if err := s.clear(); err != nil {
		return summary, err
	}

	users, err := s.createUsers(5)

	if err != nil {
		return summary, err
	}

	summary.Users = len(users)

	hosts, guests := partitionByRole(users)

	if len(hosts) == 0 {
		return summary, ErrNoHosts
	}

	if len(guests) == 0 {
		return summary, ErrNoGuests
	}

	listings, err := s.createListings(5, hosts)

	if err != nil {
		return summary, err
	}

	summary.Listings = len(listings)

	for i := 0; i < 10; i++ {
		guest := guests[s.faker.Number(0, len(guests)-1)]
		listing := listings[s.faker.Number(0, len(listings)-1)]

		booking, err := s.createBooking(guest, listing)

		if err != nil {
			return summary, err
		}

		summary.Bookings++

		payment := models.Payment{
			BookingID:     booking.ID,
			Amount:        booking.TotalPrice,
			PaymentMethod: s.faker.RandomString([]string{models.PaymentCreditCard, models.PaymentPayPal, models.PaymentStripe}),
		}

		if err := s.db.Create(&payment).Error; err != nil {
			return summary, err
		}

		summary.Payments++

		review := models.Review{
			ListingID: listing.ID,
			UserID:    guest.ID,
			Rating:    s.faker.Number(1, 5),
			Comment:   s.faker.Sentence(8),
		}

		if err := s.db.Create(&review).Error; err != nil {
			return summary, err
		}

		summary.Reviews++
	}

	for i := 0; i < 10; i++ {
		if err := s.createMessage(users); err != nil {
			return summary, err
		}

		summary.Messages++
	}

	return summary, nil
}

// clear deletes leaves-first so no delete ever has to rely on cascades.
func (s *Seeder) clear() error {
	tables := []interface{}{
		&models.Message{},
		&models.Review{},
		&models.Payment{},
		&models.Booking{},
		&models.Listing{},
		&models.User{},
	}

	for _, table := range tables {
		if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(table).Error; err != nil {
			return err
		}
	}

	return nil
}

func (s *Seeder) createUsers(count int) ([]models.User, error) {
	users := make([]models.User, 0, count)
	seenEmails := make(map[string]struct{}, count)

	for i := 0; i < count; i++ {
		email := strings.ToLower(s.faker.Email())

		for {
			if _, dup := seenEmails[email]; !dup {
				break
			}
			email = strings.ToLower(s.faker.Email())
		}

		seenEmails[email] = struct{}{}

		passwordHash, err := bcrypt.GenerateFromPassword([]byte(s.faker.Password(true, true, true, true, false, 12)), bcrypt.MinCost)

		if err != nil {
			return users, err
		}

		user := models.User{
			FirstName:    s.faker.FirstName(),
			LastName:     s.faker.LastName(),
			Email:        email,
			PasswordHash: string(passwordHash),
			PhoneNumber:  s.faker.Phone(),
			Role:         s.faker.RandomString([]string{models.RoleGuest, models.RoleHost}),
		}

		if err := s.db.Create(&user).Error; err != nil {
			return users, err
		}

		users = append(users, user)
	}

	return users, nil
}

func (s *Seeder) createListings(count int, hosts []models.User) ([]models.Listing, error) {
	listings := make([]models.Listing, 0, count)

	for i := 0; i < count; i++ {
		host := hosts[s.faker.Number(0, len(hosts)-1)]

		listing := models.Listing{
			HostID:        host.ID,
			Name:          s.faker.Sentence(3),
			Description:   s.faker.Paragraph(1, 2, 12, " "),
			Location:      s.faker.City(),
			PricePerNight: utils.RoundPrice(s.faker.Float64Range(40, 300)),
		}

		if err := s.db.Create(&listing).Error; err != nil {
			return listings, err
		}

		listings = append(listings, listing)
	}

	return listings, nil
}

func (s *Seeder) createBooking(guest models.User, listing models.Listing) (models.Booking, error) {
	start := time.Now().AddDate(0, 0, s.faker.Number(1, 10))
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)

	nights := s.faker.Number(2, 5)
	end := start.AddDate(0, 0, nights)

	booking := models.Booking{
		ListingID:  listing.ID,
		UserID:     guest.ID,
		StartDate:  start,
		EndDate:    end,
		TotalPrice: utils.RoundPrice(listing.PricePerNight * float64(nights)),
		Status:     s.faker.RandomString([]string{models.BookingPending, models.BookingConfirmed, models.BookingCanceled}),
	}

	if err := s.db.Create(&booking).Error; err != nil {
		return booking, err
	}

	return booking, nil
}

// createMessage picks a sender and a distinct recipient without replacement.
func (s *Seeder) createMessage(users []models.User) error {
	senderIdx := s.faker.Number(0, len(users)-1)
	recipientIdx := s.faker.Number(0, len(users)-2)

	if recipientIdx >= senderIdx {
		recipientIdx++
	}

	message := models.Message{
		SenderID:    users[senderIdx].ID,
		RecipientID: users[recipientIdx].ID,
		MessageBody: s.faker.Sentence(10),
	}

	return s.db.Create(&message).Error
}

func partitionByRole(users []models.User) (hosts, guests []models.User) {
	for _, user := range users {
		switch user.Role {
		case models.RoleHost:
			hosts = append(hosts, user)
		case models.RoleGuest:
			guests = append(guests, user)
		}
	}

	return hosts, guests
}
