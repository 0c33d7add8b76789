// Command seed wipes the store and fills it with sample marketplace data.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/stayhaven-dev/stayhaven/db"
	"github.com/stayhaven-dev/stayhaven/internal/seeder"
)

func main() {
	var seed uint64

	flag.Uint64Var(&seed, "seed", 0, "random seed for reproducible datasets (0 = random)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	dsn := os.Getenv("DATABASE_URL")

	if dsn == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	if err := db.ConnectDatabase(dsn); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	summary, err := seeder.New(db.DB, seed).Run()

	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("Database seeded: %d users, %d listings, %d bookings, %d payments, %d reviews, %d messages",
		summary.Users, summary.Listings, summary.Bookings, summary.Payments, summary.Reviews, summary.Messages)
}
