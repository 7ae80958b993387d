//go:build ignore

// go run scripts/gen_test_token.go [user-id]
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/LucasBaccaro/fullstack/internal/storage"
	"github.com/LucasBaccaro/fullstack/tutor/profiles"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	secret := os.Getenv("SUPABASE_JWT_SECRET")
	if secret == "" {
		log.Fatal("SUPABASE_JWT_SECRET not set")
	}

	userID := uuid.NewString()
	if len(os.Args) > 1 {
		if _, err := uuid.Parse(os.Args[1]); err != nil {
			log.Fatalf("user id must be a uuid: %v", err)
		}
		userID = os.Args[1]
	}

	// optional: make sure /profile/me answers for this user
	if connString := os.Getenv("SUPABASE_CONNECTION_STRING"); connString != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		db, err := storage.NewClient(ctx, connString)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		if err := profiles.NewRepository(db.DB()).Create(ctx, userID); err != nil {
			log.Printf("Warning: could not bootstrap profile for %s: %v", userID, err)
		} else {
			fmt.Printf("Profile ready for %s\n", userID)
		}
	}

	claims := jwt.MapClaims{
		"sub":   userID,
		"email": "test@example.com",
		"role":  "authenticated",
		"aud":   "authenticated",
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		log.Fatalf("Failed to sign token: %v", err)
	}

	fmt.Printf("\nTest access token (24h):\n%s\n\n", token)
	fmt.Printf("Export this token for testing:\nexport TEST_TOKEN=\"%s\"\n", token)
}
