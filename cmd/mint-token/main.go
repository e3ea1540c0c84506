// Package main implements a developer utility that mints a bearer token
// for the API. Tokens are issued out of band; this is the tool that issues
// them for local development and smoke tests.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"

	"github.com/wordvault/wordvault-api/internal/config"
	"github.com/wordvault/wordvault-api/internal/service/auth"
)

func main() {
	secret := flag.String("secret", os.Getenv("WORDVAULT_AUTH_JWT_SECRET"),
		"signing secret (defaults to WORDVAULT_AUTH_JWT_SECRET)")
	lifetime := flag.Int("lifetime", 60, "token lifetime in minutes")
	subject := flag.String("subject", "", "subject UUID to embed (default: random)")
	flag.Parse()

	subjectID := uuid.New()
	if *subject != "" {
		parsed, err := uuid.Parse(*subject)
		if err != nil {
			log.Fatalf("Invalid subject UUID: %v", err)
		}
		subjectID = parsed
	}

	jwtService, err := auth.NewJWTService(config.AuthConfig{
		JWTSecret:            *secret,
		TokenLifetimeMinutes: *lifetime,
	})
	if err != nil {
		log.Fatalf("Failed to create token service: %v", err)
	}

	token, err := jwtService.GenerateToken(context.Background(), subjectID)
	if err != nil {
		log.Fatalf("Failed to generate token: %v", err)
	}

	fmt.Printf("Subject: %s\nToken: %s\n", subjectID, token)
}
