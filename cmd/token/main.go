// Command token prints a signed access token for local development. Real
// tokens come from the external auth service; this one uses the same
// secret and issuer so the API accepts it.
//
// Flags:
//
//	--user  user ID (default: a random UUID)
//	--ttl   token lifetime (default: 1h)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/trendplan-backend/internal/auth"
	"github.com/heartmarshall/trendplan-backend/internal/config"
)

func main() {
	userFlag := flag.String("user", "", "user ID (default: random)")
	ttlFlag := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	userID := uuid.New()
	if *userFlag != "" {
		if userID, err = uuid.Parse(*userFlag); err != nil {
			log.Fatalf("invalid --user: %v", err)
		}
	}

	mgr := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.ClockSkew)
	token, err := mgr.GenerateAccessToken(userID, *ttlFlag)
	if err != nil {
		log.Fatalf("sign token: %v", err)
	}

	fmt.Printf("user_id=%s\n%s\n", userID, token)
}
