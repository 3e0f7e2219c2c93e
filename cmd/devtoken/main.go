// Command devtoken prints a bearer token for local use against a share_register instance
// configured with the same JWT_SECRET and JWT_ISSUER.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/share_register/internal/platform/config"
	"github.com/SscSPs/share_register/internal/utils"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	userID := flag.String("user", "", "user id to put in the token subject")
	ttl := flag.Duration("ttl", 12*time.Hour, "token lifetime")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if cfg.IsProduction {
		logger.Error("Refusing to mint tokens for a production configuration")
		os.Exit(1)
	}

	token, err := utils.GenerateAccessToken(*userID, cfg.JWTSecret, cfg.JWTIssuer, *ttl)
	if err != nil {
		logger.Error("Failed to generate token", slog.String("error", err.Error()))
		os.Exit(1)
	}
	fmt.Println(token)
}
