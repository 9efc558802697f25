package main

import (
	"flag"
	"log/slog"
	"time"

	"notehub/internal/middlewares"
)

// Mints a session token for manual API testing.
func main() {
	key := flag.String("key", "", "Session signing key")
	userID := flag.Uint("user", 0, "User id")
	username := flag.String("username", "", "Username")
	lifetime := flag.Duration("lifetime", 12*time.Hour, "Token lifetime")
	flag.Parse()

	token, expiresAt, err := middlewares.GenerateToken([]byte(*key), *userID, *username, *lifetime)
	if err != nil {
		slog.Error(err.Error())
		return
	}

	slog.Info(token, "expiresAt", expiresAt)
}
