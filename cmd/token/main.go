// Command token mints a bearer access token for an operator, signed with the
// secret from the service configuration.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/JaimeStill/admin-console/internal/auth"
	"github.com/JaimeStill/admin-console/internal/config"
)

func main() {
	var (
		username = flag.String("user", "admin", "Username placed in the token subject")
		ttl      = flag.Duration("ttl", 0, "Token lifetime (defaults to auth.access_ttl)")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config load failed: ", err)
	}

	lifetime := cfg.Auth.AccessTTLDuration()
	if *ttl > 0 {
		lifetime = *ttl
	}

	token, expires, err := auth.NewTokens(cfg.Auth.Secret, cfg.Auth.Issuer, lifetime).Issue(*username)
	if err != nil {
		log.Fatal("issue token failed: ", err)
	}

	fmt.Fprintf(os.Stderr, "expires %s\n", expires.Format(time.RFC3339))
	fmt.Println(token)
}
