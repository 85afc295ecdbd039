package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Lexv0lk/payment-service/internal/pkg/env"
	"github.com/Lexv0lk/payment-service/internal/pkg/jwt"
)

func main() {
	clientID := flag.String("client", "", "operator client id written into the token")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	secret := ""
	env.TrySetFromEnv(env.EnvJwtSecret, &secret)

	if secret == "" || *clientID == "" {
		fmt.Fprintf(os.Stderr, "usage: %s=<secret> issue-token -client <id> [-ttl 24h]\n", env.EnvJwtSecret)
		os.Exit(2)
	}

	token, err := jwt.NewJWTTokenIssuer().IssueToken([]byte(secret), *clientID, *ttl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to issue token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
}
