package bootstrap

import (
	"fmt"

	"github.com/Lexv0lk/payment-service/internal/pkg/database"
)

const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

type PaymentsConfig struct {
	DbSettings  database.PostgresSettings
	Store       string
	MetricsPort string
	JwtSecret   string
	// NatsURL is optional. Events are not published when it is empty.
	NatsURL string
}

func (c PaymentsConfig) Validate() error {
	if c.JwtSecret == "" {
		return fmt.Errorf("jwt secret is required")
	}

	switch c.Store {
	case StorePostgres, StoreMemory:
	default:
		return fmt.Errorf("unknown payments store %q, expected %q or %q", c.Store, StorePostgres, StoreMemory)
	}

	return nil
}
