package database

import (
	"net"
	"net/url"
)

type PostgresSettings struct {
	User       string
	Password   string
	Host       string
	Port       string
	DBName     string
	SSlEnabled bool
}

// GetUrl builds a postgres DSN with the credentials escaped.
func (s PostgresSettings) GetUrl() string {
	dsn := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(s.User, s.Password),
		Host:   net.JoinHostPort(s.Host, s.Port),
		Path:   "/" + s.DBName,
	}
	if !s.SSlEnabled {
		dsn.RawQuery = "sslmode=disable"
	}

	return dsn.String()
}
