package postgreskeystore

import (
	"fmt"
	"os"
	"strconv"
)

const defaultPort = 5432

// Config holds the state for a PostgreSQL DB config.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

// DataSourceName returns the DSN for a PostgreSQL DB.
func (c Config) DataSourceName() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.Host, c.Port, c.User, c.Password, c.DBName)
}

// NewConfigFromEnvironment loads a PostgreSQL config from environment variables.
func NewConfigFromEnvironment() (*Config, error) {
	pgHost := os.Getenv("PG_HOST")
	pgUser := os.Getenv("PG_USER")
	pgPassword := os.Getenv("PG_PASSWORD")
	pgDBName := os.Getenv("PG_DBNAME")
	pgPort := os.Getenv("PG_PORT")

	if pgHost == "" || pgUser == "" || pgDBName == "" {
		return nil, fmt.Errorf("postgreSQL DB has not been configured via environment variables")
	}

	port := defaultPort
	if pgPort != "" {
		var err error
		port, err = strconv.Atoi(pgPort)
		if err != nil {
			return nil, fmt.Errorf("invalid PG_PORT: %v", err)
		}
	}

	return &Config{
		Host:     pgHost,
		Port:     port,
		User:     pgUser,
		Password: pgPassword,
		DBName:   pgDBName,
	}, nil
}
