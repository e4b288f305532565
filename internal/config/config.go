package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the process configuration, populated from the environment.
// A .env file is loaded beforehand via godotenv autoload in main.
type Config struct {
	Port                   string        `envconfig:"PORT" default:"8080"`
	JWTSecret              string        `envconfig:"JWT_SECRET" default:"dev-secret-change-me"`
	JWTTTL                 time.Duration `envconfig:"JWT_TTL" default:"24h"`
	MercadoPagoAccessToken string        `envconfig:"MERCADOPAGO_ACCESS_TOKEN"`
}

func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
