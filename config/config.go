package config

import (
	"fmt"
	"os"
)

// Config carries everything the process needs from the environment. Gateway
// signing secrets are injected into the payment factory and signature
// verifier at startup instead of being read ad hoc from os.Getenv.
type Config struct {
	Port        string
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string

	JWTSecret   string
	AdminAPIKey string

	LiqpaySecretKey   string
	FondySecretKey    string
	MonobankSecretKey string

	NovaPoshtaAPIKey string
	NovaPoshtaAPIURL string
}

func Load() (Config, error) {
	cfg := Config{
		Port:        getenv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBHost:      getenv("DB_HOST", "localhost"),
		DBPort:      getenv("DB_PORT", "5432"),
		DBUser:      os.Getenv("DB_USER"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      os.Getenv("DB_NAME"),

		JWTSecret:   os.Getenv("JWT_SECRET"),
		AdminAPIKey: os.Getenv("ADMIN_API_KEY"),

		LiqpaySecretKey:   os.Getenv("LIQPAY_SECRET_KEY"),
		FondySecretKey:    os.Getenv("FONDY_SECRET_KEY"),
		MonobankSecretKey: os.Getenv("MONOBANK_SECRET_KEY"),

		NovaPoshtaAPIKey: os.Getenv("NOVA_POSHTA_API_KEY"),
		NovaPoshtaAPIURL: getenv("NOVA_POSHTA_API_URL", "https://api.novaposhta.ua/v2.0/json/"),
	}

	if cfg.JWTSecret == "" {
		return cfg, fmt.Errorf("JWT_SECRET is not set")
	}
	if cfg.LiqpaySecretKey == "" || cfg.FondySecretKey == "" || cfg.MonobankSecretKey == "" {
		return cfg, fmt.Errorf("payment gateway secret keys are not set")
	}

	return cfg, nil
}

// GatewayKeys maps each payment gateway name to its signing secret.
func (c Config) GatewayKeys() map[string]string {
	return map[string]string{
		"liqpay":   c.LiqpaySecretKey,
		"fondy":    c.FondySecretKey,
		"monobank": c.MonobankSecretKey,
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
