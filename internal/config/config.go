package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config aggregates application settings that may be sourced from a .env
// file or environment variables.
type Config struct {
	API         APIConfig         `mapstructure:"api"`
	MercadoPago MercadoPagoConfig `mapstructure:"mercadopago"`
	Store       StoreConfig       `mapstructure:"store"`
	Pricing     PricingConfig     `mapstructure:"pricing"`
}

// APIConfig contains HTTP server settings.
type APIConfig struct {
	Port int `mapstructure:"port"`
	// PublicBaseURL is the externally reachable base URL used to build the
	// MercadoPago back_urls and the webhook notification URL.
	PublicBaseURL string `mapstructure:"public_base_url"`
}

// MercadoPagoConfig contains provider credentials and endpoints.
type MercadoPagoConfig struct {
	AccessToken string `mapstructure:"access_token"`
	PublicKey   string `mapstructure:"public_key"`
	BaseURL     string `mapstructure:"base_url"`
	// WebhookSecret enables x-signature verification on /webhook when set.
	WebhookSecret string `mapstructure:"webhook_secret"`
}

// StoreConfig contains settings for the pending-submission file store.
type StoreConfig struct {
	// Dir is the directory holding in-flight submission JSON files. An empty
	// value selects a process-temporary directory (ephemeral deployments).
	Dir string `mapstructure:"dir"`
}

// PricingConfig holds the per-template price table.
type PricingConfig struct {
	Basico      float64 `mapstructure:"basico"`
	Profesional float64 `mapstructure:"profesional"`
	CurrencyID  string  `mapstructure:"currency_id"`
}

// PriceFor returns the unit price for the given template, defaulting to the
// basic tier for unknown values.
func (p PricingConfig) PriceFor(templateType string) float64 {
	if templateType == "profesional" {
		return p.Profesional
	}
	return p.Basico
}

// Load reads configuration solely from environment variables (with optional defaults).
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if err := bindEnv(v); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// MustLoad wraps Load and panics on failure.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.port", 8080)
	v.SetDefault("api.public_base_url", "http://localhost:8080")
	v.SetDefault("mercadopago.base_url", "https://api.mercadopago.com")
	v.SetDefault("store.dir", "bd_pdf")
	v.SetDefault("pricing.basico", 2000)
	v.SetDefault("pricing.profesional", 3500)
	v.SetDefault("pricing.currency_id", "ARS")
}

func bindEnv(v *viper.Viper) error {
	mappings := map[string]string{
		"api.port":                   "PORT",
		"api.public_base_url":        "PUBLIC_BASE_URL",
		"mercadopago.access_token":   "MP_ACCESS_TOKEN",
		"mercadopago.public_key":     "MP_PUBLIC_KEY",
		"mercadopago.base_url":       "MP_BASE_URL",
		"mercadopago.webhook_secret": "MP_WEBHOOK_SECRET",
		"store.dir":                  "STORAGE_DIR",
		"pricing.basico":             "PRICE_BASICO",
		"pricing.profesional":        "PRICE_PROFESIONAL",
		"pricing.currency_id":        "CURRENCY_ID",
	}

	for key, env := range mappings {
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("bind %s to %s: %w", key, env, err)
		}
	}

	return nil
}

func validate(cfg Config) error {
	if cfg.API.Port <= 0 {
		return errors.New("api port must be positive")
	}
	if cfg.API.PublicBaseURL == "" {
		return errors.New("public base url is required")
	}
	if cfg.MercadoPago.AccessToken == "" {
		return errors.New("MP_ACCESS_TOKEN is required")
	}
	if cfg.MercadoPago.PublicKey == "" {
		return errors.New("MP_PUBLIC_KEY is required")
	}
	if cfg.MercadoPago.BaseURL == "" {
		return errors.New("mercadopago base url is required")
	}
	if cfg.Pricing.Basico <= 0 {
		return errors.New("basic tier price must be positive")
	}
	if cfg.Pricing.Profesional <= 0 {
		return errors.New("professional tier price must be positive")
	}
	if cfg.Pricing.CurrencyID == "" {
		return errors.New("currency id is required")
	}
	return nil
}
