// Package config loads service configuration from an optional TOML file
// with environment variable overrides. The environment wins so deployments
// can keep secrets (the Resend API key) out of the file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Organisation identifies the party collecting consent and its default
// contact details rendered into documents.
type Organisation struct {
	Name    string `toml:"name"`
	Address string `toml:"address"`
	Phone   string `toml:"phone"`
	Email   string `toml:"email"`
}

// Delivery configures outbound email.
type Delivery struct {
	// ResendAPIKey authenticates against the Resend API. Usually supplied
	// via the RESEND_API_KEY environment variable rather than the file.
	ResendAPIKey string `toml:"resend_api_key"`

	// From is the sender identity, e.g. "School of Dance <forms@example.com>".
	From string `toml:"from"`

	// OrganisationTo is the address every consent form must reach.
	OrganisationTo string `toml:"organisation_to"`

	// SkipGuardianCopyWhenSame suppresses the guardian courtesy copy when
	// the guardian's address equals OrganisationTo.
	SkipGuardianCopyWhenSame bool `toml:"skip_guardian_copy_when_same"`
}

// Server configures the HTTP listener.
type Server struct {
	Addr string `toml:"addr"`
}

// Config is the full service configuration.
type Config struct {
	Organisation Organisation `toml:"organisation"`
	Delivery     Delivery     `toml:"delivery"`
	Server       Server       `toml:"server"`
}

// Load reads the TOML file at path (skipped when path is empty or the file
// does not exist) and applies environment overrides on top.
func Load(path string) (Config, error) {
	cfg := Config{
		Server: Server{Addr: ":8080"},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
			}
		case os.IsNotExist(err):
			// No file is fine; everything can come from the environment.
		default:
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	setFromEnv(&cfg.Delivery.ResendAPIKey, "RESEND_API_KEY")
	setFromEnv(&cfg.Delivery.From, "CONSENTFORM_FROM")
	setFromEnv(&cfg.Delivery.OrganisationTo, "CONSENTFORM_ORGANISATION_TO")
	setFromEnv(&cfg.Organisation.Name, "CONSENTFORM_ORG_NAME")
	setFromEnv(&cfg.Organisation.Address, "CONSENTFORM_ORG_ADDRESS")
	setFromEnv(&cfg.Organisation.Phone, "CONSENTFORM_ORG_PHONE")
	setFromEnv(&cfg.Organisation.Email, "CONSENTFORM_ORG_EMAIL")
	setFromEnv(&cfg.Server.Addr, "CONSENTFORM_ADDR")
	if v := strings.TrimSpace(os.Getenv("CONSENTFORM_SKIP_GUARDIAN_COPY_WHEN_SAME")); v != "" {
		cfg.Delivery.SkipGuardianCopyWhenSame = strings.EqualFold(v, "true") || v == "1"
	}
}

func setFromEnv(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

// ValidateDelivery reports the first missing piece of delivery
// configuration with an operator-actionable message. The server refuses to
// accept submissions until this passes.
func (c Config) ValidateDelivery() error {
	switch {
	case strings.TrimSpace(c.Delivery.ResendAPIKey) == "":
		return errors.New("config: resend api key missing; set RESEND_API_KEY or delivery.resend_api_key")
	case strings.TrimSpace(c.Delivery.From) == "":
		return errors.New("config: sender identity missing; set CONSENTFORM_FROM or delivery.from")
	case strings.TrimSpace(c.Delivery.OrganisationTo) == "":
		return errors.New("config: organisational recipient missing; set CONSENTFORM_ORGANISATION_TO or delivery.organisation_to")
	case strings.TrimSpace(c.Organisation.Name) == "":
		return errors.New("config: organisation name missing; set CONSENTFORM_ORG_NAME or organisation.name")
	}
	return nil
}
