package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v6"
)

const (
	PasswordHasherSha256 = "sha256"
	PasswordHasherBcrypt = "bcrypt"
)

const (
	EmailBackendSMTP = "smtp"
	EmailBackendSES  = "ses"
)

type Config struct {
	Port       int  `env:"PORT" envDefault:"4000"`
	IsTestMode bool `env:"TEST_MODE"`

	PostgresqlURL string `env:"POSTGRESQL_URL,required"`

	ResetTokenValidDuration time.Duration `env:"RESET_TOKEN_VALID_DURATION" envDefault:"2h"`
	ResetBaseURL            url.URL       `env:"RESET_BASE_URL,required"`

	// sha256 reproduces digests stored by earlier deployments; bcrypt is
	// the salted alternative for new ones.
	PasswordHasher string `env:"PASSWORD_HASHER" envDefault:"sha256"`
	Secret         string `env:"SECRET"`
	BcryptCost     int    `env:"BCRYPT_COST" envDefault:"10"`

	EmailBackend string `env:"EMAIL_BACKEND" envDefault:"smtp"`

	EmailHost string `env:"EMAIL_HOST"`
	EmailPort int    `env:"EMAIL_PORT" envDefault:"465"`
	EmailUser string `env:"EMAIL_USER"`
	EmailPass string `env:"EMAIL_PASS"`
	EmailFrom string `env:"EMAIL_FROM"`

	AwsRegion                     string `env:"AWS_REGION"`
	AwsAccessKey                  string `env:"AWS_ACCESS_KEY"`
	AwsSecretKey                  string `env:"AWS_SECRET_KEY"`
	AwsEmailSender                string `env:"AWS_EMAIL_SENDER"`
	AwsEmailPasswordResetTemplate string `env:"AWS_EMAIL_PASSWORD_RESET_TEMPLATE"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"*"`
}

func Load() (*Config, error) {
	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, err
	}
	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) validate() error {
	switch c.PasswordHasher {
	case PasswordHasherSha256:
	case PasswordHasherBcrypt:
		if c.Secret == "" {
			return fmt.Errorf("SECRET must be set when PASSWORD_HASHER is %q", PasswordHasherBcrypt)
		}
	default:
		return fmt.Errorf("invalid PASSWORD_HASHER value: %q", c.PasswordHasher)
	}

	switch c.EmailBackend {
	case EmailBackendSMTP:
		if c.EmailHost == "" || c.EmailUser == "" || c.EmailPass == "" || c.EmailFrom == "" {
			return fmt.Errorf(
				"EMAIL_HOST, EMAIL_USER, EMAIL_PASS and EMAIL_FROM must be set when EMAIL_BACKEND is %q",
				EmailBackendSMTP,
			)
		}
	case EmailBackendSES:
		if c.AwsRegion == "" || c.AwsAccessKey == "" || c.AwsSecretKey == "" ||
			c.AwsEmailSender == "" || c.AwsEmailPasswordResetTemplate == "" {
			return fmt.Errorf(
				"AWS_REGION, AWS_ACCESS_KEY, AWS_SECRET_KEY, AWS_EMAIL_SENDER and "+
					"AWS_EMAIL_PASSWORD_RESET_TEMPLATE must be set when EMAIL_BACKEND is %q",
				EmailBackendSES,
			)
		}
	default:
		return fmt.Errorf("invalid EMAIL_BACKEND value: %q", c.EmailBackend)
	}

	if c.ResetTokenValidDuration <= 0 {
		return fmt.Errorf("RESET_TOKEN_VALID_DURATION must be positive")
	}
	return nil
}
