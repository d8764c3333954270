package config

import (
	"fmt"
	"time"
)

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:5173"`
	Timezone    string `env:"TZ" envDefault:"Europe/Prague"`

	Database  Database  `envPrefix:"DB_"`
	JWT       JWT       `envPrefix:"JWT_"`
	Payment   Payment   `envPrefix:"PAYMENT_"`
	Braintree Braintree `envPrefix:"BRAINTREE_"`
}

type Database struct {
	Driver string `env:"DRIVER" envDefault:"sqlite"` // sqlite | mysql
	URL    string `env:"URL" envDefault:"biomarket.db"`
}

type JWT struct {
	Secret string        `env:"SECRET"`
	Expiry time.Duration `env:"EXPIRY" envDefault:"24h"`
}

type Payment struct {
	Provider  string        `env:"PROVIDER" envDefault:"mock"` // mock | braintree
	MockDelay time.Duration `env:"MOCK_DELAY" envDefault:"2s"`
}

type Braintree struct {
	Environment string `env:"ENVIRONMENT"`
	MerchantID  string `env:"MERCHANT_ID"`
	PublicKey   string `env:"PUBLIC_KEY"`
	PrivateKey  string `env:"PRIVATE_KEY"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}

const minJWTSecretLen = 32

// Validate rejects configurations the server must not start with. Tokens
// signed with a short secret are brute-forceable, so this refuses to run
// rather than warn.
func (c *Config) Validate() error {
	if len(c.JWT.Secret) < minJWTSecretLen {
		return fmt.Errorf("JWT_SECRET must be set and at least %d characters, got %d", minJWTSecretLen, len(c.JWT.Secret))
	}
	if c.Database.Driver != "sqlite" && c.Database.Driver != "mysql" {
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}
	if c.Payment.Provider != "mock" && c.Payment.Provider != "braintree" {
		return fmt.Errorf("unsupported PAYMENT_PROVIDER %q", c.Payment.Provider)
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Environment.Name == "development"
}
