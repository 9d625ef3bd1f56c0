package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	APIAddr    string `envconfig:"E2E_API_ADDR"`
	SocketAddr string `envconfig:"E2E_SOCKET_ADDR"`
	Email      string `envconfig:"E2E_EMAIL"`
	Password   string `envconfig:"E2E_PASSWORD"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
