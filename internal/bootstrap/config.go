package bootstrap

import (
	"github.com/AuraHubTeam/AuraHub/internal/conf"
	"github.com/caarlos0/env/v9"
	"github.com/pkg/errors"
)

// InitConfig reads configuration from the environment. Missing credentials
// are a startup failure, not something to discover one request at a time.
func InitConfig() error {
	cfg := conf.DefaultConfig()
	if err := env.Parse(cfg); err != nil {
		return errors.Wrap(err, "failed to read config from environment")
	}
	if cfg.Upstream.Login == "" || cfg.Upstream.Key == "" {
		return errors.New("STREAMTAPE_LOGIN and STREAMTAPE_KEY must be set")
	}
	conf.Conf = cfg
	return nil
}
