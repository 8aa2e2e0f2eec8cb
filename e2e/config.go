package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_MONGO_URI points at a disposable MongoDB, the suite is skipped when empty
	MongoURI string `envconfig:"E2E_MONGO_URI"`
	Database string `envconfig:"E2E_MONGO_DATABASE" default:"recipe_e2e"`
	// E2E_DEBUG_OUTPUT dumps the whole console transcript of every step
	DebugOutput bool `envconfig:"E2E_DEBUG_OUTPUT" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
