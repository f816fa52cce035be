package config

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load reads the configuration from the environment after loading the first
// env file found among envFilePath. With no paths, the nearest .env is used
// if there is one. Variables already set in the environment take precedence.
//
// A missing env file is normal for the shell and only logged at debug level.
func Load(envFilePath ...string) (*App, error) {
	if len(envFilePath) == 0 {
		envFilePath = []string{".env"}
	}
	loadEnvFile(slog.Default(), envFilePath)
	return loadFromEnv()
}

// loadEnvFile loads the first candidate that exists and reports its path,
// or "" when none could be loaded.
func loadEnvFile(logger *slog.Logger, candidates []string) string {
	for _, name := range candidates {
		path, err := FindEnvFile(name)
		if err != nil {
			logger.Debug("Env file not found", "name", name)
			continue
		}
		if err := godotenv.Load(path); err != nil {
			logger.Error("Failed to load env file", "path", path, "error", err)
			continue
		}
		logger.Debug("Loaded env file", "path", path)
		return path
	}
	logger.Debug("No env file loaded, using process environment only")
	return ""
}

func loadFromEnv() (*App, error) {
	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	if cfg.Env == "" {
		cfg.Env = "development"
	}

	slog.Default().Debug("App config loaded",
		"env", cfg.Env,
		"log_level", cfg.Log.Level,
		"log_format", cfg.Log.Format,
		"max_decimals", cfg.Ledger.MaxDecimals,
		"max_owner_length", cfg.Ledger.MaxOwnerLength,
	)
	return &cfg, nil
}
