// Package config loads the application configuration from the environment.
//
// Values are read with `github.com/caarlos0/env/v11` after an optional `.env`
// file has been applied with `github.com/joho/godotenv`. Variables that are
// already set win over the file.
//
// # Variables
//
//	APP_ENV               development | staging | production (default development)
//	LOG_LEVEL             debug | info | warn | error (default info)
//	LOG_FORMAT            json | text (default depends on APP_ENV)
//	HTTP_ADDR             listen address (default :8080)
//	HTTP_SHUTDOWN_TIMEOUT graceful shutdown window (default 5s)
//	GEN_A, GEN_C, GEN_M   LCG multiplier, increment and modulus
//	GEN_ENTROPY_WEIGHT    timing entropy weight (default 1.0)
//	GEN_CORPUS_PATH       optional YAML corpus file
//	GEN_EXTRA_RULES       comma-separated dormant rules to enable
//	GEN_MODIFIERS         comma-separated post-processors to enable
//	HISTORY_SIZE          names kept in memory (default 1000)
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//		return err
//	}
//	params := cfg.Generator.Params()
package config
