package config

import (
	"log"
	"os"
	"strconv"
)

const (
	defaultPort        = "8080"
	defaultScenarioDir = "./scenario"
)

// Config holds process configuration sourced from environment variables.
type Config struct {
	Port         string
	ScenarioDir  string
	SweepMaxTons float64
	Verbose      bool
}

// Load reads .env (if present) and the environment and returns a populated Config.
func Load() Config {
	return loadFrom(".env")
}

func loadFrom(dotenvPath string) Config {
	if err := loadDotEnv(dotenvPath); err != nil {
		log.Printf("warning: failed to read %s: %v", dotenvPath, err)
	}

	cfg := Config{
		Port:        os.Getenv("PORT"),
		ScenarioDir: os.Getenv("SCENARIO_DIR"),
	}

	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	if cfg.ScenarioDir == "" {
		cfg.ScenarioDir = defaultScenarioDir
	}

	if v := os.Getenv("SWEEP_MAX_TONS"); v != "" {
		tons, err := strconv.ParseFloat(v, 64)
		if err != nil || tons <= 0 {
			log.Printf("warning: ignoring SWEEP_MAX_TONS=%q, must be a positive number", v)
		} else {
			cfg.SweepMaxTons = tons
		}
	}

	if v := os.Getenv("VERBOSE"); v != "" {
		verbose, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("warning: ignoring VERBOSE=%q, must be a boolean", v)
		}
		cfg.Verbose = verbose
	}

	return cfg
}
