package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	ServiceKeys  []string
	GeocoderURL  string
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var serviceKeys string

	fs := flag.NewFlagSet("hoodwatch", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.GeocoderURL, "g", "", "Geocoding service base URL")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&serviceKeys, "service-keys", "", "Comma-separated service key allow-list (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 4775 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "postgres"
		}
	}
	if cfg.DatabaseType != "postgres" && cfg.DatabaseType != "sqlite" {
		return Config{}, errors.New("database type must be postgres or sqlite")
	}

	if cfg.GeocoderURL == "" {
		cfg.GeocoderURL = os.Getenv("GEOCODER_URL")
		if cfg.GeocoderURL == "" {
			cfg.GeocoderURL = "https://maps.googleapis.com/maps/api/geocode"
		}
	}

	// Service keys - MUST be provided
	if serviceKeys == "" {
		serviceKeys = os.Getenv("SERVICE_KEYS")
	}
	if serviceKeys == "" {
		return Config{}, errors.New("SERVICE_KEYS required")
	}
	for _, k := range strings.Split(serviceKeys, ",") {
		if k = strings.TrimSpace(k); k != "" {
			cfg.ServiceKeys = append(cfg.ServiceKeys, k)
		}
	}
	if len(cfg.ServiceKeys) == 0 {
		return Config{}, errors.New("SERVICE_KEYS required")
	}

	return cfg, nil
}
