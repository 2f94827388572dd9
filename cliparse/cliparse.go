package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
)

// Classification policy defaults. Tunable, not ground truth: no reference
// data pins the dual-constitution cutoffs, so they ship as configuration.
const (
	DefaultDualRatio         = 0.75
	DefaultDualMinSeparation = 1
)

type Config struct {
	Port           int
	DatabaseURL    string
	DatabaseType   string
	SessionKeySalt string

	// DualRatio: secondary dosha must reach this fraction of the primary's
	// raw score for a dual constitution.
	DualRatio float64
	// DualMinSeparation: secondary must exceed the third-ranked raw score
	// by at least this much.
	DualMinSeparation int
}

// ParseFlags validates flags and fills from environment variables
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("ayurahaar-prakriti", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.SessionKeySalt, "session-salt", "", "Session key salt (prefer env)")

	// Classification policy
	fs.Float64Var(&cfg.DualRatio, "dual-ratio", 0, "Dual constitution ratio threshold")
	fs.IntVar(&cfg.DualMinSeparation, "dual-separation", 0, "Dual constitution minimum separation")

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
			cfg.Port = 5000 // default
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
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	// Secrets - MUST be provided
	if cfg.SessionKeySalt == "" {
		cfg.SessionKeySalt = os.Getenv("SESSION_KEY_SALT")
	}
	if cfg.SessionKeySalt == "" {
		return Config{}, errors.New("SESSION_KEY_SALT required")
	}

	if cfg.DualRatio == 0 {
		if s := os.Getenv("DUAL_RATIO"); s != "" {
			ratio, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return Config{}, errors.New("invalid DUAL_RATIO env variable")
			}
			cfg.DualRatio = ratio
		} else {
			cfg.DualRatio = DefaultDualRatio
		}
	}
	if cfg.DualRatio <= 0 || cfg.DualRatio > 1 {
		return Config{}, fmt.Errorf("dual ratio %v out of range (0, 1]", cfg.DualRatio)
	}

	if cfg.DualMinSeparation == 0 {
		if s := os.Getenv("DUAL_MIN_SEPARATION"); s != "" {
			sep, err := strconv.Atoi(s)
			if err != nil {
				return Config{}, errors.New("invalid DUAL_MIN_SEPARATION env variable")
			}
			cfg.DualMinSeparation = sep
		} else {
			cfg.DualMinSeparation = DefaultDualMinSeparation
		}
	}
	if cfg.DualMinSeparation < 0 {
		return Config{}, fmt.Errorf("dual minimum separation %d must be non-negative", cfg.DualMinSeparation)
	}

	return cfg, nil
}
