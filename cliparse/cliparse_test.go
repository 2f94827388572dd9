// Copyright (c) 2025 AyurAhaar.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"strings"
	"testing"
)

// clearEnv blanks every variable ParseFlags reads so ambient environment
// cannot leak into a test. t.Setenv restores the originals afterwards.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "DATABASE_URL", "DATABASE_TYPE", "SESSION_KEY_SALT", "DUAL_RATIO", "DUAL_MIN_SEPARATION"} {
		t.Setenv(key, "")
	}
}

func TestParseFlagsDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseFlags([]string{"-d", ":memory:", "-session-salt", "salt"})
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	if cfg.Port != 5000 {
		t.Errorf("port = %d, want default 5000", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("database type = %q, want default sqlite", cfg.DatabaseType)
	}
	if cfg.DualRatio != DefaultDualRatio {
		t.Errorf("dual ratio = %v, want %v", cfg.DualRatio, DefaultDualRatio)
	}
	if cfg.DualMinSeparation != DefaultDualMinSeparation {
		t.Errorf("dual separation = %d, want %d", cfg.DualMinSeparation, DefaultDualMinSeparation)
	}
}

func TestParseFlagsEnvFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("DATABASE_URL", "postgres://localhost/prakriti")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("SESSION_KEY_SALT", "env-salt")
	t.Setenv("DUAL_RATIO", "0.8")
	t.Setenv("DUAL_MIN_SEPARATION", "2")

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.Port)
	}
	if cfg.DatabaseURL != "postgres://localhost/prakriti" {
		t.Errorf("database URL = %q", cfg.DatabaseURL)
	}
	if cfg.DatabaseType != "postgres" {
		t.Errorf("database type = %q, want postgres", cfg.DatabaseType)
	}
	if cfg.SessionKeySalt != "env-salt" {
		t.Errorf("salt = %q, want env-salt", cfg.SessionKeySalt)
	}
	if cfg.DualRatio != 0.8 {
		t.Errorf("dual ratio = %v, want 0.8", cfg.DualRatio)
	}
	if cfg.DualMinSeparation != 2 {
		t.Errorf("dual separation = %d, want 2", cfg.DualMinSeparation)
	}
}

func TestParseFlagsCLIOverridesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("DATABASE_URL", "env.db")
	t.Setenv("SESSION_KEY_SALT", "env-salt")

	cfg, err := ParseFlags([]string{"-p", "9090", "-d", "cli.db", "-session-salt", "cli-salt", "-dual-ratio", "0.9"})
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	if cfg.Port != 9090 {
		t.Errorf("port = %d, want flag value 9090", cfg.Port)
	}
	if cfg.DatabaseURL != "cli.db" {
		t.Errorf("database URL = %q, want flag value cli.db", cfg.DatabaseURL)
	}
	if cfg.SessionKeySalt != "cli-salt" {
		t.Errorf("salt = %q, want flag value cli-salt", cfg.SessionKeySalt)
	}
	if cfg.DualRatio != 0.9 {
		t.Errorf("dual ratio = %v, want flag value 0.9", cfg.DualRatio)
	}
}

func TestParseFlagsRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		env     map[string]string
		wantMsg string
	}{
		{
			name:    "missing database URL",
			args:    []string{"-session-salt", "salt"},
			wantMsg: "database URL required",
		},
		{
			name:    "missing session salt",
			args:    []string{"-d", ":memory:"},
			wantMsg: "SESSION_KEY_SALT",
		},
		{
			name:    "unsupported database type",
			args:    []string{"-d", ":memory:", "-session-salt", "salt", "-t", "mongo"},
			wantMsg: "unsupported database type",
		},
		{
			name:    "dual ratio above 1",
			args:    []string{"-d", ":memory:", "-session-salt", "salt", "-dual-ratio", "1.5"},
			wantMsg: "out of range",
		},
		{
			name:    "negative dual ratio",
			args:    []string{"-d", ":memory:", "-session-salt", "salt", "-dual-ratio", "-0.5"},
			wantMsg: "out of range",
		},
		{
			name:    "invalid PORT env",
			args:    []string{"-d", ":memory:", "-session-salt", "salt"},
			env:     map[string]string{"PORT": "not-a-port"},
			wantMsg: "invalid PORT",
		},
		{
			name:    "invalid DUAL_RATIO env",
			args:    []string{"-d", ":memory:", "-session-salt", "salt"},
			env:     map[string]string{"DUAL_RATIO": "high"},
			wantMsg: "invalid DUAL_RATIO",
		},
		{
			name:    "negative separation",
			args:    []string{"-d", ":memory:", "-session-salt", "salt", "-dual-separation", "-3"},
			wantMsg: "non-negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			_, err := ParseFlags(tt.args)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", err, tt.wantMsg)
			}
		})
	}
}
