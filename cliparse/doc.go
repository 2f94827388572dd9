// Copyright (c) 2025 AyurAhaar.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse parses server configuration from CLI flags with environment
variable fallback.

Required settings:

  - DATABASE_URL (-d): connection string (Postgres URL or SQLite path)
  - SESSION_KEY_SALT (-session-salt): secret for session key HMAC

Optional settings:

  - PORT (-p): server port (default: 5000)
  - DATABASE_TYPE (-t): "sqlite" (default) or "postgres"
  - DUAL_RATIO (-dual-ratio): dual constitution ratio threshold (default 0.75)
  - DUAL_MIN_SEPARATION (-dual-separation): minimum raw-score separation
    between secondary and third dosha (default 1)

CLI flags take precedence over environment variables.
*/
package cliparse
