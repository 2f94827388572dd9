// Copyright (c) 2025 AyurAhaar.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and JSON helpers.

  - WithLogging: slog request/completion logging with duration
  - JSONResponse / ErrorResponse: consistent JSON output; every error
    response carries a stable machine-readable code
  - ParseJSONBody: request body decoding
  - CORS: cross-origin support for the web and mobile clients
*/
package middleware
