// Copyright (c) 2025 AyurAhaar.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes using Go 1.22+ method routing.

	mux := router.NewRouter(st, cat, cfg)

Routes are grouped by concern: the read-only question catalog, the
session-key-protected assessment lifecycle, and the respondent result views.
All routes are wrapped with request logging.
*/
package router
