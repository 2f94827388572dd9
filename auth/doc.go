// Copyright (c) 2025 AyurAhaar.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides session ownership keys and privacy hashing.

User authentication proper is the surrounding platform's concern; this
package only guards a session against callers other than the respondent who
started it. Starting an assessment returns a session key:

	key := auth.GenerateSessionKey(sessionID, cfg.SessionKeySalt)

Every later call on that session must present it in the X-Session-Key
header; handlers verify with ValidateSessionKey (constant-time compare).

HashRef hashes respondent references before they reach log output.
*/
package auth
