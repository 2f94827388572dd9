// Copyright (c) 2025 AyurAhaar.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"

	"github.com/Abhinay2206/AyurAhaar-sub002/engine"
	"github.com/Abhinay2206/AyurAhaar-sub002/middleware"
	"github.com/Abhinay2206/AyurAhaar-sub002/store"
)

// writeEngineError maps engine and store failures onto HTTP statuses with
// their stable error codes. A lost optimistic-concurrency race reads the same
// as any other stale answer: the client refetches progress and resubmits.
func writeEngineError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrConflict) {
		middleware.ErrorResponse(w, http.StatusConflict, engine.Code(engine.ErrStaleAnswer), engine.ErrStaleAnswer.Error())
		return
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, engine.ErrInvalidOption):
		status = http.StatusBadRequest
	case errors.Is(err, engine.ErrStaleAnswer),
		errors.Is(err, engine.ErrSessionClosed),
		errors.Is(err, engine.ErrSessionNotComplete):
		status = http.StatusConflict
	}
	middleware.ErrorResponse(w, status, engine.Code(err), err.Error())
}
