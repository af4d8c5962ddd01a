package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/drawlo/battleship-engine/internal/engine"
)

// writeError maps an engine.Error's Kind to an HTTP status code without
// ever string-matching the message, per the error handling design.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	var ee *engine.Error
	if errors.As(err, &ee) {
		switch ee.Kind {
		case engine.KindNotFound:
			status = http.StatusNotFound
		case engine.KindUnauthorized:
			status = http.StatusForbidden
		case engine.KindNotYourTurn, engine.KindWrongPhase:
			status = http.StatusConflict
		case engine.KindMalformedCoordinate, engine.KindOutOfBounds,
			engine.KindAlreadyShot, engine.KindOverlap, engine.KindInvalidFleet,
			engine.KindCannotJoinOwn, engine.KindAlreadyJoined:
			status = http.StatusBadRequest
		case engine.KindGameFull:
			status = http.StatusConflict
		case engine.KindPlacementImpossible:
			status = http.StatusInternalServerError
		}
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// recoverMiddleware logs and converts an engine invariant-violation panic
// into a 500, per spec.md section 7's "implementations MUST log and MUST
// NOT silently repair."
func recoverMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("panic handling request", "panic", rec, "path", r.URL.Path)
					writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
