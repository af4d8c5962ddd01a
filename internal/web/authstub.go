package web

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// playerIDKey is the context key authStub stores the acting player's id
// under. The engine package never sees it — only internal/web does.
type playerIDKey struct{}

// authStub stands in for the excluded auth collaborator: it reads a
// "player_id" cookie set on a visitor's first request, minting a fresh
// uuid when absent, and stores it in the request context. Grounded on the
// teacher's ensurePlayerCookie helper; a production deployment would
// replace this middleware with real signed-token verification without
// touching any handler.
func authStub(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		playerID := ""
		if c, err := r.Cookie("player_id"); err == nil && c.Value != "" {
			playerID = c.Value
		} else {
			playerID = uuid.NewString()
			http.SetCookie(w, &http.Cookie{Name: "player_id", Value: playerID, Path: "/"})
		}
		ctx := context.WithValue(r.Context(), playerIDKey{}, playerID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func playerIDFrom(r *http.Request) string {
	id, _ := r.Context().Value(playerIDKey{}).(string)
	return id
}
