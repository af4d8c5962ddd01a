package web

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/drawlo/battleship-engine/internal/catalog"
	"github.com/drawlo/battleship-engine/internal/store"
)

// NewServer wires the reference HTTP mapping (spec.md section 6) onto s
// and seed, and returns the resulting http.Handler.
func NewServer(s *store.Store, seed *catalog.Seed, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	h := &handlers{store: s, catalog: seed, tpl: loadTemplates(), log: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(recoverMiddleware(logger))
	r.Use(authStub)

	r.Get("/", h.spectatorIndex)

	r.Post("/game", h.createGame)
	r.Route("/game/{id}", func(r chi.Router) {
		r.Post("/join", h.joinGame)
		r.Post("/place-ship", h.placeShip)
		r.Post("/shoot", h.shoot)
		r.Get("/board", h.getBoard)
		r.Get("/stats", h.getStats)
		r.Get("/shots", h.getShots)
		r.Delete("/", h.deleteGame)
	})

	r.Get("/player/available-games", h.availableGames)
	r.Get("/player/my-games", h.myGames)

	return r
}
