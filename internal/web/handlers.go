package web

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/drawlo/battleship-engine/internal/catalog"
	"github.com/drawlo/battleship-engine/internal/engine"
	"github.com/drawlo/battleship-engine/internal/store"
)

type handlers struct {
	store   *store.Store
	catalog *catalog.Seed
	tpl     *templates
	log     *slog.Logger
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (h *handlers) gameOrNotFound(w http.ResponseWriter, r *http.Request) (*engine.Game, bool) {
	id := chi.URLParam(r, "id")
	g, ok := h.store.Get(id)
	if !ok {
		writeError(w, engine.ErrNotFound)
		return nil, false
	}
	return g, true
}

// createGame handles POST /game.
type createGameRequest struct {
	BaseFleetID string `json:"baseFleetId"`
	Mode        string `json:"mode"` // "single" or "multiplayer"
	Difficulty  string `json:"difficulty,omitempty"`
}

func (h *handlers) createGame(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, engine.ErrMalformedCoordinate)
		return
	}

	mode := engine.Multiplayer
	if req.Mode == "single" {
		mode = engine.SinglePlayer
	}

	playerID := playerIDFrom(r)
	g, err := engine.CreateGame(h.catalog, playerID, req.BaseFleetID, mode, engine.ParseDifficulty(req.Difficulty))
	if err != nil {
		writeError(w, err)
		return
	}
	h.store.Add(g)

	view, err := g.GetView(playerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

// joinGame handles POST /game/{id}/join.
func (h *handlers) joinGame(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	g, ok := h.store.Get(id)
	if !ok {
		writeError(w, engine.ErrNotFound)
		return
	}
	view, err := g.JoinGame(playerIDFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// placeShip handles POST /game/{id}/place-ship.
type placeShipRequest struct {
	TemplateID     string `json:"templateId"`
	PlacementIndex int    `json:"placementIndex"`
	Start          string `json:"start"`
	Orientation    string `json:"orientation"`
}

func (h *handlers) placeShip(w http.ResponseWriter, r *http.Request) {
	g, ok := h.gameOrNotFound(w, r)
	if !ok {
		return
	}
	var req placeShipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, engine.ErrMalformedCoordinate)
		return
	}
	orientation, ok := engine.ParseOrientation(req.Orientation)
	if !ok {
		writeError(w, engine.ErrMalformedCoordinate)
		return
	}
	result, err := g.PlaceShip(playerIDFrom(r), req.TemplateID, req.PlacementIndex, req.Start, orientation)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// shoot handles POST /game/{id}/shoot.
type shootRequest struct {
	Coordinate string `json:"coordinate"`
}

func (h *handlers) shoot(w http.ResponseWriter, r *http.Request) {
	g, ok := h.gameOrNotFound(w, r)
	if !ok {
		return
	}
	var req shootRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, engine.ErrMalformedCoordinate)
		return
	}
	outcome, err := g.Shoot(playerIDFrom(r), req.Coordinate)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, outcome)
}

// getBoard handles GET /game/{id}/board.
func (h *handlers) getBoard(w http.ResponseWriter, r *http.Request) {
	g, ok := h.gameOrNotFound(w, r)
	if !ok {
		return
	}
	view, err := g.GetView(playerIDFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// getStats handles GET /game/{id}/stats.
func (h *handlers) getStats(w http.ResponseWriter, r *http.Request) {
	g, ok := h.gameOrNotFound(w, r)
	if !ok {
		return
	}
	stats, err := g.GetStats(playerIDFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// getShots handles GET /game/{id}/shots.
func (h *handlers) getShots(w http.ResponseWriter, r *http.Request) {
	g, ok := h.gameOrNotFound(w, r)
	if !ok {
		return
	}
	shots, err := g.GetShots(playerIDFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, shots)
}

// deleteGame handles DELETE /game/{id}.
func (h *handlers) deleteGame(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.store.Delete(id, playerIDFrom(r)); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// availableGames handles GET /player/available-games.
func (h *handlers) availableGames(w http.ResponseWriter, r *http.Request) {
	games := h.store.ListAvailable()
	writeJSON(w, http.StatusOK, summarize(games))
}

// myGames handles GET /player/my-games.
func (h *handlers) myGames(w http.ResponseWriter, r *http.Request) {
	games := h.store.ListForPlayer(playerIDFrom(r))
	writeJSON(w, http.StatusOK, summarize(games))
}

// gameSummary is the compact listing shape for the two /player/* routes —
// full board state isn't meaningful before a game is joined or to someone
// browsing their own match list.
type gameSummary struct {
	ID        string        `json:"id"`
	Status    engine.Status `json:"status"`
	Mode      engine.Mode   `json:"mode"`
	BoardSize int           `json:"boardSize"`
	Player1ID string        `json:"player1Id"`
	Player2ID string        `json:"player2Id,omitempty"`
}

func summarize(games []*engine.Game) []gameSummary {
	out := make([]gameSummary, len(games))
	for i, g := range games {
		g.Lock()
		out[i] = gameSummary{
			ID:        g.ID,
			Status:    g.Status,
			Mode:      g.Mode,
			BoardSize: g.BoardSize,
			Player1ID: g.Player1ID,
			Player2ID: g.Player2ID,
		}
		g.Unlock()
	}
	return out
}
