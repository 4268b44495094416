package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/vovakirdan/match-league/internal/catalog"
	"github.com/vovakirdan/match-league/internal/results"
	"github.com/vovakirdan/match-league/internal/storage"
)

// maxRankingSize caps the top parameter.
const maxRankingSize = 100

var errNoStore = errors.New("result storage is not configured")

// RankingEntry is one row of the ranking board.
type RankingEntry struct {
	Name    string    `json:"nombre"`
	Score   int       `json:"puntuacion"`
	Elapsed int       `json:"tiempo"`
	Date    time.Time `json:"fecha"`
}

// RankingResponse is the ranking board body.
type RankingResponse struct {
	Success bool           `json:"success"`
	Ranking []RankingEntry `json:"ranking"`
}

// StatsBody is the per-player statistics object.
type StatsBody struct {
	GamesPlayed int `json:"gamesPlayed"`
	BestScore   int `json:"bestScore"`
	TotalScore  int `json:"totalScore"`
	Completed   int `json:"completed"`
}

// StatsResponse is the player statistics body.
type StatsResponse struct {
	Success bool      `json:"success"`
	Stats   StatsBody `json:"stats"`
}

// DefaultCatalog serves the default batch.
func (a *API) DefaultCatalog(w http.ResponseWriter, r *http.Request) {
	a.serveCatalog(w, r, 0)
}

// Catalog serves the batch named by the id path value.
func (a *API) Catalog(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		sendJSONOrLog(w, a.logger, http.StatusBadRequest, catalog.ErrorResponse(fmt.Errorf("invalid batch id %q", r.PathValue("id"))))
		return
	}
	a.serveCatalog(w, r, id)
}

func (a *API) serveCatalog(w http.ResponseWriter, r *http.Request, id int64) {
	c, err := a.catalogs.FetchCatalog(r.Context(), id)
	switch {
	case errors.Is(err, catalog.ErrNotFound), errors.Is(err, catalog.ErrEmptyCatalog):
		sendJSONOrLog(w, a.logger, http.StatusNotFound, catalog.ErrorResponse(err))
		return
	case err != nil:
		a.logger.Error("unable to fetch catalog", "batch", id, "error", err)
		sendJSONOrLog(w, a.logger, http.StatusBadGateway, catalog.ErrorResponse(err))
		return
	}
	sendJSONOrLog(w, a.logger, http.StatusOK, catalog.NewResponse(c))
}

// SaveResult stores a form-encoded result and answers with its ranking.
func (a *API) SaveResult(w http.ResponseWriter, r *http.Request) {
	if a.store == nil {
		sendErrorOrLog(w, a.logger, http.StatusServiceUnavailable, errNoStore)
		return
	}
	if err := r.ParseForm(); err != nil {
		sendErrorOrLog(w, a.logger, http.StatusBadRequest, err)
		return
	}
	form, err := results.DecodeForm(r.PostForm)
	if err != nil {
		sendErrorOrLog(w, a.logger, http.StatusBadRequest, err)
		return
	}

	rec := storage.RecordFromResult(form.Result())
	rec.CreatedAt = a.now()
	id, ranking, err := a.store.SaveResult(r.Context(), rec)
	if err != nil {
		a.logger.Error("unable to save result", "error", err)
		sendErrorOrLog(w, a.logger, http.StatusInternalServerError, err)
		return
	}

	a.logger.Info("result saved", "player", rec.Player, "score", rec.Score, "ranking", ranking)
	sendJSONOrLog(w, a.logger, http.StatusOK, results.Response{
		Success:  true,
		ResultID: id,
		Ranking:  ranking,
		Message:  "saved",
	})
}

// Ranking serves the top completed results. The top query parameter defaults
// to 10.
func (a *API) Ranking(w http.ResponseWriter, r *http.Request) {
	if a.store == nil {
		sendErrorOrLog(w, a.logger, http.StatusServiceUnavailable, errNoStore)
		return
	}

	top := storage.DefaultRankingSize
	if raw := r.URL.Query().Get("top"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			sendErrorOrLog(w, a.logger, http.StatusBadRequest, fmt.Errorf("invalid top %q", raw))
			return
		}
		top = min(n, maxRankingSize)
	}

	records, err := a.store.TopResults(r.Context(), top)
	if err != nil {
		a.logger.Error("unable to load ranking", "error", err)
		sendErrorOrLog(w, a.logger, http.StatusInternalServerError, err)
		return
	}

	entries := make([]RankingEntry, len(records))
	for i, rec := range records {
		entries[i] = RankingEntry{
			Name:    rec.Player,
			Score:   rec.Score,
			Elapsed: rec.Elapsed,
			Date:    rec.CreatedAt,
		}
	}
	sendJSONOrLog(w, a.logger, http.StatusOK, RankingResponse{Success: true, Ranking: entries})
}

// Stats serves aggregate results for the player query parameter.
func (a *API) Stats(w http.ResponseWriter, r *http.Request) {
	if a.store == nil {
		sendErrorOrLog(w, a.logger, http.StatusServiceUnavailable, errNoStore)
		return
	}

	player := r.URL.Query().Get("player")
	if player == "" {
		sendErrorOrLog(w, a.logger, http.StatusBadRequest, errors.New("player is required"))
		return
	}

	stats, err := a.store.Stats(r.Context(), player)
	if err != nil {
		a.logger.Error("unable to load stats", "player", player, "error", err)
		sendErrorOrLog(w, a.logger, http.StatusInternalServerError, err)
		return
	}
	sendJSONOrLog(w, a.logger, http.StatusOK, StatsResponse{
		Success: true,
		Stats: StatsBody{
			GamesPlayed: stats.GamesPlayed,
			BestScore:   stats.BestScore,
			TotalScore:  stats.TotalScore,
			Completed:   stats.Completed,
		},
	})
}
