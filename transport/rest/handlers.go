package rest

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

const contentTypeHTML = "text/html; charset=utf-8"

//go:embed static/index.html
var indexPage []byte

type uNextMove interface {
	Play(ctx context.Context, encoded string) (*usecase.Result, error)
	Stats(ctx context.Context) (map[string]int64, error)
}

type Handlers struct {
	logger   *slog.Logger
	nextMove uNextMove
}

func NewHandlers(logger *slog.Logger, nextMove uNextMove) *Handlers {
	return &Handlers{
		logger:   logger.With("component", "rest"),
		nextMove: nextMove,
	}
}

func (that *Handlers) Index(w http.ResponseWriter, _ *http.Request) {
	that.write(w, http.StatusOK, contentTypeHTML, indexPage)
}

// Next - plays one engine turn for the board in the "board" query param.
func (that *Handlers) Next(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "Next")

	encoded, ok := r.URL.Query()["board"]
	if !ok || len(encoded) == 0 {
		that.write(w, http.StatusBadRequest, contentTypeHTML, []byte("missing board"))
		return
	}

	result, err := that.nextMove.Play(r.Context(), encoded[0])
	switch {
	case errors.Is(err, apperror.ErrWrongLength):
		that.write(w, http.StatusBadRequest, contentTypeHTML, []byte(err.Error()))
		return
	case err != nil:
		log.Error("failed to play", "error", err)
		that.write(w, http.StatusInternalServerError, contentTypeHTML, []byte(err.Error()))
		return
	}

	that.write(w, http.StatusOK, contentTypeHTML, []byte(result.Message()))
}

func (that *Handlers) Stats(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "Stats")

	stats, err := that.nextMove.Stats(r.Context())
	if err != nil {
		log.Error("failed to get stats", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	body, err := json.Marshal(stats)
	if err != nil {
		log.Error("failed to marshal stats", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	that.write(w, http.StatusOK, "application/json", body)
}

func (that *Handlers) NotFound(w http.ResponseWriter, _ *http.Request) {
	that.write(w, http.StatusNotFound, contentTypeHTML, []byte("NOT FOUND"))
}

func (that *Handlers) write(w http.ResponseWriter, code int, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(code)

	if _, err := w.Write(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
