// Package transport exposes the decoder over HTTP.
package transport

import (
	"errors"
	"net/http"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-txdecoder/internal/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-txdecoder/internal/render"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

const (
	DecodeRoute = "/v1/transactions/decode"
	HealthRoute = "/health"

	maxBodyBytes = 4 << 20
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type decodeRequest struct {
	Hex string `json:"hex"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Handler serves the decode API.
type Handler struct {
	decoder TransactionDecoder
	metrics HTTPMetrics
	logger  *zap.Logger
}

func NewHandler(decoder TransactionDecoder, metrics HTTPMetrics, logger *zap.Logger) *Handler {
	return &Handler{
		decoder: decoder,
		metrics: metrics,
		logger:  logger.Named("http"),
	}
}

// Register mounts the API routes on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc(DecodeRoute, h.Decode)
	mux.HandleFunc(HealthRoute, h.Health)
}

// Decode handles POST {"hex": "..."} and responds with the rendered transaction.
func (h *Handler) Decode(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	code := http.StatusOK
	defer func() {
		h.metrics.Observe(DecodeRoute, code, started)
	}()

	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		code = http.StatusMethodNotAllowed
		h.writeError(w, code, errors.New("method not allowed"))
		return
	}

	var req decodeRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		code = http.StatusBadRequest
		h.writeError(w, code, errors.New("malformed request body"))
		return
	}

	decoded, err := h.decoder.DecodeHex(r.Context(), req.Hex)
	if err != nil {
		code = statusForError(err)
		if code == http.StatusInternalServerError {
			h.logger.Error("decode failed", zap.Error(err))
		}
		h.writeError(w, code, err)
		return
	}

	body, err := render.JSON(decoded)
	if err != nil {
		code = http.StatusInternalServerError
		h.logger.Error("render failed", zap.String("hash", decoded.Hash), zap.Error(err))
		h.writeError(w, code, errors.New("render failed"))
		return
	}
	h.write(w, code, body)
}

// Health reports that the server is up.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	h.write(w, http.StatusOK, []byte(`{"status":"healthy"}`))
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, bitcoin.ErrInvalidHex),
		errors.Is(err, bitcoin.ErrOutOfData),
		errors.Is(err, bitcoin.ErrNonCanonicalCompactSize):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeError(w http.ResponseWriter, code int, err error) {
	body, mErr := json.Marshal(errorResponse{Error: err.Error()})
	if mErr != nil {
		h.logger.Error("marshal error response", zap.Error(mErr))
		w.WriteHeader(code)
		return
	}
	h.write(w, code, body)
}

func (h *Handler) write(w http.ResponseWriter, code int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(body); err != nil {
		h.logger.Debug("write response", zap.Error(err))
	}
}
