// Package chi exposes the HTTP API: GET/POST/DELETE /api/offers plus
// health and metrics endpoints.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/rentaly/offersearch/internal/domain"
	"github.com/rentaly/offersearch/internal/domain/facet"
	"github.com/rentaly/offersearch/internal/domain/query"
	healthuc "github.com/rentaly/offersearch/internal/usecase/health"
	ingestuc "github.com/rentaly/offersearch/internal/usecase/ingest"
	searchuc "github.com/rentaly/offersearch/internal/usecase/search"
	"github.com/rentaly/offersearch/internal/version"
)

// Error codes returned to clients.
const (
	codeBadRequest       = "bad_request"
	codeValidationFailed = "validation_failed"
	codeInternalError    = "internal_error"
)

// errorResponse is the JSON error body.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server wires the use case services to HTTP handlers.
type Server struct {
	search        *searchuc.Service
	ingest        *ingestuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	search *searchuc.Service,
	ingest *ingestuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		search: search,
		ingest: ingest,
		health: health,
		logger: logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrEmptyBatch, http.StatusBadRequest, codeValidationFailed),
		sentinelHandler(domain.ErrInvalidOffer, http.StatusBadRequest, codeValidationFailed),
		sentinelHandler(domain.ErrInvalidQuery, http.StatusBadRequest, codeValidationFailed),
	}
	return s
}

// Register mounts all routes on the router.
func (s *Server) Register(r chi.Router) {
	r.Get("/api/offers", s.GetOffers)
	r.Post("/api/offers", s.CreateOffers)
	r.Delete("/api/offers", s.CleanupData)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// offerSummary is the per-offer search result entry: ID plus the opaque
// payload, base64-encoded by JSON marshalling of the byte slice.
type offerSummary struct {
	ID   string `json:"ID"`
	Data []byte `json:"data"`
}

// searchResponse is the full search result body.
type searchResponse struct {
	Offers             []offerSummary         `json:"offers"`
	PriceRanges        []facet.PriceRange     `json:"priceRanges"`
	CarTypeCounts      facet.CarTypeCounts    `json:"carTypeCounts"`
	SeatsCount         []facet.SeatsCount     `json:"seatsCount"`
	FreeKilometerRange []facet.KilometerRange `json:"freeKilometerRange"`
	VollkaskoCount     facet.VollkaskoCount   `json:"vollkaskoCount"`
}

// createOffersRequest is the ingestion body.
type createOffersRequest struct {
	Offers []domain.Offer `json:"offers"`
}

// createOffersResponse reports how many offers were committed.
type createOffersResponse struct {
	Inserted int `json:"inserted"`
}

// GetOffers handles GET /api/offers.
func (s *Server) GetOffers(w http.ResponseWriter, r *http.Request) {
	params, err := searchParamsFromRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}

	q, err := query.New(params)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
		return
	}

	res, err := s.search.Search(r.Context(), &q)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, searchResultToWire(res))
}

// CreateOffers handles POST /api/offers.
func (s *Server) CreateOffers(w http.ResponseWriter, r *http.Request) {
	var req createOffersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := s.ingest.Create(r.Context(), req.Offers); err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, createOffersResponse{Inserted: len(req.Offers)})
}

// CleanupData handles DELETE /api/offers.
func (s *Server) CleanupData(w http.ResponseWriter, r *http.Request) {
	if err := s.ingest.Wipe(r.Context()); err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, map[string]any{
		"status":  report.Status,
		"version": version.String(),
		"checks":  report.Checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func searchResultToWire(res *searchuc.Result) searchResponse {
	offers := make([]offerSummary, len(res.Offers))
	for i := range res.Offers {
		offers[i] = offerSummary{ID: res.Offers[i].ID, Data: res.Offers[i].Data}
	}
	return searchResponse{
		Offers:             offers,
		PriceRanges:        res.PriceRanges,
		CarTypeCounts:      res.CarTypeCounts,
		SeatsCount:         res.SeatsCount,
		FreeKilometerRange: res.FreeKilometerRange,
		VollkaskoCount:     res.VollkaskoCount,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrEmptyBatch,
		domain.ErrInvalidOffer,
		domain.ErrInvalidQuery,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			s.logger.Warn("request rejected", zap.Error(err))
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
