package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/countryflag/countryflag/internal/domain"
	"github.com/countryflag/countryflag/internal/service"
)

// Handler holds the HTTP handlers for the flag API
type Handler struct {
	cf     service.CountryFlag
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(cf service.CountryFlag, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		cf:     cf,
		logger: logger,
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, domain.ErrorResponse{Error: message})
}

// statusForError maps typed domain errors to HTTP statuses
func statusForError(err error) int {
	var invalidCountry *domain.InvalidCountryError
	var reverseConversion *domain.ReverseConversionError
	var regionErr *domain.RegionError

	switch {
	case errors.As(err, &invalidCountry), errors.As(err, &reverseConversion):
		return http.StatusNotFound
	case errors.As(err, &regionErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ConvertFlags handles POST /api/flags
func (h *Handler) ConvertFlags(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req domain.ConvertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid JSON in convert request", zap.Error(err))
		h.writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if len(req.Countries) == 0 {
		h.writeError(w, http.StatusBadRequest, "countries is required")
		return
	}

	result, err := h.cf.GetFlag(r.Context(), req.Countries, service.ConvertOptions{
		Separator:      req.Separator,
		Fuzzy:          req.Fuzzy,
		FuzzyThreshold: req.FuzzyThreshold,
	})
	if err != nil {
		h.logger.Warn("flag conversion failed", zap.Error(err))
		h.writeError(w, statusForError(err), err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, result)
}

// ReverseLookup handles POST /api/reverse
func (h *Handler) ReverseLookup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req domain.ReverseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid JSON in reverse request", zap.Error(err))
		h.writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if len(req.Flags) == 0 {
		h.writeError(w, http.StatusBadRequest, "flags is required")
		return
	}

	pairs, err := h.cf.ReverseLookup(r.Context(), req.Flags)
	if err != nil {
		h.logger.Warn("reverse lookup failed", zap.Error(err))
		h.writeError(w, statusForError(err), err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, pairs)
}

// RegionFlags handles GET /api/regions/{region}/flags
func (h *Handler) RegionFlags(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/api/regions/")
	region := strings.TrimSuffix(rest, "/flags")
	if region == "" || region == rest {
		h.writeError(w, http.StatusBadRequest, "region is required")
		return
	}

	result, err := h.cf.GetFlagsByRegion(r.Context(), region, r.URL.Query().Get("separator"))
	if err != nil {
		h.logger.Warn("region lookup failed",
			zap.String("region", region),
			zap.Error(err))
		h.writeError(w, statusForError(err), err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, result)
}

// ListCountries handles GET /api/countries
func (h *Handler) ListCountries(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	countries, err := h.cf.GetSupportedCountries(r.Context())
	if err != nil {
		h.logger.Error("failed to list countries", zap.Error(err))
		h.writeError(w, statusForError(err), err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, countries)
}

// Validate handles GET /api/validate?country=NAME
func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	country := r.URL.Query().Get("country")
	if country == "" {
		h.writeError(w, http.StatusBadRequest, "country is required")
		return
	}

	valid, err := h.cf.ValidateCountryName(r.Context(), country)
	if err != nil {
		h.logger.Error("validation failed",
			zap.String("country", country),
			zap.Error(err))
		h.writeError(w, statusForError(err), err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, domain.ValidateResponse{Country: country, Valid: valid})
}

// Health handles GET /health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
