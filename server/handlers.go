package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/etnz/optimaxx"
	"github.com/etnz/optimaxx/chart"
)

// maxBodySize bounds simulation requests.
const maxBodySize = 1 << 16

type handler struct {
	sim *optimaxx.Simulator
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// RespondJSON sends a JSON response with the given status code
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("cannot encode response: %v", err)
		}
	}
}

// RespondError sends an error response with the given status code
func RespondError(w http.ResponseWriter, status int, err error) {
	RespondJSON(w, status, ErrorResponse{Error: err.Error()})
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status      string `json:"status"`
	Instruments int    `json:"instruments"`
}

// Health reports the server is up.
func (h *handler) Health(w http.ResponseWriter, r *http.Request) {
	RespondJSON(w, http.StatusOK, HealthResponse{Status: "healthy", Instruments: h.sim.Catalog.Len()})
}

// InstrumentsResponse lists the catalog.
type InstrumentsResponse struct {
	Instruments []optimaxx.Instrument `json:"instruments"`
}

// Instruments returns the catalog.
func (h *handler) Instruments(w http.ResponseWriter, r *http.Request) {
	RespondJSON(w, http.StatusOK, InstrumentsResponse{Instruments: h.sim.Catalog.Instruments()})
}

// simulate decodes the request in the body and runs it, errors are already answered.
func (h *handler) simulate(w http.ResponseWriter, r *http.Request) (*optimaxx.Result, bool) {
	var req optimaxx.Request
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		RespondError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return nil, false
	}
	if req.Capital.Currency() == "" {
		req.Capital = optimaxx.M(req.Capital.Decimal(), optimaxx.DefaultCurrency)
	}

	res, err := h.sim.Simulate(r.Context(), req)
	switch {
	case errors.Is(err, optimaxx.ErrInvalidRequest):
		RespondError(w, http.StatusBadRequest, err)
		return nil, false
	case err != nil:
		RespondError(w, http.StatusInternalServerError, err)
		return nil, false
	}
	for _, warn := range res.Warnings {
		log.Printf("skipped %s", warn.Message())
	}
	return res, true
}

// Simulate runs a simulation.
func (h *handler) Simulate(w http.ResponseWriter, r *http.Request) {
	if res, ok := h.simulate(w, r); ok {
		RespondJSON(w, http.StatusOK, res)
	}
}

// Chart runs a simulation and returns the trend chart as a png image.
func (h *handler) Chart(w http.ResponseWriter, r *http.Request) {
	res, ok := h.simulate(w, r)
	if !ok {
		return
	}
	png, err := chart.Trend(res.Returns)
	if errors.Is(err, chart.ErrNotEnoughData) {
		RespondError(w, http.StatusUnprocessableEntity, err)
		return
	}
	if err != nil {
		RespondError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
