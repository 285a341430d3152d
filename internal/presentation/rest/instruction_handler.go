package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Abayommy/genai-payment-intent-clarifier/internal/application/dto"
	"github.com/Abayommy/genai-payment-intent-clarifier/internal/application/usecase"
)

// InstructionHandler exposes the clarification pipeline over HTTP.
type InstructionHandler struct {
	process *usecase.ProcessInstruction
	logger  *slog.Logger
}

// NewInstructionHandler creates a new instruction handler.
func NewInstructionHandler(process *usecase.ProcessInstruction, logger *slog.Logger) *InstructionHandler {
	return &InstructionHandler{process: process, logger: logger}
}

// successEnvelope wraps a pipeline result for the caller.
type successEnvelope struct {
	Success bool                 `json:"success"`
	Data    dto.PipelineResponse `json:"data"`
}

// errorEnvelope is the failure response body.
type errorEnvelope struct {
	Error string `json:"error"`
}

// RegisterRoutes registers the instruction endpoint on the provided ServeMux.
func (h *InstructionHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/instructions", h.Process)
}

// Process handles a natural-language payment instruction request.
func (h *InstructionHandler) Process(w http.ResponseWriter, r *http.Request) {
	var req dto.ProcessInstructionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorEnvelope{Error: "invalid request body"})
		return
	}

	resp, err := h.process.Execute(r.Context(), req)
	switch {
	case errors.Is(err, usecase.ErrEmptyInput):
		writeJSON(w, http.StatusBadRequest, errorEnvelope{Error: "userInput is required"})
		return
	case err != nil:
		h.logger.Error("failed to process payment instruction",
			slog.String("error", err.Error()),
		)
		writeJSON(w, http.StatusInternalServerError, errorEnvelope{Error: "failed to process payment instruction"})
		return
	}

	writeJSON(w, http.StatusOK, successEnvelope{Success: true, Data: resp})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
