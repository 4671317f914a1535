package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"hangarops/labour-reporting/internal/auth"
	"hangarops/labour-reporting/internal/models"
	"hangarops/labour-reporting/internal/service"
)

type OccupationHandler struct {
	service *service.LabourService
	auth    *auth.Source
	logger  *zap.Logger
}

func NewOccupationHandler(service *service.LabourService, auth *auth.Source, logger *zap.Logger) *OccupationHandler {
	return &OccupationHandler{
		service: service,
		auth:    auth,
		logger:  logger,
	}
}

// submitRequest is a submission plus the roster pin that authorizes it.
type submitRequest struct {
	models.SubmissionRequest
	PIN string `json:"pin"`
}

func (h *OccupationHandler) CreateOccupation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", zap.Error(err))
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	ok, err := h.auth.Authenticate(req.User, req.PIN)
	if err != nil {
		h.logger.Error("Failed to check credentials", zap.Error(err))
		http.Error(w, "Failed to check credentials", http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Invalid name or pin", http.StatusUnauthorized)
		return
	}

	rec, err := h.service.Submit(req.SubmissionRequest)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Error("Failed to record occupation", zap.Error(err))
		http.Error(w, "Failed to record occupation", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(rec)
}

func (h *OccupationHandler) GetDay(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	user := r.URL.Query().Get("user")
	if user == "" {
		http.Error(w, "Missing user parameter", http.StatusBadRequest)
		return
	}

	sheet, err := h.service.Day(user, r.URL.Query().Get("date"))
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Error("Failed to read day", zap.Error(err))
		http.Error(w, "Failed to read day", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sheet)
}

func (h *OccupationHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	user := r.URL.Query().Get("user")
	if user == "" {
		http.Error(w, "Missing user parameter", http.StatusBadRequest)
		return
	}

	sheet, err := h.service.Day(user, r.URL.Query().Get("date"))
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Error("Failed to build summary", zap.Error(err))
		http.Error(w, "Failed to build summary", http.StatusInternalServerError)
		return
	}

	summary := struct {
		User            string                  `json:"user"`
		Date            string                  `json:"date"`
		WorkOrderTotals []models.WorkOrderTotal `json:"work_order_totals"`
		TotalHours      float64                 `json:"total_hours"`
	}{sheet.User, sheet.Date, sheet.WorkOrderTotals, sheet.TotalHours}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summary)
}

func (h *OccupationHandler) RebuildDay(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	n, err := h.service.Rebuild(r.URL.Query().Get("date"))
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Error("Failed to rebuild aggregate", zap.Error(err))
		http.Error(w, "Failed to rebuild aggregate", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int{"records": n})
}

func (h *OccupationHandler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	names, err := h.auth.Names()
	if err != nil {
		h.logger.Error("Failed to load employee roster", zap.Error(err))
		http.Error(w, "Failed to load employee roster", http.StatusInternalServerError)
		return
	}
	if names == nil {
		names = []string{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(names)
}
