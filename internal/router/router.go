package router

import (
	"net/http"

	"go.uber.org/zap"

	"hangarops/labour-reporting/internal/handler"
)

func New(occupationHandler *handler.OccupationHandler, logger *zap.Logger) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Occupation endpoints
	mux.HandleFunc("/api/v1/occupations", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			occupationHandler.CreateOccupation(w, r)
		case http.MethodGet:
			occupationHandler.GetDay(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})
	mux.HandleFunc("/api/v1/occupations/summary", occupationHandler.GetSummary)
	mux.HandleFunc("/api/v1/occupations/rebuild", occupationHandler.RebuildDay)
	mux.HandleFunc("/api/v1/employees", occupationHandler.ListEmployees)

	// Logging middleware
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Info("HTTP request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("remote_addr", r.RemoteAddr),
		)
		mux.ServeHTTP(w, r)
	})
}
