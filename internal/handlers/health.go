package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-rates-dashboard/internal/logger"
	"github.com/sbilibin2017/gw-rates-dashboard/internal/models"
)

// ConnectionTester probes every configured backend with the stored settings.
type ConnectionTester interface {
	TestConnections(ctx context.Context) (*models.HealthReport, error)
}

// NewHealthHandler returns an HTTP handler reporting the gateway's own health
// plus the reachability of the configured backends. Unreachable backends
// produce a warning in the report, not a failing status.
// @Summary Health report
// @Tags health
// @Produce json
// @Success 200 {object} models.HealthReport "Health report"
// @Failure 500 {object} handlers.ErrorResponse "Storage failure"
// @Router /health [get]
func NewHealthHandler(svc ConnectionTester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		report, err := svc.TestConnections(ctx)
		if err != nil {
			logger.Log.Errorw("failed to run health probes", "error", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}
