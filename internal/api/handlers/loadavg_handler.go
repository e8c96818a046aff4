package handlers

import (
	"errors"
	"net/http"

	api "loadprobe/internal/api/application"
	loadavgdomain "loadprobe/internal/loadavg/domain"
	sharedlogger "loadprobe/internal/shared/logger"
)

// LoadAverageHandler handles load average queries
type LoadAverageHandler struct {
	service *api.LoadAverageService
	logger  sharedlogger.Logger
}

// NewLoadAverageHandler creates a new load average handler
func NewLoadAverageHandler(service *api.LoadAverageService, logger sharedlogger.Logger) *LoadAverageHandler {
	return &LoadAverageHandler{
		service: service,
		logger:  logger,
	}
}

// Get handles GET /loadavg
// @Summary      Current load average
// @Description  Read the 1, 5 and 15 minute load averages from the host
// @Tags         loadavg
// @Produce      json
// @Success      200  {object}  application.LoadAverageResponse
// @Failure      500  {object}  application.ErrorResponse
// @Router       /loadavg [get]
func (h *LoadAverageHandler) Get(w http.ResponseWriter, r *http.Request) {
	avg, err := h.service.Current(r.Context())
	if errors.Is(err, loadavgdomain.ErrUnsupportedPlatform) {
		h.logger.Error("Load average unavailable", "err", err)
		respondJSONError(w, http.StatusInternalServerError, "load average is not available on this host")
		return
	} else if err != nil {
		h.logger.Error("Failed to read load average", "err", err)
		respondJSONError(w, http.StatusInternalServerError, "failed to read load average")
		return
	}

	h.logger.Debug("Read load average", "last", avg.Last, "last5", avg.Last5, "last15", avg.Last15)
	respondJSON(w, http.StatusOK, avg)
}
