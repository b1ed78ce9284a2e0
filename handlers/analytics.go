package handlers

import (
	"net/http"

	"staffdesk/service"
)

type AnalyticsHandler struct {
	stats *service.StatsService
}

func NewAnalyticsHandler(stats *service.StatsService) *AnalyticsHandler {
	return &AnalyticsHandler{stats: stats}
}

func (h *AnalyticsHandler) Get(w http.ResponseWriter, r *http.Request) {
	analytics, err := h.stats.Analytics()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch analytics")
		return
	}
	respondJSON(w, http.StatusOK, analytics)
}
