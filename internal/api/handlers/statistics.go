package handlers

import (
	"net/http"

	"github.com/dom/storefront-api/internal/service"
	"go.uber.org/zap"
)

type StatisticsHandler struct {
	statisticsService *service.StatisticsService
	log               *zap.Logger
}

func NewStatisticsHandler(statisticsService *service.StatisticsService, log *zap.Logger) *StatisticsHandler {
	return &StatisticsHandler{statisticsService: statisticsService, log: log}
}

func (h *StatisticsHandler) Main(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statisticsService.Main(r.Context())
	if err != nil {
		respondError(w, h.log, "statistics.Main", err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
