package profile

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/wodboard/wodboard/internal/telemetry/tracing"
	"github.com/wodboard/wodboard/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type statsService interface {
	ComputeStats(ctx context.Context, athleteID string) (*Stats, error)
}

type Handler struct {
	service statsService
}

func NewHandler(service statsService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.get")
	defer span.End()

	vars := mux.Vars(r)
	athleteID := vars["id"]
	if athleteID == "" {
		http.Error(w, "error, athlete id empty", http.StatusBadRequest)
		return
	}

	stats, err := handler.service.ComputeStats(ctx, athleteID)
	if err != nil {
		log.Errorf("failed to compute profile stats for %s: %s", athleteID, err)
		http.Error(w, "error, failed to compute profile stats", http.StatusInternalServerError)
		return
	}

	statsJson, err := json.Marshal(stats)
	if err != nil {
		log.Errorf("failed to marshal profile stats: %s", err)
		http.Error(w, "failed to marshal profile stats", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, statsJson, http.StatusOK)
}
