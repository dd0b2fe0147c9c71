package scores

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/wodboard/wodboard/internal/telemetry/metrics"
	"github.com/wodboard/wodboard/internal/telemetry/tracing"
	"github.com/wodboard/wodboard/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=scores_test

type scoresRepo interface {
	Add(ctx context.Context, score Score) (*Score, error)
	Update(ctx context.Context, score *Score) error
	Delete(ctx context.Context, id int) error
	ListForDate(ctx context.Context, date time.Time) ([]Score, error)
}

type Handler struct {
	repo           scoresRepo
	metricsManager *metrics.Manager
}

func NewHandler(repo scoresRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.scores.new")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var score Score
	if err := json.NewDecoder(r.Body).Decode(&score); err != nil {
		log.Tracef("new score, unmarshal json params: %s", err)
		http.Error(w, "add score failed", http.StatusBadRequest)
		return
	}

	if score.Date.IsZero() {
		http.Error(w, "error, score date empty", http.StatusBadRequest)
		return
	}
	if score.AthleteID != nil && *score.AthleteID == "" {
		http.Error(w, "error, athlete id empty", http.StatusBadRequest)
		return
	}

	if score.SubmittedAt.IsZero() {
		score.SubmittedAt = time.Now()
	}

	addedScore, err := handler.repo.Add(ctx, score)
	if err != nil {
		log.Errorf("failed to add new score for %s: %s", score.Date.Format(time.DateOnly), err)
		http.Error(w, "error, failed to add new score", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterScoreSubmissions.Inc()

	scoreJson, err := json.Marshal(addedScore)
	if err != nil {
		log.Errorf("failed to marshal new score: %s", err)
		http.Error(w, "error, failed to add new score", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, scoreJson, http.StatusCreated)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.scores.update")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var score Score
	if err := json.NewDecoder(r.Body).Decode(&score); err != nil {
		log.Tracef("update score, unmarshal json params: %s", err)
		http.Error(w, "update score failed", http.StatusBadRequest)
		return
	}

	if score.ID <= 0 {
		http.Error(w, "error, score id missing", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Update(ctx, &score); err != nil {
		if errors.Is(err, ErrScoreNotFound) {
			http.Error(w, "score not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to update score %d: %s", score.ID, err)
		http.Error(w, "error, failed to update score", http.StatusInternalServerError)
		return
	}

	scoreJson, err := json.Marshal(score)
	if err != nil {
		log.Errorf("failed to marshal updated score: %s", err)
		http.Error(w, "error, failed to update score", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, scoreJson, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.scores.delete")
	defer span.End()

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "error, invalid score id", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrScoreNotFound) {
			http.Error(w, "score not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete score %d: %s", id, err)
		http.Error(w, "error, failed to delete score", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, strconv.Itoa(id))
}

// DayScoresResponse is the raw submissions list for one date, before
// any ranking is applied.
type DayScoresResponse struct {
	Date   string  `json:"date"`
	Scores []Score `json:"scores"`
}

func (handler *Handler) HandleListForDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.scores.listForDay")
	defer span.End()

	vars := mux.Vars(r)
	dateStr := vars["date"]
	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		http.Error(w, "error, invalid date", http.StatusBadRequest)
		return
	}

	dayScores, err := handler.repo.ListForDate(ctx, date)
	if err != nil {
		log.Errorf("failed to list scores for %s: %s", dateStr, err)
		http.Error(w, "error, failed to list scores", http.StatusInternalServerError)
		return
	}

	resp := DayScoresResponse{
		Date:   dateStr,
		Scores: dayScores,
	}
	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("failed to marshal day scores: %s", err)
		http.Error(w, "failed to marshal day scores", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
