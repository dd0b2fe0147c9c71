package wod

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/wodboard/wodboard/internal/telemetry/metrics"
	"github.com/wodboard/wodboard/internal/telemetry/tracing"
	"github.com/wodboard/wodboard/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=wod_test

type wodRepo interface {
	Add(ctx context.Context, workout Workout) (*Workout, error)
	Update(ctx context.Context, workout *Workout) error
	GetByDate(ctx context.Context, date time.Time) (*Workout, error)
	ListRange(ctx context.Context, from, to time.Time) ([]Workout, error)
}

type Handler struct {
	repo           wodRepo
	metricsManager *metrics.Manager
}

func NewHandler(repo wodRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		metricsManager: metricsManager,
	}
}

type AddWorkoutResponse struct {
	Workout
	Discipline Discipline `json:"discipline"`
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.wod.new")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var workout Workout
	if err := json.NewDecoder(r.Body).Decode(&workout); err != nil {
		log.Tracef("new workout, unmarshal json params: %s", err)
		http.Error(w, "add workout failed", http.StatusBadRequest)
		return
	}

	if workout.Date.IsZero() {
		http.Error(w, "error, workout date empty", http.StatusBadRequest)
		return
	}
	if workout.DisciplineOverride != nil {
		switch *workout.DisciplineOverride {
		case DisciplineTime, DisciplineAmrap, DisciplineNoScore:
		default:
			http.Error(w, "error, invalid discipline override", http.StatusBadRequest)
			return
		}
	}

	if workout.CreatedAt.IsZero() {
		workout.CreatedAt = time.Now()
	}

	addedWorkout, err := handler.repo.Add(ctx, workout)
	if err != nil {
		if errors.Is(err, ErrWorkoutExists) {
			http.Error(w, "workout for that date already exists", http.StatusConflict)
			return
		}
		log.Errorf("failed to add new workout for %s: %s", workout.Date.Format(time.DateOnly), err)
		http.Error(w, "error, failed to add new workout", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterWodsPublished.Inc()

	resp := AddWorkoutResponse{
		Workout:    *addedWorkout,
		Discipline: addedWorkout.Discipline(),
	}
	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("failed to marshal new workout: %s", err)
		http.Error(w, "error, failed to add new workout", http.StatusInternalServerError)
		return
	}

	log.Debugf("new workout added: %s [%s]", addedWorkout.Date.Format(time.DateOnly), resp.Discipline)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusCreated)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.wod.update")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var workout Workout
	if err := json.NewDecoder(r.Body).Decode(&workout); err != nil {
		log.Tracef("update workout, unmarshal json params: %s", err)
		http.Error(w, "update workout failed", http.StatusBadRequest)
		return
	}

	if workout.ID <= 0 {
		http.Error(w, "error, workout id missing", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Update(ctx, &workout); err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			http.Error(w, "workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to update workout %d: %s", workout.ID, err)
		http.Error(w, "error, failed to update workout", http.StatusInternalServerError)
		return
	}

	workoutJson, err := json.Marshal(workout)
	if err != nil {
		log.Errorf("failed to marshal updated workout: %s", err)
		http.Error(w, "error, failed to update workout", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, workoutJson, http.StatusOK)
}

func (handler *Handler) HandleGetByDate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.wod.getbydate")
	defer span.End()

	vars := mux.Vars(r)
	dateStr := vars["date"]
	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		http.Error(w, "error, invalid date", http.StatusBadRequest)
		return
	}

	workout, err := handler.repo.GetByDate(ctx, date)
	if err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			http.Error(w, "workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get workout for %s: %s", dateStr, err)
		http.Error(w, "error, failed to get workout", http.StatusInternalServerError)
		return
	}

	resp := AddWorkoutResponse{
		Workout:    *workout,
		Discipline: workout.Discipline(),
	}
	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("failed to marshal workout: %s", err)
		http.Error(w, "failed to marshal workout", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
