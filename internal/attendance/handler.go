package attendance

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/wodboard/wodboard/internal/telemetry/tracing"
	"github.com/wodboard/wodboard/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=attendance_test

type attendanceRepo interface {
	Add(ctx context.Context, record Record) (*Record, error)
	ListDates(ctx context.Context, athleteID string) ([]time.Time, error)
}

type Handler struct {
	repo attendanceRepo
}

func NewHandler(repo attendanceRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.attendance.new")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var record Record
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		log.Tracef("new attendance record, unmarshal json params: %s", err)
		http.Error(w, "add attendance record failed", http.StatusBadRequest)
		return
	}

	if record.AthleteID == "" {
		http.Error(w, "error, athlete id empty", http.StatusBadRequest)
		return
	}
	if record.Date.IsZero() {
		http.Error(w, "error, date empty", http.StatusBadRequest)
		return
	}

	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	addedRecord, err := handler.repo.Add(ctx, record)
	if err != nil {
		if errors.Is(err, ErrRecordExists) {
			http.Error(w, "athlete already marked present", http.StatusConflict)
			return
		}
		log.Errorf("failed to add attendance record for %s: %s", record.AthleteID, err)
		http.Error(w, "error, failed to add attendance record", http.StatusInternalServerError)
		return
	}

	recordJson, err := json.Marshal(addedRecord)
	if err != nil {
		log.Errorf("failed to marshal attendance record: %s", err)
		http.Error(w, "error, failed to add attendance record", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, recordJson, http.StatusCreated)
}

// AttendedDatesResponse lists the dates an athlete was present on.
type AttendedDatesResponse struct {
	AthleteID string   `json:"athleteId"`
	Dates     []string `json:"dates"`
}

func (handler *Handler) HandleListDates(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.attendance.listDates")
	defer span.End()

	vars := mux.Vars(r)
	athleteID := vars["athleteID"]
	if athleteID == "" {
		http.Error(w, "error, athlete id empty", http.StatusBadRequest)
		return
	}

	dates, err := handler.repo.ListDates(ctx, athleteID)
	if err != nil {
		log.Errorf("failed to list attendance dates for %s: %s", athleteID, err)
		http.Error(w, "error, failed to list attendance dates", http.StatusInternalServerError)
		return
	}

	resp := AttendedDatesResponse{
		AthleteID: athleteID,
		Dates:     make([]string, 0, len(dates)),
	}
	for _, d := range dates {
		resp.Dates = append(resp.Dates, d.Format(time.DateOnly))
	}

	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("failed to marshal attendance dates: %s", err)
		http.Error(w, "failed to marshal attendance dates", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
