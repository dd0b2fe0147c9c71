package standings

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/wodboard/wodboard/internal/telemetry/tracing"
	"github.com/wodboard/wodboard/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type standingsService interface {
	DayBoard(ctx context.Context, date time.Time) (*DayBoard, error)
	GetStandings(ctx context.Context, periodType PeriodType, date time.Time) (*Standings, error)
}

type Handler struct {
	service standingsService
}

func NewHandler(service standingsService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) HandleDayBoard(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.standings.dayBoard")
	defer span.End()

	date, ok := dateVar(w, r)
	if !ok {
		return
	}

	board, err := handler.service.DayBoard(ctx, date)
	if err != nil {
		log.Errorf("failed to get day board for %s: %s", date.Format(time.DateOnly), err)
		http.Error(w, "error, failed to get day board", http.StatusInternalServerError)
		return
	}

	writeJson(w, board)
}

func (handler *Handler) HandleWeekStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.standings.week")
	defer span.End()
	handler.handleStandings(ctx, w, r, PeriodWeek)
}

func (handler *Handler) HandleMonthStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.standings.month")
	defer span.End()
	handler.handleStandings(ctx, w, r, PeriodMonth)
}

func (handler *Handler) handleStandings(ctx context.Context, w http.ResponseWriter, r *http.Request, periodType PeriodType) {
	date, ok := dateVar(w, r)
	if !ok {
		return
	}

	standings, err := handler.service.GetStandings(ctx, periodType, date)
	if err != nil {
		log.Errorf("failed to get %s standings for %s: %s", periodType, date.Format(time.DateOnly), err)
		http.Error(w, "error, failed to get standings", http.StatusInternalServerError)
		return
	}

	writeJson(w, standings)
}

func dateVar(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	vars := mux.Vars(r)
	date, err := time.Parse(time.DateOnly, vars["date"])
	if err != nil {
		http.Error(w, "error, invalid date", http.StatusBadRequest)
		return time.Time{}, false
	}
	return date, true
}

func writeJson(w http.ResponseWriter, value interface{}) {
	valueJson, err := json.Marshal(value)
	if err != nil {
		log.Errorf("failed to marshal response: %s", err)
		http.Error(w, "failed to marshal response", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, valueJson, http.StatusOK)
}
