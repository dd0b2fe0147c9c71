package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/wodboard/wodboard/internal/attendance"
	"github.com/wodboard/wodboard/internal/auth"
	"github.com/wodboard/wodboard/internal/cache"
	"github.com/wodboard/wodboard/internal/config"
	"github.com/wodboard/wodboard/internal/db"
	"github.com/wodboard/wodboard/internal/middleware"
	"github.com/wodboard/wodboard/internal/misc"
	"github.com/wodboard/wodboard/internal/profile"
	"github.com/wodboard/wodboard/internal/ranking"
	"github.com/wodboard/wodboard/internal/scores"
	"github.com/wodboard/wodboard/internal/standings"
	"github.com/wodboard/wodboard/internal/telemetry/metrics"
	"github.com/wodboard/wodboard/internal/telemetry/tracing"
	"github.com/wodboard/wodboard/internal/wod"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	mobileAppSecret   string // used by the wodboard mobile app
	versionInfo       string

	config *config.Config
	dbPool *pgxpool.Pool
	clock  ranking.Clock

	redisClient  *redis.Client
	loginChecker *auth.LoginChecker
	authService  *auth.Service
	admin        *auth.Admin

	boardCache cache.Cache

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	MobileAppSecret         string
	VersionInfo             string
	AdminUsername           string
	AdminPasswordHash       string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": "wodboard_db"},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("wodboard", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})
	if params.HoneycombTracingEnabled {
		rdb.AddHook(redisotel.NewTracingHook())
	}

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	admin := &auth.Admin{
		Username:     params.AdminUsername,
		PasswordHash: params.AdminPasswordHash,
	}
	authService := auth.NewAuthService(admin, auth.DefaultTTL, rdb)
	go func() {
		for range time.Tick(time.Hour * 8) {
			authService.ScanAndClean(ctx)
		}
	}()

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "wodboard-backend")
	if err != nil {
		return nil, err
	}

	location, err := time.LoadLocation(params.Config.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", params.Config.Timezone, err)
	}

	s := &Server{
		config:          params.Config,
		dbPool:          dbPool,
		mobileAppSecret: params.MobileAppSecret,
		versionInfo:     params.VersionInfo,

		// the gym runs in one fixed timezone, all "today" decisions use it
		clock: ranking.ClockFunc(func() time.Time {
			return time.Now().In(location)
		}),

		redisClient:  rdb,
		authService:  authService,
		admin:        admin,
		loginChecker: auth.NewLoginChecker(auth.DefaultTTL, rdb),

		boardCache: cache.NewBoardCache(),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	return s, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)

	miscHandler := misc.NewHandler(s.versionInfo, s.authService, s.admin)
	miscHandler.SetupRoutes(r, reqRateLimiter, s.metricsManager, s.config.LoginRateLimitAllowedPerMin)

	wodRepo := wod.NewRepo(s.dbPool)
	wodHandler := wod.NewHandler(wodRepo, s.metricsManager)
	r.HandleFunc("/wods", wodHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-wod")
	r.HandleFunc("/wods", wodHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-wod")
	r.HandleFunc("/wods/{date}", wodHandler.HandleGetByDate).Methods("GET", "OPTIONS").Name("get-wod")

	scoresRepo := scores.NewRepo(s.dbPool)
	scoresHandler := scores.NewHandler(scoresRepo, s.metricsManager)
	scoreSubmitLimit := middleware.RateLimit(
		reqRateLimiter, "score-submit",
		s.config.ScoreSubmitRateLimitAllowedPerMin, s.metricsManager,
	)
	r.Handle("/scores", scoreSubmitLimit(http.HandlerFunc(scoresHandler.HandleAdd))).
		Methods("POST", "OPTIONS").Name("new-score")
	r.Handle("/scores", scoreSubmitLimit(http.HandlerFunc(scoresHandler.HandleUpdate))).
		Methods("PUT", "OPTIONS").Name("update-score")
	r.HandleFunc("/scores/{id}", scoresHandler.HandleDelete).
		Methods("DELETE", "OPTIONS").Name("delete-score")
	r.HandleFunc("/scores/day/{date}", scoresHandler.HandleListForDay).
		Methods("GET", "OPTIONS").Name("day-scores")

	standingsService := standings.NewService(
		wodRepo, scoresRepo, s.redisClient, s.boardCache, s.clock, s.metricsManager,
	)
	standingsHandler := standings.NewHandler(standingsService)
	r.HandleFunc("/board/{date}", standingsHandler.HandleDayBoard).
		Methods("GET", "OPTIONS").Name("day-board")
	r.HandleFunc("/standings/week/{date}", standingsHandler.HandleWeekStandings).
		Methods("GET", "OPTIONS").Name("week-standings")
	r.HandleFunc("/standings/month/{date}", standingsHandler.HandleMonthStandings).
		Methods("GET", "OPTIONS").Name("month-standings")

	attendanceRepo := attendance.NewRepo(s.dbPool)
	attendanceHandler := attendance.NewHandler(attendanceRepo)
	r.HandleFunc("/attendance", attendanceHandler.HandleAdd).
		Methods("POST", "OPTIONS").Name("new-attendance")
	r.HandleFunc("/attendance/{athleteID}", attendanceHandler.HandleListDates).
		Methods("GET", "OPTIONS").Name("attendance-dates")

	profileService := profile.NewService(wodRepo, scoresRepo, attendanceRepo, s.clock)
	profileHandler := profile.NewHandler(profileService)
	r.HandleFunc("/athletes/{id}/profile", profileHandler.HandleGetProfile).
		Methods("GET", "OPTIONS").Name("athlete-profile")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(
		s.mobileAppSecret,
		s.loginChecker,
	)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r, nil
}

func (s *Server) Serve(ctx context.Context, host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown http server")
	}
	log.Warnln("server shut down")

	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown metrics http server")
	}
	log.Warnln("metrics server shut down")
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
