package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/limbo/fitstreak/internal/service"
	"github.com/limbo/fitstreak/pkg/cleanup"
	"github.com/limbo/fitstreak/pkg/metrics"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	mx               *chi.Mux
	userService      service.UserServiceI
	workoutsService  service.WorkoutsServiceI
	scheduleService  service.ScheduleServiceI
	exercisesService service.ExercisesServiceI
	remindersService service.RemindersServiceI
	jwtService       JWTServiceI
	metrics          *metrics.Manager
	metricsHandler   http.Handler
	limiter          *ipRateLimiter
	trustProxy       bool
}

type RateLimitOpts struct {
	// Requests per second per client, limiting is off when not positive
	RPS   float64
	Burst int
	// Take client address from X-Real-IP/X-Forwarded-For. Set only behind
	// a proxy that overwrites these headers, otherwise clients pick their bucket
	TrustProxy bool
}

type ServicesList struct {
	UserService      service.UserServiceI
	WorkoutsService  service.WorkoutsServiceI
	ScheduleService  service.ScheduleServiceI
	ExercisesService service.ExercisesServiceI
	RemindersService service.RemindersServiceI
	JwtService       JWTServiceI
	Metrics          *metrics.Manager
	// Served on /metrics when set
	MetricsHandler http.Handler
	RateLimit      RateLimitOpts
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:               chi.NewMux(),
		userService:      servicesOptions.UserService,
		workoutsService:  servicesOptions.WorkoutsService,
		scheduleService:  servicesOptions.ScheduleService,
		exercisesService: servicesOptions.ExercisesService,
		remindersService: servicesOptions.RemindersService,
		jwtService:       servicesOptions.JwtService,
		metrics:          servicesOptions.Metrics,
		metricsHandler:   servicesOptions.MetricsHandler,
		trustProxy:       servicesOptions.RateLimit.TrustProxy,
	}
	if s.metrics == nil {
		s.metrics = metrics.NewTestManager()
	}
	if servicesOptions.RateLimit.RPS > 0 {
		s.limiter = newIPRateLimiter(servicesOptions.RateLimit.RPS, servicesOptions.RateLimit.Burst)
	}
	s.mountRoutes()
	return s
}

func (s *Server) mountRoutes() {
	if s.trustProxy {
		s.mx.Use(middleware.RealIP)
	}
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware, s.MetricsMiddleware, s.RateLimitMiddleware)
	s.mx.Get("/health", s.Health)
	if s.metricsHandler != nil {
		s.mx.Handle("/metrics", s.metricsHandler)
	}
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)

		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			r.Delete("/account", s.DeleteAccount)

			r.Post("/workouts", s.CompleteWorkout)
			r.Get("/workouts", s.GetWorkouts)
			r.Get("/stats", s.GetStats)
			r.Post("/stats", s.GetUserStats)

			r.Get("/schedule", s.GetSchedule)
			r.Post("/schedule/toggle", s.ToggleScheduleDay)

			r.Post("/exercises", s.CreateExercise)
			r.Get("/exercises", s.GetExercises)
			r.Put("/exercises/{id}", s.UpdateExercise)
			r.Delete("/exercises/{id}", s.DeleteExercise)

			r.Get("/reminders/settings", s.GetReminderSettings)
			r.Put("/reminders/settings", s.UpdateReminderSettings)
			r.Get("/reminders/upcoming", s.GetUpcomingReminders)
		})
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves until SIGINT or SIGTERM, then shuts down gracefully and runs cleanup jobs
func (s *Server) Run(addr string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       time.Minute,
	}
	if s.limiter != nil {
		go s.limiter.cleanupVisitors(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server started", slog.String("address", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			cleanup.CleanUp()
			return errors.New("listening error: " + err.Error())
		}
	case <-ctx.Done():
		slog.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err := srv.Shutdown(shutdownCtx)
	cleanup.CleanUp()
	if err != nil {
		return errors.New("shutdown error: " + err.Error())
	}
	return nil
}
