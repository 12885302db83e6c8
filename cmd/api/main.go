package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/limbo/fitstreak/internal/api"
	"github.com/limbo/fitstreak/internal/cache"
	"github.com/limbo/fitstreak/internal/repository"
	"github.com/limbo/fitstreak/internal/service"
	"github.com/limbo/fitstreak/pkg/config"
	jwtservice "github.com/limbo/fitstreak/pkg/jwt_service"
	"github.com/limbo/fitstreak/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	service.InitValidator()
}

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
		SSLMode:  cfg.GetString("POSTGRES_SSLMODE"),
	}
	if dir := cfg.GetString("MIGRATIONS_DIR"); dir != "" {
		if err := repository.Migrate(&dbCfg, dir); err != nil {
			log.Fatal(err)
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	pool, err := repository.Connect(ctx, &dbCfg)
	cancel()
	if err != nil {
		log.Fatal(err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewManager("fitstreak", "api", reg)

	workoutsRepo := repository.NewWorkoutsRepo(pool)
	schedulesRepo := repository.NewSchedulesRepo(pool)
	remindersRepo := repository.NewRemindersRepo(pool)
	statsCache := cache.NewStatsCache(
		cfg.GetInt("STATS_CACHE_MB", 16),
		time.Duration(cfg.GetInt("STATS_CACHE_TTL_SECONDS", 0))*time.Second,
	)

	serv := api.New(&api.ServicesList{
		UserService:      service.NewUserService(repository.NewUsersRepo(pool)),
		WorkoutsService:  service.NewWorkoutsService(workoutsRepo, statsCache, service.WithMetrics(m), service.WithTimezones(remindersRepo)),
		ScheduleService:  service.NewScheduleService(schedulesRepo, service.WithMetrics(m)),
		ExercisesService: service.NewExercisesService(repository.NewExercisesRepo(pool)),
		RemindersService: service.NewRemindersService(remindersRepo, schedulesRepo, workoutsRepo),
		JwtService:       jwtservice.New(cfg.GetString("JWT_SECRET"), cfg.GetDuration("JWT_TTL", 0)),
		Metrics:          m,
		MetricsHandler:   promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
		RateLimit: api.RateLimitOpts{
			RPS:        cfg.GetFloat("RATE_LIMIT_RPS", 0),
			Burst:      cfg.GetInt("RATE_LIMIT_BURST", 1),
			TrustProxy: cfg.GetBool("RATE_LIMIT_TRUST_PROXY", false),
		},
	})
	err = serv.Run(cfg.GetStringOr("API_ADDRESS", ":8080"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}
