package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/Lukas18007/dyschool/internal/audit"
	"github.com/Lukas18007/dyschool/internal/config"
	dbpkg "github.com/Lukas18007/dyschool/internal/db"
	infraRepo "github.com/Lukas18007/dyschool/internal/infra/repository"
	"github.com/Lukas18007/dyschool/internal/jobs"
	"github.com/Lukas18007/dyschool/internal/logger"
	"github.com/Lukas18007/dyschool/internal/middleware"
	"github.com/Lukas18007/dyschool/internal/routes"
	"github.com/Lukas18007/dyschool/internal/session"
	"github.com/Lukas18007/dyschool/internal/timezone"
	ucCatalog "github.com/Lukas18007/dyschool/internal/usecase/catalog"
	ucLesson "github.com/Lukas18007/dyschool/internal/usecase/lesson"
	"github.com/Lukas18007/dyschool/internal/validators"
)

func main() {

	cfg := config.Load()

	appLog, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer appLog.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		appLog.Fatal("database unavailable", "error", err)
	}

	if err := validators.Register(); err != nil {
		appLog.Fatal("validator registration failed", "error", err)
	}

	// ======================================================
	// SESSIONS
	// ======================================================
	var store session.Store = session.NewMemoryStore()
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err := client.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			appLog.Fatal("redis ping failed", "addr", cfg.RedisAddr, "error", err)
		}
		defer client.Close()
		store = session.NewRedisStore(client)
	} else {
		appLog.Warn("REDIS_ADDR not set, sessions are kept in memory")
	}
	sessions := session.NewManager(store, cfg.JWTSecret, cfg.SessionTTL)

	// ======================================================
	// AUDIT + CLOCK
	// ======================================================
	auditStore := audit.NewStore(db)
	auditDispatcher := audit.NewDispatcher(auditStore, appLog.With("component", "audit"))
	clock := timezone.NewClock(cfg.Timezone)

	if cfg.SeedOnStart {
		res, err := ucCatalog.NewSeed(infraRepo.NewCatalogGormRepository(db), appLog).Execute(ctx)
		if err != nil {
			appLog.Fatal("catalog seed failed", "error", err)
		}
		appLog.Info("catalog seeded",
			"specializations_created", res.SpecializationsCreated,
			"topics_created", res.TopicsCreated,
		)
	}

	// ======================================================
	// SWEEP
	// ======================================================
	sweep := jobs.NewCompletionSweep(
		ucLesson.NewCompletePastBookings(infraRepo.NewLessonGormRepository(db), clock, auditDispatcher),
		appLog.With("component", "sweep"),
	)
	scheduler, err := jobs.Schedule(cfg.SweepSchedule, sweep)
	if err != nil {
		appLog.Fatal("invalid SWEEP_SCHEDULE", "schedule", cfg.SweepSchedule, "error", err)
	}

	// ======================================================
	// HTTP
	// ======================================================
	if cfg.LogMode == "prod" || cfg.LogMode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(appLog.With("component", "http")),
		gin.Recovery(),
		middleware.CORS(cfg.CORSOrigins),
	)

	routes.RegisterRoutes(r, routes.Deps{
		DB:         db,
		Sessions:   sessions,
		Clock:      clock,
		AuditStore: auditStore,
		Audit:      auditDispatcher,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		appLog.Info("server running", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Fatal("failed to start server", "error", err)
		}
	}()

	<-ctx.Done()
	appLog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLog.Error("shutdown error", "error", err)
	}
	if scheduler != nil {
		<-scheduler.Stop().Done()
	}
	auditDispatcher.Close()
}
