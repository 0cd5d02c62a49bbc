package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"scholarhub/config"
	"scholarhub/database"
	"scholarhub/extraction"
	"scholarhub/metrics"
	"scholarhub/middleware"
	"scholarhub/repository"
	"scholarhub/routers"
	"scholarhub/services"
	"scholarhub/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := config.LoadConfig()
	log := utils.NewLogger(cfg.LogLevel)

	db, err := database.ConnectDb(cfg)
	if err != nil {
		log.WithError(err).Fatal("database connection failed")
	}
	log.WithField("driver", cfg.DBDriver).Info("connected to database")

	metrics.Register(prometheus.DefaultRegisterer)

	apps := repository.NewApplicationRepository(db)
	users := repository.NewUserRepository(db)
	scholarships := repository.NewScholarshipRepository(db)
	history := repository.NewHistoryRepository(db)
	tracked := repository.NewTrackedApplicationRepository(db)
	documents := repository.NewDocumentRepository(db)

	extractor := extraction.NewHTTPClient(cfg.ExtractionApiURL, cfg.ExtractionApiKey, time.Duration(cfg.ExtractionTimeoutSecs)*time.Second)
	gate := services.NewRoleGate(users)
	userService := services.NewUserService(users, log)
	reconcile := services.NewReconcileService(users, documents, log)

	app := fiber.New(fiber.Config{BodyLimit: 12 << 20})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CorsOrigins,
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	routers.Setup(app, middleware.NewJWTVerifier(cfg.JWTKey, cfg.JWTIssuer), routers.Services{
		Gate:         gate,
		Applications: services.NewApplicationService(apps, users, scholarships, history, log, time.Now),
		Admin:        services.NewAdminService(gate, apps, scholarships, history, log, time.Now),
		Users:        userService,
		Tracked:      services.NewTrackedService(tracked, scholarships, log, time.Now),
		Documents:    services.NewDocumentService(documents, users, extractor, log, time.Now),
		Scholarships: services.NewScholarshipService(scholarships),
	})

	scheduler, err := utils.StartReconcileScheduler(cfg.ReconcileCron, reconcile, log)
	if err != nil {
		log.WithError(err).WithField("schedule", cfg.ReconcileCron).Fatal("invalid reconcile schedule")
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Info("shutting down")
		<-scheduler.Stop().Done()
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.WithError(err).Error("shutdown failed")
		}
	}()

	log.WithField("port", cfg.Port).Info("server is running")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
