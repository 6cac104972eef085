package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"karting/internal/config"
	"karting/internal/database"
	"karting/internal/middleware"
	"karting/internal/modules/booking"
	"karting/internal/modules/clients"
	"karting/internal/modules/discounts"
	"karting/internal/modules/rack"
	"karting/internal/modules/rates"
	"karting/internal/modules/reports"
	"karting/internal/modules/voucher"
	"karting/internal/pkg/logger"
	"karting/internal/repository"
)

func main() {
	_ = godotenv.Load()
	logger.Init(os.Getenv("APP_ENV"))

	v, err := config.LoadConfig()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}
	cfg, err := config.ParseConfig(v)
	if err != nil {
		logrus.WithError(err).Fatal("failed to parse config")
	}

	db, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to database")
	}

	bookingRepo := repository.NewBookingRepository(db)
	clientRepo := repository.NewClientRepository(db)
	rackRepo := repository.NewRackRepository(db)
	for _, m := range []interface{ Migrate() error }{clientRepo, bookingRepo, rackRepo} {
		if err := m.Migrate(); err != nil {
			logrus.WithError(err).Fatal("failed to migrate database")
		}
	}

	ratesService := rates.NewService()
	ratesHandler := rates.NewHandler(ratesService)

	discountsService := discounts.NewService()
	discountsHandler := discounts.NewHandler(discountsService)

	clientsService := clients.NewService(clientRepo)
	clientsHandler := clients.NewHandler(clientsService)

	rackService := rack.NewService(rackRepo)
	rackHandler := rack.NewHandler(rackService)

	bookingService := booking.NewService(bookingRepo, ratesService, discountsService, clientsService, rackService)
	bookingHandler := booking.NewHandler(bookingService)

	reportsService := reports.NewService(bookingService)
	reportsHandler := reports.NewHandler(reportsService)

	voucherService := voucher.NewService(bookingService, voucher.NewSMTPMailer(cfg.SMTP))
	voucherHandler := voucher.NewHandler(voucherService)

	if os.Getenv("APP_ENV") != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		ratesHandler.RegisterRoutes(v1)
		discountsHandler.RegisterRoutes(v1)
		clientsHandler.RegisterRoutes(v1)
		bookingHandler.RegisterRoutes(v1)
		rackHandler.RegisterRoutes(v1)
		reportsHandler.RegisterRoutes(v1)
		voucherHandler.RegisterRoutes(v1)
	}

	logrus.WithField("port", cfg.Server.Port).Info("starting api server")
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
