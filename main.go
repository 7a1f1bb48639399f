package main

import (
	"context"
	"fmt"
	"time"

	"bistro-api/config"
	"bistro-api/handlers"
	"bistro-api/payment"
	"bistro-api/routes"
	"bistro-api/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	config.SetupLogger(*cfg)

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	// Initialize datastore
	s, err := openStore(cfg)
	if err != nil {
		logrus.Fatalf("Failed to open %s store: %v", cfg.DBDriver, err)
	}
	defer func() {
		if err := s.Close(); err != nil {
			logrus.WithError(err).Warn("closing store")
		}
	}()

	gw := payment.NewStripeGateway(cfg.StripeSecretKey, cfg.StripeAPIURL)
	h := handlers.NewHandler(s, gw, cfg.TokenSecret, cfg.Currency)
	r := routes.NewRouter(h, cfg.CORSOrigins)

	logrus.WithFields(logrus.Fields{
		"addr":   cfg.Addr(),
		"driver": cfg.DBDriver,
	}).Info("Bistro Boss server listening")
	if err := r.Run(cfg.Addr()); err != nil {
		logrus.Fatalf("Failed to start server: %v", err)
	}
}

func openStore(cfg *config.Config) (store.Store, error) {
	switch cfg.DBDriver {
	case "sqlite":
		return store.OpenSQLite(cfg.DBDSN)
	case "postgres":
		return store.OpenPostgres(cfg.DBDSN)
	case "mongodb":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return store.OpenMongo(ctx, cfg.MongoConnString(), cfg.DBName)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}
