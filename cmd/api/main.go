package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Esw4r/surplus-sync/internal/adapter/repo"
	"github.com/Esw4r/surplus-sync/internal/http/handlers"
	"github.com/Esw4r/surplus-sync/internal/http/httpapi"
	"github.com/Esw4r/surplus-sync/internal/infra"
	"github.com/Esw4r/surplus-sync/internal/infra/geoip"
	"github.com/Esw4r/surplus-sync/internal/middleware"
	"github.com/Esw4r/surplus-sync/internal/service"
	"github.com/Esw4r/surplus-sync/internal/ws"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()

	runner := infra.NewSQLRunner(dbpool, logger)
	donations := repo.NewDonationRepository(runner)

	hub := ws.NewHub(logger)
	core := service.New(donations, hub, logger, cfg.MaxQuantityKg)

	go core.RunSweeper(ctx, cfg.SweepInterval)

	var countryLookup middleware.CountryLookup
	resolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip disabled")
	} else if resolver != nil {
		countryLookup = resolver.CountryCode
	}

	app := handlers.NewApp(core, donations, logger)
	wsHandler := ws.NewHandler(hub, logger, cfg.WSSendTimeout)
	router := httpapi.NewRouter(app, wsHandler, httpapi.Options{
		AllowedOrigins:  cfg.AllowedOrigins,
		RateLimitPerMin: cfg.RateLimitPerMin,
		DefaultLocale:   cfg.DefaultLocale,
		CountryLookup:   countryLookup,
		Logger:          logger,
	})

	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
