package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barber-manager/internal/bus"
	"github.com/BruksfildServices01/barber-manager/internal/collection"
	"github.com/BruksfildServices01/barber-manager/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-manager/internal/db"
	"github.com/BruksfildServices01/barber-manager/internal/logger"
	"github.com/BruksfildServices01/barber-manager/internal/routes"
	"github.com/BruksfildServices01/barber-manager/internal/store"
	"github.com/BruksfildServices01/barber-manager/internal/view"
)

func main() {

	cfg := config.Load()
	log := logger.New(cfg.Env, cfg.LogLevel)

	st := newStore(cfg, log)
	defer st.Close()

	b := bus.New(st, log)
	defer b.Close()

	reg := collection.NewRegistry(st, b, log)

	ctx := context.Background()
	if err := reg.Seed(ctx, st, log); err != nil {
		log.Fatal().Err(err).Msg("failed to seed defaults")
	}

	poller := bus.NewPoller(
		st, b, cfg.PollInterval, log,
		store.KeyAppointments,
		store.KeyServices,
		store.KeyProducts,
		store.KeySales,
		store.KeyCommission,
		store.KeyUsers,
	)
	poller.Start()
	defer poller.Stop()

	dashboard := view.NewDashboard(reg, b, log)
	defer dashboard.Dispose()
	if err := dashboard.Refresh(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to load dashboard state")
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, st, reg, poller, dashboard, cfg, log)

	log.Info().Str("addr", cfg.Addr()).Str("store", cfg.StoreDriver).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}

func newStore(cfg *config.Config, log zerolog.Logger) store.RecordStore {
	switch cfg.StoreDriver {
	case "redis":
		st, err := store.NewRedisStore(cfg.RedisURL, log)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect redis")
		}
		return st
	case "postgres":
		return store.NewGormStore(dbpkg.NewDB(cfg))
	default:
		return store.NewMemoryStore()
	}
}
