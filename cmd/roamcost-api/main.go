// README: Entry point; loads config, wires services, seeds reference data, starts the HTTP server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"roamcost/internal/config"
	httptransport "roamcost/internal/http"
	"roamcost/internal/infra"
	"roamcost/internal/logging"
	"roamcost/internal/metrics"
	"roamcost/internal/modules/catalog"
	"roamcost/internal/modules/checkout"
	"roamcost/internal/modules/recommend"
	"roamcost/internal/modules/simulation"
	"roamcost/internal/modules/trip"
	"roamcost/internal/modules/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Initialize("info")
		logging.Logger.Fatal("load config", zap.Error(err))
	}
	logging.Initialize(cfg.Logging.Level)
	defer logging.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		logging.Logger.Fatal("connect db", zap.Error(err))
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)
	collector := metrics.NewCollector(nil)

	catalogStore := catalog.NewStore(dbPool)
	catalogSvc := catalog.NewService(catalogStore, redisClient, cfg.Catalog.CacheTTL)
	loader := catalog.NewLoader(catalogStore, catalogSvc, cfg.Catalog.DataDir, cfg.Catalog.RefreshInterval, collector)

	simulationSvc := simulation.NewService(catalogSvc, collector)
	recommendSvc := recommend.NewService(simulationSvc, catalogSvc)

	tripStore := trip.NewStore(dbPool)
	tripSvc := trip.NewService(tripStore)

	checkoutStore := checkout.NewStore(dbPool)
	checkoutSvc := checkout.NewService(checkoutStore)

	userStore := user.NewStore(dbPool)
	userSvc := user.NewService(userStore)

	if err := loader.Refresh(ctx); err != nil {
		logging.Logger.Error("initial catalog load failed", zap.Error(err))
	}
	if err := userSvc.SeedFromDir(ctx, cfg.Catalog.DataDir); err != nil {
		logging.Logger.Error("user seed failed", zap.Error(err))
	}
	go loader.Run(ctx)

	router := httptransport.NewRouter(httptransport.RouterDeps{
		Simulation: simulationSvc,
		Recommend:  recommendSvc,
		Catalog:    catalogSvc,
		Trip:       tripSvc,
		Checkout:   checkoutSvc,
		User:       userSvc,
		Metrics:    collector,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: router}

	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()

	logging.Logger.Info("listening", zap.String("addr", cfg.HTTP.Addr))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logging.Logger.Fatal("serve", zap.Error(err))
	}
}
