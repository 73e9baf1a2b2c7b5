// v0
// cmd/monitord/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rohithdvg2005-eng/solar-microgrid/internal/config"
	"github.com/rohithdvg2005-eng/solar-microgrid/internal/engine"
	"github.com/rohithdvg2005-eng/solar-microgrid/internal/httpapi"
	"github.com/rohithdvg2005-eng/solar-microgrid/internal/logging"
	"github.com/rohithdvg2005-eng/solar-microgrid/internal/publisher"
	"github.com/rohithdvg2005-eng/solar-microgrid/internal/session"
	"github.com/rohithdvg2005-eng/solar-microgrid/internal/simclock"
	"github.com/rohithdvg2005-eng/solar-microgrid/internal/telemetry"
)

func main() {
	lg, err := logging.New()
	if err != nil {
		panic(err)
	}
	defer lg.Close()
	log := lg.Logger

	cfg := config.FromEnv()
	log.Info("config loaded",
		"bind", cfg.BindAddr,
		"seed", cfg.Seed,
		"seriesLength", cfg.SeriesLength,
		"refresh", cfg.RefreshInterval,
		"publisher", cfg.Publisher,
	)

	clk := simclock.RealClock{}
	sessions := session.NewManager(clk)
	limiter := session.NewLimiter(cfg.SuppressionInterval)

	params := telemetry.Params{
		Seed:   cfg.Seed,
		Length: cfg.SeriesLength,
		Step:   cfg.SampleStep,
		Start:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	eng := engine.New(log, params, clk, sessions.Start())
	log.Info("telemetry series ready", "samples", eng.Series().Len())

	pub, err := publisher.New(cfg, log)
	if err != nil {
		log.Error("publisher init failed", "err", err)
		os.Exit(1)
	}
	if pub != nil {
		defer pub.Close()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go publisher.NewLoop(eng, pub, cfg.RefreshInterval, log).Run(ctx)

	api := &httpapi.Server{Log: log, Engine: eng, Sessions: sessions, Limiter: limiter}
	srv := api.NewHTTPServer(cfg.BindAddr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "err", err)
		}
	}()
	log.Info("microgrid monitor started", "addr", cfg.BindAddr)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", "err", err)
	}
	log.Info("microgrid monitor stopped")
}
