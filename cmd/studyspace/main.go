// v4
// cmd/studyspace/main.go
package main

import (
	"context"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iiishop/CASA0019/internal/api"
	"github.com/iiishop/CASA0019/internal/booking"
	"github.com/iiishop/CASA0019/internal/config"
	"github.com/iiishop/CASA0019/internal/engine"
	"github.com/iiishop/CASA0019/internal/logging"
	"github.com/iiishop/CASA0019/internal/observability"
	"github.com/iiishop/CASA0019/internal/sim"
	"github.com/iiishop/CASA0019/internal/transport"
)

func main() {
	dl := logging.New()
	defer dl.Close()
	lg := dl.Logger
	lg.Info("studyspace v4 starting (timeline + synthetic status publisher)")

	cfg, err := config.LoadEnvAndFiles()
	if err != nil {
		lg.Error("config", "error", err)
		os.Exit(1)
	}
	lg.Info("config loaded", "rooms", cfg.Rooms, "date", cfg.Date, "transport", cfg.Transport)

	met := observability.NewMetrics()

	pub, err := transport.New(cfg, lg)
	if err != nil {
		lg.Error("transport", "error", err)
		os.Exit(1)
	}
	defer pub.Close()

	client := booking.NewClient(cfg.BookingAPIURL, cfg.BookingToken, cfg.LocationID, cfg.Rooms, lg)
	synth := sim.NewSynthesizer(cfg.OccupancyBias, cfg.TemperatureBias, rand.New(rand.NewSource(time.Now().UnixNano())))

	eng, err := engine.New(cfg, lg, client, pub, synth, met)
	if err != nil {
		lg.Error("engine", "error", err)
		os.Exit(1)
	}

	srv := api.NewServer(cfg.HTTPBind, lg, &api.Handlers{Log: lg, Engine: eng}, met.Handler())
	go func() {
		if err := srv.Start(); err != nil {
			lg.Error("http", "error", err)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go eng.Run(ctx)

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	cancel()
	sh, c := context.WithTimeout(context.Background(), 5*time.Second)
	defer c()
	_ = srv.Stop(sh)
	lg.Info("studyspace v4 stopped")
}
