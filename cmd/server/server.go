package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/alexflint/go-arg"
	mandel "github.com/marben/deepzoom_mandel"
	"github.com/marben/deepzoom_mandel/config"
)

type args struct {
	Config  string `arg:"-c,--config" help:"TOML configuration file"`
	Addr    string `arg:"--addr" help:"listen address, overrides server.addr"`
	Verbose bool   `arg:"-v,--verbose" help:"log every engine call"`
}

func (args) Description() string {
	return "deep zoom Mandelbrot server: every websocket connection gets its own engine, driven over irpc"
}

// main is the entry point for the Mandelbrot server.
// Note: All rendering is performed on the server; each client drives its own viewport.
func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	var a args
	arg.MustParse(&a)

	cfg, err := config.Load(a.Config)
	if err != nil {
		return err
	}
	if a.Addr != "" {
		cfg.Server.Addr = a.Addr
	}

	var logger *log.Logger
	if a.Verbose {
		logger = log.Default()
	}
	opts, err := cfg.EngineOptions(logger)
	if err != nil {
		return err
	}

	// every session starts at the configured region
	sessions := &sessionServer{newSession: func() (*mandel.Engine, error) {
		e, err := mandel.Setup(opts...)
		if err != nil {
			return nil, err
		}
		if err := cfg.Apply(e); err != nil {
			e.Teardown()
			return nil, err
		}
		return e, nil
	}}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	websocketListener, httpServer := webServer(ctx, cfg.Server.Addr)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("httpServer.Shutdown: %v", err)
		}
	}()

	served := make(chan error, 1)
	go func() {
		served <- sessions.Serve(websocketListener)
	}()

	log.Printf("mb server waiting for websocket connections on %s", cfg.Server.Addr)
	if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("httpServer: %w", err)
	}
	websocketListener.Close()
	if err := <-served; err != nil {
		return fmt.Errorf("sessions.Serve: %w", err)
	}
	return nil
}
