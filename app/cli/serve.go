package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"talkfeed/app/api"
	"talkfeed/app/cfg"
)

type ServeCommand struct {
	Port      string `short:"p" long:"port" env:"TALKFEED_PORT" default:"8080" description:"HTTP server port"`
	OutputDir string `short:"o" long:"output-dir" default:"feeds" description:"Directory containing generated feeds"`
}

func (c *ServeCommand) Execute(_ []string) error {
	log := setupLogger("serve")

	handler := api.NewHandler(c.OutputDir, cfg.Get().MediaDir, cfg.Get().Version, log)
	server := api.NewServer(handler)

	httpServer := &http.Server{
		Addr:         ":" + c.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		log.Info().Str("port", c.Port).Msg("starting HTTP server")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case sig := <-sigChan:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return httpServer.Shutdown(shutdownCtx)
}
