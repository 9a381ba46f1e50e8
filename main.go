package main

import (
	"context"
	"errors"
	"log"
	"net/http"

	"assettrack/src/api"
	"assettrack/src/config"
	"assettrack/src/scheduler"
	"assettrack/src/utils"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.LoadConfig("./settings")
	if err != nil {
		log.Println(err, "Error while loading config")
		return
	}
	errC, err := run(cfg)
	if err != nil {
		log.Println(err, "Couldn't run")
		return
	}

	if err := <-errC; err != nil {
		log.Println(err, "Error while running")
	}
}

func run(cfg *config.Config) (<-chan error, error) {
	errC := make(chan error, 1)

	logLevel, err := logrus.ParseLevel(cfg.Service.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger := utils.NewLogger(logLevel, false, "")

	server, err := api.NewServer(cfg, logger)
	if err != nil {
		return nil, err
	}
	httpServer := api.NewHTTPServer(server, cfg)

	runner := scheduler.NewReportRunner(
		server.Handler.Schedules,
		server.Handler.Reports,
		cfg.Reports.OutputDir,
		logger,
	)
	if err := runner.Start(context.Background()); err != nil {
		return nil, err
	}

	go func() {
		logger.Infof("Starting server on port %s", cfg.Service.Port)

		// "ListenAndServe always returns a non-nil error. After Shutdown or Close, the returned error is
		// ErrServerClosed."
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			runner.Stop()
			errC <- err
		}
	}()
	return errC, nil
}
