package commands

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dymensionxyz/tonshard/config"
)

// startPrometheusServer serves /metrics until ctx is done.
func startPrometheusServer(ctx context.Context, conf *config.InstrumentationConfig) error {
	if conf == nil || !conf.Prometheus {
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{
		Addr:         conf.PrometheusListenAddr,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		Handler:      mux,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Serving prometheus server.", "error", err)
		}
	}()
	logger.Info("Prometheus server started", "address", conf.PrometheusListenAddr)

	<-ctx.Done()
	return srv.Close()
}
