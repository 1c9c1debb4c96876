// Command fake-endpoint serves an in-memory CodeDeploy and Transfer Family
// over the JSON protocol, for local deployctl runs:
//
//	deployctl --endpoint http://localhost:4566 --no-sign applications list
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/codedeploy-go/internal/fakeaws"
	"github.com/angelmondragon/codedeploy-go/pkg/logger"
)

const serviceName = "fake-endpoint"

type settings struct {
	Addr      string `envconfig:"DEPLOYKIT_FAKE_ADDR" default:":4566"`
	Region    string `envconfig:"AWS_REGION" default:"us-east-1"`
	PageSize  int    `envconfig:"DEPLOYKIT_FAKE_PAGE_SIZE" default:"25"`
	LogLevel  string `envconfig:"DEPLOYKIT_LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`
}

type middleware func(service, operation string, h fakeaws.Handler) fakeaws.Handler

func main() {
	logg := logger.New(logger.Options{ServiceName: serviceName})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	var cfg settings
	if err := envconfig.Process("", &cfg); err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: serviceName,
		Level:       logger.ParseLevel(cfg.LogLevel),
		Format:      cfg.LogFormat,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logg.WithFields(ctx, map[string]any{"addr": cfg.Addr, "region": cfg.Region})

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newHandler(cfg, logg, prometheus.NewRegistry(), time.Now),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(context.Background(), "error shutting down", err)
		}
	}()

	logg.Info(ctx, "starting fake endpoint")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logg.Error(ctx, "fake endpoint stopped unexpectedly", err)
		os.Exit(1)
	}
	logg.Info(ctx, "fake endpoint stopped")
}

// newHandler wires both services and /metrics onto one router.
func newHandler(cfg settings, logg *logger.Logger, reg *prometheus.Registry, now func() time.Time) *fakeaws.Server {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "deploykit",
		Subsystem: "fake",
		Name:      "requests_total",
		Help:      "Operations served by the fake endpoint.",
	}, []string{"service", "operation", "status"})
	reg.MustRegister(requests)

	srv := fakeaws.New(logg)
	wrap := instrument(requests, logg)
	newCodeDeployState(now, cfg.PageSize).register(srv, wrap)
	newTransferState(now, cfg.Region, cfg.PageSize).register(srv, wrap)
	srv.Mount("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	return srv
}

func instrument(requests *prometheus.CounterVec, logg *logger.Logger) middleware {
	return func(service, operation string, h fakeaws.Handler) fakeaws.Handler {
		return func(req fakeaws.Request) fakeaws.Response {
			resp := h(req)
			status := resp.Status
			if status == 0 {
				status = http.StatusOK
			}
			requests.WithLabelValues(service, operation, strconv.Itoa(status)).Inc()
			if status >= http.StatusBadRequest {
				logg.Debug(logg.WithFields(context.Background(), map[string]any{
					"service":   service,
					"operation": operation,
					"status":    status,
				}), "operation failed")
			}
			return resp
		}
	}
}
