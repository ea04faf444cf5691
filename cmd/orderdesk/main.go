package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	logger "github.com/sirupsen/logrus"
	"github.com/wellywell/orderdesk/internal/config"
	"github.com/wellywell/orderdesk/internal/db"
	"github.com/wellywell/orderdesk/internal/gateway"
	"github.com/wellywell/orderdesk/internal/handlers"
	"github.com/wellywell/orderdesk/internal/notify"
	"github.com/wellywell/orderdesk/internal/payment"
	"github.com/wellywell/orderdesk/internal/router"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	level, err := logger.ParseLevel(conf.LogLevel)
	if err != nil {
		panic(err)
	}
	logger.SetLevel(level)

	database, err := db.NewDatabase(conf.DatabaseDSN)
	if err != nil {
		panic(err)
	}
	defer database.Close()

	err = database.GrantAdmin(context.Background(), conf.AdminUsers)
	if err != nil {
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := payment.DefaultPollerOptions()
	opts.Timeout = conf.PaymentPollTimeout
	registry := payment.NewRegistry(conf.PaymentSessionTTL)
	poller := payment.NewPoller(ctx, gateway.NewClient(conf.PaymentGatewayAddress), registry, opts)

	notifier := notify.New(conf.KafkaBrokers, conf.KafkaTopic)
	defer func() {
		if err := notifier.Close(); err != nil {
			logger.Error(err)
		}
	}()

	handlerSet := handlers.NewHandlerSet(conf.Secret, conf.CookieExpiresSeconds, database, poller, registry, notifier, conf.AdminUsers)

	r := router.NewRouter(conf, handlerSet)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := r.Shutdown(shutdownCtx); err != nil {
			logger.Error(err)
		}
	}()

	logger.Infof("Listening on %s", conf.RunAddress)
	err = r.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic(err)
	}

	poller.Wait()
	logger.Info("Stopped")
}
