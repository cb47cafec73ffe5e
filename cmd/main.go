package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ecom-labs/order-total-service/internal/app"
	"github.com/ecom-labs/order-total-service/internal/config"
	"github.com/ecom-labs/order-total-service/internal/handler"
	"github.com/ecom-labs/order-total-service/internal/rates"
	"github.com/ecom-labs/order-total-service/internal/service"

	"github.com/joho/godotenv"
)

func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	handler.RegisterMetrics()

	rateClient := rates.New(logger, conf.RateService)
	orderService := service.NewOrderService(logger, rateClient)
	httpHandler := handler.NewHTTPHandler(logger, orderService)

	app := app.New(logger, conf)
	app.SetHTTPHandlers(httpHandler)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to run app", app.Run(ctx))
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
