package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	catalog "github.com/toolmart/catalog"
	"github.com/toolmart/catalog/config"
)

func main() {
	cfg := config.LoadConfig(".")

	app := catalog.NewApplication(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := app.Run(ctx, os.Args)

	if closeErr := app.Close(); closeErr != nil {
		logrus.Error(closeErr.Error())
	}

	if err != nil {
		logrus.Fatal(err)
	}
}
