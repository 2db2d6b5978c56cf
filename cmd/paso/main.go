package main

import (
	"context"
	"errors"
	"os"

	"github.com/IEVN1001-20001021/api-paso/internal/app"
	"github.com/IEVN1001-20001021/api-paso/internal/config"
	"github.com/IEVN1001-20001021/api-paso/internal/logger"
)

func main() {
	conf := config.MustLoadConfig()
	l := logger.New(os.Stdout)

	if err := app.New(conf, l).Run(); err != nil {
		if errors.Is(err, context.Canceled) {
			l.Info("graceful shutdown")
			os.Exit(0)
		}
		panic(err)
	}
}
