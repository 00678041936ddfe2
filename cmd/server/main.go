package main

import (
	"context"
	"log"

	"github.com/nfrund/gstportal/internal/app"
	"github.com/nfrund/gstportal/internal/config"
	"github.com/nfrund/gstportal/internal/server"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, stop := server.SignalContext(context.Background())
	defer stop()

	if err := app.New(cfg).Run(ctx, ""); err != nil {
		log.Fatalf("server: %v", err)
	}
}
