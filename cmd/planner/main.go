package main

import (
	"context"
	"log"
	"os"

	"planner/internal/app"
	"planner/internal/config"
)

func main() {
	cfg := config.Load()

	a, err := app.Init(context.Background(), cfg)
	if err != nil {
		log.Fatalf("❌ Startup failed: %v", err)
	}
	defer a.Close()

	if err := newRootCmd(a).Execute(); err != nil {
		os.Exit(1)
	}
}
