package main

import (
	"context"
	"flag"
	"log"
	"net/http"

	"wordfix/internal/api"
	"wordfix/internal/config"
	"wordfix/internal/customdict"
	"wordfix/internal/wordfix"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("init error: %v", err)
	}

	ctx := context.Background()
	store, err := customdict.Open(ctx, cfg.Store)
	if err != nil {
		log.Fatalf("init error: %v", err)
	}
	defer store.Close()

	svc, err := wordfix.Open(ctx, cfg, store)
	if err != nil {
		log.Fatalf("init error: %v", err)
	}

	log.Printf("listening on %s (store %s)", cfg.HTTPAddr, cfg.Store.Driver)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, api.NewHandler(svc)))
}
