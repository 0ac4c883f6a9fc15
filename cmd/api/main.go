package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/davidpereyra2016/cv-generador/internal/api"
	"github.com/davidpereyra2016/cv-generador/internal/config"
	"github.com/davidpereyra2016/cv-generador/internal/mercadopago"
	"github.com/davidpereyra2016/cv-generador/internal/pdf"
	"github.com/davidpereyra2016/cv-generador/internal/store"
)

func main() {
	// A .env file is optional; environment variables win either way.
	_ = godotenv.Load()

	cfg := config.MustLoad()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	submissionStore, err := store.New(cfg.Store, logger)
	if err != nil {
		log.Fatalf("init submission store: %v", err)
	}
	logger.Info("submission store ready", slog.String("dir", submissionStore.Dir()))

	gateway := mercadopago.NewClient(cfg.MercadoPago)
	renderer := pdf.NewRenderer(logger)

	router := api.NewRouter(logger)
	api.RegisterRoutes(router, cfg, gateway, submissionStore, renderer, gateway)

	address := fmt.Sprintf(":%d", cfg.API.Port)
	logger.Info("api listening", slog.String("address", address))
	if err := router.Run(address); err != nil {
		log.Fatalf("failed to start api server: %v", err)
	}
}
