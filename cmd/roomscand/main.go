package main

import (
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"go.uber.org/zap"

	"roomscan/internal/config"
	"roomscan/internal/logging"
	"roomscan/internal/server"
	"roomscan/internal/store"
	"roomscan/pkg/kernel/sdfx"
	"roomscan/pkg/report"
)

func main() {
	cfgPath := os.Getenv("ROOMSCAN_CONFIG")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, "roomscan")
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	db, err := store.Open(cfg.Database.Path)
	if err != nil {
		logger.Fatal("open database", zap.Error(err))
	}
	defer db.Close()

	st := store.New(db)
	if err := st.Init(cfg.Database.Migrations); err != nil {
		logger.Fatal("init database", zap.Error(err))
	}

	var uploader *report.Client
	if cfg.Upload.Endpoint != "" {
		uploader = report.NewClient(report.ClientConfig{
			BaseURL: cfg.Upload.Endpoint,
			APIKey:  cfg.Upload.APIKey,
			Timeout: time.Duration(cfg.Upload.Timeout) * time.Second,
			Retries: cfg.Upload.Retries,
		}, logger)
	}

	k := sdfx.NewWithCells(cfg.Mesh.Cells)
	srv := server.New(cfg, st, uploader, k, logger)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logger.Info("starting roomscan", zap.String("addr", addr))
	if err := srv.Listen(addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
