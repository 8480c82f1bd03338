package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"bookstore_backend/internals/configs"
	database "bookstore_backend/internals/databases"
	"bookstore_backend/internals/features"
	routes "bookstore_backend/internals/route"
	"bookstore_backend/internals/seeds"
)

func main() {
	envNote := configs.LoadEnv()
	cfg, cfgErr := configs.FromEnv()

	log, err := configs.NewLogger(cfg)
	if err != nil {
		z, _ := zap.NewProduction()
		log = z.Sugar()
	}
	defer func() { _ = log.Sync() }()

	log.Info(envNote)
	if cfgErr != nil {
		log.Fatalw("❌ Konfigurasi tidak valid", "error", cfgErr)
	}

	// 🔌 Koneksi DB sebelum listen, tanpa retry
	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 30*time.Second)
	conn, err := database.Connect(connectCtx, cfg, log)
	cancelConnect()
	if err != nil {
		log.Fatalw("❌ Gagal koneksi ke database", "error", err)
	}

	colls, err := features.OpenCollections(context.Background(), conn)
	if err != nil {
		log.Fatalw("❌ Gagal membuka koleksi", "error", err)
	}

	if cfg.SeedDir != "" {
		if err := seeds.RunAllSeeds(context.Background(), colls, cfg.SeedDir, log); err != nil {
			log.Fatalw("❌ Seeding gagal", "dir", cfg.SeedDir, "error", err)
		}
	}

	app := routes.NewApp(cfg, log, conn, colls)

	// 🔒 Keep-Alive & timeout koneksi
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	go func() {
		log.Infow("✅ Server berjalan", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalw("❌ Server berhenti dengan error", "error", err)
		}
	}()

	// graceful shutdown, lalu tutup koneksi database
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("🛑 Mematikan server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Warnw("⚠️ Shutdown server tidak bersih", "error", err)
	}
	if err := conn.Close(ctx); err != nil {
		log.Warnw("⚠️ Gagal menutup koneksi database", "error", err)
	}
}
