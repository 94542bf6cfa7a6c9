package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"passkeep/internal/adapter/driven/keyfile"
	sqliteadapter "passkeep/internal/adapter/driven/sqlite"
	"passkeep/internal/adapter/driving/cli"
	"passkeep/internal/application"
	"passkeep/internal/config"
	"passkeep/internal/crypto"
	"passkeep/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(os.Stderr, 0).Fatal("load config", "error", err)
	}

	log := logger.New(os.Stderr, cfg.LogLevel)
	if err := run(cfg, log); err != nil {
		log.Fatal("fatal error", "error", err)
	}
}

func run(cfg *config.Config, log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Open the vault database and apply schema migrations.
	db, err := sqliteadapter.NewDB(cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			log.Error("closing database", "error", closeErr)
		}
	}()
	if err := sqliteadapter.RunMigrations(db.Conn()); err != nil {
		return err
	}

	// Load (or create on first run) the encryption key.
	key, err := keyfile.LoadOrCreate(cfg.KeyPath)
	if err != nil {
		return err
	}
	cipher, err := crypto.NewCipher(key)
	if err != nil {
		return err
	}

	auth, err := application.NewAuthService(ctx, sqliteadapter.NewMasterRepo(db))
	if err != nil {
		return err
	}
	vault := application.NewVaultService(sqliteadapter.NewCredentialRepo(db), cipher)

	log.Debug("vault opened", "db_path", cfg.DBPath, "key_path", cfg.KeyPath)

	return cli.NewTerminalSession(auth, vault).Run(ctx)
}
