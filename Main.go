package main

import (
	"Market/config"
	"Market/routers"
	"Market/service"
	"Market/store"
	"context"
	"errors"
	"github.com/alecthomas/kong"
	"github.com/gin-gonic/gin"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"
)

type CLI struct {
	Config  string `help:"YAML configuration file." default:"config/config.yaml" type:"path"`
	EnvFile string `help:"Optional .env file loaded before the configuration." default:".env" type:"path"`
	Migrate bool   `help:"Create or update the carts and items tables on startup." default:"true" negatable:""`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("market"),
		kong.Description("REST service for carts and their items."),
		kong.UsageOnError(),
	)

	cfg, err := config.Load(cli.Config, cli.EnvFile)
	kctx.FatalIfErrorf(err)
	gin.SetMode(cfg.Server.Mode)

	db, err := config.SetupDatabaseConnection(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer func() {
		dbInstance, _ := db.DB()
		_ = dbInstance.Close()
	}()

	if cli.Migrate {
		if err := config.Migrate(db); err != nil {
			log.Fatalf("failed to migrate database: %v", err)
		}
	}

	publisher, err := config.SetupPublisher(cfg)
	if err != nil {
		log.Fatalf("failed to set up %s event publisher: %v", cfg.Events.Driver, err)
	}
	defer publisher.Close()

	repo := store.New(db)
	carts := service.NewCartService(repo, publisher)
	items := service.NewItemService(repo, repo, publisher)
	router := routers.SetupRouters(cfg.Server, repo, carts, items)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("market listening on %s (db=%s, events=%s)", srv.Addr, cfg.Database.Driver, cfg.Events.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server stopped: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
