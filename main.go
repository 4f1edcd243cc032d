package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"foodapi/config"
	"foodapi/database"
	"foodapi/logger"
	"foodapi/routers"
	"foodapi/services"
	"foodapi/utils"
)

func main() {
	cfg := config.LoadConfig()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	db, err := database.ConnectDb(cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to connect database")
	}
	if err := database.SeedAdmin(db, cfg); err != nil {
		log.WithError(err).Fatal("failed to seed admin")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var moderator services.ContentModerator = utils.AllowAllModerator{}
	if cfg.ModerationEnabled {
		var tokens utils.TokenCache = utils.NewMemoryTokenCache()
		if cfg.RedisAddr != "" {
			rdb, err := utils.NewRedisClient(ctx, cfg)
			if err != nil {
				log.WithError(err).Fatal("failed to connect redis")
			}
			defer rdb.Close()
			tokens = utils.NewRedisTokenCache(rdb, cfg.WeChatAppID)
		}
		moderator = utils.NewWeChatModerator(cfg, tokens, log)
	} else {
		log.Warn("comment moderation disabled")
	}

	app := routers.NewApp(routers.Deps{
		Config:    cfg,
		DB:        db,
		Moderator: moderator,
		Log:       log,
	})

	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("shutdown failed")
		}
	}()

	log.Infof("Server is running on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
