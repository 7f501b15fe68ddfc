package main

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/devfolio/portfolio-backend/config"
	"github.com/devfolio/portfolio-backend/internal/bootstrap"
	"github.com/devfolio/portfolio-backend/internal/cache"
	"github.com/devfolio/portfolio-backend/internal/uploader"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()
	pool, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{
		DSN:      cfg.Database.DSN,
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer pool.Close()

	var listingCache *cache.ListingCache
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Printf("redis unavailable, listing cache disabled: %v", err)
		} else {
			listingCache = cache.NewListingCache(rdb, cfg.Redis.CacheTTL)
		}
	}

	var up *uploader.Client
	if cfg.Upload.BaseURL != "" {
		up = uploader.NewClient(cfg.Upload.BaseURL, cfg.Upload.Folder)
	} else {
		log.Println("UPLOAD_BASE_URL not set, image uploads will fail")
		up = uploader.NewClient("http://localhost:9000", cfg.Upload.Folder)
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "portfolio-backend",
		Version:     cfg.App.Version,
		DB:          pool,
		Uploader:    up,
		Cache:       listingCache,
		JWTSecret:   []byte(cfg.Auth.JWTSecret),
		TokenTTL:    cfg.Auth.TokenTTL,
		CORSOrigins: cfg.CORS.Origins,
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
