package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"giftstore/internal/cart"
	"giftstore/internal/config"
	"giftstore/internal/db"
	"giftstore/internal/events"
	"giftstore/internal/httpserver"
	giftrepo "giftstore/internal/repository/gift"
	productrepo "giftstore/internal/repository/product"
	raterepo "giftstore/internal/repository/rate"
	tokenrepo "giftstore/internal/repository/token"
	userrepo "giftstore/internal/repository/user"
	giftsvc "giftstore/internal/service/gift"
	productsvc "giftstore/internal/service/product"
	ratesvc "giftstore/internal/service/rate"
	usersvc "giftstore/internal/service/user"
	"giftstore/internal/shop"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer redisClient.Close()

	userRepo := userrepo.NewPostgres(dbpool, logger)
	tokenRepo := tokenrepo.NewPostgres(dbpool)
	userService := usersvc.New(userRepo, tokenRepo)

	productRepo := productrepo.NewPostgres(dbpool, logger)
	productService := productsvc.New(productRepo)

	rateRepo := raterepo.NewPostgres(dbpool)
	rateService := ratesvc.New(rateRepo)

	giftPublisher := events.NewGiftPublisher(cfg.KafkaBrokers, logger)
	defer giftPublisher.Close()

	giftRepo := giftrepo.NewPostgres(dbpool, logger)
	giftService := giftsvc.New(giftRepo, rateRepo, giftPublisher, logger)

	shopClient := shop.NewClient(cfg.ShopAPIBaseURL, cfg.ShopAPIKey, logger)
	shopCache := shop.NewRedisCache(redisClient, cfg.ShopCacheTTL)
	catalog := shop.NewCachedCatalog(shopClient, shopCache, logger)

	cartStore := cart.NewRedisStore(redisClient)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		UserSvc:    userService,
		ProductSvc: productService,
		RateSvc:    rateService,
		GiftSvc:    giftService,
		Catalog:    catalog,
		Carts:      cartStore,
	}, cfg.CORSOrigins)
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
