package main

import (
	"context"
	"flag"
	"log"
	"os"

	"giftstore/internal/config"
	"giftstore/internal/db"
	"giftstore/internal/seed"
)

func main() {
	var rate float64
	flag.Float64Var(&rate, "rate", 0.0079, "Initial USD-per-V-Buck rate (ignored if already configured)")
	flag.Parse()

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	if rate <= 0 {
		logger.Fatalf("rate must be positive, got %v", rate)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	if err := seed.Apply(ctx, pool, rate); err != nil {
		logger.Fatalf("seed apply: %v", err)
	}

	logger.Println("seed applied")
}
