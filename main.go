package main

import (
	auction "auction-marketplace/internal/auctionService"
	"auction-marketplace/internal/config"
	"auction-marketplace/internal/repository"
	"auction-marketplace/internal/seed"
	"auction-marketplace/internal/server"
	"auction-marketplace/internal/session"
	"auction-marketplace/internal/storage"
	"auction-marketplace/utils"
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	store, err := storage.NewFileStore(cfg.DataDir)
	if err != nil {
		utils.Fatal("failed to open storage", map[string]any{"dir": cfg.DataDir, "error": err.Error()})
	}

	repo := repository.NewMemoryRepo()
	seed.Populate(repo, time.Now().UTC())

	sessionStore := session.NewStore(seed.Users(), store)
	auctionSvc := auction.NewAuctionService(repo)

	refresher := auction.NewStatusRefresher(auctionSvc, cfg.RefreshInterval)
	refresher.Start()
	defer refresher.Stop()

	router := server.SetupRouter(auctionSvc, sessionStore)

	addr := ":" + cfg.Port
	fmt.Printf("Starting auction marketplace on %s...\n", addr)
	if err := router.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}
