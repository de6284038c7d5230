package server

import (
	auction "auction-marketplace/internal/auctionService"
	"auction-marketplace/internal/session"
	auctionhandler "auction-marketplace/services/auction/handler"
	sessionhandler "auction-marketplace/services/session/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(auctionService *auction.AuctionService, sessionStore *session.Store) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := auctionhandler.NewAuctionHandler(auctionService)
	sessionHandler := sessionhandler.NewSessionHandler(sessionStore)

	bids := router.Group("/bids")
	{
		bids.POST("", auctionHandler.PlaceBidHandler)
	}

	cars := router.Group("/cars")
	{
		cars.GET("", auctionHandler.ListCarsHandler)
		cars.POST("", auctionHandler.CreateListingHandler)
		cars.GET("/:car_id", auctionHandler.GetCarHandler)
		cars.GET("/:car_id/bids", auctionHandler.GetBidsByCarHandler)
	}

	users := router.Group("/users")
	{
		users.GET("/:user_id/bids", auctionHandler.ListBidsByUserHandler)
		users.GET("/:user_id/watchlist", auctionHandler.ListWatchlistHandler)
		users.POST("/:user_id/watchlist", auctionHandler.AddToWatchlistHandler)
		users.GET("/:user_id/watchlist/:car_id", auctionHandler.IsWatchingHandler)
		users.DELETE("/:user_id/watchlist/:car_id", auctionHandler.RemoveFromWatchlistHandler)
		users.GET("/:user_id/notifications", auctionHandler.ListNotificationsHandler)
		users.POST("/:user_id/notifications/read", auctionHandler.MarkAllNotificationsReadHandler)
	}

	notifications := router.Group("/notifications")
	{
		notifications.POST("/:notification_id/read", auctionHandler.MarkNotificationReadHandler)
	}

	auth := router.Group("/auth")
	{
		auth.POST("/login", sessionHandler.LoginHandler)
		auth.POST("/register", sessionHandler.RegisterHandler)
		auth.POST("/logout", sessionHandler.LogoutHandler)
		auth.PATCH("/profile", sessionHandler.UpdateProfileHandler)
		auth.GET("/me", sessionHandler.CurrentUserHandler)
		auth.PUT("/language", sessionHandler.SetLanguageHandler)
		auth.GET("/language", sessionHandler.GetLanguageHandler)
	}

	return router
}
