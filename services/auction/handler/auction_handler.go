package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	auction "auction-marketplace/internal/auctionService"
	"auction-marketplace/internal/auctionerrors"
	model "auction-marketplace/internal/models"
	"auction-marketplace/services/auction/helpers"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

type AuctionServiceInterface interface {
	PlaceBid(carID, bidderID, bidderName string, amount float64) (model.Bid, error)
	CreateListing(in auction.CreateListingInput) (model.Car, error)
	GetCar(carID string) (model.Car, error)
	GetBidsForCar(carID string) ([]model.Bid, error)
	ListBidsByUser(userID string) ([]auction.UserBid, error)
	AddToWatchlist(userID, carID string) error
	RemoveFromWatchlist(userID, carID string)
	IsWatching(userID, carID string) bool
	ListWatched(userID string) []model.Car
	Notifications(userID string) []model.Notification
	MarkRead(notificationID string)
	MarkAllRead(userID string)
	Search(f auction.SearchFilter) []model.Car
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// PlaceBidHandler handles POST /bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bid, err := h.service.PlaceBid(req.CarID, req.BidderID, req.BidderName, req.Amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"handler":   "PlaceBidHandler",
			"car_id":    req.CarID,
			"bidder_id": req.BidderID,
			"error":     err.Error(),
		})
		return
	}

	resp := helpers.BidResponse{
		BidID:      bid.BidID,
		CarID:      bid.CarID,
		BidderID:   bid.BidderID,
		BidderName: bid.BidderName,
		Amount:     bid.Amount,
		CreatedAt:  bid.CreatedAt.UTC().Format(time.RFC3339),
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":    bid.BidID,
		"car_id":    bid.CarID,
		"bidder_id": bid.BidderID,
		"amount":    bid.Amount,
	})
}

// CreateListingHandler handles POST /cars
func (h *AuctionHandler) CreateListingHandler(c *gin.Context) {
	var req helpers.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateListingHandler", err)
		return
	}

	car, err := h.service.CreateListing(auction.CreateListingInput{
		SellerID:     req.SellerID,
		Title:        req.Title,
		Brand:        req.Brand,
		Model:        req.Model,
		Year:         req.Year,
		VIN:          req.VIN,
		Mileage:      req.Mileage,
		Condition:    req.Condition,
		Description:  req.Description,
		StartingBid:  req.StartingBid,
		ReservePrice: req.ReservePrice,
		Duration:     time.Duration(req.DurationHours) * time.Hour,
		Draft:        req.Draft,
	})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateListingHandler: failed to create listing", map[string]any{
			"seller_id": req.SellerID,
			"error":     err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, car, "listing created successfully")
	helpers.LogSuccess("CreateListingHandler", "listing created successfully", map[string]any{
		"car_id":    car.CarID,
		"seller_id": car.SellerID,
		"status":    string(car.Status),
	})
}

// ListCarsHandler handles GET /cars with optional search/filter query params
func (h *AuctionHandler) ListCarsHandler(c *gin.Context) {
	filter := auction.SearchFilter{
		Query:     c.Query("q"),
		Brand:     c.Query("brand"),
		Condition: c.Query("condition"),
		Status:    model.AuctionStatus(c.Query("status")),
		MinPrice:  queryFloat(c, "min_price"),
		MaxPrice:  queryFloat(c, "max_price"),
		YearFrom:  queryInt(c, "year_from"),
		YearTo:    queryInt(c, "year_to"),
	}

	cars := h.service.Search(filter)
	if cars == nil {
		cars = []model.Car{}
	}

	utils.JSONResponse(c, http.StatusOK, cars, "cars retrieved successfully")
}

// GetCarHandler handles GET /cars/:car_id
func (h *AuctionHandler) GetCarHandler(c *gin.Context) {
	carID := c.Param("car_id")
	car, err := h.service.GetCar(carID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetCarHandler: error retrieving car", map[string]any{"car_id": carID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, car, "car retrieved successfully")
}

// GetBidsByCarHandler handles GET /cars/:car_id/bids
func (h *AuctionHandler) GetBidsByCarHandler(c *gin.Context) {
	carID := c.Param("car_id")
	bids, err := h.service.GetBidsForCar(carID)
	if err != nil && !errors.Is(err, auctionerrors.ErrNoBids) {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidsByCarHandler: error retrieving bids", map[string]any{"car_id": carID, "error": err.Error()})
		return
	}

	if bids == nil {
		bids = []model.Bid{}
	}

	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
	helpers.LogSuccess("GetBidsByCarHandler", "bids retrieved successfully", map[string]any{
		"car_id": carID,
		"count":  len(bids),
	})
}

// ListBidsByUserHandler handles GET /users/:user_id/bids
func (h *AuctionHandler) ListBidsByUserHandler(c *gin.Context) {
	userID := c.Param("user_id")
	bids, err := h.service.ListBidsByUser(userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListBidsByUserHandler: error retrieving bids", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	if bids == nil {
		bids = []auction.UserBid{}
	}

	utils.JSONResponse(c, http.StatusOK, bids, "user bids retrieved successfully")
}

// AddToWatchlistHandler handles POST /users/:user_id/watchlist
func (h *AuctionHandler) AddToWatchlistHandler(c *gin.Context) {
	userID := c.Param("user_id")

	var req helpers.WatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddToWatchlistHandler", err)
		return
	}

	if err := h.service.AddToWatchlist(userID, req.CarID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("AddToWatchlistHandler: failed to add watch", map[string]any{
			"user_id": userID,
			"car_id":  req.CarID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, gin.H{"user_id": userID, "car_id": req.CarID}, "car added to watchlist")
	helpers.LogSuccess("AddToWatchlistHandler", "car added to watchlist", map[string]any{
		"user_id": userID,
		"car_id":  req.CarID,
	})
}

// RemoveFromWatchlistHandler handles DELETE /users/:user_id/watchlist/:car_id
func (h *AuctionHandler) RemoveFromWatchlistHandler(c *gin.Context) {
	userID := c.Param("user_id")
	carID := c.Param("car_id")

	h.service.RemoveFromWatchlist(userID, carID)

	utils.JSONResponse(c, http.StatusOK, gin.H{"user_id": userID, "car_id": carID}, "car removed from watchlist")
}

// ListWatchlistHandler handles GET /users/:user_id/watchlist
func (h *AuctionHandler) ListWatchlistHandler(c *gin.Context) {
	userID := c.Param("user_id")

	cars := h.service.ListWatched(userID)
	if cars == nil {
		cars = []model.Car{}
	}

	utils.JSONResponse(c, http.StatusOK, cars, "watchlist retrieved successfully")
}

// IsWatchingHandler handles GET /users/:user_id/watchlist/:car_id
func (h *AuctionHandler) IsWatchingHandler(c *gin.Context) {
	userID := c.Param("user_id")
	carID := c.Param("car_id")

	watching := h.service.IsWatching(userID, carID)

	utils.JSONResponse(c, http.StatusOK, gin.H{"user_id": userID, "car_id": carID, "watching": watching}, "watch state retrieved successfully")
}

// ListNotificationsHandler handles GET /users/:user_id/notifications
func (h *AuctionHandler) ListNotificationsHandler(c *gin.Context) {
	userID := c.Param("user_id")

	notifications := h.service.Notifications(userID)
	if notifications == nil {
		notifications = []model.Notification{}
	}

	utils.JSONResponse(c, http.StatusOK, notifications, "notifications retrieved successfully")
}

// MarkNotificationReadHandler handles POST /notifications/:notification_id/read
func (h *AuctionHandler) MarkNotificationReadHandler(c *gin.Context) {
	notificationID := c.Param("notification_id")

	h.service.MarkRead(notificationID)

	utils.JSONResponse(c, http.StatusOK, gin.H{"notification_id": notificationID}, "notification marked as read")
}

// MarkAllNotificationsReadHandler handles POST /users/:user_id/notifications/read
func (h *AuctionHandler) MarkAllNotificationsReadHandler(c *gin.Context) {
	userID := c.Param("user_id")

	h.service.MarkAllRead(userID)

	utils.JSONResponse(c, http.StatusOK, gin.H{"user_id": userID}, "all notifications marked as read")
}

func queryFloat(c *gin.Context, key string) float64 {
	v := c.Query(key)
	if v == "" {
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return f
}

func queryInt(c *gin.Context, key string) int {
	v := c.Query(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}
