package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrCarNotFound          = errors.New("car not found")
	ErrNoBids               = errors.New("no bids found for car")
	ErrAlreadyWatching      = errors.New("car already on watchlist")
	ErrNotificationNotFound = errors.New("notification not found")
)

// business logic errors
var (
	ErrInvalidBid     = errors.New("invalid bid")
	ErrBidTooLow      = errors.New("bid amount too low")
	ErrAuctionClosed  = errors.New("auction is not open for bidding")
	ErrInvalidListing = errors.New("invalid listing")
)

// session errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoActiveSession    = errors.New("no active session")
)
