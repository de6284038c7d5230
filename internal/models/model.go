package models

import "time"

// Role classifies what a user is allowed to do in the marketplace.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleSeller Role = "seller"
	RoleBuyer  Role = "buyer"
)

// AuctionStatus is the lifecycle state of a car listing. Draft and sold are
// terminal and only reachable through explicit seller actions; the remaining
// states are derived from the auction window and the current time.
type AuctionStatus string

const (
	StatusDraft      AuctionStatus = "draft"
	StatusUpcoming   AuctionStatus = "upcoming"
	StatusActive     AuctionStatus = "active"
	StatusEndingSoon AuctionStatus = "ending-soon"
	StatusEnded      AuctionStatus = "ended"
	StatusSold       AuctionStatus = "sold"
)

// Terminal reports whether the status must never be overwritten by
// time-based derivation.
func (s AuctionStatus) Terminal() bool {
	return s == StatusDraft || s == StatusSold
}

// NotificationType tags the event a notification was created for.
type NotificationType string

const (
	NotificationBidPlaced      NotificationType = "bid-placed"
	NotificationOutbid         NotificationType = "outbid"
	NotificationListingCreated NotificationType = "listing-created"
)

// User represents a marketplace account. Email is the login key.
type User struct {
	UserID      string    `json:"user_id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Role        Role      `json:"role"`
	Phone       string    `json:"phone,omitempty"`
	Address     string    `json:"address,omitempty"`
	BankAccount string    `json:"bank_account,omitempty"`
	Language    string    `json:"language,omitempty"`
	JoinedAt    time.Time `json:"joined_at"`
}

// Car represents a vehicle listing together with its auction state. The
// descriptive fields are fixed at creation; CurrentBid, Status and Bids are
// the mutable auction state. Bids is append-only and kept in placement order,
// and CurrentBid always equals the amount of the last bid once any bid exists.
type Car struct {
	CarID            string        `json:"car_id"`
	SellerID         string        `json:"seller_id"`
	Title            string        `json:"title"`
	Brand            string        `json:"brand"`
	Model            string        `json:"model"`
	Year             int           `json:"year"`
	VIN              string        `json:"vin,omitempty"`
	Mileage          int           `json:"mileage"`
	Condition        string        `json:"condition"`
	Description      string        `json:"description"`
	StartingBid      float64       `json:"starting_bid"`
	CurrentBid       float64       `json:"current_bid"`
	ReservePrice     *float64      `json:"reserve_price,omitempty"`
	Status           AuctionStatus `json:"status"`
	AuctionStartTime time.Time     `json:"auction_start_time"`
	AuctionEndTime   time.Time     `json:"auction_end_time"`
	Bids             []Bid         `json:"bids"`
}

// Bid represents a single offer against a car. Immutable once recorded.
// BidderName is a denormalized display copy taken at placement time.
type Bid struct {
	BidID      string    `json:"bid_id"`
	CarID      string    `json:"car_id"`
	BidderID   string    `json:"bidder_id"`
	BidderName string    `json:"bidder_name"`
	Amount     float64   `json:"amount"`
	CreatedAt  time.Time `json:"created_at"`
}

// WatchlistEntry marks one car a user is watching. At most one entry exists
// per (user, car) pair.
type WatchlistEntry struct {
	EntryID   string    `json:"entry_id"`
	UserID    string    `json:"user_id"`
	CarID     string    `json:"car_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Notification is a message delivered to one user. Read is the only mutable
// field; notifications are never deleted.
type Notification struct {
	NotificationID string           `json:"notification_id"`
	UserID         string           `json:"user_id"`
	Type           NotificationType `json:"type"`
	Title          string           `json:"title"`
	Message        string           `json:"message"`
	CarID          string           `json:"car_id,omitempty"`
	Read           bool             `json:"read"`
	CreatedAt      time.Time        `json:"created_at"`
}
