package helpers

// Request/Response DTOs
type PlaceBidRequest struct {
	CarID      string  `json:"car_id" binding:"required"`
	BidderID   string  `json:"bidder_id" binding:"required"`
	BidderName string  `json:"bidder_name"`
	Amount     float64 `json:"amount" binding:"required,gt=0"`
}

type BidResponse struct {
	BidID      string  `json:"bid_id"`
	CarID      string  `json:"car_id"`
	BidderID   string  `json:"bidder_id"`
	BidderName string  `json:"bidder_name"`
	Amount     float64 `json:"amount"`
	CreatedAt  string  `json:"created_at"`
}

type CreateListingRequest struct {
	SellerID      string   `json:"seller_id" binding:"required"`
	Title         string   `json:"title" binding:"required"`
	Brand         string   `json:"brand" binding:"required"`
	Model         string   `json:"model" binding:"required"`
	Year          int      `json:"year"`
	VIN           string   `json:"vin"`
	Mileage       int      `json:"mileage"`
	Condition     string   `json:"condition"`
	Description   string   `json:"description"`
	StartingBid   float64  `json:"starting_bid" binding:"required,gt=0"`
	ReservePrice  *float64 `json:"reserve_price"`
	DurationHours int      `json:"duration_hours" binding:"required,gt=0"`
	Draft         bool     `json:"draft"`
}

type WatchRequest struct {
	CarID string `json:"car_id" binding:"required"`
}
