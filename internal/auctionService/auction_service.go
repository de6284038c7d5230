package auction

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"auction-marketplace/internal/auctionerrors"
	"auction-marketplace/internal/models"
	"auction-marketplace/internal/repository"
	"auction-marketplace/utils"
)

// AuctionService owns the ledger operations: bidding, listings, watchlist,
// notifications and search. Callers are trusted to have checked the acting
// user's role; the service only enforces auction rules.
type AuctionService struct {
	repo repository.AuctionStore
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(repo repository.AuctionStore) *AuctionService {
	return &AuctionService{
		repo: repo,
	}
}

// PlaceBid validates and records a user's bid for a car. On success the bid
// is appended to the car's history, the car's current bid moves to the bid
// amount, the bidder gets a confirmation notification and the displaced
// leading bidder, if any, gets an outbid notification.
func (s *AuctionService) PlaceBid(carID, bidderID, bidderName string, amount float64) (models.Bid, error) {
	if carID == "" || bidderID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - missing carID or bidderID", auctionerrors.ErrInvalidBid)
	}
	if amount <= 0 {
		return models.Bid{}, fmt.Errorf("service: %w - non-positive bid amount", auctionerrors.ErrInvalidBid)
	}

	car, err := s.repo.GetCar(carID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to load car %s: %w", carID, err)
	}

	now := time.Now().UTC()

	// Bids are gated on the derived status so a stale stored status can
	// neither admit a late bid nor block a live one.
	if status := DeriveStatus(car, now); status != models.StatusActive && status != models.StatusEndingSoon {
		return models.Bid{}, fmt.Errorf("service: %w - car %s is %s", auctionerrors.ErrAuctionClosed, carID, status)
	}

	if amount <= car.CurrentBid {
		return models.Bid{}, fmt.Errorf("service: %w - current bid is %.2f", auctionerrors.ErrBidTooLow, car.CurrentBid)
	}

	var previous *models.Bid
	if len(car.Bids) > 0 {
		previous = &car.Bids[len(car.Bids)-1]
	}

	bid := models.Bid{
		BidID:      utils.GenerateID(),
		CarID:      carID,
		BidderID:   bidderID,
		BidderName: bidderName,
		Amount:     amount,
		CreatedAt:  now,
	}

	if err := s.repo.RecordBid(bid); err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to record bid for car %s by user %s: %w", carID, bidderID, err)
	}

	s.repo.AddNotification(models.Notification{
		NotificationID: utils.GenerateID(),
		UserID:         bidderID,
		Type:           models.NotificationBidPlaced,
		Title:          "Bid placed",
		Message:        fmt.Sprintf("Your bid of %.2f on %s was placed successfully.", amount, car.Title),
		CarID:          carID,
		CreatedAt:      now,
	})

	if previous != nil && previous.BidderID != bidderID {
		s.repo.AddNotification(models.Notification{
			NotificationID: utils.GenerateID(),
			UserID:         previous.BidderID,
			Type:           models.NotificationOutbid,
			Title:          "You've been outbid",
			Message:        fmt.Sprintf("A higher bid of %.2f was placed on %s.", amount, car.Title),
			CarID:          carID,
			CreatedAt:      now,
		})
	}

	return bid, nil
}

// CreateListingInput carries the fields a seller provides for a new listing.
// The auction window is fixed at creation time.
type CreateListingInput struct {
	SellerID     string
	Title        string
	Brand        string
	Model        string
	Year         int
	VIN          string
	Mileage      int
	Condition    string
	Description  string
	StartingBid  float64
	ReservePrice *float64
	Duration     time.Duration
	Draft        bool
}

// CreateListing creates a new car listing, either as a draft or immediately
// open for bidding with a window starting now.
func (s *AuctionService) CreateListing(in CreateListingInput) (models.Car, error) {
	if in.SellerID == "" || in.Title == "" || in.Brand == "" || in.Model == "" {
		return models.Car{}, fmt.Errorf("service: %w - missing required listing fields", auctionerrors.ErrInvalidListing)
	}
	if in.StartingBid <= 0 {
		return models.Car{}, fmt.Errorf("service: %w - non-positive starting bid", auctionerrors.ErrInvalidListing)
	}
	if in.Duration <= 0 {
		return models.Car{}, fmt.Errorf("service: %w - non-positive auction duration", auctionerrors.ErrInvalidListing)
	}

	now := time.Now().UTC()
	car := models.Car{
		CarID:            utils.GenerateID(),
		SellerID:         in.SellerID,
		Title:            in.Title,
		Brand:            in.Brand,
		Model:            in.Model,
		Year:             in.Year,
		VIN:              in.VIN,
		Mileage:          in.Mileage,
		Condition:        in.Condition,
		Description:      in.Description,
		StartingBid:      in.StartingBid,
		CurrentBid:       in.StartingBid,
		ReservePrice:     in.ReservePrice,
		AuctionStartTime: now,
		AuctionEndTime:   now.Add(in.Duration),
	}
	if in.Draft {
		car.Status = models.StatusDraft
	} else {
		car.Status = DeriveStatus(car, now)
	}

	s.repo.AddCar(car)

	s.repo.AddNotification(models.Notification{
		NotificationID: utils.GenerateID(),
		UserID:         in.SellerID,
		Type:           models.NotificationListingCreated,
		Title:          "Listing created",
		Message:        fmt.Sprintf("Your listing %s is live.", car.Title),
		CarID:          car.CarID,
		CreatedAt:      now,
	})

	return car, nil
}

// GetCar returns one car with its bid history.
func (s *AuctionService) GetCar(carID string) (models.Car, error) {
	if carID == "" {
		return models.Car{}, fmt.Errorf("service: %w - empty car ID", auctionerrors.ErrInvalidBid)
	}

	car, err := s.repo.GetCar(carID)
	if err != nil {
		return models.Car{}, fmt.Errorf("service: failed to get car %s: %w", carID, err)
	}
	return car, nil
}

// ListCars returns every listing in insertion order.
func (s *AuctionService) ListCars() []models.Car {
	return s.repo.ListCars()
}

// GetBidsForCar returns the chronological bid history of a car.
func (s *AuctionService) GetBidsForCar(carID string) ([]models.Bid, error) {
	if carID == "" {
		return nil, fmt.Errorf("service: %w - empty car ID", auctionerrors.ErrInvalidBid)
	}

	car, err := s.repo.GetCar(carID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for car %s: %w", carID, err)
	}
	if len(car.Bids) == 0 {
		return nil, fmt.Errorf("service: bids for car %s: %w", carID, auctionerrors.ErrNoBids)
	}
	return car.Bids, nil
}

// UserBid pairs one of a user's bids with its car and whether the bid is
// currently winning.
type UserBid struct {
	Bid       models.Bid `json:"bid"`
	Car       models.Car `json:"car"`
	IsWinning bool       `json:"is_winning"`
}

// ListBidsByUser collects every bid the user has placed across all cars,
// most recent first. A bid is winning when its amount equals the car's
// current bid. Linear scan over all cars, fine at this scale.
func (s *AuctionService) ListBidsByUser(userID string) ([]UserBid, error) {
	if userID == "" {
		return nil, fmt.Errorf("service: %w - empty user ID", auctionerrors.ErrInvalidBid)
	}

	var out []UserBid
	for _, car := range s.repo.ListCars() {
		for _, bid := range car.Bids {
			if bid.BidderID != userID {
				continue
			}
			out = append(out, UserBid{
				Bid:       bid,
				Car:       car,
				IsWinning: car.CurrentBid == bid.Amount,
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Bid.CreatedAt.After(out[j].Bid.CreatedAt)
	})
	return out, nil
}

// AddToWatchlist creates a watchlist entry for the pair. Fails if the car
// does not exist or the pair is already watched.
func (s *AuctionService) AddToWatchlist(userID, carID string) error {
	if userID == "" || carID == "" {
		return fmt.Errorf("service: %w - missing userID or carID", auctionerrors.ErrInvalidBid)
	}

	if _, err := s.repo.GetCar(carID); err != nil {
		return fmt.Errorf("service: failed to watch car %s: %w", carID, err)
	}

	entry := models.WatchlistEntry{
		EntryID:   utils.GenerateID(),
		UserID:    userID,
		CarID:     carID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.AddWatch(entry); err != nil {
		return fmt.Errorf("service: failed to watch car %s for user %s: %w", carID, userID, err)
	}
	return nil
}

// RemoveFromWatchlist removes the pair's entry if present; no-op otherwise.
func (s *AuctionService) RemoveFromWatchlist(userID, carID string) {
	s.repo.RemoveWatch(userID, carID)
}

// IsWatching reports whether the user watches the car.
func (s *AuctionService) IsWatching(userID, carID string) bool {
	return s.repo.IsWatching(userID, carID)
}

// ListWatched returns the user's watched cars in watch order.
func (s *AuctionService) ListWatched(userID string) []models.Car {
	return s.repo.ListWatched(userID)
}

// Notifications returns the user's notification feed in creation order.
func (s *AuctionService) Notifications(userID string) []models.Notification {
	return s.repo.ListNotifications(userID)
}

// MarkRead marks one notification as read; no-op on unknown IDs.
func (s *AuctionService) MarkRead(notificationID string) {
	s.repo.MarkNotificationRead(notificationID)
}

// MarkAllRead marks every notification of the user as read.
func (s *AuctionService) MarkAllRead(userID string) {
	s.repo.MarkAllNotificationsRead(userID)
}

// SearchFilter is the listing discovery criteria set. Zero values match
// everything: empty strings disable the text and equality filters, zero
// numeric bounds disable the range checks.
type SearchFilter struct {
	Query     string
	Brand     string
	Condition string
	Status    models.AuctionStatus
	MinPrice  float64
	MaxPrice  float64
	YearFrom  int
	YearTo    int
}

// Search returns the cars matching every provided criterion, preserving the
// collection's order. No pagination, no ranking; sorting is up to the caller.
func (s *AuctionService) Search(f SearchFilter) []models.Car {
	var out []models.Car
	for _, car := range s.repo.ListCars() {
		if matches(car, f) {
			out = append(out, car)
		}
	}
	return out
}

func matches(car models.Car, f SearchFilter) bool {
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(car.Title), q) &&
			!strings.Contains(strings.ToLower(car.Brand), q) &&
			!strings.Contains(strings.ToLower(car.Model), q) {
			return false
		}
	}
	if f.Brand != "" && !strings.EqualFold(car.Brand, f.Brand) {
		return false
	}
	if f.Condition != "" && !strings.EqualFold(car.Condition, f.Condition) {
		return false
	}
	if f.Status != "" && car.Status != f.Status {
		return false
	}
	if f.MinPrice > 0 && car.CurrentBid < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && car.CurrentBid > f.MaxPrice {
		return false
	}
	if f.YearFrom > 0 && car.Year < f.YearFrom {
		return false
	}
	if f.YearTo > 0 && car.Year > f.YearTo {
		return false
	}
	return true
}
