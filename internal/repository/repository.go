package repository

import (
	"auction-marketplace/internal/auctionerrors"
	model "auction-marketplace/internal/models"
	"fmt"
	"sync"
)

// AuctionStore defines the ledger storage interface: cars with their bid
// histories, per-user watchlists and per-user notification feeds.
type AuctionStore interface {
	AddCar(car model.Car)
	GetCar(carID string) (model.Car, error)
	ListCars() []model.Car
	RecordBid(bid model.Bid) error
	SetCarStatus(carID string, status model.AuctionStatus) error
	AddWatch(entry model.WatchlistEntry) error
	RemoveWatch(userID, carID string)
	IsWatching(userID, carID string) bool
	ListWatched(userID string) []model.Car
	AddNotification(n model.Notification)
	ListNotifications(userID string) []model.Notification
	MarkNotificationRead(notificationID string)
	MarkAllNotificationsRead(userID string)
}

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionStore.
// Cars and watchlist entries are listed in insertion order.
type MemoryRepo struct {
	mu            sync.RWMutex
	cars          map[string]*model.Car // key: carID
	carOrder      []string              // carIDs in insertion order
	watchlist     []model.WatchlistEntry
	notifications []model.Notification
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		cars: make(map[string]*model.Car),
	}
}

// AddCar registers a car listing. An existing car with the same ID is
// replaced in place without disturbing the listing order.
func (r *MemoryRepo) AddCar(car model.Car) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.cars[car.CarID]; !ok {
		r.carOrder = append(r.carOrder, car.CarID)
	}
	c := car
	c.Bids = append([]model.Bid(nil), car.Bids...)
	r.cars[car.CarID] = &c
}

// GetCar returns a copy of the car, bid history included.
func (r *MemoryRepo) GetCar(carID string) (model.Car, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	car, ok := r.cars[carID]
	if !ok {
		return model.Car{}, fmt.Errorf("get car %s: %w", carID, auctionerrors.ErrCarNotFound)
	}
	return copyCar(car), nil
}

// ListCars returns copies of every car in insertion order.
func (r *MemoryRepo) ListCars() []model.Car {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cars := make([]model.Car, 0, len(r.carOrder))
	for _, id := range r.carOrder {
		cars = append(cars, copyCar(r.cars[id]))
	}
	return cars
}

// RecordBid appends the bid to its car's history and moves the car's current
// bid to the bid amount. The bid sequence is append-only.
func (r *MemoryRepo) RecordBid(bid model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	car, ok := r.cars[bid.CarID]
	if !ok {
		return fmt.Errorf("record bid for car %s: %w", bid.CarID, auctionerrors.ErrCarNotFound)
	}

	car.Bids = append(car.Bids, bid)
	car.CurrentBid = bid.Amount
	return nil
}

// SetCarStatus overwrites the stored status of a car.
func (r *MemoryRepo) SetCarStatus(carID string, status model.AuctionStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	car, ok := r.cars[carID]
	if !ok {
		return fmt.Errorf("set status for car %s: %w", carID, auctionerrors.ErrCarNotFound)
	}
	car.Status = status
	return nil
}

// AddWatch records a watchlist entry. At most one entry may exist per
// (user, car) pair.
func (r *MemoryRepo) AddWatch(entry model.WatchlistEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.watchlist {
		if e.UserID == entry.UserID && e.CarID == entry.CarID {
			return fmt.Errorf("watch car %s for user %s: %w", entry.CarID, entry.UserID, auctionerrors.ErrAlreadyWatching)
		}
	}
	r.watchlist = append(r.watchlist, entry)
	return nil
}

// RemoveWatch deletes the entry for the pair if present; no-op otherwise.
func (r *MemoryRepo) RemoveWatch(userID, carID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, e := range r.watchlist {
		if e.UserID == userID && e.CarID == carID {
			r.watchlist = append(r.watchlist[:i], r.watchlist[i+1:]...)
			return
		}
	}
}

// IsWatching reports whether an entry exists for the pair.
func (r *MemoryRepo) IsWatching(userID, carID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.watchlist {
		if e.UserID == userID && e.CarID == carID {
			return true
		}
	}
	return false
}

// ListWatched returns the cars on the user's watchlist in the order the
// entries were created. Entries referencing deleted cars are skipped.
func (r *MemoryRepo) ListWatched(userID string) []model.Car {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var cars []model.Car
	for _, e := range r.watchlist {
		if e.UserID != userID {
			continue
		}
		if car, ok := r.cars[e.CarID]; ok {
			cars = append(cars, copyCar(car))
		}
	}
	return cars
}

// AddNotification appends a notification to the feed.
func (r *MemoryRepo) AddNotification(n model.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append(r.notifications, n)
}

// ListNotifications returns the user's notifications in creation order.
func (r *MemoryRepo) ListNotifications(userID string) []model.Notification {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Notification
	for _, n := range r.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out
}

// MarkNotificationRead flips the read flag; no-op if the ID is unknown or
// the notification is already read.
func (r *MemoryRepo) MarkNotificationRead(notificationID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.notifications {
		if r.notifications[i].NotificationID == notificationID {
			r.notifications[i].Read = true
			return
		}
	}
}

// MarkAllNotificationsRead marks every notification of the user as read.
func (r *MemoryRepo) MarkAllNotificationsRead(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.notifications {
		if r.notifications[i].UserID == userID {
			r.notifications[i].Read = true
		}
	}
}

// copyCar must be called with the lock held.
func copyCar(car *model.Car) model.Car {
	c := *car
	c.Bids = append([]model.Bid(nil), car.Bids...)
	if car.ReservePrice != nil {
		rp := *car.ReservePrice
		c.ReservePrice = &rp
	}
	return c
}
