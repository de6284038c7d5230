package auction

import (
	"time"

	"auction-marketplace/internal/models"
	"auction-marketplace/utils"
)

// EndingSoonWindow is how long before the auction end a listing is flagged
// as ending-soon.
const EndingSoonWindow = 24 * time.Hour

// DeriveStatus computes a car's auction status purely from the clock and the
// auction window. Terminal statuses (draft, sold) pass through untouched.
// The result never depends on the bid history, and re-evaluating at the same
// instant always yields the same status.
func DeriveStatus(car models.Car, now time.Time) models.AuctionStatus {
	if car.Status.Terminal() {
		return car.Status
	}
	if now.Before(car.AuctionStartTime) {
		return models.StatusUpcoming
	}

	remaining := car.AuctionEndTime.Sub(now)
	switch {
	case remaining <= 0:
		return models.StatusEnded
	case remaining <= EndingSoonWindow:
		return models.StatusEndingSoon
	default:
		return models.StatusActive
	}
}

// RefreshStatuses re-derives every car's status at the given instant and
// stores the ones that changed. Terminal statuses are never overwritten.
// Returns the number of cars whose status changed.
func (s *AuctionService) RefreshStatuses(now time.Time) int {
	changed := 0
	for _, car := range s.repo.ListCars() {
		status := DeriveStatus(car, now)
		if status == car.Status {
			continue
		}
		if err := s.repo.SetCarStatus(car.CarID, status); err != nil {
			// Car disappeared between list and update; nothing to do.
			continue
		}
		changed++
	}
	return changed
}

// StatusRefresher re-derives auction statuses once at start and then on a
// fixed cadence until stopped. One refresh completes before the next fires.
type StatusRefresher struct {
	svc      *AuctionService
	interval time.Duration
	stop     chan struct{}
	done     chan struct{}
}

// NewStatusRefresher creates a refresher ticking at the given interval.
func NewStatusRefresher(svc *AuctionService, interval time.Duration) *StatusRefresher {
	return &StatusRefresher{
		svc:      svc,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the refresh loop in a goroutine.
func (r *StatusRefresher) Start() {
	go r.run()
}

func (r *StatusRefresher) run() {
	defer close(r.done)

	r.refresh()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.refresh()
		case <-r.stop:
			return
		}
	}
}

func (r *StatusRefresher) refresh() {
	if changed := r.svc.RefreshStatuses(time.Now().UTC()); changed > 0 {
		utils.Info("auction statuses refreshed", map[string]any{"changed": changed})
	}
}

// Stop halts the loop and waits for the in-flight refresh to finish.
func (r *StatusRefresher) Stop() {
	close(r.stop)
	<-r.done
}
