package perftests

import (
	"fmt"
	"math/rand"
	"sync/atomic"
	"testing"
	"time"

	auction "auction-marketplace/internal/auctionService"
	model "auction-marketplace/internal/models"
	repository "auction-marketplace/internal/repository"
)

func benchCar(carID string, startingBid float64) model.Car {
	now := time.Now().UTC()
	return model.Car{
		CarID:            carID,
		SellerID:         "seller1",
		Title:            fmt.Sprintf("Benchmark Car %s", carID),
		Brand:            "BenchBrand",
		Model:            "BenchModel",
		Year:             2020,
		Condition:        "good",
		StartingBid:      startingBid,
		CurrentBid:       startingBid,
		Status:           model.StatusActive,
		AuctionStartTime: now.Add(-24 * time.Hour),
		AuctionEndTime:   now.Add(96 * time.Hour),
	}
}

// Benchmark 1: PlaceBid - Isolated Cars (Low Contention - Micro Benchmark)
func Benchmark_PlaceBid_Isolated(b *testing.B) {
	repo := repository.NewMemoryRepo()
	svc := auction.NewAuctionService(repo)

	for i := 0; i < b.N; i++ {
		repo.AddCar(benchCar(fmt.Sprintf("car_%d", i), 50))
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		bidderID := fmt.Sprintf("user_%d", i)
		carID := fmt.Sprintf("car_%d", i)
		amount := float64(51 + rand.Intn(100))
		if _, err := svc.PlaceBid(carID, bidderID, "Bench Bidder", amount); err != nil {
			b.Fatalf("failed to place bid: %v", err)
		}
	}
}

// Benchmark 2: PlaceBid - Shared Car (High Contention - Concurrency Benchmark)
func Benchmark_PlaceBid_ConcurrentSharedCar(b *testing.B) {
	repo := repository.NewMemoryRepo()
	svc := auction.NewAuctionService(repo)

	repo.AddCar(benchCar("shared_car_1", 50))

	b.ReportAllocs()
	b.ResetTimer()

	var lastBid int64 = 50

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			bidderID := fmt.Sprintf("user_parallel_%d", rnd.Int())

			nextBid := atomic.AddInt64(&lastBid, int64(rnd.Intn(5)+1))
			_, _ = svc.PlaceBid("shared_car_1", bidderID, "Parallel Bidder", float64(nextBid))
		}
	})
}

// Benchmark 3: Search over a populated marketplace
func Benchmark_Search(b *testing.B) {
	repo := repository.NewMemoryRepo()
	svc := auction.NewAuctionService(repo)

	brands := []string{"Nissan", "BMW", "Toyota", "Audi", "Porsche"}
	for i := 0; i < 1000; i++ {
		car := benchCar(fmt.Sprintf("car_%d", i), float64(1000+i))
		car.Brand = brands[i%len(brands)]
		car.Title = fmt.Sprintf("%d %s Listing %d", 2010+i%15, car.Brand, i)
		car.Year = 2010 + i%15
		repo.AddCar(car)
	}

	filter := auction.SearchFilter{
		Query:    "listing",
		Brand:    "BMW",
		MinPrice: 1200,
		MaxPrice: 1800,
		YearFrom: 2012,
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = svc.Search(filter)
	}
}

// Benchmark 4: ListBidsByUser full-ledger scan
func Benchmark_ListBidsByUser(b *testing.B) {
	repo := repository.NewMemoryRepo()
	svc := auction.NewAuctionService(repo)

	for i := 0; i < 100; i++ {
		carID := fmt.Sprintf("car_%d", i)
		repo.AddCar(benchCar(carID, 50))
		for j := 0; j < 20; j++ {
			bidderID := fmt.Sprintf("user_%d", j%10)
			if _, err := svc.PlaceBid(carID, bidderID, "Scan Bidder", float64(51+j)); err != nil {
				b.Fatalf("failed to seed bid: %v", err)
			}
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := svc.ListBidsByUser("user_3"); err != nil {
			b.Fatalf("failed to list bids: %v", err)
		}
	}
}

// Benchmark 5: RefreshStatuses over the whole collection
func Benchmark_RefreshStatuses(b *testing.B) {
	repo := repository.NewMemoryRepo()
	svc := auction.NewAuctionService(repo)

	now := time.Now().UTC()
	for i := 0; i < 1000; i++ {
		car := benchCar(fmt.Sprintf("car_%d", i), 50)
		// Spread end times so every derived state shows up.
		car.AuctionEndTime = now.Add(time.Duration(i-500) * time.Hour)
		repo.AddCar(car)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		svc.RefreshStatuses(now)
	}
}
