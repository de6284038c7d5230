package seed

import (
	"time"

	"auction-marketplace/internal/models"
	"auction-marketplace/internal/repository"
)

// Users returns the fixture accounts. All of them accept the demo password.
func Users() []models.User {
	joined := time.Date(2024, 3, 12, 9, 0, 0, 0, time.UTC)
	return []models.User{
		{UserID: "1", Email: "admin@auction.com", Name: "Alex Morgan", Role: models.RoleAdmin, JoinedAt: joined},
		{UserID: "2", Email: "seller@auction.com", Name: "Sam Carter", Role: models.RoleSeller, Phone: "+1-555-0102", JoinedAt: joined},
		{UserID: "3", Email: "buyer@auction.com", Name: "Blake Reed", Role: models.RoleBuyer, Phone: "+1-555-0103", JoinedAt: joined},
	}
}

// Cars returns the fixture listings with auction windows placed relative to
// now so that active, ending-soon and ended listings are all represented.
func Cars(now time.Time) []models.Car {
	reserve := 80000.0

	gtrBids := []models.Bid{
		{BidID: "seed-bid-1", CarID: "car-1", BidderID: "3", BidderName: "Blake Reed", Amount: 70000, CreatedAt: now.Add(-48 * time.Hour)},
		{BidID: "seed-bid-2", CarID: "car-1", BidderID: "1", BidderName: "Alex Morgan", Amount: 72500, CreatedAt: now.Add(-24 * time.Hour)},
	}

	return []models.Car{
		{
			CarID:            "car-1",
			SellerID:         "2",
			Title:            "2020 Nissan GT-R Premium",
			Brand:            "Nissan",
			Model:            "GT-R",
			Year:             2020,
			VIN:              "JN1AR5EF3LM100001",
			Mileage:          18500,
			Condition:        "excellent",
			Description:      "Twin-turbo V6, single owner, full service history.",
			StartingBid:      65000,
			CurrentBid:       72500,
			ReservePrice:     &reserve,
			Status:           models.StatusActive,
			AuctionStartTime: now.Add(-72 * time.Hour),
			AuctionEndTime:   now.Add(96 * time.Hour),
			Bids:             gtrBids,
		},
		{
			CarID:            "car-2",
			SellerID:         "2",
			Title:            "2018 BMW M4 Competition",
			Brand:            "BMW",
			Model:            "M4",
			Year:             2018,
			VIN:              "WBS3R9C55JK100002",
			Mileage:          42000,
			Condition:        "good",
			Description:      "Competition package, carbon roof, recent brakes.",
			StartingBid:      38000,
			CurrentBid:       38000,
			Status:           models.StatusEndingSoon,
			AuctionStartTime: now.Add(-6 * 24 * time.Hour),
			AuctionEndTime:   now.Add(8 * time.Hour),
		},
		{
			CarID:            "car-3",
			SellerID:         "2",
			Title:            "2015 Toyota Land Cruiser",
			Brand:            "Toyota",
			Model:            "Land Cruiser",
			Year:             2015,
			VIN:              "JTMHY7AJ5F4100003",
			Mileage:          98000,
			Condition:        "fair",
			Description:      "Well maintained, highway miles, tow package.",
			StartingBid:      27500,
			CurrentBid:       27500,
			Status:           models.StatusEnded,
			AuctionStartTime: now.Add(-14 * 24 * time.Hour),
			AuctionEndTime:   now.Add(-36 * time.Hour),
		},
		{
			CarID:            "car-4",
			SellerID:         "2",
			Title:            "2022 Porsche 911 Carrera S",
			Brand:            "Porsche",
			Model:            "911",
			Year:             2022,
			VIN:              "WP0AB2A95NS100004",
			Mileage:          6200,
			Condition:        "excellent",
			Description:      "Draft listing, photos pending.",
			StartingBid:      115000,
			CurrentBid:       115000,
			Status:           models.StatusDraft,
			AuctionStartTime: now.Add(24 * time.Hour),
			AuctionEndTime:   now.Add(8 * 24 * time.Hour),
		},
	}
}

// Populate loads the fixture cars into the repository.
func Populate(repo repository.AuctionStore, now time.Time) {
	for _, car := range Cars(now) {
		repo.AddCar(car)
	}
}
