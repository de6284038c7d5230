package integrationtests

import (
	auction "auction-marketplace/internal/auctionService"
	model "auction-marketplace/internal/models"
	"auction-marketplace/internal/repository"
	"auction-marketplace/internal/seed"
	"auction-marketplace/internal/server"
	"auction-marketplace/internal/session"
	"auction-marketplace/internal/storage"
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

// SetupTestRouter wires the full application over an in-memory repository and
// storage, seeded with the fixture users and cars.
func SetupTestRouter() (*gin.Engine, *repository.MemoryRepo) {
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	seed.Populate(repo, time.Now().UTC())

	sessionStore := session.NewStore(seed.Users(), storage.NewMemoryStore())
	service := auction.NewAuctionService(repo)
	router := server.SetupRouter(service, sessionStore)
	return router, repo
}

// SetupTestRouterWithCars wires the application with only the given cars.
func SetupTestRouterWithCars(cars ...model.Car) *gin.Engine {
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	for _, car := range cars {
		repo.AddCar(car)
	}

	sessionStore := session.NewStore(seed.Users(), storage.NewMemoryStore())
	service := auction.NewAuctionService(repo)
	return server.SetupRouter(service, sessionStore)
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}

// ActiveCar builds a car open for bidding, for tests that need a known state.
func ActiveCar(carID string, currentBid float64) model.Car {
	now := time.Now().UTC()
	return model.Car{
		CarID:            carID,
		SellerID:         "2",
		Title:            "Integration Test Car " + carID,
		Brand:            "TestBrand",
		Model:            "TestModel",
		Year:             2021,
		Condition:        "good",
		StartingBid:      currentBid,
		CurrentBid:       currentBid,
		Status:           model.StatusActive,
		AuctionStartTime: now.Add(-48 * time.Hour),
		AuctionEndTime:   now.Add(96 * time.Hour),
	}
}
