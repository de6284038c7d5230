package integrationtests

import (
	"net/http"
	"testing"

	"auction-marketplace/services/auction/helpers"
	sessionhelpers "auction-marketplace/services/session/helpers"

	"github.com/stretchr/testify/require"
)

// Bid placement over the seeded marketplace. The seeded GT-R carries a
// current bid of 72500.
func TestBidPlacementFlow(t *testing.T) {
	router, repo := SetupTestRouter()

	// Too-low bid: rejected, nothing changes.
	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/bids",
		helpers.PlaceBidRequest{CarID: "car-1", BidderID: "3", BidderName: "Blake Reed", Amount: 70000})
	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, "bid amount too low", resp["message"])

	car, err := repo.GetCar("car-1")
	require.NoError(t, err)
	require.Equal(t, 72500.0, car.CurrentBid)
	bidCountBefore := len(car.Bids)

	// Repeating the same too-low bid never changes state.
	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/bids",
		helpers.PlaceBidRequest{CarID: "car-1", BidderID: "3", BidderName: "Blake Reed", Amount: 70000})
	require.Equal(t, http.StatusConflict, w.Code)
	car, _ = repo.GetCar("car-1")
	require.Len(t, car.Bids, bidCountBefore)

	// Higher bid: accepted.
	resp, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/bids",
		helpers.PlaceBidRequest{CarID: "car-1", BidderID: "3", BidderName: "Blake Reed", Amount: 75000})
	require.Equal(t, http.StatusCreated, w.Code)

	data := resp["data"].(map[string]any)
	require.NotEmpty(t, data["bid_id"])
	require.Equal(t, 75000.0, data["amount"])

	car, _ = repo.GetCar("car-1")
	require.Equal(t, 75000.0, car.CurrentBid)
	require.Len(t, car.Bids, bidCountBefore+1)
	require.Equal(t, 75000.0, car.Bids[len(car.Bids)-1].Amount)

	// Exactly one unread confirmation for the bidder.
	resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/users/3/notifications", nil)
	require.Equal(t, http.StatusOK, w.Code)
	notes := resp["data"].([]any)
	require.Len(t, notes, 1)
	note := notes[0].(map[string]any)
	require.Equal(t, "bid-placed", note["type"])
	require.Equal(t, false, note["read"])

	// The displaced leader (seed bidder, user 1) got an outbid notice.
	resp, _ = ExecuteRequestAndParse(t, router, http.MethodGet, "/users/1/notifications", nil)
	outbids := resp["data"].([]any)
	require.Len(t, outbids, 1)
	require.Equal(t, "outbid", outbids[0].(map[string]any)["type"])
}

// Bidding on an ended auction is rejected.
func TestBidOnEndedAuction(t *testing.T) {
	router, repo := SetupTestRouter()

	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/bids",
		helpers.PlaceBidRequest{CarID: "car-3", BidderID: "3", BidderName: "Blake Reed", Amount: 99999})
	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, "auction is not open for bidding", resp["message"])

	car, err := repo.GetCar("car-3")
	require.NoError(t, err)
	require.Equal(t, 27500.0, car.CurrentBid)
	require.Empty(t, car.Bids)
}

// Watchlist add/duplicate/remove through the API.
func TestWatchlistFlow(t *testing.T) {
	router, _ := SetupTestRouter()

	_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/users/3/watchlist",
		helpers.WatchRequest{CarID: "car-1"})
	require.Equal(t, http.StatusCreated, w.Code)

	// Second add for the same pair fails.
	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/users/3/watchlist",
		helpers.WatchRequest{CarID: "car-1"})
	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, "car already on watchlist", resp["message"])

	// Exactly one entry exists.
	resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/users/3/watchlist", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, resp["data"].([]any), 1)

	resp, _ = ExecuteRequestAndParse(t, router, http.MethodGet, "/users/3/watchlist/car-1", nil)
	require.Equal(t, true, resp["data"].(map[string]any)["watching"])

	_, w = ExecuteRequestAndParse(t, router, http.MethodDelete, "/users/3/watchlist/car-1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp, _ = ExecuteRequestAndParse(t, router, http.MethodGet, "/users/3/watchlist", nil)
	require.Empty(t, resp["data"].([]any))
}

// Every bid a user placed shows up in their bid history with the winning flag.
func TestUserBidHistory(t *testing.T) {
	router := SetupTestRouterWithCars(ActiveCar("hist-1", 100), ActiveCar("hist-2", 500))

	for _, req := range []helpers.PlaceBidRequest{
		{CarID: "hist-1", BidderID: "userX", BidderName: "X", Amount: 150},
		{CarID: "hist-1", BidderID: "userY", BidderName: "Y", Amount: 200},
		{CarID: "hist-2", BidderID: "userX", BidderName: "X", Amount: 600},
	} {
		_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/bids", req)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/users/userX/bids", nil)
	require.Equal(t, http.StatusOK, w.Code)

	entries := resp["data"].([]any)
	require.Len(t, entries, 2)

	first := entries[0].(map[string]any)
	require.Equal(t, "hist-2", first["car"].(map[string]any)["car_id"])
	require.Equal(t, true, first["is_winning"])

	second := entries[1].(map[string]any)
	require.Equal(t, "hist-1", second["car"].(map[string]any)["car_id"])
	require.Equal(t, false, second["is_winning"])
}

// Listing creation and discovery.
func TestListingCreationAndSearch(t *testing.T) {
	router, _ := SetupTestRouter()

	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/cars", helpers.CreateListingRequest{
		SellerID:      "2",
		Title:         "2019 Audi RS6 Avant",
		Brand:         "Audi",
		Model:         "RS6",
		Year:          2019,
		Condition:     "good",
		StartingBid:   45000,
		DurationHours: 7 * 24,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	data := resp["data"].(map[string]any)
	require.Equal(t, "active", data["status"])
	require.Equal(t, 45000.0, data["current_bid"])

	// Free-text search finds it.
	resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/cars?q=rs6", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, resp["data"].([]any), 1)

	// Brand filter combined with price range.
	resp, _ = ExecuteRequestAndParse(t, router, http.MethodGet, "/cars?brand=Audi&min_price=40000&max_price=50000", nil)
	require.Len(t, resp["data"].([]any), 1)

	// No match.
	resp, _ = ExecuteRequestAndParse(t, router, http.MethodGet, "/cars?brand=Ferrari", nil)
	require.Empty(t, resp["data"].([]any))
}

// Auth flow against the seeded accounts.
func TestAuthFlow(t *testing.T) {
	router, _ := SetupTestRouter()

	// Wrong password.
	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/auth/login",
		sessionhelpers.LoginRequest{Email: "buyer@auction.com", Password: "wrong"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "invalid credentials", resp["message"])

	// Demo password.
	resp, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/auth/login",
		sessionhelpers.LoginRequest{Email: "buyer@auction.com", Password: "password"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "3", resp["data"].(map[string]any)["user_id"])

	// Session is visible.
	resp, _ = ExecuteRequestAndParse(t, router, http.MethodGet, "/auth/me", nil)
	require.Equal(t, "3", resp["data"].(map[string]any)["user_id"])

	// Profile update merges fields.
	phone := "+1-555-4242"
	resp, w = ExecuteRequestAndParse(t, router, http.MethodPatch, "/auth/profile",
		sessionhelpers.UpdateProfileRequest{Phone: &phone})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, phone, resp["data"].(map[string]any)["phone"])

	// Logout clears the session.
	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/auth/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp, _ = ExecuteRequestAndParse(t, router, http.MethodGet, "/auth/me", nil)
	require.Equal(t, "no active session", resp["message"])

	// Registration creates and signs in a fresh account.
	resp, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/auth/register",
		sessionhelpers.RegisterRequest{Email: "x@y.com", Name: "X", Role: "buyer"})
	require.Equal(t, http.StatusCreated, w.Code)
	newID := resp["data"].(map[string]any)["user_id"].(string)
	require.NotEmpty(t, newID)

	resp, _ = ExecuteRequestAndParse(t, router, http.MethodGet, "/auth/me", nil)
	require.Equal(t, newID, resp["data"].(map[string]any)["user_id"])
}
