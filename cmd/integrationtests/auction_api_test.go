package integrationtests

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	model "auction-backend/internal/models"
)

const lotCSV = `Lot ID,Device Name,Description,Condition,Quantity,Minimum Bid
LOT-001,iPhone 14 Pro,Grade A returns,A,10,250.00
LOT-002,Galaxy S23,Mixed grade pallet,B,25,180.50
LOT-003,Pixel 8,Screen burn batch,C,15,90
`

// Full auction round trip: carrier and auction setup, lot import, activation,
// client bidding, closing and winner determination.
func TestFullAuctionLifecycle(t *testing.T) {
	env := SetupTestEnv(t)
	router := env.Router

	adminToken := Login(t, router, "/admin/login", adminEmail, adminPassword)

	// Carrier and auction
	resp, w := ExecuteRequest(t, router, http.MethodPost, "/admin/carriers", adminToken, map[string]any{
		"name": "Vodafone",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	carrierID := resp["data"].(map[string]any)["carrier_id"].(string)

	endTime := time.Now().UTC().Add(time.Hour)
	resp, w = ExecuteRequest(t, router, http.MethodPost, "/admin/auctions", adminToken, map[string]any{
		"name":       "September Device Sale",
		"carrier_id": carrierID,
		"end_time":   endTime.Format(time.RFC3339),
		"is_visible": true,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	auctionData := resp["data"].(map[string]any)
	auctionID := auctionData["auction_id"].(string)
	require.Equal(t, model.AuctionScheduled, auctionData["status"])

	// Lot import
	resp, w = UploadFile(t, router, "/admin/auctions/"+auctionID+"/upload-lots", adminToken, "lots.csv", []byte(lotCSV))
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, float64(3), resp["data"].(map[string]any)["lots_added"])

	// Clients cannot see the auction while it is still scheduled
	winnerID, winnerToken := CreateClient(t, router, adminToken, "winner@example.com", "pw-winner", model.DepositOnFile)
	_, runnerUpToken := CreateClient(t, router, adminToken, "runnerup@example.com", "pw-runnerup", model.DepositCleared)

	_, w = ExecuteRequest(t, router, http.MethodGet, "/client/auctions/"+auctionID, winnerToken, nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	// Activate
	resp, w = ExecuteRequest(t, router, http.MethodPost, "/admin/auctions/process-statuses", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, float64(1), resp["data"].(map[string]any)["auctions_updated"])

	// Browse and pick a lot
	resp, w = ExecuteRequest(t, router, http.MethodGet, "/client/auctions", winnerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	browse := resp["data"].(map[string]any)
	require.Len(t, browse["auctions_list"].([]any), 1)
	require.Contains(t, browse["auctions_by_carrier"].(map[string]any), "Vodafone")

	resp, w = ExecuteRequest(t, router, http.MethodGet, "/client/auctions/"+auctionID, winnerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	lots := resp["data"].(map[string]any)["lots"].([]any)
	require.Len(t, lots, 3)

	var lotID string
	for _, l := range lots {
		lot := l.(map[string]any)
		if lot["lot_identifier"] == "LOT-001" {
			lotID = lot["lot_id"].(string)
		}
	}
	require.NotEmpty(t, lotID)

	// Bidding: the runner-up bids first, the winner outbids, a bid below the
	// lot minimum is rejected
	bidURL := "/client/auctions/" + auctionID + "/lots/" + lotID + "/bid"

	_, w = ExecuteRequest(t, router, http.MethodPost, bidURL, runnerUpToken, map[string]any{"bid_amount": 300})
	require.Equal(t, http.StatusCreated, w.Code)

	_, w = ExecuteRequest(t, router, http.MethodPost, bidURL, winnerToken, map[string]any{"bid_amount": 350})
	require.Equal(t, http.StatusCreated, w.Code)

	_, w = ExecuteRequest(t, router, http.MethodPost, bidURL, winnerToken, map[string]any{"bid_amount": 100})
	require.Equal(t, http.StatusBadRequest, w.Code)

	resp, w = ExecuteRequest(t, router, http.MethodGet, "/client/my-bids", winnerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	myBids := resp["data"].([]any)
	require.Len(t, myBids, 1)
	require.Equal(t, "350", myBids[0].(map[string]any)["bid_amount"])

	// Winners cannot be determined while the auction is still open
	_, w = ExecuteRequest(t, router, http.MethodPost, "/admin/auctions/"+auctionID+"/determine-winners", adminToken, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Close by moving the window into the past and sweeping again
	past := time.Now().UTC().Add(-time.Hour)
	_, w = ExecuteRequest(t, router, http.MethodPut, "/admin/auctions/"+auctionID, adminToken, map[string]any{
		"start_time": past.Add(-time.Hour).Format(time.RFC3339),
		"end_time":   past.Format(time.RFC3339),
	})
	require.Equal(t, http.StatusOK, w.Code)

	resp, w = ExecuteRequest(t, router, http.MethodPost, "/admin/auctions/process-statuses", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, float64(1), resp["data"].(map[string]any)["auctions_updated"])

	// No more bids once closed
	_, w = ExecuteRequest(t, router, http.MethodPost, bidURL, runnerUpToken, map[string]any{"bid_amount": 500})
	require.Equal(t, http.StatusForbidden, w.Code)

	// Determine winners
	resp, w = ExecuteRequest(t, router, http.MethodPost, "/admin/auctions/"+auctionID+"/determine-winners", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	summary := resp["data"].(map[string]any)
	require.Equal(t, float64(3), summary["lots_processed"])
	require.Equal(t, float64(1), summary["winners_determined"])

	// The highest bidder sees the win, the runner-up does not
	resp, w = ExecuteRequest(t, router, http.MethodGet, "/client/my-wins", winnerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	wins := resp["data"].([]any)
	require.Len(t, wins, 1)
	win := wins[0].(map[string]any)
	require.Equal(t, "LOT-001", win["lot_identifier"])
	require.Equal(t, winnerID, win["user_id"])
	require.Equal(t, "350", win["winning_amount"])

	resp, w = ExecuteRequest(t, router, http.MethodGet, "/client/my-wins", runnerUpToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, resp["data"].([]any))

	// The runner-up's bid is marked lost in the bid history
	resp, w = ExecuteRequest(t, router, http.MethodGet, "/client/my-bids", runnerUpToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	runnerUpBids := resp["data"].([]any)
	require.Len(t, runnerUpBids, 1)
	require.Equal(t, model.BidOutbid, runnerUpBids[0].(map[string]any)["status"])
}

// The root auction routes serve the storefront view: hidden and scheduled
// auctions stay invisible there for every caller, and admin-only fields on
// the unrestricted view never leak through them
func TestRootAuctionRoutesServeRestrictedView(t *testing.T) {
	env := SetupTestEnv(t)
	router := env.Router

	adminToken := Login(t, router, "/admin/login", adminEmail, adminPassword)

	resp, w := ExecuteRequest(t, router, http.MethodPost, "/admin/carriers", adminToken, map[string]any{"name": "Vodafone"})
	require.Equal(t, http.StatusCreated, w.Code)
	carrierID := resp["data"].(map[string]any)["carrier_id"].(string)

	// One hidden auction and one visible one, both activated by the sweep
	resp, w = ExecuteRequest(t, router, http.MethodPost, "/admin/auctions", adminToken, map[string]any{
		"name":       "Unannounced Sale",
		"carrier_id": carrierID,
		"end_time":   time.Now().UTC().Add(time.Hour).Format(time.RFC3339),
		"is_visible": false,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	hiddenID := resp["data"].(map[string]any)["auction_id"].(string)

	resp, w = ExecuteRequest(t, router, http.MethodPost, "/admin/auctions", adminToken, map[string]any{
		"name":       "Public Sale",
		"carrier_id": carrierID,
		"end_time":   time.Now().UTC().Add(time.Hour).Format(time.RFC3339),
		"is_visible": true,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	publicID := resp["data"].(map[string]any)["auction_id"].(string)

	_, w = ExecuteRequest(t, router, http.MethodPost, "/admin/auctions/process-statuses", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	_, clientToken := CreateClient(t, router, adminToken, "shopper@example.com", "pw-shopper", model.DepositOnFile)

	resp, w = ExecuteRequest(t, router, http.MethodGet, "/auctions", clientToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	listing := resp["data"].(map[string]any)["auctions_list"].([]any)
	require.Len(t, listing, 1)
	require.Equal(t, publicID, listing[0].(map[string]any)["auction_id"])

	// Filter passes through on the root route too
	resp, w = ExecuteRequest(t, router, http.MethodGet, "/auctions?carrier_id="+carrierID, clientToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, resp["data"].(map[string]any)["auctions_list"].([]any), 1)

	_, w = ExecuteRequest(t, router, http.MethodGet, "/auctions?carrier_id=other", clientToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// The hidden auction reads as missing on the root detail route
	_, w = ExecuteRequest(t, router, http.MethodGet, "/auctions/"+hiddenID, clientToken, nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	resp, w = ExecuteRequest(t, router, http.MethodGet, "/auctions/"+publicID, clientToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, publicID, resp["data"].(map[string]any)["auction_id"])

	// The unrestricted view still exists for admins
	resp, w = ExecuteRequest(t, router, http.MethodGet, "/admin/auctions", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, resp["data"].([]any), 2)
	resp, w = ExecuteRequest(t, router, http.MethodGet, "/admin/auctions/"+hiddenID, adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, hiddenID, resp["data"].(map[string]any)["auction_id"])
}

// Role and token enforcement across the route groups
func TestAuthorizationBoundaries(t *testing.T) {
	env := SetupTestEnv(t)
	router := env.Router

	adminToken := Login(t, router, "/admin/login", adminEmail, adminPassword)
	_, clientToken := CreateClient(t, router, adminToken, "client@example.com", "pw-client", model.DepositOnFile)

	tests := []struct {
		name       string
		method     string
		url        string
		token      string
		wantStatus int
	}{
		{"no_token_on_admin_route", http.MethodGet, "/admin/users", "", http.StatusUnauthorized},
		{"client_token_on_admin_route", http.MethodGet, "/admin/users", clientToken, http.StatusForbidden},
		{"admin_token_on_client_route", http.MethodGet, "/client/my-bids", adminToken, http.StatusForbidden},
		{"admin_token_on_admin_route", http.MethodGet, "/admin/users", adminToken, http.StatusOK},
		{"no_token_on_profile", http.MethodGet, "/profile", "", http.StatusUnauthorized},
		{"client_token_on_profile", http.MethodGet, "/profile", clientToken, http.StatusOK},
		{"garbage_token", http.MethodGet, "/profile", "garbage", http.StatusUnauthorized},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, w := ExecuteRequest(t, router, tc.method, tc.url, tc.token, nil)
			require.Equal(t, tc.wantStatus, w.Code)
		})
	}
}

// Deposit and activation gates on bid submission
func TestBidEligibilityGates(t *testing.T) {
	env := SetupTestEnv(t)
	router := env.Router

	adminToken := Login(t, router, "/admin/login", adminEmail, adminPassword)

	resp, w := ExecuteRequest(t, router, http.MethodPost, "/admin/carriers", adminToken, map[string]any{"name": "Telekom"})
	require.Equal(t, http.StatusCreated, w.Code)
	carrierID := resp["data"].(map[string]any)["carrier_id"].(string)

	resp, w = ExecuteRequest(t, router, http.MethodPost, "/admin/auctions", adminToken, map[string]any{
		"name":       "Gated Sale",
		"carrier_id": carrierID,
		"end_time":   time.Now().UTC().Add(time.Hour).Format(time.RFC3339),
		"is_visible": true,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	auctionID := resp["data"].(map[string]any)["auction_id"].(string)

	_, w = UploadFile(t, router, "/admin/auctions/"+auctionID+"/upload-lots", adminToken, "lots.csv", []byte(lotCSV))
	require.Equal(t, http.StatusCreated, w.Code)

	_, w = ExecuteRequest(t, router, http.MethodPost, "/admin/auctions/process-statuses", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp, w = ExecuteRequest(t, router, http.MethodGet, "/client/auctions/"+auctionID, adminToken, nil)
	require.Equal(t, http.StatusForbidden, w.Code) // admin has no client role

	pendingID, pendingToken := CreateClient(t, router, adminToken, "pending@example.com", "pw-pending", model.DepositPending)

	resp, w = ExecuteRequest(t, router, http.MethodGet, "/client/auctions/"+auctionID, pendingToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	lotID := resp["data"].(map[string]any)["lots"].([]any)[0].(map[string]any)["lot_id"].(string)
	bidURL := "/client/auctions/" + auctionID + "/lots/" + lotID + "/bid"

	// Browsing is allowed without a deposit but bidding is not
	resp, w = ExecuteRequest(t, router, http.MethodPost, bidURL, pendingToken, map[string]any{"bid_amount": 999})
	require.Equal(t, http.StatusForbidden, w.Code)
	require.Contains(t, resp["message"], "security deposit required")

	// Clearing the deposit unlocks bidding on the next request
	_, w = ExecuteRequest(t, router, http.MethodPut, "/admin/users/"+pendingID, adminToken, map[string]any{
		"deposit_status": model.DepositOnFile,
	})
	require.Equal(t, http.StatusOK, w.Code)

	_, w = ExecuteRequest(t, router, http.MethodPost, bidURL, pendingToken, map[string]any{"bid_amount": 999})
	require.Equal(t, http.StatusCreated, w.Code)

	// Deactivating the account blocks further bids with the same token
	_, w = ExecuteRequest(t, router, http.MethodPut, "/admin/users/"+pendingID, adminToken, map[string]any{
		"is_active": false,
	})
	require.Equal(t, http.StatusOK, w.Code)

	resp, w = ExecuteRequest(t, router, http.MethodPost, bidURL, pendingToken, map[string]any{"bid_amount": 1200})
	require.Equal(t, http.StatusForbidden, w.Code)
	require.Contains(t, resp["message"], "account is deactivated")

	// And a fresh login is refused outright
	_, w = ExecuteRequest(t, router, http.MethodPost, "/login", "", map[string]any{
		"email":    "pending@example.com",
		"password": "pw-pending",
	})
	require.Equal(t, http.StatusForbidden, w.Code)
}

// A rejected import leaves no lots behind
func TestLotImportAllOrNothing(t *testing.T) {
	env := SetupTestEnv(t)
	router := env.Router

	adminToken := Login(t, router, "/admin/login", adminEmail, adminPassword)

	resp, w := ExecuteRequest(t, router, http.MethodPost, "/admin/carriers", adminToken, map[string]any{"name": "O2"})
	require.Equal(t, http.StatusCreated, w.Code)
	carrierID := resp["data"].(map[string]any)["carrier_id"].(string)

	resp, w = ExecuteRequest(t, router, http.MethodPost, "/admin/auctions", adminToken, map[string]any{
		"name":       "Import Sale",
		"carrier_id": carrierID,
		"end_time":   time.Now().UTC().Add(time.Hour).Format(time.RFC3339),
	})
	require.Equal(t, http.StatusCreated, w.Code)
	auctionID := resp["data"].(map[string]any)["auction_id"].(string)

	duplicated := "Lot ID,Device Name\nLOT-001,iPhone 14\nLOT-001,Galaxy S23\n"
	_, w = UploadFile(t, router, "/admin/auctions/"+auctionID+"/upload-lots", adminToken, "dups.csv", []byte(duplicated))
	require.Equal(t, http.StatusBadRequest, w.Code)

	resp, w = ExecuteRequest(t, router, http.MethodGet, "/admin/auctions/"+auctionID, adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, resp["data"].(map[string]any)["lots"].([]any))

	// A clean retry then succeeds
	_, w = UploadFile(t, router, "/admin/auctions/"+auctionID+"/upload-lots", adminToken, "lots.csv", []byte(lotCSV))
	require.Equal(t, http.StatusCreated, w.Code)

	resp, w = ExecuteRequest(t, router, http.MethodGet, "/admin/auctions/"+auctionID, adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, resp["data"].(map[string]any)["lots"].([]any), 3)
}
