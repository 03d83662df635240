package lifecycle

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	model "auction-backend/internal/models"
	"auction-backend/internal/repository"
	"auction-backend/utils"
)

// seedUser stores an account and returns its ID
func seedUser(t *testing.T, repo *repository.MemoryRepo, email string, active bool) string {
	t.Helper()

	user := model.User{
		UserID:        utils.GenerateID(),
		Email:         email,
		PasswordHash:  "irrelevant",
		Role:          model.RoleClient,
		DepositStatus: model.DepositOnFile,
		IsActive:      active,
		CreatedAt:     time.Now().UTC(),
	}
	require.NoError(t, repo.CreateUser(user))
	return user.UserID
}

// seedAuction stores a carrier plus an auction in the given status window
func seedAuction(t *testing.T, repo *repository.MemoryRepo, status string, start, end time.Time) model.Auction {
	t.Helper()

	carrier := model.Carrier{
		CarrierID: utils.GenerateID(),
		Name:      "Carrier " + utils.GenerateID(),
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.CreateCarrier(carrier))

	auction := model.Auction{
		AuctionID: utils.GenerateID(),
		CarrierID: carrier.CarrierID,
		Name:      "Test Auction",
		StartTime: start,
		EndTime:   end,
		Status:    status,
		IsVisible: true,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.CreateAuction(auction))
	return auction
}

// seedLot stores a lot on the given auction with the given minimum bid
func seedLot(t *testing.T, repo *repository.MemoryRepo, auctionID, identifier string, minBid decimal.Decimal) model.Lot {
	t.Helper()

	lot := model.Lot{
		LotID:         utils.GenerateID(),
		AuctionID:     auctionID,
		LotIdentifier: identifier,
		DeviceName:    "Device " + identifier,
		Quantity:      1,
		MinBid:        minBid,
		CreatedAt:     time.Now().UTC(),
	}
	require.NoError(t, repo.CreateLot(lot))
	return lot
}

// seedBid records a bid directly in the store, bypassing the ledger
func seedBid(t *testing.T, repo *repository.MemoryRepo, lotID, userID string, amount decimal.Decimal, at time.Time) model.Bid {
	t.Helper()

	bid, err := repo.UpsertBid(model.Bid{
		BidID:     utils.GenerateID(),
		LotID:     lotID,
		UserID:    userID,
		BidAmount: amount,
		BidTime:   at,
		Status:    model.BidActive,
	})
	require.NoError(t, err)
	return bid
}
