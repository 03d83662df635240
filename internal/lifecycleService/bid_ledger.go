package lifecycle

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"auction-backend/internal/auctionerrors"
	model "auction-backend/internal/models"
	"auction-backend/internal/repository"
	"auction-backend/utils"
)

// SubmitBid records a client's sealed bid on a lot. A user holds at most one
// bid per lot: resubmitting overwrites the amount and time of the existing
// row and resets its status to active. The auction's open state is re-checked
// inside the transaction at the moment of the bid, never from a cached status.
//
// Caller-side eligibility (active account, deposit on file) is the API
// layer's responsibility; the ledger enforces the amount rules itself.
func (s *Service) SubmitBid(auctionID, lotID, userID string, amount decimal.Decimal, now time.Time) (model.Bid, error) {
	if lotID == "" || userID == "" {
		return model.Bid{}, fmt.Errorf("submit bid: %w - missing lotID or userID", auctionerrors.ErrInvalidInput)
	}
	if !amount.IsPositive() {
		return model.Bid{}, fmt.Errorf("submit bid for lot %s: %w", lotID, auctionerrors.ErrInvalidAmount)
	}

	var stored model.Bid
	err := s.repo.WithinTx(func(tx repository.AuctionDB) error {
		lot, err := tx.GetLotByID(lotID)
		if err != nil {
			return err
		}
		if auctionID != "" && lot.AuctionID != auctionID {
			return fmt.Errorf("lot %s does not belong to auction %s: %w", lotID, auctionID, auctionerrors.ErrLotNotFound)
		}

		auction, err := tx.GetAuctionByID(lot.AuctionID)
		if err != nil {
			return err
		}
		if auction.Status != model.AuctionActive {
			return fmt.Errorf("auction %s has status %s: %w", auction.AuctionID, auction.Status, auctionerrors.ErrAuctionNotOpen)
		}
		if !auction.IsVisible {
			return fmt.Errorf("auction %s is not visible: %w", auction.AuctionID, auctionerrors.ErrAuctionNotOpen)
		}
		if !now.Before(auction.EndTime) {
			return fmt.Errorf("auction %s has already ended: %w", auction.AuctionID, auctionerrors.ErrAuctionNotOpen)
		}

		if amount.LessThan(lot.MinBid) {
			return fmt.Errorf("bid must be at least %s for lot %s: %w", lot.MinBid.StringFixed(2), lotID, auctionerrors.ErrBelowMinimum)
		}

		stored, err = tx.UpsertBid(model.Bid{
			BidID:     utils.GenerateID(),
			LotID:     lotID,
			UserID:    userID,
			BidAmount: amount,
			BidTime:   now.UTC(),
			Status:    model.BidActive,
		})
		return err
	})
	if err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to submit bid for lot %s by user %s: %w", lotID, userID, err)
	}

	return stored, nil
}
