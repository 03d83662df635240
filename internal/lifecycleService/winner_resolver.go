package lifecycle

import (
	"errors"
	"fmt"
	"time"

	"auction-backend/internal/auctionerrors"
	model "auction-backend/internal/models"
	"auction-backend/internal/repository"
	"auction-backend/utils"
)

// WinnerSummary reports the outcome of a winner determination run.
// LotErrors carries per-lot failures; lots that committed before a failing
// lot keep their results and can be inspected against this map.
type WinnerSummary struct {
	LotsProcessed     int
	WinnersDetermined int
	LotErrors         map[string]string // lotID -> failure description
}

// DetermineWinners computes the winning bid for every lot of a closed
// auction. Each lot is resolved in its own transaction so a failure on one
// lot never rolls back winners already committed for other lots.
//
// Per lot: only bids from active users are eligible; the winner is the
// highest amount, ties broken by earliest bid time, then by lowest bid ID so
// the ordering is total. An existing winner row is always replaced, and
// cleared when no eligible bid remains. The winning bid is marked winning,
// every other bid on the lot outbid; with no eligible winner all bids are
// marked lost.
func (s *Service) DetermineWinners(auctionID string, now time.Time) (WinnerSummary, error) {
	summary := WinnerSummary{LotErrors: make(map[string]string)}

	auction, err := s.repo.GetAuctionByID(auctionID)
	if err != nil {
		return summary, fmt.Errorf("service: failed to load auction %s: %w", auctionID, err)
	}
	if auction.Status != model.AuctionClosed {
		return summary, fmt.Errorf("auction %s has status %s: %w", auctionID, auction.Status, auctionerrors.ErrAuctionNotClosed)
	}

	lots, err := s.repo.ListLotsByAuction(auctionID)
	if err != nil {
		return summary, fmt.Errorf("service: failed to load lots for auction %s: %w", auctionID, err)
	}

	for _, lot := range lots {
		summary.LotsProcessed++

		var won bool
		err := s.repo.WithinTx(func(tx repository.AuctionDB) error {
			var resolveErr error
			won, resolveErr = resolveLot(tx, lot, now)
			return resolveErr
		})
		if err != nil {
			summary.LotErrors[lot.LotID] = err.Error()
			utils.Warn("winner determination failed for lot", map[string]any{
				"auction_id": auctionID,
				"lot_id":     lot.LotID,
				"error":      err.Error(),
			})
			continue
		}
		if won {
			summary.WinnersDetermined++
		}
	}

	return summary, nil
}

// resolveLot determines the winner of a single lot inside tx.
// Returns true when a winner row was written.
func resolveLot(tx repository.AuctionDB, lot model.Lot, now time.Time) (bool, error) {
	bids, err := tx.ListBidsByLot(lot.LotID)
	if err != nil {
		return false, err
	}

	eligible, err := eligibleBids(tx, bids)
	if err != nil {
		return false, err
	}

	winning, found := pickWinningBid(eligible)
	if !found {
		// Recomputation may leave a stale winner behind, e.g. when the
		// previous winner's account was deactivated; clear it.
		if err := tx.DeleteWinnerByLot(lot.LotID); err != nil {
			return false, err
		}
		for _, bid := range bids {
			if err := tx.UpdateBidStatus(bid.BidID, model.BidLost); err != nil {
				return false, err
			}
		}
		return false, nil
	}

	if err := tx.DeleteWinnerByLot(lot.LotID); err != nil {
		return false, err
	}
	if err := tx.CreateWinner(model.AuctionWinner{
		WinnerID:      utils.GenerateID(),
		LotID:         lot.LotID,
		UserID:        winning.UserID,
		WinningBidID:  winning.BidID,
		WinningAmount: winning.BidAmount,
		AwardedAt:     now.UTC(),
	}); err != nil {
		return false, err
	}

	for _, bid := range bids {
		status := model.BidOutbid
		if bid.BidID == winning.BidID {
			status = model.BidWinning
		}
		if err := tx.UpdateBidStatus(bid.BidID, status); err != nil {
			return false, err
		}
	}
	return true, nil
}

// eligibleBids filters bids down to those placed by active users.
// Bids whose user no longer exists are skipped rather than failing the lot.
func eligibleBids(tx repository.AuctionDB, bids []model.Bid) ([]model.Bid, error) {
	activeByUser := make(map[string]bool, len(bids))
	var eligible []model.Bid
	for _, bid := range bids {
		active, known := activeByUser[bid.UserID]
		if !known {
			user, err := tx.GetUserByID(bid.UserID)
			switch {
			case errors.Is(err, auctionerrors.ErrUserNotFound):
				active = false
			case err != nil:
				return nil, err
			default:
				active = user.IsActive
			}
			activeByUser[bid.UserID] = active
		}
		if active {
			eligible = append(eligible, bid)
		}
	}
	return eligible, nil
}

// pickWinningBid selects the winning bid out of the eligible set
func pickWinningBid(bids []model.Bid) (model.Bid, bool) {
	if len(bids) == 0 {
		return model.Bid{}, false
	}
	winning := bids[0]
	for _, bid := range bids[1:] {
		if outranks(bid, winning) {
			winning = bid
		}
	}
	return winning, true
}

// outranks reports whether bid a beats bid b: higher amount first, earlier
// bid time on amount ties, lower bid ID as the final canonical tie-break.
func outranks(a, b model.Bid) bool {
	switch a.BidAmount.Cmp(b.BidAmount) {
	case 1:
		return true
	case -1:
		return false
	}
	if !a.BidTime.Equal(b.BidTime) {
		return a.BidTime.Before(b.BidTime)
	}
	return a.BidID < b.BidID
}
