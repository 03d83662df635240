package lifecycle

import (
	"fmt"
	"time"

	model "auction-backend/internal/models"
	"auction-backend/internal/repository"
)

// AdvanceStatuses moves auctions along the scheduled -> active -> closed
// state machine based on the supplied wall-clock time and returns the number
// of auctions transitioned. Closed and cancelled auctions are terminal.
// The pass is idempotent: re-running with the same `now` transitions nothing.
func (s *Service) AdvanceStatuses(now time.Time) (int, error) {
	updated := 0
	err := s.repo.WithinTx(func(tx repository.AuctionDB) error {
		scheduled, err := tx.ListAuctionsByStatus(model.AuctionScheduled)
		if err != nil {
			return err
		}
		for _, auction := range scheduled {
			if !auction.StartTime.After(now) && auction.EndTime.After(now) {
				auction.Status = model.AuctionActive
				auction.UpdatedAt = now.UTC()
				if err := tx.UpdateAuction(auction); err != nil {
					return err
				}
				updated++
			}
		}

		active, err := tx.ListAuctionsByStatus(model.AuctionActive)
		if err != nil {
			return err
		}
		for _, auction := range active {
			if !auction.EndTime.After(now) {
				auction.Status = model.AuctionClosed
				auction.UpdatedAt = now.UTC()
				if err := tx.UpdateAuction(auction); err != nil {
					return err
				}
				updated++
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("service: failed to advance auction statuses: %w", err)
	}
	return updated, nil
}
