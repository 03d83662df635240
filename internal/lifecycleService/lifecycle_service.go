package lifecycle

import (
	"auction-backend/internal/repository"
)

// Service implements the auction lifecycle engine: sealed-bid submission,
// wall-clock status advancement and winner determination. All state lives in
// the repository; the service owns no clock and is driven by the caller's
// `now` so that every operation is externally triggered and testable.
type Service struct {
	repo repository.AuctionDB
}

// NewService creates a new lifecycle Service instance
func NewService(repo repository.AuctionDB) *Service {
	return &Service{
		repo: repo,
	}
}
