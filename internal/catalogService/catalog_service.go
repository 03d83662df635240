package catalog

import (
	"fmt"
	"time"

	"github.com/samber/lo"

	"auction-backend/internal/auctionerrors"
	model "auction-backend/internal/models"
	"auction-backend/internal/repository"
	"auction-backend/utils"
)

// Service implements carrier and auction management plus the client-facing
// catalog views. The lifecycle engine owns status transitions and winners;
// this service never changes an auction's status on its own.
type Service struct {
	repo repository.AuctionDB
}

// NewService creates a new catalog Service instance
func NewService(repo repository.AuctionDB) *Service {
	return &Service{
		repo: repo,
	}
}

// CreateCarrier registers a new carrier with a unique name
func (s *Service) CreateCarrier(name string) (model.Carrier, error) {
	if name == "" {
		return model.Carrier{}, fmt.Errorf("service: %w - carrier name required", auctionerrors.ErrInvalidInput)
	}
	carrier := model.Carrier{
		CarrierID: utils.GenerateID(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.CreateCarrier(carrier); err != nil {
		return model.Carrier{}, fmt.Errorf("service: failed to create carrier %s: %w", name, err)
	}
	return carrier, nil
}

// ListCarriers returns all carriers
func (s *Service) ListCarriers() ([]model.Carrier, error) {
	carriers, err := s.repo.ListCarriers()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list carriers: %w", err)
	}
	return carriers, nil
}

// CreateAuctionInput carries the fields for a new auction
type CreateAuctionInput struct {
	Name         string
	CarrierID    string
	StartTime    *time.Time // nil means start immediately
	EndTime      time.Time
	Status       string // empty means scheduled
	GradingGuide string
	IsVisible    bool
}

// UpdateAuctionInput carries optional auction updates; nil fields are unchanged
type UpdateAuctionInput struct {
	Name         *string
	CarrierID    *string
	StartTime    *time.Time
	EndTime      *time.Time
	Status       *string
	GradingGuide *string
	IsVisible    *bool
}

// CreateAuction creates a new auction for an existing carrier
func (s *Service) CreateAuction(input CreateAuctionInput, creatorID string) (model.Auction, error) {
	if input.Name == "" || input.CarrierID == "" || input.EndTime.IsZero() {
		return model.Auction{}, fmt.Errorf("service: %w - name, carrier_id and end_time required", auctionerrors.ErrInvalidInput)
	}
	if _, err := s.repo.GetCarrierByID(input.CarrierID); err != nil {
		return model.Auction{}, fmt.Errorf("service: failed to load carrier %s: %w", input.CarrierID, err)
	}

	now := time.Now().UTC()
	startTime := now
	if input.StartTime != nil {
		startTime = input.StartTime.UTC()
	}
	if !input.EndTime.After(startTime) {
		return model.Auction{}, fmt.Errorf("service: %w - end_time must be after start_time", auctionerrors.ErrInvalidInput)
	}

	auction := model.Auction{
		AuctionID:       utils.GenerateID(),
		CarrierID:       input.CarrierID,
		Name:            input.Name,
		StartTime:       startTime,
		EndTime:         input.EndTime.UTC(),
		Status:          input.Status,
		GradingGuide:    input.GradingGuide,
		IsVisible:       input.IsVisible,
		CreatedByUserID: creatorID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if auction.Status == "" {
		auction.Status = model.AuctionScheduled
	}

	if err := s.repo.CreateAuction(auction); err != nil {
		return model.Auction{}, fmt.Errorf("service: failed to create auction %s: %w", input.Name, err)
	}
	return auction, nil
}

// AuctionOverview is a listing entry with carrier and lot summary fields
type AuctionOverview struct {
	model.Auction
	CarrierName string `json:"carrier_name"`
	LotCount    int    `json:"lot_count"`
}

// AuctionDetail is a full auction view including its lots
type AuctionDetail struct {
	model.Auction
	CarrierName string      `json:"carrier_name"`
	Lots        []model.Lot `json:"lots"`
}

// ListAuctions returns all auctions with carrier names and lot counts,
// newest first
func (s *Service) ListAuctions() ([]AuctionOverview, error) {
	auctions, err := s.repo.ListAuctions()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list auctions: %w", err)
	}
	return s.toOverviews(auctions)
}

// GetAuction returns the full admin view of one auction
func (s *Service) GetAuction(auctionID string) (AuctionDetail, error) {
	auction, err := s.repo.GetAuctionByID(auctionID)
	if err != nil {
		return AuctionDetail{}, fmt.Errorf("service: failed to get auction %s: %w", auctionID, err)
	}
	return s.toDetail(auction)
}

// UpdateAuction applies the non-nil fields of input to an existing auction
func (s *Service) UpdateAuction(auctionID string, input UpdateAuctionInput) (model.Auction, error) {
	auction, err := s.repo.GetAuctionByID(auctionID)
	if err != nil {
		return model.Auction{}, fmt.Errorf("service: failed to get auction %s: %w", auctionID, err)
	}

	if input.Name != nil && *input.Name != "" {
		auction.Name = *input.Name
	}
	if input.CarrierID != nil {
		if _, err := s.repo.GetCarrierByID(*input.CarrierID); err != nil {
			return model.Auction{}, fmt.Errorf("service: failed to load carrier %s: %w", *input.CarrierID, err)
		}
		auction.CarrierID = *input.CarrierID
	}
	if input.StartTime != nil {
		auction.StartTime = input.StartTime.UTC()
	}
	if input.EndTime != nil {
		auction.EndTime = input.EndTime.UTC()
	}
	if !auction.EndTime.After(auction.StartTime) {
		return model.Auction{}, fmt.Errorf("service: %w - end_time must be after start_time", auctionerrors.ErrInvalidInput)
	}
	if input.Status != nil && *input.Status != "" {
		auction.Status = *input.Status
	}
	if input.GradingGuide != nil {
		auction.GradingGuide = *input.GradingGuide
	}
	if input.IsVisible != nil {
		auction.IsVisible = *input.IsVisible
	}
	auction.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpdateAuction(auction); err != nil {
		return model.Auction{}, fmt.Errorf("service: failed to update auction %s: %w", auctionID, err)
	}
	return auction, nil
}

// DeleteAuction removes an auction together with its lots, bids and winners
func (s *Service) DeleteAuction(auctionID string) error {
	if err := s.repo.DeleteAuction(auctionID); err != nil {
		return fmt.Errorf("service: failed to delete auction %s: %w", auctionID, err)
	}
	return nil
}

// BrowseResult is the client-facing auction listing
type BrowseResult struct {
	Auctions  []AuctionOverview       `json:"auctions_list"`
	ByCarrier map[string]CarrierGroup `json:"auctions_by_carrier"`
}

// CarrierGroup collects a carrier's open auctions for the browse view
type CarrierGroup struct {
	CarrierID   string            `json:"carrier_id"`
	CarrierName string            `json:"carrier_name"`
	Auctions    []AuctionOverview `json:"auctions"`
}

// BrowseAuctions returns visible active auctions for clients, soonest-ending
// first, optionally filtered by carrier, plus a by-carrier grouping
func (s *Service) BrowseAuctions(carrierID string) (BrowseResult, error) {
	auctions, err := s.repo.ListVisibleAuctionsByStatus(model.AuctionActive, carrierID)
	if err != nil {
		return BrowseResult{}, fmt.Errorf("service: failed to browse auctions: %w", err)
	}

	overviews, err := s.toOverviews(auctions)
	if err != nil {
		return BrowseResult{}, err
	}

	grouped := lo.GroupBy(overviews, func(o AuctionOverview) string { return o.CarrierName })
	byCarrier := make(map[string]CarrierGroup, len(grouped))
	for name, group := range grouped {
		byCarrier[name] = CarrierGroup{
			CarrierID:   group[0].CarrierID,
			CarrierName: name,
			Auctions:    group,
		}
	}

	return BrowseResult{Auctions: overviews, ByCarrier: byCarrier}, nil
}

// GetClientAuction returns the client view of one auction; auctions that are
// not active and visible are indistinguishable from missing ones
func (s *Service) GetClientAuction(auctionID string) (AuctionDetail, error) {
	auction, err := s.repo.GetAuctionByID(auctionID)
	if err != nil {
		return AuctionDetail{}, fmt.Errorf("service: failed to get auction %s: %w", auctionID, err)
	}
	if auction.Status != model.AuctionActive || !auction.IsVisible {
		return AuctionDetail{}, fmt.Errorf("service: auction %s is not open to clients: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return s.toDetail(auction)
}

// BidSummary is one entry of a client's bid history
type BidSummary struct {
	model.Bid
	LotIdentifier  string    `json:"lot_identifier"`
	DeviceName     string    `json:"device_name"`
	AuctionID      string    `json:"auction_id"`
	AuctionName    string    `json:"auction_name"`
	AuctionStatus  string    `json:"auction_status"`
	AuctionEndTime time.Time `json:"auction_end_time"`
}

// MyBids returns the caller's bids, newest first, with lot and auction context
func (s *Service) MyBids(userID string) ([]BidSummary, error) {
	if userID == "" {
		return nil, fmt.Errorf("service: %w - empty user ID", auctionerrors.ErrInvalidInput)
	}
	bids, err := s.repo.ListBidsByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list bids for user %s: %w", userID, err)
	}

	summaries := make([]BidSummary, 0, len(bids))
	for _, bid := range bids {
		lot, err := s.repo.GetLotByID(bid.LotID)
		if err != nil {
			return nil, fmt.Errorf("service: failed to load lot %s: %w", bid.LotID, err)
		}
		auction, err := s.repo.GetAuctionByID(lot.AuctionID)
		if err != nil {
			return nil, fmt.Errorf("service: failed to load auction %s: %w", lot.AuctionID, err)
		}
		summaries = append(summaries, BidSummary{
			Bid:            bid,
			LotIdentifier:  lot.LotIdentifier,
			DeviceName:     lot.DeviceName,
			AuctionID:      auction.AuctionID,
			AuctionName:    auction.Name,
			AuctionStatus:  auction.Status,
			AuctionEndTime: auction.EndTime,
		})
	}
	return summaries, nil
}

// WinSummary is one entry of a client's won-lots listing
type WinSummary struct {
	model.AuctionWinner
	LotIdentifier  string    `json:"lot_identifier"`
	DeviceName     string    `json:"device_name"`
	DeviceDetails  string    `json:"device_details"`
	ImageURL       string    `json:"image_url"`
	AuctionName    string    `json:"auction_name"`
	AuctionEndTime time.Time `json:"auction_end_time"`
	WinningBidTime time.Time `json:"winning_bid_time"`
}

// MyWins returns the lots the caller has won, most recent first
func (s *Service) MyWins(userID string) ([]WinSummary, error) {
	if userID == "" {
		return nil, fmt.Errorf("service: %w - empty user ID", auctionerrors.ErrInvalidInput)
	}
	winners, err := s.repo.ListWinnersByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list wins for user %s: %w", userID, err)
	}

	summaries := make([]WinSummary, 0, len(winners))
	for _, winner := range winners {
		lot, err := s.repo.GetLotByID(winner.LotID)
		if err != nil {
			return nil, fmt.Errorf("service: failed to load lot %s: %w", winner.LotID, err)
		}
		auction, err := s.repo.GetAuctionByID(lot.AuctionID)
		if err != nil {
			return nil, fmt.Errorf("service: failed to load auction %s: %w", lot.AuctionID, err)
		}
		bid, err := s.repo.GetBidByID(winner.WinningBidID)
		if err != nil {
			return nil, fmt.Errorf("service: failed to load bid %s: %w", winner.WinningBidID, err)
		}
		summaries = append(summaries, WinSummary{
			AuctionWinner:  winner,
			LotIdentifier:  lot.LotIdentifier,
			DeviceName:     lot.DeviceName,
			DeviceDetails:  lot.DeviceDetails,
			ImageURL:       lot.ImageURL,
			AuctionName:    auction.Name,
			AuctionEndTime: auction.EndTime,
			WinningBidTime: bid.BidTime,
		})
	}
	return summaries, nil
}

// toOverviews decorates auctions with carrier names and lot counts
func (s *Service) toOverviews(auctions []model.Auction) ([]AuctionOverview, error) {
	carriers, err := s.repo.ListCarriers()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list carriers: %w", err)
	}
	names := lo.SliceToMap(carriers, func(c model.Carrier) (string, string) { return c.CarrierID, c.Name })

	overviews := make([]AuctionOverview, 0, len(auctions))
	for _, auction := range auctions {
		lots, err := s.repo.ListLotsByAuction(auction.AuctionID)
		if err != nil {
			return nil, fmt.Errorf("service: failed to list lots for auction %s: %w", auction.AuctionID, err)
		}
		overviews = append(overviews, AuctionOverview{
			Auction:     auction,
			CarrierName: names[auction.CarrierID],
			LotCount:    len(lots),
		})
	}
	return overviews, nil
}

// toDetail decorates one auction with its carrier name and lots
func (s *Service) toDetail(auction model.Auction) (AuctionDetail, error) {
	carrier, err := s.repo.GetCarrierByID(auction.CarrierID)
	if err != nil {
		return AuctionDetail{}, fmt.Errorf("service: failed to load carrier %s: %w", auction.CarrierID, err)
	}
	lots, err := s.repo.ListLotsByAuction(auction.AuctionID)
	if err != nil {
		return AuctionDetail{}, fmt.Errorf("service: failed to list lots for auction %s: %w", auction.AuctionID, err)
	}
	return AuctionDetail{
		Auction:     auction,
		CarrierName: carrier.Name,
		Lots:        lots,
	}, nil
}
