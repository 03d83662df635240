package repository

import (
	"fmt"
	"sort"
	"sync"

	"auction-backend/internal/auctionerrors"
	model "auction-backend/internal/models"
)

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionDB.
// It backs tests and the no-database development mode. WithinTx serializes
// callers but provides no rollback; the gorm implementation is the one with
// real transactional semantics.
type MemoryRepo struct {
	txMu sync.Mutex // serializes WithinTx blocks as a whole
	mu   sync.RWMutex

	users        map[string]model.User   // key: userID
	usersByEmail map[string]string       // key: email -> userID
	carriers     map[string]model.Carrier
	auctions     map[string]model.Auction
	lots         map[string]model.Lot
	bids         map[string]model.Bid
	bidByLotUser map[string]map[string]string   // lotID -> userID -> bidID
	winners      map[string]model.AuctionWinner // key: lotID
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		users:        make(map[string]model.User),
		usersByEmail: make(map[string]string),
		carriers:     make(map[string]model.Carrier),
		auctions:     make(map[string]model.Auction),
		lots:         make(map[string]model.Lot),
		bids:         make(map[string]model.Bid),
		bidByLotUser: make(map[string]map[string]string),
		winners:      make(map[string]model.AuctionWinner),
	}
}

// WithinTx runs fn while holding the transaction mutex, so two WithinTx
// blocks never interleave between statements. Plain repo calls outside a
// transaction are not excluded, and there is no rollback on error.
func (r *MemoryRepo) WithinTx(fn func(tx AuctionDB) error) error {
	r.txMu.Lock()
	defer r.txMu.Unlock()
	return fn(r)
}

// CreateUser stores a new user; the email must be unused
func (r *MemoryRepo) CreateUser(user model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.usersByEmail[user.Email]; ok {
		return fmt.Errorf("create user %s: %w", user.Email, auctionerrors.ErrConstraintViolation)
	}
	r.users[user.UserID] = user
	r.usersByEmail[user.Email] = user.UserID
	return nil
}

// GetUserByID returns the user with the given ID
func (r *MemoryRepo) GetUserByID(userID string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userID]
	if !ok {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, auctionerrors.ErrUserNotFound)
	}
	return user, nil
}

// GetUserByEmail returns the user with the given email
func (r *MemoryRepo) GetUserByEmail(email string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	userID, ok := r.usersByEmail[email]
	if !ok {
		return model.User{}, fmt.Errorf("get user by email %s: %w", email, auctionerrors.ErrUserNotFound)
	}
	return r.users[userID], nil
}

// UpdateUser overwrites an existing user record
func (r *MemoryRepo) UpdateUser(user model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.users[user.UserID]
	if !ok {
		return fmt.Errorf("update user %s: %w", user.UserID, auctionerrors.ErrUserNotFound)
	}
	if existing.Email != user.Email {
		if _, taken := r.usersByEmail[user.Email]; taken {
			return fmt.Errorf("update user %s: %w", user.UserID, auctionerrors.ErrConstraintViolation)
		}
		delete(r.usersByEmail, existing.Email)
		r.usersByEmail[user.Email] = user.UserID
	}
	r.users[user.UserID] = user
	return nil
}

// DeleteUser removes a user record
func (r *MemoryRepo) DeleteUser(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return fmt.Errorf("delete user %s: %w", userID, auctionerrors.ErrUserNotFound)
	}
	delete(r.usersByEmail, user.Email)
	delete(r.users, userID)
	return nil
}

// ListUsers returns all users ordered by creation time
func (r *MemoryRepo) ListUsers() ([]model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.Before(users[j].CreatedAt) })
	return users, nil
}

// CreateCarrier stores a new carrier; the name must be unused
func (r *MemoryRepo) CreateCarrier(carrier model.Carrier) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.carriers {
		if c.Name == carrier.Name {
			return fmt.Errorf("create carrier %s: %w", carrier.Name, auctionerrors.ErrConstraintViolation)
		}
	}
	r.carriers[carrier.CarrierID] = carrier
	return nil
}

// GetCarrierByID returns the carrier with the given ID
func (r *MemoryRepo) GetCarrierByID(carrierID string) (model.Carrier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	carrier, ok := r.carriers[carrierID]
	if !ok {
		return model.Carrier{}, fmt.Errorf("get carrier %s: %w", carrierID, auctionerrors.ErrCarrierNotFound)
	}
	return carrier, nil
}

// ListCarriers returns all carriers ordered by name
func (r *MemoryRepo) ListCarriers() ([]model.Carrier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	carriers := make([]model.Carrier, 0, len(r.carriers))
	for _, c := range r.carriers {
		carriers = append(carriers, c)
	}
	sort.Slice(carriers, func(i, j int) bool { return carriers[i].Name < carriers[j].Name })
	return carriers, nil
}

// CreateAuction stores a new auction
func (r *MemoryRepo) CreateAuction(auction model.Auction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.auctions[auction.AuctionID] = auction
	return nil
}

// GetAuctionByID returns the auction with the given ID
func (r *MemoryRepo) GetAuctionByID(auctionID string) (model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	auction, ok := r.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return auction, nil
}

// UpdateAuction overwrites an existing auction record
func (r *MemoryRepo) UpdateAuction(auction model.Auction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[auction.AuctionID]; !ok {
		return fmt.Errorf("update auction %s: %w", auction.AuctionID, auctionerrors.ErrAuctionNotFound)
	}
	r.auctions[auction.AuctionID] = auction
	return nil
}

// DeleteAuction removes an auction and cascades to its lots, bids and winners
func (r *MemoryRepo) DeleteAuction(auctionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[auctionID]; !ok {
		return fmt.Errorf("delete auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	for lotID, lot := range r.lots {
		if lot.AuctionID != auctionID {
			continue
		}
		for _, bidID := range r.bidByLotUser[lotID] {
			delete(r.bids, bidID)
		}
		delete(r.bidByLotUser, lotID)
		delete(r.winners, lotID)
		delete(r.lots, lotID)
	}
	delete(r.auctions, auctionID)
	return nil
}

// ListAuctions returns all auctions, newest first
func (r *MemoryRepo) ListAuctions() ([]model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	auctions := make([]model.Auction, 0, len(r.auctions))
	for _, a := range r.auctions {
		auctions = append(auctions, a)
	}
	sortAuctionsNewestFirst(auctions)
	return auctions, nil
}

// ListAuctionsByStatus returns all auctions with the given status, newest first
func (r *MemoryRepo) ListAuctionsByStatus(status string) ([]model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var auctions []model.Auction
	for _, a := range r.auctions {
		if a.Status == status {
			auctions = append(auctions, a)
		}
	}
	sortAuctionsNewestFirst(auctions)
	return auctions, nil
}

// ListVisibleAuctionsByStatus returns visible auctions with the given status,
// optionally filtered by carrier, ordered by end time ascending
func (r *MemoryRepo) ListVisibleAuctionsByStatus(status, carrierID string) ([]model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var auctions []model.Auction
	for _, a := range r.auctions {
		if a.Status != status || !a.IsVisible {
			continue
		}
		if carrierID != "" && a.CarrierID != carrierID {
			continue
		}
		auctions = append(auctions, a)
	}
	sort.Slice(auctions, func(i, j int) bool { return auctions[i].EndTime.Before(auctions[j].EndTime) })
	return auctions, nil
}

// CreateLot stores a new lot; the identifier must be unused within the auction
func (r *MemoryRepo) CreateLot(lot model.Lot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, l := range r.lots {
		if l.AuctionID == lot.AuctionID && l.LotIdentifier == lot.LotIdentifier {
			return fmt.Errorf("create lot %s: %w", lot.LotIdentifier, auctionerrors.ErrConstraintViolation)
		}
	}
	r.lots[lot.LotID] = lot
	return nil
}

// GetLotByID returns the lot with the given ID
func (r *MemoryRepo) GetLotByID(lotID string) (model.Lot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lot, ok := r.lots[lotID]
	if !ok {
		return model.Lot{}, fmt.Errorf("get lot %s: %w", lotID, auctionerrors.ErrLotNotFound)
	}
	return lot, nil
}

// ListLotsByAuction returns all lots of an auction ordered by lot identifier
func (r *MemoryRepo) ListLotsByAuction(auctionID string) ([]model.Lot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var lots []model.Lot
	for _, l := range r.lots {
		if l.AuctionID == auctionID {
			lots = append(lots, l)
		}
	}
	sort.Slice(lots, func(i, j int) bool { return lots[i].LotIdentifier < lots[j].LotIdentifier })
	return lots, nil
}

// UpsertBid stores the bid, overwriting any existing row for the same
// (lot, user) pair in place. The original BidID survives an overwrite.
func (r *MemoryRepo) UpsertBid(bid model.Bid) (model.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	byUser, ok := r.bidByLotUser[bid.LotID]
	if !ok {
		byUser = make(map[string]string)
		r.bidByLotUser[bid.LotID] = byUser
	}

	if existingID, exists := byUser[bid.UserID]; exists {
		existing := r.bids[existingID]
		existing.BidAmount = bid.BidAmount
		existing.BidTime = bid.BidTime
		existing.Status = bid.Status
		r.bids[existingID] = existing
		return existing, nil
	}

	r.bids[bid.BidID] = bid
	byUser[bid.UserID] = bid.BidID
	return bid, nil
}

// GetBidByID returns the bid with the given ID
func (r *MemoryRepo) GetBidByID(bidID string) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bid, ok := r.bids[bidID]
	if !ok {
		return model.Bid{}, fmt.Errorf("get bid %s: %w", bidID, auctionerrors.ErrBidNotFound)
	}
	return bid, nil
}

// ListBidsByLot returns all bids on a lot
func (r *MemoryRepo) ListBidsByLot(lotID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var bids []model.Bid
	for _, bidID := range r.bidByLotUser[lotID] {
		bids = append(bids, r.bids[bidID])
	}
	sort.Slice(bids, func(i, j int) bool { return bids[i].BidID < bids[j].BidID })
	return bids, nil
}

// ListBidsByUser returns all bids placed by a user, newest first
func (r *MemoryRepo) ListBidsByUser(userID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var bids []model.Bid
	for _, b := range r.bids {
		if b.UserID == userID {
			bids = append(bids, b)
		}
	}
	sort.Slice(bids, func(i, j int) bool { return bids[i].BidTime.After(bids[j].BidTime) })
	return bids, nil
}

// UpdateBidStatus reclassifies a single bid
func (r *MemoryRepo) UpdateBidStatus(bidID, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	bid, ok := r.bids[bidID]
	if !ok {
		return fmt.Errorf("update bid %s: %w", bidID, auctionerrors.ErrBidNotFound)
	}
	bid.Status = status
	r.bids[bidID] = bid
	return nil
}

// CreateWinner stores a winner row; the lot must not already have one
func (r *MemoryRepo) CreateWinner(winner model.AuctionWinner) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.winners[winner.LotID]; ok {
		return fmt.Errorf("create winner for lot %s: %w", winner.LotID, auctionerrors.ErrConstraintViolation)
	}
	r.winners[winner.LotID] = winner
	return nil
}

// DeleteWinnerByLot removes the winner row for a lot, if any
func (r *MemoryRepo) DeleteWinnerByLot(lotID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.winners, lotID)
	return nil
}

// GetWinnerByLot returns the winner row for a lot
func (r *MemoryRepo) GetWinnerByLot(lotID string) (model.AuctionWinner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	winner, ok := r.winners[lotID]
	if !ok {
		return model.AuctionWinner{}, fmt.Errorf("get winner for lot %s: %w", lotID, auctionerrors.ErrWinnerNotFound)
	}
	return winner, nil
}

// ListWinnersByUser returns all lots won by a user, most recent first
func (r *MemoryRepo) ListWinnersByUser(userID string) ([]model.AuctionWinner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var winners []model.AuctionWinner
	for _, w := range r.winners {
		if w.UserID == userID {
			winners = append(winners, w)
		}
	}
	sort.Slice(winners, func(i, j int) bool { return winners[i].AwardedAt.After(winners[j].AwardedAt) })
	return winners, nil
}

func sortAuctionsNewestFirst(auctions []model.Auction) {
	sort.Slice(auctions, func(i, j int) bool { return auctions[i].CreatedAt.After(auctions[j].CreatedAt) })
}
