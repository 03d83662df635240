package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"auction-backend/internal/auctionerrors"
	model "auction-backend/internal/models"
)

// GormRepo is the PostgreSQL implementation of AuctionDB on top of gorm.
// The database must be opened with TranslateError enabled so uniqueness
// violations surface as gorm.ErrDuplicatedKey.
type GormRepo struct {
	db *gorm.DB
}

// NewGormRepo creates a repository over an opened gorm connection
func NewGormRepo(db *gorm.DB) *GormRepo {
	return &GormRepo{db: db}
}

// AutoMigrate creates or updates the schema for all marketplace tables
func (r *GormRepo) AutoMigrate() error {
	return r.db.AutoMigrate(
		&model.User{},
		&model.Carrier{},
		&model.Auction{},
		&model.Lot{},
		&model.Bid{},
		&model.AuctionWinner{},
	)
}

// WithinTx runs fn inside a database transaction
func (r *GormRepo) WithinTx(fn func(tx AuctionDB) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&GormRepo{db: tx})
	})
}

// translate maps gorm errors onto the domain error taxonomy
func translate(err error, notFound error, context string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", context, notFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s: %w", context, auctionerrors.ErrConstraintViolation)
	default:
		return fmt.Errorf("%s: %w", context, err)
	}
}

// CreateUser inserts a user row
func (r *GormRepo) CreateUser(user model.User) error {
	err := r.db.Create(&user).Error
	return translate(err, auctionerrors.ErrUserNotFound, fmt.Sprintf("create user %s", user.Email))
}

// GetUserByID loads a user by primary key
func (r *GormRepo) GetUserByID(userID string) (model.User, error) {
	var user model.User
	err := r.db.First(&user, "user_id = ?", userID).Error
	return user, translate(err, auctionerrors.ErrUserNotFound, fmt.Sprintf("get user %s", userID))
}

// GetUserByEmail loads a user by email
func (r *GormRepo) GetUserByEmail(email string) (model.User, error) {
	var user model.User
	err := r.db.First(&user, "email = ?", email).Error
	return user, translate(err, auctionerrors.ErrUserNotFound, fmt.Sprintf("get user by email %s", email))
}

// UpdateUser saves the full user row
func (r *GormRepo) UpdateUser(user model.User) error {
	res := r.db.Model(&model.User{}).Where("user_id = ?", user.UserID).Select("*").Updates(user)
	if res.Error != nil {
		return translate(res.Error, auctionerrors.ErrUserNotFound, fmt.Sprintf("update user %s", user.UserID))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update user %s: %w", user.UserID, auctionerrors.ErrUserNotFound)
	}
	return nil
}

// DeleteUser removes a user row
func (r *GormRepo) DeleteUser(userID string) error {
	res := r.db.Delete(&model.User{}, "user_id = ?", userID)
	if res.Error != nil {
		return translate(res.Error, auctionerrors.ErrUserNotFound, fmt.Sprintf("delete user %s", userID))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete user %s: %w", userID, auctionerrors.ErrUserNotFound)
	}
	return nil
}

// ListUsers returns all users ordered by creation time
func (r *GormRepo) ListUsers() ([]model.User, error) {
	var users []model.User
	err := r.db.Order("created_at ASC").Find(&users).Error
	return users, translate(err, auctionerrors.ErrUserNotFound, "list users")
}

// CreateCarrier inserts a carrier row
func (r *GormRepo) CreateCarrier(carrier model.Carrier) error {
	err := r.db.Create(&carrier).Error
	return translate(err, auctionerrors.ErrCarrierNotFound, fmt.Sprintf("create carrier %s", carrier.Name))
}

// GetCarrierByID loads a carrier by primary key
func (r *GormRepo) GetCarrierByID(carrierID string) (model.Carrier, error) {
	var carrier model.Carrier
	err := r.db.First(&carrier, "carrier_id = ?", carrierID).Error
	return carrier, translate(err, auctionerrors.ErrCarrierNotFound, fmt.Sprintf("get carrier %s", carrierID))
}

// ListCarriers returns all carriers ordered by name
func (r *GormRepo) ListCarriers() ([]model.Carrier, error) {
	var carriers []model.Carrier
	err := r.db.Order("name ASC").Find(&carriers).Error
	return carriers, translate(err, auctionerrors.ErrCarrierNotFound, "list carriers")
}

// CreateAuction inserts an auction row
func (r *GormRepo) CreateAuction(auction model.Auction) error {
	err := r.db.Create(&auction).Error
	return translate(err, auctionerrors.ErrAuctionNotFound, fmt.Sprintf("create auction %s", auction.Name))
}

// GetAuctionByID loads an auction by primary key
func (r *GormRepo) GetAuctionByID(auctionID string) (model.Auction, error) {
	var auction model.Auction
	err := r.db.First(&auction, "auction_id = ?", auctionID).Error
	return auction, translate(err, auctionerrors.ErrAuctionNotFound, fmt.Sprintf("get auction %s", auctionID))
}

// UpdateAuction saves the full auction row
func (r *GormRepo) UpdateAuction(auction model.Auction) error {
	res := r.db.Model(&model.Auction{}).Where("auction_id = ?", auction.AuctionID).Select("*").Updates(auction)
	if res.Error != nil {
		return translate(res.Error, auctionerrors.ErrAuctionNotFound, fmt.Sprintf("update auction %s", auction.AuctionID))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update auction %s: %w", auction.AuctionID, auctionerrors.ErrAuctionNotFound)
	}
	return nil
}

// DeleteAuction removes an auction and cascades to its lots, bids and winners
func (r *GormRepo) DeleteAuction(auctionID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		lotIDs := tx.Model(&model.Lot{}).Select("lot_id").Where("auction_id = ?", auctionID)
		if err := tx.Where("lot_id IN (?)", lotIDs).Delete(&model.Bid{}).Error; err != nil {
			return fmt.Errorf("delete auction %s bids: %w", auctionID, err)
		}
		if err := tx.Where("lot_id IN (?)", lotIDs).Delete(&model.AuctionWinner{}).Error; err != nil {
			return fmt.Errorf("delete auction %s winners: %w", auctionID, err)
		}
		if err := tx.Where("auction_id = ?", auctionID).Delete(&model.Lot{}).Error; err != nil {
			return fmt.Errorf("delete auction %s lots: %w", auctionID, err)
		}
		res := tx.Delete(&model.Auction{}, "auction_id = ?", auctionID)
		if res.Error != nil {
			return fmt.Errorf("delete auction %s: %w", auctionID, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("delete auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
		}
		return nil
	})
}

// ListAuctions returns all auctions, newest first
func (r *GormRepo) ListAuctions() ([]model.Auction, error) {
	var auctions []model.Auction
	err := r.db.Order("created_at DESC").Find(&auctions).Error
	return auctions, translate(err, auctionerrors.ErrAuctionNotFound, "list auctions")
}

// ListAuctionsByStatus returns all auctions with the given status, newest first
func (r *GormRepo) ListAuctionsByStatus(status string) ([]model.Auction, error) {
	var auctions []model.Auction
	err := r.db.Where("status = ?", status).Order("created_at DESC").Find(&auctions).Error
	return auctions, translate(err, auctionerrors.ErrAuctionNotFound, fmt.Sprintf("list auctions with status %s", status))
}

// ListVisibleAuctionsByStatus returns visible auctions with the given status,
// optionally filtered by carrier, ordered by end time ascending
func (r *GormRepo) ListVisibleAuctionsByStatus(status, carrierID string) ([]model.Auction, error) {
	q := r.db.Where("status = ? AND is_visible = ?", status, true)
	if carrierID != "" {
		q = q.Where("carrier_id = ?", carrierID)
	}
	var auctions []model.Auction
	err := q.Order("end_time ASC").Find(&auctions).Error
	return auctions, translate(err, auctionerrors.ErrAuctionNotFound, "list visible auctions")
}

// CreateLot inserts a lot row; duplicate identifiers within an auction are
// rejected by the unique index
func (r *GormRepo) CreateLot(lot model.Lot) error {
	err := r.db.Create(&lot).Error
	return translate(err, auctionerrors.ErrLotNotFound, fmt.Sprintf("create lot %s", lot.LotIdentifier))
}

// GetLotByID loads a lot by primary key
func (r *GormRepo) GetLotByID(lotID string) (model.Lot, error) {
	var lot model.Lot
	err := r.db.First(&lot, "lot_id = ?", lotID).Error
	return lot, translate(err, auctionerrors.ErrLotNotFound, fmt.Sprintf("get lot %s", lotID))
}

// ListLotsByAuction returns all lots of an auction ordered by lot identifier
func (r *GormRepo) ListLotsByAuction(auctionID string) ([]model.Lot, error) {
	var lots []model.Lot
	err := r.db.Where("auction_id = ?", auctionID).Order("lot_identifier ASC").Find(&lots).Error
	return lots, translate(err, auctionerrors.ErrLotNotFound, fmt.Sprintf("list lots for auction %s", auctionID))
}

// UpsertBid inserts the bid or, when a row for the same (lot, user) already
// exists, overwrites its amount, time and status in place. The conflict
// target is the unique index on (lot_id, user_id), which makes concurrent
// submissions race-free. The stored row is returned.
func (r *GormRepo) UpsertBid(bid model.Bid) (model.Bid, error) {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "lot_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"bid_amount", "bid_time", "status"}),
	}).Create(&bid).Error
	if err != nil {
		return model.Bid{}, translate(err, auctionerrors.ErrBidNotFound, fmt.Sprintf("upsert bid for lot %s", bid.LotID))
	}

	var stored model.Bid
	err = r.db.First(&stored, "lot_id = ? AND user_id = ?", bid.LotID, bid.UserID).Error
	return stored, translate(err, auctionerrors.ErrBidNotFound, fmt.Sprintf("reload bid for lot %s", bid.LotID))
}

// GetBidByID loads a bid by primary key
func (r *GormRepo) GetBidByID(bidID string) (model.Bid, error) {
	var bid model.Bid
	err := r.db.First(&bid, "bid_id = ?", bidID).Error
	return bid, translate(err, auctionerrors.ErrBidNotFound, fmt.Sprintf("get bid %s", bidID))
}

// ListBidsByLot returns all bids on a lot
func (r *GormRepo) ListBidsByLot(lotID string) ([]model.Bid, error) {
	var bids []model.Bid
	err := r.db.Where("lot_id = ?", lotID).Order("bid_id ASC").Find(&bids).Error
	return bids, translate(err, auctionerrors.ErrBidNotFound, fmt.Sprintf("list bids for lot %s", lotID))
}

// ListBidsByUser returns all bids placed by a user, newest first
func (r *GormRepo) ListBidsByUser(userID string) ([]model.Bid, error) {
	var bids []model.Bid
	err := r.db.Where("user_id = ?", userID).Order("bid_time DESC").Find(&bids).Error
	return bids, translate(err, auctionerrors.ErrBidNotFound, fmt.Sprintf("list bids for user %s", userID))
}

// UpdateBidStatus reclassifies a single bid
func (r *GormRepo) UpdateBidStatus(bidID, status string) error {
	res := r.db.Model(&model.Bid{}).Where("bid_id = ?", bidID).Update("status", status)
	if res.Error != nil {
		return translate(res.Error, auctionerrors.ErrBidNotFound, fmt.Sprintf("update bid %s", bidID))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update bid %s: %w", bidID, auctionerrors.ErrBidNotFound)
	}
	return nil
}

// CreateWinner inserts a winner row; the unique index on lot_id guarantees
// at most one winner per lot even under concurrent determination runs
func (r *GormRepo) CreateWinner(winner model.AuctionWinner) error {
	err := r.db.Create(&winner).Error
	return translate(err, auctionerrors.ErrWinnerNotFound, fmt.Sprintf("create winner for lot %s", winner.LotID))
}

// DeleteWinnerByLot removes the winner row for a lot, if any
func (r *GormRepo) DeleteWinnerByLot(lotID string) error {
	err := r.db.Where("lot_id = ?", lotID).Delete(&model.AuctionWinner{}).Error
	return translate(err, auctionerrors.ErrWinnerNotFound, fmt.Sprintf("delete winner for lot %s", lotID))
}

// GetWinnerByLot loads the winner row for a lot
func (r *GormRepo) GetWinnerByLot(lotID string) (model.AuctionWinner, error) {
	var winner model.AuctionWinner
	err := r.db.First(&winner, "lot_id = ?", lotID).Error
	return winner, translate(err, auctionerrors.ErrWinnerNotFound, fmt.Sprintf("get winner for lot %s", lotID))
}

// ListWinnersByUser returns all lots won by a user, most recent first
func (r *GormRepo) ListWinnersByUser(userID string) ([]model.AuctionWinner, error) {
	var winners []model.AuctionWinner
	err := r.db.Where("user_id = ?", userID).Order("awarded_at DESC").Find(&winners).Error
	return winners, translate(err, auctionerrors.ErrWinnerNotFound, fmt.Sprintf("list winners for user %s", userID))
}
