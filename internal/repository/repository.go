package repository

import (
	model "auction-backend/internal/models"
)

// AuctionDB defines the persistence interface consumed by the services.
// Every top-level operation runs inside WithinTx so that either all of its
// writes land or none do; implementations back the bid upsert and the
// winner-per-lot rule with uniqueness constraints, not application checks.
type AuctionDB interface {
	// WithinTx runs fn against a transactional view of the store.
	// Returning an error from fn rolls the transaction back.
	WithinTx(fn func(tx AuctionDB) error) error

	// Users
	CreateUser(user model.User) error
	GetUserByID(userID string) (model.User, error)
	GetUserByEmail(email string) (model.User, error)
	UpdateUser(user model.User) error
	DeleteUser(userID string) error
	ListUsers() ([]model.User, error)

	// Carriers
	CreateCarrier(carrier model.Carrier) error
	GetCarrierByID(carrierID string) (model.Carrier, error)
	ListCarriers() ([]model.Carrier, error)

	// Auctions
	CreateAuction(auction model.Auction) error
	GetAuctionByID(auctionID string) (model.Auction, error)
	UpdateAuction(auction model.Auction) error
	DeleteAuction(auctionID string) error
	ListAuctions() ([]model.Auction, error)
	ListAuctionsByStatus(status string) ([]model.Auction, error)
	ListVisibleAuctionsByStatus(status, carrierID string) ([]model.Auction, error)

	// Lots
	CreateLot(lot model.Lot) error
	GetLotByID(lotID string) (model.Lot, error)
	ListLotsByAuction(auctionID string) ([]model.Lot, error)

	// Bids
	UpsertBid(bid model.Bid) (model.Bid, error)
	GetBidByID(bidID string) (model.Bid, error)
	ListBidsByLot(lotID string) ([]model.Bid, error)
	ListBidsByUser(userID string) ([]model.Bid, error)
	UpdateBidStatus(bidID, status string) error

	// Winners
	CreateWinner(winner model.AuctionWinner) error
	DeleteWinnerByLot(lotID string) error
	GetWinnerByLot(lotID string) (model.AuctionWinner, error)
	ListWinnersByUser(userID string) ([]model.AuctionWinner, error)
}
