package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// User roles
const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

// Deposit statuses gating client bidding
const (
	DepositPending = "pending"
	DepositOnFile  = "on_file"
	DepositCleared = "cleared"
)

// Auction statuses
const (
	AuctionScheduled = "scheduled"
	AuctionActive    = "active"
	AuctionClosed    = "closed"
	AuctionCancelled = "cancelled"
)

// Bid statuses
const (
	BidActive    = "active"
	BidWinning   = "winning"
	BidOutbid    = "outbid"
	BidLost      = "lost"
	BidCancelled = "cancelled"
)

// User represents an account in the marketplace (admin or client)
type User struct {
	UserID        string     `json:"user_id" gorm:"primaryKey"`
	Email         string     `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash  string     `json:"-" gorm:"not null"`
	CompanyName   string     `json:"company_name"`
	Role          string     `json:"role" gorm:"not null;default:client"`
	DepositStatus string     `json:"deposit_status" gorm:"default:pending"`
	IsActive      bool       `json:"is_active" gorm:"default:true"`
	CreatedAt     time.Time  `json:"created_at"`
	LastLogin     *time.Time `json:"last_login"`
}

// Carrier represents a device carrier whose stock is auctioned
type Carrier struct {
	CarrierID string    `json:"carrier_id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
}

// Auction represents a sealed-bid auction for a carrier's lots
type Auction struct {
	AuctionID       string    `json:"auction_id" gorm:"primaryKey"`
	CarrierID       string    `json:"carrier_id" gorm:"index;not null"`
	Name            string    `json:"name" gorm:"not null"`
	StartTime       time.Time `json:"start_time" gorm:"type:timestamp with time zone;not null"`
	EndTime         time.Time `json:"end_time" gorm:"type:timestamp with time zone;not null"`
	Status          string    `json:"status" gorm:"default:scheduled"`
	GradingGuide    string    `json:"grading_guide"`
	IsVisible       bool      `json:"is_visible" gorm:"default:false"`
	CreatedByUserID string    `json:"created_by_user_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Lot represents a single biddable item group within an auction.
// LotIdentifier is the spreadsheet-supplied key, unique within its auction.
type Lot struct {
	LotID         string          `json:"lot_id" gorm:"primaryKey"`
	AuctionID     string          `json:"auction_id" gorm:"uniqueIndex:idx_lot_auction_identifier;not null"`
	LotIdentifier string          `json:"lot_identifier" gorm:"uniqueIndex:idx_lot_auction_identifier;not null"`
	DeviceName    string          `json:"device_name" gorm:"not null"`
	DeviceDetails string          `json:"device_details"`
	ImageURL      string          `json:"image_url"`
	Condition     string          `json:"condition"`
	Quantity      int             `json:"quantity" gorm:"default:1"`
	MinBid        decimal.Decimal `json:"min_bid" gorm:"type:decimal(10,2);default:0.00"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// Bid represents a client's sealed bid on a lot.
// Exactly one row exists per (lot, user); resubmission overwrites it.
type Bid struct {
	BidID     string          `json:"bid_id" gorm:"primaryKey"`
	LotID     string          `json:"lot_id" gorm:"uniqueIndex:idx_bid_lot_user;not null"`
	UserID    string          `json:"user_id" gorm:"uniqueIndex:idx_bid_lot_user;not null"`
	BidAmount decimal.Decimal `json:"bid_amount" gorm:"type:decimal(10,2);not null"`
	BidTime   time.Time       `json:"bid_time" gorm:"type:timestamp with time zone"`
	Status    string          `json:"status" gorm:"default:active"`
}

// AuctionWinner records the winning bid for a lot; at most one row per lot
type AuctionWinner struct {
	WinnerID      string          `json:"winner_id" gorm:"primaryKey"`
	LotID         string          `json:"lot_id" gorm:"uniqueIndex;not null"`
	UserID        string          `json:"user_id" gorm:"index;not null"`
	WinningBidID  string          `json:"winning_bid_id" gorm:"uniqueIndex;not null"`
	WinningAmount decimal.Decimal `json:"winning_amount" gorm:"type:decimal(10,2);not null"`
	AwardedAt     time.Time       `json:"awarded_at" gorm:"type:timestamp with time zone"`
}
