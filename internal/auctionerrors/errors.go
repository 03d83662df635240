package auctionerrors

import "errors"

// Lookup errors
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrCarrierNotFound = errors.New("carrier not found")
	ErrAuctionNotFound = errors.New("auction not found")
	ErrLotNotFound     = errors.New("lot not found")
	ErrBidNotFound     = errors.New("bid not found")
	ErrWinnerNotFound  = errors.New("winner not found")
)

// Bid ledger errors
var (
	ErrInvalidAmount  = errors.New("bid amount must be a positive value")
	ErrBelowMinimum   = errors.New("bid amount below lot minimum")
	ErrAuctionNotOpen = errors.New("auction is not open for bidding")
)

// Winner determination errors
var (
	ErrAuctionNotClosed = errors.New("winners can only be determined for closed auctions")
)

// Account and eligibility errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("account is inactive")
	ErrDepositRequired    = errors.New("deposit is not on file or cleared")
	ErrProtectedAccount   = errors.New("account cannot be deleted")
)

// Validation and persistence errors
var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrConstraintViolation = errors.New("uniqueness constraint violated")
	ErrImportFailed        = errors.New("lot import failed")
)
