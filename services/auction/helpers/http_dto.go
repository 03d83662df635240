package helpers

import "github.com/shopspring/decimal"

// Request/Response DTOs
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	Token         string `json:"token"`
	UserID        string `json:"user_id"`
	Email         string `json:"email"`
	CompanyName   string `json:"company_name"`
	Role          string `json:"role"`
	DepositStatus string `json:"deposit_status,omitempty"`
}

type CreateUserRequest struct {
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required"`
	CompanyName   string `json:"company_name"`
	Role          string `json:"role"`
	DepositStatus string `json:"deposit_status"`
	IsActive      *bool  `json:"is_active"`
}

type UpdateUserRequest struct {
	Email         *string `json:"email"`
	Password      *string `json:"password"`
	CompanyName   *string `json:"company_name"`
	Role          *string `json:"role"`
	DepositStatus *string `json:"deposit_status"`
	IsActive      *bool   `json:"is_active"`
}

type CreateCarrierRequest struct {
	Name string `json:"name" binding:"required"`
}

type CreateAuctionRequest struct {
	Name         string `json:"name" binding:"required"`
	CarrierID    string `json:"carrier_id" binding:"required"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time" binding:"required"`
	Status       string `json:"status"`
	GradingGuide string `json:"grading_guide"`
	IsVisible    bool   `json:"is_visible"`
}

type UpdateAuctionRequest struct {
	Name         *string `json:"name"`
	CarrierID    *string `json:"carrier_id"`
	StartTime    *string `json:"start_time"`
	EndTime      *string `json:"end_time"`
	Status       *string `json:"status"`
	GradingGuide *string `json:"grading_guide"`
	IsVisible    *bool   `json:"is_visible"`
}

type PlaceBidRequest struct {
	BidAmount decimal.Decimal `json:"bid_amount" binding:"required"`
}

type BidResponse struct {
	BidID     string          `json:"bid_id"`
	LotID     string          `json:"lot_id"`
	UserID    string          `json:"user_id"`
	BidAmount decimal.Decimal `json:"bid_amount"`
	BidTime   string          `json:"bid_time"`
	Status    string          `json:"status"`
}
