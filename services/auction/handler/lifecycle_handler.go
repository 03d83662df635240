package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	lifecycle "auction-backend/internal/lifecycleService"
	model "auction-backend/internal/models"
	"auction-backend/services/auction/helpers"
	"auction-backend/utils"
)

type LifecycleServiceInterface interface {
	SubmitBid(auctionID, lotID, userID string, amount decimal.Decimal, now time.Time) (model.Bid, error)
	AdvanceStatuses(now time.Time) (int, error)
	DetermineWinners(auctionID string, now time.Time) (lifecycle.WinnerSummary, error)
}

type LifecycleHandler struct {
	service LifecycleServiceInterface
}

func NewLifecycleHandler(service LifecycleServiceInterface) *LifecycleHandler {
	return &LifecycleHandler{service: service}
}

// SubmitBidHandler handles POST /client/auctions/:auction_id/lots/:lot_id/bid.
// Eligibility gates (active account, deposit on file) are checked against the
// stored account before the bid reaches the ledger.
func (h *LifecycleHandler) SubmitBidHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	lotID := c.Param("lot_id")

	user, ok := helpers.CurrentUser(c)
	if !ok {
		utils.JSONMessage(c, http.StatusUnauthorized, "not authenticated")
		return
	}
	if !user.IsActive {
		utils.JSONMessage(c, http.StatusForbidden, "account is deactivated")
		utils.Warn("SubmitBidHandler: inactive account rejected", map[string]any{"user_id": user.UserID})
		return
	}
	if user.DepositStatus != model.DepositOnFile && user.DepositStatus != model.DepositCleared {
		utils.JSONMessage(c, http.StatusForbidden, "security deposit required before bidding")
		utils.Warn("SubmitBidHandler: deposit not on file", map[string]any{
			"user_id":        user.UserID,
			"deposit_status": user.DepositStatus,
		})
		return
	}

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SubmitBidHandler", err)
		return
	}

	bid, err := h.service.SubmitBid(auctionID, lotID, user.UserID, req.BidAmount, time.Now())
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("SubmitBidHandler: bid rejected", map[string]any{
			"auction_id": auctionID,
			"lot_id":     lotID,
			"user_id":    user.UserID,
			"error":      err.Error(),
		})
		return
	}

	resp := helpers.BidResponse{
		BidID:     bid.BidID,
		LotID:     bid.LotID,
		UserID:    bid.UserID,
		BidAmount: bid.BidAmount,
		BidTime:   bid.BidTime.UTC().Format(time.RFC3339),
		Status:    bid.Status,
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "bid submitted successfully")
	helpers.LogSuccess("SubmitBidHandler", "bid submitted successfully", map[string]any{
		"bid_id":  bid.BidID,
		"lot_id":  bid.LotID,
		"user_id": user.UserID,
		"amount":  bid.BidAmount.String(),
	})
}

// ProcessStatusesHandler handles POST /admin/auctions/process-statuses
func (h *LifecycleHandler) ProcessStatusesHandler(c *gin.Context) {
	updated, err := h.service.AdvanceStatuses(time.Now())
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("ProcessStatusesHandler: status sweep failed", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"auctions_updated": updated}, "auction statuses processed")
	helpers.LogSuccess("ProcessStatusesHandler", "auction statuses processed", map[string]any{
		"auctions_updated": updated,
	})
}

// DetermineWinnersHandler handles POST /admin/auctions/:auction_id/determine-winners
func (h *LifecycleHandler) DetermineWinnersHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	summary, err := h.service.DetermineWinners(auctionID, time.Now())
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("DetermineWinnersHandler: winner determination failed", map[string]any{
			"auction_id": auctionID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{
		"lots_processed":     summary.LotsProcessed,
		"winners_determined": summary.WinnersDetermined,
		"lot_errors":         summary.LotErrors,
	}, "winner determination completed")
	helpers.LogSuccess("DetermineWinnersHandler", "winner determination completed", map[string]any{
		"auction_id":         auctionID,
		"lots_processed":     summary.LotsProcessed,
		"winners_determined": summary.WinnersDetermined,
		"lot_errors":         len(summary.LotErrors),
	})
}
