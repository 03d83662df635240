package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	catalog "auction-backend/internal/catalogService"
	model "auction-backend/internal/models"
	"auction-backend/services/auction/helpers"
	"auction-backend/utils"
)

type CatalogServiceInterface interface {
	CreateCarrier(name string) (model.Carrier, error)
	ListCarriers() ([]model.Carrier, error)
	CreateAuction(input catalog.CreateAuctionInput, creatorID string) (model.Auction, error)
	ListAuctions() ([]catalog.AuctionOverview, error)
	GetAuction(auctionID string) (catalog.AuctionDetail, error)
	UpdateAuction(auctionID string, input catalog.UpdateAuctionInput) (model.Auction, error)
	DeleteAuction(auctionID string) error
	ImportLots(auctionID, filename string, data []byte) (catalog.ImportResult, error)
	BrowseAuctions(carrierID string) (catalog.BrowseResult, error)
	GetClientAuction(auctionID string) (catalog.AuctionDetail, error)
	MyBids(userID string) ([]catalog.BidSummary, error)
	MyWins(userID string) ([]catalog.WinSummary, error)
}

type CatalogHandler struct {
	service CatalogServiceInterface
}

func NewCatalogHandler(service CatalogServiceInterface) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// CreateCarrierHandler handles POST /admin/carriers
func (h *CatalogHandler) CreateCarrierHandler(c *gin.Context) {
	var req helpers.CreateCarrierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateCarrierHandler", err)
		return
	}

	carrier, err := h.service.CreateCarrier(req.Name)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateCarrierHandler: failed to create carrier", map[string]any{
			"name":  req.Name,
			"error": err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, carrier, "carrier created successfully")
	helpers.LogSuccess("CreateCarrierHandler", "carrier created successfully", map[string]any{
		"carrier_id": carrier.CarrierID,
		"name":       carrier.Name,
	})
}

// ListCarriersHandler handles GET /admin/carriers
func (h *CatalogHandler) ListCarriersHandler(c *gin.Context) {
	carriers, err := h.service.ListCarriers()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListCarriersHandler: error retrieving carriers", map[string]any{"error": err.Error()})
		return
	}

	if carriers == nil {
		carriers = []model.Carrier{}
	}

	utils.JSONResponse(c, http.StatusOK, carriers, "carriers retrieved successfully")
}

// CreateAuctionHandler handles POST /admin/auctions
func (h *CatalogHandler) CreateAuctionHandler(c *gin.Context) {
	var req helpers.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	input := catalog.CreateAuctionInput{
		Name:         req.Name,
		CarrierID:    req.CarrierID,
		Status:       req.Status,
		GradingGuide: req.GradingGuide,
		IsVisible:    req.IsVisible,
	}
	if req.StartTime != "" {
		startTime, err := helpers.ParseFlexibleTime(req.StartTime)
		if err != nil {
			helpers.HandleBindError(c, "CreateAuctionHandler", err)
			return
		}
		input.StartTime = &startTime
	}
	endTime, err := helpers.ParseFlexibleTime(req.EndTime)
	if err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}
	input.EndTime = endTime

	creator, _ := helpers.CurrentUser(c)
	auction, err := h.service.CreateAuction(input, creator.UserID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateAuctionHandler: failed to create auction", map[string]any{
			"name":  req.Name,
			"error": err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, auction, "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"auction_id": auction.AuctionID,
		"name":       auction.Name,
	})
}

// ListAuctionsHandler handles GET /auctions for authenticated users
func (h *CatalogHandler) ListAuctionsHandler(c *gin.Context) {
	auctions, err := h.service.ListAuctions()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListAuctionsHandler: error retrieving auctions", map[string]any{"error": err.Error()})
		return
	}

	if auctions == nil {
		auctions = []catalog.AuctionOverview{}
	}

	utils.JSONResponse(c, http.StatusOK, auctions, "auctions retrieved successfully")
	helpers.LogSuccess("ListAuctionsHandler", "auctions retrieved successfully", map[string]any{
		"count": len(auctions),
	})
}

// GetAuctionHandler handles GET /admin/auctions/:auction_id
func (h *CatalogHandler) GetAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	detail, err := h.service.GetAuction(auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetAuctionHandler: error retrieving auction", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, detail, "auction retrieved successfully")
}

// UpdateAuctionHandler handles PUT /admin/auctions/:auction_id
func (h *CatalogHandler) UpdateAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	var req helpers.UpdateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateAuctionHandler", err)
		return
	}

	input := catalog.UpdateAuctionInput{
		Name:         req.Name,
		CarrierID:    req.CarrierID,
		Status:       req.Status,
		GradingGuide: req.GradingGuide,
		IsVisible:    req.IsVisible,
	}
	if req.StartTime != nil {
		startTime, err := helpers.ParseFlexibleTime(*req.StartTime)
		if err != nil {
			helpers.HandleBindError(c, "UpdateAuctionHandler", err)
			return
		}
		input.StartTime = &startTime
	}
	if req.EndTime != nil {
		endTime, err := helpers.ParseFlexibleTime(*req.EndTime)
		if err != nil {
			helpers.HandleBindError(c, "UpdateAuctionHandler", err)
			return
		}
		input.EndTime = &endTime
	}

	auction, err := h.service.UpdateAuction(auctionID, input)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("UpdateAuctionHandler: error updating auction", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, auction, "auction updated successfully")
	helpers.LogSuccess("UpdateAuctionHandler", "auction updated successfully", map[string]any{
		"auction_id": auction.AuctionID,
	})
}

// DeleteAuctionHandler handles DELETE /admin/auctions/:auction_id
func (h *CatalogHandler) DeleteAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	if err := h.service.DeleteAuction(auctionID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("DeleteAuctionHandler: error deleting auction", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	utils.JSONMessage(c, http.StatusOK, "auction and all associated data deleted successfully")
	helpers.LogSuccess("DeleteAuctionHandler", "auction deleted successfully", map[string]any{
		"auction_id": auctionID,
	})
}

// UploadLotsHandler handles POST /admin/auctions/:auction_id/upload-lots.
// The spreadsheet is sent as a multipart form file under the "file" field.
func (h *CatalogHandler) UploadLotsHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		helpers.HandleBindError(c, "UploadLotsHandler", fmt.Errorf("missing file part: %w", err))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err, "unable to read uploaded file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err, "unable to read uploaded file")
		return
	}

	result, err := h.service.ImportLots(auctionID, fileHeader.Filename, data)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("UploadLotsHandler: import rejected", map[string]any{
			"auction_id": auctionID,
			"filename":   fileHeader.Filename,
			"errors":     result.Errors,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, result, "lots imported successfully")
	helpers.LogSuccess("UploadLotsHandler", "lots imported successfully", map[string]any{
		"auction_id": auctionID,
		"filename":   fileHeader.Filename,
		"lots_added": result.LotsAdded,
	})
}

// BrowseAuctionsHandler handles GET /client/auctions with an optional
// carrier_id query filter
func (h *CatalogHandler) BrowseAuctionsHandler(c *gin.Context) {
	carrierID := c.Query("carrier_id")
	result, err := h.service.BrowseAuctions(carrierID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("BrowseAuctionsHandler: error retrieving auctions", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, result, "auctions retrieved successfully")
}

// ClientAuctionHandler handles GET /client/auctions/:auction_id
func (h *CatalogHandler) ClientAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	detail, err := h.service.GetClientAuction(auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ClientAuctionHandler: error retrieving auction", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, detail, "auction retrieved successfully")
}

// MyBidsHandler handles GET /client/my-bids
func (h *CatalogHandler) MyBidsHandler(c *gin.Context) {
	user, ok := helpers.CurrentUser(c)
	if !ok {
		utils.JSONMessage(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	bids, err := h.service.MyBids(user.UserID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("MyBidsHandler: error retrieving bids", map[string]any{"user_id": user.UserID, "error": err.Error()})
		return
	}

	if bids == nil {
		bids = []catalog.BidSummary{}
	}

	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
	helpers.LogSuccess("MyBidsHandler", "bids retrieved successfully", map[string]any{
		"user_id": user.UserID,
		"count":   len(bids),
	})
}

// MyWinsHandler handles GET /client/my-wins
func (h *CatalogHandler) MyWinsHandler(c *gin.Context) {
	user, ok := helpers.CurrentUser(c)
	if !ok {
		utils.JSONMessage(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	wins, err := h.service.MyWins(user.UserID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("MyWinsHandler: error retrieving wins", map[string]any{"user_id": user.UserID, "error": err.Error()})
		return
	}

	if wins == nil {
		wins = []catalog.WinSummary{}
	}

	utils.JSONResponse(c, http.StatusOK, wins, "won lots retrieved successfully")
	helpers.LogSuccess("MyWinsHandler", "won lots retrieved successfully", map[string]any{
		"user_id": user.UserID,
		"count":   len(wins),
	})
}
