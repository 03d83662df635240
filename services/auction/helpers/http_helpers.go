package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"auction-backend/internal/auctionerrors"
	"auction-backend/utils"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, auctionerrors.ErrCarrierNotFound):
		return http.StatusNotFound, "carrier not found"
	case errors.Is(err, auctionerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, auctionerrors.ErrLotNotFound):
		return http.StatusNotFound, "lot not found"
	case errors.Is(err, auctionerrors.ErrBidNotFound):
		return http.StatusNotFound, "bid not found"
	case errors.Is(err, auctionerrors.ErrWinnerNotFound):
		return http.StatusNotFound, "winner not found"
	case errors.Is(err, auctionerrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, auctionerrors.ErrAccountInactive):
		return http.StatusForbidden, "account is deactivated"
	case errors.Is(err, auctionerrors.ErrDepositRequired):
		return http.StatusForbidden, "security deposit required before bidding"
	case errors.Is(err, auctionerrors.ErrProtectedAccount):
		return http.StatusForbidden, "account is protected"
	case errors.Is(err, auctionerrors.ErrAuctionNotOpen):
		return http.StatusForbidden, "auction is not open for bidding"
	case errors.Is(err, auctionerrors.ErrAuctionNotClosed):
		return http.StatusBadRequest, "auction is not closed yet"
	case errors.Is(err, auctionerrors.ErrInvalidAmount):
		return http.StatusBadRequest, "invalid bid amount"
	case errors.Is(err, auctionerrors.ErrBelowMinimum):
		return http.StatusBadRequest, "bid is below the minimum for this lot"
	case errors.Is(err, auctionerrors.ErrImportFailed):
		return http.StatusBadRequest, "lot import rejected"
	case errors.Is(err, auctionerrors.ErrInvalidInput):
		return http.StatusBadRequest, "invalid request details"
	case errors.Is(err, auctionerrors.ErrConstraintViolation):
		return http.StatusConflict, "record already exists"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}

// timeLayouts are the accepted request time formats, tried in order
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseFlexibleTime parses a request timestamp, accepting RFC 3339 as well as
// naive layouts which are taken to be UTC
func ParseFlexibleTime(value string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q: %w", value, auctionerrors.ErrInvalidInput)
}
