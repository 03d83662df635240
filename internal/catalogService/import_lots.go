package catalog

import (
	"fmt"
	"time"

	"auction-backend/internal/auctionerrors"
	"auction-backend/internal/importer"
	model "auction-backend/internal/models"
	"auction-backend/internal/repository"
	"auction-backend/utils"
)

// ImportResult reports a lot import run. When any row fails the import is
// rolled back as a whole and LotsAdded is zero.
type ImportResult struct {
	LotsAdded int      `json:"lots_added"`
	Errors    []string `json:"errors,omitempty"`
}

// ImportLots parses a CSV or XLSX spreadsheet and creates one lot per row on
// the given auction. The import is all or nothing: a single bad row, a
// duplicate identifier within the file, or a clash with an existing lot rolls
// back every row and reports the failures.
func (s *Service) ImportLots(auctionID, filename string, data []byte) (ImportResult, error) {
	var result ImportResult

	if _, err := s.repo.GetAuctionByID(auctionID); err != nil {
		return result, fmt.Errorf("service: failed to load auction %s: %w", auctionID, err)
	}

	rows, rowErrors, err := importer.Parse(filename, data)
	if err != nil {
		return result, fmt.Errorf("service: failed to parse %s: %w", filename, err)
	}
	result.Errors = rowErrors

	err = s.repo.WithinTx(func(tx repository.AuctionDB) error {
		existing, err := tx.ListLotsByAuction(auctionID)
		if err != nil {
			return err
		}
		taken := make(map[string]bool, len(existing))
		for _, lot := range existing {
			taken[lot.LotIdentifier] = true
		}

		// Validate every row before creating anything so a rejection never
		// leaves a partial import behind
		for _, row := range rows {
			if taken[row.Identifier] {
				result.Errors = append(result.Errors,
					fmt.Sprintf("row %d: duplicate lot identifier %q", row.Line, row.Identifier))
				continue
			}
			taken[row.Identifier] = true
		}
		if len(result.Errors) > 0 {
			return auctionerrors.ErrImportFailed
		}

		for _, row := range rows {
			if err := tx.CreateLot(model.Lot{
				LotID:         utils.GenerateID(),
				AuctionID:     auctionID,
				LotIdentifier: row.Identifier,
				DeviceName:    row.DeviceName,
				DeviceDetails: row.DeviceDetails,
				ImageURL:      row.ImageURL,
				Condition:     row.Condition,
				Quantity:      row.Quantity,
				MinBid:        row.MinBid,
				CreatedAt:     time.Now().UTC(),
			}); err != nil {
				result.Errors = append(result.Errors,
					fmt.Sprintf("row %d: %v", row.Line, err))
				return auctionerrors.ErrImportFailed
			}
		}
		result.LotsAdded = len(rows)
		return nil
	})
	if err != nil {
		result.LotsAdded = 0
		return result, fmt.Errorf("service: import into auction %s rejected: %w", auctionID, err)
	}

	utils.Info("lot import completed", map[string]any{
		"auction_id": auctionID,
		"filename":   filename,
		"lots_added": result.LotsAdded,
	})
	return result, nil
}
