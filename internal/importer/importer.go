package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"auction-backend/internal/auctionerrors"
)

// LotRow is one parsed spreadsheet row, ready for lot creation
type LotRow struct {
	Line          int // 1-based spreadsheet line, header is line 1
	Identifier    string
	DeviceName    string
	DeviceDetails string
	ImageURL      string
	Condition     string
	Quantity      int
	MinBid        decimal.Decimal
}

// columnAliases maps each lot field to the header names accepted for it.
// Matching is case-insensitive; the first alias found in the header wins.
var columnAliases = map[string][]string{
	"lot_identifier": {"lot id", "lot_id", "identifier", "lot_identifier"},
	"device_name":    {"device name", "device_name", "item name"},
	"device_details": {"details", "description", "device_details"},
	"image_url":      {"image url", "image_url", "image"},
	"condition":      {"condition", "grade"},
	"quantity":       {"quantity", "qty"},
	"min_bid":        {"minimum bid", "min_bid", "start price"},
}

// requiredColumns must be mappable or the whole file is rejected
var requiredColumns = []string{"lot_identifier", "device_name"}

// Parse reads a CSV or XLSX lot spreadsheet. It returns the well-formed rows
// and a list of per-row error messages; a structural problem (unreadable
// file, unsupported type, missing required column) fails the whole parse.
func Parse(filename string, data []byte) ([]LotRow, []string, error) {
	var records [][]string
	var err error

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		records, err = readCSV(data)
	case ".xlsx":
		records, err = readXLSX(data)
	default:
		return nil, nil, fmt.Errorf("unsupported file type %q: %w", filepath.Ext(filename), auctionerrors.ErrInvalidInput)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", filename, err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("file %s has no header row: %w", filename, auctionerrors.ErrInvalidInput)
	}

	columns, err := mapColumns(records[0])
	if err != nil {
		return nil, nil, err
	}

	var rows []LotRow
	var rowErrors []string
	for i, record := range records[1:] {
		line := i + 2
		row, err := parseRow(line, record, columns)
		if err != nil {
			rowErrors = append(rowErrors, fmt.Sprintf("row %d: %v", line, err))
			continue
		}
		rows = append(rows, row)
	}
	return rows, rowErrors, nil
}

func readCSV(data []byte) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1 // rows may have trailing blanks trimmed
	return reader.ReadAll()
}

func readXLSX(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets: %w", auctionerrors.ErrInvalidInput)
	}
	return f.GetRows(sheets[0])
}

// mapColumns resolves header names to column indexes via the alias table
func mapColumns(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}

	columns := make(map[string]int)
	for target, aliases := range columnAliases {
		for _, alias := range aliases {
			if i, ok := index[alias]; ok {
				columns[target] = i
				break
			}
		}
	}

	for _, required := range requiredColumns {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("missing required column, expected one of %v: %w",
				columnAliases[required], auctionerrors.ErrInvalidInput)
		}
	}
	return columns, nil
}

func parseRow(line int, record []string, columns map[string]int) (LotRow, error) {
	row := LotRow{
		Line:     line,
		Quantity: 1,
		MinBid:   decimal.Zero,
	}

	row.Identifier = cell(record, columns, "lot_identifier")
	if row.Identifier == "" {
		return LotRow{}, fmt.Errorf("lot_identifier is missing or empty")
	}
	row.DeviceName = cell(record, columns, "device_name")
	if row.DeviceName == "" {
		return LotRow{}, fmt.Errorf("device_name is missing or empty")
	}

	row.DeviceDetails = cell(record, columns, "device_details")
	row.ImageURL = cell(record, columns, "image_url")
	row.Condition = cell(record, columns, "condition")

	if raw := cell(record, columns, "quantity"); raw != "" {
		quantity, err := strconv.Atoi(raw)
		if err != nil || quantity < 1 {
			return LotRow{}, fmt.Errorf("invalid quantity %q", raw)
		}
		row.Quantity = quantity
	}

	if raw := cell(record, columns, "min_bid"); raw != "" {
		minBid, err := decimal.NewFromString(raw)
		if err != nil || minBid.IsNegative() {
			return LotRow{}, fmt.Errorf("invalid minimum bid %q", raw)
		}
		row.MinBid = minBid.Round(2)
	}

	return row, nil
}

// cell returns the trimmed value of a mapped column, tolerating short rows
func cell(record []string, columns map[string]int, target string) string {
	i, ok := columns[target]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}
