package stockplay

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// This file contains the codec of the portfolio file: a CSV file with a header row
// and one row per holding, numbers written as plain decimals.
//
//   symbol,pricePerShare,shares,totalCost
//   AAPL,150,10,1500
//
// Columns are located by their header name. Files written by the first version of
// the tool used display headers ("Stock Symbol", ...), they are accepted as aliases.

// column names of the canonical schema, in the order they are written.
const (
	colSymbol    = "symbol"
	colPrice     = "pricePerShare"
	colShares    = "shares"
	colTotalCost = "totalCost"
)

var header = []string{colSymbol, colPrice, colShares, colTotalCost}

// legacyHeaders maps display headers to their canonical column.
var legacyHeaders = map[string]string{
	"Stock Symbol":        colSymbol,
	"Price per Share ($)": colPrice,
	"Number of Shares":    colShares,
	"Total Cost ($)":      colTotalCost,
}

// EncodeHoldings writes holdings to w in the portfolio file format.
func EncodeHoldings(w io.Writer, holdings []Holding) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, h := range holdings {
		record := []string{
			h.Symbol,
			h.Price.Decimal().String(),
			strconv.FormatInt(h.Shares, 10),
			h.TotalCost.Decimal().String(),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write holding %q: %w", h.Symbol, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// DecodeHoldings reads holdings from r in the portfolio file format.
//
// Rows are trusted as previously validated: only the presence of the columns and the
// syntax of numbers are checked. Symbols are normalized so that hand-edited rows match
// the symbols given to Store.Remove. Any failure is reported as a *CorruptFileError.
func DecodeHoldings(r io.Reader) ([]Holding, error) {
	cr := csv.NewReader(r)

	names, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, &CorruptFileError{Err: errors.New("missing header row")}
	}
	if err != nil {
		return nil, csvError(err)
	}
	index, err := columnIndex(names)
	if err != nil {
		return nil, &CorruptFileError{Line: 1, Err: err}
	}

	var holdings []Holding
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, csvError(err)
		}
		line, _ := cr.FieldPos(0)
		h, err := decodeRecord(record, index)
		if err != nil {
			return nil, &CorruptFileError{Line: line, Err: err}
		}
		holdings = append(holdings, h)
	}
	return holdings, nil
}

// columnIndex returns the position of each canonical column in the header.
func columnIndex(names []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range names {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if canonical, ok := legacyHeaders[name]; ok {
			name = canonical
		}
		if !isColumn(name) {
			continue // extra columns are ignored
		}
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("duplicate column %q", name)
		}
		index[name] = i
	}
	var missing []string
	for _, col := range header {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing column(s) %s", strings.Join(missing, ", "))
	}
	return index, nil
}

func isColumn(name string) bool {
	for _, col := range header {
		if col == name {
			return true
		}
	}
	return false
}

func decodeRecord(record []string, index map[string]int) (Holding, error) {
	field := func(col string) string { return strings.TrimSpace(record[index[col]]) }

	price, err := decimal.NewFromString(field(colPrice))
	if err != nil {
		return Holding{}, fmt.Errorf("invalid %s %q: %w", colPrice, field(colPrice), err)
	}
	shares, err := decimal.NewFromString(field(colShares))
	if err != nil {
		return Holding{}, fmt.Errorf("invalid %s %q: %w", colShares, field(colShares), err)
	}
	if !shares.IsInteger() {
		return Holding{}, fmt.Errorf("invalid %s %q: not a whole number", colShares, field(colShares))
	}
	if !shares.BigInt().IsInt64() {
		return Holding{}, fmt.Errorf("invalid %s %q: out of range", colShares, field(colShares))
	}
	total, err := decimal.NewFromString(field(colTotalCost))
	if err != nil {
		return Holding{}, fmt.Errorf("invalid %s %q: %w", colTotalCost, field(colTotalCost), err)
	}
	return Holding{
		Symbol:    NormalizeSymbol(field(colSymbol)),
		Price:     USD(price),
		Shares:    shares.IntPart(),
		TotalCost: USD(total),
	}, nil
}

// csvError converts an error from the csv reader into a *CorruptFileError.
func csvError(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &CorruptFileError{Line: pe.Line, Err: pe.Err}
	}
	return err
}
