// Package stockplay manages a small list of stock holdings: symbol, price per
// share and number of shares, mirrored to a CSV file.
//
// The core functionalities include:
//   - Store: the ordered list of holdings of a session, with validated add,
//     remove and reset operations, and the total cost of the portfolio.
//   - Persistence: a CSV codec (EncodeHoldings, DecodeHoldings) and a CSVFile
//     that replaces the whole file atomically after every change.
//
// Amounts are exact decimals (see Money), a holding's total cost is computed
// once when it is added.
//
// This package serves as the foundational logic for the `sps` command-line
// tool. Front ends never write the file themselves, they go through the Store.
package stockplay
