// Package cryptofolio computes the current market value of a cryptocurrency
// portfolio.
//
// A portfolio is a small line-oriented text file listing the coins held, one
// per line, as "<id> <amount>" where the id is the coin identifier known to
// the price service (e.g. "bitcoin"). The package:
//
//   - parses the portfolio file into an ordered list of [Coin] records,
//     under strict per-field and per-file size limits,
//   - fetches the current unit price of each coin in a chosen currency,
//   - values each position (amount times price) and the portfolio total,
//   - renders the result as a column-aligned table, a CSV file, or markdown.
//
// This package serves as the foundational logic for the `crypto` command-line
// tool.
package cryptofolio
