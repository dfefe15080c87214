package cryptofolio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// this file contains the renderers: plain table, CSV export, and markdown.
// They are all pure functions of the final (priced) coin list.

// idWidth returns the identifier column width: longest identifier plus one.
func idWidth(coins []*Coin) int {
	w := 0
	for _, coin := range coins {
		if len(coin.ID) > w {
			w = len(coin.ID)
		}
	}
	return w + 1
}

// Table writes the portfolio valuation as a column-aligned table.
//
// One header row, one row per coin in portfolio order, and a totals row.
// Numeric columns are 14 characters wide with the conventional %f formatting.
func Table(w io.Writer, coins []*Coin, currency string) {
	width := idWidth(coins)

	fmt.Fprintf(w, "%-*s %14s %14s %14s\n", width, "", "Amount", "Price", "Value")
	for _, coin := range coins {
		fmt.Fprintf(w, "%-*s %14f %14f %14f %s\n",
			width, coin.ID,
			coin.Amount.AsFloat(), coin.Price.AsFloat(), coin.Value.AsFloat(),
			currency)
	}
	fmt.Fprintf(w, "%-*s %-14s %14s %14f %s\n", width, "", "", "Total", Total(coins).AsFloat(), currency)
}

// WriteCSV writes the portfolio valuation to 'w' in CSV format.
//
// The format is a "name,amount,price,value" header then one row per coin, in
// portfolio order. No currency column and no totals row: the file is meant to
// be re-read by other tools, not by humans.
func WriteCSV(w io.Writer, coins []*Coin) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"name", "amount", "price", "value"}); err != nil {
		return fmt.Errorf("cannot write csv header: %w", err)
	}
	for _, coin := range coins {
		record := []string{
			coin.ID,
			strconv.FormatFloat(coin.Amount.AsFloat(), 'f', 6, 64),
			strconv.FormatFloat(coin.Price.AsFloat(), 'f', 6, 64),
			strconv.FormatFloat(coin.Value.AsFloat(), 'f', 6, 64),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("cannot write csv record %q: %w", coin.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Markdown renders the portfolio valuation as a markdown table.
func Markdown(coins []*Coin, currency string) string {
	symbol := M(0, currency).Symbol()

	var b strings.Builder
	fmt.Fprintf(&b, "# Portfolio (%s)\n\n", currency)
	fmt.Fprintln(&b, "| Coin | Amount | Price | Value |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|")
	for _, coin := range coins {
		fmt.Fprintf(&b, "| %s | %s | %s%s | %s%s |\n",
			coin.ID,
			coin.Amount,
			symbol, coin.Price,
			symbol, coin.Value,
		)
	}
	fmt.Fprintf(&b, "| **Total** | | | %s%s |\n", symbol, Total(coins))
	return b.String()
}
