package cryptofolio

import (
	"log"

	"github.com/shopspring/decimal"
)

// PriceProvider returns the current unit price of a coin in a given currency.
// It is implemented by [github.com/etnz/cryptofolio/coingecko.Client].
type PriceProvider interface {
	SimplePrice(id, currency string) (decimal.Decimal, error)
}

// Value prices every coin of the portfolio in the given currency.
//
// Coins are priced one by one, in portfolio order; there is deliberately no
// concurrency, the price service rate-limits anonymous clients. A failed
// fetch is absorbed here: the coin is priced 0 and a warning is logged, the
// valuation of the other coins continues. Price and Value are always set
// together, with Value = Amount * Price.
func Value(coins []*Coin, currency string, quotes PriceProvider) {
	for _, coin := range coins {
		price, err := quotes.SimplePrice(coin.ID, currency)
		if err != nil {
			log.Printf("warning: no %s price for %q: %v", currency, coin.ID, err)
			price = decimal.Zero
		}
		coin.Price = M(price, currency)
		coin.Value = coin.Price.Mul(coin.Amount)
	}
}

// Total sums the values of all coins, in the common currency of the
// portfolio. An unpriced portfolio totals zero.
func Total(coins []*Coin) Money {
	var total Money
	for _, coin := range coins {
		total = total.Add(coin.Value)
	}
	return total
}
