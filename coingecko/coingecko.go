// Package coingecko fetches spot prices from the CoinGecko "simple price"
// API. It is the price provider behind the `crypto` command-line tool.
package coingecko

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// DefaultBaseURL is the public CoinGecko API v3 endpoint.
const DefaultBaseURL = "https://api.coingecko.com/api/v3"

// Client queries the CoinGecko API. The zero value is not usable, use
// [NewClient].
type Client struct {
	// HTTP performs the requests. Tests inject a client pointing at a stub
	// server here.
	HTTP *http.Client
	// Base is the API base URL, DefaultBaseURL unless overridden.
	Base string
}

// NewClient returns a Client on the public CoinGecko API.
func NewClient() *Client {
	return &Client{HTTP: new(http.Client), Base: DefaultBaseURL}
}

// SimplePrice returns the current unit price of the coin 'id' in 'currency'.
//
// Any failure (network, oversized or malformed body, unexpected payload
// shape) is an error: this layer never signals failure with a zero price,
// the caller decides what a missing price means.
func (c *Client) SimplePrice(id, currency string) (decimal.Decimal, error) {
	// https://api.coingecko.com/api/v3/simple/price?ids=bitcoin&vs_currencies=usd
	// {
	//   "bitcoin": {
	//     "usd": 12345.6
	//   }
	// }
	q := url.Values{}
	q.Set("ids", id)
	q.Set("vs_currencies", currency)
	addr := c.Base + "/simple/price?" + q.Encode()

	var jobj any
	if err := jwget(c.HTTP, addr, &jobj); err != nil {
		return decimal.Zero, err
	}

	// The payload is keyed by the coin id, but the service normalizes ids,
	// so the key is not always the id we asked for. Read the first child of
	// the top-level object instead, then the currency field on it
	// (case-sensitive).
	path := "$.*." + currency
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return decimal.Zero, fmt.Errorf("no %s price for %q in response: %q %w", currency, id, path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1
	// answer, or a single answer: by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok {
		if len(jlist) == 0 {
			return decimal.Zero, fmt.Errorf("no %s price for %q in response", currency, id)
		}
		jval = jlist[0]
	}

	val, ok := jval.(float64)
	if !ok {
		return decimal.Zero, fmt.Errorf("%s price for %q is not a number: %v", currency, id, jval)
	}
	return decimal.NewFromFloat(val), nil
}
