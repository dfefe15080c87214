package cryptofolio

// Reference limits for one portfolio. They bound every field of every record
// so that a whole portfolio has a static maximum size.
const (
	// MaxIDLen is the maximum number of characters of a coin identifier.
	MaxIDLen = 32
	// MaxAmountLen is the maximum number of characters of an amount numeral.
	MaxAmountLen = 32
	// MaxCoins is the maximum number of records in one portfolio.
	MaxCoins = 32
)

// Coin is one position of the portfolio: a coin identifier as recognized by
// the price service, the amount held, and once fetched, the unit price and
// the position value in the requested currency.
//
// Price and Value are zero until [Value] has priced the portfolio; they are
// always set together and Value is always Amount times Price.
type Coin struct {
	ID     string
	Amount Quantity
	Price  Money
	Value  Money
}
