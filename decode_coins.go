package cryptofolio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
)

// Decoding errors. Callers discriminate with [errors.Is]; anything else
// coming out of the decoder is an I/O error from the underlying reader.
var (
	// ErrFormat reports a malformed portfolio line: no separating space
	// before the newline, or an identifier or numeral over its size limit.
	ErrFormat = errors.New("invalid format")
	// ErrCapacity reports a portfolio with more than MaxCoins lines.
	ErrCapacity = errors.New("too many lines")
)

// DecodeCoins decodes a portfolio from 'r'.
//
// The format is one record per line, "<id> <amount>\n": a single space
// separates the identifier from the amount numeral, and the newline closes
// the record. The decoder is a character-level scan with two accumulating
// states, identifier then numeral, switched once by the space.
//
// A line without a space, or a field over MaxIDLen/MaxAmountLen characters,
// fails the whole decoding with [ErrFormat]. More than MaxCoins records fail
// it with [ErrCapacity]. A numeral that is not a valid decimal is permissive
// and yields amount 0. A trailing line without its newline is dropped, not
// decoded: only the newline emits a record.
func DecodeCoins(r io.Reader) ([]*Coin, error) {
	br := bufio.NewReader(r)

	coins := make([]*Coin, 0, MaxCoins)
	var id, numeral []byte
	inAmount := false

	for {
		c, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch {
		case c == '\n':
			if len(coins) >= MaxCoins {
				return nil, fmt.Errorf("cannot decode line %d: %w", len(coins)+1, ErrCapacity)
			}
			if !inAmount {
				return nil, fmt.Errorf("cannot decode line %d: no space separator: %w", len(coins)+1, ErrFormat)
			}
			coins = append(coins, &Coin{
				ID:     string(id),
				Amount: Q(parseAmount(string(numeral))),
			})
			id, numeral, inAmount = id[:0], numeral[:0], false
		case c == ' ':
			inAmount = true
		case !inAmount && len(id) < MaxIDLen:
			id = append(id, c)
		case inAmount && len(numeral) < MaxAmountLen:
			numeral = append(numeral, c)
		default:
			return nil, fmt.Errorf("cannot decode line %d: field over its size limit: %w", len(coins)+1, ErrFormat)
		}
	}
	return coins, nil
}

// parseAmount parses an amount numeral, degrading to 0 on any invalid text.
func parseAmount(numeral string) decimal.Decimal {
	d, err := decimal.NewFromString(numeral)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ReadCoinsFile reads and decodes the portfolio file at 'path'.
//
// A missing or unreadable file returns the underlying *fs.PathError, so that
// it remains distinguishable from [ErrFormat] and [ErrCapacity].
func ReadCoinsFile(path string) ([]*Coin, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeCoins(f)
}
