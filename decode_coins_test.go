package cryptofolio

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
)

func TestDecodeCoins(t *testing.T) {
	coins, err := DecodeCoins(strings.NewReader("bitcoin 0.5\nethereum 2\n"))
	if err != nil {
		t.Fatalf("DecodeCoins() unexpected error = %v", err)
	}
	if len(coins) != 2 {
		t.Fatalf("DecodeCoins() returned %d coins, want 2", len(coins))
	}
	if coins[0].ID != "bitcoin" || !coins[0].Amount.Equal(Q(0.5)) {
		t.Errorf("DecodeCoins()[0] = %q %s, want bitcoin 0.5", coins[0].ID, coins[0].Amount)
	}
	if coins[1].ID != "ethereum" || !coins[1].Amount.Equal(Q(2)) {
		t.Errorf("DecodeCoins()[1] = %q %s, want ethereum 2", coins[1].ID, coins[1].Amount)
	}
	for i, coin := range coins {
		if !coin.Price.IsZero() || !coin.Value.IsZero() {
			t.Errorf("DecodeCoins()[%d] has non zero price or value before valuation", i)
		}
	}
}

func TestDecodeCoins_errors(t *testing.T) {
	over := strings.Repeat("x", MaxIDLen+1)
	testCases := []struct {
		name  string
		input string
		want  error
	}{
		{"no space", "bitcoin\n", ErrFormat},
		{"no space later", "bitcoin 1\nethereum\n", ErrFormat},
		{"identifier too long", over + " 1\n", ErrFormat},
		{"numeral too long", "bitcoin " + strings.Repeat("1", MaxAmountLen+1) + "\n", ErrFormat},
		{"too many lines", strings.Repeat("bitcoin 1\n", MaxCoins+1), ErrCapacity},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			coins, err := DecodeCoins(strings.NewReader(tc.input))
			if !errors.Is(err, tc.want) {
				t.Errorf("DecodeCoins() error = %v, want %v", err, tc.want)
			}
			if coins != nil {
				t.Errorf("DecodeCoins() returned %d coins with the error, want none", len(coins))
			}
		})
	}
}

func TestDecodeCoins_permissiveNumeral(t *testing.T) {
	coins, err := DecodeCoins(strings.NewReader("bitcoin 12x3\n"))
	if err != nil {
		t.Fatalf("DecodeCoins() unexpected error = %v", err)
	}
	if !coins[0].Amount.IsZero() {
		t.Errorf("DecodeCoins() amount = %s, want 0 for invalid numeral", coins[0].Amount)
	}
}

func TestDecodeCoins_atCapacity(t *testing.T) {
	// exactly MaxCoins lines is still a valid portfolio.
	coins, err := DecodeCoins(strings.NewReader(strings.Repeat("bitcoin 1\n", MaxCoins)))
	if err != nil {
		t.Fatalf("DecodeCoins() unexpected error = %v", err)
	}
	if len(coins) != MaxCoins {
		t.Errorf("DecodeCoins() returned %d coins, want %d", len(coins), MaxCoins)
	}
}

func TestDecodeCoins_noTrailingNewline(t *testing.T) {
	// only the newline emits a record: the unterminated line is dropped.
	coins, err := DecodeCoins(strings.NewReader("bitcoin 0.5\nethereum 2"))
	if err != nil {
		t.Fatalf("DecodeCoins() unexpected error = %v", err)
	}
	if len(coins) != 1 || coins[0].ID != "bitcoin" {
		t.Errorf("DecodeCoins() returned %d coins, want the single terminated line", len(coins))
	}
}

func TestDecodeCoins_empty(t *testing.T) {
	coins, err := DecodeCoins(strings.NewReader(""))
	if err != nil {
		t.Fatalf("DecodeCoins() unexpected error = %v", err)
	}
	if len(coins) != 0 {
		t.Errorf("DecodeCoins() returned %d coins, want none", len(coins))
	}
}

func TestReadCoinsFile_missing(t *testing.T) {
	_, err := ReadCoinsFile("testdata/no-such-portfolio")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadCoinsFile() error = %v, want fs.ErrNotExist", err)
	}
	if errors.Is(err, ErrFormat) || errors.Is(err, ErrCapacity) {
		t.Errorf("ReadCoinsFile() I/O error must not match format or capacity errors")
	}
}
