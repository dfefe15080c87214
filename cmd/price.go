package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cryptofolio/coingecko"
	"github.com/google/subcommands"
)

// priceCmd holds the flags for the 'price' subcommand.
type priceCmd struct {
	currency string
}

func (*priceCmd) Name() string     { return "price" }
func (*priceCmd) Synopsis() string { return "fetch the current price of a single coin" }
func (*priceCmd) Usage() string {
	return `crypto price [-c <code>] <id>...

  Fetches and prints the current unit price of each given coin.

Usage Examples:
$ crypto price -c eur bitcoin ethereum
`
}

func (c *priceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", "usd", "currency to compare, using the ISO 4217 code")
	f.StringVar(&c.currency, "currency", "usd", "alias for -c")
}

func (c *priceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "crypto: price requires at least one coin id")
		return subcommands.ExitUsageError
	}

	// unlike 'value' there is no aggregate to keep alive here, so a failed
	// fetch is a visible error.
	quotes := coingecko.NewClient()
	for _, id := range f.Args() {
		price, err := quotes.SimplePrice(id, c.currency)
		if err != nil {
			fmt.Fprintf(os.Stderr, "crypto: cannot fetch %q: %v\n", id, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("%s %s %s\n", id, price, c.currency)
	}
	return subcommands.ExitSuccess
}
