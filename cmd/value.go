package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cryptofolio"
	"github.com/etnz/cryptofolio/coingecko"
	"github.com/google/subcommands"
)

// valueCmd holds the flags for the 'value' subcommand.
type valueCmd struct {
	currency string
	input    string
	output   string
	markdown bool
}

func (*valueCmd) Name() string     { return "value" }
func (*valueCmd) Synopsis() string { return "value the portfolio at current market prices" }
func (*valueCmd) Usage() string {
	return `crypto value [-c <code>] [-i <filename>] [-o <filename>] [-md]

  Reads the portfolio file, fetches the current price of each coin, and
  prints the valuation table. The portfolio file defaults to the
  ` + EnvPortfolioFile + ` environment variable.

Usage Examples:
$ crypto value -c eur -i portfolio.txt -o portfolio.csv
`
}

func (c *valueCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", "usd", "currency to compare, using the ISO 4217 code")
	f.StringVar(&c.currency, "currency", "usd", "alias for -c")
	f.StringVar(&c.input, "i", "", "data file containing the gecko id and the amount of cryptos in your portfolio")
	f.StringVar(&c.input, "input", "", "alias for -i")
	f.StringVar(&c.output, "o", "", "write a csv output in the given file")
	f.StringVar(&c.output, "output", "", "alias for -o")
	f.BoolVar(&c.markdown, "md", false, "render the valuation as markdown instead of the plain table")
}

func (c *valueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	input := resolveInput(c.input)

	coins, err := cryptofolio.ReadCoinsFile(input)
	switch {
	case errors.Is(err, cryptofolio.ErrFormat):
		fmt.Fprintf(os.Stderr, "crypto: cannot read %q: invalid format\n", input)
		return subcommands.ExitFailure
	case errors.Is(err, cryptofolio.ErrCapacity):
		fmt.Fprintf(os.Stderr, "crypto: cannot read %q: too many lines\n", input)
		return subcommands.ExitFailure
	case err != nil:
		fmt.Fprintf(os.Stderr, "crypto: cannot stat %q: failed to open\n", input)
		return subcommands.ExitFailure
	}

	cryptofolio.Value(coins, c.currency, coingecko.NewClient())

	if c.markdown {
		printMarkdown(cryptofolio.Markdown(coins, c.currency))
	} else {
		cryptofolio.Table(os.Stdout, coins, c.currency)
	}

	if c.output != "" {
		if err := writeCSVFile(c.output, coins); err != nil {
			// the valuation itself succeeded, so the failed export is a
			// warning, not a failure.
			fmt.Fprintf(os.Stderr, "crypto: warning: cannot write %q: %v\n", c.output, err)
		}
	}
	return subcommands.ExitSuccess
}

// resolveInput resolves the portfolio file path once, before the core runs:
// flag first, environment variable second.
func resolveInput(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(EnvPortfolioFile)
}

func writeCSVFile(path string, coins []*cryptofolio.Coin) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return cryptofolio.WriteCSV(f, coins)
}
