// Package cmd implements the CLI application to value a crypto portfolio.
package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// EnvPortfolioFile is the environment variable read as a fallback for the
// portfolio file path when the -i flag is not given.
const EnvPortfolioFile = "CRYPTO_PORTFOLIO_FILE"

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	// a .env file is a convenient place for CRYPTO_PORTFOLIO_FILE; missing
	// file is the normal case and is silently ignored.
	godotenv.Load()

	c.Register(c.HelpCommand(), "")
	c.Register(c.CommandsCommand(), "")
	c.Register(c.FlagsCommand(), "")

	c.Register(&valueCmd{}, "portfolio")
	c.Register(&priceCmd{}, "portfolio")

	c.Register(&topicCmd{}, "documentation")
	c.Register(&versionCmd{}, "documentation")
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// markdown when the terminal renderer is not available.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
