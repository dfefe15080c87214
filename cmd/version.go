package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

// Version of the crypto tool.
const Version = "1.0.0"

type versionCmd struct{}

func (*versionCmd) Name() string     { return "version" }
func (*versionCmd) Synopsis() string { return "show version number and quit" }
func (*versionCmd) Usage() string {
	return `version

Show the version number.
`
}

func (c *versionCmd) SetFlags(f *flag.FlagSet) {}

func (c *versionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fmt.Println(Version)
	return subcommands.ExitSuccess
}
