// Command pman manages simulated investment portfolios: dated purchases,
// weighted investments, recurring plan simulations, and point-in-time
// valuation reports.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/RonnJacob/Portfolio-Manager-sub000/cmd"
	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
