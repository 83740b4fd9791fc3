package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Server  ServerCmd        `cmd:"" help:"Run the live scorecard server"`
	Settle  SettleCmd        `cmd:"" help:"Settle a saved round from a snapshot file"`
	Courses CoursesCmd       `cmd:"" help:"List and validate course files"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("greenside"),
		kong.Description("Golf side-game scoring and settlement"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
