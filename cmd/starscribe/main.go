package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Render  RenderCmd        `cmd:"" help:"Render hand model files as PokerStars hand-history text"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("starscribe"),
		kong.Description("Renders resolved poker hands in the PokerStars hand-history export format"),
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
