package main

import (
	"os"

	"github.com/jessevdk/go-flags"

	"talkfeed/app/cfg"
	"talkfeed/app/cli"
)

func main() {
	parser := cfg.Init()

	if err := cli.Register(parser); err != nil {
		os.Exit(1)
	}

	if _, err := parser.Parse(); err != nil {
		if flags.WroteHelp(err) {
			return
		}
		os.Exit(1)
	}
}
