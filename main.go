// Command tapedeck plays media in the terminal with seekable, auto-hiding controls.
package main

import (
	"github.com/samber/lo"
	"github.com/tapedeck/tapedeck/cmd"
	"github.com/tapedeck/tapedeck/config"
	"github.com/tapedeck/tapedeck/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())
	defer log.Close()

	cmd.Execute()
}
