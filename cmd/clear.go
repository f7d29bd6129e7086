package cmd

import (
	"fmt"
	"time"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/tapedeck/tapedeck/filesystem"
	"github.com/tapedeck/tapedeck/icon"
	"github.com/tapedeck/tapedeck/util"
	"github.com/tapedeck/tapedeck/where"
)

// clearTarget is a directory the clear command can empty.
type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	location func() string
}

var clearTargets = []clearTarget{
	{"log files", "logs", mo.Some("l"), where.Logs},
	{"player sockets", "temp", mo.Some("t"), where.Temp},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if target.argShort.IsPresent() {
			clearCmd.Flags().BoolP(target.argLong, target.argShort.MustGet(), false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}

	clearCmd.Flags().Duration("older-than", 0, "only clear entries last modified before this long ago")
}

// clearCmd removes logs and leftover player sockets.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove log files and leftover player sockets",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			anyCleared bool
			cutoff     time.Time
		)

		if age := lo.Must(cmd.Flags().GetDuration("older-than")); age > 0 {
			cutoff = time.Now().Add(-age)
		}

		for _, target := range clearTargets {
			if !lo.Must(cmd.Flags().GetBool(target.argLong)) {
				continue
			}
			anyCleared = true

			erase := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), target.name))
			count, err := filesystem.Prune(target.location(), cutoff)
			erase()
			handleErr(err)

			fmt.Printf("%s %s cleared (%s)\n", icon.Get(icon.Success), util.Capitalize(target.name), util.Quantify(count, "entry", "entries"))
		}

		if !anyCleared {
			handleErr(cmd.Help())
		}
	},
}

