package cmd

import (
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/tapedeck/tapedeck/color"
	"github.com/tapedeck/tapedeck/style"
	"github.com/tapedeck/tapedeck/where"
)

// wherePaths maps each argument of the where command to its directory.
var wherePaths = []lo.Tuple2[string, func() string]{
	{A: "config", B: where.Config},
	{A: "logs", B: where.Logs},
	{A: "temp", B: where.Temp},
}

func init() {
	rootCmd.AddCommand(whereCmd)
	whereCmd.SetOut(os.Stdout)
}

// whereCmd prints where the application keeps its files.
var whereCmd = &cobra.Command{
	Use:   "where [config|logs|temp]",
	Short: "Show where config, logs and player sockets are kept",
	Long: `Without an argument every directory is listed. With one, only that
path is printed, which is handy in scripts: cd "$(tapedeck where logs)"`,
	Args: cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: lo.Map(wherePaths, func(p lo.Tuple2[string, func() string], _ int) string {
		return p.A
	}),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 1 {
			path, _ := lo.Find(wherePaths, func(p lo.Tuple2[string, func() string]) bool {
				return p.A == args[0]
			})
			cmd.Println(path.B())
			return
		}

		name := style.New().Bold(true).Foreground(color.HiPurple).Width(8).Render
		for _, p := range wherePaths {
			cmd.Printf("%s %s\n", name(p.A), p.B())
		}
	},
}
