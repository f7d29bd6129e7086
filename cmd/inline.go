package cmd

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"os/signal"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/tapedeck/tapedeck/filesystem"
	"github.com/tapedeck/tapedeck/inline"
	"github.com/tapedeck/tapedeck/util"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	addMediaFlags(inlineCmd.Flags())
	inlineCmd.Flags().BoolP("json", "j", false, "Print every change as a JSON object")
	inlineCmd.Flags().StringP("output", "o", "", "Write the output to a file instead of stdout")

	inlineCmd.AddCommand(inlineSchemaCmd)
	inlineSchemaCmd.SetOut(os.Stdout)
}

// inlineCmd plays a source without the terminal interface.
var inlineCmd = &cobra.Command{
	Use:   "inline [source]",
	Short: "Play a source headlessly and print every change of the player",
	Long: `Play a source without the terminal interface. Playback starts at once,
the controls never hide and every visible change of the player is printed as
one line, or one JSON object with --json. The command returns when the media
ends (unless looping), the backend window is closed or on interrupt.`,
	Example: "  tapedeck inline --json https://example.com/clip.mp4 | jq .state.progress",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		bindMediaFlags(cmd)
		CheckDependencies()

		var out io.Writer = os.Stdout
		if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
			file, err := filesystem.API().Create(output)
			handleErr(err)
			defer file.Close()
			out = file
		}

		m := mediaFromFlags(cmd, args[0])
		options := inline.Options{
			Out:          out,
			Source:       m.source,
			Title:        m.title.OrElse(util.MediaTitle(m.source)),
			Headers:      m.headers,
			Thumbnail:    m.thumbnail,
			EndThumbnail: m.endThumbnail,
			Json:         lo.Must(cmd.Flags().GetBool("json")),
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		handleErr(inline.Run(ctx, &options))
	},
}

var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the inline --json output",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(inline.Schema()))
	},
}
