// Package cmd implements the command-line interface for tapedeck.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/tapedeck/tapedeck/color"
	"github.com/tapedeck/tapedeck/constant"
	"github.com/tapedeck/tapedeck/icon"
	"github.com/tapedeck/tapedeck/key"
	"github.com/tapedeck/tapedeck/log"
	"github.com/tapedeck/tapedeck/style"
	"github.com/tapedeck/tapedeck/tui"
	"github.com/tapedeck/tapedeck/util"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, square)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	addMediaFlags(rootCmd.Flags())

	rootCmd.Flags().Bool("autoplay", false, "Start playing as soon as the player is mounted")
	lo.Must0(viper.BindPFlag(key.PlayerAutoplay, rootCmd.Flags().Lookup("autoplay")))
}

// addMediaFlags registers the flags shared by every command that plays a source.
func addMediaFlags(flags *pflag.FlagSet) {
	flags.StringP("thumbnail", "t", "", "Image shown before playback starts")
	flags.StringP("end-thumbnail", "e", "", "Image shown once playback ends")
	flags.String("title", "", "Window title, defaults to the source file name")
	flags.StringToStringP("header", "H", map[string]string{}, "HTTP header sent when fetching the source, as name=value")

	flags.BoolP("loop", "l", false, "Rewind and keep playing at the end")
	flags.BoolP("muted", "m", false, "Start with the sound off")
}

// bindMediaFlags binds the config overrides of the running command. Several
// commands register the same flags, so binding happens only once one runs.
func bindMediaFlags(cmd *cobra.Command) {
	lo.Must0(viper.BindPFlag(key.PlayerLoop, cmd.Flags().Lookup("loop")))
	lo.Must0(viper.BindPFlag(key.PlayerDefaultMuted, cmd.Flags().Lookup("muted")))
}

// media reads the shared media flags.
type media struct {
	source       string
	title        mo.Option[string]
	headers      map[string]string
	thumbnail    mo.Option[string]
	endThumbnail mo.Option[string]
}

func mediaFromFlags(cmd *cobra.Command, source string) media {
	optional := func(name string) mo.Option[string] {
		if value := lo.Must(cmd.Flags().GetString(name)); value != "" {
			return mo.Some(value)
		}
		return mo.None[string]()
	}

	return media{
		source:       source,
		title:        optional("title"),
		headers:      lo.Must(cmd.Flags().GetStringToString("header")),
		thumbnail:    optional("thumbnail"),
		endThumbnail: optional("end-thumbnail"),
	}
}

// rootCmd plays a source in the terminal interface.
var rootCmd = &cobra.Command{
	Use:   constant.App + " [source]",
	Short: "A terminal video player with seekable, auto-hiding controls",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiPurple).Render("    - A terminal video player with seekable, auto-hiding controls"),
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		if len(args) == 0 {
			handleErr(cmd.Help())
			return
		}

		if !util.IsTerminal() {
			handleErr(errors.New("the player needs a terminal, use the inline command instead"))
		}

		bindMediaFlags(cmd)
		CheckDependencies()

		m := mediaFromFlags(cmd, args[0])
		options := tui.Options{
			Source:       m.source,
			Title:        m.title,
			Headers:      m.headers,
			Thumbnail:    m.thumbnail,
			EndThumbnail: m.endThumbnail,
		}
		handleErr(tui.Run(&options))
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
