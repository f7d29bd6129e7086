package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tapedeck/tapedeck/constant"
	"github.com/tapedeck/tapedeck/icon"
	"github.com/tapedeck/tapedeck/key"
	"github.com/tapedeck/tapedeck/style"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that the media backend is installed",
	Run: func(cmd *cobra.Command, args []string) {
		backend := viper.GetString(key.PlayerBackend)
		path, err := exec.LookPath(backend)
		if err != nil {
			printMissingDependencyError(backend)
			os.Exit(1)
		}

		fmt.Printf("%s %s found at %s\n", style.Fg(style.SuccessColor)(icon.Get(icon.Success)), backend, path)
	},
}

// CheckDependencies exits when the configured media backend is not installed.
func CheckDependencies() {
	backend := viper.GetString(key.PlayerBackend)
	if _, err := exec.LookPath(backend); err != nil {
		printMissingDependencyError(backend)
		os.Exit(1)
	}
}

func installHint(dep string) string {
	switch runtime.GOOS {
	case constant.Darwin:
		return "brew install " + dep
	case constant.Linux:
		return "sudo apt install " + dep
	case constant.Windows:
		return "scoop install " + dep
	default:
		return ""
	}
}

func printMissingDependencyError(dep string) {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.ErrorColor).
		Padding(1, 2).
		Margin(1, 0)

	title := style.ErrorTitle(fmt.Sprintf("%s Missing dependency", icon.Get(icon.Fail)))
	body := style.New().Foreground(style.Text).Render(fmt.Sprintf("%s needs %q in your PATH to play media.", constant.App, dep))

	suggestion := ""
	if hint := installHint(dep); hint != "" {
		suggestion = fmt.Sprintf("\n\nTo install it, try running:\n  %s", style.New().Foreground(style.AccentColor).Bold(true).Render(hint))
	}

	fmt.Println(box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"\n",
			body,
			suggestion,
		),
	))
}
