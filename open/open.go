// Package open hands files and URLs to the desktop: the default handler for
// images, the user's editor for config files.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/tapedeck/tapedeck/constant"
)

// EnvEditor names the editor Edit prefers.
const EnvEditor = "EDITOR"

// Start opens target with the system's default handler without waiting for it.
func Start(target string) error {
	cmd, err := command(runtime.GOOS, target)
	if err != nil {
		return err
	}
	return cmd.Start()
}

// Edit opens path in $EDITOR attached to the terminal and waits for it to
// exit. Without $EDITOR the default handler is used instead.
func Edit(path string) error {
	editor, ok := os.LookupEnv(EnvEditor)
	if !ok || editor == "" {
		return Start(path)
	}

	cmd := exec.Command(editor, path)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
	return cmd.Run()
}

func command(goos, target string) (*exec.Cmd, error) {
	switch goos {
	case constant.Windows:
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", target), nil
	case constant.Darwin:
		return exec.Command("open", target), nil
	case constant.Linux:
		return exec.Command("xdg-open", target), nil
	case constant.Android:
		return exec.Command("termux-open", target), nil
	default:
		return nil, fmt.Errorf("unsupported OS: %s", goos)
	}
}
