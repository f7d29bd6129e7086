// Package where resolves the directories tapedeck reads and writes. Every
// resolver creates its directory before returning it.
package where

import (
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/tapedeck/tapedeck/constant"
	"github.com/tapedeck/tapedeck/filesystem"
)

// EnvConfigPath overrides the config directory.
const EnvConfigPath = "TAPEDECK_CONFIG_PATH"

func mkdir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config is the directory holding tapedeck.toml: $TAPEDECK_CONFIG_PATH when
// set, otherwise tapedeck under the user config directory.
func Config() string {
	path, ok := os.LookupEnv(EnvConfigPath)
	if !ok || path == "" {
		path = filepath.Join(lo.Must(os.UserConfigDir()), constant.App)
	}
	return mkdir(path)
}

// Logs holds one log file per day.
func Logs() string {
	return mkdir(filepath.Join(Config(), "logs"))
}

// Temp holds the mpv IPC sockets. It sits under the system temp directory
// because unix socket paths are limited to about a hundred bytes.
func Temp() string {
	return mkdir(filepath.Join(os.TempDir(), constant.App))
}
