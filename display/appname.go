package display

import (
	"os"
	"path"
	"path/filepath"
	"runtime/debug"
	"strings"
)

// AppName infers the running program's name, used to prefix log messages.
// It prefers the main package path from build info, then argv[0], then "app".
func AppName() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Path != "" && info.Path != "command-line-arguments" {
		return path.Base(info.Path)
	}
	if len(os.Args) > 0 && os.Args[0] != "" {
		return strings.TrimSuffix(filepath.Base(os.Args[0]), ".exe")
	}
	return "app"
}
