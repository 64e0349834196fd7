package core

import (
	"io"
	"os"

	"github.com/chriso345/switchboard/display"
	"github.com/chriso345/switchboard/log"
)

// Config controls the side effects of Process. Use DefaultConfig and
// override fields as needed.
type Config struct {
	// QuitAfterHelp exits with status 0 after help has been printed.
	QuitAfterHelp bool
	// QuitOnError exits with status 1 after unknown switches were reported.
	QuitOnError bool
	// AbortOnUnknown stops before any handler runs when an unknown switch
	// was seen, returning an UnknownSwitchError.
	AbortOnUnknown bool
	// AllowRepeat lets a switch occur more than once, running its handler
	// for each occurrence. Otherwise repeats are reported and ignored.
	AllowRepeat bool
	// NoColor forces plain help output.
	NoColor bool

	// HelpHeader is the first line of help output.
	HelpHeader string
	// Logger receives input problems. Fatal messages may end the process.
	Logger log.Logger
	// Out receives help output.
	Out io.Writer
}

// DefaultConfig returns the configuration used by command line programs:
// help and errors end the process, and problems are logged to stderr.
func DefaultConfig() Config {
	return Config{
		QuitAfterHelp:  true,
		QuitOnError:    true,
		AbortOnUnknown: true,
		AllowRepeat:    true,
		HelpHeader:     display.DefaultHeader,
		Logger:         log.NewConsole(display.AppName(), os.Stderr),
		Out:            os.Stdout,
	}
}

func (c Config) withDefaults() Config {
	if c.HelpHeader == "" {
		c.HelpHeader = display.DefaultHeader
	}
	if c.Logger == nil {
		c.Logger = log.NewConsole(display.AppName(), os.Stderr)
	}
	if c.Out == nil {
		c.Out = os.Stdout
	}
	return c
}
