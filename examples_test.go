package switchboard_test

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/chriso345/switchboard"
	"github.com/chriso345/switchboard/errors"
	"github.com/chriso345/switchboard/log"
)

// exampleConfig keeps the process alive and sends everything to stdout so
// the examples can show it.
func exampleConfig() switchboard.Config {
	logger := log.NewConsole("app", os.Stdout)
	logger.NoColor = true
	logger.ExitOnFatal = false

	cfg := switchboard.DefaultConfig()
	cfg.QuitAfterHelp = false
	cfg.QuitOnError = false
	cfg.NoColor = true
	cfg.Logger = logger
	cfg.Out = os.Stdout
	return cfg
}

func Example_readme() {
	var name string
	var verbose bool

	set := switchboard.NewFieldSet(switchboard.NewRegistry(), switchboard.Handlers{
		"name": func(v switchboard.Values) error {
			name = v.Strings()[0]
			return nil
		},
		"verbose": func(switchboard.Values) error {
			verbose = true
			return nil
		},
	})
	if err := set.Define("--name/-n", "User name", "name", 1, switchboard.String); err != nil {
		panic(err)
	}
	if err := set.Define("--verbose/-v", "Enable verbose output", "verbose", switchboard.Flag, switchboard.None); err != nil {
		panic(err)
	}

	rest, err := switchboard.Process([]string{"-v", "--name", "Alice", "input.txt"}, set, exampleConfig())
	if err != nil {
		panic(err)
	}

	fmt.Println("Name:", name)
	fmt.Println("Verbose:", verbose)
	fmt.Println("Rest:", rest)
	// Output: Name: Alice
	// Verbose: true
	// Rest: [input.txt]
}

type demoArgs struct {
	SomeStr  string  `switch:"--some-str/-s" desc:"This is a switch, for an arg" handler:"OnSomeStr" arity:"1" type:"string"`
	Short    bool    `switch:"-b" desc:"Only a shorthand switch" handler:"OnShort"`
	TypeTest []int32 `switch:"--type-test/-T" desc:"A type conversion test" handler:"OnTypeTest" arity:"2" type:"[]int32"`
}

func (a *demoArgs) OnSomeStr(v switchboard.Values) error {
	a.SomeStr = v.Strings()[0]
	return nil
}

func (a *demoArgs) OnShort(switchboard.Values) error {
	a.Short = true
	return nil
}

func (a *demoArgs) OnTypeTest(v switchboard.Values) error {
	a.TypeTest = v.Int32s()
	return nil
}

func Example_scan() {
	args := &demoArgs{}
	set, err := switchboard.Scan(switchboard.NewRegistry(), args)
	if err != nil {
		panic(err)
	}

	rest, err := switchboard.Process([]string{"-T", "94", "69", "-b", "--", "-s", "x"}, set, exampleConfig())
	if err != nil {
		panic(err)
	}

	fmt.Println("TypeTest:", args.TypeTest)
	fmt.Println("Short:", args.Short)
	fmt.Println("Passthrough:", rest)
	// Output: TypeTest: [94 69]
	// Short: true
	// Passthrough: [-- -s x]
}

func Example_help() {
	set, err := switchboard.Scan(switchboard.NewRegistry(), &demoArgs{})
	if err != nil {
		panic(err)
	}

	_, err = switchboard.Process([]string{"--help"}, set, exampleConfig())
	fmt.Println(stderrors.Is(err, errors.ErrHelp))
	// Output: Usage: <args>
	//   --some-str/-s   This is a switch, for an arg
	//   -b              Only a shorthand switch
	//   --type-test/-T  A type conversion test
	//   --help/-h       Displays this help information (--help/-h <arg(s)>)
	// true
}

func Example_filteredHelp() {
	set, err := switchboard.Scan(switchboard.NewRegistry(), &demoArgs{})
	if err != nil {
		panic(err)
	}

	cfg := exampleConfig()
	cfg.HelpHeader = "Usage: demo <args> <search path>"
	_, _ = switchboard.Process([]string{"-h", "-bx", "--type-test"}, set, cfg)
	// Output: Usage: demo <args> <search path>
	//   -b              Only a shorthand switch
	//   --type-test/-T  A type conversion test
	// Unknown switch '-x'
}

func Example_unknownSwitch() {
	set := switchboard.NewFieldSet(switchboard.NewRegistry(), switchboard.Handlers{
		"name": func(switchboard.Values) error {
			fmt.Println("never runs")
			return nil
		},
	})
	if err := set.Define("--name/-n", "User name", "name", 1, switchboard.String); err != nil {
		panic(err)
	}

	rest, err := switchboard.Process([]string{"-n", "Bob", "--nmae", "Bob"}, set, exampleConfig())

	var ue errors.UnknownSwitchError
	if stderrors.As(err, &ue) {
		fmt.Println("unknown:", ue.Switches)
	}
	fmt.Println("rest:", rest)
	// Output: app: warning: Unknown switch '--nmae' (did you mean "--name"?)
	// unknown: [--nmae]
	// rest: [--nmae Bob]
}

func Example_malformedValue() {
	set := switchboard.NewFieldSet(switchboard.NewRegistry(), switchboard.Handlers{
		"port": func(switchboard.Values) error { return nil },
	})
	if err := set.Define("--port/-p", "Port to listen on", "port", 1, switchboard.Uint16); err != nil {
		panic(err)
	}

	_, err := switchboard.Process([]string{"--port", "70000"}, set, exampleConfig())

	var me errors.MalformedValueError
	if stderrors.As(err, &me) {
		fmt.Println("bad value:", me.Value)
	}
	// Output: app: fatal: malformed uint16 input "70000" for '--port'
	// bad value: 70000
}
