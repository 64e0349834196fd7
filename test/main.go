package main

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/chriso345/switchboard"
	"github.com/chriso345/switchboard/errors"
)

type CLIArgs struct {
	SomeStr   string   `switch:"--some-str/-s" desc:"This is a switch, for an arg" handler:"OnSomeStr" arity:"1" type:"string"`
	Short     bool     `switch:"-b" desc:"Only a shorthand switch" handler:"OnShort"`
	BoolValue bool     `switch:"--bool-value" desc:"Only a longhand switch" handler:"OnBoolValue"`
	TypeTest  []int32  `switch:"--type-test/-T" desc:"A type conversion test" handler:"OnTypeTest" arity:"2" type:"[]int32"`
	ArrTest   []int32  `switch:"--arr-test/-a" desc:"An array test" handler:"OnArrTest" arity:"3" type:"[]int32"`
	Files     []string `switch:"--files/-f" desc:"Any number of files" handler:"OnFiles" arity:"greedy" type:"[]string"`
}

func (a *CLIArgs) OnSomeStr(v switchboard.Values) error {
	a.SomeStr = v.Strings()[0]
	return nil
}

func (a *CLIArgs) OnShort(switchboard.Values) error {
	a.Short = true
	return nil
}

func (a *CLIArgs) OnBoolValue(switchboard.Values) error {
	a.BoolValue = true
	return nil
}

func (a *CLIArgs) OnTypeTest(v switchboard.Values) error {
	a.TypeTest = v.Int32s()
	return nil
}

func (a *CLIArgs) OnArrTest(v switchboard.Values) error {
	a.ArrTest = append(a.ArrTest, v.Int32s()...)
	return nil
}

func (a *CLIArgs) OnFiles(v switchboard.Values) error {
	a.Files = append(a.Files, v.Strings()...)
	return nil
}

func main() {
	args := &CLIArgs{}
	set, err := switchboard.Scan(switchboard.NewRegistry(), args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cfg := switchboard.DefaultConfig()
	cfg.HelpHeader = "Usage: demo <args> [-- passthrough]"
	rest, err := switchboard.Process(os.Args[1:], set, cfg)
	if err != nil {
		if stderrors.Is(err, errors.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println("SomeStr:", args.SomeStr)
	fmt.Println("Short:", args.Short)
	fmt.Println("BoolValue:", args.BoolValue)
	fmt.Println("TypeTest:", args.TypeTest)
	fmt.Println("ArrTest:", args.ArrTest)
	fmt.Println("Files:", args.Files)
	fmt.Println("Rest:", rest)
}
