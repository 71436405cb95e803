package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/stockpile/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// a .env file may provide STK_FILE; its absence is fine.
	_ = godotenv.Load()

	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "misc")
	commander.Register(commander.FlagsCommand(), "misc")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion handles shell completion requests and exits, or returns
// immediately on a normal run.
func completion() {
	item := map[string]complete.Predictor{"i": predict.Something, "q": predict.Something}
	c := &complete.Command{
		Flags: map[string]complete.Predictor{"f": predict.Files("*.json")},
		Sub: map[string]*complete.Command{
			"add":    {Flags: item},
			"remove": {Flags: item},
			"qty":    {Flags: map[string]complete.Predictor{"i": predict.Something}},
			"low":    {Flags: map[string]complete.Predictor{"t": predict.Something}},
			"report": {},
			"fmt":    {},
			"import": {Flags: map[string]complete.Predictor{
				"file": predict.Files("*.json"),
				"path": predict.Something,
			}},
			"demo":  {},
			"topic": {Args: predict.Something},
		},
	}
	c.Complete("stk")
}
