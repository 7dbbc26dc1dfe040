package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/mangoclub/mango/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the CLI surface for shell completion. It runs before
// flag parsing: when invoked by the shell's completion hook it prints the
// candidates and exits.
func completion(name string) {
	movementFlags := map[string]complete.Predictor{
		"p": predict.Nothing,
		"q": predict.Nothing,
		"u": predict.Set{"Standard Crate", "Small Box"},
		"w": predict.Nothing,
		"c": predict.Nothing,
	}
	root := &complete.Command{
		Flags: map[string]complete.Predictor{
			"farm-file": predict.Files("*.json"),
			"v":         predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"add-product": {Flags: map[string]complete.Predictor{
				"n": predict.Nothing,
				"c": predict.Set{"Fruit", "Vegetable", "Dairy", "Meat", "Other"},
			}},
			"add-contact": {Flags: map[string]complete.Predictor{
				"n": predict.Nothing,
				"r": predict.Set{"Vendor", "Customer"},
			}},
			"receive": {Flags: movementFlags},
			"ship":    {Flags: movementFlags},
			"import": {Flags: map[string]complete.Predictor{
				"f":    predict.Files("*.json"),
				"from": predict.Nothing,
			}},
			"products": {Flags: map[string]complete.Predictor{
				"c": predict.Set{"Fruit", "Vegetable", "Dairy", "Meat", "Other"},
			}},
			"units":   {Flags: map[string]complete.Predictor{"p": predict.Nothing}},
			"history": {Flags: map[string]complete.Predictor{"p": predict.Nothing}},
			"flow":    {Flags: map[string]complete.Predictor{"p": predict.Nothing}},
			"contacts": {Flags: map[string]complete.Predictor{
				"r": predict.Set{"Vendor", "Customer"},
			}},
		},
	}
	root.Complete(name)
}

func main() {
	name := path.Base(os.Args[0])
	completion(name)

	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
