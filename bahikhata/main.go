package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/kmahajan/bahikhata/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion declares the shell completion tree. It only acts when the
// shell invokes the binary in completion mode, otherwise it returns
// immediately.
func completion() {
	spec := &complete.Command{
		Flags: map[string]complete.Predictor{
			"ledger-file": predict.Files("*.json"),
		},
		Sub: map[string]*complete.Command{
			"account": {Flags: map[string]complete.Predictor{
				"holder":   predict.Something,
				"location": predict.Something,
			}},
			"add": {Flags: map[string]complete.Predictor{
				"date":        predict.Something,
				"particulars": predict.Something,
				"debit":       predict.Something,
				"credit":      predict.Something,
			}},
			"delete":  {Flags: map[string]complete.Predictor{"y": predict.Nothing}},
			"clear":   {Flags: map[string]complete.Predictor{"y": predict.Nothing}},
			"tx":      {Flags: map[string]complete.Predictor{"head": predict.Something, "tail": predict.Something, "ids": predict.Nothing}},
			"summary": {},
			"sample":  {Flags: map[string]complete.Predictor{"y": predict.Nothing}},
			"export":  {Flags: map[string]complete.Predictor{"o": predict.Files("*.json")}},
			"import":  {Args: predict.Files("*.json"), Flags: map[string]complete.Predictor{"y": predict.Nothing}},
			"share":   {Flags: map[string]complete.Predictor{"url": predict.Nothing}},
			"assist":  {},
			"topic":   {Args: predict.Set{"amounts", "backup", "dates", "statement", "voice", "readme"}},
		},
	}
	spec.Complete(path.Base(os.Args[0]))
}
