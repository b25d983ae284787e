package cmd

import (
	"flag"

	"github.com/etnz/tradebook/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

var periods = predict.Set{"weekly", "monthly", "yearly"}

// argPredictors are the predictors of positional arguments, by subcommand.
var argPredictors = map[string]complete.Predictor{
	"import": predict.Files("*"),
	"topic":  topics{},
}

// flagPredictors are the predictors of flag values, by subcommand and flag.
var flagPredictors = map[string]map[string]complete.Predictor{
	"stats": {"p": periods},
	"add":   {"d": predict.Something, "n": predict.Something},
}

// Completion returns the shell completion of the application: global flags
// and every subcommand with its flags.
//
// Completion is installed with COMP_INSTALL=1 tb.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: globalFlags(flag.CommandLine),
	}
	for _, c := range Commands {
		root.Sub[c.Name()] = subcommandCompletion(c)
	}
	return root
}

func globalFlags(fs *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		switch f.Name {
		case "v", "y":
			flags[f.Name] = predict.Nothing
		case "lang":
			flags[f.Name] = predict.Set{"tw", "en"}
		default:
			flags[f.Name] = predict.Something
		}
	})
	return flags
}

func subcommandCompletion(c subcommands.Command) *complete.Command {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(fs)
	sub := &complete.Command{
		Flags: make(map[string]complete.Predictor),
		Args:  argPredictors[c.Name()],
	}
	fs.VisitAll(func(f *flag.Flag) {
		p, ok := flagPredictors[c.Name()][f.Name]
		if !ok {
			p = predict.Something
		}
		sub.Flags[f.Name] = p
	})
	return sub
}

// topics predicts documentation topics.
type topics struct{}

func (topics) Predict(string) []string {
	all, _ := docs.GetAllTopics()
	return all
}
