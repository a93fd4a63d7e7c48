package cmd

import (
	"flag"

	"github.com/etnz/stockplay"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command line of the commander c for shell completion.
//
// Subcommands and their flags are discovered from c, the remove command also
// completes the symbols held in the portfolio file.
func Completion(c *subcommands.Commander) *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: make(map[string]complete.Predictor),
	}
	c.VisitAll(func(fl *flag.Flag) {
		root.Flags[fl.Name] = flagPredictor(fl)
	})
	root.Flags["portfolio-file"] = predict.Files("*.csv")

	c.VisitCommands(func(_ *subcommands.CommandGroup, sc subcommands.Command) {
		fs := flag.NewFlagSet(sc.Name(), flag.ContinueOnError)
		sc.SetFlags(fs)
		sub := &complete.Command{Flags: make(map[string]complete.Predictor)}
		fs.VisitAll(func(fl *flag.Flag) {
			sub.Flags[fl.Name] = flagPredictor(fl)
		})
		root.Sub[sc.Name()] = sub
	})

	if remove, ok := root.Sub["remove"]; ok {
		remove.Args = complete.PredictFunc(predictSymbols)
	}
	if help, ok := root.Sub["help"]; ok {
		var names []string
		for name := range root.Sub {
			names = append(names, name)
		}
		help.Args = predict.Set(names)
	}
	return root
}

// flagPredictor predicts nothing for boolean flags and anything for the others.
func flagPredictor(fl *flag.Flag) complete.Predictor {
	if b, ok := fl.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
		return predict.Nothing
	}
	return predict.Something
}

// predictSymbols returns the symbols of the portfolio file.
func predictSymbols(prefix string) []string {
	s, err := stockplay.Open(stockplay.NewCSVFile(*portfolioFile))
	if err != nil {
		return nil
	}
	return s.Symbols()
}
