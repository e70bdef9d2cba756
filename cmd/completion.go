package cmd

import (
	"github.com/etnz/optimaxx"
	"github.com/etnz/optimaxx/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion of the commands.
//
// Instrument names are predicted from the built-in catalog, since the -catalog flag is not parsed yet.
func Completion() *complete.Command {
	names := predict.Set(optimaxx.DefaultCatalog().Names())
	topics, _ := docs.GetAllTopics()
	methods := predict.Set{optimaxx.Geometric.String(), optimaxx.Arithmetic.String()}

	simulation := map[string]complete.Predictor{
		"capital":  predict.Something,
		"currency": predict.Something,
		"horizon":  predict.Set{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"},
		"method":   methods,
		"end":      predict.Something,
	}
	simulate := map[string]complete.Predictor{"chart": predict.Files("*.png"), "json": predict.Nothing}
	for k, v := range simulation {
		simulate[k] = v
	}

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"provider":      predict.Set{"yahoo", "eodhd"},
			"eodhd-api-key": predict.Something,
			"catalog":       predict.Files("*.jsonl"),
			"cache":         predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"simulate": {Flags: simulate, Args: names},
			"explain":  {Flags: simulation, Args: names},
			"assist":   {},
			"catalog":  {},
			"search":   {Args: predict.Something},
			"serve":    {Flags: map[string]complete.Predictor{"addr": predict.Something}},
			"topic":    {Args: predict.Set(append(topics, docs.Index, "*"))},
			"help":     {},
			"flags":    {},
			"commands": {},
		},
	}
}
