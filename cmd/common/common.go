package common

import "github.com/GiGurra/boa/pkg/boa"

// DefaultParamEnricher derives flag names, short flags and bool defaults from
// the struct fields of a command's Params.
func DefaultParamEnricher() boa.ParamEnricher {
	return boa.ParamEnricherCombine(
		boa.ParamEnricherBool,
		boa.ParamEnricherName,
		boa.ParamEnricherShort,
	)
}
