package main

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gokronrod/quad"
)

// namedIntegrand is one closed-form integrand quadcli knows how to
// evaluate by name, paired with the default interval it is usually
// exercised over.
type namedIntegrand struct {
	f    quad.Func
	a, b float64
}

var integrands = map[string]namedIntegrand{
	"cos": {
		f: func(x float64) quad.Vector { return quad.Vector{math.Cos(x)} },
		a: 0, b: 1,
	},
	"runge": {
		f: func(x float64) quad.Vector { return quad.Vector{1 / (1 + x*x)} },
		a: -1, b: 1,
	},
	"exp-decay": {
		f: func(x float64) quad.Vector { return quad.Vector{math.Exp(-x)} },
		a: 0, b: math.Inf(1),
	},
	"gaussian": {
		f: func(x float64) quad.Vector { return quad.Vector{math.Exp(-x * x)} },
		a: math.Inf(-1), b: math.Inf(1),
	},
	"sinc": {
		f: func(x float64) quad.Vector {
			if x == 0 {
				return quad.Vector{1}
			}
			return quad.Vector{math.Sin(x) / x}
		},
		a: 0, b: 10000,
	},
	"trig-pair": {
		f: func(x float64) quad.Vector { return quad.Vector{math.Cos(x), math.Sin(x)} },
		a: 0, b: math.Pi,
	},
}

func lookupIntegrand(name string) (namedIntegrand, error) {
	ni, ok := integrands[name]
	if !ok {
		return namedIntegrand{}, fmt.Errorf("quadcli: unknown integrand %q (known: %v)", name, integrandNames())
	}
	return ni, nil
}

func integrandNames() []string {
	names := make([]string, 0, len(integrands))
	for n := range integrands {
		names = append(names, n)
	}
	return names
}
