package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gokronrod/quad"
)

type integrateOutput struct {
	a, b   float64
	engine string
	value  quad.Vector
	abserr float64
	diag   *quad.Diagnostics
}

func newIntegrateCmd() *cobra.Command {
	var (
		absTol     float64
		relTol     float64
		rule       int
		limit      int
		threads    int
		diagnostic bool
		parallel   bool
	)

	cmd := &cobra.Command{
		Use:   "integrate <integrand>",
		Short: "Integrate a named closed-form integrand over its default interval",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			ni, err := lookupIntegrand(name)
			if err != nil {
				return err
			}

			opts := []quad.Option{
				quad.WithAbsTol(absTol),
				quad.WithRelTol(relTol),
				quad.WithRule(rule),
				quad.WithLimit(limit),
			}
			if diagnostic {
				opts = append(opts, quad.WithDiagnostics())
			}
			if parallel {
				opts = append(opts, quad.WithThreads(threads))
			}
			if name == "sinc" {
				opts = append(opts, quad.WithBreakpoints(2000, 5000, 7000))
			}

			log.Debug().Str("integrand", name).Float64("a", ni.a).Float64("b", ni.b).
				Bool("parallel", parallel).Msg("starting integration")

			var res quad.Result
			engine := "sequential"
			if parallel {
				engine = "parallel"
				res, err = quad.IntegrateParallel(ni.f, ni.a, ni.b, opts...)
			} else {
				res, err = quad.Integrate(ni.f, ni.a, ni.b, opts...)
			}
			if err != nil {
				return err
			}

			printResultTable(name, integrateOutput{
				a: ni.a, b: ni.b,
				engine: engine,
				value:  res.Value,
				abserr: res.AbsErr,
				diag:   res.Diagnostics,
			})
			return nil
		},
	}

	cmd.Flags().Float64Var(&absTol, "abstol", 1.49e-8, "absolute error tolerance")
	cmd.Flags().Float64Var(&relTol, "reltol", 1.49e-8, "relative error tolerance")
	cmd.Flags().IntVar(&rule, "rule", 2, "Gauss-Kronrod rule key (1..6 for 15/21/31/41/51/61 points)")
	cmd.Flags().IntVar(&limit, "limit", 50, "maximum number of subintervals")
	cmd.Flags().BoolVar(&diagnostic, "diagnostics", false, "request the diagnostic payload")
	cmd.Flags().BoolVar(&parallel, "parallel", false, "use the worker-pool engine instead of the sequential one")
	cmd.Flags().IntVar(&threads, "threads", 0, "worker pool size for --parallel (0 = runtime.GOMAXPROCS)")

	return cmd
}
