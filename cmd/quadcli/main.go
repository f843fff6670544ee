// Command quadcli runs the adaptive quadrature engine against a handful
// of named closed-form integrands, for manual exercise of the engine
// from a shell instead of from Go test code.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("quadcli failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "quadcli",
		Short: "Run adaptive Gauss-Kronrod quadrature against a named integrand",
	}
	root.AddCommand(newIntegrateCmd())
	return root
}

func printResultTable(name string, out integrateOutput) {
	fmt.Printf("integrand   = %s\n", name)
	fmt.Printf("interval    = [%v, %v]\n", out.a, out.b)
	fmt.Printf("engine      = %s\n", out.engine)
	for i, v := range out.value {
		fmt.Printf("value[%d]    = %.12g\n", i, v)
	}
	fmt.Printf("abserr      = %.3e\n", out.abserr)
	if out.diag != nil {
		fmt.Printf("neval       = %d\n", out.diag.NEval)
		fmt.Printf("subintervals= %d\n", out.diag.Last)
	}
}
