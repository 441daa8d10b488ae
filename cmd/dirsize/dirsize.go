package dirsize

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/dirsize/cmd/common"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

type Params struct {
	Args    []string `pos:"true" optional:"true" help:"Directory path, optionally followed by a unit: byte, kilo, mega or giga."`
	Verbose bool     `short:"v" help:"Log debug information to stderr." optional:"true"`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "dirsize <path> [unit]",
		Short:       "Total size of the top-level entries in a directory",
		Long:        "Sum the sizes of the immediate, non-hidden entries of a directory and print the total in bytes, kilobytes, megabytes or gigabytes.\nSubdirectories are not descended into.",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			common.SetupLogging(os.Stderr, params.Verbose)
			if code := Run(params); code != 0 {
				os.Exit(code)
			}
		},
	}.ToCobra()
}

// Run executes the command against the local filesystem and returns the
// process exit code.
func Run(params *Params) int {
	r := runner{
		fs:     afero.NewOsFs(),
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	return r.run(params)
}

type runner struct {
	fs     afero.Fs
	stdout io.Writer
	stderr io.Writer
}

func (r runner) run(params *Params) int {
	args := append([]string{"dirsize"}, params.Args...)

	if len(args) < 2 {
		_, _ = fmt.Fprintln(r.stdout, "Missing arguments")
		return 1
	}

	unit, err := ResolveUnit(args)
	if err != nil {
		slog.Debug("falling back to bytes", "error", err)
	}
	factor := FactorOf(unit, err)
	slog.Debug("resolved unit", "unit", unit, "factor", factor)

	// A failed sum is reported but still exits 0.
	total, err := TotalSize(r.fs, args[1], factor)
	if err != nil {
		_, _ = fmt.Fprintf(r.stderr, "Error: %v\n", err)
		return 0
	}

	_, _ = fmt.Fprintf(r.stdout, "Total size: %d\n", total)
	return 0
}
