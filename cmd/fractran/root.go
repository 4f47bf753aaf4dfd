package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ezrec/fractran/config"
	"github.com/ezrec/fractran/fractran"
	"github.com/ezrec/fractran/internal"
	"github.com/ezrec/fractran/translate"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "fractran [file]",
		Short:         "Run a FRACTRAN program, printing every state",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}

			if cfg.Lang != "" {
				translate.Use(cfg.Lang)
			}

			input := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				inf, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer inf.Close()
				input = inf
			}

			return run(cfg, input, cmd.OutOrStdout())
		},
	}

	flags := root.Flags()
	flags.Int("limit", 0, "maximum number of states to print (0 is unlimited)")
	flags.String("state", "", "starlark expression replacing the initial state, e.g. 'pow(2, 3) * pow(3, 5)'")
	flags.Bool("factor", false, "print states as prime powers")
	flags.BoolP("verbose", "v", false, "log every fraction applied")
	flags.String("config", "", "config file (default ~/.config/fractran/config.toml)")
	flags.String("lang", "", "message locale, e.g. en-US")

	return root
}

// run parses the program text from input and writes its trace to output.
func run(cfg config.Config, input io.Reader, output io.Writer) (err error) {
	prog, err := fractran.ParseReader(input)
	if err != nil {
		return
	}

	if cfg.State != "" {
		prog.State, err = fractran.EvalState(cfg.State)
		if err != nil {
			return
		}
	}

	prog.Verbose = cfg.Verbose

	w := bufio.NewWriter(output)
	defer func() {
		ferr := w.Flush()
		if err == nil {
			err = ferr
		}
	}()

	for state := range internal.IterTake(prog.Run(), cfg.Limit) {
		if cfg.Factor {
			_, err = fmt.Fprintln(w, fractran.Factor(state))
		} else {
			_, err = fmt.Fprintln(w, state)
		}
		if err != nil {
			return
		}
	}

	err = prog.Err()
	return
}
