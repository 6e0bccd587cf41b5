package main

import (
	"github.com/spf13/cobra"

	automata "github.com/evertonsc/automata-2024-t2"
)

func newConvertCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert FILE",
		Short: "Convert an automaton to an equivalent deterministic one",
		Long: `Applies the subset construction and prints the resulting DFA in the same
five-section format (or as JSON/YAML). DFA states are named after the sets of
original states they stand for, e.g. {q0,q1}.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fa, err := a.load(args[0])
			if err != nil {
				return err
			}

			dfa, err := automata.Determinize(fa,
				automata.WithWorkLimit(a.cfg.WorkLimit),
				automata.WithLogger(a.logger),
			)
			if err != nil {
				return err
			}
			a.logger.Info("converted", "file", args[0], "states", dfa.NumStates(), "transitions", dfa.NumTransitions())

			return writeAutomaton(a.stdout, a.cfg.Output, dfa)
		},
	}
	cmd.Flags().IntVar(&a.flags.WorkLimit, "work-limit", 0, "give up after discovering this many DFA states (0 means unlimited)")
	return cmd
}
