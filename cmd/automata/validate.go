package main

import (
	"fmt"

	"github.com/spf13/cobra"

	automata "github.com/evertonsc/automata-2024-t2"
	"github.com/evertonsc/automata-2024-t2/internal/config"
)

type validateReport struct {
	File          string   `json:"file" yaml:"file"`
	States        int      `json:"states" yaml:"states"`
	Transitions   int      `json:"transitions" yaml:"transitions"`
	Deterministic bool     `json:"deterministic" yaml:"deterministic"`
	Empty         bool     `json:"empty" yaml:"empty"`
	Unreachable   []string `json:"unreachable,omitempty" yaml:"unreachable,omitempty"`
}

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Check an automaton description",
		Long:  `Loads the description and reports the first broken reference it finds, or a short summary of the automaton.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fa, err := a.load(args[0])
			if err != nil {
				return err
			}

			report := validateReport{
				File:          args[0],
				States:        fa.NumStates(),
				Transitions:   fa.NumTransitions(),
				Deterministic: fa.IsDeterministic(),
				Empty:         automata.IsEmpty(fa),
				Unreachable:   unreachable(fa),
			}
			a.logger.Info("automaton is valid", "file", args[0])

			if a.cfg.Output != config.OutputText {
				return encode(a.stdout, a.cfg.Output, report)
			}
			_, err = fmt.Fprintf(a.stdout, "%s: %d states, %d transitions, deterministic=%t, empty=%t, unreachable=%v\n",
				report.File, report.States, report.Transitions, report.Deterministic, report.Empty, report.Unreachable)
			return err
		},
	}
}

func unreachable(fa *automata.Automaton) []string {
	live := make(map[string]struct{})
	for _, state := range automata.Reachable(fa) {
		live[state] = struct{}{}
	}

	var dead []string
	for _, state := range fa.States() {
		if _, ok := live[state]; !ok {
			dead = append(dead, state)
		}
	}
	return dead
}
