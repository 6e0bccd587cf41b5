package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	automata "github.com/evertonsc/automata-2024-t2"
)

func newRunCmd(a *app) *cobra.Command {
	var nondeterministic bool

	cmd := &cobra.Command{
		Use:   "run FILE [WORD...]",
		Short: "Run words against an automaton",
		Long: `Runs every word and reports ACCEPTED, REJECTED or INVALID (a character outside the alphabet).
Words are read one per line from stdin when none are given.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fa, err := a.load(args[0])
			if err != nil {
				return err
			}

			words := args[1:]
			if len(words) == 0 {
				if words, err = readWords(a); err != nil {
					return err
				}
			}

			verdicts := make(map[string]automata.Verdict, len(words))
			if nondeterministic {
				for _, word := range words {
					verdicts[word] = automata.RunNondeterministic(fa, word)
				}
			} else {
				if !fa.IsDeterministic() {
					a.logger.Warn("running a nondeterministic automaton along the first declared path; use --nfa or convert it first",
						"file", args[0])
				}
				verdicts = automata.Process(fa, words)
			}
			a.logger.Debug("processed words", "count", len(words))

			return writeVerdicts(a.stdout, a.cfg.Output, words, verdicts)
		},
	}
	cmd.Flags().BoolVar(&nondeterministic, "nfa", false, "follow every epsilon and nondeterministic path")
	return cmd
}

func readWords(a *app) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(a.stdin)
	for scanner.Scan() {
		words = append(words, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read words: %w", err)
	}
	return words, nil
}
