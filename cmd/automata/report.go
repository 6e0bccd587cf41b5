package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	automata "github.com/evertonsc/automata-2024-t2"
	"github.com/evertonsc/automata-2024-t2/internal/config"
)

type transitionReport struct {
	Source string `json:"source" yaml:"source"`
	Symbol string `json:"symbol" yaml:"symbol"`
	Dest   string `json:"dest" yaml:"dest"`
}

type automatonReport struct {
	Alphabet      []string           `json:"alphabet" yaml:"alphabet"`
	States        []string           `json:"states" yaml:"states"`
	Finals        []string           `json:"finals" yaml:"finals"`
	Initial       string             `json:"initial" yaml:"initial"`
	Transitions   []transitionReport `json:"transitions" yaml:"transitions"`
	Deterministic bool               `json:"deterministic" yaml:"deterministic"`
}

func newAutomatonReport(fa *automata.Automaton) automatonReport {
	transitions := fa.Transitions()
	r := automatonReport{
		Alphabet:      fa.Alphabet(),
		States:        fa.States(),
		Finals:        fa.Finals(),
		Initial:       fa.Initial(),
		Transitions:   make([]transitionReport, len(transitions)),
		Deterministic: fa.IsDeterministic(),
	}
	for i, t := range transitions {
		r.Transitions[i] = transitionReport{Source: t.Source, Symbol: t.Symbol, Dest: t.Dest}
	}
	return r
}

// encode writes v as JSON or YAML. Text reports are written by each command.
func encode(w io.Writer, output string, v any) error {
	switch output {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unsupported output %q", output)
}

func writeAutomaton(w io.Writer, output string, fa *automata.Automaton) error {
	if output == config.OutputText {
		_, err := fa.WriteTo(w)
		return err
	}
	return encode(w, output, newAutomatonReport(fa))
}

// writeVerdicts lists words in the order given, once each.
func writeVerdicts(w io.Writer, output string, words []string, verdicts map[string]automata.Verdict) error {
	if output != config.OutputText {
		return encode(w, output, verdicts)
	}

	seen := make(map[string]struct{}, len(words))
	for _, word := range words {
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		if _, err := fmt.Fprintf(w, "%s: %s\n", strconv.Quote(word), verdicts[word]); err != nil {
			return err
		}
	}
	return nil
}
