package automata

import (
	"fmt"
	"unicode/utf8"
)

// Automata Builds small automata over a fixed alphabet.
type Automata struct {
	alphabet []string
}

func NewAutomata(alphabet ...string) *Automata {
	return &Automata{alphabet: alphabet}
}

// MakeEmpty
// Returns a new (deterministic) automaton with the empty language.
func (f *Automata) MakeEmpty() (*Automaton, error) {
	return New([]string{"q0"}, f.alphabet, nil, "q0", nil)
}

// MakeEmptyString
// Returns a new (deterministic) automaton that accepts only the empty string.
func (f *Automata) MakeEmptyString() (*Automaton, error) {
	return New([]string{"q0"}, f.alphabet, nil, "q0", []string{"q0"})
}

// MakeAnyString
// Returns a new (deterministic) automaton that accepts all strings over the alphabet.
func (f *Automata) MakeAnyString() (*Automaton, error) {
	transitions := make([]Transition, len(f.alphabet))
	for i, symbol := range f.alphabet {
		transitions[i] = Transition{Source: "q0", Symbol: symbol, Dest: "q0"}
	}
	return New([]string{"q0"}, f.alphabet, transitions, "q0", []string{"q0"})
}

// MakeString
// Returns a new (deterministic) automaton that accepts only the given word.
func (f *Automata) MakeString(word string) (*Automaton, error) {
	states := make([]string, 0, utf8.RuneCountInString(word)+1)
	transitions := make([]Transition, 0, cap(states)-1)

	states = append(states, "q0")
	for _, r := range word {
		next := fmt.Sprintf("q%d", len(states))
		transitions = append(transitions, Transition{
			Source: states[len(states)-1],
			Symbol: string(r),
			Dest:   next,
		})
		states = append(states, next)
	}
	return New(states, f.alphabet, transitions, "q0", states[len(states)-1:])
}
