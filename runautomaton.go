package automata

import "fmt"

// RunAutomaton Is a deterministic automaton compiled into a dense transition table, for
// running many words against the same automaton.
type RunAutomaton struct {
	alphabet map[rune]int
	accept   []bool
	initial  int

	// transitions[state*len(alphabet)+symbol] is the destination, or -1.
	transitions []int
}

// NewRunAutomaton Compiles a, which must be deterministic; use Determinize first otherwise.
func NewRunAutomaton(a *Automaton) (*RunAutomaton, error) {
	if !a.IsDeterministic() {
		return nil, fmt.Errorf("compile run automaton: %w", ErrNondeterministic)
	}

	numSymbols := len(a.alphabet)
	r := &RunAutomaton{
		alphabet:    make(map[rune]int, numSymbols),
		accept:      make([]bool, a.NumStates()),
		initial:     a.stateIndex[a.initial],
		transitions: make([]int, a.NumStates()*numSymbols),
	}
	for i, symbol := range a.alphabet {
		r.alphabet[[]rune(symbol)[0]] = i
	}
	for i := range r.transitions {
		r.transitions[i] = -1
	}
	for i, state := range a.states {
		r.accept[i] = a.IsAccept(state)
	}
	for _, t := range a.transitions {
		source := a.stateIndex[t.Source]
		symbol := r.alphabet[[]rune(t.Symbol)[0]]
		r.transitions[source*numSymbols+symbol] = a.stateIndex[t.Dest]
	}
	return r, nil
}

// Step Returns the destination of state on symbol, -1 if there is none.
func (r *RunAutomaton) Step(state int, symbol rune) int {
	i, ok := r.alphabet[symbol]
	if !ok {
		return -1
	}
	return r.transitions[state*len(r.alphabet)+i]
}

// Run Returns the same verdict as Run on the compiled automaton.
func (r *RunAutomaton) Run(word string) Verdict {
	for _, c := range word {
		if _, ok := r.alphabet[c]; !ok {
			return Invalid
		}
	}

	p := r.initial
	for _, c := range word {
		p = r.Step(p, c)
		if p == -1 {
			return Rejected
		}
	}
	if r.accept[p] {
		return Accepted
	}
	return Rejected
}
