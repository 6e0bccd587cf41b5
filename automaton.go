package automata

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bits-and-blooms/bitset"
)

// Epsilon is the reserved symbol of a transition that consumes no input.
const Epsilon = "&"

// Transition is a single (source, symbol, dest) rule. Symbol is either a member of the
// alphabet or Epsilon.
type Transition struct {
	Source string
	Symbol string
	Dest   string
}

func (t Transition) IsEpsilon() bool {
	return t.Symbol == Epsilon
}

type stepKey struct {
	state  string
	symbol string
}

// Automaton Represents a finite automaton over named states and single character symbols.
// An Automaton is only created through New (or Load, or Determinize) and is never modified
// afterward; every accessor hands out a copy, so values may be shared between goroutines.
type Automaton struct {
	states      []string
	alphabet    []string
	transitions []Transition
	initial     string
	finals      []string

	// Position of every state in states; accept is indexed the same way.
	stateIndex map[string]int
	symbols    map[string]struct{}
	isAccept   *bitset.BitSet

	// First destination declared for each (state, symbol) pair.
	step map[stepKey]string

	// True if there are no epsilon transitions and no state has two transitions leaving
	// with the same symbol.
	deterministic bool
}

type options struct {
	deterministic bool
}

// Option configures New and Load.
type Option func(*options)

// WithDeterministic rejects descriptions that have epsilon transitions or more than one
// transition for the same (state, symbol) pair.
func WithDeterministic() Option {
	return func(o *options) {
		o.deterministic = true
	}
}

// New validates the given parts and returns the automaton they describe. The returned error
// is always a *ValidationError for the first violation found; no partially valid automaton
// is ever returned.
//
// New is stricter than the description format itself: besides checking that every
// reference names a declared state or symbol, it rejects repeated alphabet symbols
// (ErrInvalidAlphabet) and repeated state names (ErrDuplicateState), since either would make
// the state index and the alphabet ambiguous. Repeated final states are merged instead.
func New(states, alphabet []string, transitions []Transition, initial string, finals []string, opts ...Option) (*Automaton, error) {
	o := &options{}
	for _, fn := range opts {
		fn(o)
	}

	a := &Automaton{
		states:        slices.Clone(states),
		alphabet:      slices.Clone(alphabet),
		transitions:   slices.Clone(transitions),
		initial:       initial,
		stateIndex:    make(map[string]int, len(states)),
		symbols:       make(map[string]struct{}, len(alphabet)),
		isAccept:      bitset.New(uint(len(states))),
		step:          make(map[stepKey]string, len(transitions)),
		deterministic: true,
	}

	for i, symbol := range a.alphabet {
		if symbol == Epsilon || utf8.RuneCountInString(symbol) != 1 {
			return nil, a.fail(ErrInvalidAlphabet, symbol, sectionAlphabet, i)
		}
		if _, ok := a.symbols[symbol]; ok {
			return nil, a.fail(ErrInvalidAlphabet, symbol, sectionAlphabet, i)
		}
		a.symbols[symbol] = struct{}{}
	}

	for i, state := range a.states {
		if state == "" || strings.IndexFunc(state, unicode.IsSpace) >= 0 {
			return nil, a.fail(ErrInvalidStateName, state, sectionStates, i)
		}
		if _, ok := a.stateIndex[state]; ok {
			return nil, a.fail(ErrDuplicateState, state, sectionStates, i)
		}
		a.stateIndex[state] = i
	}

	if !a.HasState(initial) {
		return nil, a.fail(ErrInvalidInitialState, initial, sectionInitial, 0)
	}

	a.finals = make([]string, 0, len(finals))
	for i, state := range finals {
		idx, ok := a.stateIndex[state]
		if !ok {
			return nil, a.fail(ErrInvalidFinalState, state, sectionFinals, i)
		}
		if a.isAccept.Test(uint(idx)) {
			continue
		}
		a.isAccept.Set(uint(idx))
		a.finals = append(a.finals, state)
	}

	for i, t := range a.transitions {
		if !a.HasState(t.Source) {
			return nil, a.fail(ErrInvalidTransitionState, t.Source, sectionTransitions, i)
		}
		if !a.HasState(t.Dest) {
			return nil, a.fail(ErrInvalidTransitionState, t.Dest, sectionTransitions, i)
		}
		if !t.IsEpsilon() && !a.HasSymbol(t.Symbol) {
			return nil, a.fail(ErrInvalidTransitionSymbol, t.Symbol, sectionTransitions, i)
		}

		if t.IsEpsilon() {
			a.deterministic = false
			if o.deterministic {
				return nil, a.fail(ErrNondeterministic, t.Symbol, sectionTransitions, i)
			}
			continue
		}

		key := stepKey{state: t.Source, symbol: t.Symbol}
		if _, ok := a.step[key]; ok {
			a.deterministic = false
			if o.deterministic {
				return nil, a.fail(ErrNondeterministic, t.Symbol, sectionTransitions, i)
			}
			continue
		}
		a.step[key] = t.Dest
	}

	return a, nil
}

func (a *Automaton) fail(err error, token string, s section, index int) *ValidationError {
	return &ValidationError{Err: err, Token: token, section: s, index: index}
}

// States Returns the state names in declaration order.
func (a *Automaton) States() []string {
	return slices.Clone(a.states)
}

// Alphabet Returns the alphabet symbols in declaration order.
func (a *Automaton) Alphabet() []string {
	return slices.Clone(a.alphabet)
}

// Transitions Returns every transition in declaration order.
func (a *Automaton) Transitions() []Transition {
	return slices.Clone(a.transitions)
}

// Initial Returns the initial state.
func (a *Automaton) Initial() string {
	return a.initial
}

// Finals Returns the accept states, without duplicates.
func (a *Automaton) Finals() []string {
	return slices.Clone(a.finals)
}

// NumStates How many states this automaton has.
func (a *Automaton) NumStates() int {
	return len(a.states)
}

// NumTransitions How many transitions this automaton has.
func (a *Automaton) NumTransitions() int {
	return len(a.transitions)
}

func (a *Automaton) HasState(state string) bool {
	_, ok := a.stateIndex[state]
	return ok
}

func (a *Automaton) HasSymbol(symbol string) bool {
	_, ok := a.symbols[symbol]
	return ok
}

// IsAccept Returns true if this state is an accept state.
func (a *Automaton) IsAccept(state string) bool {
	idx, ok := a.stateIndex[state]
	return ok && a.isAccept.Test(uint(idx))
}

// IsDeterministic Returns true if this automaton has no epsilon transitions and, for every
// state, at most one transition for each symbol.
func (a *Automaton) IsDeterministic() bool {
	return a.deterministic
}

// Step Performs lookup in transitions, assuming determinism.
//
// When several transitions leave state with the same symbol, the one declared first wins.
// That makes the result depend on declaration order for a nondeterministic automaton, so
// callers that need every path should use RunNondeterministic or Determinize first.
// Epsilon transitions are never followed.
//
// Returns the destination state and false if no matching outgoing transition exists.
func (a *Automaton) Step(state, symbol string) (string, bool) {
	dest, ok := a.step[stepKey{state: state, symbol: symbol}]
	return dest, ok
}
