package automata

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/bits-and-blooms/bitset"
)

type determinizeOptions struct {
	workLimit int
	logger    *slog.Logger
}

type DeterminizeOption func(*determinizeOptions)

// WithWorkLimit Caps the number of DFA states the subset construction may discover before
// giving up with ErrTooComplexToDeterminize. Zero or less means no limit, the default.
func WithWorkLimit(workLimit int) DeterminizeOption {
	return func(o *determinizeOptions) {
		o.workLimit = workLimit
	}
}

// WithLogger Reports every discovered DFA state at debug level.
func WithLogger(logger *slog.Logger) DeterminizeOption {
	return func(o *determinizeOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Determinize Returns a deterministic automaton accepting the same language as a.
// Worst case complexity: exponential in number of states.
//
// Every DFA state stands for an epsilon-closed set of states of a and is named after it with
// CanonicalName. States are discovered breadth-first from the closure of the initial state,
// trying the alphabet in order, so two runs over the same automaton produce the same result.
// Sets of states that can never be reached are not part of the result, nor is the empty set:
// a DFA state with no move on a symbol simply has no transition for it.
func Determinize(a *Automaton, opts ...DeterminizeOption) (*Automaton, error) {
	o := &determinizeOptions{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, fn := range opts {
		fn(o)
	}

	table := newTransitionTable(a)
	initialSet := table.start().Freeze(a.states)

	// Same members will always have the same hashCode
	newState := NewHashMap[int](WithCapacity(a.NumStates()))
	worklist := []*FrozenStateSet{initialSet}

	states := make([]string, 0)
	finals := make([]string, 0)
	transitions := make([]Transition, 0)

	for len(worklist) > 0 {
		current := worklist[0]
		worklist = worklist[1:]

		if newState.Contains(current) {
			continue
		}
		if o.workLimit > 0 && newState.Size() >= o.workLimit {
			return nil, fmt.Errorf("%w: more than %d states", ErrTooComplexToDeterminize, o.workLimit)
		}

		newState.Set(current, len(states))
		states = append(states, current.Name())
		accept := current.Intersects(a.isAccept)
		if accept {
			finals = append(finals, current.Name())
		}
		o.logger.Debug("dfa state", "state", current.Name(), "members", current.Size(), "accept", accept)

		members := current.GetArray()
		for _, symbol := range a.alphabet {
			moved := table.move(members, symbol)
			if moved.IsEmpty() {
				continue
			}

			next := table.closure(moved).Freeze(a.states)
			transitions = append(transitions, Transition{
				Source: current.Name(),
				Symbol: symbol,
				Dest:   next.Name(),
			})
			if !newState.Contains(next) {
				worklist = append(worklist, next)
			}
		}
	}

	o.logger.Debug("determinized", "states", len(states), "transitions", len(transitions))

	return New(states, a.alphabet, transitions, initialSet.Name(), finals)
}

// IsEmpty Returns true if the given automaton accepts no strings.
func IsEmpty(a *Automaton) bool {
	if a.IsAccept(a.initial) {
		// Common case: it accepts the empty string
		return false
	}

	live := reachable(a)
	return live.IntersectionCardinality(a.isAccept) == 0
}

// Reachable Returns the states reachable from the initial state following any transition,
// epsilon included, in declaration order.
func Reachable(a *Automaton) []string {
	live := reachable(a)
	states := make([]string, 0, live.Count())
	for i, ok := live.NextSet(0); ok; i, ok = live.NextSet(i + 1) {
		states = append(states, a.states[i])
	}
	return states
}

func reachable(a *Automaton) *bitset.BitSet {
	table := newTransitionTable(a)
	seen := bitset.New(uint(a.NumStates()))

	start := a.stateIndex[a.initial]
	seen.Set(uint(start))
	workList := []int{start}

	for len(workList) > 0 {
		state := workList[0]
		workList = workList[1:]

		visit := func(dest int) {
			if !seen.Test(uint(dest)) {
				seen.Set(uint(dest))
				workList = append(workList, dest)
			}
		}
		for _, dest := range table.epsilon[state] {
			visit(dest)
		}
		for _, dests := range table.moves[state] {
			for _, dest := range dests {
				visit(dest)
			}
		}
	}
	return seen
}

// Union Returns an automaton accepting the union of the languages of the given automata.
// The states of the i-th automaton are renamed "i.name", and a new initial state "q" has an
// epsilon transition to each of their initial states, so the result is nondeterministic.
func Union(automatons ...*Automaton) (*Automaton, error) {
	const initial = "q"

	states := []string{initial}
	alphabet := make([]string, 0)
	seenSymbols := make(map[string]struct{})
	transitions := make([]Transition, 0)
	finals := make([]string, 0)

	for i, a := range automatons {
		rename := func(state string) string {
			return fmt.Sprintf("%d.%s", i, state)
		}

		for _, symbol := range a.alphabet {
			if _, ok := seenSymbols[symbol]; !ok {
				seenSymbols[symbol] = struct{}{}
				alphabet = append(alphabet, symbol)
			}
		}
		for _, state := range a.states {
			states = append(states, rename(state))
		}
		for _, state := range a.finals {
			finals = append(finals, rename(state))
		}

		// Add epsilon transition from new initial state
		transitions = append(transitions, Transition{Source: initial, Symbol: Epsilon, Dest: rename(a.initial)})
		for _, t := range a.transitions {
			transitions = append(transitions, Transition{
				Source: rename(t.Source),
				Symbol: t.Symbol,
				Dest:   rename(t.Dest),
			})
		}
	}

	return New(states, alphabet, transitions, initial, finals)
}
