package automata

import (
	"errors"
	"fmt"
)

// Malformed input.
var (
	ErrTooFewLines         = errors.New("description needs at least four lines")
	ErrMalformedTransition = errors.New("transition must have exactly three tokens")
)

// Invalid references.
var (
	ErrInvalidInitialState     = errors.New("invalid initial state")
	ErrInvalidFinalState       = errors.New("invalid final state")
	ErrInvalidTransitionState  = errors.New("transition references an unknown state")
	ErrInvalidTransitionSymbol = errors.New("transition symbol is not in the alphabet")
)

var (
	ErrInvalidAlphabet  = errors.New("invalid alphabet symbol")
	ErrDuplicateState   = errors.New("duplicate state")
	ErrInvalidStateName = errors.New("invalid state name")
	ErrNondeterministic = errors.New("automaton is not deterministic")

	// ErrTooComplexToDeterminize is returned by Determinize when the subset construction
	// discovers more states than the configured work limit.
	ErrTooComplexToDeterminize = errors.New("determinizing automaton would exceed work limit")
)

// ValidationError describes which construction invariant an automaton description violates.
// Err is always one of the sentinel errors above; Line is the 1-based line of the
// description when the failure comes from Load, 0 otherwise.
type ValidationError struct {
	Err   error
	Line  int
	Token string

	section section
	index   int
}

// section of the description an invariant belongs to, used by Load to report line numbers.
type section int

const (
	sectionNone section = iota
	sectionAlphabet
	sectionStates
	sectionFinals
	sectionInitial
	sectionTransitions
)

func (e *ValidationError) Error() string {
	switch {
	case e.Line > 0 && e.Token != "":
		return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Token)
	case e.Line > 0:
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	case e.Token != "":
		return fmt.Sprintf("%v: %q", e.Err, e.Token)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
