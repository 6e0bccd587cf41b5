package automata

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Lines of the description, 1-based.
const (
	alphabetLine = iota + 1
	statesLine
	finalsLine
	initialLine
	firstTransitionLine
)

// Load Reads an automaton description and returns the automaton it describes.
//
// The description has five sections, one per line and in this order: the alphabet symbols,
// the state names, the final state names, the initial state name, then one
// "origin symbol destination" transition per remaining line. Tokens are separated by
// whitespace and Epsilon may be used as a transition symbol. For example:
//
//	a b
//	q0 q1 q2 q3
//	q0 q3
//	q0
//	q0 a q1
//	q0 b q2
//	q1 a q0
//
// Failures are reported as *ValidationError carrying the offending line.
func Load(r io.Reader, opts ...Option) (*Automaton, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	lines := make([]string, 0, firstTransitionLine)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read automaton: %w", err)
	}

	if len(lines) < initialLine {
		return nil, &ValidationError{Err: ErrTooFewLines, Line: len(lines)}
	}

	alphabet := strings.Fields(lines[alphabetLine-1])
	states := strings.Fields(lines[statesLine-1])
	finals := strings.Fields(lines[finalsLine-1])

	initial := strings.Fields(lines[initialLine-1])
	if len(initial) != 1 {
		return nil, &ValidationError{
			Err:   ErrInvalidInitialState,
			Line:  initialLine,
			Token: strings.TrimSpace(lines[initialLine-1]),
		}
	}

	// Blank lines at the end of the description are not transitions.
	last := len(lines)
	for last > initialLine && strings.TrimSpace(lines[last-1]) == "" {
		last--
	}

	transitions := make([]Transition, 0, last-initialLine)
	transitionLines := make([]int, 0, last-initialLine)
	for i := initialLine; i < last; i++ {
		tokens := strings.Fields(lines[i])
		if len(tokens) != 3 {
			return nil, &ValidationError{
				Err:   ErrMalformedTransition,
				Line:  i + 1,
				Token: strings.TrimSpace(lines[i]),
			}
		}
		transitions = append(transitions, Transition{Source: tokens[0], Symbol: tokens[1], Dest: tokens[2]})
		transitionLines = append(transitionLines, i+1)
	}

	a, err := New(states, alphabet, transitions, initial[0], finals, opts...)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			verr.Line = lineOf(verr, transitionLines)
		}
		return nil, err
	}
	return a, nil
}

// Parse Is Load over an in-memory description.
func Parse(text string, opts ...Option) (*Automaton, error) {
	return Load(strings.NewReader(text), opts...)
}

// LoadFile Loads the automaton description stored in the named file.
func LoadFile(name string, opts ...Option) (*Automaton, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	a, err := Load(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return a, nil
}

func lineOf(err *ValidationError, transitionLines []int) int {
	switch err.section {
	case sectionAlphabet:
		return alphabetLine
	case sectionStates:
		return statesLine
	case sectionFinals:
		return finalsLine
	case sectionInitial:
		return initialLine
	case sectionTransitions:
		if err.index < len(transitionLines) {
			return transitionLines[err.index]
		}
	}
	return 0
}

// WriteTo Writes the automaton in the description format read by Load.
func (a *Automaton) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, a.String())
	return int64(n), err
}

func (a *Automaton) String() string {
	b := new(strings.Builder)
	b.WriteString(strings.Join(a.alphabet, " "))
	b.WriteByte('\n')
	b.WriteString(strings.Join(a.states, " "))
	b.WriteByte('\n')
	b.WriteString(strings.Join(a.finals, " "))
	b.WriteByte('\n')
	b.WriteString(a.initial)
	b.WriteByte('\n')
	for _, t := range a.transitions {
		fmt.Fprintf(b, "%s %s %s\n", t.Source, t.Symbol, t.Dest)
	}
	return b.String()
}
