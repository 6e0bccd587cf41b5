package automata

// transitionTable indexes the transitions of an automaton by source state index.
type transitionTable struct {
	a       *Automaton
	epsilon [][]int
	moves   []map[string][]int
}

func newTransitionTable(a *Automaton) *transitionTable {
	numStates := a.NumStates()
	t := &transitionTable{
		a:       a,
		epsilon: make([][]int, numStates),
		moves:   make([]map[string][]int, numStates),
	}

	for _, tr := range a.transitions {
		source := a.stateIndex[tr.Source]
		dest := a.stateIndex[tr.Dest]
		if tr.IsEpsilon() {
			t.epsilon[source] = append(t.epsilon[source], dest)
			continue
		}
		if t.moves[source] == nil {
			t.moves[source] = make(map[string][]int)
		}
		t.moves[source][tr.Symbol] = append(t.moves[source][tr.Symbol], dest)
	}
	return t
}

// closure Extends set in place with every state reachable through epsilon transitions.
func (t *transitionTable) closure(set *StateSet) *StateSet {
	stack := set.GetArray()
	for len(stack) > 0 {
		state := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, dest := range t.epsilon[state] {
			if set.Add(dest) {
				stack = append(stack, dest)
			}
		}
	}
	return set
}

// move Returns the states reached from any of states by one transition on symbol.
func (t *transitionTable) move(states []int, symbol string) *StateSet {
	next := NewStateSet(t.a.NumStates())
	for _, state := range states {
		for _, dest := range t.moves[state][symbol] {
			next.Add(dest)
		}
	}
	return next
}

func (t *transitionTable) start() *StateSet {
	set := NewStateSet(t.a.NumStates())
	set.Add(t.a.stateIndex[t.a.initial])
	return t.closure(set)
}

// EpsilonClosure Returns the states reachable from any of the given states using only
// epsilon transitions, the given states included, in declaration order. Unknown states are
// ignored.
func EpsilonClosure(a *Automaton, states ...string) []string {
	t := newTransitionTable(a)
	set := NewStateSet(a.NumStates())
	for _, state := range states {
		if idx, ok := a.stateIndex[state]; ok {
			set.Add(idx)
		}
	}

	values := t.closure(set).GetArray()
	closure := make([]string, len(values))
	for i, v := range values {
		closure[i] = a.states[v]
	}
	return closure
}
