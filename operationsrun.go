package automata

// Verdict is the outcome of running a word.
type Verdict string

const (
	Accepted Verdict = "ACCEPTED"
	Rejected Verdict = "REJECTED"
	// Invalid means the word has a character outside the alphabet.
	Invalid Verdict = "INVALID"
)

// Run Runs word on a following a single path, as if a were deterministic.
//
// A word with any character outside the alphabet is Invalid and no transition is tried.
// Otherwise the word is consumed with Step; running out of transitions rejects the word.
// The empty word is accepted iff the initial state is an accept state.
func Run(a *Automaton, word string) Verdict {
	if !inAlphabet(a, word) {
		return Invalid
	}

	state := a.initial
	for _, r := range word {
		next, ok := a.Step(state, string(r))
		if !ok {
			return Rejected
		}
		state = next
	}

	if a.IsAccept(state) {
		return Accepted
	}
	return Rejected
}

// Process Runs every word independently; one invalid word never affects another.
func Process(a *Automaton, words []string) map[string]Verdict {
	result := make(map[string]Verdict, len(words))
	for _, word := range words {
		result[word] = Run(a, word)
	}
	return result
}

// RunNondeterministic Runs word on a following every path at once, epsilon transitions
// included. It agrees with Run on Determinize(a).
func RunNondeterministic(a *Automaton, word string) Verdict {
	if !inAlphabet(a, word) {
		return Invalid
	}

	table := newTransitionTable(a)
	current := table.start()
	for _, r := range word {
		current = table.closure(table.move(current.GetArray(), string(r)))
		if current.IsEmpty() {
			return Rejected
		}
	}

	if current.Intersects(a.isAccept) {
		return Accepted
	}
	return Rejected
}

func inAlphabet(a *Automaton, word string) bool {
	for _, r := range word {
		if !a.HasSymbol(string(r)) {
			return false
		}
	}
	return true
}
