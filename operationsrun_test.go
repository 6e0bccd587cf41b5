package automata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	a := mustParse(t, exampleDFA)

	tests := []struct {
		word string
		want Verdict
	}{
		{"", Accepted},
		{"a", Rejected},
		{"b", Rejected},
		{"aa", Accepted},
		{"ab", Accepted},
		{"ba", Accepted},
		{"bb", Accepted},
		{"abb", Rejected},
		{"c", Invalid},
		{"abc", Invalid},
		{"ca", Invalid},
		{"a b", Invalid},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equalf(t, tt.want, Run(a, tt.word), "Run(%q)", tt.word)
		})
	}
}

func TestRun_DeadEnd(t *testing.T) {
	a := mustParse(t, "a b\nq0 q1\nq1\nq0\nq0 a q1\n")

	assert.Equal(t, Accepted, Run(a, "a"))
	assert.Equal(t, Rejected, Run(a, "b"), "no transition on b")
	assert.Equal(t, Rejected, Run(a, "aa"), "no transition from q1")
	assert.Equal(t, Invalid, Run(a, "ax"), "alphabet is checked before any transition")
}

func TestRun_EmptyWord(t *testing.T) {
	accepting := mustParse(t, "a\nq0\nq0\nq0\n")
	rejecting := mustParse(t, "a\nq0 q1\nq1\nq0\nq0 a q1\n")

	assert.Equal(t, Accepted, Run(accepting, ""))
	assert.Equal(t, Rejected, Run(rejecting, ""))
	assert.Equal(t, Accepted, RunNondeterministic(accepting, ""))
	assert.Equal(t, Rejected, RunNondeterministic(rejecting, ""))
}

func TestRun_Unicode(t *testing.T) {
	a, err := New([]string{"s"}, []string{"λ", "µ"}, []Transition{{"s", "λ", "s"}, {"s", "µ", "s"}}, "s", []string{"s"})
	require.NoError(t, err)

	assert.Equal(t, Accepted, Run(a, "λµλ"))
	assert.Equal(t, Invalid, Run(a, "λa"))
}

func TestProcess(t *testing.T) {
	a := mustParse(t, exampleDFA)

	got := Process(a, []string{"ab", "c", "", "a", "ab"})
	assert.Equal(t, map[string]Verdict{
		"ab": Accepted,
		"c":  Invalid,
		"":   Accepted,
		"a":  Rejected,
	}, got)

	assert.Empty(t, Process(a, nil))
}

func TestRunNondeterministic(t *testing.T) {
	nfa := mustParse(t, epsilonNFA)

	assert.Equal(t, Rejected, Run(nfa, "a"), "a single path never follows the epsilon transition")
	assert.Equal(t, Accepted, RunNondeterministic(nfa, "a"))
	assert.Equal(t, Rejected, RunNondeterministic(nfa, ""))
	assert.Equal(t, Rejected, RunNondeterministic(nfa, "aa"))
	assert.Equal(t, Invalid, RunNondeterministic(nfa, "b"))

	ab := mustParse(t, endsWithAB)
	tests := map[string]Verdict{
		"ab":   Accepted,
		"aab":  Accepted,
		"bab":  Accepted,
		"abab": Accepted,
		"a":    Rejected,
		"ba":   Rejected,
		"abb":  Rejected,
		"":     Rejected,
	}
	for word, want := range tests {
		assert.Equalf(t, want, RunNondeterministic(ab, word), "RunNondeterministic(%q)", word)
	}
}

func TestRun_FirstMatchOnNondeterministicInput(t *testing.T) {
	a := mustParse(t, "a\nq0 q1 q2\nq2\nq0\nq0 a q1\nq0 a q2\n")

	assert.Equal(t, Rejected, Run(a, "a"), "the first declared transition leads to q1")
	assert.Equal(t, Accepted, RunNondeterministic(a, "a"))
}
