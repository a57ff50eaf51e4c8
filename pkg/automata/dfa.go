// Package automata implements a small deterministic finite automaton (DFA)
// simulator, with a ready-made automaton for identifier syntax.
//
// The simulator exists for teaching: it makes the state/transition view of
// token recognition explicit, where the lexer packages express the same
// machines as hand-written scanning code.
package automata

// State identifies a DFA state. StateDead is the sink reached on any input
// symbol with no outgoing transition; no input can leave it.
type State int

const (
	StateDead  State = -1
	StateStart State = 0
)

// DFA is a deterministic finite automaton over runes: a start state, a set
// of accepting states, and a total transition function (missing transitions
// are expressed by returning StateDead).
//
// A DFA is immutable after construction and safe for concurrent use.
type DFA struct {
	start     State
	accepting map[State]bool
	step      func(State, rune) State
}

// New creates a DFA from a start state, accepting set and transition
// function.
func New(start State, accepting []State, step func(State, rune) State) *DFA {
	acc := make(map[State]bool, len(accepting))
	for _, s := range accepting {
		acc[s] = true
	}
	return &DFA{
		start:     start,
		accepting: acc,
		step:      step,
	}
}

// Accepts reports whether the automaton accepts the input string: running
// the machine from the start state over every rune ends in an accepting
// state. The empty string is accepted only if the start state accepts.
func (d *DFA) Accepts(input string) bool {
	state := d.start
	for _, r := range input {
		state = d.step(state, r)
		if state == StateDead {
			return false
		}
	}
	return d.accepting[state]
}

// Trace returns the sequence of states visited while consuming the input,
// starting with the start state. The run stops early once the dead state is
// entered, so the trace ends with StateDead for rejected prefixes.
func (d *DFA) Trace(input string) []State {
	states := []State{d.start}
	state := d.start
	for _, r := range input {
		state = d.step(state, r)
		states = append(states, state)
		if state == StateDead {
			break
		}
	}
	return states
}

// stateIdent is the single accepting state of the identifier automaton.
const stateIdent State = 1

// Identifier returns the two-state DFA recognizing the identifier language
// [A-Za-z_][A-Za-z0-9_]*.
func Identifier() *DFA {
	return New(StateStart, []State{stateIdent}, func(s State, r rune) State {
		switch s {
		case StateStart:
			if isIdentStart(r) {
				return stateIdent
			}
		case stateIdent:
			if isIdentPart(r) {
				return stateIdent
			}
		}
		return StateDead
	})
}

func isIdentStart(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || (r >= '0' && r <= '9')
}
