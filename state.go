package governor

import (
	"fmt"
	"strings"
)

// ProposalState mirrors IGovernor.ProposalState. Values come straight off
// the wire; only the range is checked, never the state machine.
type ProposalState uint8

const (
	StatePending ProposalState = iota
	StateActive
	StateCanceled
	StateDefeated
	StateSucceeded
	StateQueued
	StateExpired
	StateExecuted
)

var stateNames = [...]string{
	StatePending:   "Pending",
	StateActive:    "Active",
	StateCanceled:  "Canceled",
	StateDefeated:  "Defeated",
	StateSucceeded: "Succeeded",
	StateQueued:    "Queued",
	StateExpired:   "Expired",
	StateExecuted:  "Executed",
}

// Valid reports whether s names one of the eight governor states.
func (s ProposalState) Valid() bool {
	return int(s) < len(stateNames)
}

func (s ProposalState) String() string {
	if s.Valid() {
		return stateNames[s]
	}
	return fmt.Sprintf("ProposalState(%d)", uint8(s))
}

// Final reports whether no further transition is possible.
func (s ProposalState) Final() bool {
	switch s {
	case StateCanceled, StateDefeated, StateExpired, StateExecuted:
		return true
	}
	return false
}

// ParseProposalState parses a state name, case-insensitively.
func ParseProposalState(name string) (ProposalState, error) {
	for i, n := range stateNames {
		if strings.EqualFold(n, name) {
			return ProposalState(i), nil
		}
	}
	return 0, fmt.Errorf("governor: unknown proposal state %q", name)
}

// VoteType is the support value of GovernorCountingSimple.
type VoteType uint8

const (
	VoteAgainst VoteType = iota
	VoteFor
	VoteAbstain
)

// Valid reports whether v is accepted by GovernorCountingSimple.
func (v VoteType) Valid() bool {
	return v <= VoteAbstain
}

func (v VoteType) String() string {
	switch v {
	case VoteAgainst:
		return "Against"
	case VoteFor:
		return "For"
	case VoteAbstain:
		return "Abstain"
	}
	return fmt.Sprintf("VoteType(%d)", uint8(v))
}

// ParseVoteType parses "against", "for" or "abstain", case-insensitively.
func ParseVoteType(name string) (VoteType, error) {
	switch strings.ToLower(name) {
	case "against":
		return VoteAgainst, nil
	case "for":
		return VoteFor, nil
	case "abstain":
		return VoteAbstain, nil
	}
	return 0, fmt.Errorf("governor: unknown vote type %q", name)
}

// StateBitmap is the bytes32 bitmap of GovernorUnexpectedProposalState:
// bit (1 << state) of the big-endian word is set for each allowed state.
type StateBitmap [32]byte

// NewStateBitmap returns the bitmap with the given states set.
func NewStateBitmap(states ...ProposalState) StateBitmap {
	var b StateBitmap
	for _, s := range states {
		b[len(b)-1-int(s)/8] |= 1 << (s % 8)
	}
	return b
}

// Has reports whether the bit of s is set.
func (b StateBitmap) Has(s ProposalState) bool {
	return b[len(b)-1-int(s)/8]&(1<<(s%8)) != 0
}

// States returns the set states in ascending order.
func (b StateBitmap) States() []ProposalState {
	var out []ProposalState
	for i := 0; i < len(b)*8; i++ {
		if b.Has(ProposalState(i)) {
			out = append(out, ProposalState(i))
		}
	}
	return out
}

func (b StateBitmap) String() string {
	states := b.States()
	names := make([]string, len(states))
	for i, s := range states {
		names[i] = s.String()
	}
	return "[" + strings.Join(names, ", ") + "]"
}
