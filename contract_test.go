package governor

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

func TestGovernorABI(t *testing.T) {
	parsed := GovernorABI()

	if len(parsed.Methods) != 52 {
		t.Errorf("Expected 52 methods, got %d", len(parsed.Methods))
	}

	if len(parsed.Errors) != 28 {
		t.Errorf("Expected 28 errors, got %d", len(parsed.Errors))
	}

	if len(parsed.Events) != 14 {
		t.Errorf("Expected 14 events, got %d", len(parsed.Events))
	}

	if !parsed.HasReceive() {
		t.Error("Expected a receive function")
	}
}

func TestParseABI(t *testing.T) {
	t.Run("valid ABI", func(t *testing.T) {
		_, err := ParseABI(`[{"type":"function","name":"foo","inputs":[],"outputs":[]}]`)
		if err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("invalid ABI", func(t *testing.T) {
		_, err := ParseABI(`not json`)
		if err == nil {
			t.Error("Expected error for invalid JSON")
		}
	})

	t.Run("MustParseABI panics", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("Expected panic for invalid ABI")
			}
		}()
		MustParseABI(`not json`)
	})
}

func TestOverloadedQuorumNumerator(t *testing.T) {
	g := NewGovernor(testGovernor, &fakeBackend{})

	current, err := g.QuorumNumerator().Calldata()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if Selector(current) != SelectorQuorumNumerator {
		t.Errorf("Expected selector %s, got %x", SelectorQuorumNumerator, current)
	}

	at, err := g.QuorumNumeratorAt(big.NewInt(5)).Calldata()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if Selector(at[:4]) != SelectorQuorumNumeratorAt {
		t.Errorf("Expected selector %s, got %x", SelectorQuorumNumeratorAt, at[:4])
	}
	if len(at) != 36 {
		t.Errorf("Expected 36 bytes of calldata, got %d", len(at))
	}
}

func TestGovernorMethodsBuildTheirCall(t *testing.T) {
	g := NewGovernor(testGovernor, &fakeBackend{})
	id := big.NewInt(1)

	tests := []struct {
		name string
		call Call
		want Selector
	}{
		{"State", g.State(id).Input(), SelectorState},
		{"CastVote", g.CastVote(id, VoteFor).Input(), SelectorCastVote},
		{"ProposalVotes", g.ProposalVotes(id).Input(), SelectorProposalVotes},
		{"Execute", g.Execute(nil, nil, nil, common.Hash{}).Input(), SelectorExecute},
		{"EIP712Domain", g.EIP712Domain().Input(), SelectorEIP712Domain},
		{"SupportsInterface", g.SupportsInterface([4]byte{0x01, 0xff, 0xc9, 0xa7}).Input(), SelectorSupportsInterface},
		{"Initialize", g.Initialize(common.Address{}, common.Address{}, id, 50400, id, big.NewInt(4)).Input(), SelectorInitialize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.call.Selector() != tt.want {
				t.Errorf("Expected selector %s, got %s", tt.want, tt.call.Selector())
			}
			if _, err := tt.call.Pack(); err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}
