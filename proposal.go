package governor

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// DefaultMaxActions is the default action limit of a ProposalBuilder.
const DefaultMaxActions = 64

// Action is one operation the timelock executes if a proposal passes.
type Action struct {
	Target   common.Address
	Value    *big.Int
	Calldata []byte
}

// ProposalBuilder accumulates the actions of a governance proposal.
type ProposalBuilder struct {
	actions []Action
	config  *proposalConfig
	err     error
}

// NewProposalBuilder creates a ProposalBuilder with the given options.
func NewProposalBuilder(opts ...ProposalOption) *ProposalBuilder {
	b := &ProposalBuilder{
		actions: make([]Action, 0, 4),
		config:  defaultProposalConfig(),
	}
	for _, opt := range opts {
		opt(b.config)
	}
	return b
}

// Add appends a raw action. A nil value is sent as zero.
// The first failure is kept and reported by Build.
func (b *ProposalBuilder) Add(target common.Address, value *big.Int, calldata []byte) *ProposalBuilder {
	if b.err != nil {
		return b
	}
	if max := b.config.maxActions; max > 0 && len(b.actions) >= max {
		b.err = &ActionError{Index: len(b.actions), Err: ErrTooManyActions}
		return b
	}
	b.actions = append(b.actions, Action{
		Target:   target,
		Value:    new(big.Int).Set(bigOrZero(value)),
		Calldata: append([]byte(nil), calldata...),
	})
	return b
}

// AddCall appends an action invoking a typed governor call on target,
// usually the governor itself for self-administration (setVotingDelay,
// updateQuorumNumerator, ...).
func (b *ProposalBuilder) AddCall(target common.Address, value *big.Int, call Call) *ProposalBuilder {
	if b.err != nil {
		return b
	}
	data, err := call.Pack()
	if err != nil {
		b.err = &ActionError{Index: len(b.actions), Method: call.Name(), Err: err}
		return b
	}
	return b.Add(target, value, data)
}

// Len returns the number of actions added so far.
func (b *ProposalBuilder) Len() int {
	return len(b.actions)
}

// Build finalizes the proposal with its description.
func (b *ProposalBuilder) Build(description string) (*Proposal, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.actions) == 0 {
		return nil, ErrEmptyProposal
	}
	p := &Proposal{
		Targets:     make([]common.Address, len(b.actions)),
		Values:      make([]*big.Int, len(b.actions)),
		Calldatas:   make([][]byte, len(b.actions)),
		Description: description,
	}
	for i, a := range b.actions {
		p.Targets[i] = a.Target
		p.Values[i] = a.Value
		p.Calldatas[i] = a.Calldata
	}
	return p, nil
}

// Proposal is the (targets, values, calldatas, description) tuple that
// identifies a governor proposal.
type Proposal struct {
	Targets     []common.Address
	Values      []*big.Int
	Calldatas   [][]byte
	Description string
}

// DescriptionHash returns keccak256(description), the form queue, execute
// and cancel take.
func (p *Proposal) DescriptionHash() common.Hash {
	return crypto.Keccak256Hash([]byte(p.Description))
}

// ID computes the proposal id exactly as the governor's hashProposal does:
// uint256(keccak256(abi.encode(targets, values, calldatas, descriptionHash))).
func (p *Proposal) ID() (*big.Int, error) {
	m, err := methodFor(SelectorHashProposal)
	if err != nil {
		return nil, err
	}
	enc, err := m.Inputs.Pack(p.Targets, p.Values, p.Calldatas, p.DescriptionHash())
	if err != nil {
		return nil, &ArgumentError{Name: m.Name, Err: err}
	}
	return new(big.Int).SetBytes(crypto.Keccak256(enc)), nil
}

// ProposeCall returns the propose call submitting p.
func (p *Proposal) ProposeCall() *ProposeCall {
	return &ProposeCall{Targets: p.Targets, Values: p.Values, Calldatas: p.Calldatas, Description: p.Description}
}

// QueueCall returns the queue call for p.
func (p *Proposal) QueueCall() *QueueCall {
	return &QueueCall{Targets: p.Targets, Values: p.Values, Calldatas: p.Calldatas, DescriptionHash: p.DescriptionHash()}
}

// ExecuteCall returns the execute call for p.
func (p *Proposal) ExecuteCall() *ExecuteCall {
	return &ExecuteCall{Targets: p.Targets, Values: p.Values, Calldatas: p.Calldatas, DescriptionHash: p.DescriptionHash()}
}

// CancelCall returns the cancel call for p.
func (p *Proposal) CancelCall() *CancelCall {
	return &CancelCall{Targets: p.Targets, Values: p.Values, Calldatas: p.Calldatas, DescriptionHash: p.DescriptionHash()}
}

// HashProposalCall returns the on-chain equivalent of ID.
func (p *Proposal) HashProposalCall() *HashProposalCall {
	return &HashProposalCall{Targets: p.Targets, Values: p.Values, Calldatas: p.Calldatas, DescriptionHash: p.DescriptionHash()}
}

// ProposeProposal builds the propose transaction for p on g.
func (g *Governor) ProposeProposal(p *Proposal) *CallBuilder[*big.Int] {
	return newCallBuilder[*big.Int](g, p.ProposeCall())
}
