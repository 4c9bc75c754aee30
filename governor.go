// Package governor provides typed Go bindings for the TangleGovernor
// contract, an OpenZeppelin Governor (settings, simple counting, ERC20Votes,
// quorum fraction, timelock control) deployed behind a UUPS proxy.
//
// Every function, custom error and event of the contract ABI has a Go struct
// whose fields carry `abi:"..."` tags naming the Solidity arguments. The
// structs encode to and decode from the Ethereum ABI wire format bit-exactly.
//
// # Decoding
//
// Three dispatch tables, sorted by selector, map raw payloads back to typed
// values:
//
//	call, err := governor.DecodeCall(tx.Data(), true)
//	if propose, ok := call.(*governor.ProposeCall); ok {
//	    fmt.Println(propose.Description)
//	}
//
//	reason, err := governor.DecodeRevert(revertData, false)
//	var unexpected *governor.GovernorUnexpectedProposalState
//	if errors.As(reason, &unexpected) {
//	    fmt.Println(unexpected.Current, unexpected.ExpectedStates)
//	}
//
//	ev, err := governor.DecodeEvent(log, false)
//
// With validate set, a payload must also be the canonical encoding of the
// decoded value: dirty padding, non-boolean bools and trailing bytes are
// rejected with ErrNonCanonical.
//
// # Calling the contract
//
// NewGovernor binds a deployment to a bind.ContractBackend such as
// *ethclient.Client. Each ABI function is a method returning a typed
// CallBuilder:
//
//	gov := governor.NewGovernor(addr, client)
//	state, err := gov.State(proposalID).Call(ctx)
//	tx, err := gov.CastVote(proposalID, governor.VoteFor).Send(ctx, auth)
//
// Reverts surface as *RevertError wrapping the decoded contract error.
//
// # Proposals
//
// ProposalBuilder assembles (targets, values, calldatas) and computes the
// proposal id locally, matching hashProposal:
//
//	p, err := governor.NewProposalBuilder().
//	    AddCall(govAddr, nil, &governor.SetVotingDelayCall{NewVotingDelay: big.NewInt(7200)}).
//	    Build("Lengthen voting delay")
//	id, err := p.ID()
//
// Governance rules (thresholds, quorum, the proposal state machine) are
// never evaluated locally; the chain is the only source of truth.
package governor
