package governor

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// BallotTypehash builds a call to BALLOT_TYPEHASH.
//
// Solidity: function BALLOT_TYPEHASH() view returns(bytes32)
func (g *Governor) BallotTypehash() *CallBuilder[common.Hash] {
	return newCallBuilder[common.Hash](g, &BallotTypehashCall{})
}

// ClockMode builds a call to CLOCK_MODE.
//
// Solidity: function CLOCK_MODE() view returns(string)
func (g *Governor) ClockMode() *CallBuilder[string] {
	return newCallBuilder[string](g, &ClockModeCall{})
}

// CountingMode builds a call to COUNTING_MODE.
//
// Solidity: function COUNTING_MODE() pure returns(string)
func (g *Governor) CountingMode() *CallBuilder[string] {
	return newCallBuilder[string](g, &CountingModeCall{})
}

// ExtendedBallotTypehash builds a call to EXTENDED_BALLOT_TYPEHASH.
//
// Solidity: function EXTENDED_BALLOT_TYPEHASH() view returns(bytes32)
func (g *Governor) ExtendedBallotTypehash() *CallBuilder[common.Hash] {
	return newCallBuilder[common.Hash](g, &ExtendedBallotTypehashCall{})
}

// UpgradeInterfaceVersion builds a call to UPGRADE_INTERFACE_VERSION.
//
// Solidity: function UPGRADE_INTERFACE_VERSION() view returns(string)
func (g *Governor) UpgradeInterfaceVersion() *CallBuilder[string] {
	return newCallBuilder[string](g, &UpgradeInterfaceVersionCall{})
}

// Cancel builds a call to cancel.
//
// Solidity: function cancel(address[] targets, uint256[] values, bytes[] calldatas, bytes32 descriptionHash) returns(uint256)
func (g *Governor) Cancel(targets []common.Address, values []*big.Int, calldatas [][]byte, descriptionHash common.Hash) *CallBuilder[*big.Int] {
	return newCallBuilder[*big.Int](g, &CancelCall{Targets: targets, Values: values, Calldatas: calldatas, DescriptionHash: descriptionHash})
}

// CastVote builds a call to castVote.
//
// Solidity: function castVote(uint256 proposalId, uint8 support) returns(uint256)
func (g *Governor) CastVote(proposalID *big.Int, support VoteType) *CallBuilder[*big.Int] {
	return newCallBuilder[*big.Int](g, &CastVoteCall{ProposalID: proposalID, Support: support})
}

// CastVoteBySig builds a call to castVoteBySig.
//
// Solidity: function castVoteBySig(uint256 proposalId, uint8 support, address voter, bytes signature) returns(uint256)
func (g *Governor) CastVoteBySig(proposalID *big.Int, support VoteType, voter common.Address, signature []byte) *CallBuilder[*big.Int] {
	return newCallBuilder[*big.Int](g, &CastVoteBySigCall{ProposalID: proposalID, Support: support, Voter: voter, VoteSignature: signature})
}

// CastVoteWithReason builds a call to castVoteWithReason.
//
// Solidity: function castVoteWithReason(uint256 proposalId, uint8 support, string reason) returns(uint256)
func (g *Governor) CastVoteWithReason(proposalID *big.Int, support VoteType, reason string) *CallBuilder[*big.Int] {
	return newCallBuilder[*big.Int](g, &CastVoteWithReasonCall{ProposalID: proposalID, Support: support, Reason: reason})
}

// CastVoteWithReasonAndParams builds a call to castVoteWithReasonAndParams.
//
// Solidity: function castVoteWithReasonAndParams(uint256 proposalId, uint8 support, string reason, bytes params) returns(uint256)
func (g *Governor) CastVoteWithReasonAndParams(proposalID *big.Int, support VoteType, reason string, params []byte) *CallBuilder[*big.Int] {
	return newCallBuilder[*big.Int](g, &CastVoteWithReasonAndParamsCall{ProposalID: proposalID, Support: support, Reason: reason, Params: params})
}

// CastVoteWithReasonAndParamsBySig builds a call to castVoteWithReasonAndParamsBySig.
//
// Solidity: function castVoteWithReasonAndParamsBySig(uint256 proposalId, uint8 support, address voter, string reason, bytes params, bytes signature) returns(uint256)
func (g *Governor) CastVoteWithReasonAndParamsBySig(proposalID *big.Int, support VoteType, voter common.Address, reason string, params, signature []byte) *CallBuilder[*big.Int] {
	return newCallBuilder[*big.Int](g, &CastVoteWithReasonAndParamsBySigCall{ProposalID: proposalID, Support: support, Voter: voter, Reason: reason, Params: params, VoteSignature: signature})
}

// Clock builds a call to clock.
//
// Solidity: function clock() view returns(uint48)
func (g *Governor) Clock() *CallBuilder[*big.Int] {
	return newCallBuilder[*big.Int](g, &ClockCall{})
}

// EIP712Domain builds a call to eip712Domain.
//
// Solidity: function eip712Domain() view returns(bytes1 fields, string name, string version, uint256 chainId, address verifyingContract, bytes32 salt, uint256[] extensions)
func (g *Governor) EIP712Domain() *CallBuilder[EIP712Domain] {
	return newCallBuilder[EIP712Domain](g, &EIP712DomainCall{})
}

// Execute builds a call to execute.
//
// Solidity: function execute(address[] targets, uint256[] values, bytes[] calldatas, bytes32 descriptionHash) payable returns(uint256)
func (g *Governor) Execute(targets []common.Address, values []*big.Int, calldatas [][]byte, descriptionHash common.Hash) *CallBuilder[*big.Int] {
	return newCallBuilder[*big.Int](g, &ExecuteCall{Targets: targets, Values: values, Calldatas: calldatas, DescriptionHash: descriptionHash})
}

// GetVotes builds a call to getVotes.
//
// Solidity: function getVotes(address account, uint256 timepoint) view returns(uint256)
func (g *Governor) GetVotes(account common.Address, timepoint *big.Int) *CallBuilder[*big.Int] {
	return newCallBuilder[*big.Int](g, &GetVotesCall{Account: account, Timepoint: timepoint})
}

// GetVotesWithParams builds a call to getVotesWithParams.
//
// Solidity: function getVotesWithParams(address account, uint256 timepoint, bytes params) view returns(uint256)
func (g *Governor) GetVotesWithParams(account common.Address, timepoint *big.Int, params []byte) *CallBuilder[*big.Int] {
	return newCallBuilder[*big.Int](g, &GetVotesWithParamsCall{Account: account, Timepoint: timepoint, Params: params})
}

// HasVoted builds a call to hasVoted.
//
// Solidity: function hasVoted(uint256 proposalId, address account) view returns(bool)
func (g *Governor) HasVoted(proposalID *big.Int, account common.Address) *CallBuilder[bool] {
	return newCallBuilder[bool](g, &HasVotedCall{ProposalID: proposalID, Account: account})
}

// HashProposal builds a call to hashProposal.
//
// Solidity: function hashProposal(address[] targets, uint256[] values, bytes[] calldatas, bytes32 descriptionHash) pure returns(uint256)
func (g *Governor) HashProposal(targets []common.Address, values []*big.Int, calldatas [][]byte, descriptionHash common.Hash) *CallBuilder[*big.Int] {
	return newCallBuilder[*big.Int](g, &HashProposalCall{Targets: targets, Values: values, Calldatas: calldatas, DescriptionHash: descriptionHash})
}

// Initialize builds a call to initialize.
//
// Solidity: function initialize(address token, address timelock, uint48 initialVotingDelay, uint32 initialVotingPeriod, uint256 initialProposalThreshold, uint256 quorumPercent) returns()
func (g *Governor) Initialize(token, timelock common.Address, initialVotingDelay *big.Int, initialVotingPeriod uint32, initialProposalThreshold, quorumPercent *big.Int) *CallBuilder[struct{}] {
	return newCallBuilder[struct{}](g, &InitializeCall{Token: token, Timelock: timelock, InitialVotingDelay: initialVotingDelay, InitialVotingPeriod: initialVotingPeriod, InitialProposalThreshold: initialProposalThreshold, QuorumPercent: quorumPercent})
}

// Name builds a call to name.
//
// Solidity: function name() view returns(string)
func (g *Governor) Name() *CallBuilder[string] {
	return newCallBuilder[string](g, &NameCall{})
}

// Nonces builds a call to nonces.
//
// Solidity: function nonces(address owner) view returns(uint256)
func (g *Governor) Nonces(owner common.Address) *CallBuilder[*big.Int] {
	return newCallBuilder[*big.Int](g, &NoncesCall{Owner: owner})
}

// OnERC1155BatchReceived builds a call to onERC1155BatchReceived.
//
// Solidity: function onERC1155BatchReceived(address operator, address from, uint256[] ids, uint256[] values, bytes data) returns(bytes4)
func (g *Governor) OnERC1155BatchReceived(operator, from common.Address, ids, values []*big.Int, data []byte) *CallBuilder[[4]byte] {
	return newCallBuilder[[4]byte](g, &OnERC1155BatchReceivedCall{Operator: operator, From: from, IDs: ids, Values: values, Data: data})
}

// OnERC1155Received builds a call to onERC1155Received.
//
// Solidity: function onERC1155Received(address operator, address from, uint256 id, uint256 value, bytes data) returns(bytes4)
func (g *Governor) OnERC1155Received(operator, from common.Address, id, value *big.Int, data []byte) *CallBuilder[[4]byte] {
	return newCallBuilder[[4]byte](g, &OnERC1155ReceivedCall{Operator: operator, From: from, ID: id, Value: value, Data: data})
}

// OnERC721Received builds a call to onERC721Received.
//
// Solidity: function onERC721Received(address operator, address from, uint256 tokenId, bytes data) returns(bytes4)
func (g *Governor) OnERC721Received(operator, from common.Address, tokenID *big.Int, data []byte) *CallBuilder[[4]byte] {
	return newCallBuilder[[4]byte](g, &OnERC721ReceivedCall{Operator: operator, From: from, TokenID: tokenID, Data: data})
}

// ProposalDeadline builds a call to proposalDeadline.
//
// Solidity: function proposalDeadline(uint256 proposalId) view returns(uint256)
func (g *Governor) ProposalDeadline(proposalID *big.Int) *CallBuilder[*big.Int] {
	return newCallBuilder[*big.Int](g, &ProposalDeadlineCall{ProposalID: proposalID})
}

// ProposalEta builds a call to proposalEta.
//
// Solidity: function proposalEta(uint256 proposalId) view returns(uint256)
func (g *Governor) ProposalEta(proposalID *big.Int) *CallBuilder[*big.Int] {
	return newCallBuilder[*big.Int](g, &ProposalEtaCall{ProposalID: proposalID})
}

// ProposalNeedsQueuing builds a call to proposalNeedsQueuing.
//
// Solidity: function proposalNeedsQueuing(uint256 proposalId) view returns(bool)
func (g *Governor) ProposalNeedsQueuing(proposalID *big.Int) *CallBuilder[bool] {
	return newCallBuilder[bool](g, &ProposalNeedsQueuingCall{ProposalID: proposalID})
}

// ProposalProposer builds a call to proposalProposer.
//
// Solidity: function proposalProposer(uint256 proposalId) view returns(address)
func (g *Governor) ProposalProposer(proposalID *big.Int) *CallBuilder[common.Address] {
	return newCallBuilder[common.Address](g, &ProposalProposerCall{ProposalID: proposalID})
}

// ProposalSnapshot builds a call to proposalSnapshot.
//
// Solidity: function proposalSnapshot(uint256 proposalId) view returns(uint256)
func (g *Governor) ProposalSnapshot(proposalID *big.Int) *CallBuilder[*big.Int] {
	return newCallBuilder[*big.Int](g, &ProposalSnapshotCall{ProposalID: proposalID})
}

// ProposalThreshold builds a call to proposalThreshold.
//
// Solidity: function proposalThreshold() view returns(uint256)
func (g *Governor) ProposalThreshold() *CallBuilder[*big.Int] {
	return newCallBuilder[*big.Int](g, &ProposalThresholdCall{})
}

// ProposalVotes builds a call to proposalVotes.
//
// Solidity: function proposalVotes(uint256 proposalId) view returns(uint256 againstVotes, uint256 forVotes, uint256 abstainVotes)
func (g *Governor) ProposalVotes(proposalID *big.Int) *CallBuilder[ProposalVotes] {
	return newCallBuilder[ProposalVotes](g, &ProposalVotesCall{ProposalID: proposalID})
}

// Propose builds a call to propose.
//
// Solidity: function propose(address[] targets, uint256[] values, bytes[] calldatas, string description) returns(uint256)
func (g *Governor) Propose(targets []common.Address, values []*big.Int, calldatas [][]byte, description string) *CallBuilder[*big.Int] {
	return newCallBuilder[*big.Int](g, &ProposeCall{Targets: targets, Values: values, Calldatas: calldatas, Description: description})
}

// ProxiableUUID builds a call to proxiableUUID.
//
// Solidity: function proxiableUUID() view returns(bytes32)
func (g *Governor) ProxiableUUID() *CallBuilder[common.Hash] {
	return newCallBuilder[common.Hash](g, &ProxiableUUIDCall{})
}

// Queue builds a call to queue.
//
// Solidity: function queue(address[] targets, uint256[] values, bytes[] calldatas, bytes32 descriptionHash) returns(uint256)
func (g *Governor) Queue(targets []common.Address, values []*big.Int, calldatas [][]byte, descriptionHash common.Hash) *CallBuilder[*big.Int] {
	return newCallBuilder[*big.Int](g, &QueueCall{Targets: targets, Values: values, Calldatas: calldatas, DescriptionHash: descriptionHash})
}

// Quorum builds a call to quorum.
//
// Solidity: function quorum(uint256 blockNumber) view returns(uint256)
func (g *Governor) Quorum(blockNumber *big.Int) *CallBuilder[*big.Int] {
	return newCallBuilder[*big.Int](g, &QuorumCall{BlockNumber: blockNumber})
}

// QuorumDenominator builds a call to quorumDenominator.
//
// Solidity: function quorumDenominator() view returns(uint256)
func (g *Governor) QuorumDenominator() *CallBuilder[*big.Int] {
	return newCallBuilder[*big.Int](g, &QuorumDenominatorCall{})
}

// QuorumNumerator builds a call to quorumNumerator.
//
// Solidity: function quorumNumerator() view returns(uint256)
func (g *Governor) QuorumNumerator() *CallBuilder[*big.Int] {
	return newCallBuilder[*big.Int](g, &QuorumNumeratorCall{})
}

// QuorumNumeratorAt builds a call to quorumNumerator.
//
// Solidity: function quorumNumerator(uint256 timepoint) view returns(uint256)
func (g *Governor) QuorumNumeratorAt(timepoint *big.Int) *CallBuilder[*big.Int] {
	return newCallBuilder[*big.Int](g, &QuorumNumeratorAtCall{Timepoint: timepoint})
}

// Relay builds a call to relay.
//
// Solidity: function relay(address target, uint256 value, bytes data) payable returns()
func (g *Governor) Relay(target common.Address, value *big.Int, data []byte) *CallBuilder[struct{}] {
	return newCallBuilder[struct{}](g, &RelayCall{Target: target, Value: value, Data: data})
}

// SetProposalThreshold builds a call to setProposalThreshold.
//
// Solidity: function setProposalThreshold(uint256 newProposalThreshold) returns()
func (g *Governor) SetProposalThreshold(newProposalThreshold *big.Int) *CallBuilder[struct{}] {
	return newCallBuilder[struct{}](g, &SetProposalThresholdCall{NewProposalThreshold: newProposalThreshold})
}

// SetVotingDelay builds a call to setVotingDelay.
//
// Solidity: function setVotingDelay(uint48 newVotingDelay) returns()
func (g *Governor) SetVotingDelay(newVotingDelay *big.Int) *CallBuilder[struct{}] {
	return newCallBuilder[struct{}](g, &SetVotingDelayCall{NewVotingDelay: newVotingDelay})
}

// SetVotingPeriod builds a call to setVotingPeriod.
//
// Solidity: function setVotingPeriod(uint32 newVotingPeriod) returns()
func (g *Governor) SetVotingPeriod(newVotingPeriod uint32) *CallBuilder[struct{}] {
	return newCallBuilder[struct{}](g, &SetVotingPeriodCall{NewVotingPeriod: newVotingPeriod})
}

// State builds a call to state.
//
// Solidity: function state(uint256 proposalId) view returns(uint8)
func (g *Governor) State(proposalID *big.Int) *CallBuilder[ProposalState] {
	return newCallBuilder[ProposalState](g, &StateCall{ProposalID: proposalID})
}

// SupportsInterface builds a call to supportsInterface.
//
// Solidity: function supportsInterface(bytes4 interfaceId) view returns(bool)
func (g *Governor) SupportsInterface(interfaceID [4]byte) *CallBuilder[bool] {
	return newCallBuilder[bool](g, &SupportsInterfaceCall{InterfaceID: interfaceID})
}

// Timelock builds a call to timelock.
//
// Solidity: function timelock() view returns(address)
func (g *Governor) Timelock() *CallBuilder[common.Address] {
	return newCallBuilder[common.Address](g, &TimelockCall{})
}

// Token builds a call to token.
//
// Solidity: function token() view returns(address)
func (g *Governor) Token() *CallBuilder[common.Address] {
	return newCallBuilder[common.Address](g, &TokenCall{})
}

// UpdateQuorumNumerator builds a call to updateQuorumNumerator.
//
// Solidity: function updateQuorumNumerator(uint256 newQuorumNumerator) returns()
func (g *Governor) UpdateQuorumNumerator(newQuorumNumerator *big.Int) *CallBuilder[struct{}] {
	return newCallBuilder[struct{}](g, &UpdateQuorumNumeratorCall{NewQuorumNumerator: newQuorumNumerator})
}

// UpdateTimelock builds a call to updateTimelock.
//
// Solidity: function updateTimelock(address newTimelock) returns()
func (g *Governor) UpdateTimelock(newTimelock common.Address) *CallBuilder[struct{}] {
	return newCallBuilder[struct{}](g, &UpdateTimelockCall{NewTimelock: newTimelock})
}

// UpgradeToAndCall builds a call to upgradeToAndCall.
//
// Solidity: function upgradeToAndCall(address newImplementation, bytes data) payable returns()
func (g *Governor) UpgradeToAndCall(newImplementation common.Address, data []byte) *CallBuilder[struct{}] {
	return newCallBuilder[struct{}](g, &UpgradeToAndCallCall{NewImplementation: newImplementation, Data: data})
}

// Version builds a call to version.
//
// Solidity: function version() view returns(string)
func (g *Governor) Version() *CallBuilder[string] {
	return newCallBuilder[string](g, &VersionCall{})
}

// VotingDelay builds a call to votingDelay.
//
// Solidity: function votingDelay() view returns(uint256)
func (g *Governor) VotingDelay() *CallBuilder[*big.Int] {
	return newCallBuilder[*big.Int](g, &VotingDelayCall{})
}

// VotingPeriod builds a call to votingPeriod.
//
// Solidity: function votingPeriod() view returns(uint256)
func (g *Governor) VotingPeriod() *CallBuilder[*big.Int] {
	return newCallBuilder[*big.Int](g, &VotingPeriodCall{})
}
