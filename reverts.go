package governor

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Custom error selectors of the governor ABI.
var (
	SelectorAddressEmptyCode                  = Selector{0x99, 0x96, 0xb3, 0x15}
	SelectorCheckpointUnorderedInsertion      = Selector{0x25, 0x20, 0x60, 0x1d}
	SelectorERC1967InvalidImplementation      = Selector{0x4c, 0x9c, 0x8c, 0xe3}
	SelectorERC1967NonPayable                 = Selector{0xb3, 0x98, 0x97, 0x9f}
	SelectorFailedCall                        = Selector{0xd6, 0xbd, 0xa2, 0x75}
	SelectorGovernorAlreadyCastVote           = Selector{0x71, 0xc6, 0xaf, 0x49}
	SelectorGovernorAlreadyQueuedProposal     = Selector{0xf2, 0x0e, 0x7d, 0x37}
	SelectorGovernorDisabledDeposit           = Selector{0xe9, 0x0a, 0x65, 0x1e}
	SelectorGovernorInsufficientProposerVotes = Selector{0xc2, 0x42, 0xee, 0x16}
	SelectorGovernorInvalidProposalLength     = Selector{0x44, 0x7b, 0x05, 0xd0}
	SelectorGovernorInvalidQuorumFraction     = Selector{0x24, 0x3e, 0x54, 0x45}
	SelectorGovernorInvalidSignature          = Selector{0x94, 0xab, 0x6c, 0x07}
	SelectorGovernorInvalidVoteType           = Selector{0x06, 0xb3, 0x37, 0xc2}
	SelectorGovernorInvalidVotingPeriod       = Selector{0xf1, 0xcf, 0xbf, 0x05}
	SelectorGovernorNonexistentProposal       = Selector{0x6a, 0xd0, 0x60, 0x75}
	SelectorGovernorNotQueuedProposal         = Selector{0xd5, 0xdd, 0xb8, 0x25}
	SelectorGovernorOnlyExecutor              = Selector{0x47, 0x09, 0x6e, 0x47}
	SelectorGovernorQueueNotImplemented       = Selector{0x90, 0x88, 0x4a, 0x46}
	SelectorGovernorRestrictedProposer        = Selector{0xd9, 0xb3, 0x95, 0x57}
	SelectorGovernorUnexpectedProposalState   = Selector{0x31, 0xb7, 0x5e, 0x4d}
	SelectorInvalidAccountNonce               = Selector{0x75, 0x2d, 0x88, 0xc0}
	SelectorInvalidInitialization             = Selector{0xf9, 0x2e, 0xe8, 0xa9}
	SelectorInvalidShortString                = Selector{0xb3, 0x51, 0x2b, 0x0c}
	SelectorNotInitializing                   = Selector{0xd7, 0xe6, 0xbc, 0xf8}
	SelectorSafeCastOverflowedUintDowncast    = Selector{0x6d, 0xfc, 0xc6, 0x50}
	SelectorStringTooLong                     = Selector{0x30, 0x5a, 0x27, 0xa9}
	SelectorUUPSUnauthorizedCallContext       = Selector{0xe0, 0x7c, 0x8d, 0xba}
	SelectorUUPSUnsupportedProxiableUUID      = Selector{0xaa, 0x1d, 0x49, 0xa4}
)

// AddressEmptyCode is the revert payload of error AddressEmptyCode(address target).
type AddressEmptyCode struct {
	Target common.Address `abi:"target"`
}

func (*AddressEmptyCode) Name() string            { return "AddressEmptyCode" }
func (*AddressEmptyCode) Signature() string       { return "AddressEmptyCode(address)" }
func (*AddressEmptyCode) Selector() Selector      { return SelectorAddressEmptyCode }
func (e *AddressEmptyCode) Pack() ([]byte, error) { return packError(e) }
func (e *AddressEmptyCode) Error() string         { return formatVariant(e) }
func (*AddressEmptyCode) isContractError()        {}

// CheckpointUnorderedInsertion is the revert payload of error CheckpointUnorderedInsertion().
type CheckpointUnorderedInsertion struct{}

func (*CheckpointUnorderedInsertion) Name() string            { return "CheckpointUnorderedInsertion" }
func (*CheckpointUnorderedInsertion) Signature() string       { return "CheckpointUnorderedInsertion()" }
func (*CheckpointUnorderedInsertion) Selector() Selector      { return SelectorCheckpointUnorderedInsertion }
func (e *CheckpointUnorderedInsertion) Pack() ([]byte, error) { return packError(e) }
func (e *CheckpointUnorderedInsertion) Error() string         { return formatVariant(e) }
func (*CheckpointUnorderedInsertion) isContractError()        {}

// ERC1967InvalidImplementation is the revert payload of error ERC1967InvalidImplementation(address implementation).
type ERC1967InvalidImplementation struct {
	Implementation common.Address `abi:"implementation"`
}

func (*ERC1967InvalidImplementation) Name() string            { return "ERC1967InvalidImplementation" }
func (*ERC1967InvalidImplementation) Signature() string       { return "ERC1967InvalidImplementation(address)" }
func (*ERC1967InvalidImplementation) Selector() Selector      { return SelectorERC1967InvalidImplementation }
func (e *ERC1967InvalidImplementation) Pack() ([]byte, error) { return packError(e) }
func (e *ERC1967InvalidImplementation) Error() string         { return formatVariant(e) }
func (*ERC1967InvalidImplementation) isContractError()        {}

// ERC1967NonPayable is the revert payload of error ERC1967NonPayable().
type ERC1967NonPayable struct{}

func (*ERC1967NonPayable) Name() string            { return "ERC1967NonPayable" }
func (*ERC1967NonPayable) Signature() string       { return "ERC1967NonPayable()" }
func (*ERC1967NonPayable) Selector() Selector      { return SelectorERC1967NonPayable }
func (e *ERC1967NonPayable) Pack() ([]byte, error) { return packError(e) }
func (e *ERC1967NonPayable) Error() string         { return formatVariant(e) }
func (*ERC1967NonPayable) isContractError()        {}

// FailedCall is the revert payload of error FailedCall().
type FailedCall struct{}

func (*FailedCall) Name() string            { return "FailedCall" }
func (*FailedCall) Signature() string       { return "FailedCall()" }
func (*FailedCall) Selector() Selector      { return SelectorFailedCall }
func (e *FailedCall) Pack() ([]byte, error) { return packError(e) }
func (e *FailedCall) Error() string         { return formatVariant(e) }
func (*FailedCall) isContractError()        {}

// GovernorAlreadyCastVote is the revert payload of error GovernorAlreadyCastVote(address voter).
type GovernorAlreadyCastVote struct {
	Voter common.Address `abi:"voter"`
}

func (*GovernorAlreadyCastVote) Name() string            { return "GovernorAlreadyCastVote" }
func (*GovernorAlreadyCastVote) Signature() string       { return "GovernorAlreadyCastVote(address)" }
func (*GovernorAlreadyCastVote) Selector() Selector      { return SelectorGovernorAlreadyCastVote }
func (e *GovernorAlreadyCastVote) Pack() ([]byte, error) { return packError(e) }
func (e *GovernorAlreadyCastVote) Error() string         { return formatVariant(e) }
func (*GovernorAlreadyCastVote) isContractError()        {}

// GovernorAlreadyQueuedProposal is the revert payload of error GovernorAlreadyQueuedProposal(uint256 proposalId).
type GovernorAlreadyQueuedProposal struct {
	ProposalID *big.Int `abi:"proposalId"`
}

func (*GovernorAlreadyQueuedProposal) Name() string            { return "GovernorAlreadyQueuedProposal" }
func (*GovernorAlreadyQueuedProposal) Signature() string       { return "GovernorAlreadyQueuedProposal(uint256)" }
func (*GovernorAlreadyQueuedProposal) Selector() Selector      { return SelectorGovernorAlreadyQueuedProposal }
func (e *GovernorAlreadyQueuedProposal) Pack() ([]byte, error) { return packError(e) }
func (e *GovernorAlreadyQueuedProposal) Error() string         { return formatVariant(e) }
func (*GovernorAlreadyQueuedProposal) isContractError()        {}

// GovernorDisabledDeposit is the revert payload of error GovernorDisabledDeposit().
type GovernorDisabledDeposit struct{}

func (*GovernorDisabledDeposit) Name() string            { return "GovernorDisabledDeposit" }
func (*GovernorDisabledDeposit) Signature() string       { return "GovernorDisabledDeposit()" }
func (*GovernorDisabledDeposit) Selector() Selector      { return SelectorGovernorDisabledDeposit }
func (e *GovernorDisabledDeposit) Pack() ([]byte, error) { return packError(e) }
func (e *GovernorDisabledDeposit) Error() string         { return formatVariant(e) }
func (*GovernorDisabledDeposit) isContractError()        {}

// GovernorInsufficientProposerVotes is the revert payload of error GovernorInsufficientProposerVotes(address proposer, uint256 votes, uint256 threshold).
type GovernorInsufficientProposerVotes struct {
	Proposer  common.Address `abi:"proposer"`
	Votes     *big.Int       `abi:"votes"`
	Threshold *big.Int       `abi:"threshold"`
}

func (*GovernorInsufficientProposerVotes) Name() string            { return "GovernorInsufficientProposerVotes" }
func (*GovernorInsufficientProposerVotes) Signature() string       { return "GovernorInsufficientProposerVotes(address,uint256,uint256)" }
func (*GovernorInsufficientProposerVotes) Selector() Selector      { return SelectorGovernorInsufficientProposerVotes }
func (e *GovernorInsufficientProposerVotes) Pack() ([]byte, error) { return packError(e) }
func (e *GovernorInsufficientProposerVotes) Error() string         { return formatVariant(e) }
func (*GovernorInsufficientProposerVotes) isContractError()        {}

// GovernorInvalidProposalLength is the revert payload of error GovernorInvalidProposalLength(uint256 targets, uint256 calldatas, uint256 values).
type GovernorInvalidProposalLength struct {
	Targets   *big.Int `abi:"targets"`
	Calldatas *big.Int `abi:"calldatas"`
	Values    *big.Int `abi:"values"`
}

func (*GovernorInvalidProposalLength) Name() string            { return "GovernorInvalidProposalLength" }
func (*GovernorInvalidProposalLength) Signature() string       { return "GovernorInvalidProposalLength(uint256,uint256,uint256)" }
func (*GovernorInvalidProposalLength) Selector() Selector      { return SelectorGovernorInvalidProposalLength }
func (e *GovernorInvalidProposalLength) Pack() ([]byte, error) { return packError(e) }
func (e *GovernorInvalidProposalLength) Error() string         { return formatVariant(e) }
func (*GovernorInvalidProposalLength) isContractError()        {}

// GovernorInvalidQuorumFraction is the revert payload of error GovernorInvalidQuorumFraction(uint256 quorumNumerator, uint256 quorumDenominator).
type GovernorInvalidQuorumFraction struct {
	QuorumNumerator   *big.Int `abi:"quorumNumerator"`
	QuorumDenominator *big.Int `abi:"quorumDenominator"`
}

func (*GovernorInvalidQuorumFraction) Name() string            { return "GovernorInvalidQuorumFraction" }
func (*GovernorInvalidQuorumFraction) Signature() string       { return "GovernorInvalidQuorumFraction(uint256,uint256)" }
func (*GovernorInvalidQuorumFraction) Selector() Selector      { return SelectorGovernorInvalidQuorumFraction }
func (e *GovernorInvalidQuorumFraction) Pack() ([]byte, error) { return packError(e) }
func (e *GovernorInvalidQuorumFraction) Error() string         { return formatVariant(e) }
func (*GovernorInvalidQuorumFraction) isContractError()        {}

// GovernorInvalidSignature is the revert payload of error GovernorInvalidSignature(address voter).
type GovernorInvalidSignature struct {
	Voter common.Address `abi:"voter"`
}

func (*GovernorInvalidSignature) Name() string            { return "GovernorInvalidSignature" }
func (*GovernorInvalidSignature) Signature() string       { return "GovernorInvalidSignature(address)" }
func (*GovernorInvalidSignature) Selector() Selector      { return SelectorGovernorInvalidSignature }
func (e *GovernorInvalidSignature) Pack() ([]byte, error) { return packError(e) }
func (e *GovernorInvalidSignature) Error() string         { return formatVariant(e) }
func (*GovernorInvalidSignature) isContractError()        {}

// GovernorInvalidVoteType is the revert payload of error GovernorInvalidVoteType().
type GovernorInvalidVoteType struct{}

func (*GovernorInvalidVoteType) Name() string            { return "GovernorInvalidVoteType" }
func (*GovernorInvalidVoteType) Signature() string       { return "GovernorInvalidVoteType()" }
func (*GovernorInvalidVoteType) Selector() Selector      { return SelectorGovernorInvalidVoteType }
func (e *GovernorInvalidVoteType) Pack() ([]byte, error) { return packError(e) }
func (e *GovernorInvalidVoteType) Error() string         { return formatVariant(e) }
func (*GovernorInvalidVoteType) isContractError()        {}

// GovernorInvalidVotingPeriod is the revert payload of error GovernorInvalidVotingPeriod(uint256 votingPeriod).
type GovernorInvalidVotingPeriod struct {
	VotingPeriod *big.Int `abi:"votingPeriod"`
}

func (*GovernorInvalidVotingPeriod) Name() string            { return "GovernorInvalidVotingPeriod" }
func (*GovernorInvalidVotingPeriod) Signature() string       { return "GovernorInvalidVotingPeriod(uint256)" }
func (*GovernorInvalidVotingPeriod) Selector() Selector      { return SelectorGovernorInvalidVotingPeriod }
func (e *GovernorInvalidVotingPeriod) Pack() ([]byte, error) { return packError(e) }
func (e *GovernorInvalidVotingPeriod) Error() string         { return formatVariant(e) }
func (*GovernorInvalidVotingPeriod) isContractError()        {}

// GovernorNonexistentProposal is the revert payload of error GovernorNonexistentProposal(uint256 proposalId).
type GovernorNonexistentProposal struct {
	ProposalID *big.Int `abi:"proposalId"`
}

func (*GovernorNonexistentProposal) Name() string            { return "GovernorNonexistentProposal" }
func (*GovernorNonexistentProposal) Signature() string       { return "GovernorNonexistentProposal(uint256)" }
func (*GovernorNonexistentProposal) Selector() Selector      { return SelectorGovernorNonexistentProposal }
func (e *GovernorNonexistentProposal) Pack() ([]byte, error) { return packError(e) }
func (e *GovernorNonexistentProposal) Error() string         { return formatVariant(e) }
func (*GovernorNonexistentProposal) isContractError()        {}

// GovernorNotQueuedProposal is the revert payload of error GovernorNotQueuedProposal(uint256 proposalId).
type GovernorNotQueuedProposal struct {
	ProposalID *big.Int `abi:"proposalId"`
}

func (*GovernorNotQueuedProposal) Name() string            { return "GovernorNotQueuedProposal" }
func (*GovernorNotQueuedProposal) Signature() string       { return "GovernorNotQueuedProposal(uint256)" }
func (*GovernorNotQueuedProposal) Selector() Selector      { return SelectorGovernorNotQueuedProposal }
func (e *GovernorNotQueuedProposal) Pack() ([]byte, error) { return packError(e) }
func (e *GovernorNotQueuedProposal) Error() string         { return formatVariant(e) }
func (*GovernorNotQueuedProposal) isContractError()        {}

// GovernorOnlyExecutor is the revert payload of error GovernorOnlyExecutor(address account).
type GovernorOnlyExecutor struct {
	Account common.Address `abi:"account"`
}

func (*GovernorOnlyExecutor) Name() string            { return "GovernorOnlyExecutor" }
func (*GovernorOnlyExecutor) Signature() string       { return "GovernorOnlyExecutor(address)" }
func (*GovernorOnlyExecutor) Selector() Selector      { return SelectorGovernorOnlyExecutor }
func (e *GovernorOnlyExecutor) Pack() ([]byte, error) { return packError(e) }
func (e *GovernorOnlyExecutor) Error() string         { return formatVariant(e) }
func (*GovernorOnlyExecutor) isContractError()        {}

// GovernorQueueNotImplemented is the revert payload of error GovernorQueueNotImplemented().
type GovernorQueueNotImplemented struct{}

func (*GovernorQueueNotImplemented) Name() string            { return "GovernorQueueNotImplemented" }
func (*GovernorQueueNotImplemented) Signature() string       { return "GovernorQueueNotImplemented()" }
func (*GovernorQueueNotImplemented) Selector() Selector      { return SelectorGovernorQueueNotImplemented }
func (e *GovernorQueueNotImplemented) Pack() ([]byte, error) { return packError(e) }
func (e *GovernorQueueNotImplemented) Error() string         { return formatVariant(e) }
func (*GovernorQueueNotImplemented) isContractError()        {}

// GovernorRestrictedProposer is the revert payload of error GovernorRestrictedProposer(address proposer).
type GovernorRestrictedProposer struct {
	Proposer common.Address `abi:"proposer"`
}

func (*GovernorRestrictedProposer) Name() string            { return "GovernorRestrictedProposer" }
func (*GovernorRestrictedProposer) Signature() string       { return "GovernorRestrictedProposer(address)" }
func (*GovernorRestrictedProposer) Selector() Selector      { return SelectorGovernorRestrictedProposer }
func (e *GovernorRestrictedProposer) Pack() ([]byte, error) { return packError(e) }
func (e *GovernorRestrictedProposer) Error() string         { return formatVariant(e) }
func (*GovernorRestrictedProposer) isContractError()        {}

// GovernorUnexpectedProposalState is the revert payload of error GovernorUnexpectedProposalState(uint256 proposalId, uint8 current, bytes32 expectedStates).
type GovernorUnexpectedProposalState struct {
	ProposalID     *big.Int      `abi:"proposalId"`
	Current        ProposalState `abi:"current"`
	ExpectedStates StateBitmap   `abi:"expectedStates"`
}

func (*GovernorUnexpectedProposalState) Name() string            { return "GovernorUnexpectedProposalState" }
func (*GovernorUnexpectedProposalState) Signature() string       { return "GovernorUnexpectedProposalState(uint256,uint8,bytes32)" }
func (*GovernorUnexpectedProposalState) Selector() Selector      { return SelectorGovernorUnexpectedProposalState }
func (e *GovernorUnexpectedProposalState) Pack() ([]byte, error) { return packError(e) }
func (e *GovernorUnexpectedProposalState) Error() string         { return formatVariant(e) }
func (*GovernorUnexpectedProposalState) isContractError()        {}

// InvalidAccountNonce is the revert payload of error InvalidAccountNonce(address account, uint256 currentNonce).
type InvalidAccountNonce struct {
	Account      common.Address `abi:"account"`
	CurrentNonce *big.Int       `abi:"currentNonce"`
}

func (*InvalidAccountNonce) Name() string            { return "InvalidAccountNonce" }
func (*InvalidAccountNonce) Signature() string       { return "InvalidAccountNonce(address,uint256)" }
func (*InvalidAccountNonce) Selector() Selector      { return SelectorInvalidAccountNonce }
func (e *InvalidAccountNonce) Pack() ([]byte, error) { return packError(e) }
func (e *InvalidAccountNonce) Error() string         { return formatVariant(e) }
func (*InvalidAccountNonce) isContractError()        {}

// InvalidInitialization is the revert payload of error InvalidInitialization().
type InvalidInitialization struct{}

func (*InvalidInitialization) Name() string            { return "InvalidInitialization" }
func (*InvalidInitialization) Signature() string       { return "InvalidInitialization()" }
func (*InvalidInitialization) Selector() Selector      { return SelectorInvalidInitialization }
func (e *InvalidInitialization) Pack() ([]byte, error) { return packError(e) }
func (e *InvalidInitialization) Error() string         { return formatVariant(e) }
func (*InvalidInitialization) isContractError()        {}

// InvalidShortString is the revert payload of error InvalidShortString().
type InvalidShortString struct{}

func (*InvalidShortString) Name() string            { return "InvalidShortString" }
func (*InvalidShortString) Signature() string       { return "InvalidShortString()" }
func (*InvalidShortString) Selector() Selector      { return SelectorInvalidShortString }
func (e *InvalidShortString) Pack() ([]byte, error) { return packError(e) }
func (e *InvalidShortString) Error() string         { return formatVariant(e) }
func (*InvalidShortString) isContractError()        {}

// NotInitializing is the revert payload of error NotInitializing().
type NotInitializing struct{}

func (*NotInitializing) Name() string            { return "NotInitializing" }
func (*NotInitializing) Signature() string       { return "NotInitializing()" }
func (*NotInitializing) Selector() Selector      { return SelectorNotInitializing }
func (e *NotInitializing) Pack() ([]byte, error) { return packError(e) }
func (e *NotInitializing) Error() string         { return formatVariant(e) }
func (*NotInitializing) isContractError()        {}

// SafeCastOverflowedUintDowncast is the revert payload of error SafeCastOverflowedUintDowncast(uint8 bits, uint256 value).
type SafeCastOverflowedUintDowncast struct {
	Bits  uint8    `abi:"bits"`
	Value *big.Int `abi:"value"`
}

func (*SafeCastOverflowedUintDowncast) Name() string            { return "SafeCastOverflowedUintDowncast" }
func (*SafeCastOverflowedUintDowncast) Signature() string       { return "SafeCastOverflowedUintDowncast(uint8,uint256)" }
func (*SafeCastOverflowedUintDowncast) Selector() Selector      { return SelectorSafeCastOverflowedUintDowncast }
func (e *SafeCastOverflowedUintDowncast) Pack() ([]byte, error) { return packError(e) }
func (e *SafeCastOverflowedUintDowncast) Error() string         { return formatVariant(e) }
func (*SafeCastOverflowedUintDowncast) isContractError()        {}

// StringTooLong is the revert payload of error StringTooLong(string str).
type StringTooLong struct {
	Str string `abi:"str"`
}

func (*StringTooLong) Name() string            { return "StringTooLong" }
func (*StringTooLong) Signature() string       { return "StringTooLong(string)" }
func (*StringTooLong) Selector() Selector      { return SelectorStringTooLong }
func (e *StringTooLong) Pack() ([]byte, error) { return packError(e) }
func (e *StringTooLong) Error() string         { return formatVariant(e) }
func (*StringTooLong) isContractError()        {}

// UUPSUnauthorizedCallContext is the revert payload of error UUPSUnauthorizedCallContext().
type UUPSUnauthorizedCallContext struct{}

func (*UUPSUnauthorizedCallContext) Name() string            { return "UUPSUnauthorizedCallContext" }
func (*UUPSUnauthorizedCallContext) Signature() string       { return "UUPSUnauthorizedCallContext()" }
func (*UUPSUnauthorizedCallContext) Selector() Selector      { return SelectorUUPSUnauthorizedCallContext }
func (e *UUPSUnauthorizedCallContext) Pack() ([]byte, error) { return packError(e) }
func (e *UUPSUnauthorizedCallContext) Error() string         { return formatVariant(e) }
func (*UUPSUnauthorizedCallContext) isContractError()        {}

// UUPSUnsupportedProxiableUUID is the revert payload of error UUPSUnsupportedProxiableUUID(bytes32 slot).
type UUPSUnsupportedProxiableUUID struct {
	Slot common.Hash `abi:"slot"`
}

func (*UUPSUnsupportedProxiableUUID) Name() string            { return "UUPSUnsupportedProxiableUUID" }
func (*UUPSUnsupportedProxiableUUID) Signature() string       { return "UUPSUnsupportedProxiableUUID(bytes32)" }
func (*UUPSUnsupportedProxiableUUID) Selector() Selector      { return SelectorUUPSUnsupportedProxiableUUID }
func (e *UUPSUnsupportedProxiableUUID) Pack() ([]byte, error) { return packError(e) }
func (e *UUPSUnsupportedProxiableUUID) Error() string         { return formatVariant(e) }
func (*UUPSUnsupportedProxiableUUID) isContractError()        {}

// errorTable is sorted by selector.
var errorTable = selectorTable[ContractError]{
	{SelectorGovernorInvalidVoteType, func() ContractError { return new(GovernorInvalidVoteType) }},
	{SelectorGovernorInvalidQuorumFraction, func() ContractError { return new(GovernorInvalidQuorumFraction) }},
	{SelectorCheckpointUnorderedInsertion, func() ContractError { return new(CheckpointUnorderedInsertion) }},
	{SelectorStringTooLong, func() ContractError { return new(StringTooLong) }},
	{SelectorGovernorUnexpectedProposalState, func() ContractError { return new(GovernorUnexpectedProposalState) }},
	{SelectorGovernorInvalidProposalLength, func() ContractError { return new(GovernorInvalidProposalLength) }},
	{SelectorGovernorOnlyExecutor, func() ContractError { return new(GovernorOnlyExecutor) }},
	{SelectorERC1967InvalidImplementation, func() ContractError { return new(ERC1967InvalidImplementation) }},
	{SelectorGovernorNonexistentProposal, func() ContractError { return new(GovernorNonexistentProposal) }},
	{SelectorSafeCastOverflowedUintDowncast, func() ContractError { return new(SafeCastOverflowedUintDowncast) }},
	{SelectorGovernorAlreadyCastVote, func() ContractError { return new(GovernorAlreadyCastVote) }},
	{SelectorInvalidAccountNonce, func() ContractError { return new(InvalidAccountNonce) }},
	{SelectorGovernorQueueNotImplemented, func() ContractError { return new(GovernorQueueNotImplemented) }},
	{SelectorGovernorInvalidSignature, func() ContractError { return new(GovernorInvalidSignature) }},
	{SelectorAddressEmptyCode, func() ContractError { return new(AddressEmptyCode) }},
	{SelectorUUPSUnsupportedProxiableUUID, func() ContractError { return new(UUPSUnsupportedProxiableUUID) }},
	{SelectorInvalidShortString, func() ContractError { return new(InvalidShortString) }},
	{SelectorERC1967NonPayable, func() ContractError { return new(ERC1967NonPayable) }},
	{SelectorGovernorInsufficientProposerVotes, func() ContractError { return new(GovernorInsufficientProposerVotes) }},
	{SelectorGovernorNotQueuedProposal, func() ContractError { return new(GovernorNotQueuedProposal) }},
	{SelectorFailedCall, func() ContractError { return new(FailedCall) }},
	{SelectorNotInitializing, func() ContractError { return new(NotInitializing) }},
	{SelectorGovernorRestrictedProposer, func() ContractError { return new(GovernorRestrictedProposer) }},
	{SelectorUUPSUnauthorizedCallContext, func() ContractError { return new(UUPSUnauthorizedCallContext) }},
	{SelectorGovernorDisabledDeposit, func() ContractError { return new(GovernorDisabledDeposit) }},
	{SelectorGovernorInvalidVotingPeriod, func() ContractError { return new(GovernorInvalidVotingPeriod) }},
	{SelectorGovernorAlreadyQueuedProposal, func() ContractError { return new(GovernorAlreadyQueuedProposal) }},
	{SelectorInvalidInitialization, func() ContractError { return new(InvalidInitialization) }},
}
