package governor

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Function selectors of the governor ABI.
var (
	SelectorBallotTypehash                   = Selector{0xde, 0xaa, 0xa7, 0xcc}
	SelectorClockMode                        = Selector{0x4b, 0xf5, 0xd7, 0xe9}
	SelectorCountingMode                     = Selector{0xdd, 0x4e, 0x2b, 0xa5}
	SelectorExtendedBallotTypehash           = Selector{0x2f, 0xe3, 0xe2, 0x61}
	SelectorUpgradeInterfaceVersion          = Selector{0xad, 0x3c, 0xb1, 0xcc}
	SelectorCancel                           = Selector{0x45, 0x21, 0x15, 0xd6}
	SelectorCastVote                         = Selector{0x56, 0x78, 0x13, 0x88}
	SelectorCastVoteBySig                    = Selector{0x8f, 0xf2, 0x62, 0xe3}
	SelectorCastVoteWithReason               = Selector{0x7b, 0x3c, 0x71, 0xd3}
	SelectorCastVoteWithReasonAndParams      = Selector{0x5f, 0x39, 0x8a, 0x14}
	SelectorCastVoteWithReasonAndParamsBySig = Selector{0x5b, 0x8d, 0x0e, 0x0d}
	SelectorClock                            = Selector{0x91, 0xdd, 0xad, 0xf4}
	SelectorEIP712Domain                     = Selector{0x84, 0xb0, 0x19, 0x6e}
	SelectorExecute                          = Selector{0x26, 0x56, 0x22, 0x7d}
	SelectorGetVotes                         = Selector{0xeb, 0x90, 0x19, 0xd4}
	SelectorGetVotesWithParams               = Selector{0x9a, 0x80, 0x2a, 0x6d}
	SelectorHasVoted                         = Selector{0x43, 0x85, 0x96, 0x32}
	SelectorHashProposal                     = Selector{0xc5, 0x90, 0x57, 0xe4}
	SelectorInitialize                       = Selector{0x22, 0xf1, 0x20, 0xde}
	SelectorName                             = Selector{0x06, 0xfd, 0xde, 0x03}
	SelectorNonces                           = Selector{0x7e, 0xce, 0xbe, 0x00}
	SelectorOnERC1155BatchReceived           = Selector{0xbc, 0x19, 0x7c, 0x81}
	SelectorOnERC1155Received                = Selector{0xf2, 0x3a, 0x6e, 0x61}
	SelectorOnERC721Received                 = Selector{0x15, 0x0b, 0x7a, 0x02}
	SelectorProposalDeadline                 = Selector{0xc0, 0x1f, 0x9e, 0x37}
	SelectorProposalEta                      = Selector{0xab, 0x58, 0xfb, 0x8e}
	SelectorProposalNeedsQueuing             = Selector{0xa9, 0xa9, 0x52, 0x94}
	SelectorProposalProposer                 = Selector{0x14, 0x34, 0x89, 0xd0}
	SelectorProposalSnapshot                 = Selector{0x2d, 0x63, 0xf6, 0x93}
	SelectorProposalThreshold                = Selector{0xb5, 0x81, 0x31, 0xb0}
	SelectorProposalVotes                    = Selector{0x54, 0x4f, 0xfc, 0x9c}
	SelectorPropose                          = Selector{0x7d, 0x5e, 0x81, 0xe2}
	SelectorProxiableUUID                    = Selector{0x52, 0xd1, 0x90, 0x2d}
	SelectorQueue                            = Selector{0x16, 0x0c, 0xbe, 0xd7}
	SelectorQuorum                           = Selector{0xf8, 0xce, 0x56, 0x0a}
	SelectorQuorumDenominator                = Selector{0x97, 0xc3, 0xd3, 0x34}
	SelectorQuorumNumerator                  = Selector{0xa7, 0x71, 0x3a, 0x70}
	SelectorQuorumNumeratorAt                = Selector{0x60, 0xc4, 0x24, 0x7f}
	SelectorRelay                            = Selector{0xc2, 0x8b, 0xc2, 0xfa}
	SelectorSetProposalThreshold             = Selector{0xec, 0xe4, 0x0c, 0xc1}
	SelectorSetVotingDelay                   = Selector{0x79, 0x05, 0x18, 0x87}
	SelectorSetVotingPeriod                  = Selector{0xe5, 0x40, 0xd0, 0x1d}
	SelectorState                            = Selector{0x3e, 0x4f, 0x49, 0xe6}
	SelectorSupportsInterface                = Selector{0x01, 0xff, 0xc9, 0xa7}
	SelectorTimelock                         = Selector{0xd3, 0x32, 0x19, 0xb4}
	SelectorToken                            = Selector{0xfc, 0x0c, 0x54, 0x6a}
	SelectorUpdateQuorumNumerator            = Selector{0x06, 0xf3, 0xf9, 0xe6}
	SelectorUpdateTimelock                   = Selector{0xa8, 0x90, 0xc9, 0x10}
	SelectorUpgradeToAndCall                 = Selector{0x4f, 0x1e, 0xf2, 0x86}
	SelectorVersion                          = Selector{0x54, 0xfd, 0x4d, 0x50}
	SelectorVotingDelay                      = Selector{0x39, 0x32, 0xab, 0xb1}
	SelectorVotingPeriod                     = Selector{0x02, 0xa2, 0x51, 0xa3}
)

// BallotTypehashCall is the input of BALLOT_TYPEHASH().
type BallotTypehashCall struct{}

func (*BallotTypehashCall) Name() string            { return "BALLOT_TYPEHASH" }
func (*BallotTypehashCall) Signature() string       { return "BALLOT_TYPEHASH()" }
func (*BallotTypehashCall) Selector() Selector      { return SelectorBallotTypehash }
func (c *BallotTypehashCall) Pack() ([]byte, error) { return packCall(c) }
func (*BallotTypehashCall) isCall()                 {}

// ClockModeCall is the input of CLOCK_MODE().
type ClockModeCall struct{}

func (*ClockModeCall) Name() string            { return "CLOCK_MODE" }
func (*ClockModeCall) Signature() string       { return "CLOCK_MODE()" }
func (*ClockModeCall) Selector() Selector      { return SelectorClockMode }
func (c *ClockModeCall) Pack() ([]byte, error) { return packCall(c) }
func (*ClockModeCall) isCall()                 {}

// CountingModeCall is the input of COUNTING_MODE().
type CountingModeCall struct{}

func (*CountingModeCall) Name() string            { return "COUNTING_MODE" }
func (*CountingModeCall) Signature() string       { return "COUNTING_MODE()" }
func (*CountingModeCall) Selector() Selector      { return SelectorCountingMode }
func (c *CountingModeCall) Pack() ([]byte, error) { return packCall(c) }
func (*CountingModeCall) isCall()                 {}

// ExtendedBallotTypehashCall is the input of EXTENDED_BALLOT_TYPEHASH().
type ExtendedBallotTypehashCall struct{}

func (*ExtendedBallotTypehashCall) Name() string            { return "EXTENDED_BALLOT_TYPEHASH" }
func (*ExtendedBallotTypehashCall) Signature() string       { return "EXTENDED_BALLOT_TYPEHASH()" }
func (*ExtendedBallotTypehashCall) Selector() Selector      { return SelectorExtendedBallotTypehash }
func (c *ExtendedBallotTypehashCall) Pack() ([]byte, error) { return packCall(c) }
func (*ExtendedBallotTypehashCall) isCall()                 {}

// UpgradeInterfaceVersionCall is the input of UPGRADE_INTERFACE_VERSION().
type UpgradeInterfaceVersionCall struct{}

func (*UpgradeInterfaceVersionCall) Name() string            { return "UPGRADE_INTERFACE_VERSION" }
func (*UpgradeInterfaceVersionCall) Signature() string       { return "UPGRADE_INTERFACE_VERSION()" }
func (*UpgradeInterfaceVersionCall) Selector() Selector      { return SelectorUpgradeInterfaceVersion }
func (c *UpgradeInterfaceVersionCall) Pack() ([]byte, error) { return packCall(c) }
func (*UpgradeInterfaceVersionCall) isCall()                 {}

// CancelCall is the input of cancel(address[],uint256[],bytes[],bytes32).
type CancelCall struct {
	Targets         []common.Address `abi:"targets"`
	Values          []*big.Int       `abi:"values"`
	Calldatas       [][]byte         `abi:"calldatas"`
	DescriptionHash common.Hash      `abi:"descriptionHash"`
}

func (*CancelCall) Name() string            { return "cancel" }
func (*CancelCall) Signature() string       { return "cancel(address[],uint256[],bytes[],bytes32)" }
func (*CancelCall) Selector() Selector      { return SelectorCancel }
func (c *CancelCall) Pack() ([]byte, error) { return packCall(c) }
func (*CancelCall) isCall()                 {}

// CastVoteCall is the input of castVote(uint256,uint8).
type CastVoteCall struct {
	ProposalID *big.Int `abi:"proposalId"`
	Support    VoteType `abi:"support"`
}

func (*CastVoteCall) Name() string            { return "castVote" }
func (*CastVoteCall) Signature() string       { return "castVote(uint256,uint8)" }
func (*CastVoteCall) Selector() Selector      { return SelectorCastVote }
func (c *CastVoteCall) Pack() ([]byte, error) { return packCall(c) }
func (*CastVoteCall) isCall()                 {}

// CastVoteBySigCall is the input of castVoteBySig(uint256,uint8,address,bytes).
type CastVoteBySigCall struct {
	ProposalID    *big.Int       `abi:"proposalId"`
	Support       VoteType       `abi:"support"`
	Voter         common.Address `abi:"voter"`
	VoteSignature []byte         `abi:"signature"`
}

func (*CastVoteBySigCall) Name() string            { return "castVoteBySig" }
func (*CastVoteBySigCall) Signature() string       { return "castVoteBySig(uint256,uint8,address,bytes)" }
func (*CastVoteBySigCall) Selector() Selector      { return SelectorCastVoteBySig }
func (c *CastVoteBySigCall) Pack() ([]byte, error) { return packCall(c) }
func (*CastVoteBySigCall) isCall()                 {}

// CastVoteWithReasonCall is the input of castVoteWithReason(uint256,uint8,string).
type CastVoteWithReasonCall struct {
	ProposalID *big.Int `abi:"proposalId"`
	Support    VoteType `abi:"support"`
	Reason     string   `abi:"reason"`
}

func (*CastVoteWithReasonCall) Name() string            { return "castVoteWithReason" }
func (*CastVoteWithReasonCall) Signature() string       { return "castVoteWithReason(uint256,uint8,string)" }
func (*CastVoteWithReasonCall) Selector() Selector      { return SelectorCastVoteWithReason }
func (c *CastVoteWithReasonCall) Pack() ([]byte, error) { return packCall(c) }
func (*CastVoteWithReasonCall) isCall()                 {}

// CastVoteWithReasonAndParamsCall is the input of castVoteWithReasonAndParams(uint256,uint8,string,bytes).
type CastVoteWithReasonAndParamsCall struct {
	ProposalID *big.Int `abi:"proposalId"`
	Support    VoteType `abi:"support"`
	Reason     string   `abi:"reason"`
	Params     []byte   `abi:"params"`
}

func (*CastVoteWithReasonAndParamsCall) Name() string            { return "castVoteWithReasonAndParams" }
func (*CastVoteWithReasonAndParamsCall) Signature() string       { return "castVoteWithReasonAndParams(uint256,uint8,string,bytes)" }
func (*CastVoteWithReasonAndParamsCall) Selector() Selector      { return SelectorCastVoteWithReasonAndParams }
func (c *CastVoteWithReasonAndParamsCall) Pack() ([]byte, error) { return packCall(c) }
func (*CastVoteWithReasonAndParamsCall) isCall()                 {}

// CastVoteWithReasonAndParamsBySigCall is the input of castVoteWithReasonAndParamsBySig(uint256,uint8,address,string,bytes,bytes).
type CastVoteWithReasonAndParamsBySigCall struct {
	ProposalID    *big.Int       `abi:"proposalId"`
	Support       VoteType       `abi:"support"`
	Voter         common.Address `abi:"voter"`
	Reason        string         `abi:"reason"`
	Params        []byte         `abi:"params"`
	VoteSignature []byte         `abi:"signature"`
}

func (*CastVoteWithReasonAndParamsBySigCall) Name() string            { return "castVoteWithReasonAndParamsBySig" }
func (*CastVoteWithReasonAndParamsBySigCall) Signature() string       { return "castVoteWithReasonAndParamsBySig(uint256,uint8,address,string,bytes,bytes)" }
func (*CastVoteWithReasonAndParamsBySigCall) Selector() Selector      { return SelectorCastVoteWithReasonAndParamsBySig }
func (c *CastVoteWithReasonAndParamsBySigCall) Pack() ([]byte, error) { return packCall(c) }
func (*CastVoteWithReasonAndParamsBySigCall) isCall()                 {}

// ClockCall is the input of clock().
type ClockCall struct{}

func (*ClockCall) Name() string            { return "clock" }
func (*ClockCall) Signature() string       { return "clock()" }
func (*ClockCall) Selector() Selector      { return SelectorClock }
func (c *ClockCall) Pack() ([]byte, error) { return packCall(c) }
func (*ClockCall) isCall()                 {}

// EIP712DomainCall is the input of eip712Domain().
type EIP712DomainCall struct{}

func (*EIP712DomainCall) Name() string            { return "eip712Domain" }
func (*EIP712DomainCall) Signature() string       { return "eip712Domain()" }
func (*EIP712DomainCall) Selector() Selector      { return SelectorEIP712Domain }
func (c *EIP712DomainCall) Pack() ([]byte, error) { return packCall(c) }
func (*EIP712DomainCall) isCall()                 {}

// ExecuteCall is the input of execute(address[],uint256[],bytes[],bytes32).
type ExecuteCall struct {
	Targets         []common.Address `abi:"targets"`
	Values          []*big.Int       `abi:"values"`
	Calldatas       [][]byte         `abi:"calldatas"`
	DescriptionHash common.Hash      `abi:"descriptionHash"`
}

func (*ExecuteCall) Name() string            { return "execute" }
func (*ExecuteCall) Signature() string       { return "execute(address[],uint256[],bytes[],bytes32)" }
func (*ExecuteCall) Selector() Selector      { return SelectorExecute }
func (c *ExecuteCall) Pack() ([]byte, error) { return packCall(c) }
func (*ExecuteCall) isCall()                 {}

// GetVotesCall is the input of getVotes(address,uint256).
type GetVotesCall struct {
	Account   common.Address `abi:"account"`
	Timepoint *big.Int       `abi:"timepoint"`
}

func (*GetVotesCall) Name() string            { return "getVotes" }
func (*GetVotesCall) Signature() string       { return "getVotes(address,uint256)" }
func (*GetVotesCall) Selector() Selector      { return SelectorGetVotes }
func (c *GetVotesCall) Pack() ([]byte, error) { return packCall(c) }
func (*GetVotesCall) isCall()                 {}

// GetVotesWithParamsCall is the input of getVotesWithParams(address,uint256,bytes).
type GetVotesWithParamsCall struct {
	Account   common.Address `abi:"account"`
	Timepoint *big.Int       `abi:"timepoint"`
	Params    []byte         `abi:"params"`
}

func (*GetVotesWithParamsCall) Name() string            { return "getVotesWithParams" }
func (*GetVotesWithParamsCall) Signature() string       { return "getVotesWithParams(address,uint256,bytes)" }
func (*GetVotesWithParamsCall) Selector() Selector      { return SelectorGetVotesWithParams }
func (c *GetVotesWithParamsCall) Pack() ([]byte, error) { return packCall(c) }
func (*GetVotesWithParamsCall) isCall()                 {}

// HasVotedCall is the input of hasVoted(uint256,address).
type HasVotedCall struct {
	ProposalID *big.Int       `abi:"proposalId"`
	Account    common.Address `abi:"account"`
}

func (*HasVotedCall) Name() string            { return "hasVoted" }
func (*HasVotedCall) Signature() string       { return "hasVoted(uint256,address)" }
func (*HasVotedCall) Selector() Selector      { return SelectorHasVoted }
func (c *HasVotedCall) Pack() ([]byte, error) { return packCall(c) }
func (*HasVotedCall) isCall()                 {}

// HashProposalCall is the input of hashProposal(address[],uint256[],bytes[],bytes32).
type HashProposalCall struct {
	Targets         []common.Address `abi:"targets"`
	Values          []*big.Int       `abi:"values"`
	Calldatas       [][]byte         `abi:"calldatas"`
	DescriptionHash common.Hash      `abi:"descriptionHash"`
}

func (*HashProposalCall) Name() string            { return "hashProposal" }
func (*HashProposalCall) Signature() string       { return "hashProposal(address[],uint256[],bytes[],bytes32)" }
func (*HashProposalCall) Selector() Selector      { return SelectorHashProposal }
func (c *HashProposalCall) Pack() ([]byte, error) { return packCall(c) }
func (*HashProposalCall) isCall()                 {}

// InitializeCall is the input of initialize(address,address,uint48,uint32,uint256,uint256).
type InitializeCall struct {
	Token                    common.Address `abi:"token"`
	Timelock                 common.Address `abi:"timelock"`
	InitialVotingDelay       *big.Int       `abi:"initialVotingDelay"`
	InitialVotingPeriod      uint32         `abi:"initialVotingPeriod"`
	InitialProposalThreshold *big.Int       `abi:"initialProposalThreshold"`
	QuorumPercent            *big.Int       `abi:"quorumPercent"`
}

func (*InitializeCall) Name() string            { return "initialize" }
func (*InitializeCall) Signature() string       { return "initialize(address,address,uint48,uint32,uint256,uint256)" }
func (*InitializeCall) Selector() Selector      { return SelectorInitialize }
func (c *InitializeCall) Pack() ([]byte, error) { return packCall(c) }
func (*InitializeCall) isCall()                 {}

// NameCall is the input of name().
type NameCall struct{}

func (*NameCall) Name() string            { return "name" }
func (*NameCall) Signature() string       { return "name()" }
func (*NameCall) Selector() Selector      { return SelectorName }
func (c *NameCall) Pack() ([]byte, error) { return packCall(c) }
func (*NameCall) isCall()                 {}

// NoncesCall is the input of nonces(address).
type NoncesCall struct {
	Owner common.Address `abi:"owner"`
}

func (*NoncesCall) Name() string            { return "nonces" }
func (*NoncesCall) Signature() string       { return "nonces(address)" }
func (*NoncesCall) Selector() Selector      { return SelectorNonces }
func (c *NoncesCall) Pack() ([]byte, error) { return packCall(c) }
func (*NoncesCall) isCall()                 {}

// OnERC1155BatchReceivedCall is the input of onERC1155BatchReceived(address,address,uint256[],uint256[],bytes).
type OnERC1155BatchReceivedCall struct {
	Operator common.Address `abi:"operator"`
	From     common.Address `abi:"from"`
	IDs      []*big.Int     `abi:"ids"`
	Values   []*big.Int     `abi:"values"`
	Data     []byte         `abi:"data"`
}

func (*OnERC1155BatchReceivedCall) Name() string            { return "onERC1155BatchReceived" }
func (*OnERC1155BatchReceivedCall) Signature() string       { return "onERC1155BatchReceived(address,address,uint256[],uint256[],bytes)" }
func (*OnERC1155BatchReceivedCall) Selector() Selector      { return SelectorOnERC1155BatchReceived }
func (c *OnERC1155BatchReceivedCall) Pack() ([]byte, error) { return packCall(c) }
func (*OnERC1155BatchReceivedCall) isCall()                 {}

// OnERC1155ReceivedCall is the input of onERC1155Received(address,address,uint256,uint256,bytes).
type OnERC1155ReceivedCall struct {
	Operator common.Address `abi:"operator"`
	From     common.Address `abi:"from"`
	ID       *big.Int       `abi:"id"`
	Value    *big.Int       `abi:"value"`
	Data     []byte         `abi:"data"`
}

func (*OnERC1155ReceivedCall) Name() string            { return "onERC1155Received" }
func (*OnERC1155ReceivedCall) Signature() string       { return "onERC1155Received(address,address,uint256,uint256,bytes)" }
func (*OnERC1155ReceivedCall) Selector() Selector      { return SelectorOnERC1155Received }
func (c *OnERC1155ReceivedCall) Pack() ([]byte, error) { return packCall(c) }
func (*OnERC1155ReceivedCall) isCall()                 {}

// OnERC721ReceivedCall is the input of onERC721Received(address,address,uint256,bytes).
type OnERC721ReceivedCall struct {
	Operator common.Address `abi:"operator"`
	From     common.Address `abi:"from"`
	TokenID  *big.Int       `abi:"tokenId"`
	Data     []byte         `abi:"data"`
}

func (*OnERC721ReceivedCall) Name() string            { return "onERC721Received" }
func (*OnERC721ReceivedCall) Signature() string       { return "onERC721Received(address,address,uint256,bytes)" }
func (*OnERC721ReceivedCall) Selector() Selector      { return SelectorOnERC721Received }
func (c *OnERC721ReceivedCall) Pack() ([]byte, error) { return packCall(c) }
func (*OnERC721ReceivedCall) isCall()                 {}

// ProposalDeadlineCall is the input of proposalDeadline(uint256).
type ProposalDeadlineCall struct {
	ProposalID *big.Int `abi:"proposalId"`
}

func (*ProposalDeadlineCall) Name() string            { return "proposalDeadline" }
func (*ProposalDeadlineCall) Signature() string       { return "proposalDeadline(uint256)" }
func (*ProposalDeadlineCall) Selector() Selector      { return SelectorProposalDeadline }
func (c *ProposalDeadlineCall) Pack() ([]byte, error) { return packCall(c) }
func (*ProposalDeadlineCall) isCall()                 {}

// ProposalEtaCall is the input of proposalEta(uint256).
type ProposalEtaCall struct {
	ProposalID *big.Int `abi:"proposalId"`
}

func (*ProposalEtaCall) Name() string            { return "proposalEta" }
func (*ProposalEtaCall) Signature() string       { return "proposalEta(uint256)" }
func (*ProposalEtaCall) Selector() Selector      { return SelectorProposalEta }
func (c *ProposalEtaCall) Pack() ([]byte, error) { return packCall(c) }
func (*ProposalEtaCall) isCall()                 {}

// ProposalNeedsQueuingCall is the input of proposalNeedsQueuing(uint256).
type ProposalNeedsQueuingCall struct {
	ProposalID *big.Int `abi:"proposalId"`
}

func (*ProposalNeedsQueuingCall) Name() string            { return "proposalNeedsQueuing" }
func (*ProposalNeedsQueuingCall) Signature() string       { return "proposalNeedsQueuing(uint256)" }
func (*ProposalNeedsQueuingCall) Selector() Selector      { return SelectorProposalNeedsQueuing }
func (c *ProposalNeedsQueuingCall) Pack() ([]byte, error) { return packCall(c) }
func (*ProposalNeedsQueuingCall) isCall()                 {}

// ProposalProposerCall is the input of proposalProposer(uint256).
type ProposalProposerCall struct {
	ProposalID *big.Int `abi:"proposalId"`
}

func (*ProposalProposerCall) Name() string            { return "proposalProposer" }
func (*ProposalProposerCall) Signature() string       { return "proposalProposer(uint256)" }
func (*ProposalProposerCall) Selector() Selector      { return SelectorProposalProposer }
func (c *ProposalProposerCall) Pack() ([]byte, error) { return packCall(c) }
func (*ProposalProposerCall) isCall()                 {}

// ProposalSnapshotCall is the input of proposalSnapshot(uint256).
type ProposalSnapshotCall struct {
	ProposalID *big.Int `abi:"proposalId"`
}

func (*ProposalSnapshotCall) Name() string            { return "proposalSnapshot" }
func (*ProposalSnapshotCall) Signature() string       { return "proposalSnapshot(uint256)" }
func (*ProposalSnapshotCall) Selector() Selector      { return SelectorProposalSnapshot }
func (c *ProposalSnapshotCall) Pack() ([]byte, error) { return packCall(c) }
func (*ProposalSnapshotCall) isCall()                 {}

// ProposalThresholdCall is the input of proposalThreshold().
type ProposalThresholdCall struct{}

func (*ProposalThresholdCall) Name() string            { return "proposalThreshold" }
func (*ProposalThresholdCall) Signature() string       { return "proposalThreshold()" }
func (*ProposalThresholdCall) Selector() Selector      { return SelectorProposalThreshold }
func (c *ProposalThresholdCall) Pack() ([]byte, error) { return packCall(c) }
func (*ProposalThresholdCall) isCall()                 {}

// ProposalVotesCall is the input of proposalVotes(uint256).
type ProposalVotesCall struct {
	ProposalID *big.Int `abi:"proposalId"`
}

func (*ProposalVotesCall) Name() string            { return "proposalVotes" }
func (*ProposalVotesCall) Signature() string       { return "proposalVotes(uint256)" }
func (*ProposalVotesCall) Selector() Selector      { return SelectorProposalVotes }
func (c *ProposalVotesCall) Pack() ([]byte, error) { return packCall(c) }
func (*ProposalVotesCall) isCall()                 {}

// ProposeCall is the input of propose(address[],uint256[],bytes[],string).
type ProposeCall struct {
	Targets     []common.Address `abi:"targets"`
	Values      []*big.Int       `abi:"values"`
	Calldatas   [][]byte         `abi:"calldatas"`
	Description string           `abi:"description"`
}

func (*ProposeCall) Name() string            { return "propose" }
func (*ProposeCall) Signature() string       { return "propose(address[],uint256[],bytes[],string)" }
func (*ProposeCall) Selector() Selector      { return SelectorPropose }
func (c *ProposeCall) Pack() ([]byte, error) { return packCall(c) }
func (*ProposeCall) isCall()                 {}

// ProxiableUUIDCall is the input of proxiableUUID().
type ProxiableUUIDCall struct{}

func (*ProxiableUUIDCall) Name() string            { return "proxiableUUID" }
func (*ProxiableUUIDCall) Signature() string       { return "proxiableUUID()" }
func (*ProxiableUUIDCall) Selector() Selector      { return SelectorProxiableUUID }
func (c *ProxiableUUIDCall) Pack() ([]byte, error) { return packCall(c) }
func (*ProxiableUUIDCall) isCall()                 {}

// QueueCall is the input of queue(address[],uint256[],bytes[],bytes32).
type QueueCall struct {
	Targets         []common.Address `abi:"targets"`
	Values          []*big.Int       `abi:"values"`
	Calldatas       [][]byte         `abi:"calldatas"`
	DescriptionHash common.Hash      `abi:"descriptionHash"`
}

func (*QueueCall) Name() string            { return "queue" }
func (*QueueCall) Signature() string       { return "queue(address[],uint256[],bytes[],bytes32)" }
func (*QueueCall) Selector() Selector      { return SelectorQueue }
func (c *QueueCall) Pack() ([]byte, error) { return packCall(c) }
func (*QueueCall) isCall()                 {}

// QuorumCall is the input of quorum(uint256).
type QuorumCall struct {
	BlockNumber *big.Int `abi:"blockNumber"`
}

func (*QuorumCall) Name() string            { return "quorum" }
func (*QuorumCall) Signature() string       { return "quorum(uint256)" }
func (*QuorumCall) Selector() Selector      { return SelectorQuorum }
func (c *QuorumCall) Pack() ([]byte, error) { return packCall(c) }
func (*QuorumCall) isCall()                 {}

// QuorumDenominatorCall is the input of quorumDenominator().
type QuorumDenominatorCall struct{}

func (*QuorumDenominatorCall) Name() string            { return "quorumDenominator" }
func (*QuorumDenominatorCall) Signature() string       { return "quorumDenominator()" }
func (*QuorumDenominatorCall) Selector() Selector      { return SelectorQuorumDenominator }
func (c *QuorumDenominatorCall) Pack() ([]byte, error) { return packCall(c) }
func (*QuorumDenominatorCall) isCall()                 {}

// QuorumNumeratorCall is the input of quorumNumerator().
type QuorumNumeratorCall struct{}

func (*QuorumNumeratorCall) Name() string            { return "quorumNumerator" }
func (*QuorumNumeratorCall) Signature() string       { return "quorumNumerator()" }
func (*QuorumNumeratorCall) Selector() Selector      { return SelectorQuorumNumerator }
func (c *QuorumNumeratorCall) Pack() ([]byte, error) { return packCall(c) }
func (*QuorumNumeratorCall) isCall()                 {}

// QuorumNumeratorAtCall is the input of quorumNumerator(uint256).
type QuorumNumeratorAtCall struct {
	Timepoint *big.Int `abi:"timepoint"`
}

func (*QuorumNumeratorAtCall) Name() string            { return "quorumNumerator" }
func (*QuorumNumeratorAtCall) Signature() string       { return "quorumNumerator(uint256)" }
func (*QuorumNumeratorAtCall) Selector() Selector      { return SelectorQuorumNumeratorAt }
func (c *QuorumNumeratorAtCall) Pack() ([]byte, error) { return packCall(c) }
func (*QuorumNumeratorAtCall) isCall()                 {}

// RelayCall is the input of relay(address,uint256,bytes).
type RelayCall struct {
	Target common.Address `abi:"target"`
	Value  *big.Int       `abi:"value"`
	Data   []byte         `abi:"data"`
}

func (*RelayCall) Name() string            { return "relay" }
func (*RelayCall) Signature() string       { return "relay(address,uint256,bytes)" }
func (*RelayCall) Selector() Selector      { return SelectorRelay }
func (c *RelayCall) Pack() ([]byte, error) { return packCall(c) }
func (*RelayCall) isCall()                 {}

// SetProposalThresholdCall is the input of setProposalThreshold(uint256).
type SetProposalThresholdCall struct {
	NewProposalThreshold *big.Int `abi:"newProposalThreshold"`
}

func (*SetProposalThresholdCall) Name() string            { return "setProposalThreshold" }
func (*SetProposalThresholdCall) Signature() string       { return "setProposalThreshold(uint256)" }
func (*SetProposalThresholdCall) Selector() Selector      { return SelectorSetProposalThreshold }
func (c *SetProposalThresholdCall) Pack() ([]byte, error) { return packCall(c) }
func (*SetProposalThresholdCall) isCall()                 {}

// SetVotingDelayCall is the input of setVotingDelay(uint48).
type SetVotingDelayCall struct {
	NewVotingDelay *big.Int `abi:"newVotingDelay"`
}

func (*SetVotingDelayCall) Name() string            { return "setVotingDelay" }
func (*SetVotingDelayCall) Signature() string       { return "setVotingDelay(uint48)" }
func (*SetVotingDelayCall) Selector() Selector      { return SelectorSetVotingDelay }
func (c *SetVotingDelayCall) Pack() ([]byte, error) { return packCall(c) }
func (*SetVotingDelayCall) isCall()                 {}

// SetVotingPeriodCall is the input of setVotingPeriod(uint32).
type SetVotingPeriodCall struct {
	NewVotingPeriod uint32 `abi:"newVotingPeriod"`
}

func (*SetVotingPeriodCall) Name() string            { return "setVotingPeriod" }
func (*SetVotingPeriodCall) Signature() string       { return "setVotingPeriod(uint32)" }
func (*SetVotingPeriodCall) Selector() Selector      { return SelectorSetVotingPeriod }
func (c *SetVotingPeriodCall) Pack() ([]byte, error) { return packCall(c) }
func (*SetVotingPeriodCall) isCall()                 {}

// StateCall is the input of state(uint256).
type StateCall struct {
	ProposalID *big.Int `abi:"proposalId"`
}

func (*StateCall) Name() string            { return "state" }
func (*StateCall) Signature() string       { return "state(uint256)" }
func (*StateCall) Selector() Selector      { return SelectorState }
func (c *StateCall) Pack() ([]byte, error) { return packCall(c) }
func (*StateCall) isCall()                 {}

// SupportsInterfaceCall is the input of supportsInterface(bytes4).
type SupportsInterfaceCall struct {
	InterfaceID [4]byte `abi:"interfaceId"`
}

func (*SupportsInterfaceCall) Name() string            { return "supportsInterface" }
func (*SupportsInterfaceCall) Signature() string       { return "supportsInterface(bytes4)" }
func (*SupportsInterfaceCall) Selector() Selector      { return SelectorSupportsInterface }
func (c *SupportsInterfaceCall) Pack() ([]byte, error) { return packCall(c) }
func (*SupportsInterfaceCall) isCall()                 {}

// TimelockCall is the input of timelock().
type TimelockCall struct{}

func (*TimelockCall) Name() string            { return "timelock" }
func (*TimelockCall) Signature() string       { return "timelock()" }
func (*TimelockCall) Selector() Selector      { return SelectorTimelock }
func (c *TimelockCall) Pack() ([]byte, error) { return packCall(c) }
func (*TimelockCall) isCall()                 {}

// TokenCall is the input of token().
type TokenCall struct{}

func (*TokenCall) Name() string            { return "token" }
func (*TokenCall) Signature() string       { return "token()" }
func (*TokenCall) Selector() Selector      { return SelectorToken }
func (c *TokenCall) Pack() ([]byte, error) { return packCall(c) }
func (*TokenCall) isCall()                 {}

// UpdateQuorumNumeratorCall is the input of updateQuorumNumerator(uint256).
type UpdateQuorumNumeratorCall struct {
	NewQuorumNumerator *big.Int `abi:"newQuorumNumerator"`
}

func (*UpdateQuorumNumeratorCall) Name() string            { return "updateQuorumNumerator" }
func (*UpdateQuorumNumeratorCall) Signature() string       { return "updateQuorumNumerator(uint256)" }
func (*UpdateQuorumNumeratorCall) Selector() Selector      { return SelectorUpdateQuorumNumerator }
func (c *UpdateQuorumNumeratorCall) Pack() ([]byte, error) { return packCall(c) }
func (*UpdateQuorumNumeratorCall) isCall()                 {}

// UpdateTimelockCall is the input of updateTimelock(address).
type UpdateTimelockCall struct {
	NewTimelock common.Address `abi:"newTimelock"`
}

func (*UpdateTimelockCall) Name() string            { return "updateTimelock" }
func (*UpdateTimelockCall) Signature() string       { return "updateTimelock(address)" }
func (*UpdateTimelockCall) Selector() Selector      { return SelectorUpdateTimelock }
func (c *UpdateTimelockCall) Pack() ([]byte, error) { return packCall(c) }
func (*UpdateTimelockCall) isCall()                 {}

// UpgradeToAndCallCall is the input of upgradeToAndCall(address,bytes).
type UpgradeToAndCallCall struct {
	NewImplementation common.Address `abi:"newImplementation"`
	Data              []byte         `abi:"data"`
}

func (*UpgradeToAndCallCall) Name() string            { return "upgradeToAndCall" }
func (*UpgradeToAndCallCall) Signature() string       { return "upgradeToAndCall(address,bytes)" }
func (*UpgradeToAndCallCall) Selector() Selector      { return SelectorUpgradeToAndCall }
func (c *UpgradeToAndCallCall) Pack() ([]byte, error) { return packCall(c) }
func (*UpgradeToAndCallCall) isCall()                 {}

// VersionCall is the input of version().
type VersionCall struct{}

func (*VersionCall) Name() string            { return "version" }
func (*VersionCall) Signature() string       { return "version()" }
func (*VersionCall) Selector() Selector      { return SelectorVersion }
func (c *VersionCall) Pack() ([]byte, error) { return packCall(c) }
func (*VersionCall) isCall()                 {}

// VotingDelayCall is the input of votingDelay().
type VotingDelayCall struct{}

func (*VotingDelayCall) Name() string            { return "votingDelay" }
func (*VotingDelayCall) Signature() string       { return "votingDelay()" }
func (*VotingDelayCall) Selector() Selector      { return SelectorVotingDelay }
func (c *VotingDelayCall) Pack() ([]byte, error) { return packCall(c) }
func (*VotingDelayCall) isCall()                 {}

// VotingPeriodCall is the input of votingPeriod().
type VotingPeriodCall struct{}

func (*VotingPeriodCall) Name() string            { return "votingPeriod" }
func (*VotingPeriodCall) Signature() string       { return "votingPeriod()" }
func (*VotingPeriodCall) Selector() Selector      { return SelectorVotingPeriod }
func (c *VotingPeriodCall) Pack() ([]byte, error) { return packCall(c) }
func (*VotingPeriodCall) isCall()                 {}

// callTable is sorted by selector.
var callTable = selectorTable[Call]{
	{SelectorSupportsInterface, func() Call { return new(SupportsInterfaceCall) }},
	{SelectorVotingPeriod, func() Call { return new(VotingPeriodCall) }},
	{SelectorUpdateQuorumNumerator, func() Call { return new(UpdateQuorumNumeratorCall) }},
	{SelectorName, func() Call { return new(NameCall) }},
	{SelectorProposalProposer, func() Call { return new(ProposalProposerCall) }},
	{SelectorOnERC721Received, func() Call { return new(OnERC721ReceivedCall) }},
	{SelectorQueue, func() Call { return new(QueueCall) }},
	{SelectorInitialize, func() Call { return new(InitializeCall) }},
	{SelectorExecute, func() Call { return new(ExecuteCall) }},
	{SelectorProposalSnapshot, func() Call { return new(ProposalSnapshotCall) }},
	{SelectorExtendedBallotTypehash, func() Call { return new(ExtendedBallotTypehashCall) }},
	{SelectorVotingDelay, func() Call { return new(VotingDelayCall) }},
	{SelectorState, func() Call { return new(StateCall) }},
	{SelectorHasVoted, func() Call { return new(HasVotedCall) }},
	{SelectorCancel, func() Call { return new(CancelCall) }},
	{SelectorClockMode, func() Call { return new(ClockModeCall) }},
	{SelectorUpgradeToAndCall, func() Call { return new(UpgradeToAndCallCall) }},
	{SelectorProxiableUUID, func() Call { return new(ProxiableUUIDCall) }},
	{SelectorProposalVotes, func() Call { return new(ProposalVotesCall) }},
	{SelectorVersion, func() Call { return new(VersionCall) }},
	{SelectorCastVote, func() Call { return new(CastVoteCall) }},
	{SelectorCastVoteWithReasonAndParamsBySig, func() Call { return new(CastVoteWithReasonAndParamsBySigCall) }},
	{SelectorCastVoteWithReasonAndParams, func() Call { return new(CastVoteWithReasonAndParamsCall) }},
	{SelectorQuorumNumeratorAt, func() Call { return new(QuorumNumeratorAtCall) }},
	{SelectorSetVotingDelay, func() Call { return new(SetVotingDelayCall) }},
	{SelectorCastVoteWithReason, func() Call { return new(CastVoteWithReasonCall) }},
	{SelectorPropose, func() Call { return new(ProposeCall) }},
	{SelectorNonces, func() Call { return new(NoncesCall) }},
	{SelectorEIP712Domain, func() Call { return new(EIP712DomainCall) }},
	{SelectorCastVoteBySig, func() Call { return new(CastVoteBySigCall) }},
	{SelectorClock, func() Call { return new(ClockCall) }},
	{SelectorQuorumDenominator, func() Call { return new(QuorumDenominatorCall) }},
	{SelectorGetVotesWithParams, func() Call { return new(GetVotesWithParamsCall) }},
	{SelectorQuorumNumerator, func() Call { return new(QuorumNumeratorCall) }},
	{SelectorUpdateTimelock, func() Call { return new(UpdateTimelockCall) }},
	{SelectorProposalNeedsQueuing, func() Call { return new(ProposalNeedsQueuingCall) }},
	{SelectorProposalEta, func() Call { return new(ProposalEtaCall) }},
	{SelectorUpgradeInterfaceVersion, func() Call { return new(UpgradeInterfaceVersionCall) }},
	{SelectorProposalThreshold, func() Call { return new(ProposalThresholdCall) }},
	{SelectorOnERC1155BatchReceived, func() Call { return new(OnERC1155BatchReceivedCall) }},
	{SelectorProposalDeadline, func() Call { return new(ProposalDeadlineCall) }},
	{SelectorRelay, func() Call { return new(RelayCall) }},
	{SelectorHashProposal, func() Call { return new(HashProposalCall) }},
	{SelectorTimelock, func() Call { return new(TimelockCall) }},
	{SelectorCountingMode, func() Call { return new(CountingModeCall) }},
	{SelectorBallotTypehash, func() Call { return new(BallotTypehashCall) }},
	{SelectorSetVotingPeriod, func() Call { return new(SetVotingPeriodCall) }},
	{SelectorGetVotes, func() Call { return new(GetVotesCall) }},
	{SelectorSetProposalThreshold, func() Call { return new(SetProposalThresholdCall) }},
	{SelectorOnERC1155Received, func() Call { return new(OnERC1155ReceivedCall) }},
	{SelectorQuorum, func() Call { return new(QuorumCall) }},
	{SelectorToken, func() Call { return new(TokenCall) }},
}
