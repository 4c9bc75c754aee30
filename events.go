package governor

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Event topics of the governor ABI.
var (
	TopicEIP712DomainChanged    = common.HexToHash("0x0a6387c9ea3628b88a633bb4f3b151770f70085117a15f9bf3787cda53f13d31")
	TopicInitialized            = common.HexToHash("0xc7f505b2f371ae2175ee4913f4499e1f2633a7b5936321eed1cdaeb6115181d2")
	TopicProposalCanceled       = common.HexToHash("0x789cf55be980739dad1d0699b93b58e806b51c9d96619bfa8fe0a28abaa7b30c")
	TopicProposalCreated        = common.HexToHash("0x7d84a6263ae0d98d3329bd7b46bb4e8d6f98cd35a7adb45c274c8b7fd5ebd5e0")
	TopicProposalExecuted       = common.HexToHash("0x712ae1383f79ac853f8d882153778e0260ef8f03b504e2866e0593e04d2b291f")
	TopicProposalQueued         = common.HexToHash("0x9a2e42fd6722813d69113e7d0079d3d940171428df7373df9c7f7617cfda2892")
	TopicProposalThresholdSet   = common.HexToHash("0xccb45da8d5717e6c4544694297c4ba5cf151d455c9bb0ed4fc7a38411bc05461")
	TopicQuorumNumeratorUpdated = common.HexToHash("0x0553476bf02ef2726e8ce5ced78d63e26e602e4a2257b1f559418e24b4633997")
	TopicTimelockChange         = common.HexToHash("0x08f74ea46ef7894f65eabfb5e6e695de773a000b47c529ab559178069b226401")
	TopicUpgraded               = common.HexToHash("0xbc7cd75a20ee27fd9adebab32041f755214dbc6bffa90cc0225b39da2e5c2d3b")
	TopicVoteCast               = common.HexToHash("0xb8e138887d0aa13bab447e82de9d5c1777041ecd21ca36ba824ff1e6c07ddda4")
	TopicVoteCastWithParams     = common.HexToHash("0xe2babfbac5889a709b63bb7f598b324e08bc5a4fb9ec647fb3cbc9ec07eb8712")
	TopicVotingDelaySet         = common.HexToHash("0xc565b045403dc03c2eea82b81a0465edad9e2e7fc4d97e11421c209da93d7a93")
	TopicVotingPeriodSet        = common.HexToHash("0x7e3f7f0708a84de9203036abaa450dccc85ad5ff52f78c170f3edb55cf5e8828")
)

// EIP712DomainChangedEvent is the log emitted as event EIP712DomainChanged().
type EIP712DomainChangedEvent struct{}

func (*EIP712DomainChangedEvent) Name() string       { return "EIP712DomainChanged" }
func (*EIP712DomainChangedEvent) Signature() string  { return "EIP712DomainChanged()" }
func (*EIP712DomainChangedEvent) Topic() common.Hash { return TopicEIP712DomainChanged }
func (*EIP712DomainChangedEvent) isEvent()           {}

// InitializedEvent is the log emitted as event Initialized(uint64 version).
type InitializedEvent struct {
	Version uint64 `abi:"version"`
}

func (*InitializedEvent) Name() string       { return "Initialized" }
func (*InitializedEvent) Signature() string  { return "Initialized(uint64)" }
func (*InitializedEvent) Topic() common.Hash { return TopicInitialized }
func (*InitializedEvent) isEvent()           {}

// ProposalCanceledEvent is the log emitted as event ProposalCanceled(uint256 proposalId).
type ProposalCanceledEvent struct {
	ProposalID *big.Int `abi:"proposalId"`
}

func (*ProposalCanceledEvent) Name() string       { return "ProposalCanceled" }
func (*ProposalCanceledEvent) Signature() string  { return "ProposalCanceled(uint256)" }
func (*ProposalCanceledEvent) Topic() common.Hash { return TopicProposalCanceled }
func (*ProposalCanceledEvent) isEvent()           {}

// ProposalCreatedEvent is the log emitted as event ProposalCreated(uint256 proposalId, address proposer, address[] targets, uint256[] values, string[] signatures, bytes[] calldatas, uint256 voteStart, uint256 voteEnd, string description).
type ProposalCreatedEvent struct {
	ProposalID  *big.Int         `abi:"proposalId"`
	Proposer    common.Address   `abi:"proposer"`
	Targets     []common.Address `abi:"targets"`
	Values      []*big.Int       `abi:"values"`
	Signatures  []string         `abi:"signatures"`
	Calldatas   [][]byte         `abi:"calldatas"`
	VoteStart   *big.Int         `abi:"voteStart"`
	VoteEnd     *big.Int         `abi:"voteEnd"`
	Description string           `abi:"description"`
}

func (*ProposalCreatedEvent) Name() string       { return "ProposalCreated" }
func (*ProposalCreatedEvent) Signature() string  { return "ProposalCreated(uint256,address,address[],uint256[],string[],bytes[],uint256,uint256,string)" }
func (*ProposalCreatedEvent) Topic() common.Hash { return TopicProposalCreated }
func (*ProposalCreatedEvent) isEvent()           {}

// ProposalExecutedEvent is the log emitted as event ProposalExecuted(uint256 proposalId).
type ProposalExecutedEvent struct {
	ProposalID *big.Int `abi:"proposalId"`
}

func (*ProposalExecutedEvent) Name() string       { return "ProposalExecuted" }
func (*ProposalExecutedEvent) Signature() string  { return "ProposalExecuted(uint256)" }
func (*ProposalExecutedEvent) Topic() common.Hash { return TopicProposalExecuted }
func (*ProposalExecutedEvent) isEvent()           {}

// ProposalQueuedEvent is the log emitted as event ProposalQueued(uint256 proposalId, uint256 etaSeconds).
type ProposalQueuedEvent struct {
	ProposalID *big.Int `abi:"proposalId"`
	EtaSeconds *big.Int `abi:"etaSeconds"`
}

func (*ProposalQueuedEvent) Name() string       { return "ProposalQueued" }
func (*ProposalQueuedEvent) Signature() string  { return "ProposalQueued(uint256,uint256)" }
func (*ProposalQueuedEvent) Topic() common.Hash { return TopicProposalQueued }
func (*ProposalQueuedEvent) isEvent()           {}

// ProposalThresholdSetEvent is the log emitted as event ProposalThresholdSet(uint256 oldProposalThreshold, uint256 newProposalThreshold).
type ProposalThresholdSetEvent struct {
	OldProposalThreshold *big.Int `abi:"oldProposalThreshold"`
	NewProposalThreshold *big.Int `abi:"newProposalThreshold"`
}

func (*ProposalThresholdSetEvent) Name() string       { return "ProposalThresholdSet" }
func (*ProposalThresholdSetEvent) Signature() string  { return "ProposalThresholdSet(uint256,uint256)" }
func (*ProposalThresholdSetEvent) Topic() common.Hash { return TopicProposalThresholdSet }
func (*ProposalThresholdSetEvent) isEvent()           {}

// QuorumNumeratorUpdatedEvent is the log emitted as event QuorumNumeratorUpdated(uint256 oldQuorumNumerator, uint256 newQuorumNumerator).
type QuorumNumeratorUpdatedEvent struct {
	OldQuorumNumerator *big.Int `abi:"oldQuorumNumerator"`
	NewQuorumNumerator *big.Int `abi:"newQuorumNumerator"`
}

func (*QuorumNumeratorUpdatedEvent) Name() string       { return "QuorumNumeratorUpdated" }
func (*QuorumNumeratorUpdatedEvent) Signature() string  { return "QuorumNumeratorUpdated(uint256,uint256)" }
func (*QuorumNumeratorUpdatedEvent) Topic() common.Hash { return TopicQuorumNumeratorUpdated }
func (*QuorumNumeratorUpdatedEvent) isEvent()           {}

// TimelockChangeEvent is the log emitted as event TimelockChange(address oldTimelock, address newTimelock).
type TimelockChangeEvent struct {
	OldTimelock common.Address `abi:"oldTimelock"`
	NewTimelock common.Address `abi:"newTimelock"`
}

func (*TimelockChangeEvent) Name() string       { return "TimelockChange" }
func (*TimelockChangeEvent) Signature() string  { return "TimelockChange(address,address)" }
func (*TimelockChangeEvent) Topic() common.Hash { return TopicTimelockChange }
func (*TimelockChangeEvent) isEvent()           {}

// UpgradedEvent is the log emitted as event Upgraded(address indexed implementation).
type UpgradedEvent struct {
	Implementation common.Address `abi:"implementation"`
}

func (*UpgradedEvent) Name() string       { return "Upgraded" }
func (*UpgradedEvent) Signature() string  { return "Upgraded(address)" }
func (*UpgradedEvent) Topic() common.Hash { return TopicUpgraded }
func (*UpgradedEvent) isEvent()           {}

// VoteCastEvent is the log emitted as event VoteCast(address indexed voter, uint256 proposalId, uint8 support, uint256 weight, string reason).
type VoteCastEvent struct {
	Voter      common.Address `abi:"voter"`
	ProposalID *big.Int       `abi:"proposalId"`
	Support    VoteType       `abi:"support"`
	Weight     *big.Int       `abi:"weight"`
	Reason     string         `abi:"reason"`
}

func (*VoteCastEvent) Name() string       { return "VoteCast" }
func (*VoteCastEvent) Signature() string  { return "VoteCast(address,uint256,uint8,uint256,string)" }
func (*VoteCastEvent) Topic() common.Hash { return TopicVoteCast }
func (*VoteCastEvent) isEvent()           {}

// VoteCastWithParamsEvent is the log emitted as event VoteCastWithParams(address indexed voter, uint256 proposalId, uint8 support, uint256 weight, string reason, bytes params).
type VoteCastWithParamsEvent struct {
	Voter      common.Address `abi:"voter"`
	ProposalID *big.Int       `abi:"proposalId"`
	Support    VoteType       `abi:"support"`
	Weight     *big.Int       `abi:"weight"`
	Reason     string         `abi:"reason"`
	Params     []byte         `abi:"params"`
}

func (*VoteCastWithParamsEvent) Name() string       { return "VoteCastWithParams" }
func (*VoteCastWithParamsEvent) Signature() string  { return "VoteCastWithParams(address,uint256,uint8,uint256,string,bytes)" }
func (*VoteCastWithParamsEvent) Topic() common.Hash { return TopicVoteCastWithParams }
func (*VoteCastWithParamsEvent) isEvent()           {}

// VotingDelaySetEvent is the log emitted as event VotingDelaySet(uint256 oldVotingDelay, uint256 newVotingDelay).
type VotingDelaySetEvent struct {
	OldVotingDelay *big.Int `abi:"oldVotingDelay"`
	NewVotingDelay *big.Int `abi:"newVotingDelay"`
}

func (*VotingDelaySetEvent) Name() string       { return "VotingDelaySet" }
func (*VotingDelaySetEvent) Signature() string  { return "VotingDelaySet(uint256,uint256)" }
func (*VotingDelaySetEvent) Topic() common.Hash { return TopicVotingDelaySet }
func (*VotingDelaySetEvent) isEvent()           {}

// VotingPeriodSetEvent is the log emitted as event VotingPeriodSet(uint256 oldVotingPeriod, uint256 newVotingPeriod).
type VotingPeriodSetEvent struct {
	OldVotingPeriod *big.Int `abi:"oldVotingPeriod"`
	NewVotingPeriod *big.Int `abi:"newVotingPeriod"`
}

func (*VotingPeriodSetEvent) Name() string       { return "VotingPeriodSet" }
func (*VotingPeriodSetEvent) Signature() string  { return "VotingPeriodSet(uint256,uint256)" }
func (*VotingPeriodSetEvent) Topic() common.Hash { return TopicVotingPeriodSet }
func (*VotingPeriodSetEvent) isEvent()           {}

// eventTable is sorted by topic.
var eventTable = topicTable{
	{TopicQuorumNumeratorUpdated, func() Event { return new(QuorumNumeratorUpdatedEvent) }},
	{TopicTimelockChange, func() Event { return new(TimelockChangeEvent) }},
	{TopicEIP712DomainChanged, func() Event { return new(EIP712DomainChangedEvent) }},
	{TopicProposalExecuted, func() Event { return new(ProposalExecutedEvent) }},
	{TopicProposalCanceled, func() Event { return new(ProposalCanceledEvent) }},
	{TopicProposalCreated, func() Event { return new(ProposalCreatedEvent) }},
	{TopicVotingPeriodSet, func() Event { return new(VotingPeriodSetEvent) }},
	{TopicProposalQueued, func() Event { return new(ProposalQueuedEvent) }},
	{TopicVoteCast, func() Event { return new(VoteCastEvent) }},
	{TopicUpgraded, func() Event { return new(UpgradedEvent) }},
	{TopicVotingDelaySet, func() Event { return new(VotingDelaySetEvent) }},
	{TopicInitialized, func() Event { return new(InitializedEvent) }},
	{TopicProposalThresholdSet, func() Event { return new(ProposalThresholdSetEvent) }},
	{TopicVoteCastWithParams, func() Event { return new(VoteCastWithParamsEvent) }},
}
