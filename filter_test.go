package governor

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func encodedLog(t *testing.T, ev Event, block uint64) types.Log {
	t.Helper()
	topics, data, err := EncodeEvent(ev)
	require.NoError(t, err)
	return types.Log{Address: testGovernor, Topics: topics, Data: data, BlockNumber: block}
}

func TestFilterQuery(t *testing.T) {
	q := FilterQuery(testGovernor, big.NewInt(1), big.NewInt(2), TopicVoteCast, TopicProposalCreated)

	assert.Equal(t, []common.Address{testGovernor}, q.Addresses)
	assert.Equal(t, int64(1), q.FromBlock.Int64())
	assert.Equal(t, int64(2), q.ToBlock.Int64())
	assert.Equal(t, [][]common.Hash{{TopicVoteCast, TopicProposalCreated}}, q.Topics)

	assert.Nil(t, FilterQuery(testGovernor, nil, nil).Topics)
}

func TestFilterEvents(t *testing.T) {
	queued := encodedLog(t, &ProposalQueuedEvent{ProposalID: big.NewInt(1), EtaSeconds: big.NewInt(100)}, 10)
	executed := encodedLog(t, &ProposalExecutedEvent{ProposalID: big.NewInt(1)}, 11)
	foreign := types.Log{Topics: []common.Hash{TopicOf("Transfer(address,address,uint256)")}, BlockNumber: 12}

	backend := &fakeBackend{logs: []types.Log{queued, foreign, executed}}
	g := NewGovernor(testGovernor, backend)

	events, err := g.FilterEvents(context.Background(), big.NewInt(10), nil)
	assert.ErrorIs(t, err, ErrUnknownSelector)

	require.Len(t, events, 2)
	assert.IsType(t, &ProposalQueuedEvent{}, events[0].Event)
	assert.Equal(t, uint64(10), events[0].Log.BlockNumber)
	assert.IsType(t, &ProposalExecutedEvent{}, events[1].Event)

	require.Len(t, backend.queries, 1)
	assert.Equal(t, []common.Address{testGovernor}, backend.queries[0].Addresses)
}

func TestWatchEvents(t *testing.T) {
	defer goleak.VerifyNone(t)

	backend := &fakeBackend{}
	g := NewGovernor(testGovernor, backend)
	sink := make(chan EventLog, 1)

	sub, err := g.WatchEvents(context.Background(), sink, TopicVoteCast)
	require.NoError(t, err)
	assert.Equal(t, [][]common.Hash{{TopicVoteCast}}, backend.queries[0].Topics)

	backend.subLogs <- types.Log{Topics: []common.Hash{TopicVoteCast}}
	backend.subLogs <- encodedLog(t, &VoteCastEvent{
		Voter:      testSender,
		ProposalID: big.NewInt(3),
		Support:    VoteAgainst,
		Weight:     big.NewInt(12),
	}, 20)

	select {
	case got := <-sink:
		voteCast, ok := got.Event.(*VoteCastEvent)
		require.True(t, ok)
		assert.Equal(t, testSender, voteCast.Voter)
		assert.Equal(t, uint64(20), got.Log.BlockNumber)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for event")
	}

	sub.Unsubscribe()

	select {
	case <-backend.sub.done:
	case <-time.After(5 * time.Second):
		t.Fatal("upstream subscription not released")
	}
}
