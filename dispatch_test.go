package governor

import (
	"encoding/binary"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func word(hex string) []byte {
	return common.LeftPadBytes(common.FromHex(hex), 32)
}

func concat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func TestDecodeCallDispatch(t *testing.T) {
	t.Run("dispatches every known selector to its variant", func(t *testing.T) {
		for _, entry := range callTable {
			want := entry.build()
			m, err := methodFor(entry.selector)
			require.NoError(t, err)

			// The zero value of every static head is a valid encoding;
			// dynamic arguments need an offset pointing at a zero length.
			payload := make([]byte, argumentsHeadSize(m.Inputs))
			for i, arg := range m.Inputs {
				if isDynamicType(arg.Type) {
					binary.BigEndian.PutUint64(payload[i*32+24:], uint64(len(payload)))
				}
			}
			if len(payload) > 0 {
				payload = append(payload, make([]byte, 32)...)
			}

			got, err := DecodeCallRaw(entry.selector, payload, false)
			require.NoError(t, err, want.Name())
			assert.IsType(t, want, got)
		}
	})

	t.Run("rejects unknown selectors", func(t *testing.T) {
		known := make(map[Selector]bool)
		for _, sel := range CallSelectors() {
			known[sel] = true
		}

		rapid.Check(t, func(t *rapid.T) {
			b := rapid.SliceOfN(rapid.Byte(), 4, 4).Draw(t, "selector")
			var sel Selector
			copy(sel[:], b)
			if known[sel] {
				t.Skip("known selector")
			}

			if _, err := DecodeCallRaw(sel, nil, false); !errors.Is(err, ErrUnknownSelector) {
				t.Fatalf("selector %s: expected unknown selector error, got %v", sel, err)
			}
		})
	})

	t.Run("unknown selector error carries the selector", func(t *testing.T) {
		_, err := DecodeCall([]byte{0xde, 0xad, 0xbe, 0xef}, false)

		var unknown *UnknownSelectorError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, KindCall, unknown.Kind)
		assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, unknown.Selector)
	})

	t.Run("error selectors are not call selectors", func(t *testing.T) {
		_, err := DecodeCallRaw(SelectorOf("GovernorNonexistentProposal(uint256)"), word("0x01"), false)
		assert.ErrorIs(t, err, ErrUnknownSelector)
	})
}

func TestDecodeCallShortInput(t *testing.T) {
	t.Run("missing selector", func(t *testing.T) {
		_, err := DecodeCall([]byte{0x56, 0x78}, false)
		assert.ErrorIs(t, err, ErrShortInput)
	})

	t.Run("truncated head", func(t *testing.T) {
		data := concat(SelectorCastVote[:], word("0x01"))
		_, err := DecodeCall(data, false)

		var decodeErr *DecodeError
		require.ErrorAs(t, err, &decodeErr)
		assert.Equal(t, "castVote", decodeErr.Name)
		assert.ErrorIs(t, err, ErrShortInput)
	})

	t.Run("offset past the end", func(t *testing.T) {
		data := concat(SelectorCastVoteWithReason[:], word("0x01"), word("0x01"), word("0x1000"))
		_, err := DecodeCall(data, false)

		var decodeErr *DecodeError
		assert.ErrorAs(t, err, &decodeErr)
	})

	t.Run("length past the end", func(t *testing.T) {
		data := concat(SelectorCastVoteWithReason[:], word("0x01"), word("0x01"), word("0x60"), word("0xffffffff"))
		_, err := DecodeCall(data, false)

		var decodeErr *DecodeError
		assert.ErrorAs(t, err, &decodeErr)
	})
}

func TestDecodeCallValidation(t *testing.T) {
	dirtyAddress := concat(SelectorHasVoted[:],
		word("0x2a"),
		common.FromHex("0xff00000000000000000000001111111111111111111111111111111111111111"))

	t.Run("lenient decoding ignores address padding", func(t *testing.T) {
		call, err := DecodeCall(dirtyAddress, false)
		require.NoError(t, err)

		hasVoted, ok := call.(*HasVotedCall)
		require.True(t, ok)
		assert.Equal(t, int64(42), hasVoted.ProposalID.Int64())
		assert.Equal(t, common.HexToAddress("0x1111111111111111111111111111111111111111"), hasVoted.Account)
	})

	t.Run("strict decoding rejects address padding", func(t *testing.T) {
		_, err := DecodeCall(dirtyAddress, true)
		assert.ErrorIs(t, err, ErrNonCanonical)
	})

	trailing := concat(SelectorState[:], word("0x01"), []byte{0x00})

	t.Run("lenient decoding ignores trailing bytes", func(t *testing.T) {
		call, err := DecodeCall(trailing, false)
		require.NoError(t, err)
		assert.IsType(t, &StateCall{}, call)
	})

	t.Run("strict decoding rejects trailing bytes", func(t *testing.T) {
		_, err := DecodeCall(trailing, true)
		assert.ErrorIs(t, err, ErrNonCanonical)
	})

	t.Run("strict decoding rejects non-standard offsets", func(t *testing.T) {
		// reason placed one word later than the canonical encoder would.
		data := concat(SelectorCastVoteWithReason[:],
			word("0x01"), word("0x01"), word("0x80"),
			make([]byte, 32),
			word("0x02"), common.RightPadBytes([]byte("ok"), 32))

		call, err := DecodeCall(data, false)
		require.NoError(t, err)
		assert.Equal(t, "ok", call.(*CastVoteWithReasonCall).Reason)

		_, err = DecodeCall(data, true)
		assert.ErrorIs(t, err, ErrNonCanonical)
	})

	t.Run("canonical encodings pass", func(t *testing.T) {
		data, err := (&CastVoteWithReasonCall{ProposalID: big.NewInt(9), Support: VoteAbstain, Reason: "meh"}).Pack()
		require.NoError(t, err)

		call, err := DecodeCall(data, true)
		require.NoError(t, err)
		assert.Equal(t, VoteAbstain, call.(*CastVoteWithReasonCall).Support)
	})
}

func TestDecodeContractError(t *testing.T) {
	t.Run("typed fields", func(t *testing.T) {
		data := concat(SelectorOf("GovernorUnexpectedProposalState(uint256,uint8,bytes32)").Bytes(),
			word("0x05"), word("0x03"), word("0x10"))

		e, err := DecodeContractError(data, true)
		require.NoError(t, err)

		unexpected, ok := e.(*GovernorUnexpectedProposalState)
		require.True(t, ok)
		assert.Equal(t, int64(5), unexpected.ProposalID.Int64())
		assert.Equal(t, StateDefeated, unexpected.Current)
		assert.Equal(t, []ProposalState{StateSucceeded}, unexpected.ExpectedStates.States())
	})

	t.Run("unknown selector", func(t *testing.T) {
		_, err := DecodeContractError(SelectorCastVote[:], false)

		var unknown *UnknownSelectorError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, KindError, unknown.Kind)
	})

	t.Run("empty revert data", func(t *testing.T) {
		_, err := DecodeContractError(nil, false)
		assert.ErrorIs(t, err, ErrShortInput)
	})
}

func TestDecodeEvent(t *testing.T) {
	voter := common.HexToAddress("0x2222222222222222222222222222222222222222")
	ev := &VoteCastEvent{
		Voter:      voter,
		ProposalID: big.NewInt(77),
		Support:    VoteFor,
		Weight:     big.NewInt(1000),
		Reason:     "lgtm",
	}
	topics, data, err := EncodeEvent(ev)
	require.NoError(t, err)

	t.Run("indexed arguments come from topics", func(t *testing.T) {
		require.Len(t, topics, 2)
		assert.Equal(t, TopicVoteCast, topics[0])
		assert.Equal(t, common.BytesToHash(voter.Bytes()), topics[1])

		got, err := DecodeEvent(types.Log{Topics: topics, Data: data}, true)
		require.NoError(t, err)

		voteCast, ok := got.(*VoteCastEvent)
		require.True(t, ok)
		assert.Equal(t, voter, voteCast.Voter)
		assert.Equal(t, "lgtm", voteCast.Reason)
		assert.Equal(t, int64(1000), voteCast.Weight.Int64())
	})

	t.Run("missing indexed topic", func(t *testing.T) {
		_, err := DecodeEvent(types.Log{Topics: topics[:1], Data: data}, false)
		assert.ErrorIs(t, err, ErrShortInput)
	})

	t.Run("extra topics", func(t *testing.T) {
		extra := append(append([]common.Hash{}, topics...), common.Hash{})

		_, err := DecodeEvent(types.Log{Topics: extra, Data: data}, false)
		assert.NoError(t, err)

		_, err = DecodeEvent(types.Log{Topics: extra, Data: data}, true)
		assert.ErrorIs(t, err, ErrNonCanonical)
	})

	t.Run("dirty indexed address", func(t *testing.T) {
		dirty := []common.Hash{topics[0], common.HexToHash("0x0100000000000000000000002222222222222222222222222222222222222222")}

		got, err := DecodeEvent(types.Log{Topics: dirty, Data: data}, false)
		require.NoError(t, err)
		assert.Equal(t, voter, got.(*VoteCastEvent).Voter)

		_, err = DecodeEvent(types.Log{Topics: dirty, Data: data}, true)
		assert.ErrorIs(t, err, ErrNonCanonical)
	})

	t.Run("no topics", func(t *testing.T) {
		_, err := DecodeEvent(types.Log{Data: data}, false)
		assert.ErrorIs(t, err, ErrShortInput)
	})

	t.Run("unknown topic", func(t *testing.T) {
		_, err := DecodeEvent(types.Log{Topics: []common.Hash{TopicOf("Transfer(address,address,uint256)")}}, false)

		var unknown *UnknownSelectorError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, KindEvent, unknown.Kind)
		assert.Len(t, unknown.Selector, 32)
	})
}

func TestEncodeEventWithoutIndexedArguments(t *testing.T) {
	topics, data, err := EncodeEvent(&QuorumNumeratorUpdatedEvent{
		OldQuorumNumerator: big.NewInt(4),
		NewQuorumNumerator: big.NewInt(10),
	})
	require.NoError(t, err)

	assert.Equal(t, []common.Hash{TopicQuorumNumeratorUpdated}, topics)
	assert.Equal(t, concat(word("0x04"), word("0x0a")), data)
}
