package governor

import (
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func errorStringData(reason string) []byte {
	return concat(SelectorErrorString[:],
		word("0x20"),
		word(fmt.Sprintf("0x%x", len(reason))),
		common.RightPadBytes([]byte(reason), 32))
}

func TestDecodeRevert(t *testing.T) {
	t.Run("error string", func(t *testing.T) {
		reason, err := DecodeRevert(errorStringData("Governor: onlyGovernance"), true)
		require.NoError(t, err)

		var revertReason *RevertReason
		require.ErrorAs(t, reason, &revertReason)
		assert.Equal(t, "Governor: onlyGovernance", revertReason.Reason)
		assert.Equal(t, "execution reverted: Governor: onlyGovernance", reason.Error())
	})

	t.Run("panic", func(t *testing.T) {
		reason, err := DecodeRevert(concat(SelectorPanic[:], word("0x11")), true)
		require.NoError(t, err)

		var panicErr *PanicError
		require.ErrorAs(t, reason, &panicErr)
		assert.Equal(t, int64(0x11), panicErr.Code.Int64())
		assert.Equal(t, "panic 0x11: arithmetic underflow or overflow", reason.Error())
	})

	t.Run("unknown panic code", func(t *testing.T) {
		p := &PanicError{Code: big.NewInt(0x99)}
		assert.Equal(t, "panic 0x99", p.Error())
	})

	t.Run("custom error", func(t *testing.T) {
		data, err := (&GovernorInsufficientProposerVotes{
			Proposer:  testSender,
			Votes:     big.NewInt(1),
			Threshold: big.NewInt(1000),
		}).Pack()
		require.NoError(t, err)

		reason, err := DecodeRevert(data, true)
		require.NoError(t, err)

		var insufficient *GovernorInsufficientProposerVotes
		require.ErrorAs(t, reason, &insufficient)
		assert.Equal(t, int64(1000), insufficient.Threshold.Int64())
	})

	t.Run("unknown selector", func(t *testing.T) {
		_, err := DecodeRevert([]byte{0x01, 0x02, 0x03, 0x04}, false)
		assert.ErrorIs(t, err, ErrUnknownSelector)
	})

	t.Run("empty data", func(t *testing.T) {
		_, err := DecodeRevert(nil, false)
		assert.ErrorIs(t, err, ErrShortInput)
	})
}

func TestRevertData(t *testing.T) {
	t.Run("hex string", func(t *testing.T) {
		data, err := RevertData(&rpcError{msg: "execution reverted", data: "0x6ad06075"})
		require.NoError(t, err)
		assert.Equal(t, []byte{0x6a, 0xd0, 0x60, 0x75}, data)
	})

	t.Run("wrapped", func(t *testing.T) {
		wrapped := fmt.Errorf("call failed: %w", &rpcError{msg: "execution reverted", data: "0x01"})

		data, err := RevertData(wrapped)
		require.NoError(t, err)
		assert.Equal(t, []byte{0x01}, data)
	})

	t.Run("malformed hex", func(t *testing.T) {
		_, err := RevertData(&rpcError{msg: "execution reverted", data: "zz"})
		assert.ErrorIs(t, err, ErrNoRevertData)
	})

	t.Run("no data", func(t *testing.T) {
		_, err := RevertData(errors.New("timeout"))
		assert.ErrorIs(t, err, ErrNoRevertData)

		_, err = RevertData(&rpcError{msg: "execution reverted"})
		assert.ErrorIs(t, err, ErrNoRevertData)
	})
}

func TestWrapRevert(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		assert.NoError(t, wrapRevert("state", nil, false))
	})

	t.Run("revert with builtin reason", func(t *testing.T) {
		rpcErr := &rpcError{msg: "execution reverted", data: hexutil.Encode(errorStringData("nope"))}
		err := wrapRevert("execute", rpcErr, false)

		var revert *RevertError
		require.ErrorAs(t, err, &revert)
		assert.Equal(t, "governor: execute reverted: execution reverted: nope", err.Error())

		var reason *RevertReason
		assert.ErrorAs(t, err, &reason)
	})

	t.Run("revert with undecodable data", func(t *testing.T) {
		rpcErr := &rpcError{msg: "execution reverted", data: "0xdeadbeef"}
		err := wrapRevert("execute", rpcErr, false)

		var revert *RevertError
		require.ErrorAs(t, err, &revert)
		assert.Nil(t, revert.Reason)
		assert.Equal(t, "governor: execute reverted with data 0xdeadbeef", err.Error())
	})

	t.Run("revert without data", func(t *testing.T) {
		err := wrapRevert("queue", errors.New("execution reverted"), false)

		var revert *RevertError
		require.ErrorAs(t, err, &revert)
		assert.Empty(t, revert.Data)
	})

	t.Run("other failures pass through", func(t *testing.T) {
		cause := errors.New("dial tcp: connection refused")
		assert.Same(t, cause, wrapRevert("queue", cause, false))
	})
}
