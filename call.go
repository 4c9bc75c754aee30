package governor

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// CallBuilder is a pending call to one governor function, typed by the
// function's return value R. CallBuilder is immutable - modifier methods
// return new instances.
type CallBuilder[R any] struct {
	governor *Governor
	input    Call
	from     common.Address
	value    *big.Int // msg.value
	block    *big.Int // nil for latest
	gas      uint64   // 0 lets the node estimate
}

func newCallBuilder[R any](g *Governor, c Call) *CallBuilder[R] {
	return &CallBuilder[R]{governor: g, input: c}
}

// Input returns the typed call this builder encodes.
func (b *CallBuilder[R]) Input() Call {
	return b.input
}

// Calldata returns selector || abi.encode(arguments).
func (b *CallBuilder[R]) Calldata() ([]byte, error) {
	return b.input.Pack()
}

// From sets the sender used by Call and EstimateGas.
//
// Returns a new CallBuilder with the sender set.
func (b *CallBuilder[R]) From(from common.Address) *CallBuilder[R] {
	clone := *b
	clone.from = from
	return &clone
}

// WithValue attaches ETH value to the call. A nil amount clears it.
//
// Returns a new CallBuilder with the value set.
func (b *CallBuilder[R]) WithValue(amount *big.Int) *CallBuilder[R] {
	clone := *b
	clone.value = copyBig(amount)
	return &clone
}

// AtBlock pins Call to a historical block. A nil number means latest.
//
// Returns a new CallBuilder with the block set.
func (b *CallBuilder[R]) AtBlock(number *big.Int) *CallBuilder[R] {
	clone := *b
	clone.block = copyBig(number)
	return &clone
}

// WithGas sets an explicit gas limit.
//
// Returns a new CallBuilder with the gas limit set.
func (b *CallBuilder[R]) WithGas(gas uint64) *CallBuilder[R] {
	clone := *b
	clone.gas = gas
	return &clone
}

func (b *CallBuilder[R]) msg(data []byte) ethereum.CallMsg {
	to := b.governor.address
	return ethereum.CallMsg{
		From:  b.from,
		To:    &to,
		Gas:   b.gas,
		Value: b.value,
		Data:  data,
	}
}

// Call executes the function with eth_call and decodes its return value.
func (b *CallBuilder[R]) Call(ctx context.Context) (R, error) {
	var result R
	data, err := b.Calldata()
	if err != nil {
		return result, err
	}
	g := b.governor
	name := b.input.Name()

	g.logger.Debug().
		Str("method", name).
		Stringer("selector", b.input.Selector()).
		Str("block", blockLabel(b.block)).
		Msg("eth_call")

	out, err := g.backend.CallContract(ctx, b.msg(data), b.block)
	if err != nil {
		return result, wrapRevert(name, err, g.strict)
	}

	m, err := methodFor(b.input.Selector())
	if err != nil {
		return result, err
	}
	if len(out) == 0 && len(m.Outputs) > 0 {
		code, err := g.backend.CodeAt(ctx, g.address, b.block)
		if err != nil {
			return result, err
		}
		if len(code) == 0 {
			return result, ErrNoCode
		}
	}
	if err := unpackTuple(KindReturn, name, m.Outputs, out, &result, g.strict); err != nil {
		return result, err
	}
	return result, nil
}

// EstimateGas asks the node for the gas the call would use as a transaction.
func (b *CallBuilder[R]) EstimateGas(ctx context.Context) (uint64, error) {
	data, err := b.Calldata()
	if err != nil {
		return 0, err
	}
	gas, err := b.governor.backend.EstimateGas(ctx, b.msg(data))
	if err != nil {
		return 0, wrapRevert(b.input.Name(), err, b.governor.strict)
	}
	return gas, nil
}

// Send signs and submits the call as a transaction. Value and gas set on the
// builder apply when opts leaves them unset.
func (b *CallBuilder[R]) Send(ctx context.Context, opts *bind.TransactOpts) (*types.Transaction, error) {
	if opts == nil {
		return nil, fmt.Errorf("governor: %s: nil transact options", b.input.Name())
	}
	data, err := b.Calldata()
	if err != nil {
		return nil, err
	}
	txOpts := *opts
	if txOpts.Context == nil {
		txOpts.Context = ctx
	}
	if txOpts.Value == nil && b.value != nil {
		txOpts.Value = b.value
	}
	if txOpts.GasLimit == 0 {
		txOpts.GasLimit = b.gas
	}

	g := b.governor
	tx, err := g.bound.RawTransact(&txOpts, data)
	if err != nil {
		return nil, wrapRevert(b.input.Name(), err, g.strict)
	}
	g.logger.Info().
		Str("method", b.input.Name()).
		Stringer("tx", tx.Hash()).
		Uint64("nonce", tx.Nonce()).
		Msg("transaction sent")
	return tx, nil
}

func copyBig(v *big.Int) *big.Int {
	if v == nil {
		return nil
	}
	return new(big.Int).Set(v)
}

func blockLabel(number *big.Int) string {
	if number == nil {
		return "latest"
	}
	return number.String()
}
